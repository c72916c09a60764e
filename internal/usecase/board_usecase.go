package usecase

import (
	"context"
	"errors"
	"log"
	"sync"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"
)

var (
	ErrBoardNotStarted  = errors.New("board synchronizer not started")
	ErrBuildNotOnBoard  = errors.New("build not on this board")
	ErrStageNotOnBoard  = errors.New("stage not on this board")
	ErrCaptureNotOpen   = errors.New("no capture pending for this build")
	ErrBoardRunArchived = errors.New("run is archived")
)

// MoveResult tells the caller of MoveBuild what happened to their drag.

type MoveResult struct {
	// NoOp is set when the target stage equals the build's current stage;
	// nothing was changed and no write was issued.
	NoOp bool
	// CaptureRequired is set when the target stage gates entry on a note or
	// photo. The move has been applied optimistically but the durable write
	// is deferred until CompleteCapture is called.
	CaptureRequired bool
	// Committed is set when the durable transition was issued immediately.
	Committed bool
}

// BoardSynchronizer keeps one viewer's live picture of a run current: which
// builds are in which stage, counts and progress. It subscribes to the runs
// and builds change feeds and rebuilds the derived view on every tick;
// a viewer's own move shows up instantly as an optimistic overlay that the
// confirmed feed event later supersedes.
//
// The synchronizer only makes observers eventually consistent. It never
// serializes writers: concurrent transitions on the same build resolve
// last-write-wins at the store.

type BoardSynchronizer struct {
	runID    string
	pipeline IStagePipelineUseCase
	runs     interfaces.IRunRepository
	builds   interfaces.IBuildRepository
	feed     interfaces.IChangeFeed

	mu         sync.RWMutex
	run        entities.Run
	buildsByID map[string]entities.Build
	// pending maps build id to the optimistically applied stage id. An entry
	// is an overlay over the snapshot, cleared the moment any confirmed feed
	// event for that build arrives, so ground truth always wins, including
	// when a deferred write silently failed.
	pending map[string]string
	// capture tracks builds whose move is parked behind a gated-stage prompt.
	capture map[string]string
	view    BoardView
	started bool
	cancels []func()
	done    chan struct{}
}

func NewBoardSynchronizer(runID string, pipeline IStagePipelineUseCase, runs interfaces.IRunRepository, builds interfaces.IBuildRepository, feed interfaces.IChangeFeed) *BoardSynchronizer {
	return &BoardSynchronizer{
		runID:      runID,
		pipeline:   pipeline,
		runs:       runs,
		builds:     builds,
		feed:       feed,
		buildsByID: make(map[string]entities.Build),
		pending:    make(map[string]string),
		capture:    make(map[string]string),
	}
}

// Start loads the initial snapshot and subscribes to the runs and builds
// feeds. The subscriptions live until Stop (or the context) tears them down;
// a leaked board keeps polling forever.
func (s *BoardSynchronizer) Start(ctx context.Context) error {
	run, err := s.runs.GetByID(ctx, s.runID)
	if err != nil {
		return err
	}
	if run.ID == "" {
		return ErrRunNotFound
	}
	builds, err := s.builds.ListByRunID(ctx, s.runID)
	if err != nil {
		return err
	}

	runCh, cancelRuns, err := s.feed.Subscribe(ctx, entities.CollectionRuns)
	if err != nil {
		return err
	}
	buildCh, cancelBuilds, err := s.feed.Subscribe(ctx, entities.CollectionBuilds)
	if err != nil {
		cancelRuns()
		return err
	}

	s.mu.Lock()
	s.run = run
	s.buildsByID = make(map[string]entities.Build, len(builds))
	for _, b := range builds {
		s.buildsByID[b.ID] = b
	}
	s.started = true
	s.cancels = []func(){cancelRuns, cancelBuilds}
	s.done = make(chan struct{})
	s.recomputeLocked()
	s.mu.Unlock()

	go s.consume(runCh, buildCh)
	log.Printf("[board][usecase] started run_id=%s builds=%d", s.runID, len(builds))
	return nil
}

// Stop tears down the feed subscriptions and waits for the consume loop to
// drain, so no event is applied after Stop returns.
func (s *BoardSynchronizer) Stop() {
	s.mu.Lock()
	cancels := s.cancels
	done := s.done
	s.cancels = nil
	s.started = false
	s.mu.Unlock()
	for _, cancel := range cancels {
		cancel()
	}
	if done != nil {
		<-done
	}
	log.Printf("[board][usecase] stopped run_id=%s", s.runID)
}

func (s *BoardSynchronizer) consume(runCh, buildCh <-chan entities.ChangeEvent) {
	defer close(s.done)
	for runCh != nil || buildCh != nil {
		select {
		case ev, ok := <-runCh:
			if !ok {
				runCh = nil
				continue
			}
			s.applyRunEvent(ev)
		case ev, ok := <-buildCh:
			if !ok {
				buildCh = nil
				continue
			}
			s.applyBuildEvent(ev)
		}
	}
}

func (s *BoardSynchronizer) applyRunEvent(ev entities.ChangeEvent) {
	var run entities.Run
	ok, err := ev.DecodeAfter(&run)
	if err != nil {
		log.Printf("[board][usecase] run event decode failed run_id=%s err=%v", s.runID, err)
		return
	}
	if !ok || run.ID != s.runID {
		return
	}
	s.mu.Lock()
	s.run = run
	s.recomputeLocked()
	s.mu.Unlock()
}

func (s *BoardSynchronizer) applyBuildEvent(ev entities.ChangeEvent) {
	var b entities.Build
	decoded, err := ev.DecodeAfter(&b)
	if err != nil {
		log.Printf("[board][usecase] build event decode failed run_id=%s err=%v", s.runID, err)
		return
	}
	if ev.Kind == entities.ChangeKindRemove {
		var old entities.Build
		if ok, err := ev.DecodeBefore(&old); err != nil || !ok || old.RunID != s.runID {
			return
		}
		s.mu.Lock()
		delete(s.buildsByID, old.ID)
		delete(s.pending, old.ID)
		delete(s.capture, old.ID)
		s.recomputeLocked()
		s.mu.Unlock()
		return
	}
	if !decoded || b.RunID != s.runID {
		return
	}
	s.mu.Lock()
	s.buildsByID[b.ID] = b
	// A confirmed write supersedes whatever we guessed optimistically.
	delete(s.pending, b.ID)
	s.recomputeLocked()
	s.mu.Unlock()
}

// recomputeLocked rebuilds the derived view from the current snapshot plus
// the optimistic overlay. Always a full recompute; nothing is patched in
// place, so re-entrant ticks can never leave the view half-updated.
func (s *BoardSynchronizer) recomputeLocked() {
	builds := make([]entities.Build, 0, len(s.buildsByID))
	for _, b := range s.buildsByID {
		if stageID, ok := s.pending[b.ID]; ok {
			b.StageID = stageID
		}
		builds = append(builds, b)
	}
	s.view = ComputeBoardView(s.run, builds)
}

// Snapshot returns the current derived view.
func (s *BoardSynchronizer) Snapshot() BoardView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// MoveBuild implements the drag protocol: no-op detection, optimistic local
// apply, then either an immediate durable transition or a deferred one when
// the target stage gates entry on a note/photo capture.
func (s *BoardSynchronizer) MoveBuild(ctx context.Context, actor entities.Actor, buildID, targetStageID string) (MoveResult, error) {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return MoveResult{}, ErrBoardNotStarted
	}
	if s.run.Archived {
		s.mu.Unlock()
		return MoveResult{}, ErrBoardRunArchived
	}
	b, ok := s.buildsByID[buildID]
	if !ok {
		s.mu.Unlock()
		return MoveResult{}, ErrBuildNotOnBoard
	}
	target, ok := s.run.StageByID(targetStageID)
	if !ok {
		s.mu.Unlock()
		return MoveResult{}, ErrStageNotOnBoard
	}

	currentID := b.StageID
	if pendingID, moving := s.pending[buildID]; moving {
		currentID = pendingID
	}
	if current, ok := s.run.StageByID(currentID); ok {
		if current.ID == target.ID || current.Order == target.Order {
			s.mu.Unlock()
			return MoveResult{NoOp: true}, nil
		}
	} else if currentID == target.ID {
		s.mu.Unlock()
		return MoveResult{NoOp: true}, nil
	}

	// Optimistic: the initiator sees the move before the round trip.
	s.pending[buildID] = target.ID
	s.recomputeLocked()

	if target.RequiresNote || target.RequiresPhoto {
		s.capture[buildID] = target.ID
		s.mu.Unlock()
		log.Printf("[board][usecase] capture required run_id=%s build_id=%s stage_id=%s", s.runID, buildID, target.ID)
		return MoveResult{CaptureRequired: true}, nil
	}
	s.mu.Unlock()

	if _, err := s.pipeline.Transition(ctx, actor, buildID, target.ID); err != nil {
		// The optimistic overlay stays until the next confirmed event or a
		// refresh corrects it; a minor, self-healing inconsistency.
		log.Printf("[board][usecase] transition failed run_id=%s build_id=%s stage_id=%s err=%v", s.runID, buildID, target.ID, err)
		return MoveResult{}, err
	}
	return MoveResult{Committed: true}, nil
}

// CompleteCapture commits a move that was parked behind a gated-stage prompt.
// The transition is always issued on dismissal, whether or not the capture
// carries a note or photos.
func (s *BoardSynchronizer) CompleteCapture(ctx context.Context, actor entities.Actor, buildID string, capture NoteCapture) (MoveResult, error) {
	s.mu.Lock()
	stageID, ok := s.capture[buildID]
	if !ok {
		s.mu.Unlock()
		return MoveResult{}, ErrCaptureNotOpen
	}
	delete(s.capture, buildID)
	s.mu.Unlock()

	if _, err := s.pipeline.TransitionWithNote(ctx, actor, buildID, stageID, capture); err != nil {
		log.Printf("[board][usecase] deferred transition failed run_id=%s build_id=%s stage_id=%s err=%v", s.runID, buildID, stageID, err)
		return MoveResult{}, err
	}
	return MoveResult{Committed: true}, nil
}
