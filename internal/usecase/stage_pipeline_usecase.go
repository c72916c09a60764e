package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidBuildID = errors.New("invalid build id")
	ErrInvalidStageID = errors.New("invalid stage id")
	ErrBuildNotFound  = errors.New("build not found")
	ErrRunNotFound    = errors.New("run not found")
	ErrStageNotInRun  = errors.New("stage does not belong to the build's run")
	ErrActorNotStaff  = errors.New("actor is not staff")
)

// NoteCapture is the optional data-capture result of moving a build into a
// gated stage. An empty capture (no body, no photos) means the prompt was
// dismissed without supplying anything, which is allowed: the gating flags
// are advisory prompts, not hard validation gates.

type NoteCapture struct {
	Body            string
	PhotoURLs       []string
	VisibleToClient bool
}

// Empty reports whether the capture carries no content at all.
func (c NoteCapture) Empty() bool {
	return strings.TrimSpace(c.Body) == "" && len(c.PhotoURLs) == 0
}

// IStagePipelineUseCase moves builds through their run's stage pipeline.
//
// Transition is a single atomic field update on the build document: it sets
// the stage id and refreshes updated_at, and emits exactly one change-feed
// event. There is no in-flight or partial state and no retry; on error the
// build is unchanged.

type IStagePipelineUseCase interface {
	Transition(ctx context.Context, actor entities.Actor, buildID, targetStageID string) (entities.Build, error)
	TransitionWithNote(ctx context.Context, actor entities.Actor, buildID, targetStageID string, capture NoteCapture) (entities.Build, error)
}

type StagePipelineUseCase struct {
	builds interfaces.IBuildRepository
	runs   interfaces.IRunRepository
	notes  interfaces.INoteRepository
}

var _ IStagePipelineUseCase = (*StagePipelineUseCase)(nil)

func NewStagePipelineUseCase(builds interfaces.IBuildRepository, runs interfaces.IRunRepository, notes interfaces.INoteRepository) *StagePipelineUseCase {
	return &StagePipelineUseCase{builds: builds, runs: runs, notes: notes}
}

func (u *StagePipelineUseCase) Transition(ctx context.Context, actor entities.Actor, buildID, targetStageID string) (entities.Build, error) {
	buildID = strings.TrimSpace(buildID)
	targetStageID = strings.TrimSpace(targetStageID)
	if !actor.Role.IsStaff() {
		log.Printf("[pipeline][usecase] transition refused actor_id=%s role=%s", actor.UserID, actor.Role)
		return entities.Build{}, ErrActorNotStaff
	}
	if buildID == "" {
		return entities.Build{}, ErrInvalidBuildID
	}
	if targetStageID == "" {
		return entities.Build{}, ErrInvalidStageID
	}

	b, err := u.builds.GetByID(ctx, buildID)
	if err != nil {
		log.Printf("[pipeline][usecase] build load failed build_id=%s err=%v", buildID, err)
		return entities.Build{}, err
	}
	if b.ID == "" {
		return entities.Build{}, ErrBuildNotFound
	}

	run, err := u.runs.GetByID(ctx, b.RunID)
	if err != nil {
		log.Printf("[pipeline][usecase] run load failed run_id=%s err=%v", b.RunID, err)
		return entities.Build{}, err
	}
	if run.ID == "" {
		return entities.Build{}, ErrRunNotFound
	}

	// A build's stage reference must always resolve within its own run's
	// stage list; a foreign stage id is rejected before the write.
	if _, ok := run.StageByID(targetStageID); !ok {
		log.Printf("[pipeline][usecase] foreign stage rejected build_id=%s run_id=%s stage_id=%s", buildID, run.ID, targetStageID)
		return entities.Build{}, ErrStageNotInRun
	}

	updated, err := u.builds.UpdateStage(ctx, buildID, targetStageID)
	if err != nil {
		log.Printf("[pipeline][usecase] transition write failed build_id=%s stage_id=%s err=%v", buildID, targetStageID, err)
		return entities.Build{}, err
	}
	log.Printf("[pipeline][usecase] transition success build_id=%s run_id=%s stage_id=%s", buildID, run.ID, targetStageID)
	return updated, nil
}

func (u *StagePipelineUseCase) TransitionWithNote(ctx context.Context, actor entities.Actor, buildID, targetStageID string, capture NoteCapture) (entities.Build, error) {
	if !capture.Empty() {
		n := entities.Note{
			ID:              uuid.NewString(),
			BuildID:         strings.TrimSpace(buildID),
			AuthorID:        actor.UserID,
			Body:            strings.TrimSpace(capture.Body),
			PhotoURLs:       capture.PhotoURLs,
			VisibleToClient: capture.VisibleToClient,
			StageID:         strings.TrimSpace(targetStageID),
			CreatedAt:       time.Now().UTC(),
		}
		if _, err := u.notes.Create(ctx, n); err != nil {
			// The capture is advisory; losing the note must not block the move.
			log.Printf("[pipeline][usecase] capture note create failed build_id=%s err=%v", buildID, err)
		} else {
			log.Printf("[pipeline][usecase] capture note created build_id=%s note_id=%s", buildID, n.ID)
		}
	}
	return u.Transition(ctx, actor, buildID, targetStageID)
}
