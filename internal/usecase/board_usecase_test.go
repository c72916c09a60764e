package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"luthier_works/internal/domain/entities"
	mock_interfaces "luthier_works/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubPipeline struct {
	transitionErr error
	transitions   []string
	captures      []NoteCapture
}

func (s *stubPipeline) Transition(_ context.Context, _ entities.Actor, buildID, stageID string) (entities.Build, error) {
	s.transitions = append(s.transitions, buildID+"->"+stageID)
	if s.transitionErr != nil {
		return entities.Build{}, s.transitionErr
	}
	return entities.Build{ID: buildID, StageID: stageID}, nil
}

func (s *stubPipeline) TransitionWithNote(ctx context.Context, actor entities.Actor, buildID, stageID string, capture NoteCapture) (entities.Build, error) {
	s.captures = append(s.captures, capture)
	return s.Transition(ctx, actor, buildID, stageID)
}

func gatedRun() entities.Run {
	return entities.Run{
		ID:   "run-1",
		Name: "Spring 2026 Customs",
		Stages: []entities.Stage{
			{ID: "stage-a", Label: "Body", Order: 1},
			{ID: "stage-b", Label: "Neck", Order: 2},
			{ID: "stage-c", Label: "Finish", Order: 3, RequiresNote: true},
		},
	}
}

func startedBoard(t *testing.T, ctrl *gomock.Controller, pipeline IStagePipelineUseCase) *BoardSynchronizer {
	t.Helper()
	runs := mock_interfaces.NewMockIRunRepository(ctrl)
	builds := mock_interfaces.NewMockIBuildRepository(ctrl)
	feed := mock_interfaces.NewMockIChangeFeed(ctrl)

	runs.EXPECT().GetByID(gomock.Any(), "run-1").Return(gatedRun(), nil)
	builds.EXPECT().ListByRunID(gomock.Any(), "run-1").Return([]entities.Build{
		{ID: "b1", RunID: "run-1", StageID: "stage-a", OrderNumber: "LW-0001"},
		{ID: "b2", RunID: "run-1", StageID: "stage-b", OrderNumber: "LW-0002"},
	}, nil)

	runCh := make(chan entities.ChangeEvent)
	buildCh := make(chan entities.ChangeEvent)
	feed.EXPECT().Subscribe(gomock.Any(), entities.CollectionRuns).
		Return((<-chan entities.ChangeEvent)(runCh), func() { close(runCh) }, nil)
	feed.EXPECT().Subscribe(gomock.Any(), entities.CollectionBuilds).
		Return((<-chan entities.ChangeEvent)(buildCh), func() { close(buildCh) }, nil)

	s := NewBoardSynchronizer("run-1", pipeline, runs, builds, feed)
	if err := s.Start(context.Background()); err != nil {
		t.Fatalf("start failed: %v", err)
	}
	t.Cleanup(s.Stop)
	return s
}

func stageOf(t *testing.T, view BoardView, buildID string) string {
	t.Helper()
	for _, col := range view.Columns {
		for _, b := range col.Builds {
			if b.ID == buildID {
				return col.Stage.ID
			}
		}
	}
	return ""
}

func buildEvent(t *testing.T, kind entities.ChangeKind, before, after *entities.Build) entities.ChangeEvent {
	t.Helper()
	ev := entities.ChangeEvent{Collection: entities.CollectionBuilds, Kind: kind}
	if before != nil {
		raw, err := json.Marshal(before)
		if err != nil {
			t.Fatalf("marshal before: %v", err)
		}
		ev.Before = raw
	}
	if after != nil {
		raw, err := json.Marshal(after)
		if err != nil {
			t.Fatalf("marshal after: %v", err)
		}
		ev.After = raw
	}
	return ev
}

func TestBoardSynchronizer_MoveBuild(t *testing.T) {
	t.Run("snapshot after start", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := startedBoard(t, ctrl, &stubPipeline{})

		view := s.Snapshot()
		if view.TotalBuilds != 2 {
			t.Fatalf("expected 2 builds, got %d", view.TotalBuilds)
		}
		if got := stageOf(t, view, "b1"); got != "stage-a" {
			t.Fatalf("expected b1 in stage-a, got %s", got)
		}
	})

	t.Run("move commits immediately and shows optimistically", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pipeline := &stubPipeline{}
		s := startedBoard(t, ctrl, pipeline)

		result, err := s.MoveBuild(context.Background(), staffActor, "b1", "stage-b")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.Committed {
			t.Fatalf("expected committed result, got %+v", result)
		}
		if len(pipeline.transitions) != 1 || pipeline.transitions[0] != "b1->stage-b" {
			t.Fatalf("unexpected transitions: %v", pipeline.transitions)
		}
		if got := stageOf(t, s.Snapshot(), "b1"); got != "stage-b" {
			t.Fatalf("expected optimistic stage-b, got %s", got)
		}
	})

	t.Run("same stage is a no-op without a write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pipeline := &stubPipeline{}
		s := startedBoard(t, ctrl, pipeline)

		result, err := s.MoveBuild(context.Background(), staffActor, "b1", "stage-a")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.NoOp {
			t.Fatalf("expected no-op, got %+v", result)
		}
		if len(pipeline.transitions) != 0 {
			t.Fatalf("no-op must not write: %v", pipeline.transitions)
		}
	})

	t.Run("unknown build and stage", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := startedBoard(t, ctrl, &stubPipeline{})

		if _, err := s.MoveBuild(context.Background(), staffActor, "ghost", "stage-b"); !errors.Is(err, ErrBuildNotOnBoard) {
			t.Fatalf("expected ErrBuildNotOnBoard, got %v", err)
		}
		if _, err := s.MoveBuild(context.Background(), staffActor, "b1", "ghost"); !errors.Is(err, ErrStageNotOnBoard) {
			t.Fatalf("expected ErrStageNotOnBoard, got %v", err)
		}
	})

	t.Run("gated stage defers the write behind a capture", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pipeline := &stubPipeline{}
		s := startedBoard(t, ctrl, pipeline)

		result, err := s.MoveBuild(context.Background(), staffActor, "b2", "stage-c")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !result.CaptureRequired {
			t.Fatalf("expected capture required, got %+v", result)
		}
		if len(pipeline.transitions) != 0 {
			t.Fatalf("gated move must defer the write: %v", pipeline.transitions)
		}
		// the viewer still sees the move right away
		if got := stageOf(t, s.Snapshot(), "b2"); got != "stage-c" {
			t.Fatalf("expected optimistic stage-c, got %s", got)
		}

		done, err := s.CompleteCapture(context.Background(), staffActor, "b2", NoteCapture{Body: "fret level before finish"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !done.Committed {
			t.Fatalf("expected committed after capture, got %+v", done)
		}
		if len(pipeline.captures) != 1 || pipeline.captures[0].Body != "fret level before finish" {
			t.Fatalf("capture not forwarded: %+v", pipeline.captures)
		}

		if _, err := s.CompleteCapture(context.Background(), staffActor, "b2", NoteCapture{}); !errors.Is(err, ErrCaptureNotOpen) {
			t.Fatalf("second capture completion should fail, got %v", err)
		}
	})

	t.Run("empty capture still commits the move", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pipeline := &stubPipeline{}
		s := startedBoard(t, ctrl, pipeline)

		if _, err := s.MoveBuild(context.Background(), staffActor, "b2", "stage-c"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		done, err := s.CompleteCapture(context.Background(), staffActor, "b2", NoteCapture{})
		if err != nil || !done.Committed {
			t.Fatalf("skipped capture must still commit: %+v err=%v", done, err)
		}
	})

	t.Run("archived run rejects moves", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pipeline := &stubPipeline{}
		s := startedBoard(t, ctrl, pipeline)

		archived := gatedRun()
		archived.Archived = true
		raw, err := json.Marshal(archived)
		if err != nil {
			t.Fatalf("marshal run: %v", err)
		}
		s.applyRunEvent(entities.ChangeEvent{Collection: entities.CollectionRuns, Kind: entities.ChangeKindModify, After: raw})

		if _, err := s.MoveBuild(context.Background(), staffActor, "b1", "stage-b"); !errors.Is(err, ErrBoardRunArchived) {
			t.Fatalf("expected ErrBoardRunArchived, got %v", err)
		}
		if len(pipeline.transitions) != 0 {
			t.Fatalf("archived run must not write: %v", pipeline.transitions)
		}
	})

	t.Run("failed write keeps overlay until confirmed event corrects it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		pipeline := &stubPipeline{transitionErr: errors.New("conditional check failed")}
		s := startedBoard(t, ctrl, pipeline)

		if _, err := s.MoveBuild(context.Background(), staffActor, "b1", "stage-b"); err == nil {
			t.Fatalf("expected transition error")
		}
		// optimistic overlay survives the failure
		if got := stageOf(t, s.Snapshot(), "b1"); got != "stage-b" {
			t.Fatalf("expected overlay stage-b, got %s", got)
		}

		// ground truth arrives on the feed and supersedes the overlay
		truth := entities.Build{ID: "b1", RunID: "run-1", StageID: "stage-a", OrderNumber: "LW-0001"}
		s.applyBuildEvent(buildEvent(t, entities.ChangeKindModify, nil, &truth))
		if got := stageOf(t, s.Snapshot(), "b1"); got != "stage-a" {
			t.Fatalf("expected reconciled stage-a, got %s", got)
		}
	})
}

func TestBoardSynchronizer_Stop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	s := startedBoard(t, ctrl, &stubPipeline{})

	s.Stop()

	// Stop must not return before the consume loop has drained.
	select {
	case <-s.done:
	default:
		t.Fatal("consume loop still running after Stop")
	}
}

func TestBoardSynchronizer_Events(t *testing.T) {
	t.Run("confirmed modify clears the pending overlay", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := startedBoard(t, ctrl, &stubPipeline{})

		if _, err := s.MoveBuild(context.Background(), staffActor, "b1", "stage-b"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		confirmed := entities.Build{ID: "b1", RunID: "run-1", StageID: "stage-b", OrderNumber: "LW-0001"}
		s.applyBuildEvent(buildEvent(t, entities.ChangeKindModify, nil, &confirmed))
		if got := stageOf(t, s.Snapshot(), "b1"); got != "stage-b" {
			t.Fatalf("expected confirmed stage-b, got %s", got)
		}
	})

	t.Run("insert adds a build to the board", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := startedBoard(t, ctrl, &stubPipeline{})

		fresh := entities.Build{ID: "b9", RunID: "run-1", StageID: "stage-a", OrderNumber: "LW-0009"}
		s.applyBuildEvent(buildEvent(t, entities.ChangeKindInsert, nil, &fresh))
		if s.Snapshot().TotalBuilds != 3 {
			t.Fatalf("expected 3 builds after insert, got %d", s.Snapshot().TotalBuilds)
		}
	})

	t.Run("remove drops a build", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := startedBoard(t, ctrl, &stubPipeline{})

		gone := entities.Build{ID: "b2", RunID: "run-1", StageID: "stage-b"}
		s.applyBuildEvent(buildEvent(t, entities.ChangeKindRemove, &gone, nil))
		if s.Snapshot().TotalBuilds != 1 {
			t.Fatalf("expected 1 build after remove, got %d", s.Snapshot().TotalBuilds)
		}
	})

	t.Run("events for other runs are ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := startedBoard(t, ctrl, &stubPipeline{})

		foreign := entities.Build{ID: "bx", RunID: "run-2", StageID: "stage-a"}
		s.applyBuildEvent(buildEvent(t, entities.ChangeKindInsert, nil, &foreign))
		if s.Snapshot().TotalBuilds != 2 {
			t.Fatalf("foreign-run event leaked onto the board")
		}
	})

	t.Run("run modify recomputes the view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		s := startedBoard(t, ctrl, &stubPipeline{})

		renamed := gatedRun()
		renamed.Name = "Spring 2026 Customs (revised)"
		raw, err := json.Marshal(renamed)
		if err != nil {
			t.Fatalf("marshal run: %v", err)
		}
		s.applyRunEvent(entities.ChangeEvent{Collection: entities.CollectionRuns, Kind: entities.ChangeKindModify, After: raw})
		if s.Snapshot().RunID != "run-1" {
			t.Fatalf("view lost its run")
		}
	})
}
