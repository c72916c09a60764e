package usecase

import (
	"context"
	"errors"
	"testing"

	"luthier_works/internal/domain/entities"
	mock_interfaces "luthier_works/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func validStages() []StageInput {
	return []StageInput{
		{Label: "Body", Order: 1},
		{Label: "Neck", Order: 2},
		{Label: "Finish", Order: 3, RequiresNote: true, ClientLabel: "Finishing"},
	}
}

func TestRunUseCase_CreateRun(t *testing.T) {
	t.Run("non staff actor", func(t *testing.T) {
		uc := NewRunUseCase(nil, nil)
		_, err := uc.CreateRun(context.Background(), clientActor, "Spring", "Austin", validStages())
		if !errors.Is(err, ErrActorNotStaff) {
			t.Fatalf("expected ErrActorNotStaff, got %v", err)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		uc := NewRunUseCase(nil, nil)
		_, err := uc.CreateRun(context.Background(), staffActor, "   ", "Austin", validStages())
		if !errors.Is(err, ErrInvalidRunName) {
			t.Fatalf("expected ErrInvalidRunName, got %v", err)
		}
	})

	t.Run("no stages", func(t *testing.T) {
		uc := NewRunUseCase(nil, nil)
		_, err := uc.CreateRun(context.Background(), staffActor, "Spring", "Austin", nil)
		if !errors.Is(err, ErrNoStages) {
			t.Fatalf("expected ErrNoStages, got %v", err)
		}
	})

	t.Run("duplicate stage order", func(t *testing.T) {
		uc := NewRunUseCase(nil, nil)
		stages := validStages()
		stages[2].Order = 2
		_, err := uc.CreateRun(context.Background(), staffActor, "Spring", "Austin", stages)
		if !errors.Is(err, ErrDuplicateOrder) {
			t.Fatalf("expected ErrDuplicateOrder, got %v", err)
		}
	})

	t.Run("create success assigns stage ids and activates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		runs := mock_interfaces.NewMockIRunRepository(ctrl)
		uc := NewRunUseCase(runs, nil)

		runs.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Run{})).DoAndReturn(
			func(_ context.Context, r entities.Run) (entities.Run, error) {
				if r.ID == "" || !r.Active || r.StartedAt.IsZero() {
					t.Fatalf("run not initialized: %+v", r)
				}
				if len(r.Stages) != 3 {
					t.Fatalf("expected 3 stages, got %d", len(r.Stages))
				}
				seen := make(map[string]struct{})
				for _, s := range r.Stages {
					if s.ID == "" {
						t.Fatalf("stage id missing: %+v", s)
					}
					seen[s.ID] = struct{}{}
				}
				if len(seen) != 3 {
					t.Fatalf("stage ids must be distinct")
				}
				return r, nil
			})

		run, err := uc.CreateRun(context.Background(), staffActor, "Spring 2026 Customs", "Austin", validStages())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !run.HasTotalStageOrder() {
			t.Fatalf("created run lost its total stage order")
		}
	})
}

func TestRunUseCase_ArchiveRun(t *testing.T) {
	t.Run("non staff actor", func(t *testing.T) {
		uc := NewRunUseCase(nil, nil)
		if _, err := uc.ArchiveRun(context.Background(), clientActor, "run-1"); !errors.Is(err, ErrActorNotStaff) {
			t.Fatalf("expected ErrActorNotStaff, got %v", err)
		}
	})

	t.Run("missing run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		runs := mock_interfaces.NewMockIRunRepository(ctrl)
		uc := NewRunUseCase(runs, nil)

		runs.EXPECT().Archive(gomock.Any(), "run-1").Return(entities.Run{}, nil)

		if _, err := uc.ArchiveRun(context.Background(), staffActor, "run-1"); !errors.Is(err, ErrRunNotFound) {
			t.Fatalf("expected ErrRunNotFound, got %v", err)
		}
	})
}

func TestRunUseCase_PostRunUpdate(t *testing.T) {
	t.Run("blank title", func(t *testing.T) {
		uc := NewRunUseCase(nil, nil)
		_, err := uc.PostRunUpdate(context.Background(), staffActor, "run-1", "  ", "body", nil, true)
		if !errors.Is(err, ErrInvalidUpdateBody) {
			t.Fatalf("expected ErrInvalidUpdateBody, got %v", err)
		}
	})

	t.Run("posts against an existing run", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		runs := mock_interfaces.NewMockIRunRepository(ctrl)
		updates := mock_interfaces.NewMockIRunUpdateRepository(ctrl)
		uc := NewRunUseCase(runs, updates)

		runs.EXPECT().GetByID(gomock.Any(), "run-1").Return(entities.Run{ID: "run-1"}, nil)
		updates.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.RunUpdate{})).DoAndReturn(
			func(_ context.Context, u entities.RunUpdate) (entities.RunUpdate, error) {
				if u.RunID != "run-1" || u.AuthorID != staffActor.UserID || !u.VisibleToClients {
					t.Fatalf("unexpected update %+v", u)
				}
				return u, nil
			})

		update, err := uc.PostRunUpdate(context.Background(), staffActor, "run-1", "Necks carved", "all done", nil, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if update.ID == "" || update.CreatedAt.IsZero() {
			t.Fatalf("update not initialized: %+v", update)
		}
	})

	t.Run("missing run blocks the post", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		runs := mock_interfaces.NewMockIRunRepository(ctrl)
		uc := NewRunUseCase(runs, nil)

		runs.EXPECT().GetByID(gomock.Any(), "run-1").Return(entities.Run{}, nil)

		if _, err := uc.PostRunUpdate(context.Background(), staffActor, "run-1", "t", "b", nil, false); !errors.Is(err, ErrRunNotFound) {
			t.Fatalf("expected ErrRunNotFound, got %v", err)
		}
	})
}
