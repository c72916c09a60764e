package usecase

import (
	"context"
	"errors"
	"testing"

	"luthier_works/internal/domain/entities"
	mock_interfaces "luthier_works/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestNotificationUseCase_MarkRead(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		if _, err := uc.MarkRead(context.Background(), staffActor, "  "); !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})

	t.Run("record of another recipient stays untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkRead(gomock.Any(), "n1", staffActor.UserID).Return(entities.Notification{}, nil)

		if _, err := uc.MarkRead(context.Background(), staffActor, "n1"); !errors.Is(err, ErrNotificationNotFound) {
			t.Fatalf("expected ErrNotificationNotFound, got %v", err)
		}
	})

	t.Run("marks own record", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().MarkRead(gomock.Any(), "n1", staffActor.UserID).
			Return(entities.Notification{ID: "n1", RecipientID: staffActor.UserID, Read: true}, nil)

		n, err := uc.MarkRead(context.Background(), staffActor, "n1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !n.Read {
			t.Fatal("expected notification to be read")
		}
	})
}

func TestNotificationUseCase_MarkAllRead(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockINotificationRepository(ctrl)
	uc := NewNotificationUseCase(repo)

	repo.EXPECT().MarkAllRead(gomock.Any(), clientActor.UserID).Return(4, nil)

	n, err := uc.MarkAllRead(context.Background(), clientActor)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 4 {
		t.Fatalf("expected 4 updated, got %d", n)
	}
}

func TestNotificationUseCase_Delete(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewNotificationUseCase(nil)
		if err := uc.Delete(context.Background(), clientActor, ""); !errors.Is(err, ErrInvalidNotificationID) {
			t.Fatalf("expected ErrInvalidNotificationID, got %v", err)
		}
	})

	t.Run("deletes scoped to the recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockINotificationRepository(ctrl)
		uc := NewNotificationUseCase(repo)

		repo.EXPECT().Delete(gomock.Any(), "n9", clientActor.UserID).Return(nil)

		if err := uc.Delete(context.Background(), clientActor, "n9"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}
