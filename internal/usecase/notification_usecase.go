package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"
)

var (
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrNotificationNotFound  = errors.New("notification not found")
)

// INotificationUseCase is the recipient-facing side of notifications: list,
// mark read, delete. Only the recipient may mutate their own records, which
// is enforced by keying every operation on the acting user's id.

type INotificationUseCase interface {
	ListMine(ctx context.Context, actor entities.Actor) ([]entities.Notification, error)
	MarkRead(ctx context.Context, actor entities.Actor, id string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, actor entities.Actor) (int, error)
	Delete(ctx context.Context, actor entities.Actor, id string) error
}

type NotificationUseCase struct {
	notifications interfaces.INotificationRepository
}

var _ INotificationUseCase = (*NotificationUseCase)(nil)

func NewNotificationUseCase(notifications interfaces.INotificationRepository) *NotificationUseCase {
	return &NotificationUseCase{notifications: notifications}
}

func (u *NotificationUseCase) ListMine(ctx context.Context, actor entities.Actor) ([]entities.Notification, error) {
	return u.notifications.ListByRecipientID(ctx, actor.UserID)
}

func (u *NotificationUseCase) MarkRead(ctx context.Context, actor entities.Actor, id string) (entities.Notification, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Notification{}, ErrInvalidNotificationID
	}
	n, err := u.notifications.MarkRead(ctx, id, actor.UserID)
	if err != nil {
		log.Printf("[notification][usecase] mark-read failed notification_id=%s recipient_id=%s err=%v", id, actor.UserID, err)
		return entities.Notification{}, err
	}
	if n.ID == "" {
		return entities.Notification{}, ErrNotificationNotFound
	}
	return n, nil
}

func (u *NotificationUseCase) MarkAllRead(ctx context.Context, actor entities.Actor) (int, error) {
	n, err := u.notifications.MarkAllRead(ctx, actor.UserID)
	if err != nil {
		log.Printf("[notification][usecase] mark-all-read failed recipient_id=%s err=%v", actor.UserID, err)
		return 0, err
	}
	return n, nil
}

func (u *NotificationUseCase) Delete(ctx context.Context, actor entities.Actor, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidNotificationID
	}
	return u.notifications.Delete(ctx, id, actor.UserID)
}
