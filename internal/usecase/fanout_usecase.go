package usecase

import (
	"context"
	"log"
	"time"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// INotificationFanoutUseCase broadcasts one logical event into N per-recipient
// notification records, one per staff/admin principal.
//
// Fan-out is fire-and-forget by construction: enumeration and write failures
// are logged and swallowed, never surfaced to the action that triggered the
// event. An empty staff roster writes nothing and is not an error.

type INotificationFanoutUseCase interface {
	NotifyAll(ctx context.Context, payload entities.FanoutPayload)
}

type NotificationFanoutUseCase struct {
	enumerator    IDirectoryEnumerator
	notifications interfaces.INotificationRepository
}

var _ INotificationFanoutUseCase = (*NotificationFanoutUseCase)(nil)

func NewNotificationFanoutUseCase(enumerator IDirectoryEnumerator, notifications interfaces.INotificationRepository) *NotificationFanoutUseCase {
	return &NotificationFanoutUseCase{enumerator: enumerator, notifications: notifications}
}

func (u *NotificationFanoutUseCase) NotifyAll(ctx context.Context, payload entities.FanoutPayload) {
	staffIDs, err := u.enumerator.ListStaffIDs(ctx)
	if err != nil {
		log.Printf("[fanout][usecase] staff enumeration failed type=%s err=%v", payload.Type, err)
		return
	}
	if len(staffIDs) == 0 {
		log.Printf("[fanout][usecase] no staff recipients type=%s", payload.Type)
		return
	}

	// One timestamp for the whole fan-out so every record of the event sorts
	// identically no matter how long the writes take.
	now := time.Now().UTC()
	records := make([]entities.Notification, 0, len(staffIDs))
	for _, recipientID := range staffIDs {
		records = append(records, entities.Notification{
			ID:          uuid.NewString(),
			RecipientID: recipientID,
			Type:        payload.Type,
			Title:       payload.Title,
			Message:     payload.Message,
			Meta:        payload.Meta,
			CreatedAt:   now,
		})
	}

	written, err := u.notifications.CreateBatch(ctx, records)
	if err != nil {
		log.Printf("[fanout][usecase] batch write failed type=%s recipients=%d written=%d err=%v", payload.Type, len(records), written, err)
		return
	}
	log.Printf("[fanout][usecase] fan-out complete type=%s recipients=%d", payload.Type, written)
}
