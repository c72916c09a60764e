package interfaces

import (
	"context"
	"luthier_works/internal/domain/entities"
)

// INotificationRepository abstracts DynamoDB persistence for Notification.
//
// CreateBatch must accept recipient sets of any size: the implementation is
// responsible for chunking below the store's batch-write ceiling. It returns
// how many records were durably written, which equals len(ns) on success.

type INotificationRepository interface {
	CreateBatch(ctx context.Context, ns []entities.Notification) (int, error)
	ListByRecipientID(ctx context.Context, recipientID string) ([]entities.Notification, error)
	MarkRead(ctx context.Context, id, recipientID string) (entities.Notification, error)
	MarkAllRead(ctx context.Context, recipientID string) (int, error)
	Delete(ctx context.Context, id, recipientID string) error
}
