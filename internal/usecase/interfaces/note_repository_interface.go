package interfaces

import (
	"context"
	"luthier_works/internal/domain/entities"
)

// INoteRepository abstracts DynamoDB persistence for Note.

type INoteRepository interface {
	Create(ctx context.Context, n entities.Note) (entities.Note, error)
	GetByID(ctx context.Context, id string) (entities.Note, error)
	ListByBuildID(ctx context.Context, buildID string, clientVisibleOnly bool) ([]entities.Note, error)
}
