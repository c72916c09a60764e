package interfaces

import (
	"context"
	"luthier_works/internal/domain/entities"
)

// IRunRepository abstracts DynamoDB persistence for Run (with its embedded
// stage list).

type IRunRepository interface {
	Create(ctx context.Context, r entities.Run) (entities.Run, error)
	GetByID(ctx context.Context, id string) (entities.Run, error)
	List(ctx context.Context, includeArchived bool) ([]entities.Run, error)
	Archive(ctx context.Context, id string) (entities.Run, error)
}
