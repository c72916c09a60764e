package interfaces

import (
	"context"
	"luthier_works/internal/domain/entities"
)

// IRunUpdateRepository abstracts DynamoDB persistence for RunUpdate.

type IRunUpdateRepository interface {
	Create(ctx context.Context, u entities.RunUpdate) (entities.RunUpdate, error)
	GetByID(ctx context.Context, id string) (entities.RunUpdate, error)
	ListByRunID(ctx context.Context, runID string) ([]entities.RunUpdate, error)
}
