package interfaces

import (
	"context"
	"luthier_works/internal/domain/entities"
)

// IBuildRepository abstracts DynamoDB persistence for Build.
//
// UpdateStage is the single atomic field update behind the stage pipeline:
// it sets stage_id and refreshes updated_at in one UpdateItem, nothing else.

type IBuildRepository interface {
	Create(ctx context.Context, b entities.Build) (entities.Build, error)
	GetByID(ctx context.Context, id string) (entities.Build, error)
	ListByRunID(ctx context.Context, runID string) ([]entities.Build, error)
	UpdateStage(ctx context.Context, buildID, stageID string) (entities.Build, error)
	SetArchived(ctx context.Context, buildID string, archived bool) (entities.Build, error)
}
