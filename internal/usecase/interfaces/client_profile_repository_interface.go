package interfaces

import (
	"context"
	"luthier_works/internal/domain/entities"
)

// IClientProfileRepository abstracts DynamoDB persistence for the
// denormalized client profile documents. The trigger handlers use it as the
// email fallback when the auth record cannot be resolved.

type IClientProfileRepository interface {
	GetByID(ctx context.Context, id string) (entities.ClientProfile, error)
}
