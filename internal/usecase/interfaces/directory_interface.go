package interfaces

import (
	"context"
	"luthier_works/internal/domain/entities"
)

// IDirectoryPager abstracts the authentication service's paginated full-user
// listing (e.g. Cognito ListUsers). cursor is opaque; an empty next cursor
// means the listing is exhausted. The provider may return fewer users per
// page than requested.

type IDirectoryPager interface {
	ListUsersPage(ctx context.Context, pageSize int32, cursor string) (entries []entities.DirectoryEntry, nextCursor string, err error)
	EmailByID(ctx context.Context, userID string) (string, error)
}
