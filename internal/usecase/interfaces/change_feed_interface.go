package interfaces

import (
	"context"
	"luthier_works/internal/domain/entities"
)

// IChangeFeed abstracts the live change feed over the document store
// (DynamoDB Streams in the reference deployment).
//
// Subscribe delivers events for one logical collection on the returned
// channel until the context is cancelled or the returned teardown func is
// called. Events for the same document arrive in commit order; nothing is
// guaranteed across collections. Delivery is at-least-once. A subscription
// that is never torn down leaks its polling goroutine.

type IChangeFeed interface {
	Subscribe(ctx context.Context, collection string) (<-chan entities.ChangeEvent, func(), error)
}
