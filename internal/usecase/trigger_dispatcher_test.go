package usecase

import (
	"context"
	"testing"

	"luthier_works/internal/domain/entities"
)

func TestTriggerDispatcher_Dispatch(t *testing.T) {
	t.Run("routes by collection and kind", func(t *testing.T) {
		d := NewTriggerDispatcher(nil)

		var buildHits, commentHits int
		d.Bind(entities.CollectionBuilds, entities.ChangeKindModify, func(context.Context, entities.ChangeEvent) { buildHits++ })
		d.Bind(entities.CollectionComments, entities.ChangeKindInsert, func(context.Context, entities.ChangeEvent) { commentHits++ })

		d.Dispatch(context.Background(), entities.ChangeEvent{Collection: entities.CollectionBuilds, Kind: entities.ChangeKindModify})
		d.Dispatch(context.Background(), entities.ChangeEvent{Collection: entities.CollectionBuilds, Kind: entities.ChangeKindInsert})
		d.Dispatch(context.Background(), entities.ChangeEvent{Collection: entities.CollectionComments, Kind: entities.ChangeKindInsert})
		d.Dispatch(context.Background(), entities.ChangeEvent{Collection: entities.CollectionRuns, Kind: entities.ChangeKindModify})

		if buildHits != 1 || commentHits != 1 {
			t.Fatalf("expected one hit each, got builds=%d comments=%d", buildHits, commentHits)
		}
	})

	t.Run("several handlers can share one binding key", func(t *testing.T) {
		d := NewTriggerDispatcher(nil)

		var first, second int
		d.Bind(entities.CollectionComments, entities.ChangeKindInsert, func(context.Context, entities.ChangeEvent) { first++ })
		d.Bind(entities.CollectionComments, entities.ChangeKindInsert, func(context.Context, entities.ChangeEvent) { second++ })

		d.Dispatch(context.Background(), entities.ChangeEvent{Collection: entities.CollectionComments, Kind: entities.ChangeKindInsert})

		if first != 1 || second != 1 {
			t.Fatalf("both handlers should run, got first=%d second=%d", first, second)
		}
	})
}
