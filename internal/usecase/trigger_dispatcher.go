package usecase

import (
	"context"
	"log"
	"sync"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"
)

// TriggerHandlerFunc reacts to one change-feed event. Handlers are stateless
// and idempotent by intent: delivery is at-least-once, so the same delta may
// be handled twice and re-send its notification or email. Nothing a handler
// does propagates back to the write that caused the event.

type TriggerHandlerFunc func(ctx context.Context, ev entities.ChangeEvent)

type binding struct {
	kind    entities.ChangeKind
	handler TriggerHandlerFunc
}

// TriggerDispatcher subscribes to the change feed and routes each event to
// the handlers bound to its collection and mutation kind. Handler invocations
// for different events may overlap; a single invocation runs to completion
// without internal parallelism.

type TriggerDispatcher struct {
	feed     interfaces.IChangeFeed
	bindings map[string][]binding
}

func NewTriggerDispatcher(feed interfaces.IChangeFeed) *TriggerDispatcher {
	return &TriggerDispatcher{feed: feed, bindings: make(map[string][]binding)}
}

// Bind registers a handler for one mutation kind on one collection.
func (d *TriggerDispatcher) Bind(collection string, kind entities.ChangeKind, h TriggerHandlerFunc) {
	d.bindings[collection] = append(d.bindings[collection], binding{kind: kind, handler: h})
}

// Dispatch runs every handler bound to the event. Exposed so stream records
// can be replayed through the same path the live feed uses.
func (d *TriggerDispatcher) Dispatch(ctx context.Context, ev entities.ChangeEvent) {
	for _, b := range d.bindings[ev.Collection] {
		if b.kind != ev.Kind {
			continue
		}
		b.handler(ctx, ev)
	}
}

// Run subscribes to every bound collection and dispatches events until the
// context is cancelled.
func (d *TriggerDispatcher) Run(ctx context.Context) error {
	var wg sync.WaitGroup
	cancels := make([]func(), 0, len(d.bindings))
	for collection := range d.bindings {
		ch, cancel, err := d.feed.Subscribe(ctx, collection)
		if err != nil {
			for _, c := range cancels {
				c()
			}
			return err
		}
		cancels = append(cancels, cancel)
		wg.Add(1)
		go func(collection string, ch <-chan entities.ChangeEvent) {
			defer wg.Done()
			for ev := range ch {
				d.Dispatch(ctx, ev)
			}
			log.Printf("[trigger][dispatcher] feed closed collection=%s", collection)
		}(collection, ch)
	}
	log.Printf("[trigger][dispatcher] running collections=%d", len(d.bindings))

	<-ctx.Done()
	for _, cancel := range cancels {
		cancel()
	}
	wg.Wait()
	return ctx.Err()
}
