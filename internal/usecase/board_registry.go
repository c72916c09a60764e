package usecase

import (
	"context"
	"sync"

	"luthier_works/internal/usecase/interfaces"
)

// BoardRegistry hands out one live BoardSynchronizer per run, started lazily
// on first use and shared by every viewer of that run. StopAll tears every
// board down on shutdown so no subscription outlives the process's interest.

type BoardRegistry struct {
	pipeline IStagePipelineUseCase
	runs     interfaces.IRunRepository
	builds   interfaces.IBuildRepository
	feed     interfaces.IChangeFeed

	mu     sync.Mutex
	boards map[string]*BoardSynchronizer
}

func NewBoardRegistry(pipeline IStagePipelineUseCase, runs interfaces.IRunRepository, builds interfaces.IBuildRepository, feed interfaces.IChangeFeed) *BoardRegistry {
	return &BoardRegistry{
		pipeline: pipeline,
		runs:     runs,
		builds:   builds,
		feed:     feed,
		boards:   make(map[string]*BoardSynchronizer),
	}
}

// Board returns the synchronizer for runID, starting one if needed. A board
// is shared by every viewer of the run, so its feed subscriptions must not
// die with whichever request happened to start it: the board is started
// detached from the caller's cancellation and lives until StopAll.
func (r *BoardRegistry) Board(ctx context.Context, runID string) (*BoardSynchronizer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.boards[runID]; ok {
		return b, nil
	}
	b := NewBoardSynchronizer(runID, r.pipeline, r.runs, r.builds, r.feed)
	if err := b.Start(context.WithoutCancel(ctx)); err != nil {
		return nil, err
	}
	r.boards[runID] = b
	return b, nil
}

// StopAll tears down every board subscription.
func (r *BoardRegistry) StopAll() {
	r.mu.Lock()
	boards := r.boards
	r.boards = make(map[string]*BoardSynchronizer)
	r.mu.Unlock()
	for _, b := range boards {
		b.Stop()
	}
}
