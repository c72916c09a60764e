package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"luthier_works/internal/domain/entities"
	"luthier_works/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrInvalidRunName    = errors.New("invalid run name")
	ErrNoStages          = errors.New("run needs at least one stage")
	ErrDuplicateOrder    = errors.New("duplicate stage order")
	ErrInvalidUpdateBody = errors.New("invalid run update")
)

// StageInput describes one stage of a run at setup time.

type StageInput struct {
	Label         string
	Order         int
	InternalOnly  bool
	RequiresNote  bool
	RequiresPhoto bool
	ClientLabel   string
}

// IRunUseCase manages production runs and their broadcast updates.

type IRunUseCase interface {
	CreateRun(ctx context.Context, actor entities.Actor, name, site string, stages []StageInput) (entities.Run, error)
	GetRun(ctx context.Context, id string) (entities.Run, error)
	ListRuns(ctx context.Context, includeArchived bool) ([]entities.Run, error)
	ArchiveRun(ctx context.Context, actor entities.Actor, id string) (entities.Run, error)
	PostRunUpdate(ctx context.Context, actor entities.Actor, runID, title, body string, photoURLs []string, visibleToClients bool) (entities.RunUpdate, error)
}

type RunUseCase struct {
	runs    interfaces.IRunRepository
	updates interfaces.IRunUpdateRepository
}

var _ IRunUseCase = (*RunUseCase)(nil)

func NewRunUseCase(runs interfaces.IRunRepository, updates interfaces.IRunUpdateRepository) *RunUseCase {
	return &RunUseCase{runs: runs, updates: updates}
}

func (u *RunUseCase) CreateRun(ctx context.Context, actor entities.Actor, name, site string, stages []StageInput) (entities.Run, error) {
	if !actor.Role.IsStaff() {
		return entities.Run{}, ErrActorNotStaff
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.Run{}, ErrInvalidRunName
	}
	if len(stages) == 0 {
		return entities.Run{}, ErrNoStages
	}

	// Stage order must be a total order within the run or progress is not
	// well-defined. Rejected here, at the only boundary where stages are
	// created.
	seen := make(map[int]struct{}, len(stages))
	built := make([]entities.Stage, 0, len(stages))
	for _, in := range stages {
		if _, dup := seen[in.Order]; dup {
			return entities.Run{}, ErrDuplicateOrder
		}
		seen[in.Order] = struct{}{}
		built = append(built, entities.Stage{
			ID:            uuid.NewString(),
			Label:         strings.TrimSpace(in.Label),
			Order:         in.Order,
			InternalOnly:  in.InternalOnly,
			RequiresNote:  in.RequiresNote,
			RequiresPhoto: in.RequiresPhoto,
			ClientLabel:   strings.TrimSpace(in.ClientLabel),
		})
	}

	run := entities.Run{
		ID:        uuid.NewString(),
		Name:      name,
		Site:      strings.TrimSpace(site),
		Active:    true,
		Stages:    built,
		StartedAt: time.Now().UTC(),
	}
	created, err := u.runs.Create(ctx, run)
	if err != nil {
		log.Printf("[run][usecase] create failed name=%q err=%v", name, err)
		return entities.Run{}, err
	}
	log.Printf("[run][usecase] run created run_id=%s stages=%d", created.ID, len(built))
	return created, nil
}

func (u *RunUseCase) GetRun(ctx context.Context, id string) (entities.Run, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Run{}, ErrRunNotFound
	}
	run, err := u.runs.GetByID(ctx, id)
	if err != nil {
		return entities.Run{}, err
	}
	if run.ID == "" {
		return entities.Run{}, ErrRunNotFound
	}
	return run, nil
}

func (u *RunUseCase) ListRuns(ctx context.Context, includeArchived bool) ([]entities.Run, error) {
	return u.runs.List(ctx, includeArchived)
}

func (u *RunUseCase) ArchiveRun(ctx context.Context, actor entities.Actor, id string) (entities.Run, error) {
	if !actor.Role.IsStaff() {
		return entities.Run{}, ErrActorNotStaff
	}
	run, err := u.runs.Archive(ctx, strings.TrimSpace(id))
	if err != nil {
		log.Printf("[run][usecase] archive failed run_id=%s err=%v", id, err)
		return entities.Run{}, err
	}
	if run.ID == "" {
		return entities.Run{}, ErrRunNotFound
	}
	log.Printf("[run][usecase] run archived run_id=%s", run.ID)
	return run, nil
}

func (u *RunUseCase) PostRunUpdate(ctx context.Context, actor entities.Actor, runID, title, body string, photoURLs []string, visibleToClients bool) (entities.RunUpdate, error) {
	if !actor.Role.IsStaff() {
		return entities.RunUpdate{}, ErrActorNotStaff
	}
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(body) == "" {
		return entities.RunUpdate{}, ErrInvalidUpdateBody
	}
	if _, err := u.GetRun(ctx, runID); err != nil {
		return entities.RunUpdate{}, err
	}

	update := entities.RunUpdate{
		ID:               uuid.NewString(),
		RunID:            strings.TrimSpace(runID),
		AuthorID:         actor.UserID,
		Title:            title,
		Body:             strings.TrimSpace(body),
		PhotoURLs:        photoURLs,
		VisibleToClients: visibleToClients,
		CreatedAt:        time.Now().UTC(),
	}
	created, err := u.updates.Create(ctx, update)
	if err != nil {
		log.Printf("[run][usecase] update post failed run_id=%s err=%v", runID, err)
		return entities.RunUpdate{}, err
	}
	log.Printf("[run][usecase] update posted run_id=%s update_id=%s visible_to_clients=%t", runID, created.ID, visibleToClients)
	return created, nil
}
