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
	ErrInvalidOrderNumber = errors.New("invalid order number")
	ErrInvalidModel       = errors.New("invalid model")
	ErrEmptyNote          = errors.New("note needs a body or photos")
)

// NewBuildInput is the form payload for registering a guitar in a run.

type NewBuildInput struct {
	RunID       string
	ClientID    string
	ClientName  string
	ClientEmail string
	OrderNumber string
	Model       string
	Finish      string
	Serial      string
	Spec        *entities.BuildSpec
}

// IBuildUseCase manages builds outside of stage movement (which belongs to
// the stage pipeline).

type IBuildUseCase interface {
	CreateBuild(ctx context.Context, actor entities.Actor, in NewBuildInput) (entities.Build, error)
	GetBuild(ctx context.Context, id string) (entities.Build, error)
	ListBuildsByRun(ctx context.Context, runID string) ([]entities.Build, error)
	SetArchived(ctx context.Context, actor entities.Actor, buildID string, archived bool) (entities.Build, error)
	AddNote(ctx context.Context, actor entities.Actor, buildID string, capture NoteCapture) (entities.Note, error)
	ListNotes(ctx context.Context, actor entities.Actor, buildID string) ([]entities.Note, error)
}

type BuildUseCase struct {
	builds interfaces.IBuildRepository
	runs   interfaces.IRunRepository
	notes  interfaces.INoteRepository
}

var _ IBuildUseCase = (*BuildUseCase)(nil)

func NewBuildUseCase(builds interfaces.IBuildRepository, runs interfaces.IRunRepository, notes interfaces.INoteRepository) *BuildUseCase {
	return &BuildUseCase{builds: builds, runs: runs, notes: notes}
}

func (u *BuildUseCase) CreateBuild(ctx context.Context, actor entities.Actor, in NewBuildInput) (entities.Build, error) {
	if !actor.Role.IsStaff() {
		return entities.Build{}, ErrActorNotStaff
	}
	if strings.TrimSpace(in.OrderNumber) == "" {
		return entities.Build{}, ErrInvalidOrderNumber
	}
	if strings.TrimSpace(in.Model) == "" {
		return entities.Build{}, ErrInvalidModel
	}

	run, err := u.runs.GetByID(ctx, strings.TrimSpace(in.RunID))
	if err != nil {
		return entities.Build{}, err
	}
	if run.ID == "" {
		return entities.Build{}, ErrRunNotFound
	}
	stages := run.StagesInOrder()
	if len(stages) == 0 {
		return entities.Build{}, ErrNoStages
	}

	now := time.Now().UTC()
	b := entities.Build{
		ID:          uuid.NewString(),
		RunID:       run.ID,
		StageID:     stages[0].ID, // every build enters at the pipeline's first stage
		ClientID:    strings.TrimSpace(in.ClientID),
		ClientName:  strings.TrimSpace(in.ClientName),
		ClientEmail: strings.TrimSpace(in.ClientEmail),
		OrderNumber: strings.TrimSpace(in.OrderNumber),
		Model:       strings.TrimSpace(in.Model),
		Finish:      strings.TrimSpace(in.Finish),
		Serial:      strings.TrimSpace(in.Serial),
		Spec:        in.Spec,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	created, err := u.builds.Create(ctx, b)
	if err != nil {
		log.Printf("[build][usecase] create failed order=%s err=%v", in.OrderNumber, err)
		return entities.Build{}, err
	}
	log.Printf("[build][usecase] build created build_id=%s run_id=%s stage_id=%s", created.ID, created.RunID, created.StageID)
	return created, nil
}

func (u *BuildUseCase) GetBuild(ctx context.Context, id string) (entities.Build, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Build{}, ErrInvalidBuildID
	}
	b, err := u.builds.GetByID(ctx, id)
	if err != nil {
		return entities.Build{}, err
	}
	if b.ID == "" {
		return entities.Build{}, ErrBuildNotFound
	}
	return b, nil
}

func (u *BuildUseCase) ListBuildsByRun(ctx context.Context, runID string) ([]entities.Build, error) {
	runID = strings.TrimSpace(runID)
	if runID == "" {
		return nil, ErrRunNotFound
	}
	return u.builds.ListByRunID(ctx, runID)
}

func (u *BuildUseCase) SetArchived(ctx context.Context, actor entities.Actor, buildID string, archived bool) (entities.Build, error) {
	if !actor.Role.IsStaff() {
		return entities.Build{}, ErrActorNotStaff
	}
	b, err := u.builds.SetArchived(ctx, strings.TrimSpace(buildID), archived)
	if err != nil {
		log.Printf("[build][usecase] archive toggle failed build_id=%s err=%v", buildID, err)
		return entities.Build{}, err
	}
	if b.ID == "" {
		return entities.Build{}, ErrBuildNotFound
	}
	log.Printf("[build][usecase] build archived=%t build_id=%s", archived, b.ID)
	return b, nil
}

func (u *BuildUseCase) AddNote(ctx context.Context, actor entities.Actor, buildID string, capture NoteCapture) (entities.Note, error) {
	if !actor.Role.IsStaff() {
		return entities.Note{}, ErrActorNotStaff
	}
	if capture.Empty() {
		return entities.Note{}, ErrEmptyNote
	}
	b, err := u.GetBuild(ctx, buildID)
	if err != nil {
		return entities.Note{}, err
	}

	n := entities.Note{
		ID:              uuid.NewString(),
		BuildID:         b.ID,
		AuthorID:        actor.UserID,
		Body:            strings.TrimSpace(capture.Body),
		PhotoURLs:       capture.PhotoURLs,
		VisibleToClient: capture.VisibleToClient,
		CreatedAt:       time.Now().UTC(),
	}
	created, err := u.notes.Create(ctx, n)
	if err != nil {
		log.Printf("[build][usecase] note create failed build_id=%s err=%v", buildID, err)
		return entities.Note{}, err
	}
	log.Printf("[build][usecase] note added build_id=%s note_id=%s visible_to_client=%t", b.ID, created.ID, created.VisibleToClient)
	return created, nil
}

func (u *BuildUseCase) ListNotes(ctx context.Context, actor entities.Actor, buildID string) ([]entities.Note, error) {
	b, err := u.GetBuild(ctx, buildID)
	if err != nil {
		return nil, err
	}
	// Clients only ever see notes flagged visible to them.
	clientVisibleOnly := !actor.Role.IsStaff()
	return u.notes.ListByBuildID(ctx, b.ID, clientVisibleOnly)
}
