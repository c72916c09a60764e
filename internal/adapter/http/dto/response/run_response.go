package response

import (
	"time"

	"luthier_works/internal/domain/entities"
)

type StageResponse struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Order         int    `json:"order"`
	InternalOnly  bool   `json:"internal_only"`
	RequiresNote  bool   `json:"requires_note"`
	RequiresPhoto bool   `json:"requires_photo"`
	ClientLabel   string `json:"client_label,omitempty"`
}

type RunResponse struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Site       string          `json:"site,omitempty"`
	Active     bool            `json:"active"`
	Stages     []StageResponse `json:"stages"`
	StartedAt  time.Time       `json:"started_at"`
	EndedAt    *time.Time      `json:"ended_at,omitempty"`
	Archived   bool            `json:"archived"`
	ArchivedAt *time.Time      `json:"archived_at,omitempty"`
}

func FromStage(s entities.Stage) StageResponse {
	return StageResponse{
		ID:            s.ID,
		Label:         s.Label,
		Order:         s.Order,
		InternalOnly:  s.InternalOnly,
		RequiresNote:  s.RequiresNote,
		RequiresPhoto: s.RequiresPhoto,
		ClientLabel:   s.ClientLabel,
	}
}

func FromRun(r entities.Run) RunResponse {
	stages := make([]StageResponse, 0, len(r.Stages))
	for _, s := range r.StagesInOrder() {
		stages = append(stages, FromStage(s))
	}
	return RunResponse{
		ID:         r.ID,
		Name:       r.Name,
		Site:       r.Site,
		Active:     r.Active,
		Stages:     stages,
		StartedAt:  r.StartedAt,
		EndedAt:    r.EndedAt,
		Archived:   r.Archived,
		ArchivedAt: r.ArchivedAt,
	}
}

func FromRuns(runs []entities.Run) []RunResponse {
	out := make([]RunResponse, 0, len(runs))
	for _, r := range runs {
		out = append(out, FromRun(r))
	}
	return out
}

type RunUpdateResponse struct {
	ID               string    `json:"id"`
	RunID            string    `json:"run_id"`
	AuthorID         string    `json:"author_id"`
	Title            string    `json:"title"`
	Body             string    `json:"body"`
	PhotoURLs        []string  `json:"photo_urls,omitempty"`
	VisibleToClients bool      `json:"visible_to_clients"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromRunUpdate(u entities.RunUpdate) RunUpdateResponse {
	return RunUpdateResponse{
		ID:               u.ID,
		RunID:            u.RunID,
		AuthorID:         u.AuthorID,
		Title:            u.Title,
		Body:             u.Body,
		PhotoURLs:        u.PhotoURLs,
		VisibleToClients: u.VisibleToClients,
		CreatedAt:        u.CreatedAt,
	}
}
