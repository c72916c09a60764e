package response

import (
	"time"

	"luthier_works/internal/domain/entities"
)

type BuildResponse struct {
	ID          string              `json:"id"`
	RunID       string              `json:"run_id"`
	StageID     string              `json:"stage_id"`
	ClientID    string              `json:"client_id,omitempty"`
	ClientName  string              `json:"client_name,omitempty"`
	OrderNumber string              `json:"order_number"`
	Model       string              `json:"model"`
	Finish      string              `json:"finish,omitempty"`
	Serial      string              `json:"serial,omitempty"`
	Spec        *entities.BuildSpec `json:"spec,omitempty"`
	Archived    bool                `json:"archived"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromBuild(b entities.Build) BuildResponse {
	return BuildResponse{
		ID:          b.ID,
		RunID:       b.RunID,
		StageID:     b.StageID,
		ClientID:    b.ClientID,
		ClientName:  b.ClientName,
		OrderNumber: b.OrderNumber,
		Model:       b.Model,
		Finish:      b.Finish,
		Serial:      b.Serial,
		Spec:        b.Spec,
		Archived:    b.Archived,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromBuilds(builds []entities.Build) []BuildResponse {
	out := make([]BuildResponse, 0, len(builds))
	for _, b := range builds {
		out = append(out, FromBuild(b))
	}
	return out
}

type NoteResponse struct {
	ID              string    `json:"id"`
	BuildID         string    `json:"build_id"`
	AuthorID        string    `json:"author_id"`
	Body            string    `json:"body"`
	PhotoURLs       []string  `json:"photo_urls,omitempty"`
	VisibleToClient bool      `json:"visible_to_client"`
	StageID         string    `json:"stage_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func FromNote(n entities.Note) NoteResponse {
	return NoteResponse{
		ID:              n.ID,
		BuildID:         n.BuildID,
		AuthorID:        n.AuthorID,
		Body:            n.Body,
		PhotoURLs:       n.PhotoURLs,
		VisibleToClient: n.VisibleToClient,
		StageID:         n.StageID,
		CreatedAt:       n.CreatedAt,
	}
}

func FromNotes(notes []entities.Note) []NoteResponse {
	out := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		out = append(out, FromNote(n))
	}
	return out
}
