package entities

import "time"

// Note is a timestamped annotation on a build, optionally carrying photo
// references. VisibleToClient controls whether clients may read it.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (build_id-index): build_id
//
// Notes are created by staff only: either as the capture side effect of a
// stage move into a gated stage, or via an explicit add-note action.

type Note struct {
	ID              string    `json:"id"`
	BuildID         string    `json:"build_id"`
	AuthorID        string    `json:"author_id"`
	Body            string    `json:"body"`
	PhotoURLs       []string  `json:"photo_urls,omitempty"`
	VisibleToClient bool      `json:"visible_to_client"`
	StageID         string    `json:"stage_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ThreadKind says which kind of document a comment thread hangs off.

type ThreadKind string

const (
	ThreadKindNote      ThreadKind = "note"
	ThreadKindRunUpdate ThreadKind = "run_update"
)

// Comment is a reply in a thread under a build note or a run update.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (thread_id-index): thread_id

type Comment struct {
	ID         string     `json:"id"`
	ThreadKind ThreadKind `json:"thread_kind"`
	ThreadID   string     `json:"thread_id"`
	AuthorID   string     `json:"author_id"`
	AuthorName string     `json:"author_name,omitempty"`
	Body       string     `json:"body"`
	CreatedAt  time.Time  `json:"created_at"`
}
