package entities

import "time"

// RunUpdate is a broadcast-style progress post about a whole run.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (run_id-index): run_id
//
// When VisibleToClients is set, creation of the document triggers one
// transactional email per distinct client owning a build in the run.

type RunUpdate struct {
	ID               string    `json:"id"`
	RunID            string    `json:"run_id"`
	AuthorID         string    `json:"author_id"`
	Title            string    `json:"title"`
	Body             string    `json:"body"`
	PhotoURLs        []string  `json:"photo_urls,omitempty"`
	VisibleToClients bool      `json:"visible_to_clients"`
	CreatedAt        time.Time `json:"created_at"`
}
