package entities

import "time"

// Build is a single guitar tracked through a run's stages.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (run_id-index): run_id
//
// StageID must reference a stage belonging to RunID; cross-run references are
// invalid and rejected by the stage pipeline before any write. Client name
// and email are denormalized from the auth record so client-facing reads do
// not need an auth round trip.

type Build struct {
	ID          string     `json:"id"`
	RunID       string     `json:"run_id"`
	StageID     string     `json:"stage_id"`
	ClientID    string     `json:"client_id,omitempty"`
	ClientName  string     `json:"client_name,omitempty"`
	ClientEmail string     `json:"client_email,omitempty"`
	OrderNumber string     `json:"order_number"`
	Model       string     `json:"model"`
	Finish      string     `json:"finish"`
	Serial      string     `json:"serial,omitempty"`
	Spec        *BuildSpec `json:"spec,omitempty"`
	Archived    bool       `json:"archived,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BuildSpec is the structured build sheet captured at order time.
type BuildSpec struct {
	BodyWood    string `json:"body_wood,omitempty"`
	NeckWood    string `json:"neck_wood,omitempty"`
	Fretboard   string `json:"fretboard,omitempty"`
	Pickups     string `json:"pickups,omitempty"`
	Hardware    string `json:"hardware,omitempty"`
	ScaleLength string `json:"scale_length,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// HasClientContact reports whether the build can be tied back to a client at
// all, either directly by email or through an auth/profile lookup by id.
func (b Build) HasClientContact() bool {
	return b.ClientEmail != "" || b.ClientID != ""
}
