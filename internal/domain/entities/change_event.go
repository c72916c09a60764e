package entities

import (
	"encoding/json"
	"time"
)

// Logical collection names used by the change feed. The streams listener maps
// physical table names onto these so consumers never see deployment naming.
const (
	CollectionRuns       = "runs"
	CollectionBuilds     = "builds"
	CollectionNotes      = "notes"
	CollectionComments   = "comments"
	CollectionInvoices   = "invoices"
	CollectionRunUpdates = "run_updates"
)

// ChangeKind is the mutation kind carried by a change-feed event.

type ChangeKind string

const (
	ChangeKindInsert ChangeKind = "insert"
	ChangeKindModify ChangeKind = "modify"
	ChangeKindRemove ChangeKind = "remove"
)

// ChangeEvent is one document mutation observed on the change feed. Before
// and After are the JSON-encoded document images (Before is nil on insert,
// After is nil on remove). Events for one document arrive in commit order;
// there is no ordering guarantee across collections.

type ChangeEvent struct {
	Collection string          `json:"collection"`
	Kind       ChangeKind      `json:"kind"`
	Before     json.RawMessage `json:"before,omitempty"`
	After      json.RawMessage `json:"after,omitempty"`
	Sequence   string          `json:"sequence,omitempty"`
	At         time.Time       `json:"at"`
}

// DecodeBefore unmarshals the old image into v. Returns false when the event
// has no old image.
func (e ChangeEvent) DecodeBefore(v any) (bool, error) {
	if len(e.Before) == 0 {
		return false, nil
	}
	return true, json.Unmarshal(e.Before, v)
}

// DecodeAfter unmarshals the new image into v. Returns false when the event
// has no new image.
func (e ChangeEvent) DecodeAfter(v any) (bool, error) {
	if len(e.After) == 0 {
		return false, nil
	}
	return true, json.Unmarshal(e.After, v)
}
