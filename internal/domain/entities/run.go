package entities

import (
	"sort"
	"time"
)

// Run is a production batch of guitars sharing one stage pipeline.
//
// Storage model (DynamoDB):
//   - PK: id
//   - the ordered stage list is embedded in the run document; stages are
//     created at run setup and rarely touched afterwards, so a single
//     document keeps stage reads consistent with the run itself.
//
// Runs are archived (soft-deleted), never hard-deleted.

type Run struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Site       string     `json:"site"`
	Active     bool       `json:"active"`
	Stages     []Stage    `json:"stages"`
	StartedAt  time.Time  `json:"started_at"`
	EndedAt    *time.Time `json:"ended_at,omitempty"`
	Archived   bool       `json:"archived,omitempty"`
	ArchivedAt *time.Time `json:"archived_at,omitempty"`
}

// Stage is one ordered step in a run's pipeline.
//
// Order defines the pipeline sequence. It is unique within a run but not
// required to be contiguous (10, 20, 35 is fine).

type Stage struct {
	ID            string `json:"id"`
	Label         string `json:"label"`
	Order         int    `json:"order"`
	InternalOnly  bool   `json:"internal_only"`
	RequiresNote  bool   `json:"requires_note"`
	RequiresPhoto bool   `json:"requires_photo"`
	ClientLabel   string `json:"client_label,omitempty"`
}

// DisplayLabel returns the label a client may see: the client-facing status
// label when present, the internal label otherwise unless the stage is
// internal-only.
func (s Stage) DisplayLabel() string {
	if s.ClientLabel != "" {
		return s.ClientLabel
	}
	if s.InternalOnly {
		return ""
	}
	return s.Label
}

// StagesInOrder returns the run's stages sorted by Order. The slice is a
// copy; mutating it does not touch the run.
func (r Run) StagesInOrder() []Stage {
	out := make([]Stage, len(r.Stages))
	copy(out, r.Stages)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Order < out[j].Order })
	return out
}

// StageByID resolves a stage of this run. The second return is false when
// the id does not belong to the run.
func (r Run) StageByID(stageID string) (Stage, bool) {
	for _, s := range r.Stages {
		if s.ID == stageID {
			return s, true
		}
	}
	return Stage{}, false
}

// HasTotalStageOrder reports whether the run's stages define a total order,
// i.e. no two stages share the same Order value. Progress computation is only
// well-defined when this holds.
func (r Run) HasTotalStageOrder() bool {
	seen := make(map[int]struct{}, len(r.Stages))
	for _, s := range r.Stages {
		if _, dup := seen[s.Order]; dup {
			return false
		}
		seen[s.Order] = struct{}{}
	}
	return true
}
