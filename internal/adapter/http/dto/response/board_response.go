package response

import (
	"luthier_works/internal/usecase"
)

type StageColumnResponse struct {
	Stage  StageResponse   `json:"stage"`
	Builds []BuildResponse `json:"builds"`
}

type BoardResponse struct {
	RunID       string                `json:"run_id"`
	Columns     []StageColumnResponse `json:"columns"`
	StageCounts map[string]int        `json:"stage_counts"`
	TotalBuilds int                   `json:"total_builds"`
	Progress    map[string]float64    `json:"progress"`
}

func FromBoardView(v usecase.BoardView) BoardResponse {
	columns := make([]StageColumnResponse, 0, len(v.Columns))
	for _, col := range v.Columns {
		columns = append(columns, StageColumnResponse{
			Stage:  FromStage(col.Stage),
			Builds: FromBuilds(col.Builds),
		})
	}
	return BoardResponse{
		RunID:       v.RunID,
		Columns:     columns,
		StageCounts: v.StageCounts,
		TotalBuilds: v.TotalBuilds,
		Progress:    v.Progress,
	}
}

// MoveResponse reports how a board move landed: applied, swallowed as a
// no-op, or parked behind a capture prompt.
type MoveResponse struct {
	Committed       bool `json:"committed"`
	NoOp            bool `json:"no_op"`
	CaptureRequired bool `json:"capture_required"`
}

func FromMoveResult(r usecase.MoveResult) MoveResponse {
	return MoveResponse{
		Committed:       r.Committed,
		NoOp:            r.NoOp,
		CaptureRequired: r.CaptureRequired,
	}
}
