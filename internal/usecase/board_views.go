package usecase

import (
	"sort"

	"luthier_works/internal/domain/entities"
)

// StageColumn is one column of the board: a stage and the builds currently
// sitting in it.

type StageColumn struct {
	Stage  entities.Stage
	Builds []entities.Build
}

// BoardView is the derived picture of one run: per-stage build lists,
// aggregate counts and per-build progress. It is a pure function of a
// Run/Builds snapshot and holds no state of its own; every change-feed tick
// rebuilds it from scratch rather than patching it incrementally.

type BoardView struct {
	RunID       string
	Columns     []StageColumn
	StageCounts map[string]int
	TotalBuilds int
	Progress    map[string]float64
}

// ComputeBoardView groups the run's builds by stage in pipeline order.
// Archived builds are skipped. Builds referencing a stage outside the run
// (which the pipeline rejects, but the feed may still surface from older
// data) are counted in TotalBuilds but appear in no column and get progress 0.
func ComputeBoardView(run entities.Run, builds []entities.Build) BoardView {
	stages := run.StagesInOrder()

	view := BoardView{
		RunID:       run.ID,
		Columns:     make([]StageColumn, len(stages)),
		StageCounts: make(map[string]int, len(stages)),
		Progress:    make(map[string]float64),
	}

	byStage := make(map[string][]entities.Build, len(stages))
	for _, b := range builds {
		if b.Archived || b.RunID != run.ID {
			continue
		}
		view.TotalBuilds++
		byStage[b.StageID] = append(byStage[b.StageID], b)
		view.Progress[b.ID] = StageProgress(run, b.StageID)
	}

	for i, s := range stages {
		group := byStage[s.ID]
		sort.SliceStable(group, func(a, b int) bool { return group[a].OrderNumber < group[b].OrderNumber })
		view.Columns[i] = StageColumn{Stage: s, Builds: group}
		view.StageCounts[s.ID] = len(group)
	}
	return view
}

// StageProgress computes (index of the stage in the run's order-sorted stage
// list + 1) / (stage count). A stage id outside the run, or a run with no
// stages, yields 0.
func StageProgress(run entities.Run, stageID string) float64 {
	stages := run.StagesInOrder()
	if len(stages) == 0 {
		return 0
	}
	for i, s := range stages {
		if s.ID == stageID {
			return float64(i+1) / float64(len(stages))
		}
	}
	return 0
}
