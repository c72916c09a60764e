package request

type MoveBuildRequest struct {
	TargetStageID string `json:"target_stage_id" binding:"required"`
}

// CompleteCaptureRequest carries the note demanded by a gated stage. The
// capture can be skipped with an empty body and no photos.
type CompleteCaptureRequest struct {
	Body            string   `json:"body"`
	PhotoURLs       []string `json:"photo_urls"`
	VisibleToClient bool     `json:"visible_to_client"`
}
