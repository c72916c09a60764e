package request

type StageRequest struct {
	Label         string `json:"label" binding:"required"`
	Order         int    `json:"order"`
	InternalOnly  bool   `json:"internal_only"`
	RequiresNote  bool   `json:"requires_note"`
	RequiresPhoto bool   `json:"requires_photo"`
	ClientLabel   string `json:"client_label"`
}

type CreateRunRequest struct {
	Name   string         `json:"name" binding:"required"`
	Site   string         `json:"site"`
	Stages []StageRequest `json:"stages" binding:"required"`
}

type RunUpdateRequest struct {
	Title            string   `json:"title" binding:"required"`
	Body             string   `json:"body" binding:"required"`
	PhotoURLs        []string `json:"photo_urls"`
	VisibleToClients bool     `json:"visible_to_clients"`
}
