package request

type BuildSpecRequest struct {
	BodyWood    string `json:"body_wood"`
	NeckWood    string `json:"neck_wood"`
	Fretboard   string `json:"fretboard"`
	Pickups     string `json:"pickups"`
	Hardware    string `json:"hardware"`
	ScaleLength string `json:"scale_length"`
	Notes       string `json:"notes"`
}

type CreateBuildRequest struct {
	RunID       string            `json:"run_id" binding:"required"`
	OrderNumber string            `json:"order_number" binding:"required"`
	Model       string            `json:"model" binding:"required"`
	Finish      string            `json:"finish"`
	Serial      string            `json:"serial"`
	ClientID    string            `json:"client_id"`
	ClientName  string            `json:"client_name"`
	ClientEmail string            `json:"client_email"`
	Spec        *BuildSpecRequest `json:"spec"`
}

type ArchiveBuildRequest struct {
	Archived bool `json:"archived"`
}

type NoteRequest struct {
	Body            string   `json:"body"`
	PhotoURLs       []string `json:"photo_urls"`
	VisibleToClient bool     `json:"visible_to_client"`
}
