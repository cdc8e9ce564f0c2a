package dto

type SubmitListingRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PostedDate  string `json:"postedDate,omitempty"`
}

type ListingResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Description string `json:"description"`
	PostedDate  string `json:"postedDate"`
}

type SubmitListingResponse struct {
	Message string          `json:"message"`
	Listing ListingResponse `json:"listing"`
}

type EditorStateResponse struct {
	Mode        string `json:"mode"`
	TargetID    string `json:"target_id,omitempty"`
	SubmitLabel string `json:"submit_label"`
	CanCancel   bool   `json:"can_cancel"`
}
