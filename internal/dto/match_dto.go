package dto

type UpdateMatchStatusRequest struct {
	Status string `json:"status"`
}
