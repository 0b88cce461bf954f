package request

type UpdateNotesRequest struct {
	Notes string `json:"notes" binding:"max=500"`
}

type SelectGuestRequest struct {
	Guest string `json:"guest" binding:"required"`
}
