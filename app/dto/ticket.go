package dto

type TicketRequest struct {
	Summary     string `json:"summary"`
	Description string `json:"description"`
}
