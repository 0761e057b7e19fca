package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gateway-portal/app/dto"
	"gateway-portal/app/middleware"
	"gateway-portal/app/services"
	"gateway-portal/global"
)

type TicketController struct{ Tickets *services.TicketService }

func NewTicketController(tickets *services.TicketService) *TicketController {
	return &TicketController{Tickets: tickets}
}

// Post serves POST /api/integrations/mantis/create-ticket, a one-shot proxy
// to the ticketing system.
func (c *TicketController) Post(w http.ResponseWriter, r *http.Request) {
	var req dto.TicketRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Summary == "" || req.Description == "" {
		writeError(w, http.StatusBadRequest, "summary and description are required")
		return
	}
	operator := ""
	if claims := middleware.GetClaims(r.Context()); claims != nil {
		operator = claims.Username
	}
	status, body, err := c.Tickets.Create(req, operator)
	if err != nil {
		var upstream *services.UpstreamError
		switch {
		case errors.Is(err, services.ErrTicketNotConfigured):
			writeError(w, http.StatusInternalServerError, "ticketing configuration missing")
		case errors.As(err, &upstream):
			global.Logger.Error().Err(err).Msg("mantis proxy failed")
			writeError(w, http.StatusBadGateway, "ticketing system unreachable")
		default:
			writeError(w, http.StatusInternalServerError, "ticket creation failed")
		}
		return
	}
	writeJSON(w, status, body)
}
