package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"gateway-portal/app/apperrors"
	"gateway-portal/app/dto"
	"gateway-portal/app/middleware"
	"gateway-portal/app/services"
	"gateway-portal/global"

	"gorm.io/gorm"
)

type ActionController struct{ Actions *services.ActionService }

func NewActionController(actions *services.ActionService) *ActionController {
	return &ActionController{Actions: actions}
}

// Create serves POST /api/actions/create; the new action is attributed to
// the logged-in operator.
func (c *ActionController) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GtwUID == "" || req.ActionCommand == "" {
		writeError(w, http.StatusBadRequest, "gtw_uid and action_command are required")
		return
	}
	creator := ""
	if claims := middleware.GetClaims(r.Context()); claims != nil {
		creator = claims.Username
	}
	a, err := c.Actions.Enqueue(req.GtwUID, req.ActionCommand, req.Payload, creator)
	if err != nil {
		if errors.Is(err, apperrors.ErrUnknownGateway) {
			writeError(w, http.StatusNotFound, "unknown gateway")
			return
		}
		global.Logger.Error().Err(err).Msg("action create failed")
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"status": "action created", "action": a})
}

// UpdateStatus serves POST /api/actions/ack, the external acknowledgment
// channel for DELIVERED -> COMPLETED|FAILED.
func (c *ActionController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req dto.UpdateActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == 0 || req.Status == "" {
		writeError(w, http.StatusBadRequest, "id and status are required")
		return
	}
	if err := c.Actions.UpdateStatus(req.ID, req.Status); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrInvalidTransition):
			writeError(w, http.StatusConflict, "invalid action state transition")
		case errors.Is(err, gorm.ErrRecordNotFound):
			writeError(w, http.StatusNotFound, "action not found")
		default:
			global.Logger.Error().Err(err).Uint("id", req.ID).Msg("action update failed")
			writeError(w, http.StatusInternalServerError, "storage failure")
		}
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

// List serves GET /api/actions?gateway_uid=&status=.
func (c *ActionController) List(w http.ResponseWriter, r *http.Request) {
	gtwUID := r.URL.Query().Get("gateway_uid")
	if gtwUID == "" {
		writeError(w, http.StatusBadRequest, "gateway_uid is required")
		return
	}
	list, err := c.Actions.List(gtwUID, r.URL.Query().Get("status"))
	if err != nil {
		global.Logger.Error().Err(err).Msg("action list failed")
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	writeJSON(w, http.StatusOK, list)
}
