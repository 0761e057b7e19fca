package controllers

import (
	"net/http"
	"strconv"

	"gateway-portal/app/services"
	"gateway-portal/global"
)

const defaultLogLimit = 200

type LogEventController struct{ Logs *services.LogEventService }

func NewLogEventController(logs *services.LogEventService) *LogEventController {
	return &LogEventController{Logs: logs}
}

// List serves GET /api/logs?level=&search=&limit=.
func (c *LogEventController) List(w http.ResponseWriter, r *http.Request) {
	limit := defaultLogLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	views, err := c.Logs.List(r.URL.Query().Get("level"), r.URL.Query().Get("search"), limit)
	if err != nil {
		global.Logger.Error().Err(err).Msg("log list failed")
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	writeJSON(w, http.StatusOK, views)
}
