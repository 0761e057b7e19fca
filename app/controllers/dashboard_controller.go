package controllers

import (
	"net/http"
	"time"

	"gateway-portal/app/services"
	"gateway-portal/global"
)

type DashboardController struct{ Dashboard *services.DashboardService }

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{Dashboard: dashboard}
}

// Stats serves GET /api/dashboard/stats.
func (c *DashboardController) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := c.Dashboard.Stats(r.Context(), time.Now())
	if err != nil {
		global.Logger.Error().Err(err).Msg("dashboard stats failed")
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// History serves GET /api/metrics/mirth/history?gateway_uid=&channel_name=&range=24h|7d.
func (c *DashboardController) History(w http.ResponseWriter, r *http.Request) {
	gtwUID := r.URL.Query().Get("gateway_uid")
	channelName := r.URL.Query().Get("channel_name")
	if gtwUID == "" || channelName == "" {
		writeError(w, http.StatusBadRequest, "gateway_uid and channel_name are required")
		return
	}
	rng := r.URL.Query().Get("range")
	rows, err := c.Dashboard.ChannelHistory(gtwUID, channelName, rng, time.Now())
	if err != nil {
		global.Logger.Error().Err(err).Msg("channel history failed")
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	writeJSON(w, http.StatusOK, rows)
}
