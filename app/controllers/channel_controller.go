package controllers

import (
	"net/http"
	"strconv"

	"gateway-portal/app/repo"
	"gateway-portal/global"
)

type ChannelController struct{ Channels *repo.ChannelRepository }

func NewChannelController(channels *repo.ChannelRepository) *ChannelController {
	return &ChannelController{Channels: channels}
}

// List serves GET /api/channels?active=0|1.
func (c *ChannelController) List(w http.ResponseWriter, r *http.Request) {
	var active *int
	if raw := r.URL.Query().Get("active"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "active must be 0 or 1")
			return
		}
		active = &n
	}
	channels, err := c.Channels.List(active)
	if err != nil {
		global.Logger.Error().Err(err).Msg("channel list failed")
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	writeJSON(w, http.StatusOK, channels)
}
