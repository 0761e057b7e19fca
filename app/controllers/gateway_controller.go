package controllers

import (
	"encoding/json"
	"net/http"

	"gateway-portal/app/dto"
	"gateway-portal/app/services"
	"gateway-portal/global"
)

type GatewayController struct{ Gateways *services.GatewayService }

func NewGatewayController(gateways *services.GatewayService) *GatewayController {
	return &GatewayController{Gateways: gateways}
}

// Get serves GET /api/gateways; with ?uid= it returns one gateway.
func (c *GatewayController) Get(w http.ResponseWriter, r *http.Request) {
	if uid := r.URL.Query().Get("uid"); uid != "" {
		g, err := c.Gateways.FindByUID(uid)
		if err != nil {
			writeError(w, http.StatusNotFound, "unknown gateway")
			return
		}
		writeJSON(w, http.StatusOK, g)
		return
	}
	list, err := c.Gateways.ListAll()
	if err != nil {
		global.Logger.Error().Err(err).Msg("gateway list failed")
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// Register serves POST /api/gateways/register (admin): administrative
// creation with generated uid and access key.
func (c *GatewayController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateGatewayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.GtwName == "" {
		writeError(w, http.StatusBadRequest, "gtw_name is required")
		return
	}
	g, key, err := c.Gateways.Register(req.GtwName, req.Description)
	if err != nil {
		global.Logger.Error().Err(err).Msg("gateway register failed")
		writeError(w, http.StatusInternalServerError, "storage failure")
		return
	}
	writeJSON(w, http.StatusCreated, dto.CreateGatewayResponse{GtwUID: g.GtwUID, AccessKey: key})
}
