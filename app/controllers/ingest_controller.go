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
)

type IngestController struct{ Ingestion *services.IngestionService }

func NewIngestController(ingestion *services.IngestionService) *IngestController {
	return &IngestController{Ingestion: ingestion}
}

// Post is the heartbeat endpoint: POST /api/ingest-metrics.
func (c *IngestController) Post(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req dto.IngestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	// When the key middleware authenticated a gateway, the payload must be
	// about that same gateway.
	if gw := middleware.GetGateway(r.Context()); gw != nil && req.GtwUID != "" && req.GtwUID != gw.GtwUID {
		writeError(w, http.StatusForbidden, "payload gateway does not match credentials")
		return
	}

	resp, err := c.Ingestion.Ingest(&req, remoteIP(r))
	if err != nil {
		var malformed *apperrors.MalformedPayload
		switch {
		case errors.As(err, &malformed):
			writeError(w, http.StatusBadRequest, malformed.Error())
		case errors.Is(err, apperrors.ErrUnknownGateway):
			writeError(w, http.StatusNotFound, "unknown gateway")
		default:
			global.Logger.Error().Err(err).Str("gtw_uid", req.GtwUID).Msg("ingestion failed")
			writeError(w, http.StatusInternalServerError, "storage failure")
		}
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}
