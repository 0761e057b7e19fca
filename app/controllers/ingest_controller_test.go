package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"gateway-portal/app/dto"
	"gateway-portal/app/middleware"
	"gateway-portal/app/models"
	"gateway-portal/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func heartbeatBody(uid string, ts time.Time) string {
	return fmt.Sprintf(`{
		"gtw_uid": %q,
		"timestamp": %q,
		"mirth": {
			"LAB_IN": {"channelId": "ch-a", "metrics": {"received": 10, "sent": 9, "error": 1}}
		},
		"CheckStatus": {
			"disk_space": {"level": "OK", "act": 40, "limit": 90, "operator": "<"}
		}
	}`, uid, ts.Format(time.RFC3339))
}

func postIngest(c *IngestController, body string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodPost, "/api/ingest-metrics", strings.NewReader(body))
	r.RemoteAddr = "10.0.0.7:51234"
	w := httptest.NewRecorder()
	c.Post(w, r)
	return w
}

func TestIngestEndpoint(t *testing.T) {
	gdb := newTestDB(t)
	seedGateway(t, gdb, "gw-1")
	require.NoError(t, gdb.Create(&models.GatewayAction{
		GatewayUID: "gw-1", ActionCommand: "restart_channel", Status: models.ActionPending,
	}).Error)
	c := NewIngestController(services.NewIngestionService(gdb))

	w := postIngest(c, heartbeatBody("gw-1", time.Now()))
	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.IngestResponse
	require.NoError(t, decodeBody(w, &resp))
	assert.Equal(t, "success", resp.Status)
	assert.Equal(t, 1, resp.MirthRecords)
	assert.Equal(t, 1, resp.CheckRecords)
	require.Len(t, resp.PendingActions, 1)
	assert.Equal(t, models.ActionDelivered, resp.PendingActions[0].Status)
}

func TestIngestEndpointRejections(t *testing.T) {
	gdb := newTestDB(t)
	seedGateway(t, gdb, "gw-1")
	c := NewIngestController(services.NewIngestionService(gdb))

	w := postIngest(c, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postIngest(c, `{"gtw_uid": "gw-1"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "timestamp")

	w = postIngest(c, heartbeatBody("ghost", time.Now()))
	assert.Equal(t, http.StatusNotFound, w.Code)

	r := httptest.NewRequest(http.MethodGet, "/api/ingest-metrics", nil)
	rec := httptest.NewRecorder()
	c.Post(rec, r)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

type stubAuthenticator struct {
	gw  *models.Gateway
	err error
}

func (s *stubAuthenticator) Authenticate(*http.Request) (*models.Gateway, error) {
	return s.gw, s.err
}

func TestIngestEndpointCredentialMismatch(t *testing.T) {
	gdb := newTestDB(t)
	seedGateway(t, gdb, "gw-1")
	seedGateway(t, gdb, "gw-2")
	c := NewIngestController(services.NewIngestionService(gdb))

	auth := &middleware.GatewayAuth{
		Authenticator: &stubAuthenticator{gw: &models.Gateway{GtwUID: "gw-2"}},
		Require:       true,
	}
	h := auth.Verify(http.HandlerFunc(c.Post))

	// authenticated as gw-2, payload claims gw-1
	r := httptest.NewRequest(http.MethodPost, "/api/ingest-metrics", strings.NewReader(heartbeatBody("gw-1", time.Now())))
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	assert.Equal(t, http.StatusForbidden, w.Code)

	var mirthCount int64
	require.NoError(t, gdb.Model(&models.MirthMetric{}).Count(&mirthCount).Error)
	assert.Zero(t, mirthCount)
}

func TestGatewayAuthMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	bad := &stubAuthenticator{err: errors.New("bad credentials")}

	strict := &middleware.GatewayAuth{Authenticator: bad, Require: true}
	w := httptest.NewRecorder()
	strict.Verify(next).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/ingest-metrics", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// legacy open mode lets unauthenticated heartbeats through
	open := &middleware.GatewayAuth{Authenticator: bad, Require: false}
	w = httptest.NewRecorder()
	open.Verify(next).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/ingest-metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
