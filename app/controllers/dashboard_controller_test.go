package controllers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gateway-portal/app/dto"
	"gateway-portal/app/models"
	"gateway-portal/app/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardStatsEndpoint(t *testing.T) {
	gdb := newTestDB(t)
	now := time.Now().Add(-time.Minute)
	require.NoError(t, gdb.Create(&models.Gateway{GtwName: "gw", GtwUID: "gw-1", LastDateCall: &now}).Error)
	c := NewDashboardController(services.NewDashboardService(gdb, nil, 0))

	w := httptest.NewRecorder()
	c.Stats(w, httptest.NewRequest(http.MethodGet, "/api/dashboard/stats", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	var stats dto.DashboardStats
	require.NoError(t, decodeBody(w, &stats))
	assert.EqualValues(t, 1, stats.KPI.TotalGateways)
	assert.EqualValues(t, 1, stats.KPI.ActiveGateways)
}

func TestChannelHistoryEndpoint(t *testing.T) {
	gdb := newTestDB(t)
	seedGateway(t, gdb, "gw-1")
	require.NoError(t, gdb.Create(&models.MirthMetric{
		GatewayUID: "gw-1", ChannelName: "LAB_IN", ChannelID: "ch-a",
		GatewayTimestamp: time.Now().Add(-time.Hour), Received: 12,
	}).Error)
	c := NewDashboardController(services.NewDashboardService(gdb, nil, 0))

	w := httptest.NewRecorder()
	c.History(w, httptest.NewRequest(http.MethodGet,
		"/api/metrics/mirth/history?gateway_uid=gw-1&channel_name=LAB_IN&range=24h", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	var rows []models.MirthMetric
	require.NoError(t, decodeBody(w, &rows))
	require.Len(t, rows, 1)
	assert.Equal(t, 12, rows[0].Received)

	// both selector params are mandatory
	w = httptest.NewRecorder()
	c.History(w, httptest.NewRequest(http.MethodGet, "/api/metrics/mirth/history?gateway_uid=gw-1", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
