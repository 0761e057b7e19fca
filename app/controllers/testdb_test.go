package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"gateway-portal/app/db"
	"gateway-portal/app/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := db.ConnectSQLite(filepath.Join(t.TempDir(), "portal.db"))
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(
		&models.User{}, &models.Gateway{}, &models.MirthMetric{},
		&models.CheckStatusMetric{}, &models.GatewayAction{},
		&models.LogEvent{}, &models.Channel{}, &models.ExportPda{},
		&models.ImportError{},
	))
	return gdb
}

func seedGateway(t *testing.T, gdb *gorm.DB, uid string) {
	t.Helper()
	require.NoError(t, gdb.Create(&models.Gateway{GtwName: "gw " + uid, GtwUID: uid}).Error)
}

func decodeBody(w *httptest.ResponseRecorder, v any) error {
	return json.NewDecoder(w.Body).Decode(v)
}
