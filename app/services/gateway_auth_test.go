package services

import (
	"net/http/httptest"
	"testing"

	"gateway-portal/app/models"
	"gateway-portal/app/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayAuthenticate(t *testing.T) {
	gdb := newTestDB(t)
	require.NoError(t, gdb.Create(&models.Gateway{GtwName: "gw", GtwUID: "gw-1", GtwPassword: "secret-key-123"}).Error)
	require.NoError(t, gdb.Create(&models.Gateway{GtwName: "keyless", GtwUID: "gw-2"}).Error)
	svc := NewGatewayAuthService(repo.NewGatewayRepository(gdb))

	r := httptest.NewRequest("POST", "/api/ingest-metrics", nil)
	r.Header.Set("X-Gateway-UID", "gw-1")
	r.Header.Set("X-Gateway-Key", "secret-key-123")
	gw, err := svc.Authenticate(r)
	require.NoError(t, err)
	assert.Equal(t, "gw-1", gw.GtwUID)

	r.Header.Set("X-Gateway-Key", "wrong")
	_, err = svc.Authenticate(r)
	assert.ErrorIs(t, err, ErrBadGatewayCredentials)

	// gateway without a provisioned key can never authenticate
	r.Header.Set("X-Gateway-UID", "gw-2")
	r.Header.Set("X-Gateway-Key", "")
	_, err = svc.Authenticate(r)
	assert.ErrorIs(t, err, ErrBadGatewayCredentials)

	r.Header.Set("X-Gateway-UID", "ghost")
	r.Header.Set("X-Gateway-Key", "anything")
	_, err = svc.Authenticate(r)
	assert.ErrorIs(t, err, ErrBadGatewayCredentials)
}
