package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, yaml string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "backend:\n"))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.HTTP.Host)
	assert.Equal(t, 9300, cfg.HTTP.Port)
	assert.Equal(t, "gateway_portal", cfg.DB.Name)
	assert.Equal(t, 30, cfg.Redis.KPICacheSec)
	assert.False(t, cfg.Ingest.RequireKey)
	assert.Equal(t, "dev-secret", cfg.JWT.Secret)
	assert.Equal(t, "gateway-portal", cfg.JWT.Issuer)
	assert.Equal(t, 60, cfg.JWT.ExpMin)
}

func TestLoadOverrides(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
backend:
  host: 0.0.0.0
  port: 8080
  db:
    host: db.internal
    name: portal_prod
  jwt:
    secret: prod-secret
    exp_min: 15
  mantis:
    url: https://mantis.example.com/api/rest
    api_key: abc123
  ingest:
    require_key: true
`))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.HTTP.Host)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "db.internal", cfg.DB.Host)
	assert.Equal(t, "portal_prod", cfg.DB.Name)
	assert.Equal(t, "prod-secret", cfg.JWT.Secret)
	assert.Equal(t, 15, cfg.JWT.ExpMin)
	assert.Equal(t, "https://mantis.example.com/api/rest", cfg.Mantis.URL)
	assert.Equal(t, "abc123", cfg.Mantis.APIKey)
	assert.True(t, cfg.Ingest.RequireKey)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
