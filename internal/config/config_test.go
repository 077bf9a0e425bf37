package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
environment: staging
environments:
  staging:
    base_url: https://staging.panel.example.com
    timeout_seconds: 15
  production:
    base_url: https://panel.example.com
session:
  backend: redis
  redis_addr: redis.internal:6379
logging:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)

	api, err := cfg.Active()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.panel.example.com", api.BaseURL)
	assert.Equal(t, 15*time.Second, api.Timeout())

	// Timeout defaults apply per environment.
	prod := cfg.Environments["production"]
	assert.Equal(t, 30*time.Second, prod.Timeout())

	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, "redis.internal:6379", cfg.Session.RedisAddr)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, EnvDevelopment, cfg.Environment)

	api, err := cfg.Active()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", api.BaseURL)
	assert.Equal(t, 30*time.Second, api.Timeout())
	assert.Equal(t, "file", cfg.Session.Backend)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestActive_UnknownEnvironment(t *testing.T) {
	cfg := Default()
	cfg.Environment = "qa"

	_, err := cfg.Active()
	assert.Error(t, err)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	t.Setenv("EMS_ENVIRONMENT", "production")
	t.Setenv("EMS_BASE_URL", "https://panel.example.com")
	t.Setenv("EMS_TIMEOUT_SECONDS", "10")
	t.Setenv("EMS_SESSION_BACKEND", "redis")
	t.Setenv("EMS_LOG_LEVEL", "warn")

	cfg, err := LoadFromEnv("")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)

	api, err := cfg.Active()
	require.NoError(t, err)
	assert.Equal(t, "https://panel.example.com", api.BaseURL)
	assert.Equal(t, 10*time.Second, api.Timeout())
	assert.Equal(t, "redis", cfg.Session.Backend)
	assert.Equal(t, "warn", cfg.Logging.Level)
}

func TestLoadFromEnv_InvalidTimeoutIgnored(t *testing.T) {
	t.Setenv("EMS_TIMEOUT_SECONDS", "soon")

	cfg, err := LoadFromEnv("")
	require.NoError(t, err)

	api, err := cfg.Active()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, api.Timeout())
}
