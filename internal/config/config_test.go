package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.NotNil(t, cfg)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "file:vfm_leads.db", cfg.Storage.DSN)
	assert.Equal(t, 3*time.Second, cfg.Sync.IndicatorReset)
	assert.Equal(t, "gemini-flash-lite-latest", cfg.OCR.Model)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("SYNC_SCRIPT_URL", "https://script.example/exec")
	t.Setenv("SYNC_INDICATOR_RESET", "5s")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "https://script.example/exec", cfg.Sync.ScriptURL)
	assert.Equal(t, 5*time.Second, cfg.Sync.IndicatorReset)
}

func TestLoadBadDurationFallsBack(t *testing.T) {
	t.Setenv("SYNC_TIMEOUT", "not-a-duration")
	cfg := Load()
	assert.Equal(t, 30*time.Second, cfg.Sync.Timeout)
}
