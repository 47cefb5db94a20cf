package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamchat/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "teamchat", cfg.AppName)
	assert.Equal(t, "0.0.0.0:8000", cfg.HTTPAddr())
	assert.Equal(t, "chatApp", cfg.SnapshotSlot)
	assert.True(t, cfg.SimulatorEnabled)
	assert.Equal(t, time.Second, cfg.ReplyMinDelay)
	assert.Equal(t, 4*time.Second, cfg.ReplyMaxDelay)
	assert.Contains(t, cfg.CORSOrigins, "http://localhost:5173")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("SIMULATOR_ENABLED", "false")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Port)
	assert.False(t, cfg.SimulatorEnabled)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
}

func TestLoadRejectsInvertedDelays(t *testing.T) {
	t.Setenv("REPLY_MIN_DELAY_MS", "5000")
	t.Setenv("REPLY_MAX_DELAY_MS", "1000")

	_, err := config.Load()
	assert.Error(t, err)
}
