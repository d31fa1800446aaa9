package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_MapsPrefixedVariables verifies that the env tags on
// StructuredConfig resolve with their section prefixes.
func TestParseEnv_MapsPrefixedVariables(t *testing.T) {
	t.Setenv("API_ADDRESS", "https://api.github.com")
	t.Setenv("API_REQUEST_TIMEOUT", "20s")
	t.Setenv("STORAGE_PROFILE_PATH", "/tmp/p.json")
	t.Setenv("STORAGE_HISTORY_DSN", "/tmp/h.db")
	t.Setenv("GIT_BINARY", "git")
	t.Setenv("CONFIG", "/tmp/cfg.json")

	var cfg StructuredConfig
	require.NoError(t, parseEnv(&cfg))

	assert.Equal(t, "https://api.github.com", cfg.API.Address)
	assert.Equal(t, 20*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "/tmp/p.json", cfg.Storage.ProfilePath)
	assert.Equal(t, "/tmp/h.db", cfg.Storage.HistoryDSN)
	assert.Equal(t, "git", cfg.Git.Binary)
	assert.Equal(t, "/tmp/cfg.json", cfg.JSONFilePath)
}

// TestParseEnv_InvalidDuration verifies that a malformed duration value
// surfaces as a wrapped error.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("API_REQUEST_TIMEOUT", "soon")

	var cfg StructuredConfig
	assert.Error(t, parseEnv(&cfg))
}
