package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseJSON_FullDocument verifies that every supported section maps into
// the structured config.
func TestParseJSON_FullDocument(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"api": map[string]any{
			"address":         "https://ghe.example.com/api/v3",
			"request_timeout": "1m",
		},
		"storage": map[string]any{
			"profile_path": "/data/profile.json",
			"vault_path":   "/data/vault.json",
			"history_dsn":  "/data/history.db",
		},
		"git": map[string]any{
			"binary":  "/usr/bin/git",
			"workdir": "/sdcard/repos",
		},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "https://ghe.example.com/api/v3", cfg.API.Address)
	assert.Equal(t, time.Minute, cfg.API.RequestTimeout)
	assert.Equal(t, "/data/profile.json", cfg.Storage.ProfilePath)
	assert.Equal(t, "/data/vault.json", cfg.Storage.VaultPath)
	assert.Equal(t, "/data/history.db", cfg.Storage.HistoryDSN)
	assert.Equal(t, "/usr/bin/git", cfg.Git.Binary)
	assert.Equal(t, "/sdcard/repos", cfg.Git.WorkDir)
}

// TestParseJSON_MissingFile verifies the error path for a dangling path.
func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/config.json")
	assert.Error(t, err)
}

// TestParseJSON_MalformedDocument verifies the error path for invalid JSON.
func TestParseJSON_MalformedDocument(t *testing.T) {
	path := writeTempJSONConfig(t, "not-an-object")
	_, err := parseJSON(path)
	assert.Error(t, err)
}

// ── Duration ─────────────────────────────────────────────────────────────────

// TestDuration_UnmarshalString verifies "30s"-style values decode.
func TestDuration_UnmarshalString(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`"30s"`), &d))
	assert.Equal(t, Duration(30*time.Second), d)
}

// TestDuration_UnmarshalNumber verifies numeric nanosecond values decode.
func TestDuration_UnmarshalNumber(t *testing.T) {
	var d Duration
	require.NoError(t, json.Unmarshal([]byte(`1000000000`), &d))
	assert.Equal(t, Duration(time.Second), d)
}

// TestDuration_UnmarshalInvalidString verifies malformed values error out.
func TestDuration_UnmarshalInvalidString(t *testing.T) {
	var d Duration
	assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
}

// TestDuration_MarshalRoundTrip verifies Marshal produces a parseable string.
func TestDuration_MarshalRoundTrip(t *testing.T) {
	out, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(out))
}
