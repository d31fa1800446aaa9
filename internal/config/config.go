package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for ghpocket.
// It aggregates all sub-configurations and is populated by merging values
// from environment variables, command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// API holds GitHub REST endpoint settings.
	API API `envPrefix:"API_"`

	// Storage holds the paths of everything ghpocket persists locally:
	// the profile file, the token vault, and the history database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Git holds settings for the git subprocess wrapper.
	Git Git `envPrefix:"GIT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// API holds outbound GitHub REST settings.
type API struct {
	// Address is the API base URL (e.g. "https://api.github.com").
	// Env: API_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout is the per-request timeout for API calls
	// (e.g. "30s", "1m").
	// Env: API_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage holds the filesystem locations of the local state.
type Storage struct {
	// ProfilePath is the profile file location.
	// Env: STORAGE_PROFILE_PATH
	ProfilePath string `env:"PROFILE_PATH"`

	// VaultPath is the encrypted token vault location.
	// Env: STORAGE_VAULT_PATH
	VaultPath string `env:"VAULT_PATH"`

	// HistoryDSN is the sqlite DSN (a file path) of the command-history
	// database.
	// Env: STORAGE_HISTORY_DSN
	HistoryDSN string `env:"HISTORY_DSN"`
}

// Git holds settings for the subprocess wrapper around the git executable.
type Git struct {
	// Binary is the git executable name or absolute path.
	// Env: GIT_BINARY
	Binary string `env:"BINARY"`

	// WorkDir is the directory git commands run in. Empty means the
	// process working directory.
	// Env: GIT_WORKDIR
	WorkDir string `env:"WORKDIR"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
