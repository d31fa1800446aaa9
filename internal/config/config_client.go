package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Defaults applied by [GetClientConfig] for fields no source provided.
const (
	DefaultAPIAddress     = "https://api.github.com"
	DefaultRequestTimeout = 30 * time.Second
)

// ClientApp holds application-level settings for the commander.
type ClientApp struct {
	// BaseURL is the GitHub REST API base URL.
	BaseURL string
	// RequestTimeout is the default timeout for outbound API requests.
	RequestTimeout time.Duration
}

// ClientStorage groups the local state file locations.
type ClientStorage struct {
	// ProfilePath is where the user profile JSON document lives.
	ProfilePath string
	// VaultPath is where the encrypted token vault lives.
	VaultPath string
	// HistoryDSN is the sqlite database path of the command history.
	HistoryDSN string
}

// ClientGit holds the git subprocess settings.
type ClientGit struct {
	// Binary is the git executable; defaults to "git" resolved via PATH.
	Binary string
	// WorkDir is the directory git commands run in; empty means cwd.
	WorkDir string
}

// ClientConfig is the top-level runtime configuration assembled from
// [StructuredConfig], with defaults filled in.
type ClientConfig struct {
	// App contains API endpoint settings.
	App ClientApp
	// Storage contains local state locations.
	Storage ClientStorage
	// Git contains git subprocess settings.
	Git ClientGit
}

// GetClientConfig builds and validates the runtime config view from the
// merged structured configuration. Unset fields receive defaults: the public
// GitHub API address, a 30s timeout, and state files under the per-user
// config directory (~/.config/ghpocket on Linux/Termux).
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			BaseURL:        cfg.API.Address,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Storage: ClientStorage{
			ProfilePath: cfg.Storage.ProfilePath,
			VaultPath:   cfg.Storage.VaultPath,
			HistoryDSN:  cfg.Storage.HistoryDSN,
		},
		Git: ClientGit{
			Binary:  cfg.Git.Binary,
			WorkDir: cfg.Git.WorkDir,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.App.BaseURL == "" {
		cfg.App.BaseURL = DefaultAPIAddress
	}
	if cfg.App.RequestTimeout == 0 {
		cfg.App.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Git.Binary == "" {
		cfg.Git.Binary = "git"
	}

	base := defaultStateDir()
	if cfg.Storage.ProfilePath == "" {
		cfg.Storage.ProfilePath = filepath.Join(base, "profile.json")
	}
	if cfg.Storage.VaultPath == "" {
		cfg.Storage.VaultPath = filepath.Join(base, "vault.json")
	}
	if cfg.Storage.HistoryDSN == "" {
		cfg.Storage.HistoryDSN = filepath.Join(base, "history.db")
	}
}

// defaultStateDir resolves the per-user state directory. GHPOCKET_HOME
// overrides it wholesale; otherwise Termux and desktop Linux both resolve
// through os.UserConfigDir, and the cwd fallback keeps the commander usable
// in stripped-down environments without $HOME.
func defaultStateDir() string {
	if home := os.Getenv("GHPOCKET_HOME"); home != "" {
		return home
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".ghpocket"
	}
	return filepath.Join(dir, "ghpocket")
}
