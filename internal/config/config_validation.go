package config

import "strings"

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured form is permissive: missing fields are filled with defaults
// later by [GetClientConfig], so only outright contradictions fail here.
func (cfg *StructuredConfig) validate() error {
	if cfg.API.RequestTimeout < 0 {
		return ErrInvalidAPIConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.BaseURL == "" || !strings.Contains(cfg.App.BaseURL, "://") {
		return ErrInvalidAPIConfigs
	}
	if cfg.App.RequestTimeout <= 0 {
		return ErrInvalidAPIConfigs
	}

	if cfg.Storage.ProfilePath == "" || cfg.Storage.HistoryDSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Git.Binary == "" {
		return ErrInvalidGitConfigs
	}

	return nil
}
