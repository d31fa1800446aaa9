package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAPIConfigs indicates invalid API endpoint settings
	// (for example, a base URL without a scheme or a negative timeout).
	ErrInvalidAPIConfigs = errors.New("invalid api configuration")
	// ErrInvalidStorageConfigs indicates invalid local storage settings
	// (for example, an empty profile or history path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidGitConfigs indicates invalid git subprocess settings.
	ErrInvalidGitConfigs = errors.New("invalid git configuration")
)
