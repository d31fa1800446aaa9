package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a api base URL (e.g. https://api.github.com)
//	-request-timeout api request timeout (e.g., "30s", "1m")
//	-profile profile file path
//	-vault token vault file path
//	-history history database path
//	-git git executable name or path
//	-workdir working directory for git commands
//	-c/-config json file path with configs
func ParseFlags() *StructuredConfig {
	var apiAddress string
	var requestTimeout time.Duration
	var profilePath string
	var vaultPath string
	var historyDSN string
	var gitBinary string
	var gitWorkDir string
	var jsonConfigPath string

	flag.StringVar(&apiAddress, "a", "", "API base URL")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "API request timeout (e.g., 30s, 1m)")
	flag.StringVar(&profilePath, "profile", "", "Profile file path")
	flag.StringVar(&vaultPath, "vault", "", "Token vault file path")
	flag.StringVar(&historyDSN, "history", "", "History database path")
	flag.StringVar(&gitBinary, "git", "", "Git executable")
	flag.StringVar(&gitWorkDir, "workdir", "", "Working directory for git commands")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			Address:        apiAddress,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			ProfilePath: profilePath,
			VaultPath:   vaultPath,
			HistoryDSN:  historyDSN,
		},
		Git: Git{
			Binary:  gitBinary,
			WorkDir: gitWorkDir,
		},
		JSONFilePath: jsonConfigPath,
	}
}
