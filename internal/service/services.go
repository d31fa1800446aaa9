package service

import (
	"github.com/ghpocket/ghpocket/internal/adapter"
	"github.com/ghpocket/ghpocket/internal/config"
	"github.com/ghpocket/ghpocket/internal/crypto"
	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/ghpocket/ghpocket/internal/store"
)

// Services bundles every command service behind the menu.
type Services struct {
	Setup SetupService
	Repo  RepoService
	Hub   HubService
}

// NewServices composes the service layer from its dependencies.
func NewServices(
	profiles *config.ProfileStore,
	vault *crypto.TokenVault,
	gitRunner GitRunner,
	githubAdapter adapter.GitHubAdapter,
	history store.HistoryRepository,
	log *logger.Logger,
) *Services {
	return &Services{
		Setup: NewSetupService(profiles, vault, log),
		Repo:  NewRepoService(gitRunner, history, log),
		Hub:   NewHubService(githubAdapter, history, log),
	}
}
