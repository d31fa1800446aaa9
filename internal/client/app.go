package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/ghpocket/ghpocket/internal/adapter"
	"github.com/ghpocket/ghpocket/internal/config"
	"github.com/ghpocket/ghpocket/internal/crypto"
	"github.com/ghpocket/ghpocket/internal/git"
	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/ghpocket/ghpocket/internal/service"
	"github.com/ghpocket/ghpocket/internal/store"
	"github.com/ghpocket/ghpocket/internal/tui"
	"github.com/ghpocket/ghpocket/models"
)

// App assembles and runs the commander.
type App struct {
	cfg       *config.ClientConfig
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// NewApp creates the application shell around the runtime configuration.
func NewApp(cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("nil config")
	}
	return &App{cfg: cfg, buildInfo: buildInfo, logger: log}, nil
}

// Run executes the full session: profile setup (interactive on first run),
// credential resolution, dependency wiring, and the menu loop. Any panic
// below this point is converted into a logged error instead of a stack
// trace, so a crashing command still exits the terminal cleanly.
func (a *App) Run() (err error) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Error().Interface("panic", r).Msg("unexpected failure")
			err = fmt.Errorf("unexpected failure: %v", r)
		}
	}()

	ctx := context.Background()

	prompter := config.NewTerminalPrompter()
	vault := crypto.NewTokenVault(a.cfg.Storage.VaultPath)
	profiles := config.NewProfileStore(a.cfg.Storage.ProfilePath, prompter, vault, a.logger)
	setup := service.NewSetupService(profiles, vault, a.logger)

	profile, err := setup.EnsureProfile(ctx)
	if err != nil {
		return fmt.Errorf("profile setup: %w", err)
	}

	var passphrase string
	if setup.VaultExists() {
		passphrase, err = prompter.PromptSecret("Vault passphrase (empty to skip)")
		if err != nil {
			return fmt.Errorf("prompt vault passphrase: %w", err)
		}
	}
	credential := setup.Credential(profile, passphrase)

	githubAdapter, err := adapter.NewGitHubAdapter(a.cfg.App, credential, a.userAgent(), a.logger)
	if err != nil {
		return fmt.Errorf("create github adapter: %w", err)
	}

	db, err := store.NewConnectSQLite(ctx, a.cfg.Storage, a.logger)
	if err != nil {
		return fmt.Errorf("open history database: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("migrate history database: %w", err)
	}
	storages := store.NewStorages(db, a.logger)

	gitRunner := git.NewRunner(a.cfg.Git, nil, a.logger)

	services := service.NewServices(profiles, vault, gitRunner, githubAdapter, storages.History, a.logger)

	ui, err := tui.New(services, profile, a.buildInfo, a.logger)
	if err != nil {
		return fmt.Errorf("create ui: %w", err)
	}

	if err = ui.Run(ctx); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		return err
	}

	return nil
}

func (a *App) userAgent() string {
	version := a.buildInfo.BuildVersion()
	if version == "" {
		version = "dev"
	}
	return "ghpocket/" + version
}
