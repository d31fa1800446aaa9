// Package tui implements the interactive menu of the commander with Bubble
// Tea. Pages are registered in a [RootModel] router; screens communicate
// through [NavigateTo] messages and never call each other directly.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/ghpocket/ghpocket/internal/service"
	"github.com/ghpocket/ghpocket/models"
)

// ErrUserQuit marks a deliberate exit via the menu or ctrl+c.
var ErrUserQuit = errors.New("user quit")

// TUI drives the interactive menu session.
type TUI struct {
	services  *service.Services
	profile   models.Profile
	buildInfo models.AppBuildInfo
}

// New creates the menu UI over the composed services.
func New(services *service.Services, profile models.Profile, buildInfo models.AppBuildInfo, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, profile: profile, buildInfo: buildInfo}, nil
}

// Run opens the main menu and blocks until the user exits. A deliberate
// exit returns ErrUserQuit.
func (t *TUI) Run(ctx context.Context) error {
	pages := map[string]tea.Model{
		"menu":    NewMenuModel(),
		"clone":   NewCloneModel(ctx, t.services.Repo),
		"create":  NewCreateModel(ctx, t.services.Hub),
		"status":  NewStatusModel(ctx, t.services.Repo),
		"commit":  NewCommitModel(ctx, t.services.Repo),
		"search":  NewSearchModel(ctx, t.services.Hub),
		"profile": NewProfileModel(ctx, t.services.Hub, t.profile),
		"history": NewHistoryModel(ctx, t.services.Repo),
	}

	root := NewRootModel(pages, "menu", t.buildInfo)
	finalModel, runErr := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}
