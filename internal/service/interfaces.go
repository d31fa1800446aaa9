// Package service holds the command services behind the menu UI. Services
// take a context, return explicit errors, and never do interactive I/O:
// prompting stays behind the config.Prompter boundary and the TUI.
package service

import (
	"context"

	"github.com/ghpocket/ghpocket/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

// SetupService owns the profile lifecycle and credential resolution.
type SetupService interface {
	// EnsureProfile returns the stored profile, running the interactive
	// first-run setup when no valid profile exists.
	EnsureProfile(ctx context.Context) (models.Profile, error)

	// VaultExists reports whether a sealed token vault is present.
	VaultExists() bool

	// Credential resolves the API credential for the session: the vault's
	// raw token when passphrase opens it, otherwise the profile's stored
	// obfuscated token.
	Credential(profile models.Profile, passphrase string) string
}

// GitRunner is the subset of git operations the repo service drives.
// *git.Runner satisfies it.
type GitRunner interface {
	Clone(ctx context.Context, url, dir string) (string, error)
	Status(ctx context.Context) (string, error)
	AddAll(ctx context.Context) error
	Commit(ctx context.Context, message string) (string, error)
	Push(ctx context.Context) (string, error)
	Pull(ctx context.Context) (string, error)
}

// RepoService executes local git commands and records them in history.
type RepoService interface {
	// QuickClone normalizes url (owner/repo shorthand allowed), clones it
	// into dir (derived from the repository name when empty), and returns
	// the directory used.
	QuickClone(ctx context.Context, url, dir string) (string, error)

	// Status returns the porcelain status of the working directory.
	Status(ctx context.Context) (string, error)

	// QuickCommit stages everything and commits with message (a default is
	// substituted when empty), then pushes when push is set. Returns the
	// combined command output.
	QuickCommit(ctx context.Context, message string, push bool) (string, error)

	// Pull fast-forwards the working directory from its remote.
	Pull(ctx context.Context) (string, error)

	// RecentHistory lists up to limit recorded commands, newest first.
	RecentHistory(ctx context.Context, limit uint64) ([]models.HistoryEntry, error)

	// RecentClones lists the clone registry, newest first.
	RecentClones(ctx context.Context) ([]models.CloneRecord, error)
}

// HubService exposes the GitHub API operations used by the menu.
type HubService interface {
	// WhoAmI returns the account behind the configured credential.
	WhoAmI(ctx context.Context) (models.AccountInfo, error)

	// Search runs a repository search and records the query in history.
	Search(ctx context.Context, query string) (models.SearchResult, error)

	// CreateRepo creates a repository under the authenticated account and
	// records it in history. The returned value carries the clone URL of
	// the freshly initialised repository.
	CreateRepo(ctx context.Context, name, description string, private bool) (models.Repository, error)

	// MyRepos lists the authenticated user's repositories.
	MyRepos(ctx context.Context) ([]models.Repository, error)

	// Limits returns the current core rate-limit window.
	Limits(ctx context.Context) (models.RateLimit, error)
}
