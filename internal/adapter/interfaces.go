// Package adapter provides the transport façade for the GitHub REST API.
//
// The primary abstraction is [GitHubAdapter], which decouples the service
// layer from HTTP details. The package ships a resty-based implementation
// ([NewGitHubAdapter]) with two surfaces:
//
//   - Request, the generic normalizing façade: every failure — transport
//     error, non-2xx status, empty or malformed body — collapses into an
//     empty map with a logged diagnostic, so menu-driven callers never have
//     to branch on error kinds.
//   - Typed operations (AuthenticatedUser, SearchRepositories, ...) that
//     return explicit errors mapped from HTTP status codes by mapHTTPError,
//     usable with [errors.Is] (e.g. [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/ghpocket/ghpocket/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/github_adapter_mock.go -package=mock

// GitHubAdapter defines communication with the GitHub REST API.
// Implementations own serialisation, authentication headers, and error
// normalization.
type GitHubAdapter interface {
	// Request issues one authenticated API call and normalizes the outcome:
	// the decoded JSON object on success, an empty map on ANY failure
	// (transport error, non-2xx status, empty body, malformed body).
	// It never returns an error and never panics; diagnostics go to the
	// structured log. No retries, no backoff: each failure is terminal for
	// that single call.
	Request(ctx context.Context, method, path string, body any) map[string]any

	// AuthenticatedUser fetches GET /user for the configured credential.
	AuthenticatedUser(ctx context.Context) (models.AccountInfo, error)

	// SearchRepositories runs GET /search/repositories with the given
	// free-form query.
	SearchRepositories(ctx context.Context, query string) (models.SearchResult, error)

	// CreateRepository creates a repository under the authenticated account
	// via POST /user/repos. The repository is auto-initialised so it can be
	// cloned right away.
	CreateRepository(ctx context.Context, name, description string, private bool) (models.Repository, error)

	// ListRepositories fetches the repositories of the authenticated user.
	ListRepositories(ctx context.Context) ([]models.Repository, error)

	// RateLimit fetches the core rate-limit window state.
	RateLimit(ctx context.Context) (models.RateLimit, error)
}
