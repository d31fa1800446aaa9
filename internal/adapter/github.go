package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/ghpocket/ghpocket/internal/config"
	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/ghpocket/ghpocket/internal/utils"
	"github.com/ghpocket/ghpocket/models"
	"github.com/go-resty/resty/v2"
)

// acceptHeader is the fixed media type GitHub recommends for REST calls.
const acceptHeader = "application/vnd.github+json"

type githubAdapter struct {
	client *utils.HTTPClient
	uuids  *utils.UUIDGenerator

	credential string
	userAgent  string

	logger *logger.Logger
}

// NewGitHubAdapter constructs the resty implementation of [GitHubAdapter].
// It normalises and validates the base URL from appCfg.BaseURL and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// credential is attached as a bearer Authorization header on every request.
// Note the inherited profile-format defect: when no vault is unlocked the
// caller passes the obfuscated token here, which the API will reject with
// 401 — the normalization contract turns that into empty results rather
// than a crash.
//
// Returns an error if appCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewGitHubAdapter(appCfg config.ClientApp, credential, userAgent string, log *logger.Logger) (GitHubAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(appCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid api base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(appCfg.RequestTimeout)

	return &githubAdapter{
		client:     client,
		uuids:      utils.NewUUIDGenerator(),
		credential: strings.TrimSpace(credential),
		userAgent:  userAgent,
		logger:     log,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Request implements [GitHubAdapter]. Every outcome other than a 2xx
// response carrying a well-formed JSON object collapses into an empty map;
// the cause is logged together with the per-request trace id.
func (g *githubAdapter) Request(ctx context.Context, method, path string, body any) map[string]any {
	requestID := g.uuids.Generate()
	log := g.logger.With().
		Str("request_id", requestID).
		Str("method", method).
		Str("path", path).
		Logger()

	req := g.authedRequest(ctx).SetHeader("X-Request-Id", requestID)
	if body != nil {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(strings.ToUpper(method), path)
	if err != nil {
		log.Warn().Err(err).Msg("api request failed")
		return map[string]any{}
	}

	if err = mapHTTPError(resp); err != nil {
		log.Warn().Err(err).Int("status", resp.StatusCode()).Msg("api request rejected")
		return map[string]any{}
	}

	payload := strings.TrimSpace(string(resp.Body()))
	if payload == "" {
		return map[string]any{}
	}

	var decoded map[string]any
	if err = json.Unmarshal([]byte(payload), &decoded); err != nil {
		log.Warn().Err(err).Msg("api response body not a json object")
		return map[string]any{}
	}
	if decoded == nil {
		return map[string]any{}
	}

	return decoded
}

// AuthenticatedUser implements [GitHubAdapter]. It GETs /user and decodes
// the account summary. Returns [ErrUnauthorized] (wrapped) when the
// credential is rejected.
func (g *githubAdapter) AuthenticatedUser(ctx context.Context) (models.AccountInfo, error) {
	var account models.AccountInfo

	resp, err := g.authedRequest(ctx).
		SetResult(&account).
		Get("/user")
	if err != nil {
		return models.AccountInfo{}, fmt.Errorf("authenticated user request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AccountInfo{}, err
	}

	return account, nil
}

// SearchRepositories implements [GitHubAdapter]. It GETs
// /search/repositories with the query and decodes the result page.
func (g *githubAdapter) SearchRepositories(ctx context.Context, query string) (models.SearchResult, error) {
	resp, err := g.authedRequest(ctx).
		SetQueryParam("q", query).
		Get("/search/repositories")
	if err != nil {
		return models.SearchResult{}, fmt.Errorf("search request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SearchResult{}, err
	}

	var result models.SearchResult
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return models.SearchResult{}, fmt.Errorf("decode search response: %w", err)
	}

	return result, nil
}

// CreateRepository implements [GitHubAdapter]. It POSTs /user/repos with
// auto_init set, so the new repository carries an initial commit and is
// cloneable immediately.
func (g *githubAdapter) CreateRepository(ctx context.Context, name, description string, private bool) (models.Repository, error) {
	var repo models.Repository

	resp, err := g.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]any{
			"name":        name,
			"description": description,
			"private":     private,
			"auto_init":   true,
		}).
		SetResult(&repo).
		Post("/user/repos")
	if err != nil {
		return models.Repository{}, fmt.Errorf("create repository request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Repository{}, err
	}

	return repo, nil
}

// ListRepositories implements [GitHubAdapter]. It GETs /user/repos sorted
// by last push and decodes the repository list.
func (g *githubAdapter) ListRepositories(ctx context.Context) ([]models.Repository, error) {
	resp, err := g.authedRequest(ctx).
		SetQueryParam("sort", "pushed").
		Get("/user/repos")
	if err != nil {
		return nil, fmt.Errorf("list repositories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var repos []models.Repository
	if err = json.Unmarshal(resp.Body(), &repos); err != nil {
		return nil, fmt.Errorf("decode repositories response: %w", err)
	}

	return repos, nil
}

// RateLimit implements [GitHubAdapter]. It GETs /rate_limit and returns the
// core window state.
func (g *githubAdapter) RateLimit(ctx context.Context) (models.RateLimit, error) {
	resp, err := g.authedRequest(ctx).Get("/rate_limit")
	if err != nil {
		return models.RateLimit{}, fmt.Errorf("rate limit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RateLimit{}, err
	}

	var envelope struct {
		Rate models.RateLimit `json:"rate"`
	}
	if err = json.Unmarshal(resp.Body(), &envelope); err != nil {
		return models.RateLimit{}, fmt.Errorf("decode rate limit response: %w", err)
	}

	return envelope.Rate, nil
}

func (g *githubAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := g.client.R().
		SetContext(ctx).
		SetHeader("Accept", acceptHeader).
		SetHeader("User-Agent", g.userAgent)
	if g.credential != "" {
		req.SetHeader("Authorization", "Bearer "+g.credential)
	}
	return req
}
