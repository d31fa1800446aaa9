package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ghpocket/ghpocket/internal/config"
	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/ghpocket/ghpocket/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestAdapter создаёт githubAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *githubAdapter {
	t.Helper()
	appCfg := config.ClientApp{BaseURL: serverURL, RequestTimeout: 5 * time.Second}

	a, err := NewGitHubAdapter(appCfg, "test-credential", "ghpocket/test", logger.Nop())
	require.NoError(t, err)
	return a.(*githubAdapter)
}

// ── Request normalization ─────────────────────────────────────────────────────

func TestRequest_SuccessDecodesObject(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/user", r.URL.Path)
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.Equal(t, "ghpocket/test", r.Header.Get("User-Agent"))
		assert.Equal(t, "Bearer test-credential", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"login":"octocat","public_repos":8}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got := a.Request(context.Background(), "GET", "/user", nil)

	assert.Equal(t, "octocat", got["login"])
	assert.EqualValues(t, 8, got["public_repos"])
}

func TestRequest_NotFoundReturnsEmptyMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got := a.Request(context.Background(), "GET", "/user", nil)

	assert.Equal(t, map[string]any{}, got)
}

func TestRequest_ServerErrorReturnsEmptyMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got := a.Request(context.Background(), "GET", "/user", nil)

	assert.Empty(t, got)
}

func TestRequest_TransportFailureReturnsEmptyMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	a := newTestAdapter(t, srv.URL)
	got := a.Request(context.Background(), "GET", "/user", nil)

	assert.Equal(t, map[string]any{}, got)
}

func TestRequest_EmptyBodyReturnsEmptyMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got := a.Request(context.Background(), "DELETE", "/user/starred/octocat/hello", nil)

	assert.Equal(t, map[string]any{}, got)
}

func TestRequest_MalformedBodyReturnsEmptyMap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"broken`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got := a.Request(context.Background(), "GET", "/user", nil)

	assert.Equal(t, map[string]any{}, got)
}

func TestRequest_PostSendsJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "hello", body["name"])

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"full_name":"octocat/hello"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got := a.Request(context.Background(), "POST", "/user/repos", map[string]string{"name": "hello"})

	assert.Equal(t, "octocat/hello", got["full_name"])
}

// Request must stay quiet for every failure mode at once.
func TestRequest_NeverPanics(t *testing.T) {
	statuses := []int{http.StatusBadRequest, http.StatusUnauthorized, http.StatusForbidden,
		http.StatusNotFound, http.StatusConflict, http.StatusTooManyRequests,
		http.StatusInternalServerError, http.StatusBadGateway}

	for _, status := range statuses {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		a := newTestAdapter(t, srv.URL)
		assert.NotPanics(t, func() {
			got := a.Request(context.Background(), "GET", "/user", nil)
			assert.Empty(t, got)
		})
		srv.Close()
	}
}

// ── AuthenticatedUser ─────────────────────────────────────────────────────────

func TestAuthenticatedUser_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.AccountInfo{Login: "octocat", Name: "The Octocat", PublicRepos: 8})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.AuthenticatedUser(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "octocat", got.Login)
	assert.Equal(t, 8, got.PublicRepos)
}

func TestAuthenticatedUser_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.AuthenticatedUser(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── SearchRepositories ────────────────────────────────────────────────────────

func TestSearchRepositories_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/repositories", r.URL.Path)
		assert.Equal(t, "termux tools", r.URL.Query().Get("q"))

		_ = json.NewEncoder(w).Encode(models.SearchResult{
			TotalCount: 1,
			Items:      []models.Repository{{FullName: "termux/termux-app", Stars: 42}},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.SearchRepositories(context.Background(), "termux tools")

	require.NoError(t, err)
	assert.Equal(t, 1, got.TotalCount)
	require.Len(t, got.Items, 1)
	assert.Equal(t, "termux/termux-app", got.Items[0].FullName)
}

func TestSearchRepositories_RateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ratelimit-Remaining", "0")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.SearchRepositories(context.Background(), "anything")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRateLimited)
}

// ── CreateRepository ──────────────────────────────────────────────────────────

func TestCreateRepository_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/user/repos", r.URL.Path)

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "notes", body["name"])
		assert.Equal(t, "mobile notes", body["description"])
		assert.Equal(t, true, body["private"])
		// без auto_init свежий репозиторий нельзя сразу клонировать
		assert.Equal(t, true, body["auto_init"])

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(models.Repository{
			FullName: "octocat/notes",
			CloneURL: "https://github.com/octocat/notes.git",
			Private:  true,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.CreateRepository(context.Background(), "notes", "mobile notes", true)

	require.NoError(t, err)
	assert.Equal(t, "octocat/notes", got.FullName)
	assert.Equal(t, "https://github.com/octocat/notes.git", got.CloneURL)
	assert.True(t, got.Private)
}

func TestCreateRepository_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.CreateRepository(context.Background(), "notes", "", false)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── ListRepositories ──────────────────────────────────────────────────────────

func TestListRepositories_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/repos", r.URL.Path)
		assert.Equal(t, "pushed", r.URL.Query().Get("sort"))

		_ = json.NewEncoder(w).Encode([]models.Repository{
			{FullName: "octocat/hello", CloneURL: "https://github.com/octocat/hello.git"},
			{FullName: "octocat/world", Private: true},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.ListRepositories(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.True(t, got[1].Private)
}

// ── RateLimit ─────────────────────────────────────────────────────────────────

func TestRateLimit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/rate_limit", r.URL.Path)
		_, _ = w.Write([]byte(`{"resources":{},"rate":{"limit":5000,"remaining":4999,"reset":1714000000}}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.RateLimit(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 5000, got.Limit)
	assert.Equal(t, 4999, got.Remaining)
	assert.EqualValues(t, 1714000000, got.Reset)
}

// ── normalizeBaseURL ──────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectError bool
	}{
		{name: "full https url", input: "https://api.github.com", expected: "https://api.github.com"},
		{name: "trailing slash trimmed", input: "https://api.github.com/", expected: "https://api.github.com"},
		{name: "bare host gains https", input: "api.github.com", expected: "https://api.github.com"},
		{name: "whitespace trimmed", input: "  https://ghe.local  ", expected: "https://ghe.local"},
		{name: "empty input", input: "", expectError: true},
		{name: "scheme only", input: "https://", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewGitHubAdapter_InvalidBaseURL(t *testing.T) {
	_, err := NewGitHubAdapter(config.ClientApp{BaseURL: ""}, "", "ghpocket/test", logger.Nop())
	assert.Error(t, err)
}
