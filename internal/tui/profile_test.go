package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ghpocket/ghpocket/models"
)

func newTestProfileModel() *ProfileModel {
	profile := models.Profile{Account: "octocat", CreatedAt: "2024-01-01T00:00:00Z"}
	return NewProfileModel(context.Background(), nil, profile)
}

func TestProfileModel_ViewListsRecentRepositories(t *testing.T) {
	m := newTestProfileModel()

	updated, _ := m.Update(profileLoadedMsg{
		account: models.AccountInfo{Login: "octocat", PublicRepos: 8},
		limits:  models.RateLimit{Limit: 5000, Remaining: 4999},
		repos: []models.Repository{
			{FullName: "octocat/hello", Description: "greeting daemon"},
			{FullName: "octocat/notes"},
		},
	})

	view := updated.(*ProfileModel).View()
	assert.Contains(t, view, "Recent repositories:")
	assert.Contains(t, view, "octocat/hello")
	assert.Contains(t, view, "greeting daemon")
	assert.Contains(t, view, "octocat/notes")
}

func TestProfileModel_ViewCapsRepositoryList(t *testing.T) {
	m := newTestProfileModel()

	repos := make([]models.Repository, 0, profileRepoLimit+3)
	for range profileRepoLimit + 3 {
		repos = append(repos, models.Repository{FullName: "octocat/extra"})
	}
	repos[profileRepoLimit] = models.Repository{FullName: "octocat/overflow"}

	updated, _ := m.Update(profileLoadedMsg{
		account: models.AccountInfo{Login: "octocat"},
		repos:   repos,
	})

	view := updated.(*ProfileModel).View()
	assert.Contains(t, view, "octocat/extra")
	assert.NotContains(t, view, "octocat/overflow")
}

func TestProfileModel_LoadErrorShown(t *testing.T) {
	m := newTestProfileModel()

	updated, _ := m.Update(profileLoadedMsg{err: errors.New("dial tcp: connection refused")})

	view := updated.(*ProfileModel).View()
	assert.Contains(t, view, "Network unavailable")
	assert.NotContains(t, view, "Recent repositories:")
}
