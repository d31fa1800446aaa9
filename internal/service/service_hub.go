package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ghpocket/ghpocket/internal/adapter"
	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/ghpocket/ghpocket/internal/store"
	"github.com/ghpocket/ghpocket/models"
)

type hubService struct {
	adapter adapter.GitHubAdapter
	history store.HistoryRepository
	logger  *logger.Logger
}

// NewHubService wires the GitHub adapter and history store into a
// [HubService].
func NewHubService(githubAdapter adapter.GitHubAdapter, history store.HistoryRepository, log *logger.Logger) HubService {
	return &hubService{adapter: githubAdapter, history: history, logger: log}
}

func (s *hubService) WhoAmI(ctx context.Context) (models.AccountInfo, error) {
	return s.adapter.AuthenticatedUser(ctx)
}

func (s *hubService) Search(ctx context.Context, query string) (models.SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return models.SearchResult{}, ErrEmptyQuery
	}

	result, err := s.adapter.SearchRepositories(ctx, query)
	if err != nil {
		return models.SearchResult{}, err
	}

	entry := models.HistoryEntry{
		Kind:    models.HistorySearch,
		Subject: query,
		Detail:  fmt.Sprintf("%d results", result.TotalCount),
	}
	if err := s.history.Record(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("func", "Search").Msg("history write failed")
	}

	return result, nil
}

func (s *hubService) CreateRepo(ctx context.Context, name, description string, private bool) (models.Repository, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Repository{}, ErrEmptyRepoName
	}

	repo, err := s.adapter.CreateRepository(ctx, name, strings.TrimSpace(description), private)
	if err != nil {
		return models.Repository{}, err
	}

	entry := models.HistoryEntry{
		Kind:    models.HistoryAPI,
		Subject: repo.FullName,
		Detail:  "repository created",
	}
	if err := s.history.Record(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("func", "CreateRepo").Msg("history write failed")
	}

	return repo, nil
}

func (s *hubService) MyRepos(ctx context.Context) ([]models.Repository, error) {
	return s.adapter.ListRepositories(ctx)
}

func (s *hubService) Limits(ctx context.Context) (models.RateLimit, error) {
	return s.adapter.RateLimit(ctx)
}
