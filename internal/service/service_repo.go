package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ghpocket/ghpocket/internal/git"
	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/ghpocket/ghpocket/internal/store"
	"github.com/ghpocket/ghpocket/models"
)

// defaultCommitMessage is used when the commit form is submitted empty.
const defaultCommitMessage = "Update from ghpocket"

type repoService struct {
	git     GitRunner
	history store.HistoryRepository
	logger  *logger.Logger
}

// NewRepoService wires the git runner and history store into a [RepoService].
func NewRepoService(gitRunner GitRunner, history store.HistoryRepository, log *logger.Logger) RepoService {
	return &repoService{git: gitRunner, history: history, logger: log}
}

func (s *repoService) QuickClone(ctx context.Context, url, dir string) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", ErrEmptyRepoURL
	}

	cloneURL := git.NormalizeRepoURL(url)
	if dir == "" {
		dir = git.RepoNameFromURL(cloneURL)
	}

	if _, err := s.git.Clone(ctx, cloneURL, dir); err != nil {
		return "", fmt.Errorf("clone %s: %w", cloneURL, err)
	}

	s.record(ctx, models.HistoryEntry{Kind: models.HistoryClone, Subject: cloneURL, Detail: dir})
	if err := s.history.RecordClone(ctx, cloneURL, dir); err != nil {
		s.logger.Warn().Err(err).Str("func", "QuickClone").Msg("clone registry write failed")
	}

	return dir, nil
}

func (s *repoService) Status(ctx context.Context) (string, error) {
	return s.git.Status(ctx)
}

func (s *repoService) QuickCommit(ctx context.Context, message string, push bool) (string, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		message = defaultCommitMessage
	}

	if err := s.git.AddAll(ctx); err != nil {
		return "", fmt.Errorf("stage changes: %w", err)
	}

	out, err := s.git.Commit(ctx, message)
	if err != nil {
		return "", fmt.Errorf("commit: %w", err)
	}
	s.record(ctx, models.HistoryEntry{Kind: models.HistoryCommit, Subject: message})

	if push {
		pushOut, err := s.git.Push(ctx)
		if err != nil {
			return out, fmt.Errorf("push: %w", err)
		}
		s.record(ctx, models.HistoryEntry{Kind: models.HistoryPush, Subject: "origin"})
		out = strings.TrimSpace(out + "\n" + pushOut)
	}

	return out, nil
}

func (s *repoService) Pull(ctx context.Context) (string, error) {
	return s.git.Pull(ctx)
}

func (s *repoService) RecentHistory(ctx context.Context, limit uint64) ([]models.HistoryEntry, error) {
	return s.history.Recent(ctx, limit)
}

func (s *repoService) RecentClones(ctx context.Context) ([]models.CloneRecord, error) {
	return s.history.Clones(ctx)
}

// record writes a history entry best-effort: a failed write is logged and
// never fails the command that produced it.
func (s *repoService) record(ctx context.Context, entry models.HistoryEntry) {
	if err := s.history.Record(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("kind", entry.Kind).Msg("history write failed")
	}
}
