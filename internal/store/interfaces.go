package store

import (
	"context"

	"github.com/ghpocket/ghpocket/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/history_repository_mock.go -package=mock

// HistoryRepository records executed commands and cloned repositories.
// Recording is best-effort by contract: callers log and continue when a
// write fails, so a broken history database never blocks a command.
type HistoryRepository interface {
	// Record appends one history entry. A zero CreatedAt is stamped with
	// the current UTC time.
	Record(ctx context.Context, entry models.HistoryEntry) error

	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit uint64) ([]models.HistoryEntry, error)

	// RecordClone upserts the clone registry entry for directory.
	RecordClone(ctx context.Context, url, directory string) error

	// Clones returns all recorded clones, newest first.
	Clones(ctx context.Context) ([]models.CloneRecord, error)
}
