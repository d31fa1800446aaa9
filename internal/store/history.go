package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/ghpocket/ghpocket/internal/logger"
	"github.com/ghpocket/ghpocket/models"
)

// historyRepository is the sqlite-backed implementation of
// [HistoryRepository]. Queries are built with squirrel; sqlite accepts the
// default ? placeholders.
type historyRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewHistoryRepository constructs a [HistoryRepository] backed by the
// provided database connection and logger.
func NewHistoryRepository(db *DB, logger *logger.Logger) HistoryRepository {
	logger.Debug().Msg("creating history repository")
	return &historyRepository{
		db:     db,
		logger: logger,
	}
}

// Record implements [HistoryRepository].
func (r *historyRepository) Record(ctx context.Context, entry models.HistoryEntry) error {
	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := sq.
		Insert("history").
		Columns("kind", "subject", "detail", "created_at").
		Values(entry.Kind, entry.Subject, entry.Detail, createdAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build history insert: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrHistoryNotRecorded, err)
	}

	return nil
}

// Recent implements [HistoryRepository].
func (r *historyRepository) Recent(ctx context.Context, limit uint64) ([]models.HistoryEntry, error) {
	query, args, err := sq.
		Select("id", "kind", "subject", "detail", "created_at").
		From("history").
		OrderBy("created_at DESC", "id DESC").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build history select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var e models.HistoryEntry
		if err = rows.Scan(&e.ID, &e.Kind, &e.Subject, &e.Detail, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history row: %w", err)
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history rows: %w", err)
	}

	return entries, nil
}

// RecordClone implements [HistoryRepository]. Re-cloning into the same
// directory replaces the previous registry entry.
func (r *historyRepository) RecordClone(ctx context.Context, url, directory string) error {
	query, args, err := sq.
		Insert("clones").
		Columns("url", "directory", "created_at").
		Values(url, directory, time.Now().UTC()).
		Suffix("ON CONFLICT(directory) DO UPDATE SET url = excluded.url, created_at = excluded.created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build clone insert: %w", err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrHistoryNotRecorded, err)
	}

	return nil
}

// Clones implements [HistoryRepository].
func (r *historyRepository) Clones(ctx context.Context) ([]models.CloneRecord, error) {
	query, args, err := sq.
		Select("id", "url", "directory", "created_at").
		From("clones").
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build clones select: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query clones: %w", err)
	}
	defer rows.Close()

	var clones []models.CloneRecord
	for rows.Next() {
		var c models.CloneRecord
		if err = rows.Scan(&c.ID, &c.URL, &c.Directory, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan clone row: %w", err)
		}
		clones = append(clones, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate clone rows: %w", err)
	}

	return clones, nil
}
