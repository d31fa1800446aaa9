package store

import "github.com/ghpocket/ghpocket/internal/logger"

// Storages bundles every repository backed by the local database.
type Storages struct {
	History HistoryRepository
}

// NewStorages constructs all repositories over one shared connection.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		History: NewHistoryRepository(db, log),
	}
}
