package models

import "time"

// History entry kinds recorded by the local store. Stored as plain strings
// so the history table stays readable with any sqlite client.
const (
	HistoryClone  = "clone"
	HistoryCommit = "commit"
	HistoryPush   = "push"
	HistorySearch = "search"
	HistoryAPI    = "api"
)

// HistoryEntry is one executed command recorded in the local history store.
type HistoryEntry struct {
	// ID is the autoincrement identifier assigned by the store.
	ID int64 `json:"-"`

	// Kind is one of the History* constants.
	Kind string `json:"kind"`

	// Subject is the primary argument of the command: a repository URL
	// for clones, a commit message for commits, a query for searches.
	Subject string `json:"subject"`

	// Detail carries optional extra context (target directory, result
	// counts) and may be empty.
	Detail string `json:"detail"`

	// CreatedAt is the time the command was recorded.
	CreatedAt time.Time `json:"created_at"`
}

// CloneRecord is one repository cloned through the commander.
type CloneRecord struct {
	ID        int64     `json:"-"`
	URL       string    `json:"url"`
	Directory string    `json:"directory"`
	CreatedAt time.Time `json:"created_at"`
}
