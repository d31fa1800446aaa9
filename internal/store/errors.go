package store

import "errors"

// Sentinel errors returned by repository methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrHistoryNotRecorded is returned when a history or clone-registry
	// write fails. The condition is recoverable by contract: the command
	// that triggered the write still counts as successful.
	ErrHistoryNotRecorded = errors.New("history entry was not recorded")
)
