package tui

import "github.com/ghpocket/ghpocket/models"

// NavigateTo switches the router to another page. Payload, when set, is
// re-delivered to the target page instead of its Init command.
type NavigateTo struct {
	Page    string
	Payload any
}

// quitRequested is emitted by the Exit menu item.
type quitRequested struct{}

type cloneDoneMsg struct {
	dir string
	err error
}

type statusLoadedMsg struct {
	out string
	err error
}

type pullDoneMsg struct {
	out string
	err error
}

type commitDoneMsg struct {
	out string
	err error
}

type searchDoneMsg struct {
	result models.SearchResult
	err    error
}

type createDoneMsg struct {
	repo models.Repository
	err  error
}

type profileLoadedMsg struct {
	account models.AccountInfo
	limits  models.RateLimit
	repos   []models.Repository
	err     error
}

type historyLoadedMsg struct {
	entries []models.HistoryEntry
	clones  []models.CloneRecord
	err     error
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
