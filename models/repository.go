package models

// Repository is the subset of the GitHub repository object the commander
// displays and acts on. Field names mirror the REST API response keys.
type Repository struct {
	// FullName is the "owner/name" identifier of the repository.
	FullName string `json:"full_name"`

	// Description is the free-form repository description; may be empty.
	Description string `json:"description"`

	// CloneURL is the HTTPS URL used for git clone.
	CloneURL string `json:"clone_url"`

	// Stars is the stargazer count at the time of the request.
	Stars int `json:"stargazers_count"`

	// Private reports whether the repository is private.
	Private bool `json:"private"`
}

// SearchResult is the decoded body of GET /search/repositories.
type SearchResult struct {
	// TotalCount is the server-side number of matches, which may exceed
	// the number of items returned in this page.
	TotalCount int `json:"total_count"`

	// Items holds the returned page of matching repositories.
	Items []Repository `json:"items"`
}

// AccountInfo is the decoded body of GET /user.
type AccountInfo struct {
	// Login is the authenticated account name.
	Login string `json:"login"`

	// Name is the display name; may be empty.
	Name string `json:"name"`

	// PublicRepos is the count of public repositories owned by the account.
	PublicRepos int `json:"public_repos"`
}

// RateLimit is the core object of GET /rate_limit.
type RateLimit struct {
	// Limit is the request quota for the current window.
	Limit int `json:"limit"`

	// Remaining is the number of requests left in the current window.
	Remaining int `json:"remaining"`

	// Reset is the Unix timestamp at which the window resets.
	Reset int64 `json:"reset"`
}
