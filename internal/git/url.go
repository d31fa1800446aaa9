package git

import "strings"

const githubPrefix = "https://github.com/"

// NormalizeRepoURL turns loose user input into a cloneable URL: anything
// not already http(s) is treated as an "owner/repo" shorthand and prefixed
// with the GitHub host.
func NormalizeRepoURL(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if strings.HasPrefix(input, "http://") || strings.HasPrefix(input, "https://") {
		return input
	}
	return githubPrefix + strings.TrimPrefix(input, "/")
}

// RepoNameFromURL extracts the repository directory name git would derive
// from url: the last path segment with any ".git" suffix removed.
func RepoNameFromURL(url string) string {
	url = strings.TrimRight(strings.TrimSpace(url), "/")
	if url == "" {
		return ""
	}

	name := url
	if idx := strings.LastIndex(url, "/"); idx >= 0 {
		name = url[idx+1:]
	}
	return strings.TrimSuffix(name, ".git")
}
