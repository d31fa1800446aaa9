package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "full https url unchanged", input: "https://github.com/octocat/hello.git", expected: "https://github.com/octocat/hello.git"},
		{name: "http url unchanged", input: "http://github.com/octocat/hello", expected: "http://github.com/octocat/hello"},
		{name: "owner slash repo shorthand", input: "octocat/hello", expected: "https://github.com/octocat/hello"},
		{name: "leading slash stripped", input: "/octocat/hello", expected: "https://github.com/octocat/hello"},
		{name: "surrounding whitespace", input: "  octocat/hello  ", expected: "https://github.com/octocat/hello"},
		{name: "empty input", input: "   ", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeRepoURL(tt.input))
		})
	}
}

func TestRepoNameFromURL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "git suffix stripped", input: "https://github.com/octocat/hello.git", expected: "hello"},
		{name: "no suffix", input: "https://github.com/octocat/hello", expected: "hello"},
		{name: "trailing slash", input: "https://github.com/octocat/hello/", expected: "hello"},
		{name: "bare name", input: "hello.git", expected: "hello"},
		{name: "empty input", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RepoNameFromURL(tt.input))
		})
	}
}
