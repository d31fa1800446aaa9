package service

import "errors"

var (
	ErrEmptyRepoURL  = errors.New("repository URL is required")
	ErrEmptyQuery    = errors.New("search query is required")
	ErrEmptyRepoName = errors.New("repository name is required")
)
