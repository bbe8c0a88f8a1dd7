package github

import "errors"

// Error definitions for GitHub API operations.
var (
	errNotGitHub        = errors.New("remote is not hosted on github.com")
	errInvalidURLFormat = errors.New("invalid GitHub URL format")
	errNoDefaultBranch  = errors.New("repository has no default branch")

	// ErrNotGitHub is returned by LookupFromRemote for non-GitHub remotes.
	ErrNotGitHub = errNotGitHub
	// ErrInvalidURLFormat is returned when owner and repository cannot be read from the remote.
	ErrInvalidURLFormat = errInvalidURLFormat
)
