// Package git reads remotes, branches and the worktree root of a local
// checkout through go-git, without shelling out to the git binary.
package git

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/sgaunet/bullets"
	"github.com/sgaunet/origin-link/internal/logger"
	"github.com/sgaunet/origin-link/internal/security"
)

// DefaultRemote is used when no remote name is configured.
const DefaultRemote = "origin"

var (
	errDetachedHead      = errors.New("HEAD is not pointing to a branch")
	errNoRemoteURL       = errors.New("no URLs found for remote")
	errNoDefaultBranch   = errors.New("could not determine default branch")
	errBranchNotOnRemote = errors.New("branch is not on the remote and no default branch is known")
)

// fallbackBranches are tried, in order, when the remote HEAD is unknown.
var fallbackBranches = []string{"main", "master"}

// DefaultBranchLookup asks an external service for the default branch of
// the repository behind remoteURL.
type DefaultBranchLookup func(remoteURL string) (string, error)

// Repository wraps a go-git repository opened from a path inside a worktree.
type Repository struct {
	repo *git.Repository
	root string
	log  *bullets.Logger
}

// OpenRepository opens the repository containing path. path may be a file
// or a directory at any depth below the worktree root.
func OpenRepository(path string) (*Repository, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve path: %w", err)
	}
	if info, statErr := os.Stat(abs); statErr == nil && !info.IsDir() {
		abs = filepath.Dir(abs)
	}

	repo, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open git repository: %w", err)
	}

	worktree, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}

	return &Repository{
		repo: repo,
		root: worktree.Filesystem.Root(),
		log:  logger.NoLogger(),
	}, nil
}

// SetLogger sets the logger for the repository.
func (r *Repository) SetLogger(l *bullets.Logger) {
	if l != nil {
		r.log = l
	}
}

// Root returns the absolute path of the worktree root.
func (r *Repository) Root() string {
	return r.root
}

// GetRemoteURL returns the first configured URL of the named remote.
func (r *Repository) GetRemoteURL(remoteName string) (string, error) {
	remote, err := r.repo.Remote(remoteName)
	if err != nil {
		return "", fmt.Errorf("failed to get remote %s: %w", remoteName, err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", fmt.Errorf("%w: %s", errNoRemoteURL, remoteName)
	}

	security.DebugRemote(r.log, remoteName, urls[0])
	return urls[0], nil
}

// ListRemotes returns the configured remote names, sorted.
func (r *Repository) ListRemotes() ([]string, error) {
	remotes, err := r.repo.Remotes()
	if err != nil {
		return nil, fmt.Errorf("failed to list remotes: %w", err)
	}

	names := make([]string, 0, len(remotes))
	for _, remote := range remotes {
		names = append(names, remote.Config().Name)
	}
	sort.Strings(names)
	return names, nil
}

// GetCurrentBranch returns the short name of the checked out branch.
func (r *Repository) GetCurrentBranch() (string, error) {
	head, err := r.repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD reference: %w", err)
	}

	if !head.Name().IsBranch() {
		return "", errDetachedHead
	}

	return head.Name().Short(), nil
}

// HasRemoteBranch reports whether refs/remotes/<remote>/<branch> exists locally.
func (r *Repository) HasRemoteBranch(remoteName, branch string) bool {
	_, err := r.repo.Reference(plumbing.NewRemoteReferenceName(remoteName, branch), true)
	return err == nil
}

// GetDefaultBranch returns the remote's default branch from the local
// refs/remotes/<remote>/HEAD symbolic ref, falling back to main or master
// when those exist on the remote.
func (r *Repository) GetDefaultBranch(remoteName string) (string, error) {
	ref, err := r.repo.Reference(plumbing.NewRemoteHEADReferenceName(remoteName), false)
	if err == nil && ref.Type() == plumbing.SymbolicReference {
		prefix := "refs/remotes/" + remoteName + "/"
		if name := ref.Target().String(); strings.HasPrefix(name, prefix) {
			return strings.TrimPrefix(name, prefix), nil
		}
	}

	for _, branch := range fallbackBranches {
		if r.HasRemoteBranch(remoteName, branch) {
			return branch, nil
		}
	}

	return "", fmt.Errorf("%w for remote %s", errNoDefaultBranch, remoteName)
}

// ResolveBranch picks the branch a link should point at. The current branch
// is used when the remote has it; otherwise the remote's default branch,
// taken from local refs first and from lookup (when not nil) second.
func (r *Repository) ResolveBranch(remoteName string, lookup DefaultBranchLookup) (string, error) {
	branch, err := r.GetCurrentBranch()
	if err != nil {
		return "", err
	}

	if r.HasRemoteBranch(remoteName, branch) {
		return branch, nil
	}
	r.log.Debug(fmt.Sprintf("Branch %s not found on %s, using the default branch", branch, remoteName))

	defaultBranch, err := r.GetDefaultBranch(remoteName)
	if err == nil {
		return defaultBranch, nil
	}
	r.log.Debug(err.Error())

	if lookup != nil {
		remoteURL, urlErr := r.GetRemoteURL(remoteName)
		if urlErr != nil {
			return "", urlErr
		}
		defaultBranch, err = lookup(remoteURL)
		if err == nil && defaultBranch != "" {
			return defaultBranch, nil
		}
		if err != nil {
			r.log.Warn("Default branch lookup failed: " + security.SanitizeString(err.Error()))
		}
	}

	return "", fmt.Errorf("%w: %s", errBranchNotOnRemote, branch)
}
