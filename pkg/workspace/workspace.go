// Package workspace supplies link inputs from a local checkout and the
// command line: the remote and branch come from git, the file and line
// selection from the user.
package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/origin-link/internal/logger"
	"github.com/sgaunet/origin-link/pkg/git"
	"github.com/sgaunet/origin-link/pkg/link"
	"github.com/sgaunet/origin-link/pkg/platform"
)

var (
	errOutsideRepository = errors.New("file is outside the repository")
	errIsDirectory       = errors.New("path is a directory, not a file")
)

// Workspace implements link.Source for a file in a git checkout.
type Workspace struct {
	repo       *git.Repository
	remoteName string
	file       string
	lineSpecs  []string
	lookup     git.DefaultBranchLookup
	log        *bullets.Logger
}

// Option configures a Workspace.
type Option func(*Workspace)

// WithDefaultBranchLookup sets the lookup used when local refs cannot tell
// which branch to link to.
func WithDefaultBranchLookup(lookup git.DefaultBranchLookup) Option {
	return func(w *Workspace) {
		w.lookup = lookup
	}
}

// WithLogger sets the logger for the workspace.
func WithLogger(l *bullets.Logger) Option {
	return func(w *Workspace) {
		if l != nil {
			w.log = l
		}
	}
}

// New creates a workspace for file inside repo. lineSpecs use the
// [ParseSelections] syntax.
func New(repo *git.Repository, remoteName, file string, lineSpecs []string, opts ...Option) *Workspace {
	w := &Workspace{
		repo:       repo,
		remoteName: remoteName,
		file:       file,
		lineSpecs:  lineSpecs,
		log:        logger.NoLogger(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// RemoteURL implements link.Source.
func (w *Workspace) RemoteURL() (string, error) {
	url, err := w.repo.GetRemoteURL(w.remoteName)
	if err != nil {
		return "", fmt.Errorf("failed to read remote: %w", err)
	}
	return url, nil
}

// CurrentBranch implements link.Source.
func (w *Workspace) CurrentBranch() (string, error) {
	branch, err := w.repo.ResolveBranch(w.remoteName, w.lookup)
	if err != nil {
		return "", fmt.Errorf("failed to resolve branch: %w", err)
	}
	w.log.Debug("Branch: " + branch)
	return branch, nil
}

// ActiveFilePath implements link.Source. The result is slash separated and
// starts with '/'.
func (w *Workspace) ActiveFilePath() (string, error) {
	root, err := filepath.EvalSymlinks(w.repo.Root())
	if err != nil {
		return "", fmt.Errorf("failed to resolve repository root: %w", err)
	}

	abs, err := filepath.Abs(w.file)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}
	abs, err = filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("failed to resolve path: %w", err)
	}

	info, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("failed to stat file: %w", err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("%w: %s", errIsDirectory, w.file)
	}

	rel, err := filepath.Rel(root, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", errOutsideRepository, w.file)
	}

	filePath := "/" + filepath.ToSlash(rel)
	w.log.Debug("File: " + filePath)
	return filePath, nil
}

// Selections implements link.Source.
func (w *Workspace) Selections() ([]platform.Selection, error) {
	return ParseSelections(w.lineSpecs)
}

// Ensure Workspace implements link.Source interface.
var _ link.Source = (*Workspace)(nil)
