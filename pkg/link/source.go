package link

import (
	"errors"
	"fmt"

	"github.com/sgaunet/bullets"
	"github.com/sgaunet/origin-link/internal/logger"
	"github.com/sgaunet/origin-link/internal/security"
	"github.com/sgaunet/origin-link/pkg/platform"
)

// ErrNoLink is returned when every input resolved but no link could be built.
var ErrNoLink = errors.New("no link can be built for this remote")

var errNoRemote = errors.New("repository has no remote URL")

// Source supplies the inputs of a link from the editor and version control.
// Any method may fail; a failure means "no link".
type Source interface {
	// RemoteURL returns the raw fetch URL of the remote.
	RemoteURL() (string, error)

	// CurrentBranch returns the branch to link to.
	CurrentBranch() (string, error)

	// ActiveFilePath returns the file relative to the repository root,
	// starting with '/'.
	ActiveFilePath() (string, error)

	// Selections returns the selected line ranges in editor order.
	Selections() ([]platform.Selection, error)
}

// Resolver pulls a Target out of a Source and turns it into a link.
type Resolver struct {
	src Source
	log *bullets.Logger
}

// NewResolver creates a resolver reading from src.
func NewResolver(src Source) *Resolver {
	return &Resolver{
		src: src,
		log: logger.NoLogger(),
	}
}

// SetLogger sets the logger for the resolver.
func (r *Resolver) SetLogger(l *bullets.Logger) {
	if l != nil {
		r.log = l
	}
}

// Target collects the link inputs. The remote URL is read first so that a
// repository without a remote never queries the editor.
func (r *Resolver) Target() (Target, error) {
	remoteURL, err := r.src.RemoteURL()
	if err != nil {
		return Target{}, fmt.Errorf("failed to get remote URL: %w", err)
	}
	if remoteURL == "" {
		return Target{}, errNoRemote
	}
	r.log.Debug("Remote URL: " + security.RedactRemoteURL(remoteURL))

	branch, err := r.src.CurrentBranch()
	if err != nil {
		return Target{}, fmt.Errorf("failed to get current branch: %w", err)
	}

	filePath, err := r.src.ActiveFilePath()
	if err != nil {
		return Target{}, fmt.Errorf("failed to get active file: %w", err)
	}

	selections, err := r.src.Selections()
	if err != nil {
		return Target{}, fmt.Errorf("failed to get selections: %w", err)
	}

	return Target{
		RemoteURL:  remoteURL,
		Branch:     branch,
		FilePath:   filePath,
		Selections: selections,
	}, nil
}

// Link resolves the target and builds its link. On any failure the link is
// "" and the error explains why.
func (r *Resolver) Link() (string, error) {
	target, err := r.Target()
	if err != nil {
		return "", err
	}

	kind := platform.Classify(target.RemoteURL)
	r.log.Debug(fmt.Sprintf("Building %s link for %s at %s", kind.DisplayName(), target.FilePath, target.Branch))

	url := GetLink(target)
	if url == "" {
		return "", fmt.Errorf("%w: %s", ErrNoLink, security.RedactRemoteURL(target.RemoteURL))
	}
	return url, nil
}

// FromSource builds the link for src in one call, logging to log when it is
// not nil.
func FromSource(src Source, log *bullets.Logger) (string, error) {
	r := NewResolver(src)
	r.SetLogger(log)
	return r.Link()
}
