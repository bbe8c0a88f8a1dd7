// Package github asks the GitHub REST API for a repository's default branch.
// It is used only when local remote-tracking refs cannot answer.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/google/go-github/v69/github"
	"github.com/sgaunet/bullets"
	"github.com/sgaunet/origin-link/internal/logger"
	"github.com/sgaunet/origin-link/internal/security"
	"github.com/sgaunet/origin-link/internal/urlutil"
	"github.com/sgaunet/origin-link/pkg/platform"
	"golang.org/x/oauth2"
)

const (
	tokenEnv       = "GITHUB_TOKEN"
	defaultTimeout = 10 * time.Second
)

// RepositoriesAPI is the subset of the go-github repositories service used here.
type RepositoriesAPI interface {
	Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error)
}

// Client looks up repository metadata on GitHub.
type Client struct {
	repos   RepositoriesAPI
	timeout time.Duration
	log     *bullets.Logger
}

// Option configures a Client.
type Option func(*Client, *github.Client) error

// WithBaseURL points the client at another API endpoint, such as an
// httptest server.
func WithBaseURL(baseURL string) Option {
	return func(_ *Client, gh *github.Client) error {
		if gh == nil {
			return nil
		}
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		u, err := url.Parse(baseURL)
		if err != nil {
			return fmt.Errorf("invalid GitHub API URL: %w", err)
		}
		gh.BaseURL = u
		return nil
	}
}

// WithTimeout bounds each API request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client, _ *github.Client) error {
		if timeout > 0 {
			c.timeout = timeout
		}
		return nil
	}
}

// WithLogger sets the logger used by the client.
func WithLogger(l *bullets.Logger) Option {
	return func(c *Client, _ *github.Client) error {
		if l != nil {
			c.log = l
		}
		return nil
	}
}

// NewClient creates a GitHub client. Requests are authenticated with
// GITHUB_TOKEN when it is set and anonymous otherwise.
func NewClient(opts ...Option) (*Client, error) {
	token := security.NewSecureToken(os.Getenv(tokenEnv))

	var httpClient *http.Client
	if !token.IsEmpty() {
		ts := oauth2.StaticTokenSource(
			&oauth2.Token{AccessToken: token.Value()},
		)
		httpClient = oauth2.NewClient(context.Background(), ts)
	}
	gh := github.NewClient(httpClient)

	c := &Client{
		repos:   gh.Repositories,
		timeout: defaultTimeout,
		log:     logger.NoLogger(),
	}
	for _, opt := range opts {
		if err := opt(c, gh); err != nil {
			return nil, err
		}
	}

	security.DebugToken(c.log, "GitHub", token)
	return c, nil
}

// NewClientWithAPI creates a client over an existing repositories service.
// WithBaseURL has no effect here.
func NewClientWithAPI(repos RepositoriesAPI, opts ...Option) *Client {
	c := &Client{
		repos:   repos,
		timeout: defaultTimeout,
		log:     logger.NoLogger(),
	}
	for _, opt := range opts {
		_ = opt(c, nil)
	}
	return c
}

// SetLogger sets the logger for the client.
func (c *Client) SetLogger(l *bullets.Logger) {
	if l != nil {
		c.log = l
	}
}

// DefaultBranch returns the default branch of owner/repo.
func (c *Client) DefaultBranch(ctx context.Context, owner, repo string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	c.log.Debug(fmt.Sprintf("Fetching default branch of %s/%s from GitHub", owner, repo))
	repository, _, err := c.repos.Get(ctx, owner, repo)
	if err != nil {
		return "", fmt.Errorf("failed to get repository information: %w", security.SanitizeError(err))
	}

	branch := repository.GetDefaultBranch()
	if branch == "" {
		return "", fmt.Errorf("%w: %s/%s", errNoDefaultBranch, owner, repo)
	}
	return branch, nil
}

// LookupFromRemote returns the default branch of the GitHub repository
// behind remoteURL. Its signature matches git.DefaultBranchLookup.
func (c *Client) LookupFromRemote(remoteURL string) (string, error) {
	if platform.Classify(remoteURL) != platform.KindGitHub {
		return "", errNotGitHub
	}

	owner, repo, ok := urlutil.OwnerRepo(remoteURL)
	if !ok {
		return "", errInvalidURLFormat
	}

	return c.DefaultBranch(context.Background(), owner, repo)
}
