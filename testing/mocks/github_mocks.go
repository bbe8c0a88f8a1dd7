package mocks

import (
	"context"
	"sync"

	"github.com/google/go-github/v69/github"
	ghclient "github.com/sgaunet/origin-link/pkg/github"
)

// RepositoriesAPI is a mock implementation of github.RepositoriesAPI with call tracking.
type RepositoriesAPI struct {
	mu    sync.Mutex
	calls []MethodCall

	// Configurable responses
	GetResponse *github.Repository
	GetError    error
	// GetFunc overrides GetResponse and GetError when set.
	GetFunc func(ctx context.Context, owner, repo string) (*github.Repository, error)
}

// NewRepositoriesAPI creates a mock returning a repository with the given default branch.
func NewRepositoriesAPI(defaultBranch string) *RepositoriesAPI {
	return &RepositoriesAPI{
		calls:       make([]MethodCall, 0),
		GetResponse: &github.Repository{DefaultBranch: github.Ptr(defaultBranch)},
	}
}

// Get implements github.RepositoriesAPI.
func (m *RepositoriesAPI) Get(ctx context.Context, owner, repo string) (*github.Repository, *github.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MethodCall{
		Method: "Get",
		Args: map[string]any{
			"owner": owner,
			"repo":  repo,
		},
	})
	m.mu.Unlock()

	if m.GetFunc != nil {
		repository, err := m.GetFunc(ctx, owner, repo)
		return repository, nil, err
	}
	return m.GetResponse, nil, m.GetError
}

// GetCallCount returns the number of times a method was called.
func (m *RepositoriesAPI) GetCallCount(method string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, call := range m.calls {
		if call.Method == method {
			count++
		}
	}
	return count
}

// GetLastCall returns the last call to the specified method, or nil if not called.
func (m *RepositoriesAPI) GetLastCall(method string) *MethodCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := len(m.calls) - 1; i >= 0; i-- {
		if m.calls[i].Method == method {
			return &m.calls[i]
		}
	}
	return nil
}

// Ensure RepositoriesAPI implements github.RepositoriesAPI interface.
var _ ghclient.RepositoriesAPI = (*RepositoriesAPI)(nil)
