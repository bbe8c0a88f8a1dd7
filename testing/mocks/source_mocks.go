// Package mocks provides call-tracking test doubles for origin-link interfaces.
package mocks

import (
	"sync"

	"github.com/sgaunet/origin-link/pkg/link"
	"github.com/sgaunet/origin-link/pkg/platform"
)

// MethodCall represents a tracked method call with its arguments.
type MethodCall struct {
	Method string
	Args   map[string]any
}

// Source is a mock implementation of link.Source with call tracking.
type Source struct {
	mu    sync.Mutex
	calls []MethodCall

	// Configurable responses
	RemoteURLValue      string
	RemoteURLError      error
	CurrentBranchValue  string
	CurrentBranchError  error
	ActiveFilePathValue string
	ActiveFilePathError error
	SelectionsValue     []platform.Selection
	SelectionsError     error
}

// NewSource creates a mock source that resolves every input successfully.
func NewSource(remoteURL, branch, filePath string, selections ...platform.Selection) *Source {
	return &Source{
		calls:               make([]MethodCall, 0),
		RemoteURLValue:      remoteURL,
		CurrentBranchValue:  branch,
		ActiveFilePathValue: filePath,
		SelectionsValue:     selections,
	}
}

// RemoteURL implements link.Source.
func (m *Source) RemoteURL() (string, error) {
	m.trackCall("RemoteURL", map[string]any{})
	return m.RemoteURLValue, m.RemoteURLError
}

// CurrentBranch implements link.Source.
func (m *Source) CurrentBranch() (string, error) {
	m.trackCall("CurrentBranch", map[string]any{})
	return m.CurrentBranchValue, m.CurrentBranchError
}

// ActiveFilePath implements link.Source.
func (m *Source) ActiveFilePath() (string, error) {
	m.trackCall("ActiveFilePath", map[string]any{})
	return m.ActiveFilePathValue, m.ActiveFilePathError
}

// Selections implements link.Source.
func (m *Source) Selections() ([]platform.Selection, error) {
	m.trackCall("Selections", map[string]any{})
	return m.SelectionsValue, m.SelectionsError
}

// GetCalls returns all tracked method calls.
func (m *Source) GetCalls() []MethodCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]MethodCall{}, m.calls...)
}

// GetCallCount returns the number of times a method was called.
func (m *Source) GetCallCount(method string) int {
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

// Reset clears all tracked calls.
func (m *Source) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = make([]MethodCall, 0)
}

// trackCall records a method call with its arguments.
func (m *Source) trackCall(method string, args map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, MethodCall{
		Method: method,
		Args:   args,
	})
}

// Ensure Source implements link.Source interface.
var _ link.Source = (*Source)(nil)
