// Package ui holds the interactive prompts of origin-link.
package ui

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/sgaunet/origin-link/internal/security"
)

var errNoRemotes = errors.New("repository has no remotes")

// AskFunc asks a single survey question. It matches survey.AskOne.
type AskFunc func(prompt survey.Prompt, response any, opts ...survey.AskOpt) error

// Remote is a choice offered by the selector.
type Remote struct {
	Name string
	URL  string
}

// RemoteSelector lets the user pick the remote a link should point at.
type RemoteSelector struct {
	ask AskFunc
}

// NewRemoteSelector creates a selector prompting on the terminal.
func NewRemoteSelector() *RemoteSelector {
	return &RemoteSelector{ask: survey.AskOne}
}

// NewRemoteSelectorWithPrompt creates a selector using ask instead of the terminal.
func NewRemoteSelectorWithPrompt(ask AskFunc) *RemoteSelector {
	return &RemoteSelector{ask: ask}
}

// SelectRemote returns the chosen remote name. A single remote is returned
// without prompting. defaultName is preselected when it is among remotes.
func (rs *RemoteSelector) SelectRemote(remotes []Remote, defaultName string) (string, error) {
	switch len(remotes) {
	case 0:
		return "", errNoRemotes
	case 1:
		return remotes[0].Name, nil
	}

	options := make([]string, len(remotes))
	for i, remote := range remotes {
		options[i] = remote.Name
	}

	prompt := &survey.Select{
		Message: "Choose remote:",
		Options: options,
		Description: func(_ string, index int) string {
			return security.RedactRemoteURL(remotes[index].URL)
		},
	}
	for _, name := range options {
		if name == defaultName {
			prompt.Default = defaultName
		}
	}

	var selected string
	if err := rs.ask(prompt, &selected); err != nil {
		return "", fmt.Errorf("failed to get remote selection: %w", err)
	}

	return selected, nil
}
