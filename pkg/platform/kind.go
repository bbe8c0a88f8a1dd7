// Package platform classifies git remotes by hosting provider and formats
// provider-specific deep links (line fragments and file URLs).
//
// Every exported function is total: malformed input yields an empty string
// or [KindUnknown], never an error.
package platform

import "strings"

// Kind identifies the code host whose URL grammar a link must follow.
type Kind string

const (
	// KindUnknown is the no-link variant. Classify never returns it.
	KindUnknown Kind = "unknown"
	// KindGitHub covers github.com and GitHub Enterprise remotes on github.com.
	KindGitHub Kind = "github"
	// KindBitbucketCloud covers bitbucket.org.
	KindBitbucketCloud Kind = "bitbucket-cloud"
	// KindSelfHostedBitbucket covers Bitbucket Server / Stash and any other
	// on-prem host, which is assumed to share the Bitbucket Server URL shape.
	KindSelfHostedBitbucket Kind = "self-hosted-bitbucket"
)

const (
	githubDomain    = "github.com"
	bitbucketDomain = "bitbucket.org"
)

// Classify maps a raw remote URL to a provider kind by substring inspection.
// An empty or unrecognised URL classifies as [KindSelfHostedBitbucket];
// callers are expected to reject empty URLs beforehand.
func Classify(remoteURL string) Kind {
	if strings.Contains(remoteURL, githubDomain) {
		return KindGitHub
	}
	if strings.Contains(remoteURL, bitbucketDomain) {
		return KindBitbucketCloud
	}
	return KindSelfHostedBitbucket
}

// String returns the kind identifier.
func (k Kind) String() string {
	if k == "" {
		return string(KindUnknown)
	}
	return string(k)
}

// DisplayName returns a human readable provider name for messages.
func (k Kind) DisplayName() string {
	switch k {
	case KindGitHub:
		return "GitHub"
	case KindBitbucketCloud:
		return "Bitbucket Cloud"
	case KindSelfHostedBitbucket:
		return "Bitbucket Server"
	case KindUnknown:
		return "unknown host"
	default:
		return "unknown host"
	}
}
