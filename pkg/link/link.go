// Package link derives a shareable web URL for a file and line selection
// inside a checkout, for GitHub, Bitbucket Cloud and self-hosted Bitbucket.
package link

import (
	"github.com/sgaunet/origin-link/internal/urlutil"
	"github.com/sgaunet/origin-link/pkg/platform"
)

// Target bundles everything needed to build one link.
type Target struct {
	// RemoteURL is the raw remote as reported by git (HTTPS, ssh:// or SCP-like).
	RemoteURL string
	// Branch is the branch the link points at.
	Branch string
	// FilePath is relative to the repository root and starts with '/'.
	FilePath string
	// Selections are 0-based inclusive line ranges, in the user's order.
	Selections []platform.Selection
}

// GetLink builds the deep link for target. It returns "" when no link can be
// produced: empty remote, branch or file path, or a remote whose provider has
// no URL template.
func GetLink(target Target) string {
	if target.RemoteURL == "" || target.Branch == "" || target.FilePath == "" {
		return ""
	}

	kind := platform.Classify(target.RemoteURL)
	segments := urlutil.Split(canonical(target.RemoteURL, kind))
	ranges := platform.FormatRanges(target.Selections, kind)

	return platform.Build(segments, target.Branch, target.FilePath, ranges, kind)
}

// canonical normalises remoteURL. Hosted providers serve their web UI
// without a port, so ssh:// ports are not turned into path segments there.
func canonical(remoteURL string, kind platform.Kind) string {
	switch kind {
	case platform.KindGitHub, platform.KindBitbucketCloud:
		return urlutil.NormalizeHosted(remoteURL)
	case platform.KindSelfHostedBitbucket, platform.KindUnknown:
		return urlutil.Normalize(remoteURL)
	default:
		return urlutil.Normalize(remoteURL)
	}
}
