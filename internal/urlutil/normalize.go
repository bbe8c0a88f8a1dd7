package urlutil

import "strings"

// Segments are the '/'-separated tokens of a canonical URL. Index 0 is the
// scheme token ("https:"), index 1 the host, and the rest are path segments.
type Segments []string

// Normalize rewrites an SSH or SCP-like remote into its HTTPS form and strips
// embedded credentials. The .git suffix and trailing slash are left for
// [Split]. Unrecognised remotes are returned unmodified; recognised ones
// without a host (an unterminated IPv6 bracket) give "".
//
// Examples:
//
//	Normalize("ssh://git@github.com:nodejs/node.git")     → "https://github.com/nodejs/node.git"
//	Normalize("ssh://git@git.example.com:7999/ta/money.git") → "https://git.example.com/7999/ta/money.git"
//	Normalize("git@bitbucket.org:acme/widgets.git")       → "https://bitbucket.org/acme/widgets.git"
//	Normalize("https://jdoe@github.com/acme/api.git")     → "https://github.com/acme/api.git"
func Normalize(remoteURL string) string {
	return ParseRemote(remoteURL).Canonical()
}

// NormalizeHosted is [Normalize] for remotes on github.com or bitbucket.org.
// See [Remote.Hosted].
//
//	NormalizeHosted("ssh://git@ssh.github.com:443/owner/repo.git") → "https://github.com/owner/repo.git"
func NormalizeHosted(remoteURL string) string {
	return ParseRemote(remoteURL).Hosted().Canonical()
}

// Split tokenises a canonical URL. A single trailing slash and a trailing
// .git are removed first, and empty path segments (doubled separators) are
// dropped so that index positions stay stable.
func Split(canonicalURL string) Segments {
	trimmed := strings.TrimSuffix(canonicalURL, "/")
	trimmed = strings.TrimSuffix(trimmed, ".git")

	scheme, rest, ok := strings.Cut(trimmed, "//")
	if !ok {
		return Segments(strings.Split(trimmed, "/"))
	}

	parts := strings.Split(rest, "/")
	segments := make(Segments, 0, len(parts)+1)
	segments = append(segments, scheme, parts[0])
	for _, part := range parts[1:] {
		if part != "" {
			segments = append(segments, part)
		}
	}
	return segments
}

// OwnerRepo returns the first two path segments of a remote, which name the
// owner and repository on github.com and bitbucket.org.
func OwnerRepo(remoteURL string) (string, string, bool) {
	segments := Split(NormalizeHosted(remoteURL))
	const ownerIdx, repoIdx = 2, 3
	if len(segments) <= repoIdx {
		return "", "", false
	}
	return segments[ownerIdx], segments[repoIdx], true
}
