package platform

import (
	"net/url"
	"strings"
)

// Segment positions produced by splitting a canonical remote URL.
const (
	segScheme = 0
	segHost   = 1
	segOwner  = 2
	segRepo   = 3

	// Self-hosted remotes carry a routing prefix at index 2 ("scm" over
	// HTTPS, the SSH port over ssh://), so the project key sits at 3.
	segProject = 3

	minHostedSegments     = 4
	minSelfHostedSegments = 5
)

// Build assembles the deep link for a file at branch on the given provider.
// segments must come from splitting a normalised remote URL (index 0 is the
// scheme token, index 1 the host). filePath starts with '/'. ranges is the
// output of [FormatRanges]; when empty the fragment is omitted.
//
// It returns "" for [KindUnknown] and when segments are too short for the
// provider's template.
func Build(segments []string, branch, filePath, ranges string, kind Kind) string {
	var link string

	switch kind {
	case KindGitHub:
		if len(segments) < minHostedSegments {
			return ""
		}
		link = hostedBase(segments) + "/blob/" + escapePath(branch) + escapePath(filePath)
	case KindBitbucketCloud:
		if len(segments) < minHostedSegments {
			return ""
		}
		link = hostedBase(segments) + "/src/" + escapePath(branch) + escapePath(filePath)
	case KindSelfHostedBitbucket:
		if len(segments) < minSelfHostedSegments {
			return ""
		}
		link = segments[segScheme] + "//" + segments[segHost] +
			"/projects/" + segments[segProject] +
			"/repos/" + segments[len(segments)-1] +
			"/browse" + escapePath(filePath) +
			"?at=" + url.QueryEscape(branch)
	case KindUnknown:
		return ""
	default:
		return ""
	}

	if ranges == "" {
		return link
	}
	return link + "#" + ranges
}

func hostedBase(segments []string) string {
	return segments[segScheme] + "//" + segments[segHost] + "/" + segments[segOwner] + "/" + segments[segRepo]
}

// escapePath percent-encodes each '/'-separated segment of p so that '#',
// '?' and spaces in branch names or file names cannot leak into the
// fragment or query.
func escapePath(p string) string {
	parts := strings.Split(p, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
