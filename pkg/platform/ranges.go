package platform

import (
	"strconv"
	"strings"
)

// Selection is a line range as reported by an editor: 0-based, inclusive.
type Selection struct {
	Start int
	End   int
}

// IsSingleLine reports whether the selection starts and ends on the same line.
func (s Selection) IsSingleLine() bool {
	return s.Start == s.End
}

// FormatRanges renders selections as the provider's line fragment, without
// the leading '#'. Selections keep their given order and are joined with ','.
//
//	github:                 L6,L10-L20
//	bitbucket-cloud:        lines-6,10:20   (only entry 0 gets "lines-" when multi-line)
//	self-hosted / unknown:  6,10-20
func FormatRanges(selections []Selection, kind Kind) string {
	parts := make([]string, len(selections))
	for i, sel := range selections {
		parts[i] = formatRange(sel, i, kind)
	}
	return strings.Join(parts, ",")
}

func formatRange(sel Selection, index int, kind Kind) string {
	start := strconv.Itoa(sel.Start + 1)
	end := strconv.Itoa(sel.End + 1)

	switch kind {
	case KindGitHub:
		if sel.IsSingleLine() {
			return "L" + start
		}
		return "L" + start + "-L" + end
	case KindBitbucketCloud:
		if sel.IsSingleLine() {
			return "lines-" + start
		}
		if index == 0 {
			return "lines-" + start + ":" + end
		}
		return start + ":" + end
	case KindSelfHostedBitbucket, KindUnknown:
		fallthrough
	default:
		if sel.IsSingleLine() {
			return start
		}
		return start + "-" + end
	}
}
