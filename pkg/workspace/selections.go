package workspace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/sgaunet/origin-link/pkg/platform"
)

var (
	errInvalidLineSpec = errors.New("invalid line specification")
	errLineNotPositive = errors.New("line numbers start at 1")
	errReversedRange   = errors.New("range end is before its start")

	// ErrInvalidLineSpec is returned when a --lines entry is not "n" or "a-b".
	ErrInvalidLineSpec = errInvalidLineSpec
	// ErrLineNotPositive is returned for line 0.
	ErrLineNotPositive = errLineNotPositive
	// ErrReversedRange is returned for "b-a" with b > a.
	ErrReversedRange = errReversedRange
)

// ParseSelections turns 1-based line specs such as "6,10-20,26" into
// 0-based selections. Several specs may be given; their entries are kept in
// order. Blank entries are ignored.
func ParseSelections(specs []string) ([]platform.Selection, error) {
	var selections []platform.Selection
	for _, spec := range specs {
		for _, entry := range strings.Split(spec, ",") {
			entry = strings.TrimSpace(entry)
			if entry == "" {
				continue
			}
			sel, err := parseEntry(entry)
			if err != nil {
				return nil, err
			}
			selections = append(selections, sel)
		}
	}
	return selections, nil
}

func parseEntry(entry string) (platform.Selection, error) {
	startText, endText, isRange := strings.Cut(entry, "-")
	if !isRange {
		endText = startText
	}

	start, err := parseLine(entry, startText)
	if err != nil {
		return platform.Selection{}, err
	}
	end, err := parseLine(entry, endText)
	if err != nil {
		return platform.Selection{}, err
	}
	if end < start {
		return platform.Selection{}, fmt.Errorf("%w: %q", errReversedRange, entry)
	}

	return platform.Selection{Start: start - 1, End: end - 1}, nil
}

func parseLine(entry, text string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidLineSpec, entry)
	}
	if n < 1 {
		return 0, fmt.Errorf("%w: %q", errLineNotPositive, entry)
	}
	return n, nil
}
