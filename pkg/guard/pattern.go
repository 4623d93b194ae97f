package guard

import (
	"fmt"
	"regexp"
	"strings"
)

const patternLabel = "pattern"

// Match is the result of a successful pattern guard.
// Group 0 is the whole match; groups 1..n are the capturing groups.
type Match struct {
	input   string
	indices []int
	names   []string
}

// Value returns the matched text.
func (m *Match) Value() string {
	return m.Group(0)
}

// Index returns the byte offsets of the match within the input.
func (m *Match) Index() (start, end int) {
	return m.indices[0], m.indices[1]
}

// Len returns the number of capturing groups, excluding the whole match.
func (m *Match) Len() int {
	return len(m.indices)/2 - 1
}

// Group returns the text of the i-th group.
// An out-of-range index or a group that did not participate yields "".
func (m *Match) Group(i int) string {
	if i < 0 || 2*i+1 >= len(m.indices) {
		return ""
	}
	start, end := m.indices[2*i], m.indices[2*i+1]
	if start < 0 {
		return ""
	}
	return m.input[start:end]
}

// Groups returns the text of every capturing group in order.
func (m *Match) Groups() []string {
	groups := make([]string, m.Len())
	for i := range groups {
		groups[i] = m.Group(i + 1)
	}
	return groups
}

// Named returns the text of the group declared as (?P<name>...), or "".
func (m *Match) Named(name string) string {
	if name == "" {
		return ""
	}
	for i, n := range m.names {
		if n == name {
			return m.Group(i)
		}
	}
	return ""
}

// Pattern validates that value matches the regular expression pattern and
// returns the match. The pattern is compiled on each call; use PatternRegexp
// with a precompiled expression on hot paths.
//
// Blank value or pattern text fails with ErrInvalidArgument. Failures caused
// by the pattern itself are labelled "pattern" rather than with label.
func Pattern(label, value, pattern string) (*Match, error) {
	if strings.TrimSpace(value) == "" {
		return nil, newError(ErrInvalidArgument, label, "must not be empty or whitespace", value)
	}

	if strings.TrimSpace(pattern) == "" {
		return nil, newError(ErrInvalidArgument, patternLabel, "must not be empty or whitespace", pattern)
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		argErr := newError(ErrInvalidArgument, patternLabel, "must be a valid regular expression", pattern)
		argErr.Err = err
		return nil, argErr
	}

	return match(label, value, re)
}

// PatternRegexp validates that value matches re and returns the match.
// A nil re fails with ErrNullArgument labelled "pattern".
func PatternRegexp(label, value string, re *regexp.Regexp) (*Match, error) {
	if strings.TrimSpace(value) == "" {
		return nil, newError(ErrInvalidArgument, label, "must not be empty or whitespace", value)
	}

	if re == nil {
		return nil, newError(ErrNullArgument, patternLabel, msgNil, nil)
	}

	return match(label, value, re)
}

func match(label, value string, re *regexp.Regexp) (*Match, error) {
	indices := re.FindStringSubmatchIndex(value)
	if indices == nil {
		return nil, newError(ErrFormatArgument, label,
			fmt.Sprintf("value does not conform to required format: %s", re), value)
	}

	return &Match{
		input:   value,
		indices: indices,
		names:   re.SubexpNames(),
	}, nil
}
