package guard

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// NotBlank validates that a string has visible content.
//
// The checks run in order: an empty string, or a string holding exactly one
// NUL character, fails with ErrEmptyArgument; a string made only of Unicode
// whitespace fails with ErrInvalidArgument.
func NotBlank(label, value string) error {
	if value == "" || value == "\x00" {
		return newError(ErrEmptyArgument, label, "must not be empty", value)
	}

	if strings.TrimSpace(value) == "" {
		return newError(ErrInvalidArgument, label, "must not be whitespace", value)
	}

	return nil
}

// NotBlankPtr is NotBlank for optional strings. A nil pointer fails with ErrNullArgument.
func NotBlankPtr(label string, value *string) error {
	if value == nil {
		return newError(ErrNullArgument, label, msgNil, nil)
	}
	return NotBlank(label, *value)
}

// Length validates that the number of characters (runes) in value is within
// the closed interval [min, max]. It returns value unchanged on success.
func Length(label, value string, min, max int) (string, error) {
	if n := utf8.RuneCountInString(value); n < min || n > max {
		err := newError(ErrOutOfRangeArgument, label,
			fmt.Sprintf("expected string with length in the range [%d, %d]", min, max), value)
		return "", err
	}
	return value, nil
}

// LengthPtr is Length for optional strings. A nil pointer fails with ErrNullArgument.
func LengthPtr(label string, value *string, min, max int) (string, error) {
	if value == nil {
		return "", newError(ErrNullArgument, label, msgNil, nil)
	}
	return Length(label, *value, min, max)
}
