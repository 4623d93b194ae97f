package guard

import (
	"errors"
	"log/slog"
)

// Kind classifies an argument failure.
// Kinds are sentinel errors; match them with errors.Is.
type Kind struct {
	key    string
	msg    string
	parent *Kind
}

// Error implements the error interface.
func (k *Kind) Error() string {
	return k.msg
}

// Key returns a stable snake_case identifier, suitable for API error codes.
func (k *Kind) Key() string {
	return k.key
}

// Unwrap returns the more general kind, if any.
func (k *Kind) Unwrap() error {
	if k.parent == nil {
		return nil
	}
	return k.parent
}

// Argument failure kinds.
var (
	// ErrNullArgument is returned when a value is nil where presence is required.
	ErrNullArgument = &Kind{key: "null_argument", msg: "null argument"}

	// ErrNullOrDefaultArgument is returned when a value equals the zero value of its type.
	ErrNullOrDefaultArgument = &Kind{key: "null_or_default_argument", msg: "null or default argument", parent: ErrNullArgument}

	// ErrInvalidArgument is returned when a value violates a constraint not covered by a more specific kind.
	ErrInvalidArgument = &Kind{key: "invalid_argument", msg: "invalid argument"}

	// ErrEmptyArgument is returned when a string is present but has no content.
	ErrEmptyArgument = &Kind{key: "empty_argument", msg: "empty argument", parent: ErrInvalidArgument}

	// ErrOutOfRangeArgument is returned when a value or length is outside a closed interval.
	ErrOutOfRangeArgument = &Kind{key: "out_of_range_argument", msg: "argument out of range", parent: ErrInvalidArgument}

	// ErrFormatArgument is returned when a string does not match a required pattern.
	ErrFormatArgument = &Kind{key: "format_argument", msg: "argument has invalid format", parent: ErrInvalidArgument}
)

// ArgumentError describes a rejected argument.
type ArgumentError struct {
	Kind    *Kind
	Label   string // name of the rejected parameter
	Message string
	Value   any   // offending value, nil when absent
	Err     error // underlying cause, e.g. a regexp syntax error
}

func newError(kind *Kind, label, message string, value any) *ArgumentError {
	return &ArgumentError{
		Kind:    kind,
		Label:   label,
		Message: message,
		Value:   value,
	}
}

func (e *ArgumentError) Error() string {
	msg := e.Label + ": " + e.Message
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As.
func (e *ArgumentError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// LogValue implements slog.LogValuer.
// The offending value is never logged.
func (e *ArgumentError) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("kind", e.Kind.Key()),
		slog.String("param", e.Label),
		slog.String("message", e.Message),
	}
	if e.Err != nil {
		attrs = append(attrs, slog.String("cause", e.Err.Error()))
	}
	return slog.GroupValue(attrs...)
}

// AsArgumentError extracts an *ArgumentError from err's chain.
func AsArgumentError(err error) (*ArgumentError, bool) {
	if err == nil {
		return nil, false
	}

	var argErr *ArgumentError
	if errors.As(err, &argErr) {
		return argErr, true
	}

	return nil, false
}

// IsArgumentError reports whether err's chain contains an *ArgumentError.
func IsArgumentError(err error) bool {
	_, ok := AsArgumentError(err)
	return ok
}

// KindOf returns the kind of the first *ArgumentError in err's chain, or nil.
func KindOf(err error) *Kind {
	if argErr, ok := AsArgumentError(err); ok {
		return argErr.Kind
	}
	return nil
}
