// Package guard provides fail-fast precondition checks for function arguments.
//
// Each guard validates a single property of a single value and either hands
// the value back unchanged or returns an *ArgumentError describing which
// parameter was rejected and why. Guards are meant to sit at the very top of
// exported functions and constructors so that invalid input is rejected before
// any work is done.
//
// # Architecture
//
// Guards are plain generic functions grouped by concern (`default.go`,
// `nil.go`, `string.go`, `range.go`, `pattern.go`, `enum.go`). They take the
// parameter label first (the name of the caller's parameter, echoed in every
// failure), followed by the value and any bounds. There is no hidden global
// state, so every guard is goroutine-safe and allocation-free on the success
// path (pattern guards allocate the returned Match).
//
// Failures are classified by Kind sentinels:
//
//   - ErrNullArgument           value is nil where presence is required
//   - ErrNullOrDefaultArgument  value equals the zero value of its type
//   - ErrEmptyArgument          string is present but has no content
//   - ErrInvalidArgument        value violates a structural constraint
//   - ErrOutOfRangeArgument     value or length is outside a closed interval
//   - ErrFormatArgument         string does not match a required pattern
//
// ErrNullOrDefaultArgument also matches ErrNullArgument, while
// ErrEmptyArgument, ErrOutOfRangeArgument and ErrFormatArgument also match
// ErrInvalidArgument when tested with errors.Is.
//
// # Usage
//
//	func NewClient(name string, timeout time.Duration, opts *Options) (*Client, error) {
//	    if err := guard.NotBlank("name", name); err != nil {
//	        return nil, err
//	    }
//	    if err := guard.InRange("timeout", timeout, time.Second, time.Minute); err != nil {
//	        return nil, err
//	    }
//	    opts, err := guard.NotNil("opts", opts)
//	    if err != nil {
//	        return nil, err
//	    }
//	    ...
//	}
//
// Guards that return the value allow inline use:
//
//	id, err := guard.NotDefault("id", req.ID)
//
// Must turns a failure into a panic for package-level initialisation where an
// invalid argument is a programming error:
//
//	var slugRe = guard.Must(guard.NotNil("slugRe", regexp.MustCompile(`^[a-z0-9-]+$`)))
//
// # Error Handling
//
// Use errors.Is with the Kind sentinels to branch on the failure class, or
// AsArgumentError to inspect the label, message and offending value:
//
//	if ae, ok := guard.AsArgumentError(err); ok {
//	    log.Warn("rejected argument", slog.String("param", ae.Label))
//	}
//
// ArgumentError implements slog.LogValuer so it can be logged directly.
//
// # Static analysis
//
// Parameters checked by a guard may be annotated with a `guard:validated`
// doc comment for linters. The annotation has no runtime effect.
package guard
