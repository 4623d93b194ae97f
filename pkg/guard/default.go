package guard

// NotDefault validates that value is not the zero value of its type.
// It returns value unchanged on success.
func NotDefault[T comparable](label string, value T) (T, error) {
	var zero T
	if value == zero {
		return zero, newError(ErrNullOrDefaultArgument, label, "must not be the default value", value)
	}
	return value, nil
}

// Must returns value or panics if err is not nil.
// Intended for package-level variables and constructors where a rejected
// argument is a programming error.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}
