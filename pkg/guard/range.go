package guard

import (
	"cmp"
	"fmt"
)

// InRange validates that min <= value <= max.
// NaN is ordered below every other float, so a NaN value is always out of range
// unless min is NaN too.
func InRange[T cmp.Ordered](label string, value, min, max T) error {
	return InRangeFunc(label, value, min, max, cmp.Compare[T])
}

// InRangeFunc is InRange for types without a built-in ordering, such as
// time.Time. compare must return a negative number when a < b, zero when
// a == b and a positive number when a > b.
func InRangeFunc[T any](label string, value, min, max T, compare func(a, b T) int) error {
	if compare(min, value) > 0 || compare(value, max) > 0 {
		return newError(ErrOutOfRangeArgument, label, fmt.Sprintf("accepted range: [%v, %v]", min, max), value)
	}
	return nil
}
