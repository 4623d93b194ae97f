package guard

import (
	"fmt"
	"reflect"
)

// Enum is implemented by enumeration types that know their own members.
//
//	type Color int
//
//	const (
//	    Red Color = iota
//	    Green
//	)
//
//	func (c Color) IsDefined() bool { return c >= Red && c <= Green }
type Enum interface {
	comparable
	IsDefined() bool
}

// Defined validates that value is one of members and returns it unchanged.
func Defined[T comparable](label string, value T, members ...T) (T, error) {
	for _, m := range members {
		if value == m {
			return value, nil
		}
	}
	var zero T
	return zero, undefinedError(label, value)
}

// DefinedEnum validates that value is a defined member of its enumeration.
func DefinedEnum[E Enum](label string, value E) (E, error) {
	if !value.IsDefined() {
		var zero E
		return zero, undefinedError(label, value)
	}
	return value, nil
}

func undefinedError[T any](label string, value T) *ArgumentError {
	msg := fmt.Sprintf("type %s does not define an enumerated value for '%v'", reflect.TypeOf((*T)(nil)).Elem(), value)
	return newError(ErrInvalidArgument, label, msg, value)
}
