package guard

import (
	"reflect"
	"unsafe"
)

const msgNil = "must not be nil"

// Handle is the set of integer types used to carry native handles.
type Handle interface {
	~uintptr | ~uint | ~uint32 | ~uint64 | ~int | ~int32 | ~int64
}

// Null handle sentinels, chosen by the signedness of the handle type.
const (
	NullSignedHandle   int64  = 0
	NullUnsignedHandle uint64 = 0
)

// NotNil validates that a pointer is not nil and returns it unchanged.
func NotNil[T any](label string, value *T) (*T, error) {
	if value == nil {
		return nil, newError(ErrNullArgument, label, msgNil, nil)
	}
	return value, nil
}

// NotNilValue validates that value is neither an untyped nil nor a nil
// pointer, map, slice, channel, function or interface.
// Use it for interface-typed parameters such as io.Reader, where a typed nil
// pointer would otherwise slip through a plain == nil check.
func NotNilValue[T any](label string, value T) (T, error) {
	if isNil(value) {
		var zero T
		return zero, newError(ErrNullArgument, label, msgNil, nil)
	}
	return value, nil
}

// NotNilHandle validates that a native handle is not the null handle.
func NotNilHandle[H Handle](label string, h H) (H, error) {
	if isNullHandle(h) {
		return h, newError(ErrNullArgument, label, msgNil, h)
	}
	return h, nil
}

// NotNilPointer validates that an unsafe.Pointer is not nil.
func NotNilPointer(label string, p unsafe.Pointer) (unsafe.Pointer, error) {
	if p == nil {
		return nil, newError(ErrNullArgument, label, msgNil, nil)
	}
	return p, nil
}

func isNullHandle[H Handle](h H) bool {
	var zero H
	if ^zero < zero {
		return int64(h) == NullSignedHandle
	}
	return uint64(h) == NullUnsignedHandle
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	default:
		return false
	}
}
