package reactive

import "reflect"

// Option configures a value at construction.
type Option[T any] func(*options[T])

type options[T any] struct {
	equal func(a, b T) bool
	name  string
}

// WithEquals sets the equality function used to drop no-op changes.
func WithEquals[T any](eq func(a, b T) bool) Option[T] {
	return func(o *options[T]) {
		o.equal = eq
	}
}

// WithName labels the value for logs and diagnostics.
func WithName[T any](name string) Option[T] {
	return func(o *options[T]) {
		o.name = name
	}
}

func applyOptions[T any](opts []Option[T]) options[T] {
	o := options[T]{equal: StrictEqual[T]}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// StrictEqual reports whether a and b are the same value in the sense of
// identity: comparable values compare with ==, maps, channels and
// pointers compare by address, and slices compare by address and length.
// Functions are never equal to each other since Go gives closures no
// identity. Everything else falls back to reflect.DeepEqual.
func StrictEqual[T any](a, b T) bool {
	return strictEqualAny(any(a), any(b))
}

func strictEqualAny(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if va.Type() != vb.Type() {
		return false
	}
	switch va.Kind() {
	case reflect.Func:
		return va.IsNil() && vb.IsNil()
	case reflect.Map, reflect.Chan, reflect.Pointer, reflect.UnsafePointer:
		return va.Pointer() == vb.Pointer()
	case reflect.Slice:
		return va.Pointer() == vb.Pointer() && va.Len() == vb.Len()
	}
	if va.Type().Comparable() {
		return comparableEqual(a, b)
	}
	return reflect.DeepEqual(a, b)
}

// comparableEqual compares with ==, which can still panic when an
// interface field holds an uncomparable dynamic value.
func comparableEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}
