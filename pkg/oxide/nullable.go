package oxide

import "reflect"

// FromPtr returns Some of the pointed-to value, None for nil.
func FromPtr[T any](ptr *T) Option[T] {
	if ptr == nil {
		return None[T]()
	}
	return Some(*ptr)
}

// FromNullable returns None when value is nil or a typed nil
// (pointer, map, slice, chan, func, interface), Some(value) otherwise.
func FromNullable[T any](value T) Option[T] {
	if IsNil(value) {
		return None[T]()
	}
	return Some(value)
}

// IsNil reports whether i is nil, including typed nils hidden behind
// an interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	default:
		return false
	}
}
