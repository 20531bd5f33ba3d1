package oxide

import (
	"fmt"
	"iter"
)

// Option holds either a single value of type T or nothing. The
// discriminant is fixed at construction; combinators never modify the
// receiver, they return a new value (or the receiver itself when
// nothing changed).
type Option[T any] struct {
	value T
	some  bool
}

// Some returns an option holding value.
func Some[T any](value T) Option[T] {
	return Option[T]{value: value, some: true}
}

// None returns the empty option.
func None[T any]() Option[T] {
	return Option[T]{}
}

// IsOption reports whether v is an Option of any element type.
func IsOption(v any) bool {
	_, ok := v.(interface{ isOption() })
	return ok
}

func (o Option[T]) isOption() {}

// IsSome returns true if the option holds a value.
func (o Option[T]) IsSome() bool {
	return o.some
}

// IsNone returns true if the option is empty.
func (o Option[T]) IsNone() bool {
	return !o.some
}

// Get returns the value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.some
}

// And returns other if o holds a value, None otherwise. The
// type-changing form is the free function AndOption.
func (o Option[T]) And(other Option[T]) Option[T] {
	if o.some {
		return other
	}
	return None[T]()
}

// Filter returns o unchanged if it holds a value accepted by
// predicate, None otherwise.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	if o.some && predicate(o.value) {
		return o
	}
	return None[T]()
}

// Or returns o if it holds a value, other otherwise.
func (o Option[T]) Or(other Option[T]) Option[T] {
	if o.some {
		return o
	}
	return other
}

// OrElse returns o if it holds a value, fn() otherwise.
func (o Option[T]) OrElse(fn func() Option[T]) Option[T] {
	if o.some {
		return o
	}
	return fn()
}

// Xor returns whichever of o and other holds a value if exactly one
// does, None otherwise.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	switch {
	case o.some && !other.some:
		return o
	case !o.some && other.some:
		return other
	default:
		return None[T]()
	}
}

// Unwrap returns the value or panics with the ErrUnwrapNone kind.
func (o Option[T]) Unwrap() T {
	if !o.some {
		panic(newUnwrapError(ErrUnwrapNone, ""))
	}
	return o.value
}

// Expect returns the value or panics with the ErrUnwrapNone kind
// carrying msg.
func (o Option[T]) Expect(msg string) T {
	if !o.some {
		panic(newUnwrapError(ErrUnwrapNone, msg))
	}
	return o.value
}

// UnwrapOr returns the value or defaultValue.
func (o Option[T]) UnwrapOr(defaultValue T) T {
	if o.some {
		return o.value
	}
	return defaultValue
}

// UnwrapOrElse returns the value or fn().
func (o Option[T]) UnwrapOrElse(fn func() T) T {
	if o.some {
		return o.value
	}
	return fn()
}

// Iter returns a sequence of zero or one elements. Each call yields a
// fresh, restartable sequence.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.some {
			yield(o.value)
		}
	}
}

// Match calls onSome with the value or onNone.
func (o Option[T]) Match(onSome func(T), onNone func()) {
	if o.some {
		onSome(o.value)
	} else {
		onNone()
	}
}

// ToPtr returns a pointer to a copy of the value, nil when empty.
func (o Option[T]) ToPtr() *T {
	if o.some {
		return &o.value
	}
	return nil
}

func (o Option[T]) String() string {
	if o.some {
		return fmt.Sprintf("Some(%v)", o.value)
	}
	return "None"
}
