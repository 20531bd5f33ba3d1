package oxide

import (
	"fmt"
	"iter"
)

// Result holds either a success value of type T or a failure value of
// type E. The failure side is a free type parameter, not restricted
// to error. Same immutability rules as Option.
type Result[T, E any] struct {
	value T
	e     E
	ok    bool
}

// Ok returns a successful result. The error type usually needs
// explicit instantiation: Ok[int, string](1).
func Ok[T, E any](value T) Result[T, E] {
	return Result[T, E]{value: value, ok: true}
}

// Err returns a failed result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{e: e}
}

// IsResult reports whether v is a Result of any type pair.
func IsResult(v any) bool {
	_, ok := v.(interface{ isResult() })
	return ok
}

func (r Result[T, E]) isResult() {}

// IsOk returns true if the result is a success.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if the result is a failure.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and whether it is present.
func (r Result[T, E]) Get() (T, bool) {
	return r.value, r.ok
}

// GetErr returns the failure value and whether it is present.
func (r Result[T, E]) GetErr() (E, bool) {
	return r.e, !r.ok
}

// And returns other if r is a success, r's failure otherwise. The
// type-changing form is the free function AndResult.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	if r.ok {
		return other
	}
	return r
}

// Or returns r if it is a success, other otherwise.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return other
}

// OrElse returns r if it is a success, fn(failure) otherwise.
func (r Result[T, E]) OrElse(fn func(E) Result[T, E]) Result[T, E] {
	if r.ok {
		return r
	}
	return fn(r.e)
}

// Unwrap returns the success value or panics with the ErrUnwrapErr
// kind.
func (r Result[T, E]) Unwrap() T {
	if !r.ok {
		panic(newUnwrapError(ErrUnwrapErr, fmt.Sprintf("%v", r.e)))
	}
	return r.value
}

// Expect returns the success value or panics with the ErrUnwrapErr
// kind carrying msg.
func (r Result[T, E]) Expect(msg string) T {
	if !r.ok {
		panic(newUnwrapError(ErrUnwrapErr, msg))
	}
	return r.value
}

// UnwrapErr returns the failure value or panics with the ErrUnwrapOk
// kind.
func (r Result[T, E]) UnwrapErr() E {
	if r.ok {
		panic(newUnwrapError(ErrUnwrapOk, fmt.Sprintf("%v", r.value)))
	}
	return r.e
}

// ExpectErr returns the failure value or panics with the ErrUnwrapOk
// kind carrying msg.
func (r Result[T, E]) ExpectErr(msg string) E {
	if r.ok {
		panic(newUnwrapError(ErrUnwrapOk, msg))
	}
	return r.e
}

// UnwrapOr returns the success value or defaultValue.
func (r Result[T, E]) UnwrapOr(defaultValue T) T {
	if r.ok {
		return r.value
	}
	return defaultValue
}

// UnwrapOrElse returns the success value or fn(failure).
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) T {
	if r.ok {
		return r.value
	}
	return fn(r.e)
}

// Ok converts to an option of the success value.
func (r Result[T, E]) Ok() Option[T] {
	if r.ok {
		return Some(r.value)
	}
	return None[T]()
}

// Err converts to an option of the failure value.
func (r Result[T, E]) Err() Option[E] {
	if r.ok {
		return None[E]()
	}
	return Some(r.e)
}

// Iter returns a sequence over the success value, zero or one
// elements, restartable.
func (r Result[T, E]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.ok {
			yield(r.value)
		}
	}
}

// Match calls onOk with the success value or onErr with the failure
// value.
func (r Result[T, E]) Match(onOk func(T), onErr func(E)) {
	if r.ok {
		onOk(r.value)
	} else {
		onErr(r.e)
	}
}

func (r Result[T, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Ok(%v)", r.value)
	}
	return fmt.Sprintf("Err(%v)", r.e)
}
