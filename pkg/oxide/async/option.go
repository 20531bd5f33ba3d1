package async

import (
	"github.com/ib-77/oxide/pkg/oxide"
	"github.com/ib-77/oxide/pkg/oxide/future"
)

// Option defers an oxide.Option[T] behind a future. Every synchronous
// combinator has a counterpart here with the same semantics once the
// underlying computation settles; container results come back as
// async wrappers and plain-value results as futures.
//
// A failed future stays failed through every derived wrapper; it is
// never folded into None. Convert before lifting when an underlying
// failure should read as absence.
type Option[T any] struct {
	f *future.Future[oxide.Option[T]]
}

// SomeOf lifts a settled present option.
func SomeOf[T any](value T) Option[T] {
	return FromOption(oxide.Some(value))
}

// NoneOf lifts a settled empty option.
func NoneOf[T any]() Option[T] {
	return FromOption(oxide.None[T]())
}

// FromOption lifts an already-built option.
func FromOption[T any](o oxide.Option[T]) Option[T] {
	return Option[T]{f: future.Resolve(o)}
}

// FromOptionFuture wraps an existing deferred option directly, so
// wrappers compose without intermediate lifting.
func FromOptionFuture[T any](f *future.Future[oxide.Option[T]]) Option[T] {
	return Option[T]{f: f}
}

// GoOption runs job in its own goroutine and wraps its outcome.
func GoOption[T any](job func() (oxide.Option[T], error)) Option[T] {
	return Option[T]{f: future.Go(job)}
}

// Future exposes the underlying deferred option.
func (o Option[T]) Future() *future.Future[oxide.Option[T]] {
	return o.f
}

// Await blocks until the underlying computation settles.
func (o Option[T]) Await() (oxide.Option[T], error) {
	return o.f.Await()
}

// IsSome resolves to true if the settled option holds a value.
func (o Option[T]) IsSome() *future.Future[bool] {
	return future.Then(o.f, func(v oxide.Option[T]) (bool, error) {
		return v.IsSome(), nil
	})
}

// IsNone resolves to true if the settled option is empty.
func (o Option[T]) IsNone() *future.Future[bool] {
	return future.Then(o.f, func(v oxide.Option[T]) (bool, error) {
		return v.IsNone(), nil
	})
}

// Filter applies a synchronous predicate to the settled option.
func (o Option[T]) Filter(predicate func(T) bool) Option[T] {
	return o.Transform(func(v oxide.Option[T]) oxide.Option[T] {
		return v.Filter(predicate)
	})
}

// And combines with other once both settle. Both operands are always
// awaited, even when o settles empty first: both computations are
// already running and abandoning one would orphan its failure.
func (o Option[T]) And(other Option[T]) Option[T] {
	return join(o, other, oxide.Option[T].And)
}

// Or keeps o's settled value or falls back to other's. Awaits both.
func (o Option[T]) Or(other Option[T]) Option[T] {
	return join(o, other, oxide.Option[T].Or)
}

// OrElse keeps o's settled value or falls back to fn().
func (o Option[T]) OrElse(fn func() oxide.Option[T]) Option[T] {
	return o.Transform(func(v oxide.Option[T]) oxide.Option[T] {
		return v.OrElse(fn)
	})
}

// Xor resolves present iff exactly one operand settles present.
// Awaits both.
func (o Option[T]) Xor(other Option[T]) Option[T] {
	return join(o, other, oxide.Option[T].Xor)
}

// Unwrap resolves to the value; an empty option rejects the future
// with the ErrUnwrapNone kind.
func (o Option[T]) Unwrap() *future.Future[T] {
	return future.Then(o.f, func(v oxide.Option[T]) (T, error) {
		return v.Unwrap(), nil
	})
}

// Expect is Unwrap with a caller message on the rejection.
func (o Option[T]) Expect(msg string) *future.Future[T] {
	return future.Then(o.f, func(v oxide.Option[T]) (T, error) {
		return v.Expect(msg), nil
	})
}

// UnwrapOr resolves to the value or defaultValue.
func (o Option[T]) UnwrapOr(defaultValue T) *future.Future[T] {
	return future.Then(o.f, func(v oxide.Option[T]) (T, error) {
		return v.UnwrapOr(defaultValue), nil
	})
}

// UnwrapOrElse resolves to the value or fn().
func (o Option[T]) UnwrapOrElse(fn func() T) *future.Future[T] {
	return future.Then(o.f, func(v oxide.Option[T]) (T, error) {
		return v.UnwrapOrElse(fn), nil
	})
}

// Transform applies a synchronous option-to-option function once the
// underlying computation settles. The type-changing form is the free
// function TransformOption.
func (o Option[T]) Transform(fn func(oxide.Option[T]) oxide.Option[T]) Option[T] {
	return TransformOption(o, fn)
}

func join[T any](a, b Option[T], combine func(oxide.Option[T], oxide.Option[T]) oxide.Option[T]) Option[T] {
	return Option[T]{f: future.Join2(a.f, b.f,
		func(av, bv oxide.Option[T]) (oxide.Option[T], error) {
			return combine(av, bv), nil
		})}
}

// TransformOption applies a synchronous option-to-option function to
// the settled option.
func TransformOption[T, U any](o Option[T], fn func(oxide.Option[T]) oxide.Option[U]) Option[U] {
	return Option[U]{f: future.Then(o.f, func(v oxide.Option[T]) (oxide.Option[U], error) {
		return fn(v), nil
	})}
}

// MapOption applies fn to the settled value, None stays None.
func MapOption[T, U any](o Option[T], fn func(T) U) Option[U] {
	return TransformOption(o, func(v oxide.Option[T]) oxide.Option[U] {
		return oxide.MapOption(v, fn)
	})
}

// MapOrOption mirrors oxide.MapOrOption: the outcome is re-wrapped,
// so it always resolves present.
func MapOrOption[T, U any](o Option[T], defaultValue U, fn func(T) U) Option[U] {
	return TransformOption(o, func(v oxide.Option[T]) oxide.Option[U] {
		return oxide.MapOrOption(v, defaultValue, fn)
	})
}

// MapOrElseOption is MapOrOption with a computed default.
func MapOrElseOption[T, U any](o Option[T], defaultFn func() U, fn func(T) U) Option[U] {
	return TransformOption(o, func(v oxide.Option[T]) oxide.Option[U] {
		return oxide.MapOrElseOption(v, defaultFn, fn)
	})
}

// AndOption is the type-changing And. Awaits both operands.
func AndOption[T, U any](o Option[T], other Option[U]) Option[U] {
	return Option[U]{f: future.Join2(o.f, other.f,
		func(av oxide.Option[T], bv oxide.Option[U]) (oxide.Option[U], error) {
			return oxide.AndOption(av, bv), nil
		})}
}

// AndThenOption chains a synchronous option-producing function.
func AndThenOption[T, U any](o Option[T], fn func(T) oxide.Option[U]) Option[U] {
	return TransformOption(o, func(v oxide.Option[T]) oxide.Option[U] {
		return oxide.AndThenOption(v, fn)
	})
}

// AndThenAsyncOption chains a function that itself defers, without
// intermediate lifting.
func AndThenAsyncOption[T, U any](o Option[T], fn func(T) Option[U]) Option[U] {
	return Option[U]{f: future.Go(func() (oxide.Option[U], error) {
		v, err := o.f.Await()
		if err != nil {
			return oxide.None[U](), err
		}
		inner, ok := v.Get()
		if !ok {
			return oxide.None[U](), nil
		}
		return fn(inner).Await()
	})}
}

// ZipOption pairs the settled values. Awaits both operands.
func ZipOption[A, B any](a Option[A], b Option[B]) Option[oxide.Pair[A, B]] {
	return Option[oxide.Pair[A, B]]{f: future.Join2(a.f, b.f,
		func(av oxide.Option[A], bv oxide.Option[B]) (oxide.Option[oxide.Pair[A, B]], error) {
			return oxide.ZipOption(av, bv), nil
		})}
}

// ZipWithOption combines the settled values through fn. Awaits both
// operands.
func ZipWithOption[A, B, R any](a Option[A], b Option[B], fn func(A, B) R) Option[R] {
	return Option[R]{f: future.Join2(a.f, b.f,
		func(av oxide.Option[A], bv oxide.Option[B]) (oxide.Option[R], error) {
			return oxide.ZipWithOption(av, bv, fn), nil
		})}
}

// UnzipOption splits a deferred option of a pair into two wrappers
// over the same settled outcome.
func UnzipOption[A, B any](o Option[oxide.Pair[A, B]]) (Option[A], Option[B]) {
	first := TransformOption(o, func(v oxide.Option[oxide.Pair[A, B]]) oxide.Option[A] {
		a, _ := oxide.UnzipOption(v)
		return a
	})
	second := TransformOption(o, func(v oxide.Option[oxide.Pair[A, B]]) oxide.Option[B] {
		_, b := oxide.UnzipOption(v)
		return b
	})
	return first, second
}

// FlattenOption removes exactly one level of container nesting.
func FlattenOption[T any](o Option[oxide.Option[T]]) Option[T] {
	return TransformOption(o, oxide.FlattenOption[T])
}

// OptionContains resolves to true if the settled option holds exactly
// value.
func OptionContains[T comparable](o Option[T], value T) *future.Future[bool] {
	return future.Then(o.f, func(v oxide.Option[T]) (bool, error) {
		return oxide.OptionContains(v, value), nil
	})
}

// MatchOption folds the settled option into a deferred value.
func MatchOption[T, U any](o Option[T], onSome func(T) U, onNone func() U) *future.Future[U] {
	return future.Then(o.f, func(v oxide.Option[T]) (U, error) {
		return oxide.MatchOption(v, onSome, onNone), nil
	})
}

// OkOr converts to a deferred result: Ok(value) when present,
// Err(err) otherwise.
func OkOr[T, E any](o Option[T], err E) Result[T, E] {
	return Result[T, E]{f: future.Then(o.f,
		func(v oxide.Option[T]) (oxide.Result[T, E], error) {
			return oxide.OkOr(v, err), nil
		})}
}

// OkOrElse converts to a deferred result with a computed error.
func OkOrElse[T, E any](o Option[T], errFn func() E) Result[T, E] {
	return Result[T, E]{f: future.Then(o.f,
		func(v oxide.Option[T]) (oxide.Result[T, E], error) {
			return oxide.OkOrElse(v, errFn), nil
		})}
}
