package async

import (
	"github.com/ib-77/oxide/pkg/oxide"
	"github.com/ib-77/oxide/pkg/oxide/future"
)

// Result defers an oxide.Result[T, E] behind a future. Failure of the
// underlying computation is distinct from a settled Err container and
// propagates as a failed future to every derived wrapper.
type Result[T, E any] struct {
	f *future.Future[oxide.Result[T, E]]
}

// OkOf lifts a settled successful result.
func OkOf[T, E any](value T) Result[T, E] {
	return FromResult(oxide.Ok[T, E](value))
}

// ErrOf lifts a settled failed result.
func ErrOf[T, E any](e E) Result[T, E] {
	return FromResult(oxide.Err[T](e))
}

// FromResult lifts an already-built result.
func FromResult[T, E any](r oxide.Result[T, E]) Result[T, E] {
	return Result[T, E]{f: future.Resolve(r)}
}

// FromResultFuture wraps an existing deferred result directly.
func FromResultFuture[T, E any](f *future.Future[oxide.Result[T, E]]) Result[T, E] {
	return Result[T, E]{f: f}
}

// GoResult runs job in its own goroutine and wraps its outcome.
func GoResult[T, E any](job func() (oxide.Result[T, E], error)) Result[T, E] {
	return Result[T, E]{f: future.Go(job)}
}

// TryFuture wraps a plain fallible future: a value resolves to Ok, an
// error to a settled Err container. This is the explicit conversion
// for callers that do want underlying failures read as Err.
func TryFuture[T any](f *future.Future[T]) Result[T, error] {
	return Result[T, error]{f: future.Go(func() (oxide.Result[T, error], error) {
		v, err := f.Await()
		return oxide.TryWith(v, err), nil
	})}
}

// Future exposes the underlying deferred result.
func (r Result[T, E]) Future() *future.Future[oxide.Result[T, E]] {
	return r.f
}

// Await blocks until the underlying computation settles.
func (r Result[T, E]) Await() (oxide.Result[T, E], error) {
	return r.f.Await()
}

// IsOk resolves to true if the settled result is a success.
func (r Result[T, E]) IsOk() *future.Future[bool] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (bool, error) {
		return v.IsOk(), nil
	})
}

// IsErr resolves to true if the settled result is a failure.
func (r Result[T, E]) IsErr() *future.Future[bool] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (bool, error) {
		return v.IsErr(), nil
	})
}

// And combines with other once both settle. Both operands are always
// awaited, even when r settles failed first.
func (r Result[T, E]) And(other Result[T, E]) Result[T, E] {
	return joinResult(r, other, oxide.Result[T, E].And)
}

// Or keeps r's settled success or falls back to other's. Awaits both.
func (r Result[T, E]) Or(other Result[T, E]) Result[T, E] {
	return joinResult(r, other, oxide.Result[T, E].Or)
}

// OrElse keeps r's settled success or falls back to fn(failure).
func (r Result[T, E]) OrElse(fn func(E) oxide.Result[T, E]) Result[T, E] {
	return r.Transform(func(v oxide.Result[T, E]) oxide.Result[T, E] {
		return v.OrElse(fn)
	})
}

// Unwrap resolves to the success value; a failure rejects the future
// with the ErrUnwrapErr kind.
func (r Result[T, E]) Unwrap() *future.Future[T] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (T, error) {
		return v.Unwrap(), nil
	})
}

// Expect is Unwrap with a caller message on the rejection.
func (r Result[T, E]) Expect(msg string) *future.Future[T] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (T, error) {
		return v.Expect(msg), nil
	})
}

// UnwrapErr resolves to the failure value; a success rejects the
// future with the ErrUnwrapOk kind.
func (r Result[T, E]) UnwrapErr() *future.Future[E] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (E, error) {
		return v.UnwrapErr(), nil
	})
}

// ExpectErr is UnwrapErr with a caller message on the rejection.
func (r Result[T, E]) ExpectErr(msg string) *future.Future[E] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (E, error) {
		return v.ExpectErr(msg), nil
	})
}

// UnwrapOr resolves to the success value or defaultValue.
func (r Result[T, E]) UnwrapOr(defaultValue T) *future.Future[T] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (T, error) {
		return v.UnwrapOr(defaultValue), nil
	})
}

// UnwrapOrElse resolves to the success value or fn(failure).
func (r Result[T, E]) UnwrapOrElse(fn func(E) T) *future.Future[T] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (T, error) {
		return v.UnwrapOrElse(fn), nil
	})
}

// Ok converts to a deferred option of the success value.
func (r Result[T, E]) Ok() Option[T] {
	return Option[T]{f: future.Then(r.f,
		func(v oxide.Result[T, E]) (oxide.Option[T], error) {
			return v.Ok(), nil
		})}
}

// Err converts to a deferred option of the failure value.
func (r Result[T, E]) Err() Option[E] {
	return Option[E]{f: future.Then(r.f,
		func(v oxide.Result[T, E]) (oxide.Option[E], error) {
			return v.Err(), nil
		})}
}

// Transform applies a synchronous result-to-result function once the
// underlying computation settles. The type-changing form is the free
// function TransformResult.
func (r Result[T, E]) Transform(fn func(oxide.Result[T, E]) oxide.Result[T, E]) Result[T, E] {
	return TransformResult(r, fn)
}

func joinResult[T, E any](a, b Result[T, E], combine func(oxide.Result[T, E], oxide.Result[T, E]) oxide.Result[T, E]) Result[T, E] {
	return Result[T, E]{f: future.Join2(a.f, b.f,
		func(av, bv oxide.Result[T, E]) (oxide.Result[T, E], error) {
			return combine(av, bv), nil
		})}
}

// TransformResult applies a synchronous result-to-result function to
// the settled result.
func TransformResult[T, E, U, F any](r Result[T, E], fn func(oxide.Result[T, E]) oxide.Result[U, F]) Result[U, F] {
	return Result[U, F]{f: future.Then(r.f,
		func(v oxide.Result[T, E]) (oxide.Result[U, F], error) {
			return fn(v), nil
		})}
}

// MapResult applies fn to the settled success value, a failure passes
// through.
func MapResult[T, U, E any](r Result[T, E], fn func(T) U) Result[U, E] {
	return TransformResult(r, func(v oxide.Result[T, E]) oxide.Result[U, E] {
		return oxide.MapResult(v, fn)
	})
}

// MapErrResult applies fn to the settled failure value, a success
// passes through.
func MapErrResult[T, E, F any](r Result[T, E], fn func(E) F) Result[T, F] {
	return TransformResult(r, func(v oxide.Result[T, E]) oxide.Result[T, F] {
		return oxide.MapErrResult(v, fn)
	})
}

// MapOrResult resolves to fn(success) or defaultValue as a bare
// deferred value, mirroring the synchronous asymmetry with the Option
// form.
func MapOrResult[T, U, E any](r Result[T, E], defaultValue U, fn func(T) U) *future.Future[U] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (U, error) {
		return oxide.MapOrResult(v, defaultValue, fn), nil
	})
}

// MapOrElseResult is MapOrResult with the default computed from the
// failure value.
func MapOrElseResult[T, U, E any](r Result[T, E], defaultFn func(E) U, fn func(T) U) *future.Future[U] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (U, error) {
		return oxide.MapOrElseResult(v, defaultFn, fn), nil
	})
}

// AndResult is the type-changing And. Awaits both operands.
func AndResult[T, U, E any](r Result[T, E], other Result[U, E]) Result[U, E] {
	return Result[U, E]{f: future.Join2(r.f, other.f,
		func(av oxide.Result[T, E], bv oxide.Result[U, E]) (oxide.Result[U, E], error) {
			return oxide.AndResult(av, bv), nil
		})}
}

// AndThenResult chains a synchronous result-producing function.
func AndThenResult[T, U, E any](r Result[T, E], fn func(T) oxide.Result[U, E]) Result[U, E] {
	return TransformResult(r, func(v oxide.Result[T, E]) oxide.Result[U, E] {
		return oxide.AndThenResult(v, fn)
	})
}

// AndThenAsyncResult chains a function that itself defers, without
// intermediate lifting.
func AndThenAsyncResult[T, U, E any](r Result[T, E], fn func(T) Result[U, E]) Result[U, E] {
	return Result[U, E]{f: future.Go(func() (oxide.Result[U, E], error) {
		v, err := r.f.Await()
		if err != nil {
			var zero oxide.Result[U, E]
			return zero, err
		}
		inner, ok := v.Get()
		if !ok {
			e, _ := v.GetErr()
			return oxide.Err[U](e), nil
		}
		return fn(inner).Await()
	})}
}

// OrElseResult keeps r's settled success or falls back to
// fn(failure), allowing the error type to change.
func OrElseResult[T, E, F any](r Result[T, E], fn func(E) oxide.Result[T, F]) Result[T, F] {
	return TransformResult(r, func(v oxide.Result[T, E]) oxide.Result[T, F] {
		return oxide.OrElseResult(v, fn)
	})
}

// OrResult keeps r's settled success or falls back to other, allowing
// the error type to change. Awaits both operands.
func OrResult[T, E, F any](r Result[T, E], other Result[T, F]) Result[T, F] {
	return Result[T, F]{f: future.Join2(r.f, other.f,
		func(av oxide.Result[T, E], bv oxide.Result[T, F]) (oxide.Result[T, F], error) {
			return oxide.OrResult(av, bv), nil
		})}
}

// FlattenResult removes exactly one level of container nesting on the
// success side.
func FlattenResult[T, E any](r Result[oxide.Result[T, E], E]) Result[T, E] {
	return TransformResult(r, oxide.FlattenResult[T, E])
}

// ResultContains resolves to true if the settled result succeeded
// with exactly value.
func ResultContains[T comparable, E any](r Result[T, E], value T) *future.Future[bool] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (bool, error) {
		return oxide.ResultContains(v, value), nil
	})
}

// ResultContainsErr resolves to true if the settled result failed
// with exactly e.
func ResultContainsErr[T any, E comparable](r Result[T, E], e E) *future.Future[bool] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (bool, error) {
		return oxide.ResultContainsErr(v, e), nil
	})
}

// IntoOkOrErr resolves to whichever payload the settled result holds.
// Both sides must share a type, as in the synchronous form.
func IntoOkOrErr[T any](r Result[T, T]) *future.Future[T] {
	return future.Then(r.f, func(v oxide.Result[T, T]) (T, error) {
		return oxide.IntoOkOrErr(v), nil
	})
}

// MatchResult folds the settled result into a deferred value.
func MatchResult[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) *future.Future[U] {
	return future.Then(r.f, func(v oxide.Result[T, E]) (U, error) {
		return oxide.MatchResult(v, onOk, onErr), nil
	})
}
