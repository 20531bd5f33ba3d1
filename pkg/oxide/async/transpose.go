package async

import (
	"github.com/ib-77/oxide/pkg/oxide"
	"github.com/ib-77/oxide/pkg/oxide/future"
)

// TransposeOption swaps a deferred option of a result into a deferred
// result of an option, with the synchronous mapping applied once the
// computation settles.
func TransposeOption[T, E any](o Option[oxide.Result[T, E]]) Result[oxide.Option[T], E] {
	return Result[oxide.Option[T], E]{f: future.Then(o.f,
		func(v oxide.Option[oxide.Result[T, E]]) (oxide.Result[oxide.Option[T], E], error) {
			return oxide.TransposeOption(v), nil
		})}
}

// TransposeResult swaps a deferred result of an option into a
// deferred option of a result.
func TransposeResult[T, E any](r Result[oxide.Option[T], E]) Option[oxide.Result[T, E]] {
	return Option[oxide.Result[T, E]]{f: future.Then(r.f,
		func(v oxide.Result[oxide.Option[T], E]) (oxide.Option[oxide.Result[T, E]], error) {
			return oxide.TransposeResult(v), nil
		})}
}
