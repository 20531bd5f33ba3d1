package chain

import (
	"context"

	"github.com/ib-77/oxide/pkg/oxide"
)

// Chain wraps an oxide.Result[T, error] with a context to enable
// fluent composition of fallible steps.
type Chain[T any] struct {
	ctx context.Context
	res oxide.Result[T, error]
}

// Start creates a chain from an existing result.
func Start[T any](ctx context.Context, r oxide.Result[T, error]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

// FromValue creates a chain from a successful value.
func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, oxide.Ok[T, error](v))
}

// FromCall creates a chain from a (value, error) pair.
func FromCall[T any](ctx context.Context, v T, err error) Chain[T] {
	return Start(ctx, oxide.TryWith(v, err))
}

// Result returns the underlying result.
func (c Chain[T]) Result() oxide.Result[T, error] {
	return c.res
}

// Then composes a function that already returns a result.
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) oxide.Result[T, error]) Chain[T] {
	if v, ok := c.res.Get(); ok {
		return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, v)}
	}
	return c
}

// ThenTry composes a function that returns (T, error), like repo calls.
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if v, ok := c.res.Get(); ok {
		return Chain[T]{ctx: c.ctx, res: oxide.TryWith(try(c.ctx, v))}
	}
	return c
}

// Map transforms the successful value.
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if v, ok := c.res.Get(); ok {
		return Chain[T]{ctx: c.ctx, res: oxide.Ok[T, error](onSuccess(c.ctx, v))}
	}
	return c
}

// Filter fails the chain with err when the predicate rejects the
// successful value.
func (c Chain[T]) Filter(predicate func(ctx context.Context, t T) bool, err error) Chain[T] {
	if v, ok := c.res.Get(); ok && !predicate(c.ctx, v) {
		return Chain[T]{ctx: c.ctx, res: oxide.Err[T](err)}
	}
	return c
}

// Or returns c if it succeeded, alternative otherwise.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	return alternative
}

// And returns the last chain if every candidate succeeded, the first
// failure otherwise.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Ensure triggers side effects for success/failure without changing
// the result.
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	c.res.Match(
		func(v T) {
			if onSuccess != nil {
				onSuccess(c.ctx, v)
			}
		},
		func(err error) {
			if onFailure != nil {
				onFailure(c.ctx, err)
			}
		})
	return c
}

// Finally collapses the chain to a final value.
func (c Chain[T]) Finally(onSuccess func(context.Context, T) T, onFailure func(context.Context, error) T) T {
	return oxide.MatchResult(c.res,
		func(v T) T { return onSuccess(c.ctx, v) },
		func(err error) T { return onFailure(c.ctx, err) })
}

// Then composes a function that switches the chain to a new value
// type.
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) oxide.Result[U, error]) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: oxide.AndThenResult(c.res,
		func(v T) oxide.Result[U, error] { return onSuccess(c.ctx, v) })}
}

// ThenTry switches the value type through a (U, error) function.
func ThenTry[T, U any](c Chain[T], try func(context.Context, T) (U, error)) Chain[U] {
	return Then(c, func(ctx context.Context, v T) oxide.Result[U, error] {
		return oxide.TryWith(try(ctx, v))
	})
}

// Map switches the value type through a pure transformation.
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{ctx: c.ctx, res: oxide.MapResult(c.res,
		func(v T) U { return onSuccess(c.ctx, v) })}
}

// Finally collapses the chain to a value of a different type.
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return oxide.MatchResult(c.res,
		func(v T) U { return onSuccess(c.ctx, v) },
		func(err error) U { return onFailure(c.ctx, err) })
}
