package chain

import (
	"context"

	"github.com/ib-77/fxpipe/pkg/fx"
	"github.com/ib-77/fxpipe/pkg/fx/bridge"
	"github.com/ib-77/fxpipe/pkg/fx/solo"
	"github.com/ib-77/fxpipe/pkg/stream"
)

// Chain is a pipeline over a Box: every step runs only if all the earlier
// ones succeeded, and the first failure is kept as is.
type Chain[T any] struct {
	ctx    context.Context
	result fx.Result[T]
}

var _ fx.ResultProvider[int] = &Chain[int]{}

// Start begins a chain from a Box.
func Start[T any](ctx context.Context, b fx.Box[T]) *Chain[T] {
	return FromResult(ctx, fx.SuccessBox(b))
}

// FromValue begins a chain from a plain value.
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return FromResult(ctx, fx.Success(value))
}

// FromResult begins a chain from a Result, failed or not.
func FromResult[T any](ctx context.Context, result fx.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: result}
}

func (c *Chain[T]) Result() fx.Result[T] {
	return c.result
}

// Box returns the final Box, or the failure of the step that failed.
func (c *Chain[T]) Box() (fx.Box[T], error) {
	return c.result.Box()
}

func (c *Chain[T]) Err() error {
	return c.result.Err()
}

func (c *Chain[T]) IsSuccess() bool {
	return c.result.IsSuccess()
}

func next[T, U any](c *Chain[T], result fx.Result[U]) *Chain[U] {
	return &Chain[U]{ctx: c.ctx, result: result}
}

// Then applies a plain transformation.
func Then[T, U any](c *Chain[T], f func(T) U) *Chain[U] {
	return next(c, solo.Map(c.ctx, c.result, func(_ context.Context, v T) U {
		return f(v)
	}))
}

// ThenTry applies a transformation that may fail.
func ThenTry[T, U any](c *Chain[T], f func(T) (U, error)) *Chain[U] {
	return next(c, solo.Try(c.ctx, c.result, func(_ context.Context, v T) (U, error) {
		return f(v)
	}))
}

// ThenAsync suspends the chain on f. The chain context bounds the wait.
func ThenAsync[T, U any](c *Chain[T], f func(context.Context, T) (U, error)) *Chain[U] {
	return next(c, solo.Await(c.ctx, c.result, f))
}

// ThenOpt applies an optional transformation; nil fails the chain with
// *fx.UnwrapError.
func ThenOpt[T, U any](c *Chain[T], f func(T) *U) *Chain[U] {
	return ThenTryOpt(c, func(v T) (*U, error) {
		return f(v), nil
	})
}

func ThenTryOpt[T, U any](c *Chain[T], f func(T) (*U, error)) *Chain[U] {
	return next(c, solo.Unwrap(c.ctx, c.result, func(_ context.Context, v T) (*U, error) {
		return f(v)
	}))
}

// ThenMaybe applies an optional transformation and carries the nil on.
func ThenMaybe[T, U any](c *Chain[T], f func(T) *U) *Chain[*U] {
	return next(c, solo.Maybe(c.ctx, c.result, func(_ context.Context, v T) *U {
		return f(v)
	}))
}

// ThenAwait continues with the first value of the stream f returns.
func ThenAwait[T, U any](c *Chain[T], f func(T) (stream.Observable[U], error)) *Chain[U] {
	return next(c, solo.Switch(c.ctx, c.result, func(ctx context.Context, v T) fx.Result[U] {
		return fx.ResultOf(bridge.AwaitFirstFrom(ctx, fx.New(v), f))
	}))
}

// Switch continues with a step that returns its own Result.
func Switch[T, U any](c *Chain[T], f func(context.Context, T) fx.Result[U]) *Chain[U] {
	return next(c, solo.Switch(c.ctx, c.result, f))
}

// Plus pairs the payload with b.
func Plus[T, U any](c *Chain[T], b fx.Box[U]) *Chain[fx.Pair[T, U]] {
	return next(c, solo.Map(c.ctx, c.result, func(_ context.Context, v T) fx.Pair[T, U] {
		return fx.Combine(fx.New(v), b).Unwrap()
	}))
}

// Join pairs the payloads of two chains. The failure of c wins over the
// failure of other.
func Join[T, U any](c *Chain[T], other *Chain[U]) *Chain[fx.Pair[T, U]] {
	return next(c, solo.Switch(c.ctx, c.result, func(_ context.Context, v T) fx.Result[fx.Pair[T, U]] {
		if !other.IsSuccess() {
			return fx.FailFrom[U, fx.Pair[T, U]](other.result)
		}
		b, _ := other.Box()
		return fx.SuccessBox(fx.Combine(fx.New(v), b))
	}))
}

// Ensure performs a side effect on success without changing the result.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return next(c, solo.Tee(c.ctx, c.result, onSuccess))
}

// Finally collapses the chain into a plain value.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
