package solo

import (
	"context"
	"errors"

	"github.com/ib-77/fxpipe/pkg/fx"
)

func Succeed[T any](input T) fx.Result[T] {
	return fx.Success(input)
}

func Fail[T any](err error) fx.Result[T] {
	return fx.Fail[T](err)
}

func Cancel[T any](err error) fx.Result[T] {
	return fx.Cancel[T](err)
}

// Validate fails the result with errMsg when validate rejects the payload.
func Validate[T any](ctx context.Context, input fx.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) fx.Result[T] {

	if !input.IsSuccess() {
		return input
	}
	if valid, errMsg := validate(ctx, input.Result()); !valid {
		return fx.Fail[T](errors.New(errMsg))
	}
	return input
}

func Switch[In, Out any](ctx context.Context, input fx.Result[In],
	onSuccess func(ctx context.Context, r In) fx.Result[Out]) fx.Result[Out] {

	if !input.IsSuccess() {
		return fx.FailFrom[In, Out](input)
	}
	return onSuccess(ctx, input.Result())
}

func Map[In, Out any](ctx context.Context, input fx.Result[In],
	onSuccess func(ctx context.Context, r In) Out) fx.Result[Out] {

	return lift(input, func(b fx.Box[In]) (fx.Box[Out], error) {
		return fx.Map(b, func(v In) Out { return onSuccess(ctx, v) }), nil
	})
}

func Try[In, Out any](ctx context.Context, input fx.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) fx.Result[Out] {

	return lift(input, func(b fx.Box[In]) (fx.Box[Out], error) {
		return fx.TryMap(b, func(v In) (Out, error) { return onTryExecute(ctx, v) })
	})
}

// Unwrap is the strict optional step: a nil result from f fails with
// *fx.UnwrapError, an error from f fails with that error.
func Unwrap[In, Out any](ctx context.Context, input fx.Result[In],
	f func(ctx context.Context, r In) (*Out, error)) fx.Result[Out] {

	return lift(input, func(b fx.Box[In]) (fx.Box[Out], error) {
		return fx.TryCompactMap(b, func(v In) (*Out, error) { return f(ctx, v) })
	})
}

// Maybe is the permissive optional step: the nil is carried on.
func Maybe[In, Out any](ctx context.Context, input fx.Result[In],
	f func(ctx context.Context, r In) *Out) fx.Result[*Out] {

	return lift(input, func(b fx.Box[In]) (fx.Box[*Out], error) {
		return fx.MaybeMap(b, func(v In) *Out { return f(ctx, v) }), nil
	})
}

// Await suspends on f, which runs on its own goroutine; ctx ending first
// turns the result into a cancellation.
func Await[In, Out any](ctx context.Context, input fx.Result[In],
	f func(ctx context.Context, r In) (Out, error)) fx.Result[Out] {

	return lift(input, func(b fx.Box[In]) (fx.Box[Out], error) {
		return fx.MapAsync(ctx, b, f)
	})
}

func Tee[T any](ctx context.Context, input fx.Result[T],
	onSuccess func(ctx context.Context, r T)) fx.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input.Result())
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input fx.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) fx.Result[T] {

	switch {
	case input.IsSuccess():
		onSuccess(ctx, input.Result())
	case input.IsCancel():
		onCancel(ctx, input.Err())
	default:
		onError(ctx, input.Err())
	}
	return input
}

// Finally reduces the result to a plain value.
func Finally[In, Out any](ctx context.Context, input fx.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	switch {
	case input.IsSuccess():
		return onSuccess(ctx, input.Result())
	case input.IsCancel():
		return onCancel(ctx, input.Err())
	default:
		return onError(ctx, input.Err())
	}
}

func lift[In, Out any](input fx.Result[In], step func(fx.Box[In]) (fx.Box[Out], error)) fx.Result[Out] {
	if !input.IsSuccess() {
		return fx.FailFrom[In, Out](input)
	}
	b, _ := input.Box()
	return fx.ResultOf(step(b))
}
