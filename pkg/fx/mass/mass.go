package mass

import (
	"context"

	"github.com/ib-77/fxpipe/pkg/fx"
	"github.com/ib-77/fxpipe/pkg/fx/solo"
)

// Switching resolves one input as a single-value future: step runs on its
// own goroutine and the returned channel yields its outcome, or is closed
// empty when ctx ends first (onCancel is then called with the input).
func Switching[In, Out any](ctx context.Context, input fx.Result[In],
	step func(ctx context.Context, r In) fx.Result[Out],
	onCancel func(ctx context.Context, in fx.Result[In])) <-chan fx.Result[Out] {

	return resolve(ctx, input, func() fx.Result[Out] {
		return solo.Switch(ctx, input, step)
	}, onCancel)
}

func Mapping[In, Out any](ctx context.Context, input fx.Result[In],
	mapOnSuccess func(ctx context.Context, r In) Out,
	onCancel func(ctx context.Context, in fx.Result[In])) <-chan fx.Result[Out] {

	return resolve(ctx, input, func() fx.Result[Out] {
		return solo.Map(ctx, input, mapOnSuccess)
	}, onCancel)
}

func Trying[In, Out any](ctx context.Context, input fx.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error),
	onCancel func(ctx context.Context, in fx.Result[In])) <-chan fx.Result[Out] {

	return resolve(ctx, input, func() fx.Result[Out] {
		return solo.Try(ctx, input, onTryExecute)
	}, onCancel)
}

// Unwrapping is Trying for the strict optional step.
func Unwrapping[In, Out any](ctx context.Context, input fx.Result[In],
	f func(ctx context.Context, r In) (*Out, error),
	onCancel func(ctx context.Context, in fx.Result[In])) <-chan fx.Result[Out] {

	return resolve(ctx, input, func() fx.Result[Out] {
		return solo.Unwrap(ctx, input, f)
	}, onCancel)
}

func resolve[In, Out any](ctx context.Context, input fx.Result[In],
	compute func() fx.Result[Out],
	onCancel func(ctx context.Context, in fx.Result[In])) <-chan fx.Result[Out] {

	// ch is buffered so the computing goroutine never leaks once nobody waits.
	ch := make(chan fx.Result[Out], 1)
	out := make(chan fx.Result[Out])

	go func() {
		defer close(ch)

		if ctx.Err() == nil {
			ch <- compute()
		}
	}()

	go func() {
		defer close(out)

		select {
		case pr, ok := <-ch:
			if !ok {
				if onCancel != nil {
					onCancel(ctx, input)
				}
				return
			}
			select {
			case out <- pr:
			case <-ctx.Done():
				if onCancel != nil {
					onCancel(ctx, input)
				}
			}
		case <-ctx.Done():
			if onCancel != nil {
				onCancel(ctx, input)
			}
		}
	}()

	return out
}
