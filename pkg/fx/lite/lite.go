package lite

import (
	"context"
	"sync"

	"github.com/ib-77/fxpipe/pkg/fx"
	"github.com/ib-77/fxpipe/pkg/fx/core"
	"github.com/ib-77/fxpipe/pkg/fx/mass"
)

// Engine resolves one input into a channel yielding at most one output.
type Engine[In, Out any] func(ctx context.Context, input fx.Result[In]) <-chan fx.Result[Out]

// Turnout runs engine over inputCh on the given number of worker lines.
// The output channel is closed once every line has stopped. Outputs of
// different lines are interleaved in completion order.
func Turnout[In, Out any](ctx context.Context, inputCh <-chan fx.Result[In],
	engine Engine[In, Out], lines int) <-chan fx.Result[Out] {

	return TurnoutWith(ctx, inputCh, engine, lines, core.CancellationHandlers[In, Out]{})
}

// TurnoutWith is Turnout with cancellation handlers shared by all lines.
func TurnoutWith[In, Out any](ctx context.Context, inputCh <-chan fx.Result[In],
	engine Engine[In, Out], lines int, handlers core.CancellationHandlers[In, Out]) <-chan fx.Result[Out] {

	out := make(chan fx.Result[Out])
	wg := &sync.WaitGroup{}

	for range max(lines, 1) {
		wg.Add(1)
		go core.Locomotive(ctx, inputCh, out, engine, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

func Switch[In, Out any](step func(ctx context.Context, r In) fx.Result[Out]) Engine[In, Out] {
	return func(ctx context.Context, input fx.Result[In]) <-chan fx.Result[Out] {
		return mass.Switching(ctx, input, step, nil)
	}
}

func Map[In, Out any](mapOnSuccess func(ctx context.Context, r In) Out) Engine[In, Out] {
	return func(ctx context.Context, input fx.Result[In]) <-chan fx.Result[Out] {
		return mass.Mapping(ctx, input, mapOnSuccess, nil)
	}
}

func Try[In, Out any](onTryExecute func(ctx context.Context, r In) (Out, error)) Engine[In, Out] {
	return func(ctx context.Context, input fx.Result[In]) <-chan fx.Result[Out] {
		return mass.Trying(ctx, input, onTryExecute, nil)
	}
}

func Unwrap[In, Out any](f func(ctx context.Context, r In) (*Out, error)) Engine[In, Out] {
	return func(ctx context.Context, input fx.Result[In]) <-chan fx.Result[Out] {
		return mass.Unwrapping(ctx, input, f, nil)
	}
}
