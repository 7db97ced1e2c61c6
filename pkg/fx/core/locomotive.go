package core

import (
	"context"
	"sync"

	"github.com/ib-77/fxpipe/pkg/fx"
)

// CancellationHandlers are called when ctx ends while a line is running.
type CancellationHandlers[In, Out any] struct {
	// OnCancelUnprocessed receives an input that was taken from the input
	// channel but never reached the engine.
	OnCancelUnprocessed func(ctx context.Context, unprocessed fx.Result[In])

	// OnCancelProcessed receives an output the engine produced that could
	// not be delivered.
	OnCancelProcessed func(ctx context.Context, in fx.Result[In], processed fx.Result[Out])
}

// Locomotive drives one worker line: it takes inputs one at a time, runs
// engine on each and forwards the outcome to outCh, until inputCh is closed
// or ctx is done. wg.Done is called on return.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan fx.Result[In], outCh chan<- fx.Result[Out],
	engine func(ctx context.Context, input fx.Result[In]) <-chan fx.Result[Out],
	handlers CancellationHandlers[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			select {
			case <-ctx.Done():
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in)
				}
				return
			case pr, running := <-engine(ctx, in):
				if !running {
					if handlers.OnCancelUnprocessed != nil {
						handlers.OnCancelUnprocessed(ctx, in)
					}
					return
				}

				select {
				case <-ctx.Done():
					if handlers.OnCancelProcessed != nil {
						handlers.OnCancelProcessed(ctx, in, pr)
					}
					return
				case outCh <- pr:
				}
			}
		}
	}
}
