package bridge

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ib-77/fxpipe/pkg/fx"
	"github.com/ib-77/fxpipe/pkg/fx/core"
	"github.com/ib-77/fxpipe/pkg/stream"
	"golang.org/x/sync/errgroup"
)

// ToStream emits the payload of b once and completes.
func ToStream[T any](b fx.Box[T]) stream.Observable[T] {
	return stream.Just(b.Unwrap())
}

// AwaitFirst waits for the first value of src.
//
// A failure before the first value is returned unchanged. If src completes
// without a value, AwaitFirst keeps waiting until ctx is done and returns
// ctx.Err().
func AwaitFirst[T any](ctx context.Context, src stream.Observable[T]) (fx.Box[T], error) {
	cfg := core.GetConfig(ctx)
	spanID := core.NewSpanID()
	t0 := cfg.TimeNow()
	logAwaitStart(cfg, spanID, t0)

	b, err := awaitFirst(ctx, src)

	logAwaitDone(cfg, spanID, t0, err)
	return b, err
}

// AwaitProducer calls produce and awaits the first value of the stream it
// returns. An error from produce is returned before anything is subscribed.
func AwaitProducer[T any](ctx context.Context,
	produce func() (stream.Observable[T], error)) (fx.Box[T], error) {

	src, err := produce()
	if err != nil {
		return fx.Box[T]{}, err
	}
	return AwaitFirst(ctx, src)
}

// AwaitFirstFrom feeds the payload of b to produce and awaits the first
// value of the resulting stream.
func AwaitFirstFrom[T, R any](ctx context.Context, b fx.Box[T],
	produce func(T) (stream.Observable[R], error)) (fx.Box[R], error) {

	return AwaitProducer(ctx, func() (stream.Observable[R], error) {
		return produce(b.Unwrap())
	})
}

// AwaitBoth awaits a and b concurrently and pairs their first values. The
// first failure cancels the other await and is returned.
func AwaitBoth[A, B any](ctx context.Context,
	a stream.Observable[A], b stream.Observable[B]) (fx.Box[fx.Pair[A, B]], error) {

	var (
		first  fx.Box[A]
		second fx.Box[B]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		first, err = AwaitFirst(gctx, a)
		return
	})
	g.Go(func() (err error) {
		second, err = AwaitFirst(gctx, b)
		return
	})
	if err := g.Wait(); err != nil {
		return fx.Box[fx.Pair[A, B]]{}, err
	}
	return fx.Combine(first, second), nil
}

type outcome[T any] struct {
	value T
	err   error
}

// subscription routes the three stream events to the awaiting caller.
// resume fires at most once and cancels the subscription.
type subscription[T any] struct {
	onValue    func(T)
	onComplete func()
	onFailure  func(error)
}

func awaitFirst[T any](ctx context.Context, src stream.Observable[T]) (fx.Box[T], error) {
	if err := ctx.Err(); err != nil {
		return fx.Box[T]{}, err
	}

	subCtx, unsubscribe := context.WithCancel(ctx)
	defer unsubscribe()

	resumed := make(chan outcome[T], 1)
	var once sync.Once
	resume := func(o outcome[T]) {
		once.Do(func() {
			resumed <- o
			unsubscribe()
		})
	}

	sub := subscription[T]{
		onValue: func(v T) { resume(outcome[T]{value: v}) },
		onComplete: func() {
			// nothing was emitted: keep waiting for ctx
		},
		onFailure: func(err error) { resume(outcome[T]{err: err}) },
	}

	src.Observe(subCtx, sub.onValue, func(err error) {
		if err == nil {
			sub.onComplete()
			return
		}
		sub.onFailure(err)
	})

	select {
	case o := <-resumed:
		if o.err != nil {
			return fx.Box[T]{}, o.err
		}
		return fx.New(o.value), nil
	case <-ctx.Done():
		// an outcome delivered together with the cancellation still wins
		select {
		case o := <-resumed:
			if o.err != nil {
				return fx.Box[T]{}, o.err
			}
			return fx.New(o.value), nil
		default:
		}
		return fx.Box[T]{}, ctx.Err()
	}
}

func logAwaitStart(cfg *core.Config, spanID string, t0 time.Time) {
	cfg.Logger.Info(
		"awaitFirstStart",
		slog.String("spanID", spanID),
		slog.Time("t", t0),
	)
}

func logAwaitDone(cfg *core.Config, spanID string, t0 time.Time, err error) {
	cfg.Logger.Info(
		"awaitFirstDone",
		slog.Any("err", err),
		slog.String("errClass", cfg.ErrClassifier.Classify(err)),
		slog.String("spanID", spanID),
		slog.Time("t0", t0),
		slog.Time("t", cfg.TimeNow()),
	)
}
