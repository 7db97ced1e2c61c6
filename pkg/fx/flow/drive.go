package flow

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ib-77/fxpipe/pkg/fx"
	"github.com/ib-77/fxpipe/pkg/fx/core"
	"github.com/ib-77/fxpipe/pkg/fx/lite"
	"github.com/ib-77/fxpipe/pkg/stream"
)

// drive runs s inline in the upstream next callback.
func drive[T, M, R any](src stream.Observable[T], s step[T, M],
	emit func(M) (R, bool), swallow bool) stream.Observable[R] {

	return stream.FuncObservable[R](func(ctx context.Context, next func(R), complete func(error)) {
		cfg := core.GetConfig(ctx)
		spanID := core.NewSpanID()
		t0 := cfg.TimeNow()
		logFlowStart(cfg, spanID, "sync", t0)

		ctx, cancel := context.WithCancelCause(ctx)
		var once sync.Once
		finish := func(err error) {
			once.Do(func() {
				cancel(err)
				logFlowDone(cfg, spanID, t0, err)
				complete(err)
			})
		}

		src.Observe(ctx, func(v T) {
			if ctx.Err() != nil {
				return
			}
			r := s(ctx, v)
			if !r.IsSuccess() {
				if swallow {
					cfg.ReportDrop(ctx, spanID, r.Err())
					return
				}
				finish(r.Err())
				return
			}
			if out, ok := emit(r.Result()); ok {
				next(out)
			}
		}, finish)
	})
}

// driveAsync resolves every element as a mass future on lite worker lines.
// Upstream values are handed to the lines through an unbuffered channel, so
// a slow stage slows the upstream down.
func driveAsync[T, M, R any](src stream.Observable[T], s step[T, M],
	emit func(M) (R, bool), swallow bool) stream.Observable[R] {

	return stream.FuncObservable[R](func(ctx context.Context, next func(R), complete func(error)) {
		cfg := core.GetConfig(ctx)
		spanID := core.NewSpanID()
		t0 := cfg.TimeNow()
		logFlowStart(cfg, spanID, "async", t0)

		ctx, cancel := context.WithCancelCause(ctx)
		lines := core.GetWorkerMaxCount(ctx, DefaultLines)

		in := make(chan fx.Result[T])
		out := lite.TurnoutWith(ctx, in, lite.Switch[T, M](s), lines, core.CancellationHandlers[T, M]{
			OnCancelUnprocessed: func(ctx context.Context, unprocessed fx.Result[T]) {
				logDiscarded(cfg, spanID)
			},
			OnCancelProcessed: func(ctx context.Context, _ fx.Result[T], processed fx.Result[M]) {
				logDiscarded(cfg, spanID)
			},
		})

		src.Observe(ctx, func(v T) {
			select {
			case in <- fx.Success(v):
			case <-ctx.Done():
			}
		}, func(err error) {
			if err != nil {
				cancel(err)
			}
			close(in)
		})

		go func() {
			var failure error
			for r := range out {
				if failure != nil || ctx.Err() != nil {
					continue
				}
				if !r.IsSuccess() {
					if swallow {
						cfg.ReportDrop(ctx, spanID, r.Err())
						continue
					}
					failure = r.Err()
					cancel(failure)
					continue
				}
				if v, ok := emit(r.Result()); ok {
					next(v)
				}
			}
			if failure == nil {
				failure = context.Cause(ctx)
			}
			cancel(nil)
			logFlowDone(cfg, spanID, t0, failure)
			complete(failure)
		}()
	})
}

func logFlowStart(cfg *core.Config, spanID, mode string, t0 time.Time) {
	cfg.Logger.Info(
		"flowStart",
		slog.String("mode", mode),
		slog.String("spanID", spanID),
		slog.Time("t", t0),
	)
}

func logFlowDone(cfg *core.Config, spanID string, t0 time.Time, err error) {
	cfg.Logger.Info(
		"flowDone",
		slog.Any("err", err),
		slog.String("errClass", cfg.ErrClassifier.Classify(err)),
		slog.String("spanID", spanID),
		slog.Time("t0", t0),
		slog.Time("t", cfg.TimeNow()),
	)
}

func logDiscarded(cfg *core.Config, spanID string) {
	cfg.Logger.Debug(
		"elementDiscarded",
		slog.String("spanID", spanID),
		slog.Time("t", cfg.TimeNow()),
	)
}
