package flow

import (
	"context"

	"github.com/ib-77/fxpipe/pkg/fx"
	"github.com/ib-77/fxpipe/pkg/stream"
)

// DefaultLines is the number of worker lines used by the Async operators
// when the context carries no worker options.
const DefaultLines = 4

func Map[T, R any](src stream.Observable[T], f func(T) fx.Box[R]) stream.Observable[R] {
	return drive(src, plain(f), identity[R], false)
}

func MapAsync[T, R any](src stream.Observable[T], f func(context.Context, T) fx.Box[R]) stream.Observable[R] {
	return driveAsync(src, plainCtx(f), identity[R], false)
}

func CompactMap[T, R any](src stream.Observable[T], f func(T) fx.Box[*R]) stream.Observable[R] {
	return drive(src, plain(f), deref[R], false)
}

func CompactMapAsync[T, R any](src stream.Observable[T], f func(context.Context, T) fx.Box[*R]) stream.Observable[R] {
	return driveAsync(src, plainCtx(f), deref[R], false)
}

func TryMap[T, R any](src stream.Observable[T], f func(T) (fx.Box[R], error)) stream.Observable[R] {
	return drive(src, failable(f), identity[R], false)
}

func TryMapAsync[T, R any](src stream.Observable[T], f func(context.Context, T) (fx.Box[R], error)) stream.Observable[R] {
	return driveAsync(src, failableCtx(f), identity[R], false)
}

func TryCompactMap[T, R any](src stream.Observable[T], f func(T) (fx.Box[*R], error)) stream.Observable[R] {
	return drive(src, failable(f), deref[R], false)
}

func TryCompactMapAsync[T, R any](src stream.Observable[T],
	f func(context.Context, T) (fx.Box[*R], error)) stream.Observable[R] {
	return driveAsync(src, failableCtx(f), deref[R], false)
}

// CompactTryMap keeps the elements f transforms into a value and drops
// the rest: errors as well as boxes holding a nil pointer.
func CompactTryMap[T, R any](src stream.Observable[T], f func(T) (fx.Box[*R], error)) stream.Observable[R] {
	return drive(src, failable(f), deref[R], true)
}

func CompactTryMapAsync[T, R any](src stream.Observable[T],
	f func(context.Context, T) (fx.Box[*R], error)) stream.Observable[R] {
	return driveAsync(src, failableCtx(f), deref[R], true)
}

// step adapters

type step[T, M any] func(ctx context.Context, v T) fx.Result[M]

func plain[T, M any](f func(T) fx.Box[M]) step[T, M] {
	return func(_ context.Context, v T) fx.Result[M] {
		return fx.SuccessBox(f(v))
	}
}

func plainCtx[T, M any](f func(context.Context, T) fx.Box[M]) step[T, M] {
	return func(ctx context.Context, v T) fx.Result[M] {
		return fx.SuccessBox(f(ctx, v))
	}
}

func failable[T, M any](f func(T) (fx.Box[M], error)) step[T, M] {
	return func(_ context.Context, v T) fx.Result[M] {
		return fx.ResultOf(f(v))
	}
}

func failableCtx[T, M any](f func(context.Context, T) (fx.Box[M], error)) step[T, M] {
	return func(ctx context.Context, v T) fx.Result[M] {
		return fx.ResultOf(f(ctx, v))
	}
}

// emit adapters: the second result reports whether to pass the value on.

func identity[R any](v R) (R, bool) {
	return v, true
}

func deref[R any](p *R) (R, bool) {
	if p == nil {
		var zero R
		return zero, false
	}
	return *p, true
}
