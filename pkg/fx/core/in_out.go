package core

import (
	"context"

	"github.com/ib-77/fxpipe/pkg/fx"
)

// ToChanFromArgs sends values on the returned channel until they are
// exhausted or ctx is done, then closes it.
func ToChanFromArgs[T any](ctx context.Context, values ...T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// ToChanManyResults is ToChanFromArgs for successful results.
func ToChanManyResults[T any](ctx context.Context, values []T) <-chan fx.Result[T] {
	results := make([]fx.Result[T], len(values))
	for i, v := range values {
		results[i] = fx.Success(v)
	}
	return ToChanFromArgs(ctx, results...)
}

// FromChanMany collects out until it is closed or ctx is done.
func FromChanMany[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}
