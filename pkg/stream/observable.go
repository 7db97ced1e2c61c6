package stream

import (
	"context"
	"slices"
)

// Observable is a stream of T values.
//
// next is never called concurrently for one observation. complete is called
// exactly once and no next call follows it.
type Observable[T any] interface {
	Observe(ctx context.Context, next func(T), complete func(error))
}

// FuncObservable implements Observable with a function.
type FuncObservable[T any] func(ctx context.Context, next func(T), complete func(error))

func (f FuncObservable[T]) Observe(ctx context.Context, next func(T), complete func(error)) {
	f(ctx, next, complete)
}

// Just emits v and completes.
func Just[T any](v T) Observable[T] {
	return FromSlice([]T{v})
}

// FromSlice emits items in order and completes.
func FromSlice[T any](items []T) Observable[T] {
	items = slices.Clone(items)
	return FuncObservable[T](func(ctx context.Context, next func(T), complete func(error)) {
		go func() {
			for _, item := range items {
				if err := ctx.Err(); err != nil {
					complete(err)
					return
				}
				next(item)
			}
			complete(nil)
		}()
	})
}

// FromChannel emits what is received from in until it is closed.
func FromChannel[T any](in <-chan T) Observable[T] {
	return FuncObservable[T](func(ctx context.Context, next func(T), complete func(error)) {
		go func() {
			for {
				select {
				case <-ctx.Done():
					complete(ctx.Err())
					return
				case v, ok := <-in:
					if !ok {
						complete(nil)
						return
					}
					next(v)
				}
			}
		}()
	})
}

// Fail completes with err without emitting.
func Fail[T any](err error) Observable[T] {
	return FuncObservable[T](func(ctx context.Context, next func(T), complete func(error)) {
		go complete(err)
	})
}

// Empty completes without emitting.
func Empty[T any]() Observable[T] {
	return FuncObservable[T](func(ctx context.Context, next func(T), complete func(error)) {
		go complete(nil)
	})
}

// Never neither emits nor completes until ctx is done.
func Never[T any]() Observable[T] {
	return FuncObservable[T](func(ctx context.Context, next func(T), complete func(error)) {
		go func() {
			<-ctx.Done()
			complete(ctx.Err())
		}()
	})
}

// Map applies f to every value of src.
func Map[T, R any](src Observable[T], f func(T) R) Observable[R] {
	return FuncObservable[R](func(ctx context.Context, next func(R), complete func(error)) {
		src.Observe(ctx, func(v T) { next(f(v)) }, complete)
	})
}

// ToSlice observes src to completion and returns what it emitted, together
// with the completion error.
func ToSlice[T any](ctx context.Context, src Observable[T]) ([]T, error) {
	var items []T
	errs := make(chan error, 1)
	src.Observe(ctx,
		func(v T) { items = append(items, v) },
		func(err error) { errs <- err })
	err := <-errs
	return items, err
}
