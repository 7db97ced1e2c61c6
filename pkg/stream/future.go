package stream

import (
	"context"
	"sync"
)

// Future is a cold single-value Observable. The operation runs once, when
// the first observer subscribes, and every observer receives its outcome.
//
// The operation is detached from the cancellation of the subscribing
// context, so an observer leaving early does not abort it for the others.
type Future[T any] struct {
	op    func(ctx context.Context) (T, error)
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

var _ Observable[int] = &Future[int]{}

func NewFuture[T any](op func(ctx context.Context) (T, error)) *Future[T] {
	return &Future[T]{op: op, done: make(chan struct{})}
}

func (f *Future[T]) Observe(ctx context.Context, next func(T), complete func(error)) {
	f.once.Do(func() {
		opCtx := context.WithoutCancel(ctx)
		go func() {
			defer close(f.done)
			f.value, f.err = f.op(opCtx)
		}()
	})

	go func() {
		select {
		case <-ctx.Done():
			complete(ctx.Err())
		case <-f.done:
			if f.err != nil {
				complete(f.err)
				return
			}
			next(f.value)
			complete(nil)
		}
	}()
}
