package fx

import "context"

// Map applies f to the payload and wraps the result.
func Map[T, R any](b Box[T], f func(T) R) Box[R] {
	return New(f(b.value))
}

// TryMap applies f to the payload. An error from f is returned unchanged and
// no Box is produced.
func TryMap[T, R any](b Box[T], f func(T) (R, error)) (Box[R], error) {
	r, err := f(b.value)
	if err != nil {
		return Box[R]{}, err
	}
	return New(r), nil
}

// MapAsync runs f on its own goroutine and waits for it. If ctx is done
// first, ctx.Err() is returned; f is left to finish on its own.
func MapAsync[T, R any](ctx context.Context, b Box[T],
	f func(ctx context.Context, v T) (R, error)) (Box[R], error) {

	r, err := await(ctx, func() (R, error) {
		return f(ctx, b.value)
	})
	if err != nil {
		return Box[R]{}, err
	}
	return New(r), nil
}

// CompactMap applies f and fails with *UnwrapError when f returns nil.
//
// This is the strict optional transform: a missing value is never dropped
// silently. Use MaybeMap to carry the nil on.
func CompactMap[T, R any](b Box[T], f func(T) *R) (Box[R], error) {
	return unwrapPtr(b.value, f(b.value))
}

// CompactMapOK is CompactMap for functions using the comma-ok form.
func CompactMapOK[T, R any](b Box[T], f func(T) (R, bool)) (Box[R], error) {
	r, ok := f(b.value)
	if !ok {
		return Box[R]{}, &UnwrapError{Value: b.value}
	}
	return New(r), nil
}

// TryCompactMap applies f; an error from f wins over a nil result.
func TryCompactMap[T, R any](b Box[T], f func(T) (*R, error)) (Box[R], error) {
	p, err := f(b.value)
	if err != nil {
		return Box[R]{}, err
	}
	return unwrapPtr(b.value, p)
}

func CompactMapAsync[T, R any](ctx context.Context, b Box[T],
	f func(ctx context.Context, v T) (*R, error)) (Box[R], error) {

	p, err := await(ctx, func() (*R, error) {
		return f(ctx, b.value)
	})
	if err != nil {
		return Box[R]{}, err
	}
	return unwrapPtr(b.value, p)
}

// MaybeMap applies f and wraps whatever it returns, nil included.
func MaybeMap[T, R any](b Box[T], f func(T) *R) Box[*R] {
	return New(f(b.value))
}

// MaybeMapAsync fails only when ctx is done before f returns.
func MaybeMapAsync[T, R any](ctx context.Context, b Box[T],
	f func(ctx context.Context, v T) *R) (Box[*R], error) {

	p, err := await(ctx, func() (*R, error) {
		return f(ctx, b.value), nil
	})
	if err != nil {
		return Box[*R]{}, err
	}
	return New(p), nil
}

func unwrapPtr[T, R any](in T, p *R) (Box[R], error) {
	if p == nil {
		return Box[R]{}, &UnwrapError{Value: in}
	}
	return New(*p), nil
}

// await runs op on a new goroutine. The result channel is buffered so op
// never blocks once the caller stopped waiting.
func await[R any](ctx context.Context, op func() (R, error)) (R, error) {
	var zero R
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	type outcome struct {
		value R
		err   error
	}
	ch := make(chan outcome, 1)

	go func() {
		v, err := op()
		ch <- outcome{value: v, err: err}
	}()

	select {
	case o := <-ch:
		return o.value, o.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
