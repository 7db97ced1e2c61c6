package fx

import "context"

// Pair is the payload produced by combining two boxes.
type Pair[A, B any] struct {
	First  A
	Second B
}

func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// Triple is the payload produced by combining three boxes.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}

// Combine pairs the payloads of a and b.
func Combine[T, U any](a Box[T], b Box[U]) Box[Pair[T, U]] {
	return New(Pair[T, U]{First: a.value, Second: b.value})
}

func Combine3[T, U, V any](a Box[T], b Box[U], c Box[V]) Box[Triple[T, U, V]] {
	return New(Triple[T, U, V]{First: a.value, Second: b.value, Third: c.value})
}

// Merge combines a and b and applies f in one step.
func Merge[T, U, R any](a Box[T], b Box[U], f func(T, U) R) Box[R] {
	return New(f(a.value, b.value))
}

func TryMerge[T, U, R any](a Box[T], b Box[U], f func(T, U) (R, error)) (Box[R], error) {
	return TryMap(Combine(a, b), TrySpread(f))
}

func MergeAsync[T, U, R any](ctx context.Context, a Box[T], b Box[U],
	f func(ctx context.Context, x T, y U) (R, error)) (Box[R], error) {

	return MapAsync(ctx, Combine(a, b), func(ctx context.Context, p Pair[T, U]) (R, error) {
		return f(ctx, p.First, p.Second)
	})
}

func Merge3[T, U, V, R any](a Box[T], b Box[U], c Box[V], f func(T, U, V) R) Box[R] {
	return New(f(a.value, b.value, c.value))
}

func TryMerge3[T, U, V, R any](a Box[T], b Box[U], c Box[V],
	f func(T, U, V) (R, error)) (Box[R], error) {

	return TryMap(Combine3(a, b, c), func(t Triple[T, U, V]) (R, error) {
		return f(t.First, t.Second, t.Third)
	})
}

func Merge3Async[T, U, V, R any](ctx context.Context, a Box[T], b Box[U], c Box[V],
	f func(ctx context.Context, x T, y U, z V) (R, error)) (Box[R], error) {

	return MapAsync(ctx, Combine3(a, b, c), func(ctx context.Context, t Triple[T, U, V]) (R, error) {
		return f(ctx, t.First, t.Second, t.Third)
	})
}

// Spread adapts a two-argument function to take a Pair, so that a merge
// function can follow a combination step in a pipeline.
func Spread[A, B, R any](f func(A, B) R) func(Pair[A, B]) R {
	return func(p Pair[A, B]) R {
		return f(p.First, p.Second)
	}
}

func TrySpread[A, B, R any](f func(A, B) (R, error)) func(Pair[A, B]) (R, error) {
	return func(p Pair[A, B]) (R, error) {
		return f(p.First, p.Second)
	}
}

func Spread3[A, B, C, R any](f func(A, B, C) R) func(Triple[A, B, C]) R {
	return func(t Triple[A, B, C]) R {
		return f(t.First, t.Second, t.Third)
	}
}
