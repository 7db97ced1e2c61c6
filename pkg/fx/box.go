package fx

import (
	"cmp"
	"fmt"
)

// Box holds exactly one value of type T. A Box is never mutated: every
// transformation produces a new Box.
//
// When T is comparable, Box[T] is comparable too and can be used as a map key.
type Box[T any] struct {
	value T
}

func New[T any](value T) Box[T] {
	return Box[T]{value: value}
}

// From builds a Box from the result of producer. A producer error is
// returned as is.
func From[T any](producer func() (T, error)) (Box[T], error) {
	v, err := producer()
	if err != nil {
		return Box[T]{}, err
	}
	return New(v), nil
}

func (b Box[T]) Unwrap() T {
	return b.value
}

func (b Box[T]) String() string {
	return fmt.Sprint(b.value)
}

func Equal[T comparable](a, b Box[T]) bool {
	return a.value == b.value
}

func Compare[T cmp.Ordered](a, b Box[T]) int {
	return cmp.Compare(a.value, b.value)
}

func Less[T cmp.Ordered](a, b Box[T]) bool {
	return cmp.Less(a.value, b.value)
}

// Tee calls f with the payload and returns b unchanged.
func Tee[T any](b Box[T], f func(T)) Box[T] {
	f(b.value)
	return b
}
