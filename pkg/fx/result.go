package fx

import (
	"time"

	"github.com/google/uuid"
)

// Result is the railway carrier used by chains and stream workers: either a
// Box, a failure or a cancellation.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	box       Box[T]
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return SuccessBox(New(r))
}

func SuccessBox[T any](b Box[T]) Result[T] {
	return Result[T]{
		box:       b,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isCancel:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// FailOrCancel returns a cancellation for context errors and a failure for
// anything else.
func FailOrCancel[T any](err error) Result[T] {
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

// ResultOf lifts the (Box, error) pair returned by the fallible transforms.
func ResultOf[T any](b Box[T], err error) Result[T] {
	if err != nil {
		return FailOrCancel[T](err)
	}
	return SuccessBox(b)
}

// FailFrom carries a non-successful result over to another payload type,
// keeping its error, kind, id and creation time.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isCancel:  from.isCancel,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.box.Unwrap()
}

// Box returns the held Box, or the failure.
func (r Result[T]) Box() (Box[T], error) {
	if !r.isSuccess {
		return Box[T]{}, r.err
	}
	return r.box, nil
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && !r.IsEmpty()
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isCancel && !r.isSuccess
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
