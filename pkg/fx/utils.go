package fx

import (
	"context"
	"errors"
)

// GetErrors flattens one level of errors.Join.
func GetErrors(err error) []error {
	if err == nil {
		return []error{}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// IsCancellationError reports context cancellation and deadline errors.
func IsCancellationError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
