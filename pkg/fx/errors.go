package fx

import (
	"errors"
	"fmt"
)

// ErrNilValue matches every *UnwrapError via errors.Is.
var ErrNilValue = errors.New("found nil value")

// UnwrapError is returned by the strict optional transforms when the
// transform produced no value. Value is the input the transform was given.
type UnwrapError struct {
	Value any
}

func (e *UnwrapError) Error() string {
	return fmt.Sprintf("found nil value when unwrapping: '%v'", e.Value)
}

func (e *UnwrapError) Is(target error) bool {
	return target == ErrNilValue
}
