package calendar

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument is returned for a month outside [0,11].
var ErrInvalidArgument = errors.New("invalid argument")

// ArgumentError names the rejected argument. It matches ErrInvalidArgument
// under errors.Is.
type ArgumentError struct {
	Field string
	Value string
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrInvalidArgument, e.Field, e.Value)
}

func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func newMonthError(month int) error {
	return &ArgumentError{
		Field: "month",
		Value: fmt.Sprintf("%d is outside [0,11]", month),
	}
}
