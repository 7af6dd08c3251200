package utils

import (
	"github.com/pkg/errors"
)

// NewUnexpectedTypeError is used when there is a type mismatch.
func NewUnexpectedTypeError(expected interface{}, actual interface{}) error {
	return errors.Errorf("expected %T but got %T", expected, actual)
}

// NewLengthError is used when a slice argument has the wrong number of elements.
func NewLengthError(name string, actual int, expected ...int) error {
	return errors.Errorf("%s must have length %v but has length %d", name, expected, actual)
}
