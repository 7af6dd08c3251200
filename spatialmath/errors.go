package spatialmath

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidArgument is returned when a constructor or query is handed input of the wrong shape.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInvalidOperand is returned when twist algebra is attempted on something that is not a twist
	// of matching dimension, or a real scalar.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrDegenerateAxis is returned when the screw axis of a pure translation is queried. Its axis lies at infinity.
	ErrDegenerateAxis = errors.New("screw axis is at infinity for a pure translation")
)

func newInvalidArgumentError(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidArgument, format, args...)
}

func newInvalidOperandError(cause error) error {
	return errors.Wrap(ErrInvalidOperand, cause.Error())
}

func newDegenerateAxisError(query string) error {
	return errors.Wrapf(ErrDegenerateAxis, "cannot compute %s", query)
}
