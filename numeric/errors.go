package numeric

import "errors"

var (
	// ErrUnsupportedOperation indicates no coercion rule exists for the
	// given pair of kinds, or an operator was applied to a kind outside
	// its domain.
	ErrUnsupportedOperation = errors.New("numeric: unsupported operation for kind pair")

	// ErrDivisionByZero indicates division by a zero-valued operand.
	ErrDivisionByZero = errors.New("numeric: division by zero")

	// ErrLengthMismatch indicates an element-wise operation over arrays
	// of different lengths.
	ErrLengthMismatch = errors.New("numeric: array length mismatch")
)
