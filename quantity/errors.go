package quantity

import "errors"

var (
	// ErrIncompatibleUnits indicates addition, subtraction or comparison
	// of quantities whose units live on different dimension vectors.
	ErrIncompatibleUnits = errors.New("quantity: incompatible units")

	// ErrNotDimensionless indicates a transcendental function (sin, exp,
	// log, …) applied to a quantity with a physical dimension.
	ErrNotDimensionless = errors.New("quantity: operand must be dimensionless")

	// ErrNotUncertain indicates an uncertainty query on a quantity whose
	// value carries no uncertainty graph of the requested kind.
	ErrNotUncertain = errors.New("quantity: value carries no uncertainty component")
)
