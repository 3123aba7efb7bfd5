package unit

import "errors"

var (
	// ErrIncompatibleDimensions indicates a conversion between units whose
	// Dimension vectors differ.
	ErrIncompatibleDimensions = errors.New("unit: incompatible dimensions")

	// ErrZeroScale indicates a converter with a zero or non-finite scale
	// factor, which would not be invertible.
	ErrZeroScale = errors.New("unit: converter scale must be finite and non-zero")

	// ErrAffineComposition indicates an offset-carrying unit (such as °C)
	// was used inside a product or power, where only linear converters
	// compose correctly.
	ErrAffineComposition = errors.New("unit: affine unit cannot be composed")
)
