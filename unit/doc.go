// Package unit implements the dimension and unit algebra underneath
// physical quantities.
//
// A Dimension is an immutable vector of rational exponents over the seven
// base physical dimensions (length, mass, time, current, temperature,
// amount of substance, luminous intensity). Units combine by product and
// rational power, and their Dimension vectors combine exponent-wise along
// with them, so dimensional compatibility is always an exact vector
// comparison — never a lookup table.
//
// Unit variants:
//
//   - Base      — one canonical unit per base dimension (e.g. m, kg)
//   - Alternate — a named unit defined by a converter applied to an
//     existing unit (mV = 1/1000 × V, °C = K shifted by 273.15)
//   - Product   — a composition of units raised to rational powers
//     (kg·m·s⁻², m^(1/2))
//
// Every unit decomposes into base units and carries a Converter to the
// coherent (base-SI) representation. Converters are invertible affine
// transforms y = scale·x + offset; they compose associatively, and
// converting a unit to itself yields the identity converter.
//
// Units with an offset (affine units such as °C) convert standalone but
// cannot take part in products or powers; composing one returns
// ErrAffineComposition.
//
// The SI catalogue built on this package lives in package si and is
// populated once at startup, read-only thereafter.
//
// Errors:
//
//	ErrIncompatibleDimensions - conversion requested between different dimensions.
//	ErrZeroScale              - converter with a zero (or non-finite) scale.
//	ErrAffineComposition      - affine unit used inside a product or power.
package unit
