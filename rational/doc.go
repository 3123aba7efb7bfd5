// Package rational implements exact fractions backed by math/big integers.
//
// A Rational is always stored in reduced form with a positive denominator,
// so two equal fractions are structurally identical (4/8 and 1/2 reduce to
// the same value). The zero value of Rational is usable and represents 0.
//
// Rationals are immutable: every operation returns a fresh value and the
// backing big integers are never aliased out, so values may be shared
// freely across goroutines.
//
// The package participates in the numeric coercion tower (see package
// numeric): a Rational promotes to float, complex, quantity or uncertain
// kinds when combined with them, and stays exact when combined with
// integers or other rationals.
//
// Errors:
//
//	ErrZeroDenominator - construction, division or inversion with a zero denominator.
package rational
