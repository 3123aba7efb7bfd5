// Package numeric defines the closed set of numeric kinds the library
// operates on and the total promotion table that governs how any two
// kinds combine under a binary operation.
//
// The tower members are:
//
//	Int              — 64-bit integers
//	Rational         — exact fractions (package rational)
//	Float            — float64
//	Complex          — complex128
//	Array            — element-wise []float64 vectors
//	Quantity         — (unit, value) pairs (package quantity)
//	UncertainReal    — real GUM-tree nodes (package ucomp)
//	UncertainComplex — complex GUM-tree nodes (package cucomp)
//	Unit             — bare units (package unit); never combine arithmetically
//
// Every member implements Value by reporting its Kind; Promote maps an
// ordered pair of kinds to the common kind both operands coerce to, or
// reports that the pair is undefined. Operations on undefined pairs fail
// with ErrUnsupportedOperation — they never guess.
//
// Selected rules (the table is symmetric; see Promote for the full set):
//
//	Rational × Float            → Float
//	Rational × Int              → Rational (stays exact)
//	Quantity × any scalar/array → Quantity (other side wrapped in the quantity's unit)
//	UncertainReal × Complex     → undefined
//	Unit × anything             → undefined
//
// Free two-argument element-wise functions (Atan2, Hypot) are exempt from
// the table: they take their result kind from the first argument only.
// This asymmetry is deliberate and documented, not a bug.
//
// The tower dispatch itself (coerce both operands, run the kernel) lives
// in package quantity, the top of the tower; this package owns the kinds,
// the table, and the scalar/array kernels.
package numeric
