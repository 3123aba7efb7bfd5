// Package uqm models physical quantities — numeric values tied to
// physical units — and propagates measurement uncertainty through
// arbitrary real- and complex-valued computations on them.
//
// 🚀 What is uqm?
//
//	An in-memory computation library that brings together:
//		• Exact rationals: reduced fractions for unit exponents and values
//		• Unit algebra: base, alternate and product units over rational-exponent
//		  dimension vectors, with composable converters
//		• SI catalogue: the full set of base and derived SI units plus prefixes
//		• Quantities: immutable (unit, value) pairs under one arithmetic
//		• GUM-tree propagation: shared computation graphs whose standard
//		  uncertainty is derived from sensitivity coefficients
//		• Complex models: 2×2 real covariance tracking for complex values
//
// ✨ Why choose uqm?
//
//   - One arithmetic – rationals, floats, complex values, arrays, quantities
//     and uncertain values interoperate through a single coercion tower
//   - Correct correlation – a leaf shared by several branches is counted
//     once, so x−x with the same input really has zero uncertainty
//   - Immutable everywhere – frozen graphs evaluate concurrently from
//     independent contexts without coordination
//
// Under the hood, everything is organized under seven subpackages:
//
//	rational/ — exact reduced fractions on math/big
//	numeric/  — the closed kind enumeration and promotion table
//	unit/     — Dimension vectors, Unit variants, affine Converters
//	si/       — the read-only SI unit catalogue and metric prefixes
//	quantity/ — Quantity arithmetic and the tower dispatch
//	ucomp/    — real-valued uncertainty graphs and evaluation contexts
//	cucomp/   — complex-valued graphs with covariance propagation
//
// Quick example:
//
//	leaf, _ := ucomp.NewInput(1.0, 0.2)        // 1.0 ± 0.2
//	q := quantity.New(si.METER, leaf)          // (1.0 ± 0.2) m
//	model, _ := q.Sqrt()                       // unit m^(1/2)
//	ctx := ucomp.NewContext()
//	u, _ := quantity.Uncertainty(ctx, model)   // 0.1 m^(1/2)
//
// Dive into the per-package docs for the coercion rules, the unit
// conversion model, and the propagation algorithm.
//
//	go get github.com/qmetrika/uqm
package uqm
