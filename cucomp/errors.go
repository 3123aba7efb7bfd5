// SPDX-License-Identifier: MIT
// Package: cucomp

package cucomp

import "errors"

var (
	// ErrIndefiniteCovariance indicates a declared covariance matrix that
	// is not positive-semidefinite (negative variance on the diagonal, or
	// a correlation exceeding what the variances allow).
	ErrIndefiniteCovariance = errors.New("cucomp: covariance matrix is not positive-semidefinite")

	// ErrNegativeUncertainty indicates a negative (or NaN) standard
	// uncertainty passed to a convenience constructor.
	ErrNegativeUncertainty = errors.New("cucomp: negative standard uncertainty")

	// ErrDivisionByZero indicates division by an operand whose nominal
	// value is zero.
	ErrDivisionByZero = errors.New("cucomp: division by zero operand")

	// ErrDomain indicates an operand outside an operator's domain.
	ErrDomain = errors.New("cucomp: operand outside function domain")

	// ErrCyclicGraph indicates a node was revisited while already on the
	// active evaluation stack (defensive; constructed graphs are acyclic).
	ErrCyclicGraph = errors.New("cucomp: cycle detected in computation graph")
)
