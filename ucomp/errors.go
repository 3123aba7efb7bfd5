package ucomp

import "errors"

var (
	// ErrNegativeUncertainty indicates a declared standard uncertainty
	// below zero (or NaN) at input-node construction.
	ErrNegativeUncertainty = errors.New("ucomp: negative standard uncertainty")

	// ErrDivisionByZero indicates division by an operand whose nominal
	// value is zero.
	ErrDivisionByZero = errors.New("ucomp: division by zero operand")

	// ErrDomain indicates an operand outside an operator's domain, e.g.
	// the logarithm of a non-positive nominal value.
	ErrDomain = errors.New("ucomp: operand outside function domain")

	// ErrCyclicGraph indicates a node was revisited while already on the
	// active evaluation stack. Graphs built through this package are
	// acyclic by construction; this is a defensive check.
	ErrCyclicGraph = errors.New("ucomp: cycle detected in computation graph")
)
