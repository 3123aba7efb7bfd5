// SPDX-License-Identifier: MIT
// Package: cucomp

package cucomp

import (
	"fmt"
	"math/cmplx"
)

// Graph constructors, mirroring package ucomp: each returns a new
// Operation node with shared operand references and an eagerly computed
// nominal value.

// Add returns a + b.
func Add(a, b Component) Component {
	return &Operation{op: opAdd, args: []Component{a, b}, nominal: a.Nominal() + b.Nominal()}
}

// Sub returns a − b.
func Sub(a, b Component) Component {
	return &Operation{op: opSub, args: []Component{a, b}, nominal: a.Nominal() - b.Nominal()}
}

// Mul returns a · b.
func Mul(a, b Component) Component {
	return &Operation{op: opMul, args: []Component{a, b}, nominal: a.Nominal() * b.Nominal()}
}

// Div returns a / b.
// Returns ErrDivisionByZero when b's nominal value is zero.
func Div(a, b Component) (Component, error) {
	if b.Nominal() == 0 {
		return nil, ErrDivisionByZero
	}

	return &Operation{op: opDiv, args: []Component{a, b}, nominal: a.Nominal() / b.Nominal()}, nil
}

// Neg returns −a.
func Neg(a Component) Component {
	return &Operation{op: opNeg, args: []Component{a}, nominal: -a.Nominal()}
}

// Conj returns the complex conjugate of a. Its Jacobian is diag(1, −1):
// the canonical non-holomorphic operator of the ℝ²→ℝ² model.
func Conj(a Component) Component {
	return &Operation{op: opConj, args: []Component{a}, nominal: cmplx.Conj(a.Nominal())}
}

// Exp returns e^a.
func Exp(a Component) Component {
	return &Operation{op: opExp, args: []Component{a}, nominal: cmplx.Exp(a.Nominal())}
}

// Log returns the principal natural logarithm of a.
// Returns ErrDomain when a's nominal value is zero.
func Log(a Component) (Component, error) {
	if a.Nominal() == 0 {
		return nil, fmt.Errorf("%w: log(0)", ErrDomain)
	}

	return &Operation{op: opLog, args: []Component{a}, nominal: cmplx.Log(a.Nominal())}, nil
}

// Sqrt returns the principal square root of a.
// Returns ErrDomain when a's nominal value is zero (the sensitivity is
// unbounded there).
func Sqrt(a Component) (Component, error) {
	if a.Nominal() == 0 {
		return nil, fmt.Errorf("%w: sqrt(0)", ErrDomain)
	}

	return &Operation{op: opSqrt, args: []Component{a}, nominal: cmplx.Sqrt(a.Nominal())}, nil
}

// PowConst returns a^p for an exact real exponent p, on the principal
// branch.
func PowConst(a Component, p float64) Component {
	return &Operation{
		op:      opPowConst,
		args:    []Component{a},
		exp:     p,
		nominal: cmplx.Pow(a.Nominal(), complex(p, 0)),
	}
}
