package ucomp

import (
	"fmt"
	"math"
)

// Graph constructors. Each returns a new Operation node holding shared
// references to its operands and the eagerly computed nominal value.
// Operand nodes are never copied: building y = x − x with the same Input
// produces a two-parent reference to one leaf, and that sharing is what
// the propagation algorithm relies on.

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
// Returns ErrDivisionByZero when b's nominal value is zero (the
// sensitivity coefficients are undefined there).
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

// Abs returns |a|. The sensitivity at a nominal of exactly zero is taken
// as zero.
func Abs(a Component) Component {
	return &Operation{op: opAbs, args: []Component{a}, nominal: math.Abs(a.Nominal())}
}

// Pow returns a^b with both base and exponent as graph nodes.
// The exponent sensitivity involves ln(a), so a non-positive base
// combined with an uncertain exponent yields NaN sensitivities; with an
// exact exponent (Const or PowConst) the base may be negative.
func Pow(a, b Component) Component {
	return &Operation{
		op:      opPow,
		args:    []Component{a, b},
		nominal: math.Pow(a.Nominal(), b.Nominal()),
	}
}

// PowConst returns a^p for an exact real exponent p.
func PowConst(a Component, p float64) Component {
	return &Operation{
		op:      opPowConst,
		args:    []Component{a},
		exp:     p,
		nominal: math.Pow(a.Nominal(), p),
	}
}

// Sqrt returns √a.
// Returns ErrDomain when a's nominal value is negative.
func Sqrt(a Component) (Component, error) {
	if a.Nominal() < 0 {
		return nil, fmt.Errorf("%w: sqrt(%g)", ErrDomain, a.Nominal())
	}

	return &Operation{op: opSqrt, args: []Component{a}, nominal: math.Sqrt(a.Nominal())}, nil
}

// Exp returns e^a.
func Exp(a Component) Component {
	return &Operation{op: opExp, args: []Component{a}, nominal: math.Exp(a.Nominal())}
}

// Log returns the natural logarithm of a.
// Returns ErrDomain when a's nominal value is not strictly positive.
func Log(a Component) (Component, error) {
	if a.Nominal() <= 0 {
		return nil, fmt.Errorf("%w: log(%g)", ErrDomain, a.Nominal())
	}

	return &Operation{op: opLog, args: []Component{a}, nominal: math.Log(a.Nominal())}, nil
}

// Sin returns sin(a).
func Sin(a Component) Component {
	return &Operation{op: opSin, args: []Component{a}, nominal: math.Sin(a.Nominal())}
}

// Cos returns cos(a).
func Cos(a Component) Component {
	return &Operation{op: opCos, args: []Component{a}, nominal: math.Cos(a.Nominal())}
}

// Tan returns tan(a).
func Tan(a Component) Component {
	return &Operation{op: opTan, args: []Component{a}, nominal: math.Tan(a.Nominal())}
}

// Asin returns arcsin(a).
// Returns ErrDomain when |a| > 1 at the nominal value.
func Asin(a Component) (Component, error) {
	if v := a.Nominal(); v < -1 || v > 1 {
		return nil, fmt.Errorf("%w: asin(%g)", ErrDomain, v)
	}

	return &Operation{op: opAsin, args: []Component{a}, nominal: math.Asin(a.Nominal())}, nil
}

// Acos returns arccos(a).
// Returns ErrDomain when |a| > 1 at the nominal value.
func Acos(a Component) (Component, error) {
	if v := a.Nominal(); v < -1 || v > 1 {
		return nil, fmt.Errorf("%w: acos(%g)", ErrDomain, v)
	}

	return &Operation{op: opAcos, args: []Component{a}, nominal: math.Acos(a.Nominal())}, nil
}

// Atan returns arctan(a).
func Atan(a Component) Component {
	return &Operation{op: opAtan, args: []Component{a}, nominal: math.Atan(a.Nominal())}
}

// Sinh returns sinh(a).
func Sinh(a Component) Component {
	return &Operation{op: opSinh, args: []Component{a}, nominal: math.Sinh(a.Nominal())}
}

// Cosh returns cosh(a).
func Cosh(a Component) Component {
	return &Operation{op: opCosh, args: []Component{a}, nominal: math.Cosh(a.Nominal())}
}

// Tanh returns tanh(a).
func Tanh(a Component) Component {
	return &Operation{op: opTanh, args: []Component{a}, nominal: math.Tanh(a.Nominal())}
}
