// SPDX-License-Identifier: MIT
// Package: cucomp

package cucomp

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/qmetrika/uqm/numeric"
)

// Component is a node of a complex-valued uncertainty graph: either an
// *Input leaf or an *Operation. Node identity is pointer identity and the
// interface is sealed to this package, mirroring the real-valued graph.
type Component interface {
	numeric.Value

	// Nominal returns the node's nominal complex value.
	Nominal() complex128

	// operands returns the node's direct operands (nil for leaves).
	operands() []Component
}

// Input is a leaf: a measured complex value with a declared 2×2
// covariance over its real and imaginary parts.
type Input struct {
	nominal complex128
	cov     Covariance
}

// NewInput creates a leaf with the given nominal value and covariance.
// The Covariance constructors enforce positive-semidefiniteness.
func NewInput(value complex128, cov Covariance) *Input {
	return &Input{nominal: value, cov: cov}
}

// NewInputUncorrelated creates a leaf whose real and imaginary parts
// carry independent standard uncertainties.
// Returns ErrNegativeUncertainty when either uncertainty is negative.
func NewInputUncorrelated(value complex128, uReal, uImag float64) (*Input, error) {
	cov, err := Uncorrelated(uReal, uImag)
	if err != nil {
		return nil, err
	}

	return &Input{nominal: value, cov: cov}, nil
}

// Const creates an exact leaf (zero covariance).
func Const(v complex128) *Input {
	return &Input{nominal: v}
}

// NumericKind reports numeric.KindUncertainComplex.
func (*Input) NumericKind() numeric.Kind { return numeric.KindUncertainComplex }

// Nominal returns the measured value.
func (in *Input) Nominal() complex128 { return in.nominal }

// Covariance returns the declared covariance matrix.
func (in *Input) Covariance() Covariance { return in.cov }

func (in *Input) operands() []Component { return nil }

func (in *Input) String() string {
	return fmt.Sprintf("(%v ± %v)", in.nominal, in.cov)
}

// opcode tags the operator of an Operation node.
type opcode uint8

const (
	opAdd opcode = iota
	opSub
	opMul
	opDiv
	opNeg
	opConj
	opExp
	opLog
	opSqrt
	opPowConst
)

func (o opcode) String() string {
	names := [...]string{"add", "sub", "mul", "div", "neg", "conj", "exp", "log", "sqrt", "pow"}
	if int(o) < len(names) {
		return names[o]
	}

	return "op?"
}

// Operation is an operator applied to operand nodes, with the nominal
// value precomputed at construction. Operands are shared references.
type Operation struct {
	op      opcode
	args    []Component
	exp     float64 // exponent for opPowConst only
	nominal complex128
}

// NumericKind reports numeric.KindUncertainComplex.
func (*Operation) NumericKind() numeric.Kind { return numeric.KindUncertainComplex }

// Nominal returns the eagerly computed operator result.
func (op *Operation) Nominal() complex128 { return op.nominal }

// Operands returns a copy of the operand list.
func (op *Operation) Operands() []Component {
	out := make([]Component, len(op.args))
	copy(out, op.args)

	return out
}

func (op *Operation) operands() []Component { return op.args }

func (op *Operation) String() string {
	return fmt.Sprintf("%s(nominal=%v)", op.op, op.nominal)
}

// mulJacobian is the ℝ²→ℝ² matrix of "multiply by w": the Jacobian of any
// holomorphic operator is mulJacobian of its complex derivative at the
// operand's nominal value.
func mulJacobian(w complex128) *mat.Dense {
	re, im := real(w), imag(w)

	return mat.NewDense(2, 2, []float64{re, -im, im, re})
}

// jacobian returns the 2×2 real Jacobian of the operation with respect to
// operand i, evaluated at the operands' nominal values: the map taking a
// (Δre, Δim) perturbation of that operand to the perturbation of the
// output.
func (op *Operation) jacobian(i int) *mat.Dense {
	a := op.args[0].Nominal()

	switch op.op {
	case opAdd:
		return mulJacobian(1)
	case opSub:
		if i == 0 {
			return mulJacobian(1)
		}
		return mulJacobian(-1)
	case opMul:
		// d(ab)/da = b, d(ab)/db = a
		if i == 0 {
			return mulJacobian(op.args[1].Nominal())
		}
		return mulJacobian(a)
	case opDiv:
		b := op.args[1].Nominal()
		if i == 0 {
			return mulJacobian(1 / b)
		}
		return mulJacobian(-a / (b * b))
	case opNeg:
		return mulJacobian(-1)
	case opConj:
		// Non-holomorphic: (re, im) ↦ (re, −im).
		return mat.NewDense(2, 2, []float64{1, 0, 0, -1})
	case opExp:
		return mulJacobian(op.nominal)
	case opLog:
		return mulJacobian(1 / a)
	case opSqrt:
		return mulJacobian(1 / (2 * op.nominal))
	case opPowConst:
		p := complex(op.exp, 0)
		return mulJacobian(p * cmplx.Pow(a, p-1))
	default:
		return mulJacobian(0)
	}
}
