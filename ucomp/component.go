package ucomp

import (
	"fmt"
	"math"

	"github.com/qmetrika/uqm/numeric"
)

// Component is a node of a real-valued uncertainty graph: either an
// *Input leaf or an *Operation. Node identity is pointer identity.
// The interface is sealed to this package; graphs are built exclusively
// through the exported constructors, which is what guarantees acyclicity.
type Component interface {
	numeric.Value

	// Nominal returns the node's nominal (best-estimate) value.
	Nominal() float64

	// operands returns the node's direct operands (nil for leaves).
	operands() []Component
}

// Input is a leaf node: a measured value with a declared standard
// uncertainty. Inputs are distinguished by identity — construct one
// Input per physical measurement and share the pointer.
type Input struct {
	nominal float64
	sigma   float64
}

// NewInput creates a leaf with the given nominal value and standard
// uncertainty.
// Returns ErrNegativeUncertainty when uncertainty < 0 or NaN.
func NewInput(value, uncertainty float64) (*Input, error) {
	if uncertainty < 0 || math.IsNaN(uncertainty) {
		return nil, fmt.Errorf("%w: %g", ErrNegativeUncertainty, uncertainty)
	}

	return &Input{nominal: value, sigma: uncertainty}, nil
}

// Const creates an exact leaf (zero uncertainty). Use it to bring plain
// numbers into a graph-valued expression.
func Const(v float64) *Input {
	return &Input{nominal: v}
}

// NumericKind reports numeric.KindUncertainReal.
func (*Input) NumericKind() numeric.Kind { return numeric.KindUncertainReal }

// Nominal returns the measured value.
func (in *Input) Nominal() float64 { return in.nominal }

// Uncertainty returns the declared standard uncertainty.
func (in *Input) Uncertainty() float64 { return in.sigma }

func (in *Input) operands() []Component { return nil }

func (in *Input) String() string {
	return fmt.Sprintf("(%g ± %g)", in.nominal, in.sigma)
}

// opcode tags the operator of an Operation node.
type opcode uint8

const (
	opAdd opcode = iota
	opSub
	opMul
	opDiv
	opNeg
	opAbs
	opPow      // two-operand power a^b
	opPowConst // fixed real exponent
	opSqrt
	opExp
	opLog
	opSin
	opCos
	opTan
	opAsin
	opAcos
	opAtan
	opSinh
	opCosh
	opTanh
)

func (o opcode) String() string {
	names := [...]string{
		"add", "sub", "mul", "div", "neg", "abs", "pow", "pow",
		"sqrt", "exp", "log", "sin", "cos", "tan",
		"asin", "acos", "atan", "sinh", "cosh", "tanh",
	}
	if int(o) < len(names) {
		return names[o]
	}

	return "op?"
}

// Operation is an operator applied to operand nodes. The operand slice
// holds shared references — the same Component may appear under many
// parents (or twice under one). The nominal value is precomputed at
// construction and never changes.
type Operation struct {
	op      opcode
	args    []Component
	exp     float64 // exponent for opPowConst only
	nominal float64
}

// NumericKind reports numeric.KindUncertainReal.
func (*Operation) NumericKind() numeric.Kind { return numeric.KindUncertainReal }

// Nominal returns the eagerly computed operator result at the operands'
// nominal values.
func (op *Operation) Nominal() float64 { return op.nominal }

// Operands returns a copy of the operand list (the referenced nodes
// themselves are shared, per the graph model).
func (op *Operation) Operands() []Component {
	out := make([]Component, len(op.args))
	copy(out, op.args)

	return out
}

func (op *Operation) operands() []Component { return op.args }

func (op *Operation) String() string {
	return fmt.Sprintf("%s(nominal=%g)", op.op, op.nominal)
}

// partials returns the sensitivity coefficient of the operation with
// respect to each operand: the closed-form partial derivative evaluated
// at the operands' nominal values.
func (op *Operation) partials() []float64 {
	x := op.args[0].Nominal()

	switch op.op {
	case opAdd:
		return []float64{1, 1}
	case opSub:
		return []float64{1, -1}
	case opMul:
		return []float64{op.args[1].Nominal(), x}
	case opDiv:
		y := op.args[1].Nominal()
		return []float64{1 / y, -x / (y * y)}
	case opNeg:
		return []float64{-1}
	case opAbs:
		// d|x|/dx = sign(x); taken as 0 at the kink.
		switch {
		case x > 0:
			return []float64{1}
		case x < 0:
			return []float64{-1}
		default:
			return []float64{0}
		}
	case opPow:
		// d(x^y)/dx = y·x^(y−1); d(x^y)/dy = x^y·ln x
		y := op.args[1].Nominal()
		return []float64{y * math.Pow(x, y-1), op.nominal * math.Log(x)}
	case opPowConst:
		return []float64{op.exp * math.Pow(x, op.exp-1)}
	case opSqrt:
		return []float64{1 / (2 * math.Sqrt(x))}
	case opExp:
		return []float64{op.nominal}
	case opLog:
		return []float64{1 / x}
	case opSin:
		return []float64{math.Cos(x)}
	case opCos:
		return []float64{-math.Sin(x)}
	case opTan:
		c := math.Cos(x)
		return []float64{1 / (c * c)}
	case opAsin:
		return []float64{1 / math.Sqrt(1-x*x)}
	case opAcos:
		return []float64{-1 / math.Sqrt(1-x*x)}
	case opAtan:
		return []float64{1 / (1 + x*x)}
	case opSinh:
		return []float64{math.Cosh(x)}
	case opCosh:
		return []float64{math.Sinh(x)}
	case opTanh:
		c := math.Cosh(x)
		return []float64{1 / (c * c)}
	default:
		return nil
	}
}
