package quantity

import (
	"fmt"

	"github.com/qmetrika/uqm/cucomp"
	"github.com/qmetrika/uqm/numeric"
	"github.com/qmetrika/uqm/rational"
	"github.com/qmetrika/uqm/ucomp"
	"github.com/qmetrika/uqm/unit"
)

// Tower dispatch: the generic binary operations over any two tower
// members. Each call resolves the common kind via numeric.Promote,
// coerces both operands there, and runs the operation — per the
// documented coercion rules, never by guessing.

type towerOp uint8

const (
	towAdd towerOp = iota
	towSub
	towMul
	towDiv
)

func (op towerOp) String() string {
	return [...]string{"add", "sub", "mul", "div"}[op]
}

// Add returns a + b under the coercion tower.
func Add(a, b numeric.Value) (numeric.Value, error) { return binary(towAdd, a, b) }

// Sub returns a − b under the coercion tower.
func Sub(a, b numeric.Value) (numeric.Value, error) { return binary(towSub, a, b) }

// Mul returns a · b under the coercion tower.
func Mul(a, b numeric.Value) (numeric.Value, error) { return binary(towMul, a, b) }

// Div returns a / b under the coercion tower. Integer and rational
// division stay exact (two Ints divide into a Rational); real, complex
// and array division by zero fails with numeric.ErrDivisionByZero.
func Div(a, b numeric.Value) (numeric.Value, error) { return binary(towDiv, a, b) }

func binary(op towerOp, a, b numeric.Value) (numeric.Value, error) {
	common, ok := numeric.Promote(a.NumericKind(), b.NumericKind())
	if !ok {
		return nil, fmt.Errorf("%s(%v, %v): %w",
			op, a.NumericKind(), b.NumericKind(), numeric.ErrUnsupportedOperation)
	}

	switch common {
	case numeric.KindInt:
		return intOp(op, a.(numeric.Int), b.(numeric.Int))
	case numeric.KindRational:
		return rationalOp(op, toRational(a), toRational(b))
	case numeric.KindFloat:
		fa, _ := toFloat(a)
		fb, _ := toFloat(b)
		return floatOp(op, fa, fb)
	case numeric.KindComplex:
		ca, _ := toComplex(a)
		cb, _ := toComplex(b)
		return complexOp(op, ca, cb)
	case numeric.KindArray:
		return arrayOp(op, a, b)
	case numeric.KindUncertainReal:
		ua, _ := toUncertainReal(a)
		ub, _ := toUncertainReal(b)
		return uncertainRealOp(op, ua, ub)
	case numeric.KindUncertainComplex:
		ua, _ := toUncertainComplex(a)
		ub, _ := toUncertainComplex(b)
		return uncertainComplexOp(op, ua, ub)
	case numeric.KindQuantity:
		return quantityOp(op, a, b)
	default:
		return nil, fmt.Errorf("%s(%v, %v): %w",
			op, a.NumericKind(), b.NumericKind(), numeric.ErrUnsupportedOperation)
	}
}

func intOp(op towerOp, a, b numeric.Int) (numeric.Value, error) {
	switch op {
	case towAdd:
		return a + b, nil
	case towSub:
		return a - b, nil
	case towMul:
		return a * b, nil
	default:
		// Exact division: two integers divide into a reduced rational.
		r, err := rational.New(int64(a), int64(b))
		if err != nil {
			return nil, fmt.Errorf("%d/%d: %w", a, b, numeric.ErrDivisionByZero)
		}
		return r, nil
	}
}

func rationalOp(op towerOp, a, b rational.Rational) (numeric.Value, error) {
	switch op {
	case towAdd:
		return a.Add(b), nil
	case towSub:
		return a.Sub(b), nil
	case towMul:
		return a.Mul(b), nil
	default:
		r, err := a.Div(b)
		if err != nil {
			return nil, fmt.Errorf("%v/%v: %w", a, b, numeric.ErrDivisionByZero)
		}
		return r, nil
	}
}

func floatOp(op towerOp, a, b float64) (numeric.Value, error) {
	switch op {
	case towAdd:
		return numeric.Float(a + b), nil
	case towSub:
		return numeric.Float(a - b), nil
	case towMul:
		return numeric.Float(a * b), nil
	default:
		if b == 0 {
			return nil, fmt.Errorf("%g/0: %w", a, numeric.ErrDivisionByZero)
		}
		return numeric.Float(a / b), nil
	}
}

func complexOp(op towerOp, a, b complex128) (numeric.Value, error) {
	switch op {
	case towAdd:
		return numeric.Complex(a + b), nil
	case towSub:
		return numeric.Complex(a - b), nil
	case towMul:
		return numeric.Complex(a * b), nil
	default:
		if b == 0 {
			return nil, fmt.Errorf("%v/0: %w", a, numeric.ErrDivisionByZero)
		}
		return numeric.Complex(a / b), nil
	}
}

// arrayOp handles Array with Array, and Array with a broadcast scalar.
func arrayOp(op towerOp, a, b numeric.Value) (numeric.Value, error) {
	aa, aOK := a.(numeric.Array)
	bb, bOK := b.(numeric.Array)

	switch {
	case aOK && bOK:
		switch op {
		case towAdd:
			return aa.Add(bb)
		case towSub:
			return aa.Sub(bb)
		case towMul:
			return aa.Mul(bb)
		default:
			return aa.Div(bb)
		}

	case aOK:
		s, _ := toFloat(b)
		switch op {
		case towAdd:
			return aa.AddConst(s), nil
		case towSub:
			return aa.AddConst(-s), nil
		case towMul:
			return aa.Scale(s), nil
		default:
			if s == 0 {
				return nil, fmt.Errorf("array/0: %w", numeric.ErrDivisionByZero)
			}
			return aa.Scale(1 / s), nil
		}

	default:
		// scalar ⊕ array: broadcast the scalar to the array's length.
		s, _ := toFloat(a)
		return arrayOp(op, numeric.Repeat(s, bb.Len()), bb)
	}
}

func uncertainRealOp(op towerOp, a, b ucomp.Component) (numeric.Value, error) {
	switch op {
	case towAdd:
		return ucomp.Add(a, b), nil
	case towSub:
		return ucomp.Sub(a, b), nil
	case towMul:
		return ucomp.Mul(a, b), nil
	default:
		return ucomp.Div(a, b)
	}
}

func uncertainComplexOp(op towerOp, a, b cucomp.Component) (numeric.Value, error) {
	switch op {
	case towAdd:
		return cucomp.Add(a, b), nil
	case towSub:
		return cucomp.Sub(a, b), nil
	case towMul:
		return cucomp.Mul(a, b), nil
	default:
		return cucomp.Div(a, b)
	}
}

func quantityOp(op towerOp, a, b numeric.Value) (numeric.Value, error) {
	additive := op == towAdd || op == towSub

	qa := asQuantity(a, b, additive)
	qb := asQuantity(b, a, additive)

	switch op {
	case towAdd:
		return qa.Add(qb)
	case towSub:
		return qa.Sub(qb)
	case towMul:
		return qa.Mul(qb)
	default:
		return qa.Div(qb)
	}
}

// asQuantity wraps a bare tower member next to a Quantity operand. Under
// additive operations the bare value adopts the quantity's unit; under
// multiplicative ones it is dimensionless, so scaling never distorts the
// result's dimension vector.
func asQuantity(v, other numeric.Value, additive bool) Quantity {
	if q, ok := v.(Quantity); ok {
		return q
	}

	ref := other.(Quantity) // common kind Quantity ⇒ at least one side is
	if additive {
		return Quantity{u: ref.u, v: v}
	}

	return Quantity{u: unit.One, v: v}
}
