package quantity

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/qmetrika/uqm/cucomp"
	"github.com/qmetrika/uqm/numeric"
	"github.com/qmetrika/uqm/rational"
	"github.com/qmetrika/uqm/ucomp"
	"github.com/qmetrika/uqm/unit"
)

// Per-kind value kernels used by both the Quantity methods and the tower
// dispatch: coercions, unit conversion of payloads, powers, and the
// elementary functions.

func toFloat(v numeric.Value) (float64, bool) {
	switch x := v.(type) {
	case numeric.Int:
		return float64(x), true
	case numeric.Float:
		return float64(x), true
	case rational.Rational:
		return x.Float64(), true
	default:
		return 0, false
	}
}

func toComplex(v numeric.Value) (complex128, bool) {
	if c, ok := v.(numeric.Complex); ok {
		return complex128(c), true
	}
	if f, ok := toFloat(v); ok {
		return complex(f, 0), true
	}

	return 0, false
}

func toRational(v numeric.Value) rational.Rational {
	switch x := v.(type) {
	case rational.Rational:
		return x
	case numeric.Int:
		return rational.FromInt(int64(x))
	default:
		return rational.Zero
	}
}

func toUncertainReal(v numeric.Value) (ucomp.Component, bool) {
	if c, ok := v.(ucomp.Component); ok {
		return c, true
	}
	if f, ok := toFloat(v); ok {
		return ucomp.Const(f), true
	}

	return nil, false
}

func toUncertainComplex(v numeric.Value) (cucomp.Component, bool) {
	if c, ok := v.(cucomp.Component); ok {
		return c, true
	}
	if z, ok := toComplex(v); ok {
		return cucomp.Const(z), true
	}

	return nil, false
}

// convertValue applies a unit converter to a payload. Exact kinds become
// floats under a non-identity conversion; uncertain payloads are rescaled
// through the graph itself (multiply then shift by exact nodes), so the
// conversion takes part in propagation like any other operation.
func convertValue(v numeric.Value, conv unit.Converter) (numeric.Value, error) {
	if conv.IsIdentity() {
		return v, nil
	}

	switch x := v.(type) {
	case numeric.Int:
		return numeric.Float(conv.Convert(float64(x))), nil
	case rational.Rational:
		return numeric.Float(conv.Convert(x.Float64())), nil
	case numeric.Float:
		return numeric.Float(conv.Convert(float64(x))), nil
	case numeric.Complex:
		z := complex128(x)
		return numeric.Complex(complex(conv.Scale(), 0)*z + complex(conv.Offset(), 0)), nil
	case numeric.Array:
		out := x.Scale(conv.Scale())
		if conv.Offset() != 0 {
			out = out.AddConst(conv.Offset())
		}
		return out, nil
	case ucomp.Component:
		node := x
		if conv.Scale() != 1 {
			node = ucomp.Mul(node, ucomp.Const(conv.Scale()))
		}
		if conv.Offset() != 0 {
			node = ucomp.Add(node, ucomp.Const(conv.Offset()))
		}
		return node, nil
	case cucomp.Component:
		node := x
		if conv.Scale() != 1 {
			node = cucomp.Mul(node, cucomp.Const(complex(conv.Scale(), 0)))
		}
		if conv.Offset() != 0 {
			node = cucomp.Add(node, cucomp.Const(complex(conv.Offset(), 0)))
		}
		return node, nil
	default:
		return nil, fmt.Errorf("convert %v: %w", v.NumericKind(), numeric.ErrUnsupportedOperation)
	}
}

// powValue raises a payload to a rational power. Rational payloads with a
// whole exponent stay exact; everything else goes through float, complex
// or graph powers.
func powValue(v numeric.Value, r rational.Rational) (numeric.Value, error) {
	if x, ok := v.(rational.Rational); ok && r.IsInt() {
		return x.Pow(int(r.Num().Int64()))
	}

	p := r.Float64()
	switch x := v.(type) {
	case numeric.Int:
		return numeric.Float(math.Pow(float64(x), p)), nil
	case rational.Rational:
		return numeric.Float(math.Pow(x.Float64(), p)), nil
	case numeric.Float:
		return numeric.Float(math.Pow(float64(x), p)), nil
	case numeric.Complex:
		return numeric.Complex(cmplx.Pow(complex128(x), complex(p, 0))), nil
	case numeric.Array:
		return x.Pow(p), nil
	case ucomp.Component:
		return ucomp.PowConst(x, p), nil
	case cucomp.Component:
		return cucomp.PowConst(x, p), nil
	default:
		return nil, fmt.Errorf("pow %v: %w", v.NumericKind(), numeric.ErrUnsupportedOperation)
	}
}

func sqrtValue(v numeric.Value) (numeric.Value, error) {
	switch x := v.(type) {
	case numeric.Int:
		return numeric.Float(math.Sqrt(float64(x))), nil
	case rational.Rational:
		return numeric.Float(math.Sqrt(x.Float64())), nil
	case numeric.Float:
		return numeric.Float(math.Sqrt(float64(x))), nil
	case numeric.Complex:
		return numeric.Complex(cmplx.Sqrt(complex128(x))), nil
	case numeric.Array:
		return x.Map(math.Sqrt), nil
	case ucomp.Component:
		return ucomp.Sqrt(x)
	case cucomp.Component:
		return cucomp.Sqrt(x)
	default:
		return nil, fmt.Errorf("sqrt %v: %w", v.NumericKind(), numeric.ErrUnsupportedOperation)
	}
}

// elementaryFn tags the transcendental functions Quantity exposes.
type elementaryFn uint8

const (
	fnSin elementaryFn = iota
	fnCos
	fnTan
	fnExp
	fnLog
)

func (f elementaryFn) String() string {
	return [...]string{"sin", "cos", "tan", "exp", "log"}[f]
}

func (f elementaryFn) real() func(float64) float64 {
	return [...]func(float64) float64{math.Sin, math.Cos, math.Tan, math.Exp, math.Log}[f]
}

func (f elementaryFn) complex() func(complex128) complex128 {
	return [...]func(complex128) complex128{cmplx.Sin, cmplx.Cos, cmplx.Tan, cmplx.Exp, cmplx.Log}[f]
}

func elementaryValue(f elementaryFn, v numeric.Value) (numeric.Value, error) {
	switch x := v.(type) {
	case numeric.Array:
		return x.Map(f.real()), nil
	case numeric.Complex:
		return numeric.Complex(f.complex()(complex128(x))), nil
	case ucomp.Component:
		switch f {
		case fnSin:
			return ucomp.Sin(x), nil
		case fnCos:
			return ucomp.Cos(x), nil
		case fnTan:
			return ucomp.Tan(x), nil
		case fnExp:
			return ucomp.Exp(x), nil
		default:
			return ucomp.Log(x)
		}
	case cucomp.Component:
		switch f {
		case fnExp:
			return cucomp.Exp(x), nil
		case fnLog:
			return cucomp.Log(x)
		default:
			return nil, fmt.Errorf("%s %v: %w", f, v.NumericKind(), numeric.ErrUnsupportedOperation)
		}
	default:
		if fv, ok := toFloat(v); ok {
			return numeric.Float(f.real()(fv)), nil
		}
		return nil, fmt.Errorf("%s %v: %w", f, v.NumericKind(), numeric.ErrUnsupportedOperation)
	}
}

// valuesEqual compares two payloads already expressed in a common unit.
// Exact kinds compare exactly, real/complex kinds within tol, arrays
// element-wise; uncertain payloads compare by node identity (two graphs
// are the same value only when they are the same node).
func valuesEqual(a, b numeric.Value, tol float64) bool {
	if ra, ok := a.(rational.Rational); ok {
		if rb, ok := b.(rational.Rational); ok {
			return ra.Equal(rb)
		}
	}
	if aa, ok := a.(numeric.Array); ok {
		bb, ok := b.(numeric.Array)
		return ok && aa.EqualWithin(bb, tol)
	}
	if ca, ok := toComplex(a); ok {
		if cb, ok := toComplex(b); ok {
			return cmplx.Abs(ca-cb) <= tol
		}
		return false
	}

	// Graph nodes: identity equality.
	return a == b
}
