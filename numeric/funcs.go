package numeric

import (
	"fmt"
	"math"
)

// floater is satisfied by tower members that expose a float64 view
// (rational.Rational among them) without this package importing them.
type floater interface {
	Float64() float64
}

// asFloat extracts a scalar float64 from v when v is a real scalar kind.
func asFloat(v Value) (float64, bool) {
	switch x := v.(type) {
	case Int:
		return float64(x), true
	case Float:
		return float64(x), true
	}
	if f, ok := v.(floater); ok {
		return f.Float64(), true
	}

	return 0, false
}

// Atan2 applies the two-argument arctangent element-wise.
//
// Unlike tower operations, Atan2 does not consult the promotion table:
// the result kind is taken from the FIRST argument only. Atan2(array,
// scalar) broadcasts the scalar and yields an array, while Atan2(scalar,
// array) is unsupported. This asymmetry matches the behavior of external
// element-wise numeric libraries and is intentional.
func Atan2(y, x Value) (Value, error) {
	return firstArgElementwise("Atan2", math.Atan2, y, x)
}

// Hypot applies sqrt(p²+q²) element-wise, under the same first-argument
// result-kind rule as Atan2.
func Hypot(p, q Value) (Value, error) {
	return firstArgElementwise("Hypot", math.Hypot, p, q)
}

func firstArgElementwise(name string, f func(a, b float64) float64, first, second Value) (Value, error) {
	switch a := first.(type) {
	case Array:
		if b, ok := second.(Array); ok {
			if err := a.sameLen(b); err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			out := a.clone()
			for i := range out {
				out[i] = f(out[i], b.data[i])
			}

			return Array{data: out}, nil
		}
		if s, ok := asFloat(second); ok {
			out := a.clone()
			for i := range out {
				out[i] = f(out[i], s)
			}

			return Array{data: out}, nil
		}

	default:
		av, ok1 := asFloat(first)
		bv, ok2 := asFloat(second)
		if ok1 && ok2 {
			return Float(f(av, bv)), nil
		}
	}

	return nil, fmt.Errorf("%s(%v, %v): %w",
		name, first.NumericKind(), second.NumericKind(), ErrUnsupportedOperation)
}
