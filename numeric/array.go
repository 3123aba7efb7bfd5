package numeric

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Array is the tower's element-wise real vector member. Arrays are
// immutable through this API: every operation allocates its result and
// NewArray copies its input.
type Array struct {
	data []float64
}

// NewArray copies xs into a fresh Array.
func NewArray(xs []float64) Array {
	data := make([]float64, len(xs))
	copy(data, xs)

	return Array{data: data}
}

// Repeat builds an Array of n copies of v.
func Repeat(v float64, n int) Array {
	data := make([]float64, n)
	for i := range data {
		data[i] = v
	}

	return Array{data: data}
}

// NumericKind reports KindArray.
func (Array) NumericKind() Kind { return KindArray }

// Len returns the element count.
func (a Array) Len() int { return len(a.data) }

// At returns element i; it panics on out-of-range i like a slice index.
func (a Array) At(i int) float64 { return a.data[i] }

// Elements returns a copy of the backing slice.
func (a Array) Elements() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

func (a Array) clone() []float64 {
	out := make([]float64, len(a.data))
	copy(out, a.data)

	return out
}

func (a Array) sameLen(b Array) error {
	if len(a.data) != len(b.data) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(a.data), len(b.data))
	}

	return nil
}

// Add returns the element-wise sum a + b.
// Returns ErrLengthMismatch when lengths differ.
func (a Array) Add(b Array) (Array, error) {
	if err := a.sameLen(b); err != nil {
		return Array{}, err
	}

	out := a.clone()
	floats.Add(out, b.data)

	return Array{data: out}, nil
}

// Sub returns the element-wise difference a − b.
func (a Array) Sub(b Array) (Array, error) {
	if err := a.sameLen(b); err != nil {
		return Array{}, err
	}

	out := a.clone()
	floats.Sub(out, b.data)

	return Array{data: out}, nil
}

// Mul returns the element-wise (Hadamard) product a · b.
func (a Array) Mul(b Array) (Array, error) {
	if err := a.sameLen(b); err != nil {
		return Array{}, err
	}

	out := a.clone()
	floats.Mul(out, b.data)

	return Array{data: out}, nil
}

// Div returns the element-wise ratio a / b.
// Returns ErrDivisionByZero when any element of b is zero.
func (a Array) Div(b Array) (Array, error) {
	if err := a.sameLen(b); err != nil {
		return Array{}, err
	}
	for i, v := range b.data {
		if v == 0 {
			return Array{}, fmt.Errorf("%w: element %d", ErrDivisionByZero, i)
		}
	}

	out := a.clone()
	floats.Div(out, b.data)

	return Array{data: out}, nil
}

// AddConst returns a with c added to every element.
func (a Array) AddConst(c float64) Array {
	out := a.clone()
	floats.AddConst(c, out)

	return Array{data: out}
}

// Scale returns a with every element multiplied by c.
func (a Array) Scale(c float64) Array {
	out := a.clone()
	floats.Scale(c, out)

	return Array{data: out}
}

// Pow returns a with every element raised to p.
func (a Array) Pow(p float64) Array {
	out := a.clone()
	for i, v := range out {
		out[i] = math.Pow(v, p)
	}

	return Array{data: out}
}

// Map returns a with f applied to every element.
func (a Array) Map(f func(float64) float64) Array {
	out := a.clone()
	for i, v := range out {
		out[i] = f(v)
	}

	return Array{data: out}
}

// EqualWithin reports element-wise equality within absolute tolerance tol.
// Arrays of different lengths are never equal.
func (a Array) EqualWithin(b Array, tol float64) bool {
	if len(a.data) != len(b.data) {
		return false
	}

	return floats.EqualApprox(a.data, b.data, tol)
}

// String renders "[x1 x2 …]".
func (a Array) String() string {
	parts := make([]string, len(a.data))
	for i, v := range a.data {
		parts[i] = fmt.Sprintf("%g", v)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
