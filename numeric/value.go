package numeric

import "strconv"

// Int is the tower's 64-bit integer member.
type Int int64

// Float is the tower's float64 member.
type Float float64

// Complex is the tower's complex128 member.
type Complex complex128

// NumericKind reports KindInt.
func (Int) NumericKind() Kind { return KindInt }

// NumericKind reports KindFloat.
func (Float) NumericKind() Kind { return KindFloat }

// NumericKind reports KindComplex.
func (Complex) NumericKind() Kind { return KindComplex }

func (v Int) String() string   { return strconv.FormatInt(int64(v), 10) }
func (v Float) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }

func (v Complex) String() string {
	return strconv.FormatComplex(complex128(v), 'g', -1, 128)
}
