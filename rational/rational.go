package rational

import (
	"math/big"

	"github.com/qmetrika/uqm/numeric"
)

// Rational is an exact fraction num/den with den > 0 and gcd(num, den) = 1.
// The zero value represents 0. Rational is a value type; copy it freely.
type Rational struct {
	// num and den are never exposed; accessors return defensive copies.
	// nil num means 0, nil den means 1, so the zero value is valid.
	num *big.Int
	den *big.Int
}

// Zero is the rational 0/1.
var Zero = Rational{}

// One is the rational 1/1.
var One = FromInt(1)

// New builds the reduced fraction n/d.
// Returns ErrZeroDenominator when d == 0.
func New(n, d int64) (Rational, error) {
	return FromBig(big.NewInt(n), big.NewInt(d))
}

// MustNew is New for constant fractions known to be valid; it panics on a
// zero denominator. Reserve it for package-level constants.
func MustNew(n, d int64) Rational {
	r, err := New(n, d)
	if err != nil {
		panic(err)
	}

	return r
}

// FromInt builds the rational n/1.
func FromInt(n int64) Rational {
	return Rational{num: big.NewInt(n), den: big.NewInt(1)}
}

// FromBig builds the reduced fraction n/d from big integers.
// The inputs are copied, never retained.
// Returns ErrZeroDenominator when d == 0.
func FromBig(n, d *big.Int) (Rational, error) {
	if d.Sign() == 0 {
		return Rational{}, ErrZeroDenominator
	}

	num := new(big.Int).Set(n)
	den := new(big.Int).Set(d)

	// Keep the sign on the numerator.
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	// Reduce by the gcd; gcd(0, d) = d, so 0/d normalizes to 0/1.
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Sign() != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	return Rational{num: num, den: den}, nil
}

// NumericKind reports the coercion-tower kind of a Rational.
func (r Rational) NumericKind() numeric.Kind { return numeric.KindRational }

// numRef and denRef give nil-safe views of the backing integers.
// They must not be mutated; public accessors copy.
func (r Rational) numRef() *big.Int {
	if r.num == nil {
		return big.NewInt(0)
	}

	return r.num
}

func (r Rational) denRef() *big.Int {
	if r.den == nil {
		return big.NewInt(1)
	}

	return r.den
}

// Num returns a copy of the numerator.
func (r Rational) Num() *big.Int { return new(big.Int).Set(r.numRef()) }

// Den returns a copy of the denominator (always > 0).
func (r Rational) Den() *big.Int { return new(big.Int).Set(r.denRef()) }

// Add returns r + o.
func (r Rational) Add(o Rational) Rational {
	// a/b + c/d = (a·d + c·b) / (b·d)
	n := new(big.Int).Mul(r.numRef(), o.denRef())
	n.Add(n, new(big.Int).Mul(o.numRef(), r.denRef()))
	d := new(big.Int).Mul(r.denRef(), o.denRef())

	out, _ := FromBig(n, d) // d > 0 by invariant
	return out
}

// Sub returns r − o.
func (r Rational) Sub(o Rational) Rational { return r.Add(o.Neg()) }

// Mul returns r · o.
func (r Rational) Mul(o Rational) Rational {
	n := new(big.Int).Mul(r.numRef(), o.numRef())
	d := new(big.Int).Mul(r.denRef(), o.denRef())

	out, _ := FromBig(n, d)
	return out
}

// Div returns r / o.
// Returns ErrZeroDenominator when o is zero.
func (r Rational) Div(o Rational) (Rational, error) {
	inv, err := o.Inv()
	if err != nil {
		return Rational{}, err
	}

	return r.Mul(inv), nil
}

// Neg returns −r.
func (r Rational) Neg() Rational {
	out, _ := FromBig(new(big.Int).Neg(r.numRef()), r.denRef())
	return out
}

// Abs returns |r|.
func (r Rational) Abs() Rational {
	out, _ := FromBig(new(big.Int).Abs(r.numRef()), r.denRef())
	return out
}

// Inv returns 1/r.
// Returns ErrZeroDenominator when r is zero.
func (r Rational) Inv() (Rational, error) {
	return FromBig(r.denRef(), r.numRef())
}

// Pow returns r raised to the integer power k. Negative k inverts first,
// so Pow(−k) of zero returns ErrZeroDenominator.
func (r Rational) Pow(k int) (Rational, error) {
	base := r
	if k < 0 {
		inv, err := r.Inv()
		if err != nil {
			return Rational{}, err
		}
		base, k = inv, -k
	}

	n := new(big.Int).Exp(base.numRef(), big.NewInt(int64(k)), nil)
	d := new(big.Int).Exp(base.denRef(), big.NewInt(int64(k)), nil)

	return FromBig(n, d)
}

// Cmp compares r and o, returning −1, 0 or +1.
func (r Rational) Cmp(o Rational) int {
	// a/b ? c/d  ⇔  a·d ? c·b  (b, d > 0)
	left := new(big.Int).Mul(r.numRef(), o.denRef())
	right := new(big.Int).Mul(o.numRef(), r.denRef())

	return left.Cmp(right)
}

// Equal reports exact equality. Reduced form makes this a structural check.
func (r Rational) Equal(o Rational) bool {
	return r.numRef().Cmp(o.numRef()) == 0 && r.denRef().Cmp(o.denRef()) == 0
}

// Sign returns −1, 0 or +1 as r is negative, zero or positive.
func (r Rational) Sign() int { return r.numRef().Sign() }

// IsZero reports whether r == 0.
func (r Rational) IsZero() bool { return r.Sign() == 0 }

// IsInt reports whether r is a whole number.
func (r Rational) IsInt() bool { return r.denRef().Cmp(big.NewInt(1)) == 0 }

// Float64 returns the nearest float64 to r.
func (r Rational) Float64() float64 {
	f, _ := new(big.Rat).SetFrac(r.numRef(), r.denRef()).Float64()
	return f
}

// String renders "n/d", or just "n" for whole numbers.
func (r Rational) String() string {
	if r.IsInt() {
		return r.numRef().String()
	}

	return r.numRef().String() + "/" + r.denRef().String()
}
