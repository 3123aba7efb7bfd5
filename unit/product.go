package unit

import (
	"math"
	"sort"
	"strings"

	"github.com/qmetrika/uqm/numeric"
	"github.com/qmetrika/uqm/rational"
)

// Product is a composition of elementary units raised to rational powers,
// e.g. kg·m·s⁻² or m^(1/2). Products are kept normalized: nested products
// are flattened, exponents of the same unit are summed, zero exponents
// are dropped, and a singleton power-1 product collapses to its unit (so
// a *Product always has either no terms — the dimensionless One — or a
// genuinely composite shape).
type Product struct {
	ts []Term // sorted by symbol for deterministic rendering and equality
}

// One is the dimensionless unit: the empty product.
var One Unit = &Product{}

// NumericKind reports numeric.KindUnit.
func (*Product) NumericKind() numeric.Kind { return numeric.KindUnit }

// Symbol returns ""; product units are anonymous (name one with
// NewAlternate if a symbol is wanted).
func (u *Product) Symbol() string { return "" }

// Dimension sums the term dimensions scaled by their exponents.
func (u *Product) Dimension() Dimension {
	d := Dimensionless
	for _, t := range u.ts {
		d = d.Mul(t.Unit.Dimension().Pow(t.Exp))
	}

	return d
}

// ToCoherent multiplies the term converters' scales raised to the term
// exponents. Every term is linear by construction (affine units are
// rejected from products), so the result is a pure scaling.
func (u *Product) ToCoherent() Converter {
	scale := 1.0
	for _, t := range u.ts {
		scale *= math.Pow(t.Unit.ToCoherent().Scale(), t.Exp.Float64())
	}

	c, _ := Linear(scale) // scale is a product of non-zero finite scales
	return c
}

// Terms returns a copy of the normalized term list.
func (u *Product) Terms() []Term {
	out := make([]Term, len(u.ts))
	copy(out, u.ts)

	return out
}

func (u *Product) String() string {
	if len(u.ts) == 0 {
		return "1"
	}

	parts := make([]string, len(u.ts))
	for i, t := range u.ts {
		if t.Exp.Equal(rational.One) {
			parts[i] = t.Unit.String()
		} else {
			parts[i] = t.Unit.String() + "^" + t.Exp.String()
		}
	}

	return strings.Join(parts, "·")
}

func (u *Product) elemTerms() []Term { return u.ts }

func (u *Product) baseTerms() []Term {
	var expanded []Term
	for _, t := range u.ts {
		for _, bt := range t.Unit.baseTerms() {
			expanded = append(expanded, Term{Unit: bt.Unit, Exp: bt.Exp.Mul(t.Exp)})
		}
	}

	return mergeTerms(expanded)
}

// mergeTerms sums exponents per unit, drops zero exponents, and sorts the
// result by symbol (then dimension) for deterministic order.
func mergeTerms(terms []Term) []Term {
	acc := make(map[Unit]rational.Rational, len(terms))
	for _, t := range terms {
		acc[t.Unit] = acc[t.Unit].Add(t.Exp)
	}

	out := make([]Term, 0, len(acc))
	for u, e := range acc {
		if e.IsZero() {
			continue
		}
		out = append(out, Term{Unit: u, Exp: e})
	}

	sort.Slice(out, func(i, j int) bool {
		si, sj := out[i].Unit.Symbol(), out[j].Unit.Symbol()
		if si != sj {
			return si < sj
		}

		return out[i].Unit.Dimension().String() < out[j].Unit.Dimension().String()
	})

	return out
}

// fromTerms normalizes a term list into a Unit: products are flattened,
// affine units rejected, exponents merged, and degenerate shapes
// collapsed (no terms → One, single power-1 term → that unit).
func fromTerms(terms []Term) (Unit, error) {
	var flat []Term
	for _, t := range terms {
		for _, et := range t.Unit.elemTerms() {
			if !et.Unit.ToCoherent().IsLinear() {
				return nil, ErrAffineComposition
			}
			flat = append(flat, Term{Unit: et.Unit, Exp: et.Exp.Mul(t.Exp)})
		}
	}

	merged := mergeTerms(flat)
	switch {
	case len(merged) == 0:
		return One, nil
	case len(merged) == 1 && merged[0].Exp.Equal(rational.One):
		return merged[0].Unit, nil
	default:
		return &Product{ts: merged}, nil
	}
}

// NewProduct composes a unit from a mapping of unit → rational exponent.
// Returns ErrAffineComposition when any constituent carries an offset.
func NewProduct(factors map[Unit]rational.Rational) (Unit, error) {
	terms := make([]Term, 0, len(factors))
	for u, e := range factors {
		terms = append(terms, Term{Unit: u, Exp: e})
	}

	return fromTerms(terms)
}

// Mul returns the product unit a·b; dimensions add exponent-wise.
func Mul(a, b Unit) (Unit, error) {
	return fromTerms([]Term{
		{Unit: a, Exp: rational.One},
		{Unit: b, Exp: rational.One},
	})
}

// Div returns the ratio unit a/b; dimensions subtract exponent-wise.
func Div(a, b Unit) (Unit, error) {
	return fromTerms([]Term{
		{Unit: a, Exp: rational.One},
		{Unit: b, Exp: rational.MustNew(-1, 1)},
	})
}

// Pow raises u to the rational power r; the dimension vector scales by r.
func Pow(u Unit, r rational.Rational) (Unit, error) {
	if r.IsZero() {
		return One, nil
	}

	return fromTerms([]Term{{Unit: u, Exp: r}})
}

// Sqrt returns u^(1/2).
func Sqrt(u Unit) (Unit, error) { return Pow(u, rational.MustNew(1, 2)) }

// Root returns u^(1/n).
// Returns rational.ErrZeroDenominator when n == 0.
func Root(u Unit, n int) (Unit, error) {
	r, err := rational.New(1, int64(n))
	if err != nil {
		return nil, err
	}

	return Pow(u, r)
}

// Coherent returns the base-unit decomposition of u (the coherent SI
// representation of its dimension).
func Coherent(u Unit) Unit {
	c, err := fromTerms(u.baseTerms())
	if err != nil {
		// base units are always linear; unreachable
		return One
	}

	return c
}

// Compatible reports whether a and b share a Dimension vector and can
// therefore be converted into one another.
func Compatible(a, b Unit) bool { return a.Dimension().Equal(b.Dimension()) }

// OperatorTo returns the converter from values in `from` to values in
// `to`, composed as (from → coherent) then (coherent → to). Converting a
// unit to itself yields the identity converter.
// Returns ErrIncompatibleDimensions when the Dimension vectors differ.
func OperatorTo(from, to Unit) (Converter, error) {
	if !Compatible(from, to) {
		return Converter{}, ErrIncompatibleDimensions
	}
	if Equal(from, to) {
		return Identity(), nil
	}

	return from.ToCoherent().Then(to.ToCoherent().Inverse()), nil
}

// Equal reports unit equality. Named units (base, alternate) compare by
// identity — two separately constructed "m" units are distinct — while
// product units compare structurally over their normalized terms, so
// sqrt(METER) built at two call sites is equal.
func Equal(a, b Unit) bool {
	if a == b {
		return true
	}

	pa, okA := a.(*Product)
	pb, okB := b.(*Product)
	if !okA || !okB {
		return false
	}
	if len(pa.ts) != len(pb.ts) {
		return false
	}
	for i := range pa.ts {
		// Terms are sorted; compare pairwise by unit identity + exponent.
		if pa.ts[i].Unit != pb.ts[i].Unit || !pa.ts[i].Exp.Equal(pb.ts[i].Exp) {
			return false
		}
	}

	return true
}
