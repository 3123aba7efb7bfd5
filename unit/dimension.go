package unit

import (
	"strings"

	"github.com/qmetrika/uqm/rational"
)

// BaseDimension identifies one of the seven fundamental physical
// dimensions.
type BaseDimension int

const (
	// Length (symbol L).
	Length BaseDimension = iota
	// Mass (symbol M).
	Mass
	// Time (symbol T).
	Time
	// Current is electric current (symbol I).
	Current
	// Temperature is thermodynamic temperature (symbol Θ).
	Temperature
	// Amount is amount of substance (symbol N).
	Amount
	// LuminousIntensity (symbol J).
	LuminousIntensity

	nBaseDimensions
)

// String returns the conventional dimension symbol.
func (b BaseDimension) String() string {
	switch b {
	case Length:
		return "L"
	case Mass:
		return "M"
	case Time:
		return "T"
	case Current:
		return "I"
	case Temperature:
		return "Θ"
	case Amount:
		return "N"
	case LuminousIntensity:
		return "J"
	default:
		return "?"
	}
}

// Dimension is an immutable vector of rational exponents over the base
// physical dimensions. The zero value is the dimensionless vector.
// Dimensions only change through Mul/Div/Pow, which return new vectors.
type Dimension struct {
	exps [nBaseDimensions]rational.Rational
}

// Dimensionless is the all-zero dimension vector.
var Dimensionless = Dimension{}

// DimensionOf returns the vector with exponent 1 on b and 0 elsewhere.
func DimensionOf(b BaseDimension) Dimension {
	var d Dimension
	d.exps[b] = rational.One

	return d
}

// Exponent returns the exponent of base dimension b.
func (d Dimension) Exponent(b BaseDimension) rational.Rational { return d.exps[b] }

// Mul returns the exponent-wise sum d + o (dimension of a product).
func (d Dimension) Mul(o Dimension) Dimension {
	var out Dimension
	for i := range d.exps {
		out.exps[i] = d.exps[i].Add(o.exps[i])
	}

	return out
}

// Div returns the exponent-wise difference d − o (dimension of a ratio).
func (d Dimension) Div(o Dimension) Dimension {
	var out Dimension
	for i := range d.exps {
		out.exps[i] = d.exps[i].Sub(o.exps[i])
	}

	return out
}

// Pow returns the exponent-wise scaling d · r (dimension of a power).
func (d Dimension) Pow(r rational.Rational) Dimension {
	var out Dimension
	for i := range d.exps {
		out.exps[i] = d.exps[i].Mul(r)
	}

	return out
}

// Equal reports exact vector equality.
func (d Dimension) Equal(o Dimension) bool {
	for i := range d.exps {
		if !d.exps[i].Equal(o.exps[i]) {
			return false
		}
	}

	return true
}

// IsNone reports whether d is dimensionless (all exponents zero).
func (d Dimension) IsNone() bool { return d.Equal(Dimensionless) }

// String renders the symbolic form, e.g. "L·T^-2"; dimensionless is "1".
func (d Dimension) String() string {
	var parts []string
	for i := BaseDimension(0); i < nBaseDimensions; i++ {
		e := d.exps[i]
		switch {
		case e.IsZero():
			continue
		case e.Equal(rational.One):
			parts = append(parts, i.String())
		default:
			parts = append(parts, i.String()+"^"+e.String())
		}
	}
	if len(parts) == 0 {
		return "1"
	}

	return strings.Join(parts, "·")
}
