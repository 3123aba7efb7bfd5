package unit

import (
	"github.com/qmetrika/uqm/numeric"
	"github.com/qmetrika/uqm/rational"
)

// Unit is a physical unit: a symbolic handle on a Dimension together with
// a converter into the coherent (base-SI) representation of that
// dimension. The three variants are Base, Alternate and Product; all are
// immutable once constructed.
//
// Unit implements numeric.Value so the coercion tower can recognize (and
// reject) bare units in value arithmetic.
type Unit interface {
	numeric.Value

	// Symbol returns the unit's symbol; anonymous product units return "".
	Symbol() string

	// Dimension returns the unit's dimension vector.
	Dimension() Dimension

	// ToCoherent returns the converter from this unit into the coherent
	// base-SI representation of its dimension.
	ToCoherent() Converter

	// String renders the unit symbolically (e.g. "mV", "kg·m·s^-2").
	String() string

	// elemTerms returns the decomposition into elementary (base or
	// alternate) units; it seals the interface to this package.
	elemTerms() []Term

	// baseTerms returns the decomposition into base units only.
	baseTerms() []Term
}

// Term is one factor of a product unit: a unit raised to a rational power.
type Term struct {
	Unit Unit
	Exp  rational.Rational
}

// Base is the canonical unit of one base dimension. There is exactly one
// Base per dimension in a catalogue; identity, not symbol, distinguishes
// units, so construct base units once at startup (see package si).
type Base struct {
	symbol string
	dim    Dimension
}

// NewBase builds the canonical unit for base dimension b.
func NewBase(symbol string, b BaseDimension) *Base {
	return &Base{symbol: symbol, dim: DimensionOf(b)}
}

// NumericKind reports numeric.KindUnit.
func (*Base) NumericKind() numeric.Kind { return numeric.KindUnit }

// Symbol returns the unit symbol.
func (u *Base) Symbol() string { return u.symbol }

// Dimension returns the single-exponent dimension vector.
func (u *Base) Dimension() Dimension { return u.dim }

// ToCoherent returns the identity: base units are coherent by definition.
func (u *Base) ToCoherent() Converter { return Identity() }

func (u *Base) String() string { return u.symbol }

func (u *Base) elemTerms() []Term { return []Term{{Unit: u, Exp: rational.One}} }
func (u *Base) baseTerms() []Term { return []Term{{Unit: u, Exp: rational.One}} }

// Alternate is a named unit defined as a converter applied to an existing
// unit: millivolt is Linear(1/1000) applied to volt, Celsius is
// Affine(1, 273.15) applied to kelvin. The converter maps a value in this
// unit to a value in the parent unit.
type Alternate struct {
	symbol string
	parent Unit
	conv   Converter
}

// NewAlternate builds a named unit over parent with the given converter
// (alternate → parent direction).
// Returns ErrZeroScale when conv is not invertible (zero-value Converter
// included).
func NewAlternate(symbol string, parent Unit, conv Converter) (*Alternate, error) {
	if conv.Scale() == 0 {
		return nil, ErrZeroScale
	}

	return &Alternate{symbol: symbol, parent: parent, conv: conv}, nil
}

// NumericKind reports numeric.KindUnit.
func (*Alternate) NumericKind() numeric.Kind { return numeric.KindUnit }

// Symbol returns the unit symbol.
func (u *Alternate) Symbol() string { return u.symbol }

// Dimension returns the parent's dimension: renaming and rescaling never
// change physical kind.
func (u *Alternate) Dimension() Dimension { return u.parent.Dimension() }

// ToCoherent composes alternate→parent with parent→coherent.
func (u *Alternate) ToCoherent() Converter { return u.conv.Then(u.parent.ToCoherent()) }

// Parent returns the unit this alternate is defined over.
func (u *Alternate) Parent() Unit { return u.parent }

func (u *Alternate) String() string { return u.symbol }

func (u *Alternate) elemTerms() []Term { return []Term{{Unit: u, Exp: rational.One}} }
func (u *Alternate) baseTerms() []Term { return u.parent.baseTerms() }
