package unit

import "math"

// Converter is an invertible affine transform y = scale·x + offset between
// a unit and another unit of the same dimension. Converters are value
// types and compose associatively via Then. A Converter with scale 1 and
// offset 0 is the identity.
type Converter struct {
	scale  float64
	offset float64
}

// Identity returns the identity converter (scale 1, offset 0).
func Identity() Converter { return Converter{scale: 1} }

// Linear builds the pure scaling converter y = scale·x.
// Returns ErrZeroScale when scale is zero or non-finite.
func Linear(scale float64) (Converter, error) {
	return Affine(scale, 0)
}

// Affine builds the converter y = scale·x + offset.
// Returns ErrZeroScale when scale is zero or non-finite.
func Affine(scale, offset float64) (Converter, error) {
	if scale == 0 || math.IsInf(scale, 0) || math.IsNaN(scale) {
		return Converter{}, ErrZeroScale
	}

	return Converter{scale: scale, offset: offset}, nil
}

// Convert applies the transform to x.
func (c Converter) Convert(x float64) float64 { return c.scale*x + c.offset }

// Scale returns the multiplicative factor.
func (c Converter) Scale() float64 { return c.scale }

// Offset returns the additive shift.
func (c Converter) Offset() float64 { return c.offset }

// Inverse returns the converter mapping results back to inputs:
// x = (y − offset) / scale.
func (c Converter) Inverse() Converter {
	return Converter{scale: 1 / c.scale, offset: -c.offset / c.scale}
}

// Then returns the composition "apply c, then next":
//
//	(c.Then(n)).Convert(x) == n.Convert(c.Convert(x))
//
// Composition of affine transforms is affine, so the result stays exact
// in its two coefficients.
func (c Converter) Then(next Converter) Converter {
	return Converter{
		scale:  next.scale * c.scale,
		offset: next.scale*c.offset + next.offset,
	}
}

// IsIdentity reports whether c maps every value to itself.
func (c Converter) IsIdentity() bool { return c.scale == 1 && c.offset == 0 }

// IsLinear reports whether c has no additive shift. Only linear
// converters may take part in unit products and powers.
func (c Converter) IsLinear() bool { return c.offset == 0 }
