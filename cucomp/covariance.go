// SPDX-License-Identifier: MIT
// Package: cucomp

package cucomp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Covariance is a 2×2 real positive-semidefinite matrix over the (real
// part, imaginary part) of one complex value:
//
//	⎡ VarReal  Cov     ⎤
//	⎣ Cov      VarImag ⎦
//
// It is a value type and immutable; constructors validate semidefiniteness.
type Covariance struct {
	vrr float64 // variance of the real part
	vii float64 // variance of the imaginary part
	vri float64 // covariance between the parts
}

// NewCovariance builds a covariance matrix from the two variances and
// their covariance.
// Returns ErrIndefiniteCovariance unless varReal ≥ 0, varImag ≥ 0 and
// varReal·varImag ≥ cov² (the 2×2 PSD conditions).
func NewCovariance(varReal, varImag, cov float64) (Covariance, error) {
	if math.IsNaN(varReal) || math.IsNaN(varImag) || math.IsNaN(cov) ||
		varReal < 0 || varImag < 0 || varReal*varImag < cov*cov {
		return Covariance{}, fmt.Errorf("%w: [[%g %g] [%g %g]]",
			ErrIndefiniteCovariance, varReal, cov, cov, varImag)
	}

	return Covariance{vrr: varReal, vii: varImag, vri: cov}, nil
}

// Uncorrelated builds a diagonal covariance from standard uncertainties
// of the real and imaginary parts.
// Returns ErrNegativeUncertainty when either is negative or NaN.
func Uncorrelated(uReal, uImag float64) (Covariance, error) {
	if uReal < 0 || uImag < 0 || math.IsNaN(uReal) || math.IsNaN(uImag) {
		return Covariance{}, fmt.Errorf("%w: (%g, %g)", ErrNegativeUncertainty, uReal, uImag)
	}

	return Covariance{vrr: uReal * uReal, vii: uImag * uImag}, nil
}

// VarReal returns the variance of the real part.
func (c Covariance) VarReal() float64 { return c.vrr }

// VarImag returns the variance of the imaginary part.
func (c Covariance) VarImag() float64 { return c.vii }

// Cov returns the covariance between real and imaginary parts.
func (c Covariance) Cov() float64 { return c.vri }

// StdReal returns the standard uncertainty of the real part.
func (c Covariance) StdReal() float64 { return math.Sqrt(c.vrr) }

// StdImag returns the standard uncertainty of the imaginary part.
func (c Covariance) StdImag() float64 { return math.Sqrt(c.vii) }

// Matrix returns the full 2×2 matrix as a fresh gonum SymDense.
func (c Covariance) Matrix() *mat.SymDense {
	return mat.NewSymDense(2, []float64{c.vrr, c.vri, c.vri, c.vii})
}

// IsZero reports whether the matrix is exactly zero (an exact constant).
func (c Covariance) IsZero() bool { return c.vrr == 0 && c.vii == 0 && c.vri == 0 }

// EqualWithin reports element-wise equality within absolute tolerance tol.
func (c Covariance) EqualWithin(o Covariance, tol float64) bool {
	return math.Abs(c.vrr-o.vrr) <= tol &&
		math.Abs(c.vii-o.vii) <= tol &&
		math.Abs(c.vri-o.vri) <= tol
}

func (c Covariance) String() string {
	return fmt.Sprintf("[[%g %g] [%g %g]]", c.vrr, c.vri, c.vri, c.vii)
}
