// SPDX-License-Identifier: MIT
// Package: cucomp

package cucomp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qmetrika/uqm/cucomp"
)

const tol = 1e-12

func TestNewCovariance_Validation(t *testing.T) {
	tests := []struct {
		name          string
		vrr, vii, cov float64
		wantErr       bool
	}{
		{"diagonal", 0.01, 0.04, 0, false},
		{"correlated", 0.04, 0.04, 0.03, false},
		{"boundary psd", 0.04, 0.04, 0.04, false},
		{"zero", 0, 0, 0, false},
		{"negative real variance", -0.01, 0.04, 0, true},
		{"negative imag variance", 0.01, -0.04, 0, true},
		{"indefinite", 0.01, 0.01, 0.02, true},
		{"nan", math.NaN(), 0.01, 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cov, err := cucomp.NewCovariance(tc.vrr, tc.vii, tc.cov)
			if tc.wantErr {
				require.ErrorIs(t, err, cucomp.ErrIndefiniteCovariance)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.vrr, cov.VarReal())
			require.Equal(t, tc.vii, cov.VarImag())
			require.Equal(t, tc.cov, cov.Cov())
		})
	}
}

func TestUncorrelated(t *testing.T) {
	cov, err := cucomp.Uncorrelated(0.1, 0.2)
	require.NoError(t, err)
	require.InDelta(t, 0.01, cov.VarReal(), tol)
	require.InDelta(t, 0.04, cov.VarImag(), tol)
	require.Equal(t, 0.0, cov.Cov())
	require.InDelta(t, 0.1, cov.StdReal(), tol)
	require.InDelta(t, 0.2, cov.StdImag(), tol)

	_, err = cucomp.Uncorrelated(-0.1, 0.2)
	require.ErrorIs(t, err, cucomp.ErrNegativeUncertainty)
}

func TestCovariance_Matrix(t *testing.T) {
	cov, err := cucomp.NewCovariance(0.04, 0.09, 0.01)
	require.NoError(t, err)

	m := cov.Matrix()
	require.Equal(t, 0.04, m.At(0, 0))
	require.Equal(t, 0.09, m.At(1, 1))
	require.Equal(t, 0.01, m.At(0, 1))
	require.Equal(t, 0.01, m.At(1, 0))
}

func leaf(t *testing.T, v complex128, uRe, uIm float64) *cucomp.Input {
	t.Helper()

	in, err := cucomp.NewInputUncorrelated(v, uRe, uIm)
	require.NoError(t, err)

	return in
}

func TestUncertainty_Leaf(t *testing.T) {
	z := leaf(t, 1+2i, 0.1, 0.2)

	cov, err := cucomp.NewContext().Uncertainty(z)
	require.NoError(t, err)
	require.InDelta(t, 0.01, cov.VarReal(), tol)
	require.InDelta(t, 0.04, cov.VarImag(), tol)
}

func TestUncertainty_IndependentSum(t *testing.T) {
	a := leaf(t, 1, 0.1, 0.2)
	b := leaf(t, 1i, 0.3, 0.4)

	cov, err := cucomp.NewContext().Uncertainty(cucomp.Add(a, b))
	require.NoError(t, err)
	require.InDelta(t, 0.01+0.09, cov.VarReal(), tol)
	require.InDelta(t, 0.04+0.16, cov.VarImag(), tol)
	require.InDelta(t, 0, cov.Cov(), tol)
}

// TestUncertainty_SharedLeafCancellation: z − z over one leaf is exact.
func TestUncertainty_SharedLeafCancellation(t *testing.T) {
	z := leaf(t, 3+4i, 0.5, 0.5)

	cov, err := cucomp.NewContext().Uncertainty(cucomp.Sub(z, z))
	require.NoError(t, err)
	require.True(t, cov.IsZero())
}

// TestUncertainty_ConjFlipsCovariance: conjugation negates the
// off-diagonal covariance and keeps both variances.
func TestUncertainty_ConjFlipsCovariance(t *testing.T) {
	in, err := cucomp.NewCovariance(0.04, 0.09, 0.02)
	require.NoError(t, err)
	z := cucomp.NewInput(1+1i, in)

	cov, err := cucomp.NewContext().Uncertainty(cucomp.Conj(z))
	require.NoError(t, err)
	require.InDelta(t, 0.04, cov.VarReal(), tol)
	require.InDelta(t, 0.09, cov.VarImag(), tol)
	require.InDelta(t, -0.02, cov.Cov(), tol)
}

// TestUncertainty_MulByImaginaryConstant: multiplying by 2i rotates the
// error ellipse a quarter turn and scales variances by 4, so the real and
// imaginary variances swap.
func TestUncertainty_MulByImaginaryConstant(t *testing.T) {
	z := leaf(t, 1+1i, 0.1, 0.2)

	cov, err := cucomp.NewContext().Uncertainty(cucomp.Mul(z, cucomp.Const(2i)))
	require.NoError(t, err)
	require.InDelta(t, 4*0.04, cov.VarReal(), tol)
	require.InDelta(t, 4*0.01, cov.VarImag(), tol)
	require.InDelta(t, 0, cov.Cov(), tol)
}

func TestUncertainty_ScaleByRealConstant(t *testing.T) {
	z := leaf(t, 2+3i, 0.1, 0.2)

	cov, err := cucomp.NewContext().Uncertainty(cucomp.Mul(cucomp.Const(3), z))
	require.NoError(t, err)
	require.InDelta(t, 9*0.01, cov.VarReal(), tol)
	require.InDelta(t, 9*0.04, cov.VarImag(), tol)
}

func TestUncertainty_NegKeepsCovariance(t *testing.T) {
	in, err := cucomp.NewCovariance(0.04, 0.09, 0.02)
	require.NoError(t, err)
	z := cucomp.NewInput(1-2i, in)

	cov, err := cucomp.NewContext().Uncertainty(cucomp.Neg(z))
	require.NoError(t, err)
	require.True(t, cov.EqualWithin(in, tol))
}

// TestUncertainty_ModulusSquared: |z|² = z·conj(z) at z = 3+4i with
// uncorrelated σ. First-order: Var = (2·re)²σ_re² + (2·im)²σ_im².
func TestUncertainty_ModulusSquared(t *testing.T) {
	z := leaf(t, 3+4i, 0.1, 0.2)

	sq := cucomp.Mul(z, cucomp.Conj(z))
	require.InDelta(t, 25, real(sq.Nominal()), tol)
	require.InDelta(t, 0, imag(sq.Nominal()), tol)

	cov, err := cucomp.NewContext().Uncertainty(sq)
	require.NoError(t, err)
	require.InDelta(t, 36*0.01+64*0.04, cov.VarReal(), tol)
	require.InDelta(t, 0, cov.VarImag(), tol)
}

func TestUncertainty_ExpLogRoundTrip(t *testing.T) {
	z := leaf(t, 1+0.5i, 0.05, 0.05)

	lg, err := cucomp.Log(cucomp.Exp(z))
	require.NoError(t, err)

	cov, err := cucomp.NewContext().Uncertainty(lg)
	require.NoError(t, err)

	// exp then log is the identity to first order.
	require.InDelta(t, 0.0025, cov.VarReal(), 1e-9)
	require.InDelta(t, 0.0025, cov.VarImag(), 1e-9)
	require.InDelta(t, 0, cov.Cov(), 1e-9)
}

func TestUncertainty_SqrtOfSquare(t *testing.T) {
	z := leaf(t, 2+1i, 0.1, 0.1)

	rt, err := cucomp.Sqrt(cucomp.PowConst(z, 2))
	require.NoError(t, err)
	require.InDelta(t, 2, real(rt.Nominal()), tol)
	require.InDelta(t, 1, imag(rt.Nominal()), tol)

	cov, err := cucomp.NewContext().Uncertainty(rt)
	require.NoError(t, err)
	require.InDelta(t, 0.01, cov.VarReal(), 1e-9)
	require.InDelta(t, 0.01, cov.VarImag(), 1e-9)
}

func TestDomainErrors(t *testing.T) {
	zero := cucomp.Const(0)

	_, err := cucomp.Div(cucomp.Const(1), zero)
	require.ErrorIs(t, err, cucomp.ErrDivisionByZero)

	_, err = cucomp.Log(zero)
	require.ErrorIs(t, err, cucomp.ErrDomain)

	_, err = cucomp.Sqrt(zero)
	require.ErrorIs(t, err, cucomp.ErrDomain)
}

func TestUncertainty_Cache(t *testing.T) {
	z := leaf(t, 1+1i, 0.1, 0.1)
	root := cucomp.Mul(cucomp.Add(z, cucomp.Const(1)), z)

	ctx := cucomp.NewContext()
	c1, err := ctx.Uncertainty(root)
	require.NoError(t, err)
	c2, err := ctx.Uncertainty(root)
	require.NoError(t, err)
	require.Equal(t, c1, c2)

	c3, err := cucomp.NewContext().Uncertainty(root)
	require.NoError(t, err)
	require.True(t, c1.EqualWithin(c3, tol))
}

func TestUncertainty_DeepChain(t *testing.T) {
	node := cucomp.Component(leaf(t, 1+1i, 0.1, 0.2))
	for i := 0; i < 50_000; i++ {
		node = cucomp.Add(node, cucomp.Const(0))
	}

	cov, err := cucomp.NewContext().Uncertainty(node)
	require.NoError(t, err)
	require.InDelta(t, 0.01, cov.VarReal(), tol)
	require.InDelta(t, 0.04, cov.VarImag(), tol)
}
