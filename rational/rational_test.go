package rational_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qmetrika/uqm/rational"
)

// TestNew_Normalization ensures every constructed fraction is reduced
// with a positive denominator.
func TestNew_Normalization(t *testing.T) {
	for _, tc := range []struct {
		n, d     int64
		wantN    int64
		wantD    int64
		wantText string
	}{
		{4, 8, 1, 2, "1/2"},
		{-4, 8, -1, 2, "-1/2"},
		{4, -8, -1, 2, "-1/2"},
		{-4, -8, 1, 2, "1/2"},
		{0, 5, 0, 1, "0"},
		{7, 1, 7, 1, "7"},
		{6, 3, 2, 1, "2"},
	} {
		t.Run(tc.wantText, func(t *testing.T) {
			r, err := rational.New(tc.n, tc.d)
			require.NoError(t, err)
			require.Equal(t, tc.wantN, r.Num().Int64())
			require.Equal(t, tc.wantD, r.Den().Int64())
			require.Equal(t, tc.wantText, r.String())
		})
	}
}

func TestNew_ZeroDenominator(t *testing.T) {
	_, err := rational.New(3, 0)
	require.ErrorIs(t, err, rational.ErrZeroDenominator)

	_, err = rational.FromBig(big.NewInt(1), big.NewInt(0))
	require.ErrorIs(t, err, rational.ErrZeroDenominator)
}

// TestEquality verifies that equal fractions are structurally identical
// after reduction: 4/8 equals 1/2.
func TestEquality(t *testing.T) {
	a, err := rational.New(4, 8)
	require.NoError(t, err)
	b, err := rational.New(1, 2)
	require.NoError(t, err)

	require.True(t, a.Equal(b))
	require.Zero(t, a.Cmp(b))
}

func TestArithmetic(t *testing.T) {
	half := rational.MustNew(1, 2)
	third := rational.MustNew(1, 3)

	require.Equal(t, "5/6", half.Add(third).String())
	require.Equal(t, "1/6", half.Sub(third).String())
	require.Equal(t, "1/6", half.Mul(third).String())

	q, err := half.Div(third)
	require.NoError(t, err)
	require.Equal(t, "3/2", q.String())

	_, err = half.Div(rational.Zero)
	require.ErrorIs(t, err, rational.ErrZeroDenominator)
}

func TestPow(t *testing.T) {
	twoThirds := rational.MustNew(2, 3)

	sq, err := twoThirds.Pow(2)
	require.NoError(t, err)
	require.Equal(t, "4/9", sq.String())

	inv, err := twoThirds.Pow(-1)
	require.NoError(t, err)
	require.Equal(t, "3/2", inv.String())

	ident, err := twoThirds.Pow(0)
	require.NoError(t, err)
	require.True(t, ident.Equal(rational.One))

	_, err = rational.Zero.Pow(-2)
	require.ErrorIs(t, err, rational.ErrZeroDenominator)
}

// TestZeroValue locks in that the zero value of Rational behaves as 0.
func TestZeroValue(t *testing.T) {
	var z rational.Rational

	require.True(t, z.IsZero())
	require.True(t, z.Equal(rational.Zero))
	require.Equal(t, "0", z.String())
	require.True(t, z.Add(rational.One).Equal(rational.One))
	require.Equal(t, 0.0, z.Float64())
}

func TestOrderingAndSign(t *testing.T) {
	neg := rational.MustNew(-3, 4)
	pos := rational.MustNew(3, 4)

	require.Equal(t, -1, neg.Sign())
	require.Equal(t, 1, pos.Sign())
	require.Equal(t, -1, neg.Cmp(pos))
	require.Equal(t, 1, pos.Cmp(neg))
	require.True(t, neg.Abs().Equal(pos))
	require.True(t, neg.Neg().Equal(pos))
}

func TestFloat64(t *testing.T) {
	require.InDelta(t, 0.5, rational.MustNew(1, 2).Float64(), 1e-15)
	require.InDelta(t, -1.25, rational.MustNew(-5, 4).Float64(), 1e-15)
}

// TestImmutability ensures operations never mutate their receivers and
// accessors return defensive copies.
func TestImmutability(t *testing.T) {
	r := rational.MustNew(1, 2)
	_ = r.Add(rational.One)
	_ = r.Neg()

	require.Equal(t, "1/2", r.String())

	n := r.Num()
	n.SetInt64(99)
	require.Equal(t, "1/2", r.String())
}
