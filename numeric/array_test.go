package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qmetrika/uqm/numeric"
)

func TestArray_Arithmetic(t *testing.T) {
	a := numeric.NewArray([]float64{1, 2, 3})
	b := numeric.NewArray([]float64{4, 5, 6})

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []float64{5, 7, 9}, sum.Elements())

	diff, err := b.Sub(a)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 3, 3}, diff.Elements())

	prod, err := a.Mul(b)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 10, 18}, prod.Elements())

	quot, err := b.Div(a)
	require.NoError(t, err)
	require.Equal(t, []float64{4, 2.5, 2}, quot.Elements())
}

func TestArray_LengthMismatch(t *testing.T) {
	a := numeric.NewArray([]float64{1, 2, 3})
	b := numeric.NewArray([]float64{1, 2})

	for name, op := range map[string]func(numeric.Array) (numeric.Array, error){
		"add": a.Add, "sub": a.Sub, "mul": a.Mul, "div": a.Div,
	} {
		_, err := op(b)
		require.ErrorIs(t, err, numeric.ErrLengthMismatch, name)
	}
}

func TestArray_DivByZeroElement(t *testing.T) {
	a := numeric.NewArray([]float64{1, 2})
	b := numeric.NewArray([]float64{1, 0})

	_, err := a.Div(b)
	require.ErrorIs(t, err, numeric.ErrDivisionByZero)
}

func TestArray_ScalarHelpers(t *testing.T) {
	a := numeric.NewArray([]float64{1, 2, 3})

	require.Equal(t, []float64{3, 4, 5}, a.AddConst(2).Elements())
	require.Equal(t, []float64{2, 4, 6}, a.Scale(2).Elements())
	require.Equal(t, []float64{1, 4, 9}, a.Pow(2).Elements())
	require.Equal(t, []float64{1, 8, 27}, a.Map(func(x float64) float64 { return x * x * x }).Elements())
}

// TestArray_Immutability checks that neither the input slice nor the
// receiver is written through by operations.
func TestArray_Immutability(t *testing.T) {
	backing := []float64{1, 2, 3}
	a := numeric.NewArray(backing)
	backing[0] = 99
	require.Equal(t, 1.0, a.At(0))

	b := numeric.Repeat(1, 3)
	_, err := a.Add(b)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 2, 3}, a.Elements())

	elems := a.Elements()
	elems[1] = 42
	require.Equal(t, 2.0, a.At(1))
}

func TestArray_EqualWithin(t *testing.T) {
	a := numeric.NewArray([]float64{1, 2})
	b := numeric.NewArray([]float64{1 + 1e-12, 2 - 1e-12})
	c := numeric.NewArray([]float64{1, 2, 3})

	require.True(t, a.EqualWithin(b, 1e-9))
	require.False(t, a.EqualWithin(b, 1e-15))
	require.False(t, a.EqualWithin(c, 1e-9))
}

func TestArray_String(t *testing.T) {
	require.Equal(t, "[1 2.5 -3]", numeric.NewArray([]float64{1, 2.5, -3}).String())
	require.Equal(t, "[]", numeric.NewArray(nil).String())
}

func TestAtan2_FirstArgumentRule(t *testing.T) {
	arr := numeric.NewArray([]float64{1, 0})
	one := numeric.Float(1)

	t.Run("array first, scalar broadcast", func(t *testing.T) {
		got, err := numeric.Atan2(arr, one)
		require.NoError(t, err)

		out, ok := got.(numeric.Array)
		require.True(t, ok)
		require.InDelta(t, math.Pi/4, out.At(0), 1e-15)
		require.InDelta(t, 0, out.At(1), 1e-15)
	})

	t.Run("scalar first, array second is unsupported", func(t *testing.T) {
		_, err := numeric.Atan2(one, arr)
		require.ErrorIs(t, err, numeric.ErrUnsupportedOperation)
	})

	t.Run("scalar pair yields float", func(t *testing.T) {
		got, err := numeric.Atan2(numeric.Float(1), numeric.Int(1))
		require.NoError(t, err)
		require.Equal(t, numeric.Float(math.Pi/4), got)
	})

	t.Run("array pair is element-wise", func(t *testing.T) {
		got, err := numeric.Atan2(arr, numeric.NewArray([]float64{0, 1}))
		require.NoError(t, err)

		out := got.(numeric.Array)
		require.InDelta(t, math.Pi/2, out.At(0), 1e-15)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := numeric.Atan2(arr, numeric.NewArray([]float64{1}))
		require.ErrorIs(t, err, numeric.ErrLengthMismatch)
	})
}

func TestHypot(t *testing.T) {
	got, err := numeric.Hypot(numeric.Float(3), numeric.Float(4))
	require.NoError(t, err)
	require.Equal(t, numeric.Float(5), got)

	arr, err := numeric.Hypot(numeric.NewArray([]float64{3, 6}), numeric.NewArray([]float64{4, 8}))
	require.NoError(t, err)
	require.Equal(t, []float64{5, 10}, arr.(numeric.Array).Elements())
}
