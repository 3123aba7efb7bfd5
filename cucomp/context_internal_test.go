// SPDX-License-Identifier: MIT
// Package: cucomp

package cucomp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTopoOrder_CycleDetected(t *testing.T) {
	a := &Operation{op: opNeg, args: make([]Component, 1)}
	b := &Operation{op: opNeg, args: []Component{a}}
	a.args[0] = b

	_, err := topoOrder(a)
	require.ErrorIs(t, err, ErrCyclicGraph)

	_, err = NewContext().Uncertainty(a)
	require.ErrorIs(t, err, ErrCyclicGraph)
}

// TestJacobian_Conj pins the one non-holomorphic Jacobian.
func TestJacobian_Conj(t *testing.T) {
	op := Conj(Const(1 + 2i)).(*Operation)

	j := op.jacobian(0)
	require.Equal(t, 1.0, j.At(0, 0))
	require.Equal(t, -1.0, j.At(1, 1))
	require.Equal(t, 0.0, j.At(0, 1))
	require.Equal(t, 0.0, j.At(1, 0))
}

// TestJacobian_MulStructure checks the multiply-by-w layout
// [[re −im] [im re]] that every holomorphic operator reduces to.
func TestJacobian_MulStructure(t *testing.T) {
	op := Mul(Const(1), Const(3+4i)).(*Operation)

	j := op.jacobian(0) // d(ab)/da = b = 3+4i
	require.Equal(t, 3.0, j.At(0, 0))
	require.Equal(t, -4.0, j.At(0, 1))
	require.Equal(t, 4.0, j.At(1, 0))
	require.Equal(t, 3.0, j.At(1, 1))
}
