package quantity

import (
	"fmt"

	"github.com/qmetrika/uqm/cucomp"
	"github.com/qmetrika/uqm/numeric"
	"github.com/qmetrika/uqm/ucomp"
)

// Uncertainty evaluates the standard uncertainty of q's payload in ctx
// and returns it as a Quantity carrying q's unit: the uncertainty of a
// value expressed in m^(1/2) is itself an m^(1/2) quantity, because the
// unit was derived structurally by the same operations that built the
// payload graph.
//
// A payload without a real uncertainty graph (a plain number) has zero
// uncertainty in its unit.
func Uncertainty(ctx *ucomp.Context, q Quantity) (Quantity, error) {
	node, ok := q.v.(ucomp.Component)
	if !ok {
		if _, isComplex := q.v.(cucomp.Component); isComplex {
			return Quantity{}, fmt.Errorf("%w: complex payload, use CovarianceOf", ErrNotUncertain)
		}
		return Quantity{u: q.u, v: numeric.Float(0)}, nil
	}

	u, err := ctx.Uncertainty(node)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{u: q.u, v: numeric.Float(u)}, nil
}

// CovarianceOf evaluates the 2×2 covariance of q's complex payload in
// ctx. The variances are expressed in q's unit squared.
// Returns ErrNotUncertain when the payload is not a complex graph node.
func CovarianceOf(ctx *cucomp.Context, q Quantity) (cucomp.Covariance, error) {
	node, ok := q.v.(cucomp.Component)
	if !ok {
		return cucomp.Covariance{}, fmt.Errorf("%w: %v payload", ErrNotUncertain, q.v.NumericKind())
	}

	return ctx.Uncertainty(node)
}
