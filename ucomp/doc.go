// Package ucomp models real-valued uncertain quantities as nodes of a
// shared, acyclic computation graph (a "GUM tree") and derives their
// standard uncertainty from first-order sensitivity coefficients.
//
// Two node kinds exist:
//
//   - Input     — a leaf carrying a nominal value and a declared standard
//     uncertainty. Leaves are distinguished by identity: two inputs with
//     equal values are still independent sources unless they are the
//     same object.
//   - Operation — an operator applied to operand nodes. Operands are
//     shared references, never clones; a node referenced by several
//     parents stays one node, which is exactly what lets correlation
//     through shared inputs be counted correctly. The nominal value is
//     computed eagerly at construction; uncertainty is never stored on a
//     node, only derived.
//
// A Context is a short-lived evaluation session:
//
//	x, _ := ucomp.NewInput(1.0, 0.2)
//	y := ucomp.Sub(x, x)              // same leaf on both sides
//	ctx := ucomp.NewContext()
//	u, _ := ctx.Uncertainty(y)        // 0 — the shared leaf cancels
//
// Uncertainty(n) accumulates, for every input leaf reachable from n, the
// chain-rule product of per-edge partial derivatives evaluated at nominal
// values, then combines the leaves' declared uncertainties as
// sqrt(Σ sens²·u²). Leaves are modeled as mutually independent; apparent
// correlation between branches only ever arises from a leaf reachable by
// more than one path, which the accumulation handles by construction.
// Evaluation is iterative (explicit stack), so deep graphs cannot exhaust
// the call stack, and each session memoizes per node identity.
//
// Nodes are immutable once built, so any number of Contexts may evaluate
// the same frozen graph concurrently; a single Context, however, is not
// safe for concurrent use (its cache is a read-then-write sequence).
//
// Errors:
//
//	ErrNegativeUncertainty - declared uncertainty < 0 (or NaN) at input construction.
//	ErrDivisionByZero      - dividing by an operand with zero nominal value.
//	ErrDomain              - operand outside an operator's domain (log ≤ 0, sqrt < 0, …).
//	ErrCyclicGraph         - defensive: a node revisited during its own evaluation.
package ucomp
