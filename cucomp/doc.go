// Package cucomp models complex-valued uncertain quantities with the
// same shared-graph propagation as package ucomp, tracking a full 2×2
// real covariance matrix over (real part, imaginary part) instead of a
// scalar variance.
//
// Each Input leaf declares a positive-semidefinite Covariance, which may
// express correlation between the two components of one measured complex
// value. Each operator supplies, per operand, a 2×2 real Jacobian mapping
// a (Δre, Δim) perturbation of that operand to the resulting perturbation
// of the output — operators are treated as maps ℝ²→ℝ², not necessarily
// holomorphic (Conj is the canonical non-holomorphic case, with Jacobian
// diag(1, −1)).
//
// The scalar sensitivity-composition rule generalizes to Jacobian
// composition: the accumulated Jacobian from a node to a leaf is the
// chain-rule product of per-edge Jacobians (summed over paths), and the
// node's covariance is Σ_leaf J·Cov(leaf)·Jᵀ. A leaf shared by several
// branches is therefore counted once, exactly as in the real case.
//
// Matrix work rides on gonum/mat; evaluation is iterative and memoized
// per Context, with the same concurrency contract as ucomp.
//
// Errors:
//
//	ErrIndefiniteCovariance - covariance with a negative diagonal or negative determinant.
//	ErrNegativeUncertainty  - negative standard uncertainty in a convenience constructor.
//	ErrDivisionByZero       - dividing by an operand with zero nominal value.
//	ErrDomain               - operand outside an operator's domain (log/sqrt of zero).
//	ErrCyclicGraph          - defensive: a node revisited during its own evaluation.
package cucomp
