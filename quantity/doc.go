// Package quantity couples physical units with numeric values and sits
// at the top of the numeric coercion tower: its dispatch functions
// (Add, Sub, Mul, Div) accept any two tower members, resolve the common
// kind through numeric.Promote, coerce both operands, and run the
// operation there — or fail with numeric.ErrUnsupportedOperation when the
// table marks the pair undefined.
//
// A Quantity is an immutable (unit, value) pair whose value may itself be
// an integer, rational, float, complex, array, or an uncertain-graph node
// (ucomp/cucomp), recursively through the same tower:
//
//   - Add/Sub require dimension compatibility; the right operand is
//     converted to the LEFT operand's unit before combining, and the
//     result carries that unit.
//   - Mul/Div/Pow/Sqrt combine units structurally — the unit of
//     sqrt(Quantity(METER, x)) is METER^(1/2), derived from the
//     operation, never looked up.
//   - Sin/Cos/Tan/Exp/Log require a dimensionless unit.
//   - To converts between compatible units; Equal converts to a common
//     unit and compares values within tolerance.
//
// When a bare scalar meets a Quantity, the scalar is wrapped as a
// Quantity first: under additive operations it adopts the quantity's
// unit (the table's promotion rule), under multiplicative ones it is
// dimensionless, so q·2 scales a value without squaring its unit.
//
// Uncertain payloads keep their units through propagation: Uncertainty
// evaluates the payload's graph in a ucomp.Context and returns the result
// as a Quantity in the same structurally derived unit, so the uncertainty
// of a value in m^(1/2) is itself expressed in m^(1/2).
package quantity
