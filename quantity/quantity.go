package quantity

import (
	"fmt"

	"github.com/qmetrika/uqm/numeric"
	"github.com/qmetrika/uqm/rational"
	"github.com/qmetrika/uqm/unit"
)

// DefaultTolerance is the absolute tolerance Equal uses for real-valued
// comparisons after unit conversion.
const DefaultTolerance = 1e-9

// Quantity is an immutable pair of a unit and a numeric value. The value
// may be any tower member except a bare unit or another quantity.
type Quantity struct {
	u unit.Unit
	v numeric.Value
}

// New builds a quantity of v expressed in u.
func New(u unit.Unit, v numeric.Value) Quantity {
	return Quantity{u: u, v: v}
}

// NumericKind reports numeric.KindQuantity.
func (Quantity) NumericKind() numeric.Kind { return numeric.KindQuantity }

// Unit returns the unit the value is expressed in.
func (q Quantity) Unit() unit.Unit { return q.u }

// DefaultUnit returns the unit structurally derived from the operations
// that produced this quantity — sqrt of a METER quantity reports
// METER^(1/2). It is the same unit Unit returns; the name mirrors the
// derivation guarantee.
func (q Quantity) DefaultUnit() unit.Unit { return q.u }

// Value returns the numeric payload.
func (q Quantity) Value() numeric.Value { return q.v }

// Add returns q + o expressed in q's unit.
// Returns ErrIncompatibleUnits when the dimension vectors differ.
func (q Quantity) Add(o Quantity) (Quantity, error) {
	conv, err := unit.OperatorTo(o.u, q.u)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %v + %v", ErrIncompatibleUnits, q.u, o.u)
	}

	ov, err := convertValue(o.v, conv)
	if err != nil {
		return Quantity{}, err
	}
	sum, err := Add(q.v, ov)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{u: q.u, v: sum}, nil
}

// Sub returns q − o expressed in q's unit.
// Returns ErrIncompatibleUnits when the dimension vectors differ.
func (q Quantity) Sub(o Quantity) (Quantity, error) {
	conv, err := unit.OperatorTo(o.u, q.u)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %v - %v", ErrIncompatibleUnits, q.u, o.u)
	}

	ov, err := convertValue(o.v, conv)
	if err != nil {
		return Quantity{}, err
	}
	diff, err := Sub(q.v, ov)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{u: q.u, v: diff}, nil
}

// Mul returns q · o; units multiply (dimension vectors add).
func (q Quantity) Mul(o Quantity) (Quantity, error) {
	u, err := unit.Mul(q.u, o.u)
	if err != nil {
		return Quantity{}, err
	}
	v, err := Mul(q.v, o.v)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{u: u, v: v}, nil
}

// Div returns q / o; units divide (dimension vectors subtract).
func (q Quantity) Div(o Quantity) (Quantity, error) {
	u, err := unit.Div(q.u, o.u)
	if err != nil {
		return Quantity{}, err
	}
	v, err := Div(q.v, o.v)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{u: u, v: v}, nil
}

// Pow raises q to the rational power r; the unit's dimension vector
// scales by r.
func (q Quantity) Pow(r rational.Rational) (Quantity, error) {
	u, err := unit.Pow(q.u, r)
	if err != nil {
		return Quantity{}, err
	}
	v, err := powValue(q.v, r)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{u: u, v: v}, nil
}

// Sqrt returns the square root of q; the unit of the result is
// q's unit raised to the power 1/2.
func (q Quantity) Sqrt() (Quantity, error) {
	u, err := unit.Sqrt(q.u)
	if err != nil {
		return Quantity{}, err
	}
	v, err := sqrtValue(q.v)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{u: u, v: v}, nil
}

// Sin returns sin(q) as a dimensionless quantity.
// Returns ErrNotDimensionless unless q's unit has the all-zero dimension.
func (q Quantity) Sin() (Quantity, error) { return q.transcendental(fnSin) }

// Cos returns cos(q) as a dimensionless quantity.
func (q Quantity) Cos() (Quantity, error) { return q.transcendental(fnCos) }

// Tan returns tan(q) as a dimensionless quantity.
func (q Quantity) Tan() (Quantity, error) { return q.transcendental(fnTan) }

// Exp returns e^q as a dimensionless quantity.
func (q Quantity) Exp() (Quantity, error) { return q.transcendental(fnExp) }

// Log returns the natural logarithm of q as a dimensionless quantity.
func (q Quantity) Log() (Quantity, error) { return q.transcendental(fnLog) }

func (q Quantity) transcendental(fn elementaryFn) (Quantity, error) {
	if !q.u.Dimension().IsNone() {
		return Quantity{}, fmt.Errorf("%w: %s(%v)", ErrNotDimensionless, fn, q.u)
	}

	v, err := elementaryValue(fn, q.v)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{u: unit.One, v: v}, nil
}

// To converts q into the target unit.
// Returns ErrIncompatibleUnits when the dimensions differ.
func (q Quantity) To(target unit.Unit) (Quantity, error) {
	conv, err := unit.OperatorTo(q.u, target)
	if err != nil {
		return Quantity{}, fmt.Errorf("%w: %v → %v", ErrIncompatibleUnits, q.u, target)
	}

	v, err := convertValue(q.v, conv)
	if err != nil {
		return Quantity{}, err
	}

	return Quantity{u: target, v: v}, nil
}

// Equal reports whether o represents the same physical value: the units
// must be compatible and the values equal after conversion to q's unit,
// within DefaultTolerance for real-valued payloads. Incompatible units
// are unequal, never an error.
func (q Quantity) Equal(o Quantity) bool {
	return q.EqualWithin(o, DefaultTolerance)
}

// EqualWithin is Equal with an explicit absolute tolerance.
func (q Quantity) EqualWithin(o Quantity, tol float64) bool {
	conv, err := unit.OperatorTo(o.u, q.u)
	if err != nil {
		return false
	}
	ov, err := convertValue(o.v, conv)
	if err != nil {
		return false
	}

	return valuesEqual(q.v, ov, tol)
}

// String renders "value unit", e.g. "2000 mV" or "(1 ± 0.2) m".
func (q Quantity) String() string {
	us := q.u.String()
	if us == "1" {
		return fmt.Sprintf("%v", q.v)
	}

	return fmt.Sprintf("%v %s", q.v, us)
}
