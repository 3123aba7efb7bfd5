package numeric

// Kind enumerates the closed set of tower members. The set is closed by
// design: promotion is a total function over Kind × Kind, and adding a
// kind means extending the table, not special-casing call sites.
type Kind uint8

const (
	// KindInvalid is the zero Kind; no Value reports it.
	KindInvalid Kind = iota

	// KindInt is a 64-bit signed integer.
	KindInt

	// KindRational is an exact reduced fraction.
	KindRational

	// KindFloat is a float64.
	KindFloat

	// KindComplex is a complex128.
	KindComplex

	// KindArray is an element-wise real vector.
	KindArray

	// KindQuantity is a (unit, value) pair.
	KindQuantity

	// KindUncertainReal is a node of a real uncertainty graph.
	KindUncertainReal

	// KindUncertainComplex is a node of a complex uncertainty graph.
	KindUncertainComplex

	// KindUnit is a bare physical unit; it never combines arithmetically.
	KindUnit

	// kindCount bounds the enumeration for exhaustive table iteration.
	kindCount
)

// Kinds returns all tower kinds in declaration order (KindInvalid excluded).
// Exhaustive table tests iterate this slice.
func Kinds() []Kind {
	out := make([]Kind, 0, kindCount-1)
	for k := KindInt; k < kindCount; k++ {
		out = append(out, k)
	}

	return out
}

// String returns the kind name used in error messages and tests.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindRational:
		return "rational"
	case KindFloat:
		return "float"
	case KindComplex:
		return "complex"
	case KindArray:
		return "array"
	case KindQuantity:
		return "quantity"
	case KindUncertainReal:
		return "uncertain-real"
	case KindUncertainComplex:
		return "uncertain-complex"
	case KindUnit:
		return "unit"
	default:
		return "invalid"
	}
}

// Value is implemented by every tower member.
type Value interface {
	// NumericKind reports the member's position in the coercion tower.
	NumericKind() Kind
}
