package numeric

// Promote resolves the common kind two operands coerce to before a binary
// operation. It is total over Kind × Kind and symmetric: Promote(a, b)
// equals Promote(b, a). The second result is false when no coercion rule
// exists; callers must then fail with ErrUnsupportedOperation.
//
// The table, by pair (symmetric closure implied):
//
//	int      × int/rational/float/complex/array  → the other kind
//	int      × rational                          → rational (exactness kept)
//	rational × float/complex                     → float/complex
//	rational × array                             → undefined
//	float    × complex/array                     → complex/array
//	complex  × array                             → undefined (arrays are real)
//	quantity × int/rational/float/complex/array  → quantity
//	quantity × uncertain-real/uncertain-complex  → quantity
//	uncertain-real    × int/rational/float       → uncertain-real
//	uncertain-real    × complex/array/u-complex  → undefined
//	uncertain-complex × int/rational/float/complex → uncertain-complex
//	uncertain-complex × array                    → undefined
//	unit     × anything                          → undefined
//	k × k                                        → k (unit excluded)
func Promote(a, b Kind) (Kind, bool) {
	// The table is symmetric; canonicalize the pair once.
	if a > b {
		a, b = b, a
	}

	// Bare units never take part in value arithmetic.
	if b == KindUnit {
		return KindInvalid, false
	}

	if a == b {
		return a, true
	}

	switch a {
	case KindInt:
		// Int promotes to every richer kind.
		return b, true

	case KindRational:
		switch b {
		case KindFloat, KindComplex, KindQuantity, KindUncertainReal, KindUncertainComplex:
			return b, true
		}

	case KindFloat:
		switch b {
		case KindComplex, KindArray, KindQuantity, KindUncertainReal, KindUncertainComplex:
			return b, true
		}

	case KindComplex:
		switch b {
		case KindQuantity, KindUncertainComplex:
			return b, true
		}

	case KindArray:
		if b == KindQuantity {
			return b, true
		}

	case KindQuantity:
		// Quantity absorbs both uncertain kinds (other side is wrapped
		// with the quantity's unit).
		return KindQuantity, true
	}

	return KindInvalid, false
}
