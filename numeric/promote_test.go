package numeric_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/qmetrika/uqm/numeric"
)

// pair is an unordered kind pair key (lower kind first).
type pair [2]numeric.Kind

func mk(a, b numeric.Kind) pair {
	if a > b {
		a, b = b, a
	}

	return pair{a, b}
}

// defined enumerates every pair with a coercion rule and its common kind;
// all pairs absent from the map must be undefined. This mirrors the
// documented coercion rules one row at a time.
var defined = map[pair]numeric.Kind{
	mk(numeric.KindInt, numeric.KindInt):              numeric.KindInt,
	mk(numeric.KindInt, numeric.KindRational):         numeric.KindRational,
	mk(numeric.KindInt, numeric.KindFloat):            numeric.KindFloat,
	mk(numeric.KindInt, numeric.KindComplex):          numeric.KindComplex,
	mk(numeric.KindInt, numeric.KindArray):            numeric.KindArray,
	mk(numeric.KindInt, numeric.KindQuantity):         numeric.KindQuantity,
	mk(numeric.KindInt, numeric.KindUncertainReal):    numeric.KindUncertainReal,
	mk(numeric.KindInt, numeric.KindUncertainComplex): numeric.KindUncertainComplex,

	mk(numeric.KindRational, numeric.KindRational):         numeric.KindRational,
	mk(numeric.KindRational, numeric.KindFloat):            numeric.KindFloat,
	mk(numeric.KindRational, numeric.KindComplex):          numeric.KindComplex,
	mk(numeric.KindRational, numeric.KindQuantity):         numeric.KindQuantity,
	mk(numeric.KindRational, numeric.KindUncertainReal):    numeric.KindUncertainReal,
	mk(numeric.KindRational, numeric.KindUncertainComplex): numeric.KindUncertainComplex,

	mk(numeric.KindFloat, numeric.KindFloat):            numeric.KindFloat,
	mk(numeric.KindFloat, numeric.KindComplex):          numeric.KindComplex,
	mk(numeric.KindFloat, numeric.KindArray):            numeric.KindArray,
	mk(numeric.KindFloat, numeric.KindQuantity):         numeric.KindQuantity,
	mk(numeric.KindFloat, numeric.KindUncertainReal):    numeric.KindUncertainReal,
	mk(numeric.KindFloat, numeric.KindUncertainComplex): numeric.KindUncertainComplex,

	mk(numeric.KindComplex, numeric.KindComplex):          numeric.KindComplex,
	mk(numeric.KindComplex, numeric.KindQuantity):         numeric.KindQuantity,
	mk(numeric.KindComplex, numeric.KindUncertainComplex): numeric.KindUncertainComplex,

	mk(numeric.KindArray, numeric.KindArray):    numeric.KindArray,
	mk(numeric.KindArray, numeric.KindQuantity): numeric.KindQuantity,

	mk(numeric.KindQuantity, numeric.KindQuantity):         numeric.KindQuantity,
	mk(numeric.KindQuantity, numeric.KindUncertainReal):    numeric.KindQuantity,
	mk(numeric.KindQuantity, numeric.KindUncertainComplex): numeric.KindQuantity,

	mk(numeric.KindUncertainReal, numeric.KindUncertainReal):       numeric.KindUncertainReal,
	mk(numeric.KindUncertainComplex, numeric.KindUncertainComplex): numeric.KindUncertainComplex,
}

// TestPromote_Exhaustive walks every ordered pair of supported kinds and
// checks the result (or undefined signal) against the documented table.
func TestPromote_Exhaustive(t *testing.T) {
	kinds := numeric.Kinds()
	require.Len(t, kinds, 9)

	for _, a := range kinds {
		for _, b := range kinds {
			got, ok := numeric.Promote(a, b)
			want, defined := defined[mk(a, b)]

			if !defined {
				require.False(t, ok, "Promote(%v, %v) must be undefined", a, b)
				continue
			}
			require.True(t, ok, "Promote(%v, %v) must be defined", a, b)
			require.Equal(t, want, got, "Promote(%v, %v)", a, b)
		}
	}
}

// TestPromote_Symmetry verifies Promote(a,b) == Promote(b,a) across the
// whole table.
func TestPromote_Symmetry(t *testing.T) {
	for _, a := range numeric.Kinds() {
		for _, b := range numeric.Kinds() {
			k1, ok1 := numeric.Promote(a, b)
			k2, ok2 := numeric.Promote(b, a)

			require.Equal(t, ok1, ok2, "defined-ness of (%v, %v)", a, b)
			require.Equal(t, k1, k2, "common kind of (%v, %v)", a, b)
		}
	}
}

func TestPromote_UnitNeverCombines(t *testing.T) {
	for _, k := range numeric.Kinds() {
		_, ok := numeric.Promote(numeric.KindUnit, k)
		require.False(t, ok, "unit × %v must be undefined", k)
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "rational", numeric.KindRational.String())
	require.Equal(t, "uncertain-complex", numeric.KindUncertainComplex.String())
	require.Equal(t, "invalid", numeric.KindInvalid.String())
}
