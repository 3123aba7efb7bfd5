// Package si is the process-wide catalogue of SI units.
//
// The catalogue is populated once at package initialization and is
// immutable afterward; concurrent reads need no coordination. It covers:
//
//   - the seven base units (METER, KILOGRAM, SECOND, AMPERE, KELVIN,
//     MOLE, CANDELA) and the dimensionless ONE
//   - the named coherent derived units (NEWTON, JOULE, VOLT, OHM, …),
//     defined as identity alternates over their base-unit products
//   - metric prefixes as constructor helpers (Milli, Kilo, …) returning
//     named alternate units
//   - a few accepted non-coherent units (GRAM, MINUTE, HOUR, LITER,
//     CELSIUS)
//
// Unit identity matters: always reference catalogue variables rather than
// re-deriving base units, so that structurally derived units (sqrt(METER)
// and friends) compare equal across call sites.
package si
