package si

import (
	"github.com/qmetrika/uqm/rational"
	"github.com/qmetrika/uqm/unit"
)

// Base units, one per fundamental dimension.
var (
	// METER is the SI unit of length (m).
	METER = unit.NewBase("m", unit.Length)
	// KILOGRAM is the SI unit of mass (kg).
	KILOGRAM = unit.NewBase("kg", unit.Mass)
	// SECOND is the SI unit of time (s).
	SECOND = unit.NewBase("s", unit.Time)
	// AMPERE is the SI unit of electric current (A).
	AMPERE = unit.NewBase("A", unit.Current)
	// KELVIN is the SI unit of thermodynamic temperature (K).
	KELVIN = unit.NewBase("K", unit.Temperature)
	// MOLE is the SI unit of amount of substance (mol).
	MOLE = unit.NewBase("mol", unit.Amount)
	// CANDELA is the SI unit of luminous intensity (cd).
	CANDELA = unit.NewBase("cd", unit.LuminousIntensity)

	// ONE is the dimensionless unit.
	ONE = unit.One
)

// Named coherent derived units, defined as identity alternates over their
// base-unit decomposition so they print with their own symbol but convert
// one-to-one.
var (
	// RADIAN is plane angle (rad), dimensionless.
	RADIAN = alias("rad", ONE)
	// STERADIAN is solid angle (sr), dimensionless.
	STERADIAN = alias("sr", ONE)
	// HERTZ is frequency (Hz), s⁻¹.
	HERTZ = alias("Hz", pow(SECOND, -1))
	// NEWTON is force (N), kg·m·s⁻².
	NEWTON = alias("N", mul(KILOGRAM, mul(METER, pow(SECOND, -2))))
	// PASCAL is pressure (Pa), N/m².
	PASCAL = alias("Pa", div(NEWTON, pow(METER, 2)))
	// JOULE is energy (J), N·m.
	JOULE = alias("J", mul(NEWTON, METER))
	// WATT is power (W), J/s.
	WATT = alias("W", div(JOULE, SECOND))
	// COULOMB is electric charge (C), A·s.
	COULOMB = alias("C", mul(AMPERE, SECOND))
	// VOLT is electric potential (V), W/A.
	VOLT = alias("V", div(WATT, AMPERE))
	// FARAD is capacitance (F), C/V.
	FARAD = alias("F", div(COULOMB, VOLT))
	// OHM is electric resistance (Ω), V/A.
	OHM = alias("Ω", div(VOLT, AMPERE))
	// SIEMENS is electric conductance (S), A/V.
	SIEMENS = alias("S", div(AMPERE, VOLT))
	// WEBER is magnetic flux (Wb), V·s.
	WEBER = alias("Wb", mul(VOLT, SECOND))
	// TESLA is magnetic flux density (T), Wb/m².
	TESLA = alias("T", div(WEBER, pow(METER, 2)))
	// HENRY is inductance (H), Wb/A.
	HENRY = alias("H", div(WEBER, AMPERE))
	// LUMEN is luminous flux (lm), cd·sr.
	LUMEN = alias("lm", mul(CANDELA, STERADIAN))
	// LUX is illuminance (lx), lm/m².
	LUX = alias("lx", div(LUMEN, pow(METER, 2)))
	// BECQUEREL is radioactivity (Bq), s⁻¹.
	BECQUEREL = alias("Bq", pow(SECOND, -1))
	// GRAY is absorbed dose (Gy), J/kg.
	GRAY = alias("Gy", div(JOULE, KILOGRAM))
	// SIEVERT is dose equivalent (Sv), J/kg.
	SIEVERT = alias("Sv", div(JOULE, KILOGRAM))
)

// Accepted non-coherent units.
var (
	// GRAM (g) is 1/1000 kg.
	GRAM = scaled("g", KILOGRAM, 1e-3)
	// MINUTE (min) is 60 s.
	MINUTE = scaled("min", SECOND, 60)
	// HOUR (h) is 3600 s.
	HOUR = scaled("h", SECOND, 3600)
	// LITER (L) is 10⁻³ m³.
	LITER = scaled("L", pow(METER, 3), 1e-3)
	// CELSIUS (°C) is kelvin shifted by 273.15. Being affine, it converts
	// standalone but cannot appear inside product units.
	CELSIUS = affine("°C", KELVIN, 1, 273.15)
)

// Catalogue construction helpers. The catalogue is built from known-good
// compositions, so failures here are programmer errors and panic at init.

func alias(symbol string, parent unit.Unit) *unit.Alternate {
	u, err := unit.NewAlternate(symbol, parent, unit.Identity())
	if err != nil {
		panic(err)
	}

	return u
}

func scaled(symbol string, parent unit.Unit, factor float64) *unit.Alternate {
	conv, err := unit.Linear(factor)
	if err != nil {
		panic(err)
	}
	u, err := unit.NewAlternate(symbol, parent, conv)
	if err != nil {
		panic(err)
	}

	return u
}

func affine(symbol string, parent unit.Unit, scale, offset float64) *unit.Alternate {
	conv, err := unit.Affine(scale, offset)
	if err != nil {
		panic(err)
	}
	u, err := unit.NewAlternate(symbol, parent, conv)
	if err != nil {
		panic(err)
	}

	return u
}

func mul(a, b unit.Unit) unit.Unit {
	u, err := unit.Mul(a, b)
	if err != nil {
		panic(err)
	}

	return u
}

func div(a, b unit.Unit) unit.Unit {
	u, err := unit.Div(a, b)
	if err != nil {
		panic(err)
	}

	return u
}

func pow(u unit.Unit, n int64) unit.Unit {
	out, err := unit.Pow(u, rational.FromInt(n))
	if err != nil {
		panic(err)
	}

	return out
}
