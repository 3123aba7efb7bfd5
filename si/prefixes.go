package si

import "github.com/qmetrika/uqm/unit"

// Metric prefixes. Each helper derives a named alternate unit scaled by
// the prefix factor; Milli(VOLT) is the unit "mV" with 1 mV = 10⁻³ V.
// Prefixing an anonymous product unit works but yields a symbol that is
// just the prefix letter; name the product first if that matters.

func prefixed(symbol string, u unit.Unit, factor float64) (*unit.Alternate, error) {
	conv, err := unit.Linear(factor)
	if err != nil {
		return nil, err
	}

	return unit.NewAlternate(symbol+u.Symbol(), u, conv)
}

// Tera derives 10¹² · u ("T" prefix).
func Tera(u unit.Unit) (*unit.Alternate, error) { return prefixed("T", u, 1e12) }

// Giga derives 10⁹ · u ("G" prefix).
func Giga(u unit.Unit) (*unit.Alternate, error) { return prefixed("G", u, 1e9) }

// Mega derives 10⁶ · u ("M" prefix).
func Mega(u unit.Unit) (*unit.Alternate, error) { return prefixed("M", u, 1e6) }

// Kilo derives 10³ · u ("k" prefix).
func Kilo(u unit.Unit) (*unit.Alternate, error) { return prefixed("k", u, 1e3) }

// Hecto derives 10² · u ("h" prefix).
func Hecto(u unit.Unit) (*unit.Alternate, error) { return prefixed("h", u, 1e2) }

// Deci derives 10⁻¹ · u ("d" prefix).
func Deci(u unit.Unit) (*unit.Alternate, error) { return prefixed("d", u, 1e-1) }

// Centi derives 10⁻² · u ("c" prefix).
func Centi(u unit.Unit) (*unit.Alternate, error) { return prefixed("c", u, 1e-2) }

// Milli derives 10⁻³ · u ("m" prefix).
func Milli(u unit.Unit) (*unit.Alternate, error) { return prefixed("m", u, 1e-3) }

// Micro derives 10⁻⁶ · u ("µ" prefix).
func Micro(u unit.Unit) (*unit.Alternate, error) { return prefixed("µ", u, 1e-6) }

// Nano derives 10⁻⁹ · u ("n" prefix).
func Nano(u unit.Unit) (*unit.Alternate, error) { return prefixed("n", u, 1e-9) }

// Pico derives 10⁻¹² · u ("p" prefix).
func Pico(u unit.Unit) (*unit.Alternate, error) { return prefixed("p", u, 1e-12) }
