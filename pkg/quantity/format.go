package quantity

import (
	"math"
	"strconv"
)

// prefixSymbols maps powers of ten to metric prefix symbols. Exponent 0
// renders with no symbol.
var prefixSymbols = map[int]string{
	-12: "p",
	-9:  "n",
	-6:  "u",
	-3:  "m",
	0:   "",
	3:   "k",
	6:   "M",
}

// Exponent candidates, scanned smallest-first within each branch so the
// coefficient lands strictly inside (1, 1000).
var (
	risingExponents  = []int{3, 6}
	fallingExponents = []int{-12, -9, -6, -3}
)

// Format renders v in engineering notation: a coefficient strictly
// between 1 and 1000 followed by a metric prefix symbol, e.g. 3.98e-11
// becomes "39.8p" and 20000 becomes "20k". Values with no fitting prefix
// in the pico..mega range render as plain decimal with no symbol; that
// includes 0, exactly 1, and exactly 1000, whose coefficient would land
// on the open interval's boundary.
func Format(v float64) string {
	exp, scaled := scanExponent(v)
	if !scaled {
		return plain(v)
	}
	symbol, ok := prefixSymbols[exp]
	if !ok {
		return plain(v)
	}
	return plain(RoundSig(v/math.Pow10(exp), 3)) + symbol
}

// scanExponent picks the first exponent whose scaling lands v strictly
// inside (1, 1000). The boolean reports whether any exponent fit; when it
// is false the value renders unscaled.
func scanExponent(v float64) (int, bool) {
	var candidates []int
	switch {
	case v > 1:
		candidates = risingExponents
	case v > 0 && v < 1:
		candidates = fallingExponents
	default:
		return 0, false
	}

	for _, e := range candidates {
		c := v / math.Pow10(e)
		if c > 1 && c < 1000 {
			return e, true
		}
	}
	return 0, false
}

// plain renders v in non-scientific decimal notation; integral values
// render without a decimal point.
func plain(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
