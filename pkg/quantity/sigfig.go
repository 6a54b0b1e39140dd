package quantity

import "strconv"

// RoundSig rounds v to figs significant figures.
//
// Rounding goes through a decimal text round-trip rather than
// multiply-round-divide arithmetic, so the result lands exactly on the
// decimal value a reader expects: 3.978873577297384e-11 rounds to
// 3.98e-11, never 3.9800000000000004e-11.
func RoundSig(v float64, figs int) float64 {
	if figs < 1 {
		figs = 1
	}
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'g', figs, 64), 64)
	if err != nil {
		return v
	}
	return r
}
