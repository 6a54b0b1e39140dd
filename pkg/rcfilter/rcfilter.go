// Package rcfilter solves first-order RC low-pass filters: given any two
// of cutoff frequency, resistance and capacitance it computes the third,
// and it evaluates the filter's frequency response.
package rcfilter

import (
	"math"

	"github.com/RMahshie/cutoff/pkg/models"
)

// CutoffFrequency returns the -3dB corner frequency in hertz of an RC
// low-pass filter built from resistance (ohms) and capacitance (farads).
func CutoffFrequency(resistance, capacitance float64) float64 {
	return 1 / (2 * math.Pi * resistance * capacitance)
}

// ComponentValue solves for the remaining component of a filter with the
// given cutoff frequency. The relation is symmetric: passing the known
// resistance yields the capacitance and vice versa.
func ComponentValue(frequency, known float64) float64 {
	return (1 / frequency) / (2 * math.Pi * known)
}

// ResponseCurve samples the filter's magnitude and phase response over a
// logarithmic sweep from startFreq to stopFreq in hertz, inclusive of
// both endpoints. Samples are spaced evenly in log10(f). It returns nil
// when the component values or sweep bounds are not usable or fewer than
// two points are requested.
func ResponseCurve(resistance, capacitance, startFreq, stopFreq float64, points int) []models.CurvePoint {
	if resistance <= 0 || capacitance <= 0 || startFreq <= 0 || stopFreq <= startFreq || points < 2 {
		return nil
	}

	fc := CutoffFrequency(resistance, capacitance)
	logStart := math.Log10(startFreq)
	logStop := math.Log10(stopFreq)
	step := (logStop - logStart) / float64(points-1)

	curve := make([]models.CurvePoint, points)
	for i := range curve {
		f := math.Pow(10, logStart+float64(i)*step)
		ratio := f / fc
		curve[i] = models.CurvePoint{
			Frequency: f,
			Magnitude: -10 * math.Log10(1+ratio*ratio),
			Phase:     -math.Atan(ratio) * 180 / math.Pi,
		}
	}
	return curve
}
