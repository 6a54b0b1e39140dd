package rcfilter

import (
	"errors"
	"fmt"

	"github.com/RMahshie/cutoff/pkg/quantity"
)

// Validation failures for Solve.
var (
	ErrOverSpecified = errors.New("over-specified input")
	ErrNotPositive   = errors.New("magnitudes must be positive")
)

// Solution is a completed filter design: the solved-for kind and value
// plus the full frequency/resistance/capacitance triple in base units.
type Solution struct {
	Kind  quantity.Kind
	Value float64

	Frequency   float64
	Resistance  float64
	Capacitance float64
}

// Solve determines the missing third quantity from two parsed inputs.
// The inputs must be of different kinds and strictly positive; supplying
// the same kind twice is rejected rather than letting one value silently
// win.
func Solve(a, b quantity.Quantity) (Solution, error) {
	if a.Kind == b.Kind {
		return Solution{}, fmt.Errorf("%w: %s supplied twice", ErrOverSpecified, a.Kind)
	}
	if a.Magnitude <= 0 || b.Magnitude <= 0 {
		return Solution{}, fmt.Errorf("%w: got %s %v and %s %v",
			ErrNotPositive, a.Kind, a.Magnitude, b.Kind, b.Magnitude)
	}

	var frequency, resistance, capacitance *float64
	for _, q := range []quantity.Quantity{a, b} {
		mag := q.Magnitude
		switch q.Kind {
		case quantity.Frequency:
			frequency = &mag
		case quantity.Resistance:
			resistance = &mag
		case quantity.Capacitance:
			capacitance = &mag
		}
	}

	// With two distinct kinds, exactly one slot is still nil.
	switch {
	case frequency == nil:
		f := CutoffFrequency(*resistance, *capacitance)
		return Solution{
			Kind:        quantity.Frequency,
			Value:       f,
			Frequency:   f,
			Resistance:  *resistance,
			Capacitance: *capacitance,
		}, nil
	case resistance == nil:
		r := ComponentValue(*frequency, *capacitance)
		return Solution{
			Kind:        quantity.Resistance,
			Value:       r,
			Frequency:   *frequency,
			Resistance:  r,
			Capacitance: *capacitance,
		}, nil
	default:
		c := ComponentValue(*frequency, *resistance)
		return Solution{
			Kind:        quantity.Capacitance,
			Value:       c,
			Frequency:   *frequency,
			Resistance:  *resistance,
			Capacitance: c,
		}, nil
	}
}

// Formatted renders the solved value in engineering notation with its
// unit suffix, e.g. "39.8pF" or "398ohm".
func (s Solution) Formatted() string {
	return quantity.Format(quantity.RoundSig(s.Value, 3)) + s.Kind.Unit()
}

// Sentence renders the result the way the calculator reports it.
func (s Solution) Sentence() string {
	switch s.Kind {
	case quantity.Frequency:
		return fmt.Sprintf("The filter's -3dB frequency is %s.", s.Formatted())
	case quantity.Resistance:
		return fmt.Sprintf("You will need a %s resistor.", s.Formatted())
	default:
		return fmt.Sprintf("You will need a %s capacitor.", s.Formatted())
	}
}
