// Package quantity parses and formats electrical quantities written in
// engineering notation, such as "200ko", "4.7uF" or "20kHz".
//
// A token is a number, an optional metric prefix and a unit suffix. Units
// match case-insensitively and may be spelled out ("ohms", "hertz",
// "farads"); prefix symbols match exactly, so mega ("M") and milli ("m")
// stay distinct and "K" is not accepted for kilo.
package quantity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Parse failures. Errors returned by Parse and ParseMagnitude wrap one of
// these together with the offending input.
var (
	ErrUnitNotRecognized = errors.New("unit not recognized")
	ErrMissingUnits      = errors.New("missing units")
	ErrUnparsableValue   = errors.New("unable to parse value")
)

// Kind identifies which electrical quantity a value represents.
type Kind int

const (
	Frequency Kind = iota
	Resistance
	Capacitance
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Frequency:
		return "frequency"
	case Resistance:
		return "resistance"
	case Capacitance:
		return "capacitance"
	}
	return "unknown"
}

// ParseKind maps a kind name produced by String back to its Kind.
func ParseKind(name string) (Kind, bool) {
	switch name {
	case "frequency":
		return Frequency, true
	case "resistance":
		return Resistance, true
	case "capacitance":
		return Capacitance, true
	}
	return 0, false
}

// Unit returns the display unit for the kind: "Hz", "ohm" or "F".
func (k Kind) Unit() string {
	switch k {
	case Frequency:
		return "Hz"
	case Resistance:
		return "ohm"
	case Capacitance:
		return "F"
	}
	return ""
}

// Quantity is a parsed physical value. Magnitude is always in base SI
// units (Hz, ohms, farads); any metric prefix has been folded in.
type Quantity struct {
	Kind      Kind
	Magnitude float64
}

// String renders the quantity in engineering notation with its unit.
func (q Quantity) String() string {
	return Format(q.Magnitude) + q.Kind.Unit()
}

// prefixFactors maps metric prefix symbols to scale factors. Lookup is
// case-sensitive: "M" is mega, "m" is milli.
var prefixFactors = map[byte]float64{
	'p': 1e-12,
	'n': 1e-9,
	'u': 1e-6,
	'm': 1e-3,
	'k': 1e3,
	'M': 1e6,
}

// Parse converts a raw token such as "200ko", "4.7uF" or "20 k Hz" into a
// Quantity. Whitespace anywhere in the token is ignored, micro signs fold
// to "u", and anything after the unit letter is ignored, so "0.1 ufarads"
// and "50 ohm resistor" both parse.
func Parse(raw string) (Quantity, error) {
	s := normalize(raw)
	if len(s) < 2 {
		return Quantity{}, fmt.Errorf("invalid argument %q: %w", raw, ErrMissingUnits)
	}

	kind, num, err := splitUnit(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid argument %q: %w", raw, err)
	}

	mag, err := ParseMagnitude(num)
	if err != nil {
		return Quantity{}, fmt.Errorf("invalid argument %q: %w", raw, err)
	}

	return Quantity{Kind: kind, Magnitude: mag}, nil
}

// ParseMagnitude resolves a unit-less token of the form
// [number][prefix-char] to its value in base units: "200k" is 200000,
// "20n" is 2e-8 and "1e3" is 1000. Prefix symbols are case-sensitive.
func ParseMagnitude(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty numeric portion", ErrUnparsableValue)
	}

	last := s[len(s)-1]
	if factor, ok := prefixFactors[last]; ok {
		n, err := strconv.ParseFloat(s[:len(s)-1], 64)
		if err != nil {
			return 0, fmt.Errorf("%w %q", ErrUnparsableValue, s)
		}
		return n * factor, nil
	}

	if isDigit(last) || last == '.' {
		n, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("%w %q", ErrUnparsableValue, s)
		}
		return n, nil
	}

	return 0, fmt.Errorf("%w %q: unknown prefix %q", ErrUnparsableValue, s, string(last))
}

// normalize strips all whitespace and folds the micro sign and Greek mu
// to "u" so values pasted from datasheets ("4.7 µF") parse cleanly.
func normalize(raw string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsSpace(r):
			return -1
		case r == 'µ' || r == 'μ':
			return 'u'
		}
		return r
	}, raw)
}

// splitUnit locates the unit suffix and returns its kind along with the
// numeric portion preceding it. The scan is case-insensitive and checks
// resistance before frequency before capacitance, so "ohms" is resistance
// even though it also contains an "h", and "farads" still matches on its
// leading "f".
func splitUnit(s string) (Kind, string, error) {
	if i := strings.IndexAny(s, "oO"); i >= 0 {
		return Resistance, s[:i], nil
	}
	if i := strings.IndexAny(s, "hH"); i >= 0 {
		return Frequency, s[:i], nil
	}
	if i := strings.IndexAny(s, "fF"); i >= 0 {
		return Capacitance, s[:i], nil
	}
	if isDigit(s[len(s)-1]) {
		return 0, "", ErrMissingUnits
	}
	return 0, "", ErrUnitNotRecognized
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
