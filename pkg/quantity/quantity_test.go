package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantKind Kind
		wantMag  float64
	}{
		{"kilo-ohm shorthand", "200ko", Resistance, 200000},
		{"kilohertz", "20kHz", Frequency, 20000},
		{"nanofarad", "20nf", Capacitance, 2e-8},
		{"spelled out ohms", "200kohms", Resistance, 200000},
		{"spelled out hertz", "440hertz", Frequency, 440},
		{"spelled out farads", "220pfarads", Capacitance, 2.2e-10},
		{"uppercase unit", "200kOHM", Resistance, 200000},
		{"mega prefix", "1Mo", Resistance, 1e6},
		{"milli prefix", "1mo", Resistance, 1e-3},
		{"micro farad", "4.7uF", Capacitance, 4.7e-6},
		{"micro sign folds to u", "4.7µF", Capacitance, 4.7e-6},
		{"greek mu folds to u", "10μF", Capacitance, 1e-5},
		{"whitespace ignored", "  20 k Hz ", Frequency, 20000},
		{"no prefix", "470o", Resistance, 470},
		{"exponent notation", "1e3hz", Frequency, 1000},
		{"text after unit ignored", "50 ohm resistor", Resistance, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, q.Kind)
			assert.InEpsilon(t, tt.wantMag, q.Magnitude, 1e-12)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"uppercase K is not kilo", "20KHZ", ErrUnparsableValue},
		{"unknown unit letter", "100x", ErrUnitNotRecognized},
		{"digits only", "100", ErrMissingUnits},
		{"single character", "5", ErrMissingUnits},
		{"empty", "", ErrMissingUnits},
		{"whitespace only", "   ", ErrMissingUnits},
		{"prefix without number", "ko", ErrUnparsableValue},
		{"unit without number", "hz", ErrUnparsableValue},
		{"letters before unit", "abco", ErrUnparsableValue},
		{"double decimal point", "1..2o", ErrUnparsableValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "invalid argument")
		})
	}
}

func TestParseMagnitude(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  float64
	}{
		{"kilo", "200k", 200000},
		{"nano", "20n", 2e-8},
		{"pico", "39.8p", 3.98e-11},
		{"mega", "1M", 1e6},
		{"milli", "1m", 1e-3},
		{"micro", "2.2u", 2.2e-6},
		{"plain integer", "470", 470},
		{"plain decimal", "3.3", 3.3},
		{"exponent form", "1e3", 1000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseMagnitude(tt.input)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-12)
		})
	}
}

func TestParseMagnitudeErrors(t *testing.T) {
	for _, input := range []string{"", "20K", "x", "12q", "k"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseMagnitude(input)
			assert.ErrorIs(t, err, ErrUnparsableValue)
		})
	}
}

// Formatting a value and resolving the prefix back must reconstruct the
// original within 3-significant-figure tolerance.
func TestPrefixSymmetry(t *testing.T) {
	values := []float64{3.98e-11, 2e-8, 4.7e-6, 0.001, 0.22, 1.5, 47, 470, 20000, 200000, 3.3e6}

	for _, v := range values {
		formatted := Format(RoundSig(v, 3))
		back, err := ParseMagnitude(formatted)
		require.NoError(t, err, "formatted %q", formatted)
		assert.InEpsilon(t, v, back, 5e-3, "via %q", formatted)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "frequency", Frequency.String())
	assert.Equal(t, "resistance", Resistance.String())
	assert.Equal(t, "capacitance", Capacitance.String())
}

func TestQuantityString(t *testing.T) {
	assert.Equal(t, "200kohm", Quantity{Kind: Resistance, Magnitude: 200000}.String())
	assert.Equal(t, "20nF", Quantity{Kind: Capacitance, Magnitude: 2e-8}.String())
	assert.Equal(t, "39.8Hz", Quantity{Kind: Frequency, Magnitude: 39.8}.String())
}
