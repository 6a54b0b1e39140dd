package rcfilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RMahshie/cutoff/pkg/quantity"
)

func TestCutoffFrequency(t *testing.T) {
	// 200kΩ and 20nF put the corner just under 40Hz.
	assert.InDelta(t, 39.79, CutoffFrequency(200000, 2e-8), 0.01)
}

// Solving for a component from the cutoff it produced must return the
// component we started with.
func TestComponentValueInvertsCutoff(t *testing.T) {
	pairs := []struct{ r, c float64 }{
		{200000, 2e-8},
		{10000, 1e-6},
		{470, 4.7e-9},
		{1e6, 1e-12},
	}

	for _, p := range pairs {
		f := CutoffFrequency(p.r, p.c)
		assert.InEpsilon(t, p.r, ComponentValue(f, p.c), 1e-9)
		assert.InEpsilon(t, p.c, ComponentValue(f, p.r), 1e-9)
	}
}

func TestSolve(t *testing.T) {
	tests := []struct {
		name     string
		a, b     quantity.Quantity
		wantKind quantity.Kind
		wantF    float64
		wantR    float64
		wantC    float64
	}{
		{
			name:     "solves capacitance",
			a:        quantity.Quantity{Kind: quantity.Resistance, Magnitude: 200000},
			b:        quantity.Quantity{Kind: quantity.Frequency, Magnitude: 20000},
			wantKind: quantity.Capacitance,
			wantF:    20000,
			wantR:    200000,
			wantC:    3.9789e-11,
		},
		{
			name:     "solves resistance",
			a:        quantity.Quantity{Kind: quantity.Frequency, Magnitude: 20000},
			b:        quantity.Quantity{Kind: quantity.Capacitance, Magnitude: 2e-8},
			wantKind: quantity.Resistance,
			wantF:    20000,
			wantR:    397.89,
			wantC:    2e-8,
		},
		{
			name:     "solves frequency",
			a:        quantity.Quantity{Kind: quantity.Resistance, Magnitude: 200000},
			b:        quantity.Quantity{Kind: quantity.Capacitance, Magnitude: 2e-8},
			wantKind: quantity.Frequency,
			wantF:    39.789,
			wantR:    200000,
			wantC:    2e-8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol, err := Solve(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, sol.Kind)
			assert.InEpsilon(t, tt.wantF, sol.Frequency, 1e-4)
			assert.InEpsilon(t, tt.wantR, sol.Resistance, 1e-4)
			assert.InEpsilon(t, tt.wantC, sol.Capacitance, 1e-4)

			switch sol.Kind {
			case quantity.Frequency:
				assert.Equal(t, sol.Frequency, sol.Value)
			case quantity.Resistance:
				assert.Equal(t, sol.Resistance, sol.Value)
			case quantity.Capacitance:
				assert.Equal(t, sol.Capacitance, sol.Value)
			}
		})
	}
}

func TestSolveArgumentOrderIrrelevant(t *testing.T) {
	r := quantity.Quantity{Kind: quantity.Resistance, Magnitude: 200000}
	f := quantity.Quantity{Kind: quantity.Frequency, Magnitude: 20000}

	first, err := Solve(r, f)
	require.NoError(t, err)
	second, err := Solve(f, r)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSolveRejectsDuplicateKind(t *testing.T) {
	_, err := Solve(
		quantity.Quantity{Kind: quantity.Resistance, Magnitude: 100},
		quantity.Quantity{Kind: quantity.Resistance, Magnitude: 200},
	)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOverSpecified)
	assert.Contains(t, err.Error(), "resistance supplied twice")
}

func TestSolveRejectsNonPositive(t *testing.T) {
	tests := []struct {
		name string
		a, b quantity.Quantity
	}{
		{
			name: "zero resistance",
			a:    quantity.Quantity{Kind: quantity.Resistance, Magnitude: 0},
			b:    quantity.Quantity{Kind: quantity.Frequency, Magnitude: 20000},
		},
		{
			name: "negative frequency",
			a:    quantity.Quantity{Kind: quantity.Frequency, Magnitude: -50},
			b:    quantity.Quantity{Kind: quantity.Capacitance, Magnitude: 2e-8},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Solve(tt.a, tt.b)
			assert.ErrorIs(t, err, ErrNotPositive)
		})
	}
}

func TestSolutionSentence(t *testing.T) {
	tests := []struct {
		name          string
		a, b          quantity.Quantity
		wantFormatted string
		wantSentence  string
	}{
		{
			name:          "capacitance sentence",
			a:             quantity.Quantity{Kind: quantity.Resistance, Magnitude: 200000},
			b:             quantity.Quantity{Kind: quantity.Frequency, Magnitude: 20000},
			wantFormatted: "39.8pF",
			wantSentence:  "You will need a 39.8pF capacitor.",
		},
		{
			name:          "resistance sentence",
			a:             quantity.Quantity{Kind: quantity.Frequency, Magnitude: 20000},
			b:             quantity.Quantity{Kind: quantity.Capacitance, Magnitude: 2e-8},
			wantFormatted: "398ohm",
			wantSentence:  "You will need a 398ohm resistor.",
		},
		{
			name:          "frequency sentence",
			a:             quantity.Quantity{Kind: quantity.Resistance, Magnitude: 200000},
			b:             quantity.Quantity{Kind: quantity.Capacitance, Magnitude: 2e-8},
			wantFormatted: "39.8Hz",
			wantSentence:  "The filter's -3dB frequency is 39.8Hz.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol, err := Solve(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFormatted, sol.Formatted())
			assert.Equal(t, tt.wantSentence, sol.Sentence())
		})
	}
}

func TestResponseCurve(t *testing.T) {
	fc := CutoffFrequency(200000, 2e-8)
	curve := ResponseCurve(200000, 2e-8, fc/100, fc*100, 41)
	require.Len(t, curve, 41)

	assert.InEpsilon(t, fc/100, curve[0].Frequency, 1e-9)
	assert.InEpsilon(t, fc*100, curve[40].Frequency, 1e-9)

	// The log midpoint is the corner itself: -3.01dB, -45°.
	mid := curve[20]
	assert.InEpsilon(t, fc, mid.Frequency, 1e-9)
	assert.InDelta(t, -3.01, mid.Magnitude, 0.01)
	assert.InDelta(t, -45, mid.Phase, 0.01)

	for i := 1; i < len(curve); i++ {
		assert.Less(t, curve[i].Magnitude, curve[i-1].Magnitude)
		assert.Less(t, curve[i].Phase, curve[i-1].Phase)
	}
}

func TestResponseCurveRejectsBadInput(t *testing.T) {
	assert.Nil(t, ResponseCurve(0, 2e-8, 1, 100, 10))
	assert.Nil(t, ResponseCurve(200000, 0, 1, 100, 10))
	assert.Nil(t, ResponseCurve(200000, 2e-8, 0, 100, 10))
	assert.Nil(t, ResponseCurve(200000, 2e-8, 100, 100, 10))
	assert.Nil(t, ResponseCurve(200000, 2e-8, 1, 100, 1))
}
