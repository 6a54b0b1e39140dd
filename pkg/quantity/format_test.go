package quantity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{"pico", 3.98e-11, "39.8p"},
		{"nano", 2e-8, "20n"},
		{"micro", 4.7e-6, "4.7u"},
		{"milli", 0.22, "220m"},
		{"kilo", 20000, "20k"},
		{"mega", 3.3e6, "3.3M"},
		{"unit range stays bare", 39.8, "39.8"},
		{"hundreds stay bare", 470, "470"},
		{"exactly one", 1, "1"},
		{"exactly one thousand", 1000, "1000"},
		{"coefficient would hit lower bound", 0.001, "0.001"},
		{"zero", 0, "0"},
		{"above mega falls back to plain", 2e9, "2000000000"},
		{"below pico falls back to plain", 1e-13, "0.0000000000001"},
		{"negative renders plain", -39.8, "-39.8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Format(tt.value))
		})
	}
}

// Scaling 3.98e-11 to pico leaves 39.800000000000004 in binary floating
// point; the formatter must re-round so the artifact never shows.
func TestFormatReroundsAfterScaling(t *testing.T) {
	assert.Equal(t, "39.8p", Format(3.98e-11))
	assert.Equal(t, "4.7u", Format(4.7e-6))
	assert.Equal(t, "220m", Format(0.22))
}

func TestRoundSig(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		figs  int
		want  float64
	}{
		{"computed capacitance", 3.978873577297384e-11, 3, 3.98e-11},
		{"strips float artifacts", 39.800000000000004, 3, 39.8},
		{"rounds to integer", 398.456, 3, 398},
		{"rounds up", 1.006, 3, 1.01},
		{"large value", 123456, 3, 123000},
		{"small value", 0.00012345, 3, 0.000123},
		{"zero", 0, 3, 0},
		{"negative", -39.84, 3, -39.8},
		{"four figures", 3.14159, 4, 3.142},
		{"figs floor is one", 3.14159, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RoundSig(tt.value, tt.figs))
		})
	}
}
