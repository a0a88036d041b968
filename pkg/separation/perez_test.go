package separation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestPerezDirect(t *testing.T) {
	th := []float64{1.2, 1.8, 2.1, 1.9}
	altitude := []float64{20, 35, 45, 38}
	in0 := repeat(4.8, len(th))

	tests := []struct {
		name     string
		th       []float64
		dewPoint []float64
		expected []float64
	}{
		{
			name:     "with dew point",
			th:       th,
			dewPoint: repeat(10, len(th)),
			expected: []float64{2.0639708091479054, 1.9626088954315675, 1.5901348778611837, 1.9760471333678162},
		},
		{
			name:     "missing dew point",
			th:       th,
			dewPoint: repeat(math.NaN(), len(th)),
			expected: []float64{2.1030499791767796, 1.9703861703688257, 1.6679155707856155, 2.0727045411289855},
		},
		{
			name:     "no dew point column",
			th:       th,
			dewPoint: nil,
			expected: []float64{2.1030499791767796, 1.9703861703688257, 1.6679155707856155, 2.0727045411289855},
		},
		{
			name:     "missing global irradiance",
			th:       []float64{1.2, math.NaN(), 2.1, 1.9},
			dewPoint: repeat(10, len(th)),
			expected: []float64{2.4446701632516445, math.NaN(), 1.5901348778611837, 1.9760471333678162},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dn := PerezDirect(tt.th, altitude, tt.dewPoint, 120, in0)
			require.Len(t, dn, len(tt.expected))

			for i := range tt.expected {
				if IsMissing(tt.expected[i]) {
					assert.True(t, IsMissing(dn[i]), "hour %d", i)
					continue
				}
				assert.InDelta(t, tt.expected[i], dn[i], 1e-9, "hour %d", i)
			}
		})
	}
}

func TestPerezDirectNoBeam(t *testing.T) {
	t.Run("zero global irradiance", func(t *testing.T) {
		dn := PerezDirect([]float64{0, 0, 0}, []float64{10, 20, 30}, repeat(5, 3), 0, repeat(4.8, 3))
		assert.Equal(t, []float64{0, 0, 0}, dn)
	})

	t.Run("sun below horizon", func(t *testing.T) {
		dn := PerezDirect([]float64{1.0, 1.5, 1.0}, []float64{10, -1, 30}, repeat(5, 3), 0, repeat(4.8, 3))
		require.Len(t, dn, 3)
		assert.Zero(t, dn[0])
		assert.Zero(t, dn[1])
		assert.InDelta(t, 0.4038947752526744, dn[2], 1e-9)
	})

	t.Run("around sunrise", func(t *testing.T) {
		dn := PerezDirect([]float64{0.05, 0.4, 1.0}, []float64{-3, 4, 12}, repeat(20, 3), 0, repeat(4.9, 3))
		require.Len(t, dn, 3)
		assert.Zero(t, dn[0])
		assert.Zero(t, dn[1])
		assert.InDelta(t, 1.0448403750511421, dn[2], 1e-9)
	})
}

func TestPerezCoefficientTable(t *testing.T) {
	assert.Len(t, perezCoefficients, perezTableSize)
	assert.Equal(t, clearnessBins*zenithBins*variabilityBins*moistureBins, perezTableSize)

	assert.Equal(t, 0.38523, perezCoefficient(0, 0, 0, 0))
	assert.Equal(t, 0.79439, perezCoefficient(5, 5, 6, 4))
	assert.Equal(t, 0.88188, perezCoefficient(3, 2, 4, 1))
}

func TestDigitize(t *testing.T) {
	tests := []struct {
		name     string
		x        float64
		expected int
	}{
		{name: "below first threshold", x: 0.001, expected: 0},
		{name: "small change", x: 0.02543524509559203, expected: 1},
		{name: "on a threshold", x: 0.035, expected: 2},
		{name: "beyond last threshold", x: 0.9, expected: 5},
		{name: "missing", x: math.NaN(), expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, digitize(tt.x, variabilityThresholds))
		})
	}
}
