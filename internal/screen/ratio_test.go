package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNearestRatioExactValues(t *testing.T) {
	tests := []struct {
		name   string
		x      float64
		want   Ratio
	}{
		{"full HD", 1080.0 / 1920.0, Ratio{9, 16}},
		{"4k", 2160.0 / 3840.0, Ratio{9, 16}},
		{"classic 4:3", 768.0 / 1024.0, Ratio{3, 4}},
		{"square", 1.0, Ratio{1, 1}},
		{"ultrawide", 1080.0 / 2560.0, Ratio{27, 64}},
		{"greater than one", 16.0 / 9.0, Ratio{16, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nearestRatio(tt.x, maxAspectDenominator))
		})
	}
}

func TestNearestRatioApproximatesWithBoundedDenominator(t *testing.T) {
	// Best approximation of the golden ratio conjugate with den <= 100
	// is 55/89; the next convergent 89/144 busts the bound.
	got := nearestRatio(0.6180339887, 100)
	assert.Equal(t, Ratio{55, 89}, got)

	// With a tighter bound the smaller convergent wins
	got = nearestRatio(0.6180339887, 10)
	assert.Equal(t, Ratio{5, 8}, got)
}

func TestNearestRatioDegenerateInputs(t *testing.T) {
	assert.Equal(t, Ratio{0, 1}, nearestRatio(0, 100))
	assert.Equal(t, Ratio{0, 1}, nearestRatio(-1.5, 100))
}

func TestReduceAspectMatchesForLengthsAndPixels(t *testing.T) {
	// Physical lengths and pixel counts of the same screen must reduce
	// to the same fraction.
	fromLengths := reduceAspect(68.6, 121.9)
	fromPixels := reduceAspect(1080, 1920)
	assert.Equal(t, fromPixels, fromLengths)
	assert.Equal(t, Ratio{9, 16}, fromPixels)
}

func TestRatioHelpers(t *testing.T) {
	r := Ratio{9, 16}
	assert.InDelta(t, 0.5625, r.Float(), 1e-12)
	assert.InDelta(t, 18.35755975, r.Hypot(), 1e-6)
	assert.Equal(t, "9:16", r.String())
}
