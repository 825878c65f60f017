package screen

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAcuityFactorValue(t *testing.T) {
	// sqrt(2) / tan(one arc-minute)
	want := math.Sqrt2 / math.Tan(math.Pi/(180*60))
	assert.Equal(t, want, AcuityFactor)
	assert.Greater(t, AcuityFactor, 0.0)
}

func TestDistanceDensityRoundTrip(t *testing.T) {
	// Both directions of the acuity relation share one constant, so the
	// round trip must recover the input up to float error.
	for _, density := range []float64{1, 31.496, 118, 300, 1e6} {
		distance := AcuityFactor / density
		back := AcuityFactor / distance
		assert.InEpsilon(t, density, back, 1e-12, "density %f", density)
	}
}
