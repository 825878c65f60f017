package screen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jeeftor/screencalc/internal/units"
)

func TestParseValueDispatchesOnIdentifier(t *testing.T) {
	v, err := ParseValue(ParamAspect, "9:16")
	require.NoError(t, err)
	assert.Equal(t, RatioValue(Ratio{9, 16}), v)

	v, err = ParseValue(ParamHeightPx, "1080")
	require.NoError(t, err)
	assert.Equal(t, CountValue(1080), v)

	v, err = ParseValue(ParamDiagonal, "55in")
	require.NoError(t, err)
	assert.InDelta(t, 139.7, v.Real, 1e-9)

	v, err = ParseValue(ParamDensity, "254dpi")
	require.NoError(t, err)
	assert.InDelta(t, 100.0, v.Real, 1e-9)
}

func TestParseValuePropagatesUnitErrors(t *testing.T) {
	_, err := ParseValue(ParamHeight, "10")
	assert.ErrorIs(t, err, units.ErrMissingUnit)

	_, err = ParseValue(ParamDensity, "300xyz")
	assert.ErrorIs(t, err, units.ErrUnrecognizedUnit)

	_, err = ParseValue(ParamPixels, "lots")
	assert.ErrorIs(t, err, units.ErrInvalidInteger)

	_, err = ParseValue(ParamAspect, "wide")
	assert.ErrorIs(t, err, units.ErrInvalidAspectSyntax)

	_, err = ParseValue(Param("bogus"), "1")
	assert.Error(t, err)
}

func TestKindIsFixedByIdentifier(t *testing.T) {
	wantKinds := map[Param]Kind{
		ParamAspect:   KindRatio,
		ParamDensity:  KindContinuous,
		ParamDiagonal: KindContinuous,
		ParamDistance: KindContinuous,
		ParamHeight:   KindContinuous,
		ParamHeightPx: KindCount,
		ParamWidth:    KindContinuous,
		ParamWidthPx:  KindCount,
		ParamPixels:   KindCount,
	}
	assert.Len(t, Params(), len(wantKinds))
	for p, want := range wantKinds {
		got, ok := KindOf(p)
		require.True(t, ok, "param %s", p)
		assert.Equal(t, want, got, "param %s", p)
	}

	assert.Equal(t, UnitLength, UnitClassOf(ParamDiagonal))
	assert.Equal(t, UnitDensity, UnitClassOf(ParamDensity))
	assert.Equal(t, UnitNone, UnitClassOf(ParamPixels))
}
