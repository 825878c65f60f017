package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternGeometry(t *testing.T) {
	img, err := Pattern(8, 6, 2)
	require.NoError(t, err)

	b := img.Bounds()
	assert.Equal(t, 8, b.Dx())
	assert.Equal(t, 6, b.Dy())

	// Border is black
	assert.EqualValues(t, 0, img.GrayAt(0, 0).Y)
	assert.EqualValues(t, 0, img.GrayAt(7, 0).Y)
	assert.EqualValues(t, 0, img.GrayAt(0, 5).Y)
	assert.EqualValues(t, 0, img.GrayAt(7, 5).Y)

	// Center crosshair is black
	assert.EqualValues(t, 0, img.GrayAt(4, 1).Y)
	assert.EqualValues(t, 0, img.GrayAt(1, 3).Y)

	// First interior checkerboard cell is white
	assert.EqualValues(t, 255, img.GrayAt(1, 1).Y)
}

func TestPatternRejectsBadDimensions(t *testing.T) {
	_, err := Pattern(0, 10, 1)
	assert.Error(t, err)

	_, err = Pattern(MaxDimension+1, 10, 1)
	assert.Error(t, err)

	_, err = Pattern(10, -3, 1)
	assert.Error(t, err)
}

func TestEncodeWritesRawPGM(t *testing.T) {
	img, err := Pattern(4, 4, 1)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, img))
	assert.True(t, strings.HasPrefix(buf.String(), "P5"), "raw PGM magic")
}

func TestPreviewEmitsRequestedGrid(t *testing.T) {
	img, err := Pattern(64, 32, 4)
	require.NoError(t, err)

	var buf bytes.Buffer
	Preview(&buf, img, 10, 5)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, 5)
}
