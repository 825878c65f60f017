package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLengthCanonicalizesToCentimeters(t *testing.T) {
	// All of these describe the same 10cm length
	tests := []struct {
		input string
		want  float64
	}{
		{"10cm", 10.0},
		{"100mm", 10.0},
		{"0.1m", 10.0},
		{"3.937in", 10.0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Length.Parse(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 0.001)
		})
	}
}

func TestLengthWithoutUnitIsRejected(t *testing.T) {
	_, err := Length.Parse("10")
	require.ErrorIs(t, err, ErrMissingUnit)
}

func TestUnknownSuffixIsRejected(t *testing.T) {
	_, err := Density.Parse("300xyz")
	require.ErrorIs(t, err, ErrUnrecognizedUnit)

	_, err = Length.Parse("10ft")
	require.ErrorIs(t, err, ErrUnrecognizedUnit)
}

func TestMalformedNumberIsRejected(t *testing.T) {
	for _, input := range []string{"", "cm", "--3cm", "1.2.3cm"} {
		_, err := Length.Parse(input)
		assert.ErrorIs(t, err, ErrInvalidNumber, "input %q", input)
	}
}

func TestExponentSyntaxReadsAsUnknownUnit(t *testing.T) {
	// Exponent forms are unsupported: the suffix split happens at the
	// first non-numeric rune, so "1e3cm" parses as number 1 with unit
	// "e3cm" and fails on the unit, not the number.
	_, err := Length.Parse("1e3cm")
	assert.ErrorIs(t, err, ErrUnrecognizedUnit)
}

func TestDensityDefaultsToDPI(t *testing.T) {
	bare, err := Density.Parse("300")
	require.NoError(t, err)
	explicit, err := Density.Parse("300dpi")
	require.NoError(t, err)

	assert.Equal(t, explicit, bare)
	assert.InDelta(t, 300/2.54, bare, 1e-9)
}

func TestDensitySuffixes(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"118dpcm", 118.0},
		{"100dpm", 1.0},
		{"254dpi", 100.0},
	}

	for _, tt := range tests {
		got, err := Density.Parse(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.InDelta(t, tt.want, got, 1e-9, "input %q", tt.input)
	}
}

func TestParseAspect(t *testing.T) {
	num, den, err := ParseAspect("9:16")
	require.NoError(t, err)
	assert.Equal(t, int64(9), num)
	assert.Equal(t, int64(16), den)

	// No reduction at parse time
	num, den, err = ParseAspect("1080:1920")
	require.NoError(t, err)
	assert.Equal(t, int64(1080), num)
	assert.Equal(t, int64(1920), den)

	for _, input := range []string{"16", "a:b", "16:9:4", "0:9", "-3:4", ""} {
		_, _, err := ParseAspect(input)
		assert.ErrorIs(t, err, ErrInvalidAspectSyntax, "input %q", input)
	}
}

func TestParseCount(t *testing.T) {
	n, err := ParseCount("2073600")
	require.NoError(t, err)
	assert.Equal(t, int64(2073600), n)

	for _, input := range []string{"-5", "12.5", "abc", ""} {
		_, err := ParseCount(input)
		assert.ErrorIs(t, err, ErrInvalidInteger, "input %q", input)
	}
}
