// Package units converts user-supplied strings with unit suffixes into
// normalized numeric values: centimeters for lengths, dots-per-centimeter
// for density, exact rationals for aspect ratios, plain non-negative
// integers for pixel counts.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Terminal user-facing input errors. All abort the run; none is retried.
var (
	ErrUnrecognizedUnit    = fmt.Errorf("unrecognized unit")
	ErrMissingUnit         = fmt.Errorf("missing unit")
	ErrInvalidNumber       = fmt.Errorf("invalid number")
	ErrInvalidInteger      = fmt.Errorf("invalid integer")
	ErrInvalidAspectSyntax = fmt.Errorf("invalid aspect ratio syntax")
)

// Quantity maps recognized unit suffixes to multiplicative conversion
// factors into the canonical unit. Default names the suffix applied to a
// bare number; empty means a bare number is an error.
type Quantity struct {
	Suffixes map[string]float64
	Default  string
}

// Length covers distance-valued quantities, canonical unit centimeters.
// There is no default: a bare "10" is ambiguous and rejected.
var Length = Quantity{
	Suffixes: map[string]float64{
		"cm": 1,
		"mm": 0.1,
		"m":  100,
		"in": 2.54,
	},
}

// Density covers pixel-density quantities, canonical unit
// dots-per-centimeter. Bare numbers default to dpi, the unit density is
// near-universally quoted in.
var Density = Quantity{
	Suffixes: map[string]float64{
		"dpi":  1 / 2.54,
		"dpcm": 1,
		"dpm":  0.01,
	},
	Default: "dpi",
}

// Parse converts "<number><optional unit suffix>" into the canonical
// unit. An unknown suffix fails with ErrUnrecognizedUnit; a bare number
// without a configured default fails with ErrMissingUnit.
func (q Quantity) Parse(s string) (float64, error) {
	num, suffix := splitSuffix(strings.TrimSpace(s))
	if num == "" {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidNumber, s)
	}
	if suffix == "" {
		if q.Default == "" {
			return 0, fmt.Errorf("%w: %q needs a unit suffix", ErrMissingUnit, s)
		}
		suffix = q.Default
	}
	factor, ok := q.Suffixes[suffix]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnrecognizedUnit, suffix)
	}
	return n * factor, nil
}

// splitSuffix splits the leading numeric text from the trailing unit.
// The split happens at the first non-numeric rune, so exponent forms
// like "1e3cm" surface as an unrecognized "e3cm" unit.
func splitSuffix(s string) (num, suffix string) {
	for i, r := range s {
		if (r < '0' || r > '9') && r != '.' && r != '-' && r != '+' {
			return s[:i], s[i:]
		}
	}
	return s, ""
}

// ParseCount parses a plain non-negative integer.
func ParseCount(s string) (int64, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidInteger, s)
	}
	return int64(n), nil
}

// ParseAspect parses "<int>:<int>" into an exact numerator/denominator
// pair; the first integer is the height-relative part. No reduction
// happens at parse time.
func ParseAspect(s string) (num, den int64, err error) {
	part := strings.Split(strings.TrimSpace(s), ":")
	if len(part) != 2 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAspectSyntax, s)
	}
	num, err = strconv.ParseInt(part[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAspectSyntax, s)
	}
	den, err = strconv.ParseInt(part[1], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidAspectSyntax, s)
	}
	if num <= 0 || den <= 0 {
		return 0, 0, fmt.Errorf("%w: %q must be positive", ErrInvalidAspectSyntax, s)
	}
	return num, den, nil
}
