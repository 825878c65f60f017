package screen

import "math"

// pixelAngle is one arc-minute in radians, the smallest angle between
// adjacent pixels a typical human eye can still resolve.
const pixelAngle = math.Pi / (180 * 60)

// AcuityFactor converts between viewing distance and pixel density:
// distance = AcuityFactor / density and density = AcuityFactor / distance.
// The sqrt(2) accounts for diagonal pixel spacing being the binding
// constraint rather than axis-aligned spacing. Both directions of the
// relation must use this one constant so the round trip recovers the
// original value up to float error.
var AcuityFactor = math.Sqrt2 / math.Tan(pixelAngle)
