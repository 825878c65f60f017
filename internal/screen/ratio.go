package screen

import (
	"fmt"
	"math"
)

// maxAspectDenominator bounds the denominator of reduced aspect ratios.
const maxAspectDenominator = 100

// Ratio is an exact fraction. Num is the height-relative part and Den the
// width-relative part, so a 1920x1080 screen carries Ratio{9, 16}.
type Ratio struct {
	Num int64
	Den int64
}

// Float returns the ratio as height divided by width.
func (r Ratio) Float() float64 {
	return float64(r.Num) / float64(r.Den)
}

// Hypot returns the diagonal length of the (Num, Den) unit box.
func (r Ratio) Hypot() float64 {
	return math.Hypot(float64(r.Num), float64(r.Den))
}

func (r Ratio) String() string {
	return fmt.Sprintf("%d:%d", r.Num, r.Den)
}

// nearestRatio reduces x to the closest fraction whose denominator does
// not exceed maxDen, walking the Stern-Brocot tree. The walk keeps a
// bracket [lo, hi] around x and refines it by mediants until the next
// mediant would bust the denominator bound; the closer endpoint wins.
// Equidistant endpoints resolve to lo, which keeps the result
// deterministic.
func nearestRatio(x float64, maxDen int64) Ratio {
	if maxDen < 1 {
		maxDen = 1
	}
	if x <= 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return Ratio{Num: 0, Den: 1}
	}

	loN, loD := int64(math.Floor(x)), int64(1)
	hiN, hiD := loN+1, int64(1)
	for {
		medN, medD := loN+hiN, loD+hiD
		if medD > maxDen {
			break
		}
		if x < float64(medN)/float64(medD) {
			hiN, hiD = medN, medD
		} else {
			loN, loD = medN, medD
		}
	}

	if math.Abs(x-float64(loN)/float64(loD)) <= math.Abs(float64(hiN)/float64(hiD)-x) {
		return Ratio{Num: loN, Den: loD}
	}
	return Ratio{Num: hiN, Den: hiD}
}

// reduceAspect reduces a height/width pair to the nearest bounded-
// denominator fraction. Both rules deriving aspect funnel through here so
// physical lengths and pixel counts reduce identically.
func reduceAspect(height, width float64) Ratio {
	return nearestRatio(height/width, maxAspectDenominator)
}
