package screen

import "math"

// Rule derives its owning parameter from the prerequisites in Needs.
// Derive receives the prerequisites' resolved values in Needs order.
// Guard, when set, reports whether the gathered values are usable; a
// false result makes the rule unsatisfiable for this state, it is not an
// error.
type Rule struct {
	Needs  []Param
	Guard  func(args []Value) bool
	Derive func(args []Value) Value
}

// nonZeroDivisor guards the integer-division rules: splitting a pixel
// total by a zero dimension is unsatisfiable, and unlike their float
// analogues (which degrade to Inf) integer division would panic.
func nonZeroDivisor(a []Value) bool {
	return a[1].Count != 0
}

type entry struct {
	Param Param
	Kind  Kind
	Units UnitClass
	Rules []Rule
}

// registry is the full derivation table. Order matters twice and is
// CRITICAL: the solver enumerates parameters in this slice order and
// tries each parameter's rules in their declared order, first satisfiable
// rule wins. Distinct satisfiable rules for the same target can yield
// numerically different results, so neither list may ever be re-sorted.
var registry = []entry{
	{
		Param: ParamAspect, Kind: KindRatio, Units: UnitNone,
		Rules: []Rule{
			{Needs: []Param{ParamHeight, ParamWidth}, Derive: func(a []Value) Value {
				return RatioValue(reduceAspect(a[0].Real, a[1].Real))
			}},
			{Needs: []Param{ParamHeightPx, ParamWidthPx}, Derive: func(a []Value) Value {
				return RatioValue(reduceAspect(float64(a[0].Count), float64(a[1].Count)))
			}},
		},
	},
	{
		Param: ParamDensity, Kind: KindContinuous, Units: UnitDensity,
		Rules: []Rule{
			{Needs: []Param{ParamDistance}, Derive: func(a []Value) Value {
				return ContinuousValue(AcuityFactor / a[0].Real)
			}},
			{Needs: []Param{ParamHeight, ParamHeightPx}, Derive: func(a []Value) Value {
				return ContinuousValue(float64(a[1].Count) / a[0].Real)
			}},
			{Needs: []Param{ParamWidth, ParamWidthPx}, Derive: func(a []Value) Value {
				return ContinuousValue(float64(a[1].Count) / a[0].Real)
			}},
		},
	},
	{
		Param: ParamDiagonal, Kind: KindContinuous, Units: UnitLength,
		Rules: []Rule{
			{Needs: []Param{ParamAspect, ParamHeight}, Derive: func(a []Value) Value {
				r := a[0].Ratio
				return ContinuousValue(a[1].Real / float64(r.Num) * r.Hypot())
			}},
			{Needs: []Param{ParamAspect, ParamWidth}, Derive: func(a []Value) Value {
				r := a[0].Ratio
				return ContinuousValue(a[1].Real / float64(r.Den) * r.Hypot())
			}},
			{Needs: []Param{ParamHeight, ParamWidth}, Derive: func(a []Value) Value {
				return ContinuousValue(math.Hypot(a[0].Real, a[1].Real))
			}},
		},
	},
	{
		Param: ParamDistance, Kind: KindContinuous, Units: UnitLength,
		Rules: []Rule{
			{Needs: []Param{ParamDensity}, Derive: func(a []Value) Value {
				return ContinuousValue(AcuityFactor / a[0].Real)
			}},
		},
	},
	{
		Param: ParamHeight, Kind: KindContinuous, Units: UnitLength,
		Rules: []Rule{
			{Needs: []Param{ParamAspect, ParamDiagonal}, Derive: func(a []Value) Value {
				r := a[0].Ratio
				return ContinuousValue(a[1].Real / r.Hypot() * float64(r.Num))
			}},
			{Needs: []Param{ParamAspect, ParamWidth}, Derive: func(a []Value) Value {
				r := a[0].Ratio
				return ContinuousValue(a[1].Real / float64(r.Den) * float64(r.Num))
			}},
			{Needs: []Param{ParamDensity, ParamHeightPx}, Derive: func(a []Value) Value {
				return ContinuousValue(float64(a[1].Count) / a[0].Real)
			}},
			{Needs: []Param{ParamDiagonal, ParamWidth}, Derive: func(a []Value) Value {
				return ContinuousValue(math.Sqrt(a[0].Real*a[0].Real - a[1].Real*a[1].Real))
			}},
		},
	},
	{
		Param: ParamHeightPx, Kind: KindCount, Units: UnitNone,
		Rules: []Rule{
			{Needs: []Param{ParamAspect, ParamPixels}, Derive: func(a []Value) Value {
				return CountValue(int64(math.Round(math.Sqrt(float64(a[1].Count) * a[0].Ratio.Float()))))
			}},
			{Needs: []Param{ParamAspect, ParamWidthPx}, Derive: func(a []Value) Value {
				r := a[0].Ratio
				return CountValue(int64(math.Round(float64(a[1].Count) / float64(r.Den) * float64(r.Num))))
			}},
			{Needs: []Param{ParamDensity, ParamHeight}, Derive: func(a []Value) Value {
				return CountValue(int64(math.Floor(a[1].Real * a[0].Real)))
			}},
			{Needs: []Param{ParamPixels, ParamWidthPx}, Guard: nonZeroDivisor, Derive: func(a []Value) Value {
				return CountValue(a[0].Count / a[1].Count)
			}},
		},
	},
	{
		Param: ParamWidth, Kind: KindContinuous, Units: UnitLength,
		Rules: []Rule{
			{Needs: []Param{ParamAspect, ParamDiagonal}, Derive: func(a []Value) Value {
				r := a[0].Ratio
				return ContinuousValue(a[1].Real / r.Hypot() * float64(r.Den))
			}},
			{Needs: []Param{ParamAspect, ParamHeight}, Derive: func(a []Value) Value {
				r := a[0].Ratio
				return ContinuousValue(a[1].Real / float64(r.Num) * float64(r.Den))
			}},
			{Needs: []Param{ParamDensity, ParamWidthPx}, Derive: func(a []Value) Value {
				return ContinuousValue(float64(a[1].Count) / a[0].Real)
			}},
			{Needs: []Param{ParamDiagonal, ParamHeight}, Derive: func(a []Value) Value {
				return ContinuousValue(math.Sqrt(a[0].Real*a[0].Real - a[1].Real*a[1].Real))
			}},
		},
	},
	{
		Param: ParamWidthPx, Kind: KindCount, Units: UnitNone,
		Rules: []Rule{
			{Needs: []Param{ParamAspect, ParamPixels}, Derive: func(a []Value) Value {
				r := a[0].Ratio
				return CountValue(int64(math.Round(math.Sqrt(float64(a[1].Count) * float64(r.Den) / float64(r.Num)))))
			}},
			{Needs: []Param{ParamAspect, ParamHeightPx}, Derive: func(a []Value) Value {
				r := a[0].Ratio
				return CountValue(int64(math.Round(float64(a[1].Count) / float64(r.Num) * float64(r.Den))))
			}},
			{Needs: []Param{ParamDensity, ParamWidth}, Derive: func(a []Value) Value {
				return CountValue(int64(math.Floor(a[1].Real * a[0].Real)))
			}},
			{Needs: []Param{ParamPixels, ParamHeightPx}, Guard: nonZeroDivisor, Derive: func(a []Value) Value {
				return CountValue(a[0].Count / a[1].Count)
			}},
		},
	},
	{
		Param: ParamPixels, Kind: KindCount, Units: UnitNone,
		Rules: []Rule{
			{Needs: []Param{ParamHeightPx, ParamWidthPx}, Derive: func(a []Value) Value {
				return CountValue(a[0].Count * a[1].Count)
			}},
		},
	},
}
