package screen

import (
	"fmt"

	"github.com/jeeftor/screencalc/internal/units"
)

// ParseValue is the parsing boundary between raw CLI strings and typed
// parameter values: one typed parse per identifier, dispatched on the
// identifier's fixed kind and unit class.
func ParseValue(p Param, raw string) (Value, error) {
	e, ok := lookup(p)
	if !ok {
		return Value{}, fmt.Errorf("unknown parameter %q", p)
	}
	switch e.Kind {
	case KindRatio:
		num, den, err := units.ParseAspect(raw)
		if err != nil {
			return Value{}, err
		}
		return RatioValue(Ratio{Num: num, Den: den}), nil
	case KindCount:
		n, err := units.ParseCount(raw)
		if err != nil {
			return Value{}, err
		}
		return CountValue(n), nil
	default:
		q := units.Length
		if e.Units == UnitDensity {
			q = units.Density
		}
		f, err := q.Parse(raw)
		if err != nil {
			return Value{}, err
		}
		return ContinuousValue(f), nil
	}
}
