package screen

import "fmt"

// Param identifies one of the nine screen parameters. The set is closed;
// every Param used anywhere in the package appears in the registry table.
type Param string

const (
	ParamAspect   Param = "aspect"
	ParamDensity  Param = "density"
	ParamDiagonal Param = "diagonal"
	ParamDistance Param = "distance"
	ParamHeight   Param = "height"
	ParamHeightPx Param = "heightpx"
	ParamWidth    Param = "width"
	ParamWidthPx  Param = "widthpx"
	ParamPixels   Param = "pixels"
)

// Kind is the value kind of a parameter. A parameter's kind is fixed by
// its identifier and never changes.
type Kind int

const (
	// KindRatio is an exact reduced fraction, used only for aspect.
	KindRatio Kind = iota
	// KindContinuous is a float in the canonical unit: centimeters for
	// diagonal/height/width/distance, dots-per-centimeter for density.
	KindContinuous
	// KindCount is a non-negative integer pixel quantity.
	KindCount
)

// UnitClass tells the reporter which secondary unit family a parameter
// should be displayed with. The solver never reads it.
type UnitClass int

const (
	UnitNone UnitClass = iota
	UnitLength
	UnitDensity
)

// Value is a tagged union over the three kinds. Exactly one of the
// payload fields is meaningful, selected by Kind.
type Value struct {
	Kind  Kind
	Ratio Ratio
	Real  float64
	Count int64
}

// RatioValue wraps a ratio as a Value.
func RatioValue(r Ratio) Value { return Value{Kind: KindRatio, Ratio: r} }

// ContinuousValue wraps a canonical-unit float as a Value.
func ContinuousValue(f float64) Value { return Value{Kind: KindContinuous, Real: f} }

// CountValue wraps a pixel count as a Value.
func CountValue(n int64) Value { return Value{Kind: KindCount, Count: n} }

// State maps every parameter to either "unknown" (absent) or a resolved
// value of the correct kind. Resolution is monotonic: a resolved value is
// never retracted or overwritten.
type State struct {
	vals map[Param]Value
}

// NewState returns a state with every parameter unknown.
func NewState() *State {
	return &State{vals: make(map[Param]Value, len(registry))}
}

// Set records a resolved value for p. It fails on unknown identifiers,
// kind mismatches, and attempts to overwrite an already-resolved value.
func (s *State) Set(p Param, v Value) error {
	e, ok := lookup(p)
	if !ok {
		return fmt.Errorf("unknown parameter %q", p)
	}
	if v.Kind != e.Kind {
		return fmt.Errorf("parameter %q: wrong value kind", p)
	}
	if _, dup := s.vals[p]; dup {
		return fmt.Errorf("parameter %q already resolved", p)
	}
	s.vals[p] = v
	return nil
}

// Value returns p's resolved value, if any.
func (s *State) Value(p Param) (Value, bool) {
	v, ok := s.vals[p]
	return v, ok
}

// Resolved reports whether p has a value.
func (s *State) Resolved(p Param) bool {
	_, ok := s.vals[p]
	return ok
}

// Unresolved returns the still-unknown parameters in registry order.
func (s *State) Unresolved() []Param {
	var out []Param
	for _, e := range registry {
		if !s.Resolved(e.Param) {
			out = append(out, e.Param)
		}
	}
	return out
}

// gather collects the values of needs in order, or reports that at least
// one is still unknown.
func (s *State) gather(needs []Param) ([]Value, bool) {
	args := make([]Value, len(needs))
	for i, p := range needs {
		v, ok := s.vals[p]
		if !ok {
			return nil, false
		}
		args[i] = v
	}
	return args, true
}

// Params returns all parameter identifiers in registry (declaration) order.
func Params() []Param {
	out := make([]Param, len(registry))
	for i, e := range registry {
		out[i] = e.Param
	}
	return out
}

// KindOf returns the value kind fixed for p.
func KindOf(p Param) (Kind, bool) {
	e, ok := lookup(p)
	if !ok {
		return 0, false
	}
	return e.Kind, true
}

// UnitClassOf returns the reporter unit-class metadata for p.
func UnitClassOf(p Param) UnitClass {
	e, ok := lookup(p)
	if !ok {
		return UnitNone
	}
	return e.Units
}

func lookup(p Param) (*entry, bool) {
	for i := range registry {
		if registry[i].Param == p {
			return &registry[i], true
		}
	}
	return nil, false
}
