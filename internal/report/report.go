// Package report renders the final solver state for humans: a
// sorted-by-name parameter listing with secondary units, plus a trailing
// line naming whatever stayed undetermined.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jeeftor/screencalc/internal/screen"
	"github.com/jeeftor/screencalc/internal/styles"
)

// centimeters per inch, shared by the secondary-unit renderings
const cmPerInch = 2.54

// Options controls rendering. Color toggles lipgloss styling; plain
// output is byte-identical to what tests assert against.
type Options struct {
	Color bool
}

// FormatValue renders a resolved value in display form: counts as
// integers, continuous values with three decimals and the canonical unit
// plus the secondary unit in parentheses, ratios as num:den.
func FormatValue(p screen.Param, v screen.Value) string {
	switch v.Kind {
	case screen.KindRatio:
		return v.Ratio.String()
	case screen.KindCount:
		return fmt.Sprintf("%d", v.Count)
	default:
		if screen.UnitClassOf(p) == screen.UnitDensity {
			return fmt.Sprintf("%.3fdpcm (%.3fdpi)", v.Real, v.Real*cmPerInch)
		}
		return fmt.Sprintf("%.3fcm (%.3fin)", v.Real, v.Real/cmPerInch)
	}
}

// Write renders the final state to w. Resolved parameters come first,
// sorted by name; the undetermined line is emitted only when the
// unresolved set is non-empty.
func Write(w io.Writer, st *screen.State, unresolved []screen.Param, opts Options) {
	names := make([]string, 0, len(screen.Params()))
	for _, p := range screen.Params() {
		if st.Resolved(p) {
			names = append(names, string(p))
		}
	}
	sort.Strings(names)

	for _, name := range names {
		p := screen.Param(name)
		v, _ := st.Value(p)
		key, val := name, FormatValue(p, v)
		if opts.Color {
			key = styles.KeyStyle.Render(key)
			val = styles.ValueStyle.Render(val)
		}
		fmt.Fprintf(w, "%s: %s\n", key, val)
	}

	if len(unresolved) > 0 {
		missing := make([]string, len(unresolved))
		for i, p := range unresolved {
			missing[i] = string(p)
		}
		sort.Strings(missing)
		line := "undetermined: " + strings.Join(missing, ", ")
		if opts.Color {
			line = styles.MutedStyle.Render(line)
		}
		fmt.Fprintln(w, line)
	}
}

// Sprint renders like Write but into a string, for the TUI results panel.
func Sprint(st *screen.State, unresolved []screen.Param, opts Options) string {
	var sb strings.Builder
	Write(&sb, st, unresolved, opts)
	return sb.String()
}
