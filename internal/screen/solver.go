// Package screen computes unknown display parameters (aspect ratio, pixel
// density, viewing distance, physical size, pixel counts) from whichever
// subset the caller supplies, by running a greedy fixpoint over a fixed
// table of interdependent derivation rules.
package screen

import "github.com/jeeftor/screencalc/internal/logging"

// Solve repeatedly sweeps the registry, resolving every still-unknown
// parameter whose first satisfiable rule has all prerequisites resolved,
// until a sweep makes no progress or everything is resolved. The solve is
// greedy and non-backtracking: only prerequisite availability gates a
// rule, and the first-declared satisfiable rule always wins.
//
// Resolution is monotonic, so each pass either resolves at least one new
// parameter or the loop halts; the pass count is therefore bounded by the
// parameter count. Unresolved parameters are a normal outcome, returned
// as a set in registry order, never an error.
func Solve(st *State) []Param {
	for pass := 1; pass <= len(registry); pass++ {
		progress := false
		for _, e := range registry {
			if st.Resolved(e.Param) {
				continue
			}
			for _, rule := range e.Rules {
				args, ok := st.gather(rule.Needs)
				if !ok {
					continue
				}
				if rule.Guard != nil && !rule.Guard(args) {
					continue
				}
				// Set cannot fail here: the kind comes from the rule's
				// own registry entry and the target was just checked
				// to be unknown.
				_ = st.Set(e.Param, rule.Derive(args))
				logging.Debug("derived parameter", "param", string(e.Param), "pass", pass)
				progress = true
				break
			}
		}
		if !progress {
			break
		}
	}
	return st.Unresolved()
}
