package params

import "github.com/spf13/viper"

// Resolver resolves raw parameter strings from multiple sources.
// Priority: CLI flag > SCREENCALC_* env var > config file.
type Resolver struct{}

// NewResolver creates a new parameter resolver
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolvedValue carries a resolved raw string plus where it came from,
// for debug logging.
type ResolvedValue struct {
	Raw    string
	Source string
}

// Resolve returns the raw string for the named parameter.
// Priority: explicit flag value > environment/config via viper > absent.
func (r *Resolver) Resolve(name, flagValue string) (ResolvedValue, bool) {
	// 1. Explicit flag (highest priority)
	if flagValue != "" {
		return ResolvedValue{Raw: flagValue, Source: "flag"}, true
	}

	// 2. Environment variable or config file
	if viper.IsSet(name) {
		raw := viper.GetString(name)
		if raw != "" {
			return ResolvedValue{Raw: raw, Source: "config"}, true
		}
	}

	// 3. Not supplied
	return ResolvedValue{}, false
}
