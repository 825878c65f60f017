package params

import (
	"os"
	"testing"

	"github.com/spf13/viper"
)

func TestResolvePriority(t *testing.T) {
	tests := []struct {
		name       string
		flagValue  string
		envValue   string
		viperValue string
		wantRaw    string
		wantSource string
		wantOK     bool
	}{
		{
			name:       "flag wins over everything",
			flagValue:  "50cm",
			envValue:   "60cm",
			viperValue: "70cm",
			wantRaw:    "50cm",
			wantSource: "flag",
			wantOK:     true,
		},
		{
			name:       "env when no flag",
			flagValue:  "",
			envValue:   "60cm",
			wantRaw:    "60cm",
			wantSource: "config",
			wantOK:     true,
		},
		{
			name:       "config when no flag or env",
			flagValue:  "",
			viperValue: "70cm",
			wantRaw:    "70cm",
			wantSource: "config",
			wantOK:     true,
		},
		{
			name:   "absent everywhere",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			viper.SetEnvPrefix("SCREENCALC")
			viper.AutomaticEnv()
			os.Unsetenv("SCREENCALC_DISTANCE")
			t.Cleanup(func() {
				os.Unsetenv("SCREENCALC_DISTANCE")
				viper.Reset()
			})

			if tt.envValue != "" {
				os.Setenv("SCREENCALC_DISTANCE", tt.envValue)
			}
			if tt.viperValue != "" {
				viper.Set("distance", tt.viperValue)
			}

			rv, ok := NewResolver().Resolve("distance", tt.flagValue)
			if ok != tt.wantOK {
				t.Fatalf("Resolve() ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if rv.Raw != tt.wantRaw {
				t.Errorf("Resolve() raw = %q, want %q", rv.Raw, tt.wantRaw)
			}
			if rv.Source != tt.wantSource {
				t.Errorf("Resolve() source = %q, want %q", rv.Source, tt.wantSource)
			}
		})
	}
}
