package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/jeeftor/screencalc/internal/logging"
	"github.com/jeeftor/screencalc/internal/params"
	"github.com/jeeftor/screencalc/internal/report"
	"github.com/jeeftor/screencalc/internal/screen"
	"github.com/jeeftor/screencalc/internal/utils"
)

// ErrUnexpectedArgument is returned for non-flag positional arguments;
// every input to the calculator travels through a named flag.
var ErrUnexpectedArgument = fmt.Errorf("unexpected argument")

var (
	cfgFile  string
	logLevel string
	noColor  bool

	// one raw string flag per parameter identifier, in registry order
	paramFlags = map[screen.Param]*string{}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "screencalc",
	Short: "Compute unknown screen parameters from the ones you know",
	Long: `screencalc derives missing physical and display parameters of a
screen (aspect ratio, pixel density, viewing distance, diagonal, height,
width, pixel counts) from whichever subset you supply, using the physics
of human visual acuity where distance and density relate.

Values take unit suffixes: lengths accept cm, mm, m, in; density accepts
dpi (default), dpcm, dpm; aspect is height:width as two integers.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return fmt.Errorf("%w: %q", ErrUnexpectedArgument, args[0])
		}
		return nil
	},
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if logLevel == "" {
			logLevel = viper.GetString("log_level")
		}
		logging.InitWithLevel(logLevel)
		logging.Debug("logging initialized", "level", logLevel)
	},
	Run: func(cmd *cobra.Command, args []string) {
		st, err := buildState()
		if err != nil {
			utils.ValidationError(err)
		}
		unresolved := screen.Solve(st)
		report.Write(os.Stdout, st, unresolved, report.Options{Color: colorEnabled()})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.screencalc.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")

	// One flag per parameter identifier; persistent so subcommands
	// (pattern, tui) share the same inputs
	usage := map[screen.Param]string{
		screen.ParamAspect:   "aspect ratio as height:width, e.g. 9:16",
		screen.ParamDensity:  "pixel density, e.g. 300dpi or 118dpcm",
		screen.ParamDiagonal: "physical diagonal, e.g. 55in or 139.7cm",
		screen.ParamDistance: "viewing distance, e.g. 50cm or 2m",
		screen.ParamHeight:   "physical height, e.g. 68.6cm",
		screen.ParamHeightPx: "height in pixels, e.g. 1080",
		screen.ParamWidth:    "physical width, e.g. 121.9cm",
		screen.ParamWidthPx:  "width in pixels, e.g. 1920",
		screen.ParamPixels:   "total pixel count, e.g. 2073600",
	}
	for _, p := range screen.Params() {
		paramFlags[p] = rootCmd.PersistentFlags().String(string(p), "", usage[p])
	}

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	viper.SetEnvPrefix("SCREENCALC")
	viper.AutomaticEnv()

	viper.SetDefault("log_level", "info")

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home))
		}
		viper.AddConfigPath("/etc/screencalc")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".screencalc")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			fmt.Fprintf(os.Stderr, "Error reading config file: %v\n", err)
		}
		// No config file is fine, env vars and flags still apply
	}
}

// buildState gathers raw strings (flag > env > config), parses each
// through the typed parse boundary, and fills the initial solver state.
func buildState() (*screen.State, error) {
	resolver := params.NewResolver()
	st := screen.NewState()
	for _, p := range screen.Params() {
		rv, ok := resolver.Resolve(string(p), *paramFlags[p])
		if !ok {
			continue
		}
		v, err := screen.ParseValue(p, rv.Raw)
		if err != nil {
			return nil, fmt.Errorf("--%s: %w", p, err)
		}
		if err := st.Set(p, v); err != nil {
			return nil, err
		}
		logging.Debug("parameter supplied", "param", string(p), "source", rv.Source)
	}
	return st, nil
}

func colorEnabled() bool {
	return !noColor && term.IsTerminal(int(os.Stdout.Fd()))
}
