package cmd

import (
	"fmt"
	"runtime"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// These variables will be set during the build using ldflags
var (
	buildVersion = "dev"
	buildCommit  = "none"
	buildTime    = "unknown"
)

var shortOutput bool

// GetFormattedBuildTime returns the build time in a readable format
func GetFormattedBuildTime() string {
	if buildTime == "unknown" {
		return buildTime
	}
	if t, err := time.Parse(time.RFC3339, buildTime); err == nil {
		return t.Format("2006-01-02 15:04:05 MST")
	}
	return buildTime
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		if shortOutput {
			// Raw buildVersion for scripts
			fmt.Println(buildVersion)
			return
		}
		versionColor := color.New(color.FgCyan, color.Bold)
		buildColor := color.New(color.FgYellow)
		commitColor := color.New(color.FgGreen)
		osArchColor := color.New(color.FgMagenta)
		whiteColor := color.New(color.FgWhite)

		whiteColor.Printf("Version: ")
		versionColor.Printf("%s\n", buildVersion)

		whiteColor.Printf("Built:   ")
		buildColor.Printf("%s\n", GetFormattedBuildTime())

		whiteColor.Printf("Commit:  ")
		commitColor.Printf("%s\n", buildCommit)

		whiteColor.Printf("OS/Arch: ")
		osArchColor.Printf("%s/%s\n", runtime.GOOS, runtime.GOARCH)

		whiteColor.Printf("Go:      ")
		fmt.Printf("%s\n", runtime.Version())
	},
}

func init() {
	versionCmd.Flags().BoolVarP(&shortOutput, "short", "n", false, "Print only version number")
	rootCmd.AddCommand(versionCmd)
}
