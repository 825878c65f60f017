package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jeeftor/screencalc/internal/tui"
	"github.com/jeeftor/screencalc/internal/utils"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive calculator with live-derived results",
	Long: `Opens a full-screen calculator: edit any of the nine parameter
fields and the remaining values re-derive on every keystroke.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		p := tea.NewProgram(tui.New(), tea.WithAltScreen())
		_, err := p.Run()
		utils.CheckError(err, "TUI failed")
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
