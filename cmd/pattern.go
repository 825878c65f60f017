package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jeeftor/screencalc/internal/render"
	"github.com/jeeftor/screencalc/internal/report"
	"github.com/jeeftor/screencalc/internal/screen"
	"github.com/jeeftor/screencalc/internal/utils"
)

var (
	patternOut     string
	patternCell    int
	patternPreview bool
)

var patternCmd = &cobra.Command{
	Use:   "pattern",
	Short: "Generate a calibration test pattern at the resolved resolution",
	Long: `Solves the supplied parameters, then writes a grayscale PGM
checkerboard with border and center crosshair at the resolved pixel
geometry. Useful for checking whether a display at the computed viewing
distance actually blends single-pixel detail.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		st, err := buildState()
		if err != nil {
			utils.ValidationError(err)
		}
		screen.Solve(st)

		w, okW := st.Value(screen.ParamWidthPx)
		h, okH := st.Value(screen.ParamHeightPx)
		if !okW || !okH {
			utils.ValidationError(fmt.Errorf("pattern needs widthpx and heightpx to be supplied or derivable"))
		}

		img, err := render.Pattern(int(w.Count), int(h.Count), patternCell)
		if err != nil {
			utils.ValidationError(err)
		}

		if patternPreview {
			// Two columns per sample keeps preview cells roughly square
			cols, rows := 36, 18
			render.Preview(os.Stdout, img, cols, rows)
		}

		f, err := os.Create(patternOut)
		if err != nil {
			utils.FileSystemError("create", patternOut, err)
		}
		defer f.Close()
		if err := render.Encode(f, img); err != nil {
			utils.FileSystemError("write", patternOut, err)
		}
		fmt.Printf("wrote %dx%d pattern to %s\n", w.Count, h.Count, patternOut)
		if d, ok := st.Value(screen.ParamDistance); ok {
			fmt.Printf("single-pixel detail blends at %s\n", report.FormatValue(screen.ParamDistance, d))
		}
	},
}

func init() {
	patternCmd.Flags().StringVarP(&patternOut, "out", "o", "pattern.pgm", "output PGM path")
	patternCmd.Flags().IntVar(&patternCell, "cell", 1, "checkerboard cell size in pixels")
	patternCmd.Flags().BoolVar(&patternPreview, "preview", false, "render an ANSI preview to the terminal")
	rootCmd.AddCommand(patternCmd)
}
