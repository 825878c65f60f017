// Package render generates calibration test patterns at a screen's
// resolved pixel geometry.
package render

import (
	"fmt"
	"image"
	"io"

	"github.com/spakin/netpbm"

	"github.com/jeeftor/screencalc/internal/styles"
)

// MaxDimension refuses absurd pixel geometry before allocating an image.
const MaxDimension = 16384

// Pattern builds a grayscale calibration image: a checkerboard of
// cell-sized blocks, a one-pixel black border, and a center crosshair.
// Viewed at the computed distance the checkerboard should just blend to
// uniform gray when cell is 1.
func Pattern(widthPx, heightPx, cell int) (*image.Gray, error) {
	if widthPx <= 0 || heightPx <= 0 {
		return nil, fmt.Errorf("pattern needs positive dimensions, got %dx%d", widthPx, heightPx)
	}
	if widthPx > MaxDimension || heightPx > MaxDimension {
		return nil, fmt.Errorf("pattern dimensions %dx%d exceed limit %d", widthPx, heightPx, MaxDimension)
	}
	if cell < 1 {
		cell = 1
	}

	img := image.NewGray(image.Rect(0, 0, widthPx, heightPx))
	for y := 0; y < heightPx; y++ {
		for x := 0; x < widthPx; x++ {
			img.Pix[y*img.Stride+x] = patternPixel(x, y, widthPx, heightPx, cell)
		}
	}
	return img, nil
}

func patternPixel(x, y, w, h, cell int) uint8 {
	// Border first, then crosshair, then checkerboard
	if x == 0 || y == 0 || x == w-1 || y == h-1 {
		return 0
	}
	if x == w/2 || y == h/2 {
		return 0
	}
	if (x/cell+y/cell)%2 == 0 {
		return 255
	}
	return 0
}

// Encode writes the pattern as a raw (binary) PGM.
func Encode(w io.Writer, img image.Image) error {
	return netpbm.Encode(w, img, &netpbm.EncodeOptions{
		Format:   netpbm.PGM,
		MaxValue: 255,
	})
}

// Preview renders a downscaled ANSI block preview of the pattern, two
// terminal columns per sample so cells stay roughly square.
func Preview(w io.Writer, img *image.Gray, cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	b := img.Bounds()
	for py := 0; py < rows; py++ {
		for px := 0; px < cols; px++ {
			x := b.Min.X + px*b.Dx()/cols
			y := b.Min.Y + py*b.Dy()/rows
			g := img.GrayAt(x, y).Y
			bg := styles.CreateBgStyle(g, g, g)
			fmt.Fprint(w, bg.Render("  "))
		}
		fmt.Fprintln(w)
	}
}
