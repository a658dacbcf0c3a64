package display

import (
	"image"
	"image/color"

	"github.com/32bitkid/gedit/screen"
)

// NewImage converts rendered rows into a paletted image whose pixel values
// are colour indexes into pal.
func NewImage(rows [][]screen.Color, pal color.Palette) *image.Paletted {
	var width int
	if len(rows) > 0 {
		width = len(rows[0])
	}

	img := image.NewPaletted(image.Rect(0, 0, width, len(rows)), pal)
	for y, row := range rows {
		offset := y * img.Stride
		for x, c := range row {
			img.Pix[offset+x] = c.Index()
		}
	}
	return img
}
