// Package display writes rendered grids for a terminal.
package display

import (
	"bufio"
	"image"
	"io"

	"github.com/32bitkid/gedit/screen"
)

// Renderer writes the rows returned by screen.Canvas.Rows.
type Renderer interface {
	Render(w io.Writer, rows [][]screen.Color) error
}

// ImageRenderer writes a grid image taken from screen.Canvas.Image. The
// image's pixel values are colour indexes and its palette may be replaced.
type ImageRenderer interface {
	RenderImage(w io.Writer, img *image.Paletted) error
}

// Text writes one letter per cell and a newline after every row.
type Text struct{}

func (Text) Render(w io.Writer, rows [][]screen.Color) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for _, c := range row {
			bw.WriteByte(byte(c))
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
