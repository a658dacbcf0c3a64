package display

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"

	clr "github.com/lucasb-eyer/go-colorful"

	"github.com/32bitkid/gedit/screen"
)

// ANSI writes every cell as its letter over a 24-bit background colour.
// A nil Palette uses Palette().
type ANSI struct {
	Palette color.Palette
}

const ansiReset = "\x1b[0m"

func (r ANSI) Render(w io.Writer, rows [][]screen.Color) error {
	return renderANSI(w, NewImage(rows, r.palette()))
}

// RenderImage renders img with the ANSI palette, replacing img.Palette.
func (r ANSI) RenderImage(w io.Writer, img *image.Paletted) error {
	img.Palette = r.palette()
	return renderANSI(w, img)
}

func (r ANSI) palette() color.Palette {
	if r.Palette == nil {
		return Palette()
	}
	return r.Palette
}

func renderANSI(w io.Writer, src *image.Paletted) error {
	var (
		bw    = bufio.NewWriter(w)
		cells = make(map[uint8]string, len(src.Palette))
		rect  = src.Bounds()
	)

	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			idx := src.ColorIndexAt(x, y)
			cell, ok := cells[idx]
			if !ok {
				cell = ansiCell(src.Palette[idx], byte('A'+idx))
				cells[idx] = cell
			}
			bw.WriteString(cell)
		}
		bw.WriteString(ansiReset)
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func ansiCell(bg color.Color, letter byte) string {
	b, _ := clr.MakeColor(bg)
	br, bgr, bb := b.RGB255()
	fr, fg, fb := contrast(bg).RGB255()
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm\x1b[38;2;%d;%d;%dm%c", br, bgr, bb, fr, fg, fb, letter)
}
