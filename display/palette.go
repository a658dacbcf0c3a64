package display

import (
	"image/color"

	clr "github.com/lucasb-eyer/go-colorful"

	"github.com/32bitkid/gedit/screen"
)

const (
	paletteChroma    = 0.45
	paletteLuminance = 0.65
)

// Palette returns one entry per letter, indexed by screen.Color.Index. The
// letters are spread evenly around the HCL hue circle, except for the
// background which is white.
func Palette() color.Palette {
	pal := make(color.Palette, screen.Colors)
	for i := range pal {
		hue := float64(i) * 360 / float64(screen.Colors)
		pal[i] = clr.Hcl(hue, paletteChroma, paletteLuminance).Clamped()
	}
	pal[screen.Background.Index()] = clr.Color{R: 1, G: 1, B: 1}
	return pal
}

func lighten(src color.Color, p float64) clr.Color {
	srcColor, _ := clr.MakeColor(src)
	h, c, l := srcColor.Hcl()
	return clr.Hcl(h, c, l+p).Clamped()
}

func darken(src color.Color, p float64) clr.Color {
	srcColor, _ := clr.MakeColor(src)
	h, c, l := srcColor.Hcl()
	return clr.Hcl(h, c, l-p).Clamped()
}

// contrast picks a legible foreground for text drawn over bg.
func contrast(bg color.Color) clr.Color {
	c, _ := clr.MakeColor(bg)
	if _, _, l := c.Hcl(); l > 0.5 {
		return darken(bg, 0.45)
	}
	return lighten(bg, 0.45)
}
