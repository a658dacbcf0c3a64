// Package screen implements the grid model of a text-driven raster
// editor.
//
// A Canvas holds a rectangular grid of single-letter colours. Columns and
// rows are 1-indexed in every exported method. All mutating operations
// validate their arguments first and leave the grid untouched when
// validation fails.
package screen

import (
	"image"
	"strconv"
)

const (
	MinDimension = 1
	MaxDimension = 250
)

// Canvas is the sole owner of the grid. The zero value holds no grid.
// A Canvas is not safe for concurrent use.
type Canvas struct {
	buf *image.Paletted

	// scratch space for Fill, reset on every call
	stack   []point
	visited []bool
}

type point struct{ x, y int }

func NewCanvas() *Canvas {
	return &Canvas{}
}

func (c *Canvas) Exists() bool {
	return c.buf != nil
}

// Bounds returns the current dimensions, or zeros when no grid exists.
func (c *Canvas) Bounds() (columns, rows int) {
	if c.buf == nil {
		return 0, 0
	}
	return c.buf.Rect.Dx(), c.buf.Rect.Dy()
}

// Create replaces any existing grid with a columns x rows grid of
// Background.
func (c *Canvas) Create(columns, rows int) error {
	if err := ValidateDimensions(columns, rows); err != nil {
		return err
	}

	c.buf = image.NewPaletted(image.Rect(0, 0, columns, rows), nil)
	c.fill(Background)
	return nil
}

// ValidateDimensions checks grid dimensions, columns first.
func ValidateDimensions(columns, rows int) error {
	if err := validateDimension("columns", columns); err != nil {
		return err
	}
	return validateDimension("rows", rows)
}

func validateDimension(name string, v int) error {
	if v < MinDimension || v > MaxDimension {
		return &DimensionError{Dimension: name, Value: strconv.Itoa(v)}
	}
	return nil
}

// Clear resets every cell to Background without changing the dimensions.
func (c *Canvas) Clear() error {
	if c.buf == nil {
		return ErrNoImage
	}
	c.fill(Background)
	return nil
}

func (c *Canvas) fill(clr Color) {
	idx := clr.Index()
	for i, max := 0, len(c.buf.Pix); i < max; i++ {
		c.buf.Pix[i] = idx
	}
}

// ValidateCoordinate checks a 1-indexed position against the grid. The row
// is checked before the column.
func (c *Canvas) ValidateCoordinate(col, row int) error {
	if c.buf == nil {
		return ErrNoImage
	}
	columns, rows := c.Bounds()
	if row < 1 || row > rows {
		return &RangeError{Axis: Row, Value: row}
	}
	if col < 1 || col > columns {
		return &RangeError{Axis: Column, Value: col}
	}
	return nil
}

func (c *Canvas) offset(col, row int) int {
	return c.buf.PixOffset(col-1, row-1)
}

func (c *Canvas) set(col, row int, clr Color) {
	c.buf.Pix[c.offset(col, row)] = clr.Index()
}

// At returns the colour of a single cell.
func (c *Canvas) At(col, row int) (Color, error) {
	if err := c.ValidateCoordinate(col, row); err != nil {
		return 0, err
	}
	return colorAt(c.buf.Pix[c.offset(col, row)]), nil
}

// Paint sets a single cell.
func (c *Canvas) Paint(col, row int, clr Color) error {
	if err := c.ValidateCoordinate(col, row); err != nil {
		return err
	}
	if err := ValidateColor(clr); err != nil {
		return err
	}

	c.set(col, row, clr)
	return nil
}

// Rows returns a copy of the grid, top row first, each row left to right.
func (c *Canvas) Rows() ([][]Color, error) {
	if c.buf == nil {
		return nil, ErrNoImage
	}

	columns, rows := c.Bounds()
	out := make([][]Color, rows)
	for y := range out {
		line := make([]Color, columns)
		offset := y * c.buf.Stride
		for x := range line {
			line[x] = colorAt(c.buf.Pix[offset+x])
		}
		out[y] = line
	}
	return out, nil
}

// Image returns a copy of the grid as a paletted image. Pixel values are
// Color.Index values; the palette is left for the caller to set.
func (c *Canvas) Image() (*image.Paletted, error) {
	if c.buf == nil {
		return nil, ErrNoImage
	}

	img := image.NewPaletted(c.buf.Rect, nil)
	copy(img.Pix, c.buf.Pix)
	return img, nil
}
