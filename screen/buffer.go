package screen

import "image"

// Editor is the operation set a grid exposes to whatever drives it.
type Editor interface {
	Exists() bool
	Bounds() (columns, rows int)
	Create(columns, rows int) error
	Clear() error
	ValidateCoordinate(col, row int) error
	Paint(col, row int, c Color) error
	Segment(axis Axis, fixed, start, end int, c Color) error
	Fill(col, row int, c Color) error
	Rows() ([][]Color, error)
	Image() (*image.Paletted, error)
}

var _ Editor = (*Canvas)(nil)
