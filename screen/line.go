package screen

import "fmt"

// Axis selects which coordinate a Segment holds constant.
type Axis uint8

const (
	// Column holds the column fixed and runs along rows (a vertical line).
	Column Axis = iota
	// Row holds the row fixed and runs along columns (a horizontal line).
	Row
)

func (a Axis) String() string {
	switch a {
	case Column:
		return "column"
	case Row:
		return "row"
	}
	return fmt.Sprintf("Axis(%d)", uint8(a))
}

// point maps a position along the axis to a (col, row) pair.
func (a Axis) point(fixed, v int) (col, row int) {
	if a == Column {
		return fixed, v
	}
	return v, fixed
}

// Segment paints the inclusive run from start to end along axis, holding
// fixed constant. Both endpoints and the colour are validated before any
// cell is painted; the direction of the run does not matter.
func (c *Canvas) Segment(axis Axis, fixed, start, end int, clr Color) error {
	if axis != Column && axis != Row {
		return fmt.Errorf("screen: unknown axis %d", uint8(axis))
	}
	if err := c.ValidateCoordinate(axis.point(fixed, start)); err != nil {
		return err
	}
	if err := c.ValidateCoordinate(axis.point(fixed, end)); err != nil {
		return err
	}
	if err := ValidateColor(clr); err != nil {
		return err
	}

	swapIf(&start, &end, start > end)
	for v := start; v <= end; v++ {
		col, row := axis.point(fixed, v)
		c.set(col, row, clr)
	}
	return nil
}

func swapIf(a, b *int, cond bool) {
	if cond {
		*a, *b = *b, *a
	}
}
