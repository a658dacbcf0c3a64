package screen

// Fill repaints the 4-connected region of identically coloured cells that
// contains (col, row). Filling a region with its own colour is allowed and
// changes nothing.
//
// The region is walked with an explicit stack. A cell is marked visited
// when it is painted, so it may be pushed more than once but is painted
// only once.
func (c *Canvas) Fill(col, row int, clr Color) error {
	if err := c.ValidateCoordinate(col, row); err != nil {
		return err
	}
	if err := ValidateColor(clr); err != nil {
		return err
	}

	var (
		p          point
		buf        = c.buf
		stride     = buf.Stride
		width      = buf.Rect.Dx()
		height     = buf.Rect.Dy()
		color      = clr.Index()
		legalColor = buf.Pix[c.offset(col, row)]
		visited    = c.resetVisited(len(buf.Pix))
		stack      = append(c.stack[:0], point{col - 1, row - 1})
	)

	isLegal := func(p point) bool {
		i := p.y*stride + p.x
		return !visited[i] && buf.Pix[i] == legalColor
	}

	for len(stack) > 0 {
		p, stack = stack[len(stack)-1], stack[:len(stack)-1]

		var (
			x, y = p.x, p.y
			i    = y*stride + x
		)

		if visited[i] {
			continue
		}

		buf.Pix[i] = color
		visited[i] = true

		if up := (point{x, y - 1}); up.y >= 0 && isLegal(up) {
			stack = append(stack, up)
		}
		if down := (point{x, y + 1}); down.y < height && isLegal(down) {
			stack = append(stack, down)
		}
		if right := (point{x + 1, y}); right.x < width && isLegal(right) {
			stack = append(stack, right)
		}
		if left := (point{x - 1, y}); left.x >= 0 && isLegal(left) {
			stack = append(stack, left)
		}
	}

	c.stack = stack[:0]
	return nil
}

// resetVisited returns an all-false marker buffer of length n, reusing the
// previous call's buffer when it is large enough.
func (c *Canvas) resetVisited(n int) []bool {
	if cap(c.visited) < n {
		c.visited = make([]bool, n)
		return c.visited
	}
	c.visited = c.visited[:n]
	clear(c.visited)
	return c.visited
}
