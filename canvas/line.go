package canvas

import "image"

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// direction is +1 when going from a to b does not decrease.
func direction(a, b int) int {
	if a <= b {
		return 1
	}
	return -1
}

// LineVec returns the pixels approximating the segment
// from (x1, y1) to (x2, y2), starting at (x1, y1).
// The segment is walked in max(|dx|, |dy|) equal steps along
// both axes, so that the result always holds max(|dx|, |dy|) + 1 points.
func (c *Canvas) LineVec(x1, y1, x2, y2 int) []image.Point {
	dx, dy := abs(x1-x2), abs(y1-y2)
	xdir, ydir := direction(x1, x2), direction(y1, y2)
	r := dx
	if dy > r {
		r = dy
	}

	out := make([]image.Point, 0, r+1)
	for i := 0; i <= r; i++ {
		p := image.Pt(x1, y1)
		// r > 0 whenever one of the differences is non zero
		if dy != 0 {
			p.Y += i * dy / r * ydir
		}
		if dx != 0 {
			p.X += i * dx / r * xdir
		}
		out = append(out, p)
	}
	return out
}

// Line raises every pixel of the segment from (x1, y1) to (x2, y2).
// Pixels falling at negative coordinates are dropped.
func (c *Canvas) Line(x1, y1, x2, y2 int) {
	for _, p := range c.LineVec(x1, y1, x2, y2) {
		c.Set(p.X, p.Y)
	}
}
