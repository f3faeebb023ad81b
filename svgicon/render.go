package svgicon

// Driver paints shapes already mapped to device pixels.
type Driver interface {
	Paint(p Path, paint Paint)
}

// SetTarget maps the view box onto the rectangle (x, y, w, h).
func (ic *Icon) SetTarget(x, y, w, h float64) {
	ic.Transform = boxTransform(ic.ViewBox, x, y, w, h)
}

// Fit maps the view box onto the rectangle (0, 0, w, h).
// When the icon has no view box, the extent of its shapes is used instead.
func (ic *Icon) Fit(w, h float64) {
	b := ic.ViewBox
	if b.W <= 0 || b.H <= 0 {
		b = ic.Extent()
	}
	// a flat extent is not stretched in its null direction
	if b.W <= 0 {
		b.W = w
	}
	if b.H <= 0 {
		b.H = h
	}
	ic.Transform = boxTransform(b, 0, 0, w, h)
}

func boxTransform(b Box, x, y, w, h float64) Matrix {
	return translation(x, y).Then(scaling(w/b.W, h/b.H)).Then(translation(-b.X, -b.Y))
}

// Extent returns the bounding box of the shapes, in user units,
// ignoring stroke widths.
func (ic *Icon) Extent() Box {
	var b box
	for _, sh := range ic.Shapes {
		sh.Path.Transform(sh.Style.Transform).addTo(&b)
	}
	return Box{X: b.minX, Y: b.minY, W: b.maxX - b.minX, H: b.maxY - b.minY}
}

// Draw sends the visible shapes to d, in document order.
func (ic *Icon) Draw(d Driver) {
	for _, sh := range ic.Shapes {
		m := ic.Transform.Then(sh.Style.Transform)
		paint := sh.Style.paint(m)
		if paint.Fill == nil && paint.Stroke == nil {
			continue
		}
		d.Paint(sh.Path.Transform(m), paint)
	}
}
