package svgicon

import "math"

// Geometry of the basic shapes, in user units.

func rectPath(x, y, w, h, rx, ry float64) Path {
	var p Path
	if w <= 0 || h <= 0 {
		return p
	}
	rx, ry = math.Min(rx, w/2), math.Min(ry, h/2)
	if rx <= 0 || ry <= 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.Close()
		return p
	}
	// clockwise from the end of the top left corner
	p.MoveTo(x+rx, y)
	p.LineTo(x+w-rx, y)
	p.addEllipseArc(x+w-rx, y+ry, rx, ry, 0, -math.Pi/2, math.Pi/2)
	p.LineTo(x+w, y+h-ry)
	p.addEllipseArc(x+w-rx, y+h-ry, rx, ry, 0, 0, math.Pi/2)
	p.LineTo(x+rx, y+h)
	p.addEllipseArc(x+rx, y+h-ry, rx, ry, 0, math.Pi/2, math.Pi/2)
	p.LineTo(x, y+ry)
	p.addEllipseArc(x+rx, y+ry, rx, ry, 0, math.Pi, math.Pi/2)
	p.Close()
	return p
}

// cornerRadii resolves the rx and ry attributes of a rect,
// a negative value standing for a missing one.
func cornerRadii(rx, ry float64) (float64, float64) {
	switch {
	case rx < 0 && ry < 0:
		return 0, 0
	case rx < 0:
		return ry, ry
	case ry < 0:
		return rx, rx
	}
	return rx, ry
}

func ellipsePath(cx, cy, rx, ry float64) Path {
	var p Path
	if rx <= 0 || ry <= 0 {
		return p
	}
	p.MoveTo(cx+rx, cy)
	p.addEllipseArc(cx, cy, rx, ry, 0, 0, 2*math.Pi)
	p.Close()
	return p
}

func polyPath(coords []float64, closed bool) Path {
	var p Path
	for i := 0; i+1 < len(coords); i += 2 {
		if i == 0 {
			p.MoveTo(coords[0], coords[1])
		} else {
			p.LineTo(coords[i], coords[i+1])
		}
	}
	if closed && len(p) > 0 {
		p.Close()
	}
	return p
}

// vectorAngle is the signed angle from (ux, uy) to (vx, vy).
func vectorAngle(ux, uy, vx, vy float64) float64 {
	return math.Atan2(ux*vy-uy*vx, ux*vx+uy*vy)
}

// arcCenter converts the endpoint form of an elliptical arc,
// going from (x1, y1) to (x2, y2), to its center form.
// The radii are enlarged when no ellipse joins the two points.
func arcCenter(x1, y1, x2, y2, rx, ry, phi float64, large, sweep bool) (cx, cy, nrx, nry, theta, delta float64) {
	sinPhi, cosPhi := math.Sincos(phi)
	hx, hy := (x1-x2)/2, (y1-y2)/2
	// start point in the ellipse frame
	px := cosPhi*hx + sinPhi*hy
	py := -sinPhi*hx + cosPhi*hy

	if l := px*px/(rx*rx) + py*py/(ry*ry); l > 1 {
		l = math.Sqrt(l)
		rx, ry = rx*l, ry*l
	}
	num := rx*rx*ry*ry - rx*rx*py*py - ry*ry*px*px
	den := rx*rx*py*py + ry*ry*px*px
	coef := math.Sqrt(math.Max(0, num/den))
	if large == sweep {
		coef = -coef
	}
	qx, qy := coef*rx*py/ry, -coef*ry*px/rx

	cx = cosPhi*qx - sinPhi*qy + (x1+x2)/2
	cy = sinPhi*qx + cosPhi*qy + (y1+y2)/2

	ux, uy := (px-qx)/rx, (py-qy)/ry
	vx, vy := (-px-qx)/rx, (-py-qy)/ry
	theta = vectorAngle(1, 0, ux, uy)
	delta = vectorAngle(ux, uy, vx, vy)
	if !sweep && delta > 0 {
		delta -= 2 * math.Pi
	} else if sweep && delta < 0 {
		delta += 2 * math.Pi
	}
	return cx, cy, rx, ry, theta, delta
}
