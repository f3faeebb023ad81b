package svgicon

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Computes the extent of paths. Curves are bounded by their
// extrema, found where the derivative vanishes, so that
// the control points do not inflate the box.

// curve is a Bézier curve of any degree.
type curve interface {
	// criticalPoints returns the parameters zeroing the derivative
	criticalPoints() (tX, tY []float64)
	// evaluate returns the point at parameter t
	evaluate(t float64) (x, y float64)
}

type quadCurve [3]fixed.Point26_6

// x = (p0 + p2 - 2p1)t² + 2(p1 - p0)t + p0
func bezierQuad(p0, p1, p2, t float64) float64 {
	return (p0+p2-2*p1)*t*t + 2*(p1-p0)*t + p0
}

// derivative as at + b
func quadDerivative(p0, p1, p2 float64) (a, b float64) {
	return 2 * (p2 - 2*p1 + p0), 2 * (p1 - p0)
}

func linearRoots(a, b float64) []float64 {
	if a == 0 {
		return nil
	}
	return []float64{-b / a}
}

func (cu quadCurve) criticalPoints() (tX, tY []float64) {
	p0x, p0y := unfix(cu[0])
	p1x, p1y := unfix(cu[1])
	p2x, p2y := unfix(cu[2])
	return linearRoots(quadDerivative(p0x, p1x, p2x)), linearRoots(quadDerivative(p0y, p1y, p2y))
}

func (cu quadCurve) evaluate(t float64) (x, y float64) {
	p0x, p0y := unfix(cu[0])
	p1x, p1y := unfix(cu[1])
	p2x, p2y := unfix(cu[2])
	return bezierQuad(p0x, p1x, p2x, t), bezierQuad(p0y, p1y, p2y, t)
}

type cubicCurve [4]fixed.Point26_6

// x = (p3 - 3p2 + 3p1 - p0)t³ + (3p2 - 6p1 + 3p0)t² + (3p1 - 3p0)t + p0
func bezierCubic(p0, p1, p2, p3, t float64) float64 {
	return (p3-3*p2+3*p1-p0)*t*t*t +
		(3*p2-6*p1+3*p0)*t*t +
		(3*p1-3*p0)*t +
		p0
}

// derivative as at² + bt + c
func cubicDerivative(p0, p1, p2, p3 float64) (a, b, c float64) {
	return 3*p3 - 9*p2 + 9*p1 - 3*p0, 6*p2 - 12*p1 + 6*p0, 3*p1 - 3*p0
}

func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		return linearRoots(b, c)
	}
	d := b*b - 4*a*c
	switch {
	case d < 0:
		return nil
	case d == 0:
		return []float64{-b / (2 * a)}
	}
	sq := math.Sqrt(d)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

func (cu cubicCurve) criticalPoints() (tX, tY []float64) {
	p0x, p0y := unfix(cu[0])
	p1x, p1y := unfix(cu[1])
	p2x, p2y := unfix(cu[2])
	p3x, p3y := unfix(cu[3])
	return quadraticRoots(cubicDerivative(p0x, p1x, p2x, p3x)),
		quadraticRoots(cubicDerivative(p0y, p1y, p2y, p3y))
}

func (cu cubicCurve) evaluate(t float64) (x, y float64) {
	p0x, p0y := unfix(cu[0])
	p1x, p1y := unfix(cu[1])
	p2x, p2y := unfix(cu[2])
	p3x, p3y := unfix(cu[3])
	return bezierCubic(p0x, p1x, p2x, p3x, t), bezierCubic(p0y, p1y, p2y, p3y, t)
}

// box accumulates points
type box struct {
	minX, minY, maxX, maxY float64
	seen                   bool
}

func (b *box) add(x, y float64) {
	if !b.seen {
		*b = box{x, y, x, y, true}
		return
	}
	b.minX = math.Min(b.minX, x)
	b.minY = math.Min(b.minY, y)
	b.maxX = math.Max(b.maxX, x)
	b.maxY = math.Max(b.maxY, y)
}

func (b *box) addPoint(a fixed.Point26_6) { b.add(unfix(a)) }

// addCurve adds the extrema of cu, including its end points
func (b *box) addCurve(cu curve) {
	tX, tY := cu.criticalPoints()
	for _, t := range append(append(tX, 0, 1), tY...) {
		if !(0 <= t && t <= 1) {
			continue
		}
		b.add(cu.evaluate(t))
	}
}

// Bounds returns the smallest box containing the path,
// which is zero for an empty path.
func (p Path) Bounds() Box {
	var b box
	p.addTo(&b)
	return Box{X: b.minX, Y: b.minY, W: b.maxX - b.minX, H: b.maxY - b.minY}
}

// addTo adds the extrema of every segment to b
func (p Path) addTo(b *box) {
	var cur, start fixed.Point26_6
	for _, s := range p {
		switch s.Op {
		case MoveOp:
			start = s.Pts[0]
			b.addPoint(start)
		case LineOp:
			b.addPoint(s.Pts[0])
		case QuadOp:
			b.addCurve(quadCurve{cur, s.Pts[0], s.Pts[1]})
		case CubeOp:
			b.addCurve(cubicCurve{cur, s.Pts[0], s.Pts[1], s.Pts[2]})
		case CloseOp:
			cur = start
			continue
		}
		cur = s.end()
	}
}
