package svgicon

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Matrix is the affine map
//
//	(x, y) -> (m[0]x + m[2]y + m[4], m[1]x + m[3]y + m[5])
//
// that is, the coefficients a, b, c, d, e, f of an SVG matrix().
type Matrix [6]float64

// Identity leaves points untouched.
var Identity = Matrix{1, 0, 0, 1, 0, 0}

func translation(tx, ty float64) Matrix { return Matrix{1, 0, 0, 1, tx, ty} }

func scaling(sx, sy float64) Matrix { return Matrix{sx, 0, 0, sy, 0, 0} }

func radians(deg float64) float64 { return deg * math.Pi / 180 }

// rotation turns by deg degrees, clockwise on screen.
func rotation(deg float64) Matrix {
	s, c := math.Sincos(radians(deg))
	return Matrix{c, s, -s, c, 0, 0}
}

func skewing(degX, degY float64) Matrix {
	return Matrix{1, math.Tan(radians(degY)), math.Tan(radians(degX)), 1, 0, 0}
}

// Then returns the map applying n first, then m.
func (m Matrix) Then(n Matrix) Matrix {
	return Matrix{
		m[0]*n[0] + m[2]*n[1],
		m[1]*n[0] + m[3]*n[1],
		m[0]*n[2] + m[2]*n[3],
		m[1]*n[2] + m[3]*n[3],
		m[0]*n[4] + m[2]*n[5] + m[4],
		m[1]*n[4] + m[3]*n[5] + m[5],
	}
}

// Apply maps the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func (m Matrix) applyFixed(p fixed.Point26_6) fixed.Point26_6 {
	return pt(m.Apply(unfix(p)))
}

// scale is the mean length change of the map,
// used for stroke widths.
func (m Matrix) scale() float64 {
	return math.Sqrt(math.Abs(m[0]*m[3] - m[1]*m[2]))
}

func pt(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}

func unfix(p fixed.Point26_6) (float64, float64) {
	return float64(p.X) / 64, float64(p.Y) / 64
}
