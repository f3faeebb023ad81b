package svgicon

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/math/fixed"
)

// Op is the kind of a path segment.
type Op uint8

const (
	MoveOp Op = iota
	LineOp
	QuadOp
	CubeOp
	CloseOp
)

// points returns how many entries of Segment.Pts are used.
func (op Op) points() int {
	switch op {
	case QuadOp:
		return 2
	case CubeOp:
		return 3
	case CloseOp:
		return 0
	default:
		return 1
	}
}

// Segment is one path command. Curves store their control
// points first and end on their last point.
type Segment struct {
	Op  Op
	Pts [3]fixed.Point26_6
}

func (s Segment) end() fixed.Point26_6 { return s.Pts[s.Op.points()-1] }

// Path is a list of sub-paths, each one started by a MoveOp.
type Path []Segment

func (p *Path) MoveTo(x, y float64) {
	*p = append(*p, Segment{Op: MoveOp, Pts: [3]fixed.Point26_6{pt(x, y)}})
}

func (p *Path) LineTo(x, y float64) {
	*p = append(*p, Segment{Op: LineOp, Pts: [3]fixed.Point26_6{pt(x, y)}})
}

func (p *Path) QuadTo(cx, cy, x, y float64) {
	*p = append(*p, Segment{Op: QuadOp, Pts: [3]fixed.Point26_6{pt(cx, cy), pt(x, y)}})
}

func (p *Path) CubeTo(c1x, c1y, c2x, c2y, x, y float64) {
	*p = append(*p, Segment{Op: CubeOp, Pts: [3]fixed.Point26_6{pt(c1x, c1y), pt(c2x, c2y), pt(x, y)}})
}

func (p *Path) Close() {
	*p = append(*p, Segment{Op: CloseOp})
}

// Transform returns a copy of p with every point mapped by m.
func (p Path) Transform(m Matrix) Path {
	out := make(Path, len(p))
	for i, s := range p {
		out[i].Op = s.Op
		for j := 0; j < s.Op.points(); j++ {
			out[i].Pts[j] = m.applyFixed(s.Pts[j])
		}
	}
	return out
}

// Adder receives path segments. It is implemented
// by rasterx.Filler and rasterx.Dasher.
type Adder interface {
	Start(a fixed.Point26_6)
	Line(b fixed.Point26_6)
	QuadBezier(b, c fixed.Point26_6)
	CubeBezier(b, c, d fixed.Point26_6)
	Stop(closeLoop bool)
}

// Replay sends the segments of p to a, terminating every
// sub-path with a Stop call.
func (p Path) Replay(a Adder) {
	open := false
	for _, s := range p {
		switch s.Op {
		case MoveOp:
			if open {
				a.Stop(false)
			}
			a.Start(s.Pts[0])
			open = true
		case LineOp:
			a.Line(s.Pts[0])
		case QuadOp:
			a.QuadBezier(s.Pts[0], s.Pts[1])
		case CubeOp:
			a.CubeBezier(s.Pts[0], s.Pts[1], s.Pts[2])
		case CloseOp:
			if open {
				a.Stop(true)
				open = false
			}
		}
	}
	if open {
		a.Stop(false)
	}
}

var opLetters = [...]string{MoveOp: "M", LineOp: "L", QuadOp: "Q", CubeOp: "C", CloseOp: "Z"}

// String returns the path in SVG syntax, with absolute commands.
func (p Path) String() string {
	var sb strings.Builder
	for i, s := range p {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(opLetters[s.Op])
		for j := 0; j < s.Op.points(); j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			x, y := unfix(s.Pts[j])
			sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
			sb.WriteByte(',')
			sb.WriteString(strconv.FormatFloat(y, 'g', -1, 64))
		}
	}
	return sb.String()
}

// addEllipseArc appends the arc of the ellipse centered on (cx, cy),
// with radii rx, ry rotated by phi radians, from angle theta
// to theta+delta. The start point is expected to be current.
// Each quarter turn is approximated by one cubic.
func (p *Path) addEllipseArc(cx, cy, rx, ry, phi, theta, delta float64) {
	n := int(math.Ceil(math.Abs(delta)/(math.Pi/2) - 1e-9))
	if n < 1 {
		n = 1
	}
	step := delta / float64(n)
	k := 4. / 3 * math.Tan(step/4)
	sinPhi, cosPhi := math.Sincos(phi)
	// point and derivative at angle t
	at := func(t float64) (x, y, dx, dy float64) {
		s, c := math.Sincos(t)
		x = cx + rx*c*cosPhi - ry*s*sinPhi
		y = cy + rx*c*sinPhi + ry*s*cosPhi
		dx = -rx*s*cosPhi - ry*c*sinPhi
		dy = -rx*s*sinPhi + ry*c*cosPhi
		return
	}
	x0, y0, dx0, dy0 := at(theta)
	for i := 1; i <= n; i++ {
		x1, y1, dx1, dy1 := at(theta + float64(i)*step)
		p.CubeTo(x0+k*dx0, y0+k*dy0, x1-k*dx1, y1-k*dy1, x1, y1)
		x0, y0, dx0, dy0 = x1, y1, dx1, dy1
	}
}
