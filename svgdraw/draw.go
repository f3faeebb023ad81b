// Implements an outline backend to render SVG images
// on a braille canvas: the contour of each painted path
// is drawn with canvas lines, curves being flattened first.
// Fill rules and stroke widths are ignored.
package svgdraw

import (
	"io"
	"math"

	"github.com/benoitkugler/drawille/canvas"
	"github.com/benoitkugler/drawille/svgicon"
	"golang.org/x/image/math/fixed"
)

// maxSegment is the length, in pixels, above which
// curves are split further.
const maxSegment = 2

var _ svgicon.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer draws path outlines on a canvas.
type Renderer struct {
	p pather
}

func NewRenderer(c *canvas.Canvas) *Renderer {
	return &Renderer{p: pather{c: c}}
}

// RenderSVGIcon parses the icon and draws its outlines
// on c, fitting its current extent.
func RenderSVGIcon(icon io.Reader, c *canvas.Canvas) error {
	parsed, err := svgicon.Parse(icon, svgicon.Ignore)
	if err != nil {
		return err
	}
	Render(parsed, c)
	return nil
}

// Render fits the icon to the canvas extent and draws it.
func Render(icon *svgicon.Icon, c *canvas.Canvas) {
	b := c.Bounds()
	icon.Fit(float64(b.Dx()), float64(b.Dy()))
	icon.Draw(NewRenderer(c))
}

// Paint outlines p once, when its fill or its stroke is dark enough.
func (rd *Renderer) Paint(p svgicon.Path, paint svgicon.Paint) {
	if !canvas.IsInk(paint.Fill) && !canvas.IsInk(paint.Stroke) {
		return
	}
	rd.p.segments = rd.p.segments[:0]
	p.Replay(&rd.p)
	rd.p.draw()
}

type segment [2]fixed.Point26_6

// pather accumulates a flattened path
type pather struct {
	c          *canvas.Canvas
	segments   []segment
	first, cur fixed.Point26_6
}

func (p *pather) Start(a fixed.Point26_6) {
	p.first, p.cur = a, a
}

func (p *pather) Line(b fixed.Point26_6) {
	p.segments = append(p.segments, segment{p.cur, b})
	p.cur = b
}

func (p *pather) Stop(closeLoop bool) {
	if closeLoop && p.cur != p.first {
		p.Line(p.first)
	}
}

func toFloat(a fixed.Point26_6) (float64, float64) {
	return float64(a.X) / 64, float64(a.Y) / 64
}

func toFixed(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}

// splits returns the number of segments used to flatten a curve
// with the given control polygon
func splits(pts ...fixed.Point26_6) int {
	var length float64
	for i := 1; i < len(pts); i++ {
		x0, y0 := toFloat(pts[i-1])
		x1, y1 := toFloat(pts[i])
		length += math.Hypot(x1-x0, y1-y0)
	}
	n := int(math.Ceil(length / maxSegment))
	if n < 1 {
		n = 1
	}
	return n
}

func (p *pather) QuadBezier(b, c fixed.Point26_6) {
	x0, y0 := toFloat(p.cur)
	x1, y1 := toFloat(b)
	x2, y2 := toFloat(c)
	n := splits(p.cur, b, c)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		p.Line(toFixed(
			u*u*x0+2*u*t*x1+t*t*x2,
			u*u*y0+2*u*t*y1+t*t*y2))
	}
	p.Line(c)
}

func (p *pather) CubeBezier(b, c, d fixed.Point26_6) {
	x0, y0 := toFloat(p.cur)
	x1, y1 := toFloat(b)
	x2, y2 := toFloat(c)
	x3, y3 := toFloat(d)
	n := splits(p.cur, b, c, d)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		u := 1 - t
		p.Line(toFixed(
			u*u*u*x0+3*u*u*t*x1+3*u*t*t*x2+t*t*t*x3,
			u*u*u*y0+3*u*u*t*y1+3*u*t*t*y2+t*t*t*y3))
	}
	p.Line(d)
}

// draw sets the dots of the segments, dropping
// the ones outside of the canvas extent
func (p *pather) draw() {
	bounds := p.c.Bounds()
	for _, s := range p.segments {
		for _, pt := range p.c.LineVec(s[0].X.Round(), s[0].Y.Round(), s[1].X.Round(), s[1].Y.Round()) {
			if pt.In(bounds) {
				p.c.Set(pt.X, pt.Y)
			}
		}
	}
}
