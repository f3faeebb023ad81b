// Implements a raster backend to render SVG images
// on a braille canvas, by wrapping rasterx.
// Anti-aliased pixels are turned into dots by canvas.Image.
package svgraster

import (
	"io"

	"github.com/benoitkugler/drawille/canvas"
	"github.com/benoitkugler/drawille/svgicon"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

var _ svgicon.Driver = (*Renderer)(nil) // assert interface conformance

// Renderer paints the fills and strokes of an icon
// on a canvas.
type Renderer struct {
	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

// NewRenderer returns a renderer drawing on the current
// extent of c (see canvas.Canvas.Bounds).
func NewRenderer(c *canvas.Canvas) *Renderer {
	bounds := c.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	// fill and stroke are never painted at the same time,
	// so they may share the scanner
	scanner := rasterx.NewScannerGV(w, h, canvas.NewImage(c, bounds), bounds)
	return &Renderer{
		filler: rasterx.NewFiller(w, h, scanner),
		dasher: rasterx.NewDasher(w, h, scanner),
	}
}

// RasterSVGIconToCanvas parses the icon and paints it, scaled to
// pixelWidth x pixelHeight, on a new canvas.
func RasterSVGIconToCanvas(icon io.Reader, pixelWidth, pixelHeight int) (*canvas.Canvas, error) {
	parsed, err := svgicon.Parse(icon, svgicon.Ignore)
	if err != nil {
		return nil, err
	}
	c := canvas.New(pixelWidth, pixelHeight)
	Render(parsed, c)
	return c, nil
}

// Render fits the icon to the canvas extent and paints it.
func Render(icon *svgicon.Icon, c *canvas.Canvas) {
	b := c.Bounds()
	icon.Fit(float64(b.Dx()), float64(b.Dy()))
	icon.Draw(NewRenderer(c))
}

// Paint fills, then strokes p.
func (rd *Renderer) Paint(p svgicon.Path, paint svgicon.Paint) {
	if paint.Fill != nil {
		rd.filler.Clear()
		rd.filler.SetWinding(!paint.EvenOdd)
		p.Replay(rd.filler)
		rd.filler.SetColor(paint.Fill)
		rd.filler.Draw()
	}
	if paint.Stroke != nil {
		rd.dasher.Clear()
		setStroke(rd.dasher, paint.Line)
		p.Replay(rd.dasher)
		rd.dasher.SetColor(paint.Stroke)
		rd.dasher.Draw()
	}
}

func setStroke(d *rasterx.Dasher, l svgicon.LineStyle) {
	var capper rasterx.CapFunc
	switch l.Cap {
	case svgicon.RoundCap:
		capper = rasterx.RoundCap
	case svgicon.SquareCap:
		capper = rasterx.SquareCap
	default:
		capper = rasterx.ButtCap
	}
	join := rasterx.Miter
	switch l.Join {
	case svgicon.RoundJoin:
		join = rasterx.Round
	case svgicon.BevelJoin:
		join = rasterx.Bevel
	}
	d.SetStroke(fixed.Int26_6(l.Width*64), fixed.Int26_6(l.MiterLimit*64),
		capper, capper, rasterx.FlatGap, join, l.Dash, l.DashOffset)
}
