// Implements turtle graphics on top of a Braille canvas:
// a pen moves relatively to its heading, and leaves
// a line behind it while it is down.
package turtle

import (
	"math"

	"github.com/benoitkugler/drawille/canvas"
)

// Turtle is a pen over its own canvas.
// Positions are in canvas pixels and are not clamped:
// the pen may wander in negative space, but only the
// positive quadrant is drawn.
type Turtle struct {
	X, Y     float64
	Brush    bool    // pen down
	Rotation float64 // heading, in degrees, never normalized

	cvs *canvas.Canvas
}

// New returns a turtle at (x, y), heading along the x axis,
// with its pen down and an empty canvas.
func New(x, y float64) *Turtle {
	return &Turtle{
		X:     x,
		Y:     y,
		Brush: true,
		cvs:   canvas.New(0, 0),
	}
}

// Width sets the minimum width of the frame, in pixels.
// It should be called before drawing.
func (t *Turtle) Width(pixelWidth int) *Turtle {
	t.cvs.SetWidth(pixelWidth)
	return t
}

// Height sets the minimum height of the frame, in pixels.
// It should be called before drawing.
func (t *Turtle) Height(pixelHeight int) *Turtle {
	t.cvs.SetHeight(pixelHeight)
	return t
}

// Up lifts the pen.
func (t *Turtle) Up() { t.Brush = false }

// Down puts the pen down.
func (t *Turtle) Down() { t.Brush = true }

// Toggle flips the pen.
func (t *Turtle) Toggle() { t.Brush = !t.Brush }

// Right turns by angle degrees.
func (t *Turtle) Right(angle float64) { t.Rotation += angle }

// Left turns by angle degrees, the other way.
func (t *Turtle) Left(angle float64) { t.Rotation -= angle }

// Forward moves by dist pixels along the heading.
func (t *Turtle) Forward(dist float64) {
	rad := t.Rotation * math.Pi / 180
	t.Move(t.X+math.Cos(rad)*dist, t.Y+math.Sin(rad)*dist)
}

// Back moves by dist pixels against the heading.
func (t *Turtle) Back(dist float64) { t.Forward(-dist) }

// pixel rounds v to the nearest pixel, then clamps it to the canvas.
func pixel(v float64) int {
	p := int(math.Round(v))
	if p < 0 {
		return 0
	}
	return p
}

// Move goes to (x, y), drawing a line if the pen is down.
func (t *Turtle) Move(x, y float64) {
	if t.Brush {
		t.cvs.Line(pixel(t.X), pixel(t.Y), pixel(x), pixel(y))
	}
	t.X, t.Y = x, y
}

// Frame returns the text rendering of the canvas.
func (t *Turtle) Frame() string {
	return t.cvs.Frame()
}
