// Implements a sparse pixel surface rendered with
// Unicode Braille patterns: every character cell
// packs a block of 2x4 pixels.
package canvas

import (
	"image"
	"io"
	"strings"
)

// brailleOffset is the code point of the empty Braille pattern.
const brailleOffset = 0x2800

// pixelMap gives the dot bit of a pixel, indexed by
// (y mod 4, x mod 2).
var pixelMap = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Canvas stores pixels by character cell.
// The declared width and height are only minimums
// for the rendered extent: pixels may be set anywhere
// in the positive quadrant.
type Canvas struct {
	cells  map[image.Point]uint8 // (column, row) -> dot mask
	width  int                   // in cells
	height int                   // in cells
}

// New returns an empty canvas whose rendered frame
// covers at least pixelWidth x pixelHeight pixels.
func New(pixelWidth, pixelHeight int) *Canvas {
	return &Canvas{
		cells:  make(map[image.Point]uint8),
		width:  pixelWidth / 2,
		height: pixelHeight / 4,
	}
}

// SetWidth changes the declared width, given in pixels.
func (c *Canvas) SetWidth(pixelWidth int) { c.width = pixelWidth / 2 }

// SetHeight changes the declared height, given in pixels.
func (c *Canvas) SetHeight(pixelHeight int) { c.height = pixelHeight / 4 }

// Width returns the declared width, in cells.
func (c *Canvas) Width() int { return c.width }

// Height returns the declared height, in cells.
func (c *Canvas) Height() int { return c.height }

// Clear removes every pixel. The declared size is kept.
func (c *Canvas) Clear() {
	c.cells = make(map[image.Point]uint8)
}

// locate returns the cell holding the pixel (x, y) and its dot bit.
// ok is false for pixels outside the positive quadrant.
func locate(x, y int) (cell image.Point, dot uint8, ok bool) {
	if x < 0 || y < 0 {
		return image.Point{}, 0, false
	}
	return image.Pt(x/2, y/4), pixelMap[y%4][x%2], true
}

// Set raises the pixel (x, y).
// Negative coordinates are ignored.
func (c *Canvas) Set(x, y int) {
	if cell, dot, ok := locate(x, y); ok {
		c.cells[cell] |= dot
	}
}

// Unset lowers the pixel (x, y).
func (c *Canvas) Unset(x, y int) {
	if cell, dot, ok := locate(x, y); ok {
		c.cells[cell] &^= dot
	}
}

// Toggle flips the pixel (x, y).
func (c *Canvas) Toggle(x, y int) {
	if cell, dot, ok := locate(x, y); ok {
		c.cells[cell] ^= dot
	}
}

// Get reports whether the pixel (x, y) is raised.
func (c *Canvas) Get(x, y int) bool {
	cell, dot, ok := locate(x, y)
	if !ok {
		return false
	}
	return c.cells[cell]&dot != 0
}

// extent returns the number of columns and rows of the rendered frame.
func (c *Canvas) extent() (cols, rows int) {
	cols, rows = c.width, c.height
	for cell := range c.cells {
		if cell.X >= cols {
			cols = cell.X + 1
		}
		if cell.Y >= rows {
			rows = cell.Y + 1
		}
	}
	return cols, rows
}

// Bounds returns the pixel rectangle covered by the rendered frame.
func (c *Canvas) Bounds() image.Rectangle {
	cols, rows := c.extent()
	return image.Rect(0, 0, cols*2, rows*4)
}

// glyph returns the character drawn for a dot mask.
func glyph(mask uint8) rune {
	if mask == 0 {
		return ' '
	}
	return rune(brailleOffset + int(mask))
}

// Rows renders the canvas, one string per character row.
// A row spans the declared width, or more if pixels were set
// beyond it; the same goes for the number of rows.
// Sizes are counts, not largest indexes: a canvas declared 0x0
// with no cell renders no row at all, and a 2x4 one renders one
// character.
func (c *Canvas) Rows() []string {
	cols, rows := c.extent()
	out := make([]string, rows)
	var b strings.Builder
	for y := 0; y < rows; y++ {
		b.Reset()
		for x := 0; x < cols; x++ {
			b.WriteRune(glyph(c.cells[image.Pt(x, y)]))
		}
		out[y] = b.String()
	}
	return out
}

// Frame returns the rows joined by line feeds, without
// a trailing one.
func (c *Canvas) Frame() string {
	return strings.Join(c.Rows(), "\n")
}

// String returns the frame of the canvas.
func (c *Canvas) String() string {
	return c.Frame()
}

// WriteTo writes the frame followed by a line feed,
// which is what a terminal expects.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, c.Frame()+"\n")
	return int64(n), err
}
