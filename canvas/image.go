package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

var _ draw.Image = Image{} // assert interface conformance

// Image is a draw.Image view of a Canvas, so that
// generic raster code can paint on it.
// Raised pixels read as opaque black, the others as transparent.
// Writing a color raises the pixel when the color is "ink", that is
// at least half opaque and darker than mid gray; any other color
// lowers it.
type Image struct {
	c    *Canvas
	rect image.Rectangle
}

// NewImage returns a view of c restricted to rect.
// Use c.Bounds() to expose the whole rendered frame.
func NewImage(c *Canvas, rect image.Rectangle) Image {
	return Image{c: c, rect: rect}
}

func (im Image) ColorModel() color.Model { return color.RGBA64Model }

func (im Image) Bounds() image.Rectangle { return im.rect }

func (im Image) At(x, y int) color.Color {
	if !image.Pt(x, y).In(im.rect) || !im.c.Get(x, y) {
		return color.Transparent
	}
	return color.Black
}

func (im Image) Set(x, y int, col color.Color) {
	if !image.Pt(x, y).In(im.rect) {
		return
	}
	if IsInk(col) {
		im.c.Set(x, y)
	} else if im.c.Get(x, y) {
		// only touch existing cells, so that erasing does not grow the canvas
		im.c.Unset(x, y)
	}
}

// IsInk reports whether col should raise a pixel:
// its alpha is at least 50% and its luma, once
// un-premultiplied, is below 50%.
func IsInk(col color.Color) bool {
	if col == nil {
		return false
	}
	r, g, b, a := col.RGBA()
	if a < 0x8000 {
		return false
	}
	// same weights as color.GrayModel, on premultiplied values
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 16
	return 2*y < a
}
