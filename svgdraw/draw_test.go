package svgdraw

import (
	"image/color"
	"strings"
	"testing"

	"github.com/benoitkugler/drawille/canvas"
	"github.com/benoitkugler/drawille/svgicon"
	"golang.org/x/image/math/fixed"
)

func renderString(t *testing.T, src string, w, h int) *canvas.Canvas {
	t.Helper()
	c := canvas.New(w, h)
	if err := RenderSVGIcon(strings.NewReader(src), c); err != nil {
		t.Fatal(err)
	}
	return c
}

func TestLine(t *testing.T) {
	c := renderString(t, `<svg viewBox="0 0 8 4"><line x1="0" y1="0" x2="7" y2="0"/></svg>`, 8, 4)
	if got, exp := c.Frame(), "⠉⠉⠉⠉"; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}

func TestRectOutline(t *testing.T) {
	const exp = "⡏⠉⠉⢹\n⣇⣀⣀⣸"
	for _, style := range []string{
		`fill="none" stroke="black"`,
		`fill="white" stroke="black"`,
		`fill="black" stroke="white"`,
		`style="fill:#000;stroke:#000"`,
	} {
		c := renderString(t, `<svg viewBox="0 0 8 8"><rect width="7" height="7" `+style+`/></svg>`, 8, 8)
		if got := c.Frame(); got != exp {
			t.Errorf("%s: expected\n%s\ngot\n%s", style, exp, got)
		}
	}
}

func TestInvisible(t *testing.T) {
	for _, style := range []string{
		`fill="white"`,
		`fill="none"`,
		`fill="black" fill-opacity="0.2"`,
		`fill="none" stroke="black" opacity="0.3"`,
	} {
		c := renderString(t, `<svg viewBox="0 0 8 8"><rect width="7" height="7" `+style+`/></svg>`, 8, 8)
		if got, exp := c.Frame(), "    \n    "; got != exp {
			t.Errorf("%s: expected blank frame, got %q", style, got)
		}
	}
}

func TestClipped(t *testing.T) {
	// without view box, the paths extent is used: the far
	// edges land just outside the canvas
	c := renderString(t, `<svg><rect x="2" y="2" width="4" height="2"/></svg>`, 8, 4)
	if got, exp := c.Frame(), "⡏⠉⠉⠉"; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}

func TestCurve(t *testing.T) {
	c := renderString(t, `<svg viewBox="0 0 8 8"><path d="M0 0Q4 0 4 4" fill="none" stroke="black"/></svg>`, 8, 8)
	for _, p := range [][2]int{{0, 0}, {2, 0}, {3, 1}, {4, 2}, {4, 3}, {4, 4}} {
		if !c.Get(p[0], p[1]) {
			t.Errorf("expected dot at %v", p)
		}
	}
	for _, p := range [][2]int{{0, 4}, {4, 0}, {5, 5}} {
		if c.Get(p[0], p[1]) {
			t.Errorf("unexpected dot at %v", p)
		}
	}
}

func TestSplits(t *testing.T) {
	pt := func(x, y int) fixed.Point26_6 { return fixed.P(x, y) }
	for _, test := range []struct {
		pts      []fixed.Point26_6
		expected int
	}{
		{[]fixed.Point26_6{pt(0, 0), pt(0, 0), pt(0, 0)}, 1},
		{[]fixed.Point26_6{pt(0, 0), pt(1, 0), pt(1, 0)}, 1},
		{[]fixed.Point26_6{pt(0, 0), pt(4, 0), pt(4, 4)}, 4},
		{[]fixed.Point26_6{pt(0, 0), pt(3, 4), pt(6, 8), pt(6, 8)}, 5},
	} {
		if got := splits(test.pts...); got != test.expected {
			t.Errorf("%v: expected %d, got %d", test.pts, test.expected, got)
		}
	}
}

func TestPaintOnce(t *testing.T) {
	c := canvas.New(8, 8)
	rd := NewRenderer(c)
	var p svgicon.Path
	p.MoveTo(0, 0)
	p.LineTo(7, 0)
	rd.Paint(p, svgicon.Paint{Fill: color.White})
	if c.Frame() != "    \n    " {
		t.Fatal("light paint should not be drawn")
	}
	rd.Paint(p, svgicon.Paint{Fill: color.White, Stroke: color.Black})
	if got, exp := c.Frame(), "⠉⠉⠉⠉\n    "; got != exp {
		t.Errorf("expected %q, got %q", exp, got)
	}
}
