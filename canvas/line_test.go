package canvas

import (
	"image"
	"reflect"
	"testing"
)

func TestLineVecLength(t *testing.T) {
	c := New(0, 0)
	for _, seg := range [][4]int{
		{0, 0, 0, 0},
		{0, 0, 10, 0},
		{0, 0, 0, 10},
		{3, 4, 10, 5},
		{10, 5, 3, 4},
		{7, 0, 0, 20},
		{20, 20, 1, 2},
	} {
		pts := c.LineVec(seg[0], seg[1], seg[2], seg[3])
		dx, dy := abs(seg[0]-seg[2]), abs(seg[1]-seg[3])
		exp := dx
		if dy > exp {
			exp = dy
		}
		if len(pts) != exp+1 {
			t.Errorf("segment %v: expected %d points, got %d", seg, exp+1, len(pts))
		}
		if pts[0] != image.Pt(seg[0], seg[1]) {
			t.Errorf("segment %v: should start at its first end, got %v", seg, pts[0])
		}
		if pts[len(pts)-1] != image.Pt(seg[2], seg[3]) {
			t.Errorf("segment %v: should end at its second end, got %v", seg, pts[len(pts)-1])
		}
	}
}

func TestLineVecPoint(t *testing.T) {
	c := New(0, 0)
	pts := c.LineVec(4, 9, 4, 9)
	if !reflect.DeepEqual(pts, []image.Point{{4, 9}}) {
		t.Errorf("unexpected degenerate line %v", pts)
	}
}

func TestLineVecSteps(t *testing.T) {
	c := New(0, 0)
	tests := []struct {
		seg [4]int
		exp []image.Point
	}{
		{[4]int{0, 0, 3, 0}, []image.Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}}},
		{[4]int{0, 3, 0, 0}, []image.Point{{0, 3}, {0, 2}, {0, 1}, {0, 0}}},
		{[4]int{0, 0, 4, 2}, []image.Point{{0, 0}, {1, 0}, {2, 1}, {3, 1}, {4, 2}}},
		{[4]int{4, 2, 0, 0}, []image.Point{{4, 2}, {3, 2}, {2, 1}, {1, 1}, {0, 0}}},
		{[4]int{0, 0, 1, 3}, []image.Point{{0, 0}, {0, 1}, {0, 2}, {1, 3}}},
	}
	for _, test := range tests {
		s := test.seg
		if got := c.LineVec(s[0], s[1], s[2], s[3]); !reflect.DeepEqual(got, test.exp) {
			t.Errorf("segment %v: expected %v, got %v", s, test.exp, got)
		}
	}
}

func TestLine(t *testing.T) {
	c := New(2, 4)
	c.Line(0, 0, 1, 3)
	exp := string(rune(brailleOffset + (0x01 | 0x02 | 0x04 | 0x80)))
	if f := c.Frame(); f != exp {
		t.Errorf("expected %q, got %q", exp, f)
	}

	c.Clear()
	c.Line(0, 0, 0, 3)
	exp = string(rune(brailleOffset + (0x01 | 0x02 | 0x04 | 0x40)))
	if f := c.Frame(); f != exp {
		t.Errorf("expected %q, got %q", exp, f)
	}
	if c.Get(1, 0) || c.Get(1, 1) || c.Get(1, 2) || c.Get(1, 3) {
		t.Error("right column should stay empty")
	}
}

func TestLineRaisesLineVec(t *testing.T) {
	c := New(20, 20)
	c.Line(1, 2, 17, 13)
	pts := c.LineVec(1, 2, 17, 13)
	raised := 0
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			if c.Get(x, y) {
				raised++
			}
		}
	}
	for _, p := range pts {
		if !c.Get(p.X, p.Y) {
			t.Errorf("pixel %v of the line not raised", p)
		}
	}
	if raised != len(pts) {
		t.Errorf("expected %d raised pixels, got %d", len(pts), raised)
	}
}

func TestLineClipsNegative(t *testing.T) {
	c := New(0, 0)
	c.Line(-3, 0, 3, 0)
	for x := 0; x <= 3; x++ {
		if !c.Get(x, 0) {
			t.Errorf("pixel (%d, 0) should be raised", x)
		}
	}
	if f := c.Frame(); f != "⠉⠉" {
		t.Errorf("unexpected frame %q", f)
	}
}
