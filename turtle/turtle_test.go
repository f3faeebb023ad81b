package turtle

import (
	"fmt"
	"math"
	"testing"
)

func TestNew(t *testing.T) {
	tu := New(3, 4)
	if tu.X != 3 || tu.Y != 4 || !tu.Brush || tu.Rotation != 0 {
		t.Errorf("unexpected initial state %+v", tu)
	}
	if f := tu.Frame(); f != "" {
		t.Errorf("expected empty frame, got %q", f)
	}
}

func TestConfigure(t *testing.T) {
	tu := New(0, 0).Width(8).Height(8)
	if w, h := tu.cvs.Width(), tu.cvs.Height(); w != 4 || h != 2 {
		t.Errorf("expected a 4x2 cell canvas, got %dx%d", w, h)
	}
	if f := tu.Frame(); f != "    \n    " {
		t.Errorf("unexpected blank frame %q", f)
	}
}

func TestPen(t *testing.T) {
	tu := New(0, 0)
	tu.Up()
	if tu.Brush {
		t.Error("Up should lift the pen")
	}
	tu.Down()
	if !tu.Brush {
		t.Error("Down should lower the pen")
	}
	tu.Toggle()
	tu.Toggle()
	if !tu.Brush {
		t.Error("double Toggle should restore the pen")
	}
}

func TestTurns(t *testing.T) {
	tu := New(0, 0)
	tu.Right(90)
	tu.Right(300)
	tu.Left(30)
	if tu.Rotation != 360 {
		t.Errorf("rotation should not wrap, got %v", tu.Rotation)
	}
	tu.Left(1000)
	if tu.Rotation != -640 {
		t.Errorf("rotation should not wrap, got %v", tu.Rotation)
	}
}

func TestForward(t *testing.T) {
	tu := New(0, 0)
	tu.Forward(4)
	if tu.X != 4 || tu.Y != 0 {
		t.Fatalf("expected position (4, 0), got (%v, %v)", tu.X, tu.Y)
	}
	for x := 0; x <= 4; x++ {
		if !tu.cvs.Get(x, 0) {
			t.Errorf("pixel (%d, 0) should be drawn", x)
		}
		if tu.cvs.Get(x, 1) {
			t.Errorf("pixel (%d, 1) should not be drawn", x)
		}
	}
	if tu.cvs.Get(5, 0) {
		t.Error("line drawn past its end")
	}
	if f := tu.Frame(); f != "⠉⠉⠁" {
		t.Errorf("unexpected frame %q", f)
	}
}

func TestBack(t *testing.T) {
	tu := New(10, 10)
	tu.Right(90)
	tu.Back(4)
	if math.Abs(tu.X-10) > 1e-9 || math.Abs(tu.Y-6) > 1e-9 {
		t.Fatalf("expected position (10, 6), got (%v, %v)", tu.X, tu.Y)
	}
	for y := 6; y <= 10; y++ {
		if !tu.cvs.Get(10, y) {
			t.Errorf("pixel (10, %d) should be drawn", y)
		}
	}
}

func TestPenUp(t *testing.T) {
	tu := New(0, 0).Width(4).Height(4)
	before := tu.Frame()
	tu.Up()
	tu.Forward(10)
	if tu.X != 10 {
		t.Errorf("pen up should still move, got x = %v", tu.X)
	}
	if f := tu.Frame(); f != before {
		t.Errorf("pen up should not draw, got %q", f)
	}
}

func TestMoveKeepsExactPosition(t *testing.T) {
	tu := New(0, 0)
	tu.Move(-3.7, 2.2)
	if tu.X != -3.7 || tu.Y != 2.2 {
		t.Errorf("position should not be rounded nor clamped, got (%v, %v)", tu.X, tu.Y)
	}
}

func TestPixel(t *testing.T) {
	for _, test := range []struct {
		v   float64
		exp int
	}{
		{0, 0},
		{0.4, 0},
		{0.5, 1},
		{2.49, 2},
		{-0.4, 0},
		{-0.5, 0},
		{-3.7, 0},
		{7.5, 8},
	} {
		if got := pixel(test.v); got != test.exp {
			t.Errorf("%v: expected %d, got %d", test.v, test.exp, got)
		}
	}
}

func TestNegativeSpace(t *testing.T) {
	tu := New(-5, 1)
	tu.Move(3, 1)
	// the start is clamped to x = 0
	for x := 0; x <= 3; x++ {
		if !tu.cvs.Get(x, 1) {
			t.Errorf("pixel (%d, 1) should be drawn", x)
		}
	}
}

func TestSquare(t *testing.T) {
	tu := New(0, 0)
	for i := 0; i < 4; i++ {
		tu.Forward(3)
		tu.Right(90)
	}
	if f := tu.Frame(); f != "⣏⣹" {
		t.Errorf("unexpected square %q", f)
	}
	if f1, f2 := tu.Frame(), tu.Frame(); f1 != f2 {
		t.Error("Frame is not idempotent")
	}
}

func ExampleTurtle() {
	tu := New(0, 0)
	tu.Forward(7)
	tu.Right(90)
	tu.Forward(3)
	fmt.Println(tu.Frame())
	// Output: ⠉⠉⠉⢹
}
