package svgicon

import (
	"reflect"
	"testing"
)

func TestPathBounds(t *testing.T) {
	for _, test := range []struct {
		d        string
		expected Box
	}{
		{"M1 1L3 2", Box{1, 1, 2, 1}},
		{"M0 0Q1 2 2 0", Box{0, 0, 2, 1}},
		{"M0 0C0 3 3 3 3 0", Box{0, 0, 3, 2.25}},
		{"M0 0C1 0 2 0 3 0", Box{0, 0, 3, 0}},
		{"M0 0L1 0ZQ-1 1 0 2", Box{-0.5, 0, 1.5, 2}},
		{"", Box{}},
	} {
		var lex pathLexer
		if err := lex.compilePath(test.d); err != nil {
			t.Fatal(err)
		}
		if got := lex.path.Bounds(); got != test.expected {
			t.Errorf("%s: expected %v, got %v", test.d, test.expected, got)
		}
	}
}

func TestTransformedBounds(t *testing.T) {
	var lex pathLexer
	if err := lex.compilePath("M0 0L2 1"); err != nil {
		t.Fatal(err)
	}
	got := lex.path.Transform(translation(1, 1).Then(scaling(2, 2))).Bounds()
	if exp := (Box{1, 1, 4, 2}); got != exp {
		t.Errorf("expected %v, got %v", exp, got)
	}
}

func TestQuadraticRoots(t *testing.T) {
	for _, test := range []struct {
		a, b, c  float64
		expected []float64
	}{
		{1, 0, -4, []float64{2, -2}},
		{1, 2, 1, []float64{-1}},
		{1, 0, 1, nil},
		{0, 2, -1, []float64{0.5}},
		{0, 0, 1, nil},
	} {
		if got := quadraticRoots(test.a, test.b, test.c); !reflect.DeepEqual(got, test.expected) {
			t.Errorf("%v %v %v: expected %v, got %v", test.a, test.b, test.c, test.expected, got)
		}
	}
}
