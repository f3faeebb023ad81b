package svgicon

import (
	"fmt"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/image/math/fixed"
)

type recorder struct {
	ops []string
}

func (r *recorder) Start(a fixed.Point26_6) {
	r.ops = append(r.ops, fmt.Sprintf("start (%v, %v)", a.X, a.Y))
}
func (r *recorder) Line(b fixed.Point26_6) {
	r.ops = append(r.ops, fmt.Sprintf("line (%v, %v)", b.X, b.Y))
}
func (r *recorder) QuadBezier(b, c fixed.Point26_6)    { r.ops = append(r.ops, "quad") }
func (r *recorder) CubeBezier(b, c, d fixed.Point26_6) { r.ops = append(r.ops, "cube") }
func (r *recorder) Stop(closeLoop bool)                { r.ops = append(r.ops, fmt.Sprint("stop ", closeLoop)) }

func TestReplay(t *testing.T) {
	var lex pathLexer
	if err := lex.compilePath("M0 0L1 0Q1 1 2 2M3 3C0 0 1 1 2 2Z"); err != nil {
		t.Fatal(err)
	}
	var r recorder
	lex.path.Replay(&r)
	exp := []string{
		"start (0:00, 0:00)", "line (1:00, 0:00)", "quad", "stop false",
		"start (3:00, 3:00)", "cube", "stop true",
	}
	if !reflect.DeepEqual(r.ops, exp) {
		t.Errorf("expected %q, got %q", exp, r.ops)
	}
}

type paintCall struct {
	path  string
	paint Paint
}

type paintRecorder []paintCall

func (p *paintRecorder) Paint(path Path, paint Paint) {
	*p = append(*p, paintCall{path.String(), paint})
}

func TestDraw(t *testing.T) {
	icon := parseString(t, `<svg viewBox="0 0 4 4">
		<rect width="2" height="2" fill="none"/>
		<rect width="2" height="2" fill="none" stroke="black" stroke-width="0.5" stroke-dasharray="1"/>
		<rect width="2" height="2" opacity="0"/>
		<line x2="1" transform="translate(1 1)"/>
	</svg>`)
	icon.Fit(8, 8)
	var calls paintRecorder
	icon.Draw(&calls)
	if len(calls) != 2 {
		t.Fatalf("expected 2 painted shapes, got %d", len(calls))
	}
	outline := calls[0]
	if outline.path != "M0,0 L4,0 L4,4 L0,4 Z" {
		t.Errorf("unexpected device path %s", outline.path)
	}
	if outline.paint.Fill != nil || outline.paint.Stroke == nil {
		t.Errorf("expected a stroke only, got %+v", outline.paint)
	}
	if l := outline.paint.Line; l.Width != 1 || !reflect.DeepEqual(l.Dash, []float64{2, 2}) {
		t.Errorf("stroke not scaled: %+v", l)
	}
	if line := calls[1]; line.path != "M2,2 L4,2" {
		t.Errorf("unexpected device path %s", line.path)
	}
}

func TestPaintOpacity(t *testing.T) {
	icon := parseString(t, `<svg><rect width="1" height="1" fill-opacity="0.5" stroke="white" stroke-width="0"/></svg>`)
	p := icon.Shapes[0].Style.paint(Identity)
	if p.Stroke != nil {
		t.Error("a null width should disable the stroke")
	}
	if _, _, _, a := p.Fill.RGBA(); a != 0x8000 {
		t.Errorf("expected half opacity, got alpha %x", a)
	}
}

func TestFitExtent(t *testing.T) {
	icon, err := Parse(strings.NewReader(`<svg><line x1="2" y1="1" x2="6" y2="1"/></svg>`), Strict)
	if err != nil {
		t.Fatal(err)
	}
	icon.Fit(8, 4)
	// the flat extent keeps its height
	if x, y := icon.Transform.Apply(2, 1); x != 0 || y != 0 {
		t.Errorf("expected origin, got %v %v", x, y)
	}
	if x, y := icon.Transform.Apply(6, 2); x != 8 || y != 1 {
		t.Errorf("expected (8,1), got %v %v", x, y)
	}
}
