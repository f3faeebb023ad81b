package svgicon

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// CapMode is the shape of open sub-path ends.
type CapMode uint8

const (
	ButtCap CapMode = iota
	RoundCap
	SquareCap
)

// JoinMode is the shape of stroke corners.
type JoinMode uint8

const (
	MiterJoin JoinMode = iota
	RoundJoin
	BevelJoin
)

// Style is the resolved painting state of a shape.
// A nil Fill or Stroke disables that part.
type Style struct {
	Fill          color.Color
	Stroke        color.Color
	FillOpacity   float64
	StrokeOpacity float64
	Opacity       float64 // product of the group opacities
	EvenOdd       bool

	StrokeWidth float64
	Cap         CapMode
	Join        JoinMode
	MiterLimit  float64
	Dash        []float64
	DashOffset  float64

	// Transform maps the shape coordinates to the
	// ones of the root element.
	Transform Matrix
}

// defaultStyle is the initial value of each property.
var defaultStyle = Style{
	Fill:          color.Black,
	FillOpacity:   1,
	StrokeOpacity: 1,
	Opacity:       1,
	StrokeWidth:   1,
	MiterLimit:    4,
	Transform:     Identity,
}

var (
	capNames  = map[string]CapMode{"butt": ButtCap, "round": RoundCap, "square": SquareCap}
	joinNames = map[string]JoinMode{"miter": MiterJoin, "round": RoundJoin, "bevel": BevelJoin}
)

// set applies one presentation attribute or style declaration.
// Unknown properties are skipped, and invalid values leave s unchanged.
func (s *Style) set(name, value string) error {
	value = strings.TrimSpace(value)
	if value == "inherit" {
		return nil
	}
	old := *s
	var err error
	switch name {
	case "fill":
		s.Fill, err = parseSVGColor(value)
	case "stroke":
		s.Stroke, err = parseSVGColor(value)
	case "fill-opacity":
		s.FillOpacity, err = parseOpacity(value)
	case "stroke-opacity":
		s.StrokeOpacity, err = parseOpacity(value)
	case "opacity":
		var o float64
		o, err = parseOpacity(value)
		s.Opacity *= o
	case "fill-rule":
		s.EvenOdd = value == "evenodd"
	case "stroke-width":
		s.StrokeWidth, err = parseLength(value, 1)
	case "stroke-linecap":
		mode, ok := capNames[value]
		if !ok {
			return fmt.Errorf("unsupported line cap %q", value)
		}
		s.Cap = mode
	case "stroke-linejoin":
		mode, ok := joinNames[value]
		if !ok {
			return fmt.Errorf("unsupported line join %q", value)
		}
		s.Join = mode
	case "stroke-miterlimit":
		s.MiterLimit, err = strconv.ParseFloat(value, 64)
	case "stroke-dasharray":
		s.Dash, err = parseDashes(value)
	case "stroke-dashoffset":
		s.DashOffset, err = parseLength(value, 1)
	case "transform":
		var m Matrix
		m, err = parseTransform(value)
		s.Transform = s.Transform.Then(m)
	}
	if err != nil {
		*s = old
		return fmt.Errorf("attribute %s: %w", name, err)
	}
	return nil
}

// parseOpacity accepts a number or a percentage,
// clamped to [0, 1].
func parseOpacity(value string) (float64, error) {
	f, err := parseLength(value, 1)
	return math.Max(0, math.Min(1, f)), err
}

func parseDashes(value string) ([]float64, error) {
	if value == "none" {
		return nil, nil
	}
	dashes, err := readNumbers(value, false)
	if err != nil {
		return nil, err
	}
	var sum float64
	for _, d := range dashes {
		if d < 0 {
			return nil, fmt.Errorf("negative dash length in %q", value)
		}
		sum += d
	}
	if sum == 0 { // solid line
		return nil, nil
	}
	if len(dashes)%2 == 1 {
		dashes = append(dashes, dashes...)
	}
	return dashes, nil
}

// parseTransform parses a transform list such as
// "translate(10) rotate(45 5 5)".
func parseTransform(value string) (Matrix, error) {
	m := Identity
	rest := strings.TrimSpace(value)
	for rest != "" {
		open := strings.IndexByte(rest, '(')
		end := strings.IndexByte(rest, ')')
		if open < 0 || end < open {
			return m, fmt.Errorf("invalid transform %q", value)
		}
		name := strings.TrimSpace(rest[:open])
		args, err := readNumbers(rest[open+1:end], false)
		if err != nil {
			return m, err
		}
		t, err := transformFunc(name, args)
		if err != nil {
			return m, err
		}
		m = m.Then(t)
		rest = strings.TrimLeft(rest[end+1:], ", \t\r\n")
	}
	return m, nil
}

func transformFunc(name string, args []float64) (Matrix, error) {
	n := len(args)
	switch {
	case name == "matrix" && n == 6:
		var m Matrix
		copy(m[:], args)
		return m, nil
	case name == "translate" && n == 1:
		return translation(args[0], 0), nil
	case name == "translate" && n == 2:
		return translation(args[0], args[1]), nil
	case name == "scale" && n == 1:
		return scaling(args[0], args[0]), nil
	case name == "scale" && n == 2:
		return scaling(args[0], args[1]), nil
	case name == "rotate" && n == 1:
		return rotation(args[0]), nil
	case name == "rotate" && n == 3: // around (cx, cy)
		cx, cy := args[1], args[2]
		return translation(cx, cy).Then(rotation(args[0])).Then(translation(-cx, -cy)), nil
	case name == "skewX" && n == 1:
		return skewing(args[0], 0), nil
	case name == "skewY" && n == 1:
		return skewing(0, args[0]), nil
	}
	return Matrix{}, fmt.Errorf("invalid transform %s with %d arguments", name, n)
}

// withOpacity returns c scaled by o, as a premultiplied color.
// It returns nil for a nil color or a null opacity.
func withOpacity(c color.Color, o float64) color.Color {
	if c == nil || o <= 0 {
		return nil
	}
	r, g, b, a := c.RGBA()
	mul := func(v uint32) uint16 { return uint16(float64(v)*o + 0.5) }
	return color.RGBA64{R: mul(r), G: mul(g), B: mul(b), A: mul(a)}
}

// LineStyle are the stroke parameters, in device pixels.
type LineStyle struct {
	Width      float64
	Cap        CapMode
	Join       JoinMode
	MiterLimit float64
	Dash       []float64
	DashOffset float64
}

// Paint is what a driver needs to paint one shape, once
// transformed to device space. Colors carry their opacity,
// and a nil color disables that part.
type Paint struct {
	Fill    color.Color
	EvenOdd bool
	Stroke  color.Color
	Line    LineStyle
}

// paint resolves s for a shape drawn with the full transform m.
func (s Style) paint(m Matrix) Paint {
	k := m.scale()
	p := Paint{
		Fill:    withOpacity(s.Fill, s.FillOpacity*s.Opacity),
		EvenOdd: s.EvenOdd,
		Stroke:  withOpacity(s.Stroke, s.StrokeOpacity*s.Opacity),
		Line: LineStyle{
			Width:      s.StrokeWidth * k,
			Cap:        s.Cap,
			Join:       s.Join,
			MiterLimit: s.MiterLimit,
			DashOffset: s.DashOffset * k,
		},
	}
	if p.Line.Width <= 0 {
		p.Stroke = nil
	}
	for _, d := range s.Dash {
		p.Line.Dash = append(p.Line.Dash, d*k)
	}
	return p
}
