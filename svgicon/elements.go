package svgicon

import (
	"encoding/xml"
	"fmt"
	"math"
	"strconv"
	"strings"
)

type attrs []xml.Attr

func (a attrs) get(name string) string {
	for _, at := range a {
		if at.Name.Local == name {
			return at.Value
		}
	}
	return ""
}

// parseLength reads a number with an optional unit: percentages
// are relative to ref, and absolute units are converted to pixels.
func parseLength(value string, ref float64) (float64, error) {
	value = strings.TrimSpace(value)
	factor := 1.
	for _, u := range []struct {
		suffix string
		factor float64
	}{
		{"%", ref / 100}, {"px", 1}, {"pt", 4. / 3}, {"pc", 16},
		{"mm", 96 / 25.4}, {"cm", 96 / 2.54}, {"in", 96},
	} {
		if strings.HasSuffix(value, u.suffix) {
			value, factor = strings.TrimSuffix(value, u.suffix), u.factor
			break
		}
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid length %q", value)
	}
	return f * factor, nil
}

// length reads the attribute name, defaulting to 0.
// Percentages refer to the view box width (axis 0),
// height (axis 1) or normalized diagonal (axis 2).
func (p *parser) length(a attrs, name string, axis int) (float64, error) {
	v := a.get(name)
	if v == "" {
		return 0, nil
	}
	vb := p.icon.ViewBox
	ref := [3]float64{vb.W, vb.H, math.Hypot(vb.W, vb.H) / math.Sqrt2}[axis]
	f, err := parseLength(v, ref)
	if err != nil {
		return 0, p.report(fmt.Errorf("attribute %s: %w", name, err))
	}
	return f, nil
}

// lengths reads several attributes, stopping at the first error.
func (p *parser) lengths(a attrs, names string, axes ...int) ([]float64, error) {
	var out []float64
	for i, name := range strings.Fields(names) {
		f, err := p.length(a, name, axes[i])
		if err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, nil
}

// ignored elements add no geometry and are never reported.
var ignored = map[string]bool{
	"g": true, "defs": true, "title": true, "desc": true, "metadata": true,
	"linearGradient": true, "radialGradient": true, "stop": true,
}

// element adds the geometry of one element.
func (p *parser) element(name string, attributes []xml.Attr) error {
	a := attrs(attributes)
	switch name {
	case "svg":
		return p.root(a)
	case "use":
		return p.use(a)
	case "path":
		var lex pathLexer
		if err := lex.compilePath(a.get("d")); err != nil {
			// the data before the error is still drawn
			if err = p.report(fmt.Errorf("path: %w", err)); err != nil {
				return err
			}
		}
		p.addShape(lex.path)
	case "rect":
		v, err := p.lengths(a, "x y width height", 0, 1, 0, 1)
		if err != nil {
			return err
		}
		rx, ry := -1., -1.
		if a.get("rx") != "" {
			if rx, err = p.length(a, "rx", 0); err != nil {
				return err
			}
		}
		if a.get("ry") != "" {
			if ry, err = p.length(a, "ry", 1); err != nil {
				return err
			}
		}
		rx, ry = cornerRadii(rx, ry)
		p.addShape(rectPath(v[0], v[1], v[2], v[3], rx, ry))
	case "circle":
		v, err := p.lengths(a, "cx cy r", 0, 1, 2)
		if err != nil {
			return err
		}
		p.addShape(ellipsePath(v[0], v[1], v[2], v[2]))
	case "ellipse":
		v, err := p.lengths(a, "cx cy rx ry", 0, 1, 0, 1)
		if err != nil {
			return err
		}
		p.addShape(ellipsePath(v[0], v[1], v[2], v[3]))
	case "line":
		v, err := p.lengths(a, "x1 y1 x2 y2", 0, 1, 0, 1)
		if err != nil {
			return err
		}
		p.addShape(polyPath(v, false))
	case "polyline", "polygon":
		coords, err := readNumbers(a.get("points"), false)
		if err != nil {
			return p.report(fmt.Errorf("%s: %w", name, err))
		}
		if len(coords)%2 == 1 {
			if err := p.report(fmt.Errorf("%s: %w", name, errParamMismatch)); err != nil {
				return err
			}
			coords = coords[:len(coords)-1]
		}
		p.addShape(polyPath(coords, name == "polygon"))
	default:
		if !ignored[name] {
			return p.report(fmt.Errorf("unsupported element <%s>", name))
		}
	}
	return nil
}

// root reads the size of the outermost svg element.
// Nested svg elements are treated as groups.
func (p *parser) root(a attrs) error {
	if p.sawRoot {
		return nil
	}
	p.sawRoot = true
	if vb := a.get("viewBox"); vb != "" {
		v, err := readNumbers(vb, false)
		if err != nil || len(v) != 4 {
			return p.report(fmt.Errorf("invalid view box %q", vb))
		}
		p.icon.ViewBox = Box{v[0], v[1], v[2], v[3]}
		return nil
	}
	// without view box, width and height give the user space
	v, err := p.lengths(a, "width height", 0, 1)
	if err != nil {
		return err
	}
	if v[0] > 0 && v[1] > 0 {
		p.icon.ViewBox = Box{W: v[0], H: v[1]}
	}
	return nil
}
