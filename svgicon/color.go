package svgicon

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var errInvalidColor = errors.New("invalid color")

// parseSVGColor parses an SVG paint value.
// "none" returns a nil color. Paint servers (`url(#id)`)
// are not supported and resolve to black.
func parseSVGColor(v string) (color.Color, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case v == "none" || v == "transparent":
		return nil, nil
	case v == "currentcolor" || strings.HasPrefix(v, "url("):
		return color.Black, nil
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v[1:])
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGBColor(v[4 : len(v)-1])
	}
	if c, ok := colornames.Map[v]; ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", errInvalidColor, v)
}

func parseHexColor(hex string) (color.Color, error) {
	if len(hex) == 3 { // #rgb is #rrggbb
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("%w: #%s", errInvalidColor, hex)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: #%s", errInvalidColor, hex)
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}

// parseRGBColor parses the inside of rgb( ), with
// integer or percentage components
func parseRGBColor(args string) (color.Color, error) {
	parts := strings.FieldsFunc(args, func(r rune) bool { return r == ',' || r == ' ' })
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w: rgb(%s)", errInvalidColor, args)
	}
	var comps [3]uint8
	for i, p := range parts {
		scale := 1.
		if strings.HasSuffix(p, "%") {
			scale = 255. / 100
			p = strings.TrimSuffix(p, "%")
		}
		f, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: rgb(%s)", errInvalidColor, args)
		}
		f *= scale
		if f < 0 {
			f = 0
		} else if f > 255 {
			f = 255
		}
		comps[i] = uint8(f + 0.5)
	}
	return color.NRGBA{R: comps[0], G: comps[1], B: comps[2], A: 0xff}, nil
}
