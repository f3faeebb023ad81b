package svgicon

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
)

// pathLexer compiles the `d` attribute of path elements,
// and more generally lists of numbers found in attributes.
type pathLexer struct {
	path           Path
	args           []float64 // of the pending command
	curX, curY     float64   // current point
	ctrlX, ctrlY   float64   // last control point, for S and T
	startX, startY float64
	lastKey        byte
	inPath         bool
}

// argCount is the number of values taken by each path command.
var argCount = map[byte]int{
	'M': 2, 'L': 2, 'H': 1, 'V': 1,
	'C': 6, 'S': 4, 'Q': 4, 'T': 2,
	'A': 7, 'Z': 0,
}

func isSeparator(r byte) bool {
	return r == ',' || unicode.IsSpace(rune(r))
}

// readNumbers splits s into numbers, accepting the compact
// notations allowed by SVG ("1-2", ".5.5", "1e-3").
// When arc is true, the flags of arc commands may be written
// as single digits without separator ("a1 1 0 01 2 2").
func readNumbers(s string, arc bool) ([]float64, error) {
	var out []float64
	i := 0
	for {
		for i < len(s) && isSeparator(s[i]) {
			i++
		}
		if i >= len(s) {
			return out, nil
		}
		if arc && (len(out)%7 == 3 || len(out)%7 == 4) {
			switch s[i] {
			case '0':
				out = append(out, 0)
			case '1':
				out = append(out, 1)
			default:
				return nil, fmt.Errorf("invalid arc flag in %q", s)
			}
			i++
			continue
		}
		start := i
		if s[i] == '+' || s[i] == '-' {
			i++
		}
		seenDot, seenExp := false, false
	scan:
		for ; i < len(s); i++ {
			switch c := s[i]; {
			case c >= '0' && c <= '9':
			case c == '.' && !seenDot && !seenExp:
				seenDot = true
			case (c == 'e' || c == 'E') && !seenExp && i > start:
				seenExp = true
				if i+1 < len(s) && (s[i+1] == '+' || s[i+1] == '-') {
					i++
				}
			default:
				break scan
			}
		}
		f, err := strconv.ParseFloat(s[start:i], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number in %q: %w", s, err)
		}
		out = append(out, f)
	}
}

// reflectControl returns the current point, or the reflection of
// the last control point when the previous command was one of keys.
func (c *pathLexer) reflectControl(keys string) (float64, float64) {
	if strings.IndexByte(keys, c.lastKey) >= 0 {
		return 2*c.curX - c.ctrlX, 2*c.curY - c.ctrlY
	}
	return c.curX, c.curY
}

// apply applies the command key, whose arguments are in c.args
func (c *pathLexer) apply(key byte) error {
	upper := byte(unicode.ToUpper(rune(key)))
	rel := key != upper
	n := argCount[upper]
	if n == 0 {
		if len(c.args) != 0 {
			return errParamMismatch
		}
		if c.inPath {
			c.path.Close()
			c.curX, c.curY = c.startX, c.startY
			c.inPath = false
		}
		c.lastKey = upper
		return nil
	}
	if len(c.args) == 0 || len(c.args)%n != 0 {
		return errParamMismatch
	}
	for k := 0; k < len(c.args); k += n {
		args := c.args[k : k+n]
		// absolute coordinates, computed from the current point
		abs := func(i int) (float64, float64) {
			if rel {
				return c.curX + args[i], c.curY + args[i+1]
			}
			return args[i], args[i+1]
		}
		switch upper {
		case 'M':
			x, y := abs(0)
			if k == 0 {
				c.path.MoveTo(x, y)
				c.startX, c.startY = x, y
				c.inPath = true
			} else { // extra pairs are implicit line-to
				c.path.LineTo(x, y)
			}
			c.curX, c.curY = x, y
		case 'L':
			x, y := abs(0)
			c.lineTo(x, y)
		case 'H':
			x := args[0]
			if rel {
				x += c.curX
			}
			c.lineTo(x, c.curY)
		case 'V':
			y := args[0]
			if rel {
				y += c.curY
			}
			c.lineTo(c.curX, y)
		case 'C':
			x1, y1 := abs(0)
			x2, y2 := abs(2)
			x, y := abs(4)
			c.ensureStarted()
			c.path.CubeTo(x1, y1, x2, y2, x, y)
			c.ctrlX, c.ctrlY = x2, y2
			c.curX, c.curY = x, y
		case 'S':
			x1, y1 := c.reflectControl("CS")
			x2, y2 := abs(0)
			x, y := abs(2)
			c.ensureStarted()
			c.path.CubeTo(x1, y1, x2, y2, x, y)
			c.ctrlX, c.ctrlY = x2, y2
			c.curX, c.curY = x, y
		case 'Q':
			x1, y1 := abs(0)
			x, y := abs(2)
			c.ensureStarted()
			c.path.QuadTo(x1, y1, x, y)
			c.ctrlX, c.ctrlY = x1, y1
			c.curX, c.curY = x, y
		case 'T':
			x1, y1 := c.reflectControl("QT")
			x, y := abs(0)
			c.ensureStarted()
			c.path.QuadTo(x1, y1, x, y)
			c.ctrlX, c.ctrlY = x1, y1
			c.curX, c.curY = x, y
		case 'A':
			x, y := abs(5)
			c.arcTo(args, x, y)
		}
		c.lastKey = upper
	}
	return nil
}

// ensureStarted opens a sub-path at the current point if needed,
// as after a close command.
func (c *pathLexer) ensureStarted() {
	if !c.inPath {
		c.path.MoveTo(c.curX, c.curY)
		c.startX, c.startY = c.curX, c.curY
		c.inPath = true
	}
}

func (c *pathLexer) lineTo(x, y float64) {
	c.ensureStarted()
	c.path.LineTo(x, y)
	c.curX, c.curY = x, y
}

// arcTo adds an elliptical arc from the current point to (x, y)
func (c *pathLexer) arcTo(args []float64, x, y float64) {
	c.ensureStarted()
	rx, ry := math.Abs(args[0]), math.Abs(args[1])
	if rx == 0 || ry == 0 || (x == c.curX && y == c.curY) {
		// degenerated arcs are straight lines, or nothing
		if x != c.curX || y != c.curY {
			c.lineTo(x, y)
		}
		return
	}
	phi := radians(args[2])
	cx, cy, rx, ry, theta, delta := arcCenter(c.curX, c.curY, x, y, rx, ry, phi, args[3] != 0, args[4] != 0)
	c.path.addEllipseArc(cx, cy, rx, ry, phi, theta, delta)
	// the last point is the exact end, not a rounded one
	c.path[len(c.path)-1].Pts[2] = pt(x, y)
	c.curX, c.curY = x, y
}

// compilePath parses d, the data of a path element, into c.path.
func (c *pathLexer) compilePath(d string) error {
	c.curX, c.curY = 0, 0
	c.ctrlX, c.ctrlY = 0, 0
	c.startX, c.startY = 0, 0
	c.lastKey = 0
	c.inPath = false

	var key byte
	start := -1 // start of the arguments of key
	flush := func(end int) error {
		if key == 0 {
			if strings.TrimSpace(d[:end]) != "" {
				return fmt.Errorf("path data should start with a command: %q", d)
			}
			return nil
		}
		points, err := readNumbers(d[start:end], key == 'A' || key == 'a')
		if err != nil {
			return err
		}
		c.args = points
		return c.apply(key)
	}
	for i := 0; i < len(d); i++ {
		ch := d[i]
		if _, ok := argCount[byte(unicode.ToUpper(rune(ch)))]; !ok {
			continue
		}
		if err := flush(i); err != nil {
			return err
		}
		key, start = ch, i+1
	}
	return flush(len(d))
}
