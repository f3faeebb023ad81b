// Package svgicon parses the subset of SVG needed to preview
// icons on a braille canvas: basic shapes and paths, with solid
// fills and strokes, organized in groups with transforms.
// Paint servers, text, clipping and filters are not supported.
package svgicon

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/net/html/charset"
)

// ErrorMode decides what happens on unsupported
// elements and invalid attributes.
type ErrorMode uint8

const (
	Ignore ErrorMode = iota // skip silently
	Warn                    // skip and log
	Strict                  // fail
)

var (
	errParamMismatch = errors.New("wrong number of parameters")
	errNoRoot        = errors.New("missing svg root element")
	errUseCycle      = errors.New("use element references itself")
)

// Box is a rectangle in user units.
type Box struct {
	X, Y, W, H float64
}

// Shape is a path with its painting state.
type Shape struct {
	Path  Path // in the shape own coordinates
	Style Style
}

// Icon is a parsed SVG document.
type Icon struct {
	ViewBox Box    // zero when the document has none
	Title   string // first title of the document
	Shapes  []Shape

	// Transform maps user units to device pixels.
	// See Fit and SetTarget.
	Transform Matrix
}

// node is an element kept for later reuse by <use>.
type node struct {
	name     string
	attrs    []xml.Attr
	children []*node
}

type parser struct {
	icon   *Icon
	mode   ErrorMode
	styles []Style // one per open element

	// elements defined in <defs>, by id
	defs map[string]*node
	// open elements inside <defs>, innermost last
	pending   []*node
	defsDepth int
	// ids being expanded by <use>
	expanding map[string]bool

	inTitle bool
	sawRoot bool
}

// Parse reads an SVG document. Documents declaring a
// non UTF-8 encoding are decoded first.
func Parse(r io.Reader, mode ErrorMode) (*Icon, error) {
	p := parser{
		icon:      &Icon{Transform: Identity},
		mode:      mode,
		styles:    []Style{defaultStyle},
		defs:      make(map[string]*node),
		expanding: make(map[string]bool),
	}
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("invalid svg: %w", err)
		}
		if err := p.token(tok); err != nil {
			return nil, err
		}
	}
	if !p.sawRoot {
		return nil, errNoRoot
	}
	return p.icon, nil
}

// ParseFile reads the SVG document stored in name.
func ParseFile(name string, mode ErrorMode) (*Icon, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f, mode)
}

func (p *parser) token(tok xml.Token) error {
	switch tok := tok.(type) {
	case xml.StartElement:
		if p.defsDepth > 0 {
			p.define(tok)
			return nil
		}
		if err := p.open(tok.Name.Local, tok.Attr); err != nil {
			return err
		}
		switch tok.Name.Local {
		case "defs":
			p.defsDepth = 1
		case "title":
			p.inTitle = p.icon.Title == ""
		}
	case xml.EndElement:
		if p.defsDepth > 0 {
			p.defsDepth--
			if p.defsDepth > 0 {
				p.pending = p.pending[:len(p.pending)-1]
				return nil
			}
		}
		p.inTitle = false
		p.close()
	case xml.CharData:
		if p.inTitle {
			p.icon.Title += string(tok)
		}
	}
	return nil
}

// define records an element found inside <defs>.
func (p *parser) define(tok xml.StartElement) {
	n := &node{name: tok.Name.Local, attrs: tok.Copy().Attr}
	if k := len(p.pending); k > 0 {
		parent := p.pending[k-1]
		parent.children = append(parent.children, n)
	}
	for _, a := range n.attrs {
		if a.Name.Local == "id" {
			p.defs[a.Value] = n
		}
	}
	p.pending = append(p.pending, n)
	p.defsDepth++
}

// open pushes the style of an element and adds its geometry.
func (p *parser) open(name string, attrs []xml.Attr) error {
	style := p.styles[len(p.styles)-1]
	if err := p.applyAttrs(&style, attrs); err != nil {
		return err
	}
	p.styles = append(p.styles, style)
	return p.element(name, attrs)
}

func (p *parser) close() {
	if len(p.styles) > 1 {
		p.styles = p.styles[:len(p.styles)-1]
	}
}

// report handles err according to the error mode.
func (p *parser) report(err error) error {
	switch p.mode {
	case Strict:
		return err
	case Warn:
		log.Printf("svgicon: %v", err)
	}
	return nil
}

// applyAttrs sets the presentation attributes, then
// the declarations of the style attribute, which win.
func (p *parser) applyAttrs(s *Style, attrs []xml.Attr) error {
	var inline string
	for _, a := range attrs {
		if a.Name.Local == "style" {
			inline = a.Value
			continue
		}
		if err := s.set(a.Name.Local, a.Value); err != nil {
			if err = p.report(err); err != nil {
				return err
			}
		}
	}
	for _, decl := range strings.Split(inline, ";") {
		kv := strings.SplitN(decl, ":", 2)
		if len(kv) != 2 {
			continue
		}
		if err := s.set(strings.TrimSpace(kv[0]), kv[1]); err != nil {
			if err = p.report(err); err != nil {
				return err
			}
		}
	}
	return nil
}

// addShape stores path with the current style.
func (p *parser) addShape(path Path) {
	if len(path) == 0 {
		return
	}
	p.icon.Shapes = append(p.icon.Shapes, Shape{Path: path, Style: p.styles[len(p.styles)-1]})
}

// use expands the element referenced by href, shifted by (x, y).
func (p *parser) use(a attrs) error {
	href := a.get("href")
	if !strings.HasPrefix(href, "#") {
		return p.report(fmt.Errorf("unsupported use reference %q", href))
	}
	id := href[1:]
	n, ok := p.defs[id]
	if !ok {
		return p.report(fmt.Errorf("unknown use reference %q", href))
	}
	if p.expanding[id] {
		return errUseCycle
	}
	x, err := p.length(a, "x", 0)
	if err != nil {
		return err
	}
	y, err := p.length(a, "y", 1)
	if err != nil {
		return err
	}
	top := &p.styles[len(p.styles)-1]
	top.Transform = top.Transform.Then(translation(x, y))

	p.expanding[id] = true
	defer delete(p.expanding, id)
	return p.expand(n)
}

// expand replays a recorded element and its children.
func (p *parser) expand(n *node) error {
	if err := p.open(n.name, n.attrs); err != nil {
		return err
	}
	defer p.close()
	for _, child := range n.children {
		if err := p.expand(child); err != nil {
			return err
		}
	}
	return nil
}
