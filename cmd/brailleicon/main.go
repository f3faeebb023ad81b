// Brailleicon prints SVG icons on the terminal, using
// braille characters as a 2x4 pixels grid.
//
// Usage:
//
//	brailleicon [-w px] [-h px] [-outline] [-strict] file.svg...
//
// Each icon is stretched to the frame size and printed
// followed by a newline.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/benoitkugler/drawille/canvas"
	"github.com/benoitkugler/drawille/svgdraw"
	"github.com/benoitkugler/drawille/svgicon"
	"github.com/benoitkugler/drawille/svgraster"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("brailleicon: ")

	width, height := 80, 40
	outline, strict := false, false
	flag.IntVar(&width, "w", width, "frame width in `pixels` (2 per character)")
	flag.IntVar(&height, "h", height, "frame height in `pixels` (4 per character)")
	flag.BoolVar(&outline, "outline", outline, "draw path outlines instead of painting")
	flag.BoolVar(&strict, "strict", strict, "fail on unsupported SVG elements")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: brailleicon [options] file.svg...\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	flag.Parse()
	if flag.NArg() == 0 || width <= 0 || height <= 0 {
		flag.Usage()
	}

	mode := svgicon.Warn
	if strict {
		mode = svgicon.Strict
	}
	for _, file := range flag.Args() {
		icon, err := svgicon.ParseFile(file, mode)
		if err != nil {
			log.Fatalf("%s: %v", file, err)
		}
		c := canvas.New(width, height)
		if outline {
			svgdraw.Render(icon, c)
		} else {
			svgraster.Render(icon, c)
		}
		if _, err := c.WriteTo(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}
}
