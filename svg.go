package qrsvg

import (
	"bytes"
	"fmt"
	"io"

	svgo "github.com/ajstarks/svgo"
)

// Default drawing colours. The dark theme swaps the two.
const (
	lightColor = "#ffffff"
	darkColor  = "#000000"
)

// DefaultModuleSize is the side length of one module, in SVG pixels,
// used when Code.ModuleSize is left unset.
const DefaultModuleSize = 4

// SVG returns the QR Code as an SVG document.
//
// The canvas is square, sized symbol + quiet zone, with a full-canvas
// background rectangle and one rectangle per dark module. dark swaps
// the foreground and background colours for use on dark themes.
func (c *Code) SVG(dark bool) []byte {
	var b bytes.Buffer

	c.WriteSVG(&b, dark)

	return b.Bytes()
}

// WriteSVG writes the QR Code as an SVG document to w.
func (c *Code) WriteSVG(w io.Writer, dark bool) {
	moduleSize := c.ModuleSize
	if moduleSize <= 0 {
		moduleSize = DefaultModuleSize
	}

	// Quiet zone of four modules on every side.
	margin := 4 * moduleSize
	canvas := c.symbol.size*moduleSize + 2*margin

	foreground, background := darkColor, lightColor
	if dark {
		foreground, background = background, foreground
	}

	svg := svgo.New(w)

	svg.Start(canvas, canvas)
	svg.Rect(0, 0, canvas, canvas, fmt.Sprintf(`fill="%s"`, background))

	for y := 0; y < c.symbol.size; y++ {
		for x := 0; x < c.symbol.size; x++ {
			if c.symbol.get(x, y) {
				svg.Rect(margin+x*moduleSize, margin+y*moduleSize,
					moduleSize, moduleSize, fmt.Sprintf(`fill="%s"`, foreground))
			}
		}
	}

	svg.End()
}
