/*
Package qrsvg encodes text into QR Code symbols rendered as SVG.

The encoder is byte mode only, supports symbol versions 1 to 6 at
error correction level L, and follows ISO/IEC 18004: Reed-Solomon
error correction over GF(2^8), block interleaving, an eight mask
penalty trial, and format information.

The common case is a single call:

	svg, err := qrsvg.Encode("https://example.com", false)

For more control, build a Code and render it:

	code, err := qrsvg.New("https://example.com")
	code.ModuleSize = 8
	svg := code.SVG(true)

Encoding is pure computation with no shared state: a Code is immutable
once built, and concurrent calls need no locking.
*/
package qrsvg

import (
	"bytes"
	"errors"
	"strings"
)

var (
	// ErrInvalidInput is returned when the content is empty after
	// trimming whitespace.
	ErrInvalidInput = errors.New("qrsvg: no content to encode")

	// ErrPayloadTooLarge is returned when the content does not fit
	// the version 6 byte mode capacity of 134 bytes.
	ErrPayloadTooLarge = errors.New("qrsvg: content too long to encode")
)

// Code is a fully encoded QR Code symbol.
type Code struct {
	// Original content encoded, with surrounding whitespace trimmed.
	Content string

	// Symbol version, 1-6.
	VersionNumber int

	// Selected mask pattern, 0-7.
	Mask int

	// Side length of one module in SVG pixels. Zero means
	// DefaultModuleSize.
	ModuleSize int

	version *qrVersion
	symbol  *symbol
}

// New encodes content into a QR Code symbol.
//
// The content is trimmed of surrounding whitespace and must be
// non-empty; its UTF-8 byte length must not exceed 134 bytes, the
// version 6 byte mode capacity.
func New(content string) (*Code, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrInvalidInput
	}

	data := []byte(content)

	version, err := chooseVersion(len(data))
	if err != nil {
		return nil, err
	}

	encoded, err := encodePayload(version, data)
	if err != nil {
		return nil, err
	}

	sym, mask := buildSymbol(version, encoded)

	return &Code{
		Content:       content,
		VersionNumber: version.number,
		Mask:          mask,
		ModuleSize:    DefaultModuleSize,

		version: version,
		symbol:  sym,
	}, nil
}

// Encode encodes content and returns the SVG document in one call.
// dark swaps the foreground and background colours.
func Encode(content string, dark bool) ([]byte, error) {
	c, err := New(content)
	if err != nil {
		return nil, err
	}

	return c.SVG(dark), nil
}

// Matrix returns the symbol as a grid of modules. matrix[y][x] is
// true if the module at column x, row y is dark. The grid does not
// include the quiet zone.
func (c *Code) Matrix() [][]bool {
	matrix := make([][]bool, c.symbol.size)

	for y := range matrix {
		matrix[y] = append([]bool(nil), c.symbol.module[y]...)
	}

	return matrix
}

// Bitmap returns the symbol including the four module quiet zone on
// every side.
func (c *Code) Bitmap() [][]bool {
	const quietZoneSize = 4

	size := c.symbol.size + 2*quietZoneSize
	bitmap := make([][]bool, size)

	for y := range bitmap {
		bitmap[y] = make([]bool, size)
	}

	for y := 0; y < c.symbol.size; y++ {
		for x := 0; x < c.symbol.size; x++ {
			bitmap[y+quietZoneSize][x+quietZoneSize] = c.symbol.get(x, y)
		}
	}

	return bitmap
}

// String renders the symbol for a terminal using half block
// characters, two symbol rows per text line.
func (c *Code) String() string {
	bits := c.Bitmap()

	var buf bytes.Buffer

	for y := 0; y < len(bits); y += 2 {
		for x := range bits[y] {
			upper := bits[y][x]
			lower := y+1 < len(bits) && bits[y+1][x]

			switch {
			case upper && lower:
				buf.WriteRune('█')
			case upper:
				buf.WriteRune('▀')
			case lower:
				buf.WriteRune('▄')
			default:
				buf.WriteByte(' ')
			}
		}

		buf.WriteByte('\n')
	}

	return buf.String()
}
