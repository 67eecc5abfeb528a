package report

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// Page geometry of the document encoding. Coordinates are PDF points with
// the origin at the bottom-left corner; the cursor starts at topMargin and
// moves down as content is drawn.
const (
	pageWidth  = 612.0
	pageHeight = 792.0
	topMargin  = 750.0
)

// rgb is a text color in 0-255 components
type rgb struct {
	r, g, b int
}

var (
	colorTitle   = rgb{51, 76, 179}
	colorSection = rgb{51, 128, 204}
	colorBody    = rgb{0, 0, 0}
	colorNote    = rgb{102, 102, 102}

	implementationColors = map[string]rgb{
		"fully-implemented":         {0, 204, 0},
		"substantially-implemented": {204, 204, 0},
		"partially-implemented":     {255, 128, 0},
		"not-started":               {255, 0, 0},
	}
)

// canvas owns the current page and vertical cursor of the document
// encoding, converting the bottom-left coordinate convention to fpdf's
// top-left one at draw time.
type canvas struct {
	doc *fpdf.Fpdf
	y   float64
}

func newCanvas() *canvas {
	doc := fpdf.New("P", "pt", "Letter", "")
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	return &canvas{doc: doc, y: topMargin}
}

// ensureSpace starts a new page when the remaining vertical space is below
// the component-specific threshold.
func (c *canvas) ensureSpace(threshold float64) {
	if c.y < threshold {
		c.doc.AddPage()
		c.y = topMargin
	}
}

// advance moves the cursor down without drawing
func (c *canvas) advance(height float64) {
	c.y -= height
}

// text draws a single line at the given x offset without moving the cursor
func (c *canvas) text(x, size float64, style string, color rgb, s string) {
	c.doc.SetFont("Helvetica", style, size)
	c.doc.SetTextColor(color.r, color.g, color.b)
	c.doc.Text(x, pageHeight-c.y, s)
}

// line draws a single line and advances the cursor by height
func (c *canvas) line(x, size float64, style string, color rgb, s string, height float64) {
	c.text(x, size, style, color, s)
	c.advance(height)
}

func (c *canvas) output() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
