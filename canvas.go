package raytracer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/jpclark/raytracer/internal/prim"
)

// Canvas is a rectangular grid of linear-RGB colors, components in
// [0,1]. Only the output Canvas is written during a render; everything
// that feeds it is immutable.
type Canvas struct {
	Width, Height int
	pixels        []prim.Color
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]prim.Color, width*height),
	}
}

func (c *Canvas) index(x, y int) (int, error) {
	if x < 0 || x >= c.Width || y < 0 || y >= c.Height {
		return 0, fmt.Errorf("raytracer: pixel (%d, %d) out of bounds for %dx%d canvas", x, y, c.Width, c.Height)
	}
	return y*c.Width + x, nil
}

// WritePixel sets the color at (x, y). Out-of-bounds coordinates are a
// programmer error (spec.md §7) and are silently ignored rather than
// panicking mid-render; callers that need to detect the mistake should
// use PixelAt/SetPixel's error return during development.
func (c *Canvas) WritePixel(x, y int, col prim.Color) {
	if i, err := c.index(x, y); err == nil {
		c.pixels[i] = col
	}
}

// SetPixel is WritePixel's checked counterpart, returning an error for
// an out-of-bounds coordinate instead of ignoring it.
func (c *Canvas) SetPixel(x, y int, col prim.Color) error {
	i, err := c.index(x, y)
	if err != nil {
		return err
	}
	c.pixels[i] = col
	return nil
}

// PixelAt returns the color at (x, y), or an error if out of bounds.
func (c *Canvas) PixelAt(x, y int) (prim.Color, error) {
	i, err := c.index(x, y)
	if err != nil {
		return prim.Color{}, err
	}
	return c.pixels[i], nil
}

// Image converts the canvas to a standard library image.Image (for
// encoders, golden-image tests, and the demo command's PNG export).
func (c *Canvas) Image() image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			p, _ := c.PixelAt(x, y)
			r, g, b := p.ToBytes()
			img.SetNRGBA(x, y, color.NRGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

const ppmMaxLineWidth = 70

// ToPPM renders the canvas as an ASCII PPM (P3) image: header
// "P3\n<width> <height>\n255\n", then one row of space-separated
// R G B triples per canvas row, wrapped so no emitted line exceeds 70
// characters (splitting only at spaces, never inside a triple), and a
// trailing newline.
func (c *Canvas) ToPPM() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "P3\n%d %d\n255\n", c.Width, c.Height)

	for y := 0; y < c.Height; y++ {
		var tokens []string
		for x := 0; x < c.Width; x++ {
			p, _ := c.PixelAt(x, y)
			r, g, b := p.ToBytes()
			tokens = append(tokens, fmt.Sprintf("%d %d %d", r, g, b))
		}
		writeWrappedRow(&buf, tokens)
	}

	return buf.String()
}

// writeWrappedRow writes space-separated tokens (one "R G B" triple per
// pixel) to buf, wrapping lines at ppmMaxLineWidth columns without ever
// splitting a token.
func writeWrappedRow(buf *bytes.Buffer, tokens []string) {
	lineLen := 0
	for i, tok := range tokens {
		sep := 1
		if i == 0 {
			sep = 0
		}
		if lineLen+sep+len(tok) > ppmMaxLineWidth {
			buf.WriteByte('\n')
			lineLen = 0
			sep = 0
		}
		if sep == 1 {
			buf.WriteByte(' ')
		}
		buf.WriteString(tok)
		lineLen += sep + len(tok)
	}
	buf.WriteByte('\n')
}
