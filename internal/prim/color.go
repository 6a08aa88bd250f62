package prim

import "fmt"

// Color is a linear RGB color with components typically in [0,1],
// though intermediate shading sums may briefly overshoot before the
// final clamp at canvas-to-byte conversion time.
type Color struct {
	R, G, B float64
}

func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

func (c Color) String() string {
	return fmt.Sprintf("Color(%.4f, %.4f, %.4f)", c.R, c.G, c.B)
}

func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

func (c Color) Sub(other Color) Color {
	return Color{R: c.R - other.R, G: c.G - other.G, B: c.B - other.B}
}

func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Multiply performs the Hadamard (component-wise) product used to
// combine a surface color with a light's intensity.
func (c Color) Multiply(other Color) Color {
	return Color{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B}
}

func (c Color) Clamp() Color {
	return Color{
		R: Clamp(0, 1, c.R),
		G: Clamp(0, 1, c.G),
		B: Clamp(0, 1, c.B),
	}
}

func (c Color) ApproxEqual(other Color) bool {
	return ApproxEqual(c.R, other.R) && ApproxEqual(c.G, other.G) && ApproxEqual(c.B, other.B)
}

// ToBytes converts c to clamped, rounded 8-bit channels:
// clamp(round(c*255), 0, 255).
func (c Color) ToBytes() (r, g, b uint8) {
	return channelByte(c.R), channelByte(c.G), channelByte(c.B)
}

func channelByte(v float64) uint8 {
	scaled := v*255 + 0.5 // round-half-up via truncation below
	if scaled < 0 {
		return 0
	}
	if scaled > 255 {
		return 255
	}
	return uint8(scaled)
}

// RGBA implements image.Color so a Color can be written directly into
// an *image.RGBA or compared against a decoded golden PNG.
func (c Color) RGBA() (r, g, b, a uint32) {
	const max = 0xffff
	cl := c.Clamp()
	return uint32(cl.R * max), uint32(cl.G * max), uint32(cl.B * max), max
}
