package sorb

import (
	"image/color"
	"math"
)

// Color is an RGB triple. Components are unbounded during arithmetic and
// only clamped when a canvas is serialized.
type Color struct {
	R, G, B float64
}

var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	Yellow  = Color{1, 1, 0}
	Cyan    = Color{0, 1, 1}
	Magenta = Color{1, 0, 1}
)

func MakeColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	const d = 0xffff
	return Color{float64(r) / d, float64(g) / d, float64(b) / d}
}

func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B}
}

func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B}
}

// Mul is the componentwise (Hadamard) product, used to filter a surface
// color through a light color.
func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B}
}

func (a Color) MulScalar(b float64) Color {
	return Color{a.R * b, a.G * b, a.B * b}
}

func (a Color) DivScalar(b float64) Color {
	return Color{a.R / b, a.G / b, a.B / b}
}

func (a Color) Lerp(b Color, t float64) Color {
	return a.Add(b.Sub(a).MulScalar(t))
}

func (a Color) Min(b Color) Color {
	return Color{math.Min(a.R, b.R), math.Min(a.G, b.G), math.Min(a.B, b.B)}
}

func (a Color) Max(b Color) Color {
	return Color{math.Max(a.R, b.R), math.Max(a.G, b.G), math.Max(a.B, b.B)}
}

func (a Color) ApproxEqual(b Color) bool {
	return ApproxEqual(a.R, b.R) && ApproxEqual(a.G, b.G) && ApproxEqual(a.B, b.B)
}

// NRGBA clamps to [0,1] and quantizes to 8 bits per channel.
func (a Color) NRGBA() color.NRGBA {
	r := uint8(math.Round(Clamp(a.R*255, 0, 255)))
	g := uint8(math.Round(Clamp(a.G*255, 0, 255)))
	b := uint8(math.Round(Clamp(a.B*255, 0, 255)))
	return color.NRGBA{r, g, b, 255}
}

// ColorAt makes Color a degenerate solid texture: the same color everywhere.
func (a Color) ColorAt(Point) Color {
	return a
}

// Transform panics: a solid color has no texture-to-world transform, and
// asking for one is a programming error.
func (a Color) Transform() Matrix {
	panic("sorb: a solid color has no transform")
}
