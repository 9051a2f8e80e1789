package render

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a straight-alpha RGBA color with components in [0,1].
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// RGB builds an opaque color from 8-bit components.
func RGB(r, g, b uint8) Color {
	return Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255, A: 1}
}

// ParseHex parses "#rrggbb" or "#rgb" into an opaque color.
func ParseHex(s string) (Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parsing color %q: %w", s, err)
	}
	return Color{R: c.R, G: c.G, B: c.B, A: 1}, nil
}

// MustHex is ParseHex for compile-time constants; it panics on malformed input.
func MustHex(s string) Color {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// Hex returns the "#rrggbb" form, ignoring alpha.
func (c Color) Hex() string {
	return c.colorful().Clamped().Hex()
}

// WithAlpha returns c with its alpha replaced.
func (c Color) WithAlpha(a float64) Color {
	c.A = clamp01(a)
	return c
}

// Shade scales lightness and saturation by ratio in HSL space. Ratios below 1 darken,
// above 1 lighten. Alpha is preserved.
func (c Color) Shade(ratio float64) Color {
	h, s, l := c.colorful().Hsl()
	out := colorful.Hsl(h, clamp01(s*ratio), clamp01(l*ratio)).Clamped()
	return Color{R: out.R, G: out.G, B: out.B, A: c.A}
}

// Blend mixes c toward o by t in RGB space: t=0 yields c, t=1 yields o.
func (c Color) Blend(o Color, t float64) Color {
	t = clamp01(t)
	out := c.colorful().BlendRgb(o.colorful(), t)
	return Color{R: out.R, G: out.G, B: out.B, A: c.A + (o.A-c.A)*t}
}

// Over composites c on top of an opaque backdrop using c's alpha.
func (c Color) Over(backdrop Color) Color {
	if c.A >= 1 {
		return c
	}
	out := backdrop.Blend(c.WithAlpha(1), c.A)
	out.A = 1
	return out
}

func clamp01(v float64) float64 {
	return max(0, min(1, v))
}
