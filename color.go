package locus

import (
	"image/color"

	"github.com/chewxy/math32"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1].
type RGBA struct {
	R, G, B, A float32
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA, undoing alpha
// premultiplication.
func FromColor(c color.Color) RGBA {
	nc := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return RGBA{
		R: float32(nc.R) / 65535,
		G: float32(nc.G) / 65535,
		B: float32(nc.B) / 65535,
		A: float32(nc.A) / 65535,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// RGBA2 creates a color from RGBA components.
func RGBA2(r, g, b, a float32) RGBA {
	return RGBA{R: r, G: g, B: b, A: a}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) RGBA {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return RGBA{R: 0, G: 0, B: 0, A: 1}
	}

	return RGBA{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Lerp performs linear interpolation between two colors.
func (c RGBA) Lerp(other RGBA, t float32) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// WithAlpha returns the color with its alpha replaced.
func (c RGBA) WithAlpha(a float32) RGBA {
	c.A = a
	return c
}

// Or returns c, or def when c is the zero color. Style fields left at the
// zero value inherit from the active theme this way.
func (c RGBA) Or(def RGBA) RGBA {
	if c == (RGBA{}) {
		return def
	}
	return c
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Transparent = RGBA2(0, 0, 0, 0)
)

// Palette is an ordered cycle of series colors.
type Palette []RGBA

// Color returns the i-th palette color, wrapping around the cycle.
func (p Palette) Color(i int) RGBA {
	if len(p) == 0 {
		return Black
	}
	i %= len(p)
	if i < 0 {
		i += len(p)
	}
	return p[i]
}

// Ramp interpolates across the whole cycle at t in [0, 1], blending in a
// perceptually uniform color space so gradients over continuous values
// keep even visual spacing. t outside [0, 1] is clamped.
func (p Palette) Ramp(t float32) RGBA {
	if len(p) == 0 {
		return Black
	}
	if len(p) == 1 {
		return p[0]
	}
	t = math32.Max(0, math32.Min(1, t))
	f := t * float32(len(p)-1)
	i := int(math32.Floor(f))
	if i >= len(p)-1 {
		return p[len(p)-1]
	}
	frac := f - float32(i)

	a, b := p[i], p[i+1]
	ca := colorful.Color{R: float64(a.R), G: float64(a.G), B: float64(a.B)}
	cb := colorful.Color{R: float64(b.R), G: float64(b.G), B: float64(b.B)}
	blend := ca.BlendLuv(cb, float64(frac)).Clamped()
	return RGBA{
		R: float32(blend.R),
		G: float32(blend.G),
		B: float32(blend.B),
		A: a.A + (b.A-a.A)*frac,
	}
}
