package artgen

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGB represents an opaque color with 8-bit red, green, and blue channels.
type RGB struct {
	R, G, B uint8
}

// HSV represents a color in hue/saturation/value space.
// H is in [0, 360), S and V are in [0, 1].
type HSV struct {
	H, S, V float64
}

// Color converts RGB to the standard color.Color interface.
func (c RGB) Color() color.Color {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// Hex returns the color formatted as a lowercase "#rrggbb" string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// HSV converts the color to hue/saturation/value space.
func (c RGB) HSV() HSV {
	h, s, v := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}.Hsv()
	return HSV{H: h, S: s, V: v}
}

// RGB converts the color back to 8-bit RGB. The round trip
// RGB → HSV → RGB is exact to within one unit per channel.
func (h HSV) RGB() RGB {
	r, g, b := colorful.Hsv(normHue(h.H), clamp01(h.S), clamp01(h.V)).Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}

// ParseHex parses a hex color string into RGB.
// Supports "RGB" and "RRGGBB" forms, with or without a leading '#'.
func ParseHex(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	var ok bool
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	}
	if !ok {
		return RGB{}, fmt.Errorf("artgen: invalid hex color %q", hex)
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// MustHex parses a hex color string and panics on malformed input.
// Use only for values already constrained by a color-kind schema field
// or compile-time constants.
func MustHex(hex string) RGB {
	c, err := ParseHex(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
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
			return false
		}
	}
	return true
}

// Lerp performs linear interpolation between two colors in RGB space.
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R: lerp8(c.R, other.R, t),
		G: lerp8(c.G, other.G, t),
		B: lerp8(c.B, other.B, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(clamp(v, 0, 255)))
}

// normHue wraps a hue angle into [0, 360).
func normHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

func clamp01(x float64) float64 { return clamp(x, 0, 1) }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Common colors
var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)
