package pix

import (
	"fmt"
	"image/color"
)

// Color is an immutable RGBA color with 8-bit channels.
// The zero value is fully transparent black.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements the standard color.Color interface.
// Channels are alpha-premultiplied by the conversion, as the interface
// requires; the native model is color.NRGBA.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// ToPixel serializes the color into size bytes. A size of 3 drops the
// alpha channel, 4 includes it. Any other size is ErrInvalidSize.
func (c Color) ToPixel(size int) ([]byte, error) {
	switch size {
	case 3:
		return []byte{c.R, c.G, c.B}, nil
	case 4:
		return []byte{c.R, c.G, c.B, c.A}, nil
	default:
		return nil, fmt.Errorf("%w: %d bytes per pixel", ErrInvalidSize, size)
	}
}

// ForBrightness returns the color with its alpha set to 255*factor.
// The RGB channels are unchanged. Factors outside [0, 1] are clamped,
// not rejected. The scaled alpha truncates rather than rounds; drawing
// code depends on the exact channel values this produces.
func (c Color) ForBrightness(factor float64) Color {
	if factor < 0 {
		factor = 0
	}
	if factor > 1 {
		factor = 1
	}
	return Color{R: c.R, G: c.G, B: c.B, A: uint8(255 * factor)}
}

// CoverWith composites over on top of c using source-over blending and
// returns the result, which is always fully opaque.
//
// A fully opaque cover color is returned unchanged without arithmetic.
// Otherwise each RGB channel is (over*a + base*(255-a) + 127) / 255,
// which rounds half-up exactly.
func (c Color) CoverWith(over Color) Color {
	if over.A == 255 {
		return over
	}
	a := uint32(over.A)
	inv := 255 - a
	return Color{
		R: uint8((uint32(over.R)*a + uint32(c.R)*inv + 127) / 255),
		G: uint8((uint32(over.G)*a + uint32(c.G)*inv + 127) / 255),
		B: uint8((uint32(over.B)*a + uint32(c.B)*inv + 127) / 255),
		A: 255,
	}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Unrecognized input yields opaque black.
func Hex(hex string) Color {
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
		return Color{A: 255}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
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
