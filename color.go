package nest

import "image/color"

// Color is an opaque 8-bit RGB color. Alpha is always 255 when drawn.
type Color struct {
	R, G, B uint8
}

// ColorBlack is the default background color and the fallback for malformed
// hex strings.
var ColorBlack = Color{}

// RGB builds a Color from integer channels. Values are truncated to 8 bits
// (modulo 256), not clamped: RGB(300, -5, 128) is {44, 251, 128}.
func RGB(r, g, b int) Color {
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}
}

// Hex parses a color in "#rrggbb" or "rrggbb" form. Any other input, including
// the three-digit shorthand, returns ColorBlack.
func Hex(s string) Color {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return ColorBlack
	}
	var ch [3]uint8
	for i := range ch {
		hi, ok1 := hexDigit(s[2*i])
		lo, ok2 := hexDigit(s[2*i+1])
		if !ok1 || !ok2 {
			return ColorBlack
		}
		ch[i] = hi<<4 | lo
	}
	return Color{R: ch[0], G: ch[1], B: ch[2]}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// RGBA implements color.Color. The color is fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA returns c as an opaque color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
