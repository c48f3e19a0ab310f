package render

import (
	"fmt"
	"image/color"
)

// Card palette.
var (
	// DefaultCoverColor is the scratch-off cover.
	DefaultCoverColor = Hex("#7B64C3")

	winnerFrom = Hex("#FDE047")
	winnerTo   = Hex("#EAB308")
	loserFrom  = Hex("#E5E7EB")
	loserTo    = Hex("#9CA3AF")

	headlineColor = color.NRGBA{R: 0x1F, G: 0x29, B: 0x37, A: 0xCC}
	shadowColor   = color.NRGBA{A: 0x59}
)

// ParseHex parses a color in "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" form.
// The leading '#' is optional.
func ParseHex(hex string) (color.NRGBA, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint32
	a = 255
	ok := true

	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		return color.NRGBA{A: 255}, fmt.Errorf("render: invalid hex color %q", hex)
	}

	// #nosec G115 -- every component is at most 255
	return color.NRGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}, nil
}

// Hex is like ParseHex but returns opaque black for malformed input.
func Hex(hex string) color.NRGBA {
	c, _ := ParseHex(hex)
	return c
}

// parseHex is a helper for hex parsing
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

// lerp blends two opaque colors; t is clamped to [0, 1].
func lerp(from, to color.NRGBA, t float64) color.NRGBA {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	mix := func(a, b uint8) uint8 {
		// #nosec G115 -- result stays within [0, 255]
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.NRGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
