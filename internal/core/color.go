package core

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a 24-bit color used for snake, item and overlay rendering.
// The zero value is black.
type RGB struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorSnakeDefault = RGB{R: 0x00, G: 0xff, B: 0x00}
	ColorFood         = RGB{R: 0xff, G: 0x00, B: 0x00}
	ColorPowerUp      = RGB{R: 0x00, G: 0x00, B: 0xff}
	ColorBoard        = RGB{R: 20, G: 20, B: 20}
	ColorGridLine     = RGB{R: 30, G: 30, B: 30}
	ColorBlack        = RGB{}
	ColorWhite        = RGB{R: 0xff, G: 0xff, B: 0xff}
)

// ParseHex parses a "#rrggbb" (or "#rgb") string.
func ParseHex(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{R: r, G: g, B: b}, nil
}

// MustParseHex is ParseHex for package-level color tables.
func MustParseHex(s string) RGB {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Hex returns the color as lowercase "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements fmt.Stringer.
func (c RGB) String() string {
	return c.Hex()
}

// Colorful converts to a go-colorful color for blending.
func (c RGB) Colorful() colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}
}

// Invert returns the complementary color.
func (c RGB) Invert() RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// Blend mixes c towards other by t in [0, 1] in Lab space.
func (c RGB) Blend(other RGB, t float64) RGB {
	mixed := c.Colorful().BlendLab(other.Colorful(), ClampF(t, 0, 1)).Clamped()
	r, g, b := mixed.RGB255()
	return RGB{R: r, G: g, B: b}
}

// RandomColor picks a vivid color from rng. Used for cosmetic flashing only.
func RandomColor(rng *rand.Rand) RGB {
	c := colorful.Hsv(rng.Float64()*360.0, 0.6+rng.Float64()*0.4, 0.7+rng.Float64()*0.3)
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
