package plotter

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a non-premultiplied RGBA color.
// Each channel is in the range [0, 1].
type Color struct {
	R, G, B, A float32
}

// Some common colors.
var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
	Red   = Color{1, 0, 0, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
)

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{
		R: channel8(c.R),
		G: channel8(c.G),
		B: channel8(c.B),
		A: channel8(c.A),
	}.RGBA()
}

// Hex formats the color as "#AARRGGBB", alpha first.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", channel8(c.A), channel8(c.R), channel8(c.G), channel8(c.B))
}

func (c Color) String() string {
	return c.Hex()
}

// channel8 rounds a [0, 1] channel to 0..255, halves round up.
func channel8(v float32) uint8 {
	f := math.Floor(float64(v)*255 + 0.5)
	return uint8(math.Max(0, math.Min(255, f)))
}

// FromColor converts a standard color.Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float32(n.R) / 255,
		G: float32(n.G) / 255,
		B: float32(n.B) / 255,
		A: float32(n.A) / 255,
	}
}

// ParseColor reads a color from "#RRGGBB", "#AARRGGBB" or an SVG color name
// like "red" or "steelblue".
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}

	named, ok := colornames.Map[strings.ToLower(s)]
	if !ok {
		return Color{}, fmt.Errorf("unknown color %q", s)
	}
	return FromColor(named), nil
}

func parseHex(hex string) (Color, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid hex color %q", "#"+hex)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", "#"+hex)
	}

	a := uint8(0xff)
	if len(hex) == 8 {
		a = uint8(v >> 24)
	}
	n := color.NRGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: a,
	}
	return FromColor(n), nil
}
