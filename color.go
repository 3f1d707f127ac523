package lumen

import (
	"fmt"
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color represents an RGB color with components nominally in [0, 1]. The
// sphere material has no alpha; opacity only exists on overlay elements.
//
// Components are not clamped on construction or arithmetic. Lighting can push
// channels above 1 and out-of-viewport drag coordinates can push them outside
// [0, 1]; clamping happens once, at conversion to draw colors.
type Color struct {
	R, G, B float64
}

// ColorWhite is full white.
var ColorWhite = Color{1, 1, 1}

// ColorBlack is full black, the default scene background.
var ColorBlack = Color{}

// ColorHex parses a "#rrggbb" (or "#rgb") hex string.
func ColorHex(hex string) (Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("lumen: parse color %q: %w", hex, err)
	}
	return Color{R: c.R, G: c.G, B: c.B}, nil
}

// ColorRGB255 builds a Color from 0-255 integer channels. Values outside
// [0, 255] are carried through proportionally, not clamped.
func ColorRGB255(r, g, b int) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// RGB255 returns the color as rounded 0-255 integer channels. Like the rest
// of the Color arithmetic it does not clamp.
func (c Color) RGB255() (r, g, b int) {
	return int(math.Round(c.R * 255)),
		int(math.Round(c.G * 255)),
		int(math.Round(c.B * 255))
}

// Hex returns the color as a "#rrggbb" string, clamping channels to [0, 1].
func (c Color) Hex() string {
	return colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hex()
}

// Lerp blends c toward to by t in plain RGB space. t=0 yields c, t=1 yields
// to; values outside [0, 1] extrapolate.
func (c Color) Lerp(to Color, t float64) Color {
	b := colorful.Color{R: c.R, G: c.G, B: c.B}.
		BlendRgb(colorful.Color{R: to.R, G: to.G, B: to.B}, t)
	return Color{R: b.R, G: b.G, B: b.B}
}

// Scale multiplies all channels by s.
func (c Color) Scale(s float64) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s}
}

// Add returns the channel-wise sum of c and o.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B}
}

// Mul returns the channel-wise product of c and o.
func (c Color) Mul(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B}
}

// clamped returns c with all channels clamped to [0, 1].
func (c Color) clamped() Color {
	return Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}
}

// toRGBA converts to an opaque color.RGBA, clamping channels.
func (c Color) toRGBA() color.RGBA {
	k := c.clamped()
	return color.RGBA{
		R: uint8(k.R*255 + 0.5),
		G: uint8(k.G*255 + 0.5),
		B: uint8(k.B*255 + 0.5),
		A: 255,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
