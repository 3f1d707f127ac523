package lumen

import "github.com/hajimehoshi/ebiten/v2"

// WhitePixel is a 1x1 white image used as the texture for solid-color
// triangles submitted by the renderer and overlay.
var WhitePixel *ebiten.Image

func init() {
	WhitePixel = ebiten.NewImage(1, 1)
	WhitePixel.Fill(ColorWhite.toRGBA())
}

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when the primary button is pressed
	EventPointerUp                    // fires when the primary button is released
	EventPointerMove                  // fires when the cursor position changes
)

// Vec2 is a 2D vector used for screen-space positions and deltas.
type Vec2 struct {
	X, Y float64
}
