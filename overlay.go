package lumen

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// titleFaceSource is the bundled TrueType face used by Title. goregular is
// compiled in, so a parse failure is a programming error.
var titleFaceSource *text.GoTextFaceSource

func init() {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic("lumen: parse bundled font: " + err.Error())
	}
	titleFaceSource = s
}

// NavBar is the top navigation chrome. OffsetPct positions the bar
// vertically in percent of its own height: 0 is fully visible, -100 hides it
// above the top edge. The entrance timeline slides it from -100 to 0.
type NavBar struct {
	// OffsetPct is the vertical offset in percent of Height.
	OffsetPct float64
	// Height is the bar height in pixels.
	Height float64
	// Color is the bar fill color.
	Color Color
	// Alpha is the bar opacity.
	Alpha float64
}

// NewNavBar creates a bar hidden above the top edge, 64 pixels tall,
// semi-transparent white.
func NewNavBar() *NavBar {
	return &NavBar{
		OffsetPct: -100,
		Height:    64,
		Color:     ColorWhite,
		Alpha:     0.1,
	}
}

// Draw renders the bar across the full width of dst.
func (n *NavBar) Draw(dst *ebiten.Image) {
	y := n.OffsetPct / 100 * n.Height
	if y <= -n.Height {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(dst.Bounds().Dx()), n.Height)
	op.GeoM.Translate(0, y)
	c := n.Color.clamped()
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.ColorScale.ScaleAlpha(float32(clamp01(n.Alpha)))
	dst.DrawImage(WhitePixel, op)
}

// Title is the headline text element. Opacity drives the entrance fade; the
// text is drawn horizontally centered in the upper third of the surface.
type Title struct {
	// Text is the rendered string.
	Text string
	// Opacity in [0, 1]; 0 skips drawing entirely.
	Opacity float64
	// Size is the font size in pixels.
	Size float64
	// Color is the text color.
	Color Color
}

// NewTitle creates an invisible title with a 64px face; the entrance
// timeline fades it in.
func NewTitle(s string) *Title {
	return &Title{
		Text:    s,
		Opacity: 0,
		Size:    64,
		Color:   ColorWhite,
	}
}

// Draw renders the title onto dst.
func (t *Title) Draw(dst *ebiten.Image) {
	if t.Opacity <= 0 || t.Text == "" {
		return
	}

	face := &text.GoTextFace{Source: titleFaceSource, Size: t.Size}
	w, h := text.Measure(t.Text, face, 0)

	bounds := dst.Bounds()
	x := (float64(bounds.Dx()) - w) / 2
	y := float64(bounds.Dy())*0.3 - h/2

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	c := t.Color.clamped()
	op.ColorScale.Scale(float32(c.R), float32(c.G), float32(c.B), 1)
	op.ColorScale.ScaleAlpha(float32(clamp01(t.Opacity)))
	text.Draw(dst, t.Text, face, op)
}
