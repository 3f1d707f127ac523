package lumen

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsCounter renders the current FPS and TPS in the bottom-left corner.
// The readout refreshes every ~0.5 seconds to stay readable.
type fpsCounter struct {
	img     *ebiten.Image
	elapsed float64
}

func (f *fpsCounter) draw(dst *ebiten.Image, dt float64) {
	if f.img == nil {
		// 100x32 is enough for "FPS: 60.0\nTPS: 60.0"
		f.img = ebiten.NewImage(100, 32)
		f.elapsed = 1 // force an immediate refresh
	}

	f.elapsed += dt
	if f.elapsed >= 0.5 {
		f.elapsed = 0
		f.img.Clear()
		// Semi-transparent background for readability
		f.img.Fill(color.RGBA{0, 0, 0, 128})
		ebitenutil.DebugPrint(f.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f",
			ebiten.ActualFPS(), ebiten.ActualTPS()))
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(8, float64(dst.Bounds().Dy())-40)
	dst.DrawImage(f.img, op)
}
