package lumen

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screenshot queues a labeled capture of the current frame. The capture
// happens at the end of this frame's Draw, after the overlay, so nav bar and
// title are included. The PNG lands in ScreenshotDir as
// <label>_<timestamp>.png. Safe to call from Update or Draw.
func (a *App) Screenshot(label string) {
	a.screenshotQueue = append(a.screenshotQueue, label)
}

// flushScreenshots writes one PNG per queued label from the frame just
// drawn. The renderer clears the whole surface with an opaque background
// every frame, so the pixels read back fully opaque and can be encoded
// directly.
func (a *App) flushScreenshots(screen *ebiten.Image) {
	if len(a.screenshotQueue) == 0 {
		return
	}
	labels := a.screenshotQueue
	a.screenshotQueue = a.screenshotQueue[:0]

	if err := os.MkdirAll(a.ScreenshotDir, 0o755); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "[lumen] screenshot: %v\n", err)
		return
	}

	frame := captureFrame(screen)
	stamp := time.Now().Format("20060102_150405")
	for _, label := range labels {
		name := sanitizeLabel(label) + "_" + stamp + ".png"
		if err := savePNG(filepath.Join(a.ScreenshotDir, name), frame); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "[lumen] screenshot %q: %v\n", label, err)
		}
	}
}

// captureFrame copies the rendered surface into a standard image.
func captureFrame(screen *ebiten.Image) *image.RGBA {
	b := screen.Bounds()
	frame := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	screen.ReadPixels(frame.Pix)
	return frame
}

// savePNG encodes the frame to a PNG file at path.
func savePNG(path string, frame image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, frame)
}

// sanitizeLabel maps a label to a safe file-name fragment. Letters, digits,
// '-' and '_' pass through; everything else becomes '_'. Blank labels fall
// back to "frame".
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "frame"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, label)
}
