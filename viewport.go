package lumen

import (
	"fmt"
	"os"
)

// Viewport holds the current drawing-surface size in pixels. It is mutated
// only by Resize (driven by the window layout) and read by the camera,
// renderer, and recolor machine.
type Viewport struct {
	// Width and Height are the current surface size in device pixels.
	// Always positive.
	Width, Height int

	// PixelDensity multiplies the window's logical size when computing the
	// device size (2.0 renders at twice the logical resolution). Values <= 0
	// are treated as 1.
	PixelDensity float64

	camera *Camera
}

// NewViewport creates a viewport with the given initial size and a pixel
// density of 1.
func NewViewport(width, height int) *Viewport {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return &Viewport{Width: width, Height: height, PixelDensity: 1}
}

// BindCamera ties a camera's aspect ratio to this viewport. The camera is
// synced immediately and again on every Resize.
func (v *Viewport) BindCamera(c *Camera) {
	v.camera = c
	v.syncCamera()
}

// Resize stores the new surface size and refreshes the bound camera's
// projection. Non-positive dimensions are ignored with a warning.
func (v *Viewport) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		_, _ = fmt.Fprintf(os.Stderr, "[lumen] ignoring resize to %dx%d\n", width, height)
		return
	}
	if width == v.Width && height == v.Height {
		return
	}
	v.Width = width
	v.Height = height
	v.syncCamera()
}

// Aspect returns Width / Height.
func (v *Viewport) Aspect() float64 {
	return float64(v.Width) / float64(v.Height)
}

// DeviceSize returns the given logical size scaled by PixelDensity.
func (v *Viewport) DeviceSize(logicalW, logicalH int) (int, int) {
	d := v.PixelDensity
	if d <= 0 {
		d = 1
	}
	return int(float64(logicalW) * d), int(float64(logicalH) * d)
}

func (v *Viewport) syncCamera() {
	if v.camera != nil {
		v.camera.SetAspect(v.Aspect())
	}
}
