package lumen

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int
	// PixelDensity multiplies the logical window size when sizing the
	// drawing surface. Zero keeps the app's current density.
	PixelDensity float64
	// ShowFPS draws an FPS/TPS readout.
	ShowFPS bool
}

// App is the game loop: it pumps pointer input, the entrance timeline, the
// recolor interpolation, and the orbit controller each tick, then draws the
// scene and overlay. It implements [ebiten.Game].
//
// The loop redraws continuously while the view is active; Stop ends it
// cleanly on the next tick.
type App struct {
	// Scene is the rendered scene. Required.
	Scene *Scene
	// Viewport tracks the surface size and keeps the camera aspect in sync.
	Viewport *Viewport
	// Pointer feeds input to its listeners each tick.
	Pointer *Pointer

	// Orbit, Timeline, Recolor, Nav, and Title are optional; nil parts are
	// skipped.
	Orbit    *OrbitController
	Timeline *Timeline
	Recolor  *Recolor
	Nav      *NavBar
	Title    *Title

	// ScreenshotDir is where queued screenshots are written.
	// Defaults to "screenshots".
	ScreenshotDir string

	renderer        *Renderer
	runner          *TestRunner
	fps             fpsCounter
	showFPS         bool
	screenshotQueue []string
	stopped         bool
}

// NewApp creates an app around the scene with a fresh viewport, pointer
// source, and renderer. The scene camera is bound to the viewport.
func NewApp(scene *Scene) *App {
	vp := NewViewport(1, 1)
	vp.BindCamera(scene.Camera)
	return &App{
		Scene:         scene,
		Viewport:      vp,
		Pointer:       NewPointer(),
		ScreenshotDir: "screenshots",
		renderer:      NewRenderer(),
	}
}

// Renderer returns the app's renderer, e.g. to enable debug stats.
func (a *App) Renderer() *Renderer {
	return a.renderer
}

// Stop requests a clean shutdown: the next Update returns
// ebiten.Termination. Safe to call repeatedly.
func (a *App) Stop() {
	a.stopped = true
}

// Stopped reports whether Stop has been called.
func (a *App) Stopped() bool {
	return a.stopped
}

// tickDelta is the nominal tick length in seconds. ebiten.TPS reports
// SyncWithFPS (-1) when ticks follow the display rate; fall back to 60 in
// that case rather than feeding a negative dt to the tweens.
func tickDelta() float64 {
	if tps := ebiten.TPS(); tps > 0 {
		return 1.0 / float64(tps)
	}
	return 1.0 / 60
}

// Update advances one tick: scripted steps, pointer input, entrance
// timeline, recolor interpolation, then the orbit controller, so the frame
// drawn right after reflects this tick's camera motion.
func (a *App) Update() error {
	if a.stopped {
		return ebiten.Termination
	}

	dt := float32(tickDelta())

	if a.runner != nil {
		a.runner.step(a)
	}
	if a.Pointer != nil {
		a.Pointer.Update()
	}
	if a.Timeline != nil && !a.Timeline.Done {
		a.Timeline.Update(dt)
	}
	if a.Recolor != nil {
		a.Recolor.Update(dt)
	}
	if a.Orbit != nil {
		a.Orbit.Update(float64(dt))
	}
	return nil
}

// Draw renders the scene, then the overlay chrome on top.
func (a *App) Draw(screen *ebiten.Image) {
	a.renderer.Draw(screen, a.Scene)

	if a.Nav != nil {
		a.Nav.Draw(screen)
	}
	if a.Title != nil {
		a.Title.Draw(screen)
	}
	if a.showFPS {
		a.fps.draw(screen, tickDelta())
	}

	a.flushScreenshots(screen)
}

// Layout sizes the drawing surface from the window size and the viewport's
// pixel density, and propagates the new size to the camera and orbit
// controller.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := a.Viewport.DeviceSize(outsideWidth, outsideHeight)
	a.Viewport.Resize(w, h)
	if a.Orbit != nil {
		a.Orbit.SetViewportHeight(h)
	}
	return w, h
}

// Run opens a resizable window and drives the app until the window closes or
// the app is stopped.
func Run(app *App, cfg RunConfig) error {
	ebiten.SetWindowTitle(cfg.Title)
	if cfg.Width > 0 && cfg.Height > 0 {
		ebiten.SetWindowSize(cfg.Width, cfg.Height)
	}
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if cfg.PixelDensity > 0 {
		app.Viewport.PixelDensity = cfg.PixelDensity
	}
	app.showFPS = cfg.ShowFPS

	return ebiten.RunGame(app)
}
