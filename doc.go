// Package lumen is a small interactive 3D landing-scene framework for
// [Ebitengine].
//
// Lumen renders a single lit sphere, orbits the camera around it with damped,
// auto-rotating motion, plays a one-shot entrance timeline, and recolors the
// sphere while the pointer is dragged. The 3D pass is a software projection:
// mesh triangles are transformed, culled, depth-sorted, shaded, and submitted
// through one DrawTriangles call.
//
// # Quick start
//
// The simplest way to get started is [NewApp] plus [Run], which create a
// window and game loop for you:
//
//	scene := lumen.NewScene()
//	scene.Mesh = lumen.NewSphere(3, 64, 64)
//	app := lumen.NewApp(scene)
//	lumen.Run(app, lumen.RunConfig{
//		Title: "My Demo", Width: 1280, Height: 720,
//	})
//
// For full control, implement [ebiten.Game] yourself and compose the parts
// ([Viewport], [Camera], [OrbitController], [Renderer], [Timeline], [Recolor])
// directly; every component is driven by a plain per-frame Update call.
//
// # Animation
//
// Tweens are built on [gween]: a [TweenGroup] animates up to four float64
// fields, and a [Timeline] runs groups strictly back-to-back. There is no
// global animation manager; callers pump Update themselves (or let [App] do
// it).
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
package lumen
