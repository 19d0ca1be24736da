// Package mosaic is an interactive heart mosaic for [Ebitengine] and other
// immediate-mode 2D surfaces.
//
// A grid of small tiles is clipped into a fixed four-section logo. Tiles
// near the pointer morph from circles into hearts and take on hover colors.
// The tile closest to the pointer becomes the main heart: it beats once a
// second and sends a ripple outward through its neighbours, while the tiles
// around it grow and are pushed aside in concentric bands.
//
// # Quick start
//
// The simplest way to get started is [Run], which creates a window and game
// loop for you:
//
//	engine := mosaic.NewEngine(mosaic.EngineConfig{})
//	mosaic.Run(engine, mosaic.RunConfig{
//		Title: "Mosaic", Width: 1280, Height: 720,
//	})
//
// For full control, drive the [Engine] yourself. Deliver a logical canvas
// size with [Engine.Resize], pointer samples with [Engine.PointerMoved] and
// [Engine.PointerLeft], and call [Engine.RenderFrame] once per frame with
// any [Surface]:
//
//	engine.Resize(800, 600, 1)
//	engine.PointerMoved(400, 300, nowMs)
//	engine.RenderFrame(surface, nowMs)
//
// Pointer samples and frames must come from one goroutine. Drivers that
// receive input elsewhere use [Engine.QueuePointerMove] and
// [Engine.QueuePointerLeave]; queued events are applied at the top of the
// next frame.
//
// # Surfaces
//
// [EbitenSurface] draws onto an *ebiten.Image, [Recorder] captures
// [DrawCommand] values for headless use and tests, and the term subpackage
// renders into a terminal through tcell. Custom surfaces embed [Canvas] and
// implement Clear and Fill.
//
// # Configuration
//
// Tile density follows three tiers selected by canvas width, built in from
// an embedded YAML document. [LoadTiers] replaces them.
//
// [Ebitengine]: https://ebitengine.org
package mosaic
