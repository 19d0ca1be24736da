package mosaic

import (
	"errors"
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window created by Run.
type RunConfig struct {
	Title  string
	Width  int
	Height int

	// ShowFPS draws an FPS and tile counter overlay.
	ShowFPS bool
	// Background is the clear color as hex. Empty uses DefaultBackground.
	Background string

	// Script, when set, is attached to the engine before the first frame.
	Script *Script
	// ExitOnScriptDone closes the window once Script has finished.
	ExitOnScriptDone bool
	// ScreenshotDir receives PNGs queued with Engine.Screenshot.
	// Defaults to "screenshots".
	ScreenshotDir string
}

// game adapts an Engine to ebiten.Game. Timestamps are milliseconds since
// the game started.
type game struct {
	engine  *Engine
	cfg     RunConfig
	surface *EbitenSurface
	fps     *fpsOverlay
	start   time.Time

	width, height int
	inside        bool
	lastX, lastY  int
	prevDraw      float64
}

// Run opens a window and drives the engine from ebiten's game loop until the
// window is closed. Cursor samples are taken every tick; the cursor leaving
// the window or the window losing focus counts as pointer leave.
func Run(engine *Engine, cfg RunConfig) error {
	if engine == nil {
		return fmt.Errorf("mosaic: run: nil engine")
	}
	if cfg.Title == "" {
		cfg.Title = "mosaic"
	}
	if cfg.Width <= 0 {
		cfg.Width = 1280
	}
	if cfg.Height <= 0 {
		cfg.Height = 720
	}
	if cfg.ScreenshotDir == "" {
		cfg.ScreenshotDir = "screenshots"
	}

	g := &game{
		engine:  engine,
		cfg:     cfg,
		surface: NewEbitenSurface(),
		start:   time.Now(),
		lastX:   -1,
		lastY:   -1,
	}
	if cfg.Background != "" {
		g.surface.Background = HexToRGB(cfg.Background)
	}
	if cfg.ShowFPS {
		g.fps = newFPSOverlay()
	}
	if cfg.Script != nil {
		engine.SetScript(cfg.Script)
	}

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("mosaic: run: %w", err)
	}
	return nil
}

func (g *game) now() float64 {
	return float64(time.Since(g.start).Microseconds()) / 1000
}

func (g *game) Update() error {
	if g.cfg.ExitOnScriptDone && g.cfg.Script != nil && g.cfg.Script.Done() {
		return ebiten.Termination
	}
	if g.engine.Injecting() {
		return nil
	}
	g.pollPointer(g.now())
	return nil
}

// pollPointer turns the cursor state into pointer samples. The last position
// is only remembered once a sample is accepted, so a cursor that stops right
// after a rate-limited sample is still delivered on a later tick.
func (g *game) pollPointer(now float64) {
	x, y := ebiten.CursorPosition()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < g.width && y < g.height
	switch {
	case inside && (!g.inside || x != g.lastX || y != g.lastY):
		if g.engine.PointerMoved(float64(x), float64(y), now) {
			g.lastX, g.lastY = x, y
		}
	case !inside && g.inside:
		g.engine.PointerLeft()
		g.lastX, g.lastY = -1, -1
	}
	g.inside = inside
}

func (g *game) Draw(screen *ebiten.Image) {
	now := g.now()
	g.surface.SetTarget(screen)
	g.engine.RenderFrame(g.surface, now)
	flushScreenshots(screen, g.cfg.ScreenshotDir, g.engine.takeScreenshots())

	if g.fps != nil {
		g.fps.update((now-g.prevDraw)/1000, g.engine.Stats())
		g.fps.draw(screen)
	}
	g.prevDraw = now
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.engine.Resize(float64(outsideWidth), float64(outsideHeight), ebiten.Monitor().DeviceScaleFactor())
	}
	return outsideWidth, outsideHeight
}
