package mosaic

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsRefresh is how often the overlay text is redrawn, in seconds.
const fpsRefresh = 0.5

// fpsOverlay displays the current FPS, TPS and tile counts in the top-left
// corner. Its image is only redrawn every fpsRefresh seconds.
type fpsOverlay struct {
	img        *ebiten.Image
	lastUpdate float64
}

func newFPSOverlay() *fpsOverlay {
	// 140x48 fits three lines of debug text.
	return &fpsOverlay{img: ebiten.NewImage(140, 48), lastUpdate: fpsRefresh}
}

func (o *fpsOverlay) update(dt float64, stats FrameStats) {
	o.lastUpdate += dt
	if o.lastUpdate < fpsRefresh {
		return
	}
	o.lastUpdate = 0

	o.img.Clear()
	// Semi-transparent background for readability
	o.img.Fill(color.RGBA{0, 0, 0, 128})
	ebitenutil.DebugPrint(o.img, fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nHearts: %d/%d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), stats.Hearts, stats.Tiles))
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	screen.DrawImage(o.img, nil)
}
