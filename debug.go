package mosaic

import (
	"fmt"
	"os"
	"time"
)

// FrameStats holds per-frame timings and counters. Timings are only
// measured in debug mode.
type FrameStats struct {
	SqueezeTime time.Duration
	SortTime    time.Duration
	DrawTime    time.Duration
	Tiles       int
	Hearts      int
	Ripples     int // tiles stamped by a ripple this frame
}

// debugLog prints timing and tile stats to stderr.
func (e *Engine) debugLog(stats FrameStats) {
	if !e.debug {
		return
	}
	total := stats.SqueezeTime + stats.SortTime + stats.DrawTime
	_, _ = fmt.Fprintf(os.Stderr,
		"[mosaic] squeeze: %v | sort: %v | draw: %v | total: %v\n",
		stats.SqueezeTime, stats.SortTime, stats.DrawTime, total)
	_, _ = fmt.Fprintf(os.Stderr,
		"[mosaic] tiles: %d | hearts: %d | rippled: %d | tier: %s\n",
		stats.Tiles, stats.Hearts, stats.Ripples, e.tier.Name)
}
