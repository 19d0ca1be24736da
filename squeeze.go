package mosaic

import "math"

// SqueezeLayer is one concentric band around the main heart.
type SqueezeLayer struct {
	MaxDistance    float64
	SizeMultiplier float64
	PushForce      float64
}

// SqueezeLayers are ordered innermost first.
var SqueezeLayers = [...]SqueezeLayer{
	{MaxDistance: 30, SizeMultiplier: 1.8, PushForce: 3.0},
	{MaxDistance: 50, SizeMultiplier: 1.4, PushForce: 2.2},
	{MaxDistance: 70, SizeMultiplier: 1.1, PushForce: 1.6},
	{MaxDistance: 90, SizeMultiplier: 0.9, PushForce: 1.2},
	{MaxDistance: 120, SizeMultiplier: 0.7, PushForce: 0.8},
}

const (
	MainHeartSizeMultiplier = 2.2

	cascadeRadius = 30.0
	cascadeFactor = 0.3
)

// Displacement is a tile's squeeze offset and size multiplier for one frame.
type Displacement struct {
	X, Y float64
	Size float64
}

// squeezer computes displacements into reusable buffers.
type squeezer struct {
	out    []Displacement
	layers [len(SqueezeLayers)][]int
}

// squeezeLayerFor returns the band index for a distance, or -1 beyond the
// outermost band.
func squeezeLayerFor(d float64) int {
	for i, l := range SqueezeLayers {
		if d <= l.MaxDistance {
			return i
		}
	}
	return -1
}

// compute assigns every tile its squeeze layer and returns one Displacement
// per tile, index-aligned with tiles. With no main heart every layer is -1
// and every displacement is the identity.
//
// Bands are processed innermost to outermost. Each tile is pushed radially
// away from the main heart, then away from any tile of a closer band whose
// displaced position lies within the cascade radius. Inner displacements are
// final by the time an outer band reads them. All pushes scale with the
// tile's own morph progress.
func (sq *squeezer) compute(tiles []*Tile, main *Tile) []Displacement {
	if cap(sq.out) < len(tiles) {
		sq.out = make([]Displacement, len(tiles))
	}
	out := sq.out[:len(tiles)]
	for i := range out {
		out[i] = Displacement{Size: 1}
	}
	for i := range sq.layers {
		sq.layers[i] = sq.layers[i][:0]
	}

	if main == nil {
		for _, t := range tiles {
			t.SqueezeLayer = -1
		}
		return out
	}

	mx, my := main.X, main.Y
	for i, t := range tiles {
		if t == main || t.IsMainHeart {
			t.SqueezeLayer = -1
			out[i].Size = MainHeartSizeMultiplier
			continue
		}
		layer := squeezeLayerFor(distance(t.X, t.Y, mx, my))
		t.SqueezeLayer = layer
		if layer < 0 {
			continue
		}
		p := t.MorphProgress
		out[i].Size = SqueezeLayers[layer].SizeMultiplier*p + (1 - p)
		sq.layers[layer] = append(sq.layers[layer], i)
	}

	for layer, members := range sq.layers {
		force := SqueezeLayers[layer].PushForce
		for _, i := range members {
			t := tiles[i]
			p := t.MorphProgress
			d := &out[i]

			dx, dy := t.X-mx, t.Y-my
			if dist := math.Hypot(dx, dy); dist > 0 {
				push := force * p
				d.X += dx / dist * push
				d.Y += dy / dist * push
			}

			for inner := layer - 1; inner >= 0; inner-- {
				for _, j := range sq.layers[inner] {
					it := tiles[j]
					ix := it.X + out[j].X
					iy := it.Y + out[j].Y
					cx, cy := t.X-ix, t.Y-iy
					dist := math.Hypot(cx, cy)
					if dist <= 0 || dist >= cascadeRadius {
						continue
					}
					push := (cascadeRadius - dist) * cascadeFactor * p
					d.X += cx / dist * push
					d.Y += cy / dist * push
				}
			}

			if !finite(d.X) || !finite(d.Y) {
				d.X, d.Y = 0, 0
			}
		}
	}
	return out
}

// ComputeSqueeze is the allocation-per-call form of the squeeze pass, for
// callers outside the engine.
func ComputeSqueeze(tiles []*Tile, main *Tile) []Displacement {
	var sq squeezer
	return sq.compute(tiles, main)
}
