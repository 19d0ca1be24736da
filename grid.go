package mosaic

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Idle float and sparkle randomisation ranges.
const (
	floatAmpMin        = 1.0
	floatAmpSpan       = 2.0
	SparkleMinInterval = 800.0
	SparkleMaxInterval = 2500.0
)

// BuildGrid lays out the lattice for a canvas and keeps the points that fall
// inside the logo. The lattice is centred on the canvas; columns are visited
// outermost so tile order is column-major.
func BuildGrid(width, height float64, tier Tier, rng *rand.Rand) []*Tile {
	if tier.TileSpacing <= 0 || width <= 0 || height <= 0 {
		return nil
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	spacing := tier.TileSpacing
	cols := int(math.Floor(width / spacing))
	rows := int(math.Floor(height / spacing))
	if cols <= 0 || rows <= 0 {
		return nil
	}
	offsetX := (width - float64(cols-1)*spacing) / 2
	offsetY := (height - float64(rows-1)*spacing) / 2

	tiles := make([]*Tile, 0, cols*rows/2)
	for i := 0; i < cols; i++ {
		for j := 0; j < rows; j++ {
			x := offsetX + float64(i)*spacing
			y := offsetY + float64(j)*spacing
			region := ClassifyLogoRegion(x, y, width, height, tier.LogoScale)
			if !region.Inside {
				continue
			}
			tiles = append(tiles, newTile(len(tiles), x, y, tier.TileRadius, region.Section, rng))
		}
	}
	return tiles
}

func newTile(index int, x, y, radius float64, section Section, rng *rand.Rand) *Tile {
	palette := hoverPalette(section)
	origin := originColor(section)
	t := &Tile{
		ID:                fmt.Sprintf("tile-%d", index),
		X:                 x,
		Y:                 y,
		Radius:            radius,
		Section:           section,
		OriginColor:       origin,
		HoverColor:        HexToRGB(palette[rng.IntN(len(palette))]),
		Phase:             rng.Float64() * 2 * math.Pi,
		FloatAmp:          floatAmpMin + rng.Float64()*floatAmpSpan,
		SparkleSeed:       SparkleMinInterval + rng.Float64()*(SparkleMaxInterval-SparkleMinInterval),
		SparkleIdx:        rng.IntN(len(SparkleColors)),
		CenterX:           x,
		CenterY:           y,
		DrawX:             x,
		DrawY:             y,
		SizeMultiplier:    1,
		ZIndex:            zRest,
		DistanceToPointer: math.Inf(1),
		SqueezeLayer:      -1,
		DisplayColor:      origin,
	}
	t.Color.Snap(origin)
	return t
}
