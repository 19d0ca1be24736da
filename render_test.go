package mosaic

import (
	"math"
	"testing"
)

func drawOne(t *testing.T, tile *Tile, d Displacement, now float64) DrawCommand {
	t.Helper()
	e := &Engine{rng: testRand()}
	rec := NewRecorder()
	e.drawTile(rec, tile, d, now)
	if len(rec.Commands) != 1 {
		t.Fatalf("drew %d shapes, want 1", len(rec.Commands))
	}
	return rec.Commands[0]
}

func restingTile() *Tile {
	t := &Tile{
		X: 100, Y: 50, Radius: 4,
		OriginColor: DarkGreen,
		HoverColor:  HexToRGB("#FFA500"),
		Phase:       0.5,
		FloatAmp:    2,
		NextSparkle: math.Inf(1),
	}
	t.Color.Snap(DarkGreen)
	return t
}

func TestDrawTileRestingCircle(t *testing.T) {
	tile := restingTile()
	const now = 1234.0
	cmd := drawOne(t, tile, Displacement{X: 1, Y: -2, Size: 1.5}, now)

	if cmd.Shape != ShapeCircle || cmd.Color != DarkGreen || cmd.Glow != 0 {
		t.Errorf("got %v %v glow %v, want a plain dark green circle", cmd.Shape, cmd.Color, cmd.Glow)
	}
	off := math.Sin(now*floatFrequency+tile.Phase) * tile.FloatAmp
	assertNear(t, "DrawX", tile.DrawX, 101+off*floatXFactor)
	assertNear(t, "DrawY", tile.DrawY, 48+off)
	assertNear(t, "CenterX", tile.CenterX, 101)
	assertNear(t, "radius", cmd.Bounds.Width/2, 4*1.5)
	if tile.SizeMultiplier != 1.5 {
		t.Errorf("SizeMultiplier = %v, want 1.5", tile.SizeMultiplier)
	}
}

func TestDrawTileColorBlend(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		hovered  bool
		shape    ShapeKind
		want     func(tile *Tile) RGB
	}{
		{"circle blends toward target", 0.3, true, ShapeCircle, func(tile *Tile) RGB {
			return LerpRGB(tile.OriginColor, tile.HoverColor, 0.3)
		}},
		{"hovered heart shows target", 0.9, true, ShapeHeart, func(tile *Tile) RGB {
			return tile.HoverColor
		}},
		{"unhovered heart blends", 0.9, false, ShapeHeart, func(tile *Tile) RGB {
			return LerpRGB(tile.OriginColor, tile.HoverColor, 0.9)
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tile := restingTile()
			tile.MorphProgress = tt.progress
			tile.IsHovered = tt.hovered
			tile.Color.Snap(tile.HoverColor)
			cmd := drawOne(t, tile, Displacement{Size: 1}, 500)
			if cmd.Shape != tt.shape {
				t.Errorf("shape = %v, want %v", cmd.Shape, tt.shape)
			}
			if want := tt.want(tile); cmd.Color != want || tile.DisplayColor != want {
				t.Errorf("color = %v, want %v", cmd.Color, want)
			}
		})
	}
}

func TestDrawTileHeartSize(t *testing.T) {
	tile := restingTile()
	tile.MorphProgress = 1
	cmd := drawOne(t, tile, Displacement{Size: 1.4}, 0)
	want := 2 * 4 * HeartSizeMultiplier * 1.4
	if math.Abs(cmd.Bounds.Width-want) > 0.05 {
		t.Errorf("heart width = %v, want ~%v", cmd.Bounds.Width, want)
	}
}

func TestDrawTileBeatUsesProgressBeforeAdvance(t *testing.T) {
	// A circle whose morph completes this frame is drawn as a heart, but
	// with no beat: the beat is chosen before the morph advances.
	tile := restingTile()
	tile.Morph.Force(0, 0, 1, 0, 0)
	tile.RippleTime = 100
	tile.RippleIntensity = 1
	drawOne(t, tile, Displacement{Size: 1}, 190)
	if tile.MorphProgress != 1 {
		t.Fatalf("progress = %v, want 1", tile.MorphProgress)
	}
	if tile.HeartBeat != 0 {
		t.Errorf("beat = %v, want 0 on the frame the heart appears", tile.HeartBeat)
	}

	// On the next frame the ripple drives the beat.
	drawOne(t, tile, Displacement{Size: 1}, 190)
	assertNear(t, "beat", tile.HeartBeat, 1)
}

func TestDrawTileMainHeartDoesNotFloat(t *testing.T) {
	tile := restingTile()
	tile.IsMainHeart = true
	tile.IsHovered = true
	tile.MorphProgress = 1
	tile.HeartBeat = 0.7
	tile.GlowIntensity = 1
	tile.Color.Snap(HoveredHeartRed)
	cmd := drawOne(t, tile, Displacement{Size: MainHeartSizeMultiplier}, 777)

	if tile.DrawX != tile.X || tile.DrawY != tile.Y {
		t.Errorf("main heart drawn at (%v, %v), want its anchor", tile.DrawX, tile.DrawY)
	}
	if tile.HeartBeat != 0.7 {
		t.Errorf("drawTile overwrote the main heart beat: %v", tile.HeartBeat)
	}
	if cmd.Color != HoveredHeartRed || cmd.Glow != glowBlurScale {
		t.Errorf("color %v glow %v", cmd.Color, cmd.Glow)
	}
}

func TestSparkle(t *testing.T) {
	tile := restingTile()
	tile.IsHovered = true
	tile.MorphProgress = 1
	tile.NextSparkle = 100
	tile.Color.Snap(tile.HoverColor)

	drawOne(t, tile, Displacement{Size: 1}, 200)
	if tile.TargetColor() != sparklePalette[tile.SparkleIdx] {
		t.Errorf("target %v, want sparkle color %v", tile.TargetColor(), sparklePalette[tile.SparkleIdx])
	}
	if !tile.Color.Active() {
		t.Error("sparkle should tween, not snap")
	}
	if tile.NextSparkle < 200+SparkleMinInterval || tile.NextSparkle > 200+SparkleMaxInterval {
		t.Errorf("next sparkle at %v", tile.NextSparkle)
	}

	// The hovered heart shows the tween's current value, which still starts
	// at the hover color.
	if tile.DisplayColor != tile.HoverColor {
		t.Errorf("display %v, want hover color at the start of the tween", tile.DisplayColor)
	}
}

func TestSparkleSkipsMainHeartAndCircles(t *testing.T) {
	for _, tile := range []*Tile{
		{IsHovered: true, IsMainHeart: true, MorphProgress: 1, Radius: 1},
		{IsHovered: true, MorphProgress: 0.2, Radius: 1},
		{IsHovered: false, MorphProgress: 1, Radius: 1},
	} {
		tile.Color.Snap(HoveredHeartRed)
		drawOne(t, tile, Displacement{Size: 1}, 5000)
		if tile.Color.Active() || tile.NextSparkle != 0 {
			t.Errorf("tile %+v sparkled", tile)
		}
	}
}
