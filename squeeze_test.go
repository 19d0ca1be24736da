package mosaic

import "testing"

func TestSqueezeLayerFor(t *testing.T) {
	tests := []struct {
		d    float64
		want int
	}{
		{0, 0},
		{30, 0},
		{30.5, 1},
		{50, 1},
		{70, 2},
		{89, 3},
		{120, 4},
		{120.5, -1},
	}
	for _, tt := range tests {
		if got := squeezeLayerFor(tt.d); got != tt.want {
			t.Errorf("squeezeLayerFor(%v) = %d, want %d", tt.d, got, tt.want)
		}
	}
}

func TestComputeSqueezeNoMainHeart(t *testing.T) {
	tiles := []*Tile{
		{X: 0, Y: 0, MorphProgress: 1, SqueezeLayer: 2},
		{X: 10, Y: 0, MorphProgress: 0.5},
	}
	for i, d := range ComputeSqueeze(tiles, nil) {
		if d != (Displacement{Size: 1}) {
			t.Errorf("tile %d displacement = %+v, want identity", i, d)
		}
		if tiles[i].SqueezeLayer != -1 {
			t.Errorf("tile %d layer = %d, want -1", i, tiles[i].SqueezeLayer)
		}
	}
}

func TestComputeSqueezeBands(t *testing.T) {
	main := &Tile{ID: "main", X: 0, Y: 0, MorphProgress: 1, IsMainHeart: true}
	inner := &Tile{ID: "inner", X: 20, Y: 0, MorphProgress: 1}
	cascaded := &Tile{ID: "cascaded", X: 40, Y: 0, MorphProgress: 1}
	circle := &Tile{ID: "circle", X: 0, Y: 20, MorphProgress: 0}
	half := &Tile{ID: "half", X: 0, Y: -60, MorphProgress: 0.5}
	far := &Tile{ID: "far", X: 300, Y: 0, MorphProgress: 1}
	tiles := []*Tile{main, inner, cascaded, circle, half, far}

	disp := ComputeSqueeze(tiles, main)
	if len(disp) != len(tiles) {
		t.Fatalf("got %d displacements, want %d", len(disp), len(tiles))
	}

	if disp[0] != (Displacement{Size: MainHeartSizeMultiplier}) || main.SqueezeLayer != -1 {
		t.Errorf("main heart: %+v layer %d", disp[0], main.SqueezeLayer)
	}

	// Layer 0, pushed radially by its full force.
	assertNear(t, "inner.X", disp[1].X, 3)
	assertNear(t, "inner.Y", disp[1].Y, 0)
	assertNear(t, "inner.Size", disp[1].Size, 1.8)
	if inner.SqueezeLayer != 0 {
		t.Errorf("inner layer = %d, want 0", inner.SqueezeLayer)
	}

	// Layer 1: radial 2.2 plus a cascade from inner's displaced position
	// (23, 0), 17 units away: (30-17)*0.3 = 3.9.
	assertNear(t, "cascaded.X", disp[2].X, 2.2+3.9)
	assertNear(t, "cascaded.Size", disp[2].Size, 1.4)

	// A circle is assigned a band but neither grows nor moves.
	if disp[3] != (Displacement{Size: 1}) || circle.SqueezeLayer != 0 {
		t.Errorf("circle: %+v layer %d", disp[3], circle.SqueezeLayer)
	}

	// Half-morphed: size and push scale with progress.
	assertNear(t, "half.Size", disp[4].Size, 1.1*0.5+0.5)
	assertNear(t, "half.Y", disp[4].Y, -1.6*0.5)

	if disp[5] != (Displacement{Size: 1}) || far.SqueezeLayer != -1 {
		t.Errorf("far: %+v layer %d", disp[5], far.SqueezeLayer)
	}
}

func TestComputeSqueezeCoincidentTiles(t *testing.T) {
	main := &Tile{X: 50, Y: 50, MorphProgress: 1, IsMainHeart: true}
	// Same anchor as the main heart: no direction to push along.
	twin := &Tile{X: 50, Y: 50, MorphProgress: 1}
	// b sits exactly where the inner tile a is pushed to.
	a := &Tile{X: 78, Y: 50, MorphProgress: 1}
	b := &Tile{X: 81, Y: 50, MorphProgress: 1}
	disp := ComputeSqueeze([]*Tile{main, twin, a, b}, main)
	for i, d := range disp {
		if !finite(d.X) || !finite(d.Y) || !finite(d.Size) {
			t.Errorf("tile %d displacement not finite: %+v", i, d)
		}
	}
	assertNear(t, "twin.X", disp[1].X, 0)
	assertNear(t, "twin.Y", disp[1].Y, 0)
	assertNear(t, "a.X", disp[2].X, 3)
	assertNear(t, "b.X", disp[3].X, 2.2)
}

func TestSqueezerReusesBuffers(t *testing.T) {
	var sq squeezer
	main := &Tile{IsMainHeart: true, MorphProgress: 1}
	tiles := []*Tile{main, {X: 10, MorphProgress: 1}}
	first := sq.compute(tiles, main)
	second := sq.compute(tiles, main)
	if &first[0] != &second[0] {
		t.Error("compute reallocated its output buffer")
	}
}
