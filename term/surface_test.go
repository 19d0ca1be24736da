package term

import (
	"math/rand/v2"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/mosaic"
)

func newTestScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(cols, rows)
	return screen
}

func TestSurfaceCoordinates(t *testing.T) {
	s := NewSurface(newTestScreen(t, 40, 20))
	w, h := s.LogicalSize()
	if w != 360 || h != 360 {
		t.Errorf("LogicalSize = %vx%v, want 360x360", w, h)
	}
	x, y := s.ToLogical(2, 3)
	if x != 22.5 || y != 63 {
		t.Errorf("ToLogical(2, 3) = (%v, %v), want (22.5, 63)", x, y)
	}
	if col, row := s.ToCell(x, y); col != 2 || row != 3 {
		t.Errorf("ToCell(%v, %v) = (%d, %d), want (2, 3)", x, y, col, row)
	}
	if col, row := s.ToCell(-1, -1); col != -1 || row != -1 {
		t.Errorf("ToCell(-1, -1) = (%d, %d), want (-1, -1)", col, row)
	}
}

func TestSurfaceFill(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	s := NewSurface(screen)
	s.Clear()

	tests := []struct {
		name      string
		col, row  int
		heart     bool
		color     mosaic.RGB
		glow      float64
		wantGlyph rune
	}{
		{"circle", 5, 4, false, mosaic.DarkGreen, 0, glyphCircle},
		{"glowing heart", 10, 2, true, mosaic.HoveredHeartRed, 10, glyphHeart},
	}
	for _, tt := range tests {
		x, y := s.ToLogical(tt.col, tt.row)
		s.Save()
		s.Translate(x, y)
		s.SetShadow(tt.color, tt.glow)
		s.SetFillColor(tt.color)
		if tt.heart {
			mosaic.DrawHeart(s, 6, 0)
		} else {
			mosaic.DrawCircle(s, 3)
		}
		s.Restore()
	}
	s.Show()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mainc, _, style, _ := screen.GetContent(tt.col, tt.row)
			if mainc != tt.wantGlyph {
				t.Errorf("glyph = %q, want %q", mainc, tt.wantGlyph)
			}
			fg, bg, attrs := style.Decompose()
			if fg != rgb(tt.color) {
				t.Errorf("foreground = %v, want %v", fg, rgb(tt.color))
			}
			if bg != rgb(mosaic.DefaultBackground) {
				t.Errorf("background = %v, want %v", bg, rgb(mosaic.DefaultBackground))
			}
			if bold := attrs&tcell.AttrBold != 0; bold != (tt.glow > 0) {
				t.Errorf("bold = %v, want %v", bold, tt.glow > 0)
			}
		})
	}

	if mainc, _, _, _ := screen.GetContent(0, 0); mainc != ' ' {
		t.Errorf("untouched cell = %q, want blank", mainc)
	}
}

func TestSurfaceFillOffScreen(t *testing.T) {
	s := NewSurface(newTestScreen(t, 10, 5))
	s.Clear()
	s.Translate(-50, 1000)
	s.SetFillColor(mosaic.DarkGreen)
	mosaic.DrawCircle(s, 3) // must not panic
}

func TestSurfaceRendersEngine(t *testing.T) {
	screen := newTestScreen(t, 40, 20)
	s := NewSurface(screen)
	e := mosaic.NewEngine(mosaic.EngineConfig{Rand: rand.New(rand.NewPCG(1, 2))})
	w, h := s.LogicalSize()
	e.Resize(w, h, 1)
	if len(e.Tiles()) == 0 {
		t.Fatal("no tiles at terminal size")
	}

	// Logo-local (400, 200) at scale 0.7 in a 360x360 canvas.
	e.PointerMoved(292, 208, 0)
	e.RenderFrame(s, 0)
	e.RenderFrame(s, 16)
	s.Show()

	hearts, dots := 0, 0
	cols, rows := screen.Size()
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			switch mainc, _, _, _ := screen.GetContent(col, row); mainc {
			case glyphHeart:
				hearts++
			case glyphCircle:
				dots++
			}
		}
	}
	if hearts == 0 || dots == 0 {
		t.Errorf("rendered %d hearts and %d dots, want both", hearts, dots)
	}
}
