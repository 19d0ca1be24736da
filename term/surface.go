// Package term renders a mosaic into a terminal through tcell. Each fill
// becomes one glyph in the cell under the shape's centre: a dot for circles
// and a heart for everything else, in true color.
package term

import (
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/mosaic"
)

// Default cell size in logical units. A typical cell is twice as tall as it
// is wide.
const (
	DefaultCellWidth  = 9.0
	DefaultCellHeight = 18.0
)

const (
	glyphCircle = '●'
	glyphHeart  = '♥'
)

// Surface is a mosaic.Surface backed by a tcell.Screen. Later fills overwrite
// earlier ones in the same cell, so draw order decides what is visible.
type Surface struct {
	mosaic.Canvas

	CellWidth  float64
	CellHeight float64
	Background mosaic.RGB

	screen tcell.Screen
}

// NewSurface wraps an initialized screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{
		Canvas:     mosaic.NewCanvas(),
		CellWidth:  DefaultCellWidth,
		CellHeight: DefaultCellHeight,
		Background: mosaic.DefaultBackground,
		screen:     screen,
	}
}

// LogicalSize returns the screen size in logical units.
func (s *Surface) LogicalSize() (width, height float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * s.CellWidth, float64(rows) * s.CellHeight
}

// ToLogical maps a cell to the logical coordinates of its centre.
func (s *Surface) ToLogical(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * s.CellWidth, (float64(row) + 0.5) * s.CellHeight
}

// ToCell maps logical coordinates to the cell containing them.
func (s *Surface) ToCell(x, y float64) (col, row int) {
	return int(math.Floor(x / s.CellWidth)), int(math.Floor(y / s.CellHeight))
}

func (s *Surface) backgroundStyle() tcell.Style {
	return tcell.StyleDefault.Background(rgb(s.Background))
}

// Clear blanks the screen with the background color and resets the
// transform stack.
func (s *Surface) Clear() {
	s.ResetState()
	s.screen.Fill(' ', s.backgroundStyle())
}

// Fill places the glyph for the current path in the cell under its centre.
func (s *Surface) Fill() {
	p := s.CurrentPath()
	if p.Empty() {
		return
	}
	c := p.Bounds().Center()
	col, row := s.ToCell(c.X, c.Y)
	cols, rows := s.screen.Size()
	if col < 0 || row < 0 || col >= cols || row >= rows {
		return
	}

	glyph := glyphHeart
	if p.IsCircle() {
		glyph = glyphCircle
	}
	style := s.backgroundStyle().Foreground(rgb(s.FillColor()))
	if _, blur := s.Shadow(); blur > 0 {
		style = style.Bold(true)
	}
	s.screen.SetContent(col, row, glyph, nil, style)
}

// Show flushes the frame to the terminal.
func (s *Surface) Show() {
	s.screen.Show()
}

func rgb(c mosaic.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
