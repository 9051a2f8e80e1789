package surface

import (
	"github.com/gdamore/tcell/v2"

	"github.com/rshade/gridview/internal/render"
)

// Screen presents grids on a tcell.Screen.
type Screen struct {
	screen tcell.Screen
	grid   *Grid
}

// NewScreen wraps an initialized tcell screen. Frames are drawn into a grid with the
// given default colors.
func NewScreen(s tcell.Screen, fg, bg render.Color) *Screen {
	w, h := s.Size()
	return &Screen{screen: s, grid: NewGrid(w, h, fg, bg)}
}

// Begin returns a cleared grid sized to the screen for the next frame.
func (s *Screen) Begin() *Grid {
	w, h := s.screen.Size()
	if gw, gh := s.grid.Size(); gw != w || gh != h {
		s.grid.Resize(w, h)
	} else {
		s.grid.Clear()
	}
	return s.grid
}

// Show copies the grid to the screen and flushes it.
func (s *Screen) Show() {
	w, h := s.grid.Size()
	for y := range h {
		for x := range w {
			c := s.grid.At(x, y)
			if c.Rune == 0 {
				continue
			}
			s.screen.SetContent(x, y, c.Rune, nil, tcellStyle(c))
		}
	}
	s.screen.Show()
}

func tcellStyle(c Cell) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcellColor(c.Fg)).
		Background(tcellColor(c.Bg)).
		Bold(c.Bold).
		Dim(c.Dim).
		Underline(c.Underline)
}

func tcellColor(c render.Color) tcell.Color {
	return tcell.NewRGBColor(channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) int32 {
	return int32(max(0, min(255, v*255+0.5)))
}
