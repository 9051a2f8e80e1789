// Package surface provides concrete terminal drawing backends for the render.Surface
// contract: Grid, an in-memory cell buffer that renders to a styled string, and Screen,
// which presents a Grid on a tcell.Screen.
package surface

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/rshade/gridview/internal/render"
)

// Cell is one terminal cell.
type Cell struct {
	// Rune is the glyph; zero marks the trailing half of a wide glyph.
	Rune rune
	Fg   render.Color
	Bg   render.Color

	Bold      bool
	Dim       bool
	Underline bool
}

func (c Cell) blank() bool { return c.Rune == ' ' }

// Box-drawing glyphs.
const (
	glyphHorizontal  = '─'
	glyphVertical    = '│'
	glyphTopLeft     = '┌'
	glyphTopRight    = '┐'
	glyphBottomLeft  = '└'
	glyphBottomRight = '┘'
	glyphRoundTL     = '╭'
	glyphRoundTR     = '╮'
	glyphRoundBL     = '╰'
	glyphRoundBR     = '╯'
)

// Grid is a fixed-size cell buffer implementing render.Surface. Fills blend their
// color over the existing background; strokes and lines draw box glyphs on blank
// cells and underline cells that already hold text.
type Grid struct {
	render.StateStack

	width  int
	height int
	cells  []Cell
	bg     render.Color
	fg     render.Color
	cond   *runewidth.Condition
}

var _ render.Surface = (*Grid)(nil)

// NewGrid returns a width x height grid cleared to bg with default text color fg.
func NewGrid(width, height int, fg, bg render.Color) *Grid {
	g := &Grid{
		StateStack: render.NewStateStack(),
		fg:         fg,
		bg:         bg,
		cond:       runewidth.NewCondition(),
	}
	g.Resize(width, height)
	return g
}

// Size returns the grid dimensions.
func (g *Grid) Size() (int, int) { return g.width, g.height }

// Bounds returns the grid as a rectangle at the origin.
func (g *Grid) Bounds() render.Rect { return render.NewRect(0, 0, g.width, g.height) }

// Resize reallocates the buffer and clears it.
func (g *Grid) Resize(width, height int) {
	g.width, g.height = max(width, 0), max(height, 0)
	g.cells = make([]Cell, g.width*g.height)
	g.Clear()
}

// Clear resets every cell and the drawing state.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Cell{Rune: ' ', Fg: g.fg, Bg: g.bg}
	}
	g.StateStack = render.NewStateStack()
}

// At returns the cell at (x, y); out-of-range reads return a zero Cell.
func (g *Grid) At(x, y int) Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return Cell{}
	}
	return g.cells[y*g.width+x]
}

func (g *Grid) at(x, y int) *Cell {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return nil
	}
	return &g.cells[y*g.width+x]
}

// visible resolves a user-space point to a writable device cell.
func (g *Grid) visible(x, y int) *Cell {
	dx, dy, ok := g.PointVisible(x, y)
	if !ok {
		return nil
	}
	return g.at(dx, dy)
}

// FillRect implements render.Surface. Terminal cells cannot round corners, so radius
// and corners are ignored.
func (g *Grid) FillRect(r render.Rect, _ float64, _ render.Corners) {
	dev, ok := g.ToDevice(r)
	if !ok {
		return
	}
	col := g.State().Color
	dev = dev.Intersect(g.Bounds())
	for y := dev.Y; y < dev.Bottom(); y++ {
		for x := dev.X; x < dev.Right(); x++ {
			c := &g.cells[y*g.width+x]
			c.Bg = col.Over(c.Bg)
		}
	}
}

// StrokeRect implements render.Surface. A rectangle one cell tall is drawn as an
// underline.
func (g *Grid) StrokeRect(r render.Rect, radius float64, corners render.Corners) {
	if r.IsEmpty() {
		return
	}
	if r.Height == 1 {
		for x := r.X; x < r.Right(); x++ {
			g.underline(x, r.Y)
		}
		return
	}

	round := func(mask render.Corners) bool { return radius > 0 && corners.Has(mask) }
	pick := func(mask render.Corners, rounded, square rune) rune {
		if round(mask) {
			return rounded
		}
		return square
	}

	right, bottom := r.Right()-1, r.Bottom()-1
	for x := r.X + 1; x < right; x++ {
		g.glyph(x, r.Y, glyphHorizontal)
		g.glyph(x, bottom, glyphHorizontal)
	}
	for y := r.Y + 1; y < bottom; y++ {
		g.glyph(r.X, y, glyphVertical)
		if right != r.X {
			g.glyph(right, y, glyphVertical)
		}
	}
	g.glyph(r.X, r.Y, pick(render.CornerTopLeft, glyphRoundTL, glyphTopLeft))
	g.glyph(r.X, bottom, pick(render.CornerBottomLeft, glyphRoundBL, glyphBottomLeft))
	if right != r.X {
		g.glyph(right, r.Y, pick(render.CornerTopRight, glyphRoundTR, glyphTopRight))
		g.glyph(right, bottom, pick(render.CornerBottomRight, glyphRoundBR, glyphBottomRight))
	}
}

// Line implements render.Surface. Only axis-aligned lines are drawn; a diagonal is
// drawn along its dominant axis from the first point. A single-cell line with x1 == x2
// is vertical, so separators in a one-row header draw as │.
func (g *Grid) Line(x1, y1, x2, y2 int) {
	if x1 != x2 && abs(x2-x1) >= abs(y2-y1) {
		if x1 > x2 {
			x1, x2 = x2, x1
		}
		for x := x1; x <= x2; x++ {
			if c := g.visible(x, y1); c != nil && !c.blank() {
				c.Underline = true
				c.Fg = g.State().Color.Over(c.Bg)
				continue
			}
			g.glyph(x, y1, glyphHorizontal)
		}
		return
	}

	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		g.glyph(x1, y, glyphVertical)
	}
}

// Text implements render.Surface.
func (g *Grid) Text(x, y int, text string, style render.TextStyle) {
	col := g.State().Color
	for _, r := range text {
		w := g.cond.RuneWidth(r)
		if w == 0 {
			continue
		}
		if c := g.visible(x, y); c != nil {
			c.Rune = r
			c.Fg = col.Over(c.Bg)
			c.Bold, c.Dim, c.Underline = style.Bold, style.Dim, style.Underline
		}
		for k := 1; k < w; k++ {
			if c := g.visible(x+k, y); c != nil {
				c.Rune = 0
			}
		}
		x += w
	}
}

func (g *Grid) glyph(x, y int, r rune) {
	c := g.visible(x, y)
	if c == nil || !c.blank() && !isBox(c.Rune) {
		return
	}
	c.Rune = r
	c.Fg = g.State().Color.Over(c.Bg)
}

func (g *Grid) underline(x, y int) {
	if c := g.visible(x, y); c != nil {
		c.Underline = true
		if c.blank() {
			c.Fg = g.State().Color.Over(c.Bg)
		}
	}
}

func isBox(r rune) bool { return r >= 0x2500 && r <= 0x257f }

// Plain returns the glyphs only, one line per row, trailing spaces trimmed.
func (g *Grid) Plain() string {
	var b strings.Builder
	for y := range g.height {
		var line strings.Builder
		for x := range g.width {
			if r := g.cells[y*g.width+x].Rune; r != 0 {
				line.WriteRune(r)
			}
		}
		b.WriteString(strings.TrimRight(line.String(), " "))
		if y < g.height-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// String renders the grid with colors and attributes using lipgloss. Adjacent cells
// sharing a style are rendered as one run.
func (g *Grid) String() string {
	lines := make([]string, g.height)
	for y := range g.height {
		var (
			line  strings.Builder
			run   strings.Builder
			style Cell
		)
		flush := func() {
			if run.Len() > 0 {
				line.WriteString(lipglossStyle(style).Render(run.String()))
				run.Reset()
			}
		}
		for x := range g.width {
			c := g.cells[y*g.width+x]
			if c.Rune == 0 {
				continue
			}
			if !sameStyle(c, style) {
				flush()
				style = c
			}
			run.WriteRune(c.Rune)
		}
		flush()
		lines[y] = line.String()
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sameStyle(a, b Cell) bool {
	return a.Fg == b.Fg && a.Bg == b.Bg && a.Bold == b.Bold && a.Dim == b.Dim && a.Underline == b.Underline
}

func lipglossStyle(c Cell) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(c.Fg.Hex())).
		Background(lipgloss.Color(c.Bg.Hex())).
		Bold(c.Bold).
		Faint(c.Dim).
		Underline(c.Underline)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
