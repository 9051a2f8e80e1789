package theme

import (
	"math"

	"github.com/rshade/gridview/internal/render"
)

// Flat is a solid-fill skin for cell-based surfaces: one-unit frame border, no inner
// padding, rounded outlines where the surface supports them.
type Flat struct {
	*Base

	borderless bool
}

var _ Theme = (*Flat)(nil)

// NewFlat returns a bordered flat skin.
func NewFlat(radius float64) *Flat {
	return &Flat{Base: NewBase(radius)}
}

// NewPlain returns a flat skin without a frame border.
func NewPlain(radius float64) *Flat {
	return &Flat{Base: NewBase(radius), borderless: true}
}

// BorderWidth implements Theme.
func (t *Flat) BorderWidth() int {
	if t.borderless {
		return 0
	}
	return 1
}

// TotalBorderWidth implements Theme.
func (t *Flat) TotalBorderWidth() int { return t.BorderWidth() + t.InnerBorderWidth() }

// DrawFrameBackground implements Theme.
func (t *Flat) DrawFrameBackground(s render.Surface, r render.Rect, c render.Color) {
	s.SetColor(c)
	s.FillRect(r, t.Context().Radius, render.CornersAll)
}

// DrawFrameBorder implements Theme.
func (t *Flat) DrawFrameBorder(s render.Surface, r render.Rect) {
	ctx := t.Context()
	if t.BorderWidth() == 0 || ctx.ToplevelBorderCollapse {
		return
	}
	s.SetColor(t.colors.Border)
	s.SetLineWidth(float64(t.BorderWidth()))
	s.StrokeRect(r, ctx.Radius, render.CornersAll)
}

// DrawHeaderBackground implements Theme.
func (t *Flat) DrawHeaderBackground(s render.Surface, r render.Rect) {
	s.SetColor(t.colors.HeaderFill)
	s.FillRect(r, 0, render.CornersNone)
}

// DrawColumnHeaderFocus implements Theme.
func (t *Flat) DrawColumnHeaderFocus(s render.Surface, r render.Rect) {
	s.SetColor(t.colors.SelectionStroke)
	s.SetLineWidth(t.Context().LineWidth)
	s.StrokeRect(r, 0, render.CornersNone)
}

// DrawHeaderSeparator implements Theme. The separator occupies the last unit of the
// column ending at x.
func (t *Flat) DrawHeaderSeparator(s render.Surface, r render.Rect, x int) {
	s.SetColor(t.colors.Border)
	s.Line(x-1, r.Y, x-1, r.Bottom()-1)
}

// DrawColumnHighlight implements Theme.
func (t *Flat) DrawColumnHighlight(s render.Surface, r render.Rect, c render.Color) {
	s.SetColor(c)
	s.FillRect(r, 0, render.CornersNone)
}

// DrawListBackground implements Theme.
func (t *Flat) DrawListBackground(s render.Surface, r render.Rect, c render.Color) {
	s.SetColor(c)
	s.FillRect(r, 0, render.CornersNone)
}

// DrawRowSelection implements Theme.
func (t *Flat) DrawRowSelection(
	s render.Surface,
	r render.Rect,
	filled, stroked bool,
	c render.Color,
	corners render.Corners,
) {
	ctx := t.Context()
	if filled {
		s.SetColor(c.WithAlpha(c.A * ctx.FillAlpha))
		s.FillRect(r, ctx.Radius, corners)
	}
	if stroked {
		s.SetColor(t.colors.SelectionStroke)
		s.SetLineWidth(ctx.LineWidth)
		s.StrokeRect(r, ctx.Radius, corners)
	}
}

// DrawRowCursor implements Theme.
func (t *Flat) DrawRowCursor(s render.Surface, r render.Rect, c render.Color, corners render.Corners) {
	ctx := t.Context()
	s.SetColor(c)
	s.SetLineWidth(ctx.LineWidth)
	s.StrokeRect(r, ctx.Radius, corners)
}

// DrawRowRule implements Theme.
func (t *Flat) DrawRowRule(s render.Surface, r render.Rect) {
	s.SetColor(t.colors.RowRule)
	s.FillRect(r, 0, render.CornersNone)
}

// DrawArrow implements Theme. Rotation is quantized to the nearest quarter turn;
// π/2 points up.
func (t *Flat) DrawArrow(s render.Surface, r render.Rect, rotation float64) {
	if r.IsEmpty() {
		return
	}
	s.SetColor(t.colors.HeaderText)
	s.Text(r.X+(r.Width-1)/2, r.Y+(r.Height-1)/2, arrowGlyph(rotation), render.TextStyle{})
}

func arrowGlyph(rotation float64) string {
	quarter := int(math.Round(rotation/(math.Pi/2))) % 4
	if quarter < 0 {
		quarter += 4
	}
	return [...]string{"▶", "▲", "◀", "▼"}[quarter]
}
