package view

import (
	"fmt"

	"github.com/rshade/gridview/internal/cell"
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/theme"
)

// Paint draws the view onto s, restricted to clip. Layout is brought up to date first.
// Painting is skipped entirely while the theme has no style, while the rows are not
// measured, or when there is no model and RenderNullModel is off.
//
// Paint panics if a theme context pushed during the pass is left on the stack.
func (v *ListView[T]) Paint(s render.Surface, clip render.Rect) {
	v.frame = Frame{CursorRow: -1}

	if v.model == nil && !v.opts.RenderNullModel {
		return
	}
	if !v.themeReady() {
		return
	}
	v.ensureLayout()
	if v.scroll.RowHeight <= 0 {
		return
	}

	depth := v.th.Depth()
	ctx := v.cellCtx
	ctx.Surface = s
	ctx.Theme = v.th
	defer func() { ctx.Surface = nil }()

	s.Save()
	s.Clip(clip)

	colors := v.th.Colors()
	v.th.DrawFrameBackground(s, v.alloc, colors.Background)

	if v.opts.HeaderVisible {
		v.paintHeader(s)
	}
	if v.model != nil {
		v.paintList(s, clip)
	}

	v.th.DrawFrameBorder(s, v.alloc)
	v.paintDraggingColumn(s)

	s.Restore()

	if got := v.th.Depth(); got != depth {
		panic(fmt.Sprintf("view: theme context stack unbalanced after paint: depth %d, want %d", got, depth))
	}

	v.frame.Painted = true
	v.damage = nil
	v.logger.Trace().
		Int("first_row", v.frame.Range.First).
		Int("last_row", v.frame.Range.Last).
		Int("bands", len(v.frame.Bands)).
		Msg("painted")
}

// draggedColumn returns the cache index of the column being dragged, or -1.
func (v *ListView[T]) draggedColumn() int {
	st := v.gesture.State()
	if !v.gesture.IsDragging() || st.Column < 0 || st.Column >= len(v.cache) {
		return -1
	}
	return st.Column
}

func (v *ListView[T]) hadj() int { return v.scroll.Horizontal.Value }

func (v *ListView[T]) paintHeader(s render.Surface) {
	clip := v.headerAlloc.Intersect(v.alloc)
	if clip.IsEmpty() {
		return
	}

	headerCtx := v.th.Context()
	headerCtx.Radius = 0
	v.th.PushContext(headerCtx)
	defer v.th.PopContext()

	s.Save()
	defer s.Restore()
	s.Clip(clip)

	v.th.DrawHeaderBackground(s, v.headerAlloc)

	ctx := v.cellCtx
	ctx.Clip = clip
	ctx.Opaque = true
	ctx.TextAsForeground = true

	dragged := v.draggedColumn()
	area := render.Rect{Y: v.headerAlloc.Y, Height: v.headerAlloc.Height}
	haveDrawnSeparator := false

	for ci := range v.cache {
		if ci == dragged {
			continue
		}
		area.X = v.cache[ci].X1 + v.headerAlloc.X - v.hadj()
		area.Width = v.cache[ci].Width
		v.paintHeaderCell(s, area, ci, false, &haveDrawnSeparator)
	}

	if dragged >= 0 {
		area.X = v.gesture.State().X + v.headerAlloc.X - v.hadj()
		area.Width = v.cache[dragged].Width
		v.paintHeaderCell(s, area, dragged, true, &haveDrawnSeparator)
	}

	ctx.TextAsForeground = false
}

func (v *ListView[T]) paintHeaderCell(s render.Surface, area render.Rect, ci int, dragging bool, haveDrawnSeparator *bool) {
	if ci < 0 || ci >= len(v.cache) {
		return
	}
	colors := v.th.Colors()

	if ci == v.activeColumn && v.hasFocus && v.headerFocused {
		v.th.DrawColumnHeaderFocus(s, area)
	}

	if dragging {
		v.th.DrawColumnHighlight(s, area, colors.DragHighlight)
		s.SetColor(colors.DragStroke)
		s.SetLineWidth(1)
		s.Line(area.X, area.Y, area.X, area.Bottom()-1)
		s.Line(area.Right()-1, area.Y, area.Right()-1, area.Bottom()-1)
	}

	if hc := v.cache[ci].Column.HeaderCell; hc != nil {
		ctx := v.cellCtx
		ctx.Area = area
		ctx.State = cell.StateNormal
		ctx.ViewColumnIndex = ci
		v.renderCell(s, hc, area)
	}

	last := len(v.cache) - 1
	if !dragging && ci < last &&
		(*haveDrawnSeparator || v.cache[ci].Resizable() || v.cache[ci+1].Resizable()) {
		*haveDrawnSeparator = true
		v.th.DrawHeaderSeparator(s, area, area.Right())
	}
}

// renderCell translates to area, clips to it and hands the cell the shared context.
func (v *ListView[T]) renderCell(s render.Surface, p cell.Paintable, area render.Rect) {
	s.Save()
	s.Translate(area.X, area.Y)
	s.Clip(render.Rect{Width: area.Width, Height: area.Height})
	p.Render(v.cellCtx, area.Width, area.Height)
	s.Restore()
}

func (v *ListView[T]) paintDraggingColumn(s render.Surface) {
	dragged := v.draggedColumn()
	if dragged < 0 {
		return
	}
	colors := v.th.Colors()
	col := v.cache[dragged]

	x := v.gesture.State().X + v.listAlloc.X + 1 - v.hadj()
	top := v.headerAlloc.Bottom()
	bottom := v.listAlloc.Bottom()
	overlay := render.Rect{X: x, Y: top, Width: max(0, col.Width-2), Height: bottom - top}
	if overlay.IsEmpty() {
		return
	}

	s.SetColor(colors.DragOverlayFill)
	s.FillRect(overlay, 0, render.CornersNone)

	s.SetColor(colors.DragStroke)
	s.SetLineWidth(1)
	s.Line(x-1, top, x-1, bottom-1)
	s.Line(x-1, bottom-1, overlay.Right(), bottom-1)
	s.Line(overlay.Right(), bottom-1, overlay.Right(), top)
}

// selectionColor is the band fill, muted when focus is elsewhere or on the header.
func (v *ListView[T]) selectionColor(colors theme.Colors) render.Color {
	if !v.hasFocus || v.headerFocused {
		return colors.SelectionUnfocused
	}
	return colors.SelectionFocused
}
