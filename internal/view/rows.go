package view

import (
	"github.com/rshade/gridview/internal/cell"
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/viewport"
)

// paintList paints the visible rows. Consecutive selected rows are accumulated into one
// open band which is flushed when an unselected row or the end of the range is reached;
// the cells of selected rows are painted last, on top of their bands.
//
//nolint:funlen // one pass over the visible rows keeps the band bookkeeping in one place.
func (v *ListView[T]) paintList(s render.Surface, clip render.Rect) {
	rh := v.scroll.RowHeight
	colors := v.th.Colors()

	clip = clip.Intersect(v.listAlloc)
	if clip.IsEmpty() {
		return
	}
	s.Save()
	defer s.Restore()
	s.Clip(clip)

	v.th.DrawListBackground(s, v.listAlloc, colors.ViewFill)
	v.paintSortedColumn(s)

	ctx := v.cellCtx
	ctx.Clip = clip
	ctx.TextAsForeground = false

	vadj := v.scroll.Vertical.Value
	rng := viewport.VisibleRange(vadj, rh, v.listAlloc.Height, v.count())
	v.frame.Range = rng
	offset := v.listAlloc.Y - vadj%rh

	row := render.Rect{
		X:      v.listAlloc.X - v.hadj(),
		Y:      offset,
		Width:  v.listAlloc.Width + v.hadj(),
		Height: rh,
	}

	sel := v.selection
	focus := -1
	if sel != nil {
		focus = sel.FocusedIndex()
	}
	selected := func(ri int) bool { return sel != nil && sel.Contains(ri) }
	showCursor := v.hasFocus && !v.headerFocused

	var (
		bandHeight   int
		bandY        int
		bandFirst    int
		focusInBand  render.Rect
		selectedRows []int
	)

	flush := func(last int) {
		if bandHeight == 0 {
			return
		}
		corners := render.CornersAll
		if selected(bandFirst - 1) {
			corners = corners.Without(render.CornersTop)
		}
		if selected(last + 1) {
			corners = corners.Without(render.CornersBottom)
		}
		band := render.Rect{X: v.listAlloc.X, Y: bandY, Width: v.listAlloc.Width, Height: bandHeight}
		band = v.mirror(band)
		v.th.DrawRowSelection(s, band, true, true, v.selectionColor(colors), corners)
		v.frame.Bands = append(v.frame.Bands, Band{First: bandFirst, Last: last, Rect: band, Corners: corners})
		bandHeight = 0
	}

	for ri := rng.First; ri < rng.Last; ri++ {
		if selected(ri) {
			if bandHeight == 0 {
				bandY = row.Y
				bandFirst = ri
			}
			bandHeight += row.Height
			selectedRows = append(selectedRows, ri)
			if focus == ri {
				focusInBand = row
			}
			row.Y += row.Height
			continue
		}

		if v.opts.RulesHint && ri%2 != 0 {
			v.th.DrawRowRule(s, row)
		}

		v.paintReorderLine(s, ri, row)

		if focus == ri && showCursor {
			corners := render.CornersAll
			if selected(ri - 1) {
				corners = corners.Without(render.CornersTop)
			}
			if selected(ri + 1) {
				corners = corners.Without(render.CornersBottom)
			}
			v.th.DrawRowCursor(s, v.mirror(row), colors.CursorOutside, corners)
			v.frame.CursorRow = ri
		}

		flush(ri - 1)
		v.paintRow(s, ri, row, cell.StateNormal)
		row.Y += row.Height
	}

	v.paintReorderLine(s, rng.Last, row)
	flush(rng.Last - 1)

	if sel != nil && sel.Count() > 1 && !focusInBand.IsEmpty() && showCursor {
		v.th.DrawRowCursor(s, v.mirror(focusInBand), colors.CursorInside, render.CornersAll)
		v.frame.CursorRow = focus
		v.frame.CursorInside = true
	}

	for _, ri := range selectedRows {
		row.Y = offset + (ri-rng.First)*rh
		v.paintRow(s, ri, row, cell.StateSelected)
	}
}

// mirror flips r across the list area in right-to-left mode.
func (v *ListView[T]) mirror(r render.Rect) render.Rect {
	if !v.rtl {
		return r
	}
	return r.MirrorX(v.listAlloc)
}

func (v *ListView[T]) paintSortedColumn(s render.Surface) {
	if v.sortColumn == nil {
		return
	}
	for ci, c := range v.cache {
		if c.Column != v.sortColumn {
			continue
		}
		if ci == v.draggedColumn() {
			return
		}
		area := render.Rect{
			X:      v.listAlloc.X + c.X1 - v.hadj(),
			Y:      v.headerAlloc.Bottom(),
			Width:  c.Width,
			Height: v.listAlloc.Height,
		}
		v.th.DrawColumnHighlight(s, area.Intersect(v.listAlloc), v.th.Colors().SortedColumn)
		return
	}
}

func (v *ListView[T]) paintReorderLine(s render.Surface, ri int, row render.Rect) {
	if ri != v.reorderTargetRow || !v.opts.Reorderable {
		return
	}
	s.Save()
	s.SetLineWidth(1)
	s.SetColor(v.th.Colors().ReorderLine)
	s.Line(row.X, row.Y, row.Right()-1, row.Y)
	s.Restore()
}

func (v *ListView[T]) paintRow(s render.Surface, ri int, row render.Rect, state cell.State) {
	if len(v.cache) == 0 || ri < 0 || ri >= v.count() {
		return
	}

	item := v.model.ItemAt(ri)
	opaque := v.opaque == nil || v.opaque(item)
	bold := v.emphasized != nil && v.emphasized(item)

	ctx := v.cellCtx
	ctx.ViewRowIndex = ri
	ctx.ModelRowIndex = ri

	area := render.Rect{Y: row.Y, Height: v.scroll.RowHeight}
	dragged := v.draggedColumn()

	for ci := range v.cache {
		if ci == dragged {
			continue
		}
		area.X = v.cache[ci].X1 + row.X
		area.Width = v.cache[ci].Width
		v.paintCell(s, item, ci, area, opaque, bold, state, false)
	}

	if dragged >= 0 {
		area.X = v.gesture.State().X + v.listAlloc.X - v.hadj()
		area.Width = v.cache[dragged].Width
		v.paintCell(s, item, dragged, area, opaque, bold, state, true)
	}
}

func (v *ListView[T]) paintCell(
	s render.Surface,
	item T,
	ci int,
	area render.Rect,
	opaque, bold bool,
	state cell.State,
	dragging bool,
) {
	if ci < 0 || ci >= len(v.cache) {
		return
	}
	body := v.cache[ci].Column.Cell
	if body == nil {
		return
	}

	body.Bind(item)
	if tc, ok := body.(cell.TextCell); ok {
		tc.SetBold(bold)
	}

	if dragging {
		s.SetColor(v.th.Colors().DragCellFill)
		s.FillRect(area, 0, render.CornersNone)
		state = cell.StateNormal
	}

	ctx := v.cellCtx
	ctx.Area = area
	ctx.Opaque = opaque
	ctx.State = state
	ctx.ViewColumnIndex = ci
	v.renderCell(s, body, area)
}
