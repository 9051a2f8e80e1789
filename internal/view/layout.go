package view

import (
	"github.com/rshade/gridview/internal/cell"
	"github.com/rshade/gridview/internal/column"
	"github.com/rshade/gridview/internal/drag"
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/viewport"
)

// MoveResize gives the view a new allocation and derives the header and list areas
// from it. Without a ready theme the allocation is only remembered.
func (v *ListView[T]) MoveResize(alloc render.Rect) {
	v.alloc = alloc
	v.layoutDirty = true
	if !v.themeReady() {
		return
	}
	v.measure()
	v.allocate()
	v.InvalidateAll()
}

// allocate lays the header and list inside the border.
func (v *ListView[T]) allocate() {
	border := v.th.TotalBorderWidth()
	a := v.alloc

	v.headerAlloc = render.Rect{
		X:      a.X + border,
		Y:      a.Y + border,
		Width:  max(0, a.Width-2*border),
		Height: v.headerHeight,
	}

	v.listAlloc = render.Rect{
		X:     v.headerAlloc.X,
		Y:     v.headerAlloc.Bottom(),
		Width: v.headerAlloc.Width,
	}
	v.listAlloc.Height = max(0, a.Bottom()-border-v.listAlloc.Y)

	v.headerHitArea = v.headerAlloc
	v.listHitArea = v.listAlloc
}

// SizeRequest returns the smallest useful size: the border on every side plus the
// header.
func (v *ListView[T]) SizeRequest() render.Size {
	if !v.themeReady() {
		return render.Size{}
	}
	v.measure()
	border := v.th.TotalBorderWidth()
	return render.Size{Width: 2 * border, Height: v.headerHeight + 2*border}
}

// RowHeight returns the measured row height, or zero before measuring.
func (v *ListView[T]) RowHeight() int { return v.scroll.RowHeight }

// RowsInView returns the row count reported to viewport observers.
func (v *ListView[T]) RowsInView() int {
	return viewport.RowsInView(v.listAlloc.Height, v.scroll.RowHeight)
}

// measure computes row and header heights if a measurement is pending.
func (v *ListView[T]) measure() {
	if !v.measurePending || !v.themeReady() {
		return
	}
	v.measurePending = false

	lineHeight := v.cellCtx.Layout.LineHeight()

	v.headerHeight = 0
	if v.opts.HeaderVisible {
		v.headerHeight = lineHeight
		for _, c := range v.columns.Columns() {
			if m, ok := c.HeaderCell.(cell.Measurable); ok {
				v.headerHeight = max(v.headerHeight, m.Measure(v.cellCtx).Height)
			}
		}
	}

	if v.rowHeight != nil {
		v.scroll.RowHeight = v.rowHeight()
	} else {
		h := lineHeight
		for _, c := range v.columns.Columns() {
			if m, ok := c.Cell.(cell.Measurable); ok {
				h = max(h, m.Measure(v.cellCtx).Height)
			}
		}
		v.scroll.RowHeight = h + v.opts.RowPadding
	}

	v.layoutDirty = true
	v.logger.Debug().
		Int("row_height", v.scroll.RowHeight).
		Int("header_height", v.headerHeight).
		Msg("measured")
}

// ensureLayout runs the measurer, column cache and scroll adjustments if anything they
// depend on changed since the last run. It is a no-op without a ready theme.
func (v *ListView[T]) ensureLayout() {
	if !v.themeReady() {
		return
	}
	if v.measurePending {
		v.measure()
		v.allocate()
	}
	if !v.layoutDirty && v.cacheVersion == v.columns.Version() {
		return
	}
	v.layoutDirty = false
	v.relayouts++

	if v.cacheVersion != v.columns.Version() && v.gesture.Phase() != drag.Idle {
		// Indices held by the gesture no longer refer to the same columns.
		v.logger.Debug().Msg("column set changed during header gesture")
		v.gesture.Cancel()
	}

	v.rebuildColumns()
	v.updateAdjustments()
	v.notifyRowsInView()

	v.logger.Debug().
		Int("columns", len(v.cache)).
		Int("rows", v.count()).
		Int("list_height", v.listAlloc.Height).
		Msg("relayout")
}

func (v *ListView[T]) rebuildColumns() {
	v.cache = column.Rebuild(v.columns.Columns(), v.headerHitArea.Width)
	v.cacheVersion = v.columns.Version()
}

func (v *ListView[T]) updateAdjustments() {
	v.scroll.Update(v.count(), column.TotalWidth(v.cache), v.listAlloc.Height, v.headerHitArea.Width)
}

func (v *ListView[T]) notifyRowsInView() {
	obs, ok := v.model.(ViewportObserver)
	if !ok {
		return
	}
	rows := v.RowsInView()
	if rows == v.rowsInView {
		return
	}
	v.rowsInView = rows
	obs.SetRowsInView(rows)
}

// dragColumns exposes the column cache to the gesture controller. Mutations rebuild
// the cache immediately so the controller always sees current spans.
type dragColumns[T any] struct {
	v *ListView[T]
}

func (d dragColumns[T]) Count() int { return len(d.v.cache) }

func (d dragColumns[T]) Span(i int) (int, int) {
	c := d.v.cache[i]
	return c.X1, c.Width
}

func (d dragColumns[T]) Resizable(i int) bool { return d.v.cache[i].Resizable() }

func (d dragColumns[T]) Move(from, to int) {
	if d.v.columns.Move(from, to) {
		d.v.rebuildColumns()
	}
}

func (d dragColumns[T]) Resize(i, width int) {
	if d.v.columns.SetWidth(i, width) {
		d.v.rebuildColumns()
		d.v.updateAdjustments()
	}
}
