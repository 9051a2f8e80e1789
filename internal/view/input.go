package view

import (
	"github.com/rshade/gridview/internal/column"
	"github.com/rshade/gridview/internal/drag"
	"github.com/rshade/gridview/internal/viewport"
)

// Region is the part of the view a point falls in.
type Region uint8

// Regions.
const (
	RegionNone Region = iota
	RegionHeader
	RegionList
)

// Hit is the result of a hit test. Row and Column are -1 when not applicable.
type Hit struct {
	Region Region
	Row    int
	Column int
}

var noHit = Hit{Region: RegionNone, Row: -1, Column: -1}

// HitTest maps a view-local point to the header column or the row and column under it.
func (v *ListView[T]) HitTest(x, y int) Hit {
	if !v.themeReady() {
		return noHit
	}
	v.ensureLayout()

	switch {
	case v.opts.HeaderVisible && v.headerHitArea.Contains(x, y):
		return Hit{
			Region: RegionHeader,
			Row:    -1,
			Column: column.IndexAt(v.cache, x-v.headerHitArea.X+v.hadj()),
		}
	case v.listHitArea.Contains(x, y):
		return Hit{
			Region: RegionList,
			Row:    viewport.RowAt(y-v.listHitArea.Y+v.scroll.Vertical.Value, v.scroll.RowHeight, v.count()),
			Column: column.IndexAt(v.cache, x-v.listHitArea.X+v.hadj()),
		}
	default:
		return noHit
	}
}

// PointerPress handles a primary button press. A press on a header column starts a
// header gesture and moves keyboard focus to the header; a press on the rows moves it
// back to the rows. Selection changes are left to the caller, which gets the hit.
func (v *ListView[T]) PointerPress(x, y int) Hit {
	hit := v.HitTest(x, y)
	switch hit.Region {
	case RegionHeader:
		v.SetHeaderFocused(true)
		if hit.Column >= 0 {
			v.activeColumn = hit.Column
			v.gesture.Press(dragColumns[T]{v}, hit.Column, v.headerContentX(x), v.opts.Reorderable)
		}
		v.InvalidateHeader()
	case RegionList:
		v.SetHeaderFocused(false)
	case RegionNone:
	}
	return hit
}

// PointerMotion feeds pointer movement to an active header gesture.
func (v *ListView[T]) PointerMotion(x, _ int) {
	if v.gesture.Phase() == drag.Idle {
		return
	}
	v.ensureLayout()
	v.gesture.Motion(dragColumns[T]{v}, v.headerContentX(x))
	v.InvalidateAll()
}

// PointerRelease ends a header gesture and acts on its outcome: a click toggles the
// column's sort direction, a drag reports the reorder once, a resize reports the new
// width.
func (v *ListView[T]) PointerRelease(_, _ int) drag.Event {
	if v.gesture.Phase() == drag.Idle {
		return drag.Event{}
	}
	v.ensureLayout()
	ev := v.gesture.Release(dragColumns[T]{v})

	switch ev.Kind {
	case drag.EventClick:
		v.columnClicked(ev.Column)
	case drag.EventReorder:
		v.activeColumn = ev.Column
		v.logger.Debug().Int("from", ev.From).Int("to", ev.Column).Msg("column reordered")
		if v.handlers.ColumnReordered != nil && ev.From != ev.Column {
			v.handlers.ColumnReordered(ev.From, ev.Column)
		}
	case drag.EventResize:
		v.logger.Debug().Int("column", ev.Column).Int("width", ev.Width).Msg("column resized")
		if v.handlers.ColumnResized != nil {
			v.handlers.ColumnResized(ev.Column, ev.Width)
		}
	case drag.EventNone:
	}

	v.RequestRelayout()
	return ev
}

// CancelGesture abandons a header gesture, e.g. when the pointer leaves the view.
func (v *ListView[T]) CancelGesture() {
	if v.gesture.Phase() != drag.Idle {
		v.gesture.Cancel()
		v.InvalidateAll()
	}
}

func (v *ListView[T]) headerContentX(x int) int {
	return x - v.headerHitArea.X + v.hadj()
}

func (v *ListView[T]) columnClicked(ci int) {
	if ci < 0 || ci >= len(v.cache) {
		return
	}
	c := v.cache[ci].Column
	if !c.Sortable {
		return
	}
	v.SetSortColumn(c, c.Sort.Toggle())
	v.logger.Debug().Str("column", c.ID).Uint8("sort", uint8(c.Sort)).Msg("sort changed")
	if v.handlers.SortChanged != nil {
		v.handlers.SortChanged(c)
	}
}

// ScrollBy moves the vertical offset by dy units.
func (v *ListView[T]) ScrollBy(dy int) {
	v.ensureLayout()
	if v.scroll.Vertical.ScrollBy(dy) {
		v.InvalidateList()
	}
}

// ScrollHorizontallyBy moves the horizontal offset by dx units.
func (v *ListView[T]) ScrollHorizontallyBy(dx int) {
	v.ensureLayout()
	if v.scroll.Horizontal.ScrollBy(dx) {
		v.InvalidateAll()
	}
}

// ScrollTo sets the vertical offset.
func (v *ListView[T]) ScrollTo(y int) {
	v.ensureLayout()
	if v.scroll.Vertical.Set(y) {
		v.InvalidateList()
	}
}

// ScrollToRow scrolls the least amount that brings row fully into view.
func (v *ListView[T]) ScrollToRow(row int) {
	v.ensureLayout()
	if row >= v.count() {
		return
	}
	if v.scroll.ScrollToRow(row) {
		v.InvalidateList()
	}
}

// ToggleSort toggles the sort direction of the column at cache index ci as if its
// header had been clicked.
func (v *ListView[T]) ToggleSort(ci int) {
	v.ensureLayout()
	v.columnClicked(ci)
	v.RequestRelayout()
}
