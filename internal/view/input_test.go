package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridview/internal/column"
	"github.com/rshade/gridview/internal/drag"
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/theme"
)

type recordedHandlers struct {
	reorders [][2]int
	sorts    []string
	resizes  [][2]int
}

func (r *recordedHandlers) handlers() Handlers {
	return Handlers{
		ColumnReordered: func(from, to int) { r.reorders = append(r.reorders, [2]int{from, to}) },
		SortChanged:     func(c *column.Column) { r.sorts = append(r.sorts, c.ID) },
		ColumnResized:   func(i, w int) { r.resizes = append(r.resizes, [2]int{i, w}) },
	}
}

func columnIDs(v *ListView[track]) []string {
	var ids []string
	for _, c := range v.Columns().Columns() {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestHeaderDragReordersOnce(t *testing.T) {
	rec := &recordedHandlers{}
	f := newFixture(t, 20, WithHandlers(rec.handlers()))
	f.paint()

	hit := f.view.PointerPress(11, 1)
	require.Equal(t, Hit{Region: RegionHeader, Row: -1, Column: 0}, hit)
	assert.True(t, f.view.HeaderFocused())
	assert.Equal(t, drag.Pressed, f.view.Gesture().Phase)

	f.view.PointerMotion(40, 1)
	st := f.view.Gesture()
	assert.Equal(t, drag.Dragging, st.Phase)
	assert.Equal(t, 1, st.Column)
	assert.Equal(t, []string{"plays", "title"}, columnIDs(f.view))

	frame := f.paint()
	assert.True(t, frame.Painted)
	var overlay []render.Op
	for _, op := range f.rec.OpsOf(render.OpFill) {
		if op.Color == f.th.Colors().DragOverlayFill {
			overlay = append(overlay, op)
		}
	}
	require.Len(t, overlay, 1, "the floating column is painted once over the list")
	assert.Equal(t, render.NewRect(8, 2, 30, 11), overlay[0].Rect)

	ev := f.view.PointerRelease(40, 1)
	assert.Equal(t, drag.EventReorder, ev.Kind)
	assert.Equal(t, [][2]int{{0, 1}}, rec.reorders)
	assert.Equal(t, drag.Idle, f.view.Gesture().Phase)
	assert.Empty(t, rec.sorts)
}

func TestHeaderDragBackToOriginIsNotReported(t *testing.T) {
	rec := &recordedHandlers{}
	f := newFixture(t, 20, WithHandlers(rec.handlers()))
	f.paint()

	f.view.PointerPress(11, 1)
	f.view.PointerMotion(40, 1)
	require.Equal(t, []string{"plays", "title"}, columnIDs(f.view))
	f.view.PointerMotion(11, 1)
	require.Equal(t, []string{"title", "plays"}, columnIDs(f.view))

	ev := f.view.PointerRelease(11, 1)
	assert.Equal(t, drag.EventReorder, ev.Kind)
	assert.Equal(t, ev.From, ev.Column)
	assert.Empty(t, rec.reorders)
}

func TestHeaderClickTogglesSort(t *testing.T) {
	rec := &recordedHandlers{}
	f := newFixture(t, 20, WithHandlers(rec.handlers()))
	f.paint()

	plays := f.view.Columns().At(1)

	f.view.PointerPress(35, 1)
	f.view.PointerMotion(36, 1)
	ev := f.view.PointerRelease(36, 1)
	assert.Equal(t, drag.EventClick, ev.Kind)
	assert.Equal(t, theme.SortAscending, plays.Sort)
	assert.Same(t, plays, f.view.SortColumn())

	f.view.PointerPress(35, 1)
	f.view.PointerRelease(35, 1)
	assert.Equal(t, theme.SortDescending, plays.Sort)
	assert.Equal(t, []string{"plays", "plays"}, rec.sorts)

	f.view.PointerPress(5, 1)
	f.view.PointerRelease(5, 1)
	assert.Len(t, rec.sorts, 2, "unsortable columns ignore clicks")
	assert.Empty(t, rec.reorders)

	f.paint()
	var sorted []render.Rect
	for _, op := range f.rec.OpsOf(render.OpFill) {
		if op.Color == f.th.Colors().SortedColumn {
			sorted = append(sorted, op.Rect)
		}
	}
	assert.Equal(t, []render.Rect{render.NewRect(33, 2, 6, 11)}, sorted)
}

func TestHeaderResize(t *testing.T) {
	rec := &recordedHandlers{}
	f := newFixture(t, 20, WithHandlers(rec.handlers()))
	f.paint()

	// The title column spans content 0..31; its last unit starts a resize.
	f.view.PointerPress(32, 1)
	require.Equal(t, drag.Resizing, f.view.Gesture().Phase)

	f.view.PointerMotion(30, 1)
	f.view.PointerRelease(30, 1)

	require.Len(t, rec.resizes, 1)
	assert.Equal(t, 0, rec.resizes[0][0])
	assert.Equal(t, 32, rec.resizes[0][1], "the only flexible column still absorbs the spare width")
	assert.Equal(t, 30, f.view.Columns().At(0).Width)
}

func TestStaleGestureColumn(t *testing.T) {
	rec := &recordedHandlers{}
	f := newFixture(t, 20, WithHandlers(rec.handlers()))
	f.paint()

	f.view.PointerPress(35, 1)
	f.view.PointerMotion(5, 1)
	require.Equal(t, drag.Dragging, f.view.Gesture().Phase)

	require.True(t, f.view.Columns().Remove("plays"))
	assert.NotPanics(t, func() { f.paint() })

	assert.NotPanics(t, func() { f.view.PointerMotion(20, 1) })
	assert.Equal(t, drag.EventNone, f.view.PointerRelease(20, 1).Kind)
	assert.Empty(t, rec.reorders)
}

func TestHeaderFocusRing(t *testing.T) {
	f := newFixture(t, 5)
	f.view.SetHasFocus(true)
	f.view.SetHeaderFocused(true)
	f.view.SetActiveColumn(1)

	f.paint()
	var rings []render.Rect
	for _, op := range f.rec.OpsOf(render.OpStroke) {
		if op.Color == f.th.Colors().SelectionStroke && op.Rect.Y == 1 {
			rings = append(rings, op.Rect)
		}
	}
	assert.Equal(t, []render.Rect{render.NewRect(33, 1, 6, 1)}, rings)
}

func TestInvalidate(t *testing.T) {
	f := newFixture(t, 5)
	f.paint()
	assert.False(t, f.view.NeedsPaint())

	f.view.Invalidate(render.NewRect(2, 3, 4, 1))
	f.view.Invalidate(render.NewRect(4, 3, 4, 1))
	f.view.Invalidate(render.NewRect(30, 10, 2, 2))
	assert.Equal(t, []render.Rect{render.NewRect(2, 3, 6, 1), render.NewRect(30, 10, 2, 2)}, f.view.Damage())
	assert.Empty(t, f.view.Damage())

	before := f.view.relayouts
	f.view.InvalidateList()
	f.paint()
	assert.Equal(t, before, f.view.relayouts, "invalidation alone never relayouts")
}
