package view

import (
	"github.com/rs/zerolog"

	"github.com/rshade/gridview/internal/cell"
	"github.com/rshade/gridview/internal/column"
	"github.com/rshade/gridview/internal/drag"
	"github.com/rshade/gridview/internal/logging"
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/theme"
	"github.com/rshade/gridview/internal/viewport"
)

// ListView renders a Model through a column Set. All methods must be called from one
// goroutine; the view is neither locked nor reentrant.
type ListView[T any] struct {
	logger   zerolog.Logger
	opts     Options
	handlers Handlers

	model     Model[T]
	selection Selection
	columns   *column.Set

	emphasized func(T) bool
	opaque     func(T) bool
	rowHeight  func() int

	th       theme.Theme
	cellCtx  *cell.CellContext
	realized bool
	rtl      bool

	// Allocation and the rectangles derived from it by MoveResize.
	alloc         render.Rect
	headerAlloc   render.Rect
	listAlloc     render.Rect
	headerHitArea render.Rect
	listHitArea   render.Rect

	headerHeight int
	scroll       viewport.State
	cache        []column.Cached
	cacheVersion uint64

	measurePending bool
	layoutDirty    bool
	relayouts      int
	rowsInView     int

	gesture *drag.Controller

	hasFocus         bool
	headerFocused    bool
	activeColumn     int
	sortColumn       *column.Column
	reorderTargetRow int

	damage []render.Rect
	frame  Frame
}

// New returns a view over cols. The view paints nothing until it has a theme that has
// received a style.
func New[T any](cols *column.Set, opts ...Option) *ListView[T] {
	cfg := config{opts: DefaultOptions(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cols == nil {
		cols = column.NewSet()
	}

	logger := logging.ComponentLogger(cfg.logger, "view")
	return &ListView[T]{
		logger:           logger,
		opts:             cfg.opts,
		handlers:         cfg.handlers,
		columns:          cols,
		gesture:          drag.NewController(cfg.opts.DragThreshold, logging.ComponentLogger(cfg.logger, "drag")),
		activeColumn:     -1,
		reorderTargetRow: -1,
		rowsInView:       -1,
		measurePending:   true,
		layoutDirty:      true,
		frame:            Frame{CursorRow: -1},
	}
}

// Columns returns the column set.
func (v *ListView[T]) Columns() *column.Set { return v.columns }

// Options returns the current options.
func (v *ListView[T]) Options() Options { return v.opts }

// Model returns the current model, possibly nil.
func (v *ListView[T]) Model() Model[T] { return v.model }

// SetModel replaces the model and schedules a relayout.
func (v *ListView[T]) SetModel(m Model[T]) {
	v.model = m
	v.rowsInView = -1
	v.RequestRelayout()
}

// SetSelection sets the selection the view reads each frame.
func (v *ListView[T]) SetSelection(s Selection) {
	v.selection = s
	v.InvalidateList()
}

// SetEmphasized installs the row predicate that renders text cells bold.
func (v *ListView[T]) SetEmphasized(fn func(T) bool) {
	v.emphasized = fn
	v.InvalidateList()
}

// SetOpaque installs the row predicate that decides whether a row renders at full
// strength; rows reported as not opaque are drawn dimmed.
func (v *ListView[T]) SetOpaque(fn func(T) bool) {
	v.opaque = fn
	v.InvalidateList()
}

// SetRowHeightFunc overrides row measurement. A nil fn restores measuring the cells.
func (v *ListView[T]) SetRowHeightFunc(fn func() int) {
	v.rowHeight = fn
	v.InvalidateMeasure()
}

// SetRulesHint toggles odd row striping.
func (v *ListView[T]) SetRulesHint(on bool) {
	v.opts.RulesHint = on
	v.InvalidateList()
}

// SetHeaderVisible shows or hides the column header.
func (v *ListView[T]) SetHeaderVisible(on bool) {
	v.opts.HeaderVisible = on
	v.InvalidateMeasure()
}

// SetReorderable toggles column dragging and the row reorder line.
func (v *ListView[T]) SetReorderable(on bool) {
	v.opts.Reorderable = on
	if !on {
		v.gesture.Cancel()
	}
	v.InvalidateAll()
}

// SetRenderNullModel decides whether chrome is painted without a model.
func (v *ListView[T]) SetRenderNullModel(on bool) {
	v.opts.RenderNullModel = on
	v.InvalidateAll()
}

// SetRtl switches the reading direction.
func (v *ListView[T]) SetRtl(rtl bool) {
	v.rtl = rtl
	if v.cellCtx != nil {
		v.cellCtx.IsRtl = rtl
	}
	v.InvalidateAll()
}

// SetHasFocus records whether the view owns keyboard focus.
func (v *ListView[T]) SetHasFocus(focused bool) {
	if v.hasFocus == focused {
		return
	}
	v.hasFocus = focused
	v.InvalidateAll()
}

// HasFocus reports whether the view owns keyboard focus.
func (v *ListView[T]) HasFocus() bool { return v.hasFocus }

// SetHeaderFocused moves keyboard focus between the header and the rows.
func (v *ListView[T]) SetHeaderFocused(focused bool) {
	if v.headerFocused == focused {
		return
	}
	v.headerFocused = focused
	v.InvalidateAll()
}

// HeaderFocused reports whether the header holds keyboard focus.
func (v *ListView[T]) HeaderFocused() bool { return v.headerFocused }

// SetActiveColumn sets the header column that shows the focus ring.
func (v *ListView[T]) SetActiveColumn(i int) {
	v.activeColumn = i
	v.InvalidateHeader()
}

// ActiveColumn returns the header column that shows the focus ring, or -1.
func (v *ListView[T]) ActiveColumn() int { return v.activeColumn }

// SetReorderTarget marks the row a reorder line is drawn above; -1 clears it.
func (v *ListView[T]) SetReorderTarget(row int) {
	v.reorderTargetRow = row
	v.InvalidateList()
}

// SortColumn returns the column the model is sorted by, or nil.
func (v *ListView[T]) SortColumn() *column.Column { return v.sortColumn }

// SetSortColumn makes c the sort column with direction dir, clearing the others.
func (v *ListView[T]) SetSortColumn(c *column.Column, dir theme.SortType) {
	for _, other := range v.columns.Columns() {
		if other != c {
			other.Sort = theme.SortNone
		}
	}
	if c != nil {
		c.Sort = dir
	}
	v.sortColumn = c
	v.columns.Touch()
	v.InvalidateAll()
}

// Gesture returns the state of the current header gesture.
func (v *ListView[T]) Gesture() drag.State { return v.gesture.State() }

// Frame describes what the last paint pass drew.
func (v *ListView[T]) Frame() Frame { return v.frame }

// Cache returns the current column geometry.
func (v *ListView[T]) Cache() []column.Cached { return v.cache }

// Scroll returns the scroll state.
func (v *ListView[T]) Scroll() viewport.State { return v.scroll }

// Allocation returns the rectangle the view was last given.
func (v *ListView[T]) Allocation() render.Rect { return v.alloc }

// ListArea returns the rectangle rows are painted in.
func (v *ListView[T]) ListArea() render.Rect { return v.listAlloc }

// HeaderArea returns the rectangle the header is painted in.
func (v *ListView[T]) HeaderArea() render.Rect { return v.headerAlloc }

func (v *ListView[T]) count() int {
	if v.model == nil {
		return 0
	}
	return v.model.Count()
}
