package theme

import (
	"math"

	"github.com/rshade/gridview/internal/render"
)

// SortType is the direction indicated by a column header arrow.
type SortType uint8

// Sort directions.
const (
	SortNone SortType = iota
	SortAscending
	SortDescending
)

// Toggle flips between ascending and descending; SortNone becomes ascending.
func (s SortType) Toggle() SortType {
	if s == SortAscending {
		return SortDescending
	}
	return SortAscending
}

// ArrowRotation maps a sort direction to the rotation DrawArrow expects.
func ArrowRotation(s SortType) float64 {
	if s == SortDescending {
		return -math.Pi / 2
	}
	return math.Pi / 2
}

// Theme is the closed set of drawing operations the list view paints through, plus the
// cached derived colors and the ambient context stack.
type Theme interface {
	// Refresh recomputes the derived colors from a new host style. Hosts call it on
	// the realized and style-changed notifications only.
	Refresh(style Style)
	// Ready reports whether Refresh has run at least once.
	Ready() bool
	Colors() Colors

	PushContext(c Context)
	PopContext() Context
	Context() Context
	// Depth is the number of contexts on the stack, root included.
	Depth() int

	BorderWidth() int
	InnerBorderWidth() int
	TotalBorderWidth() int

	DrawFrameBackground(s render.Surface, r render.Rect, c render.Color)
	DrawFrameBorder(s render.Surface, r render.Rect)
	DrawHeaderBackground(s render.Surface, r render.Rect)
	DrawColumnHeaderFocus(s render.Surface, r render.Rect)
	DrawHeaderSeparator(s render.Surface, r render.Rect, x int)
	DrawColumnHighlight(s render.Surface, r render.Rect, c render.Color)
	DrawListBackground(s render.Surface, r render.Rect, c render.Color)
	DrawRowSelection(s render.Surface, r render.Rect, filled, stroked bool, c render.Color, corners render.Corners)
	DrawRowCursor(s render.Surface, r render.Rect, c render.Color, corners render.Corners)
	DrawRowRule(s render.Surface, r render.Rect)
	DrawArrow(s render.Surface, r render.Rect, rotation float64)
}

// DrawFrame paints the frame background followed by its border.
func DrawFrame(t Theme, s render.Surface, r render.Rect, c render.Color) {
	t.DrawFrameBackground(s, r, c)
	t.DrawFrameBorder(s, r)
}

// Base implements the stateful half of Theme: the color cache and the context stack.
// Skins embed *Base and add the drawing operations.
type Base struct {
	style     Style
	colors    Colors
	ready     bool
	refreshes int
	contexts  contextStack
}

// NewBase returns a Base whose root context uses the given corner radius.
func NewBase(radius float64) *Base {
	b := &Base{}
	root := DefaultContext()
	root.Radius = radius
	b.contexts.push(root)
	return b
}

// Refresh implements Theme.
func (b *Base) Refresh(style Style) {
	b.style = style
	b.colors = deriveColors(style)
	b.ready = true
	b.refreshes++
}

// Ready implements Theme.
func (b *Base) Ready() bool { return b.ready }

// Colors implements Theme.
func (b *Base) Colors() Colors { return b.colors }

// Style returns the style last passed to Refresh.
func (b *Base) Style() Style { return b.style }

// Refreshes counts how many times the color cache has been recomputed.
func (b *Base) Refreshes() int { return b.refreshes }

// PushContext implements Theme.
func (b *Base) PushContext(c Context) { b.contexts.push(c) }

// PopContext implements Theme. It panics when only the root context is left.
func (b *Base) PopContext() Context { return b.contexts.pop() }

// Context implements Theme.
func (b *Base) Context() Context { return b.contexts.peek() }

// Depth implements Theme.
func (b *Base) Depth() int { return b.contexts.depth() }

// BorderWidth implements Theme.
func (b *Base) BorderWidth() int { return 1 }

// InnerBorderWidth implements Theme.
func (b *Base) InnerBorderWidth() int { return 0 }

// TotalBorderWidth implements Theme.
func (b *Base) TotalBorderWidth() int { return b.BorderWidth() + b.InnerBorderWidth() }
