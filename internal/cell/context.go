package cell

import (
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/theme"
)

// State is the paint state of the cell being rendered.
type State uint8

// Paint states.
const (
	StateNormal State = iota
	StateSelected
)

// CellContext is the mutable render frame for one paint pass. The view owns it,
// rewrites its fields as it walks rows and columns, and recreates it whenever the host
// style changes. Only the current values matter; cells must not retain it.
//
//nolint:revive // CellContext reads better than Context at call sites alongside theme.Context.
type CellContext struct {
	Surface render.Surface
	Theme   theme.Theme
	Layout  *TextLayout

	// Area is the cell rectangle in view coordinates. Rendering happens with the
	// surface translated to Area's origin.
	Area render.Rect
	Clip render.Rect

	IsRtl            bool
	Opaque           bool
	TextAsForeground bool
	State            State

	ViewRowIndex    int
	ModelRowIndex   int
	ViewColumnIndex int
}

// NewCellContext returns a context bound to a theme and text layout.
func NewCellContext(th theme.Theme, layout *TextLayout) *CellContext {
	return &CellContext{Theme: th, Layout: layout, Opaque: true}
}

// Dispose releases the text layout. The context must not be used afterwards.
func (c *CellContext) Dispose() {
	if c.Layout != nil {
		c.Layout.Dispose()
		c.Layout = nil
	}
	c.Surface = nil
}

// TextColor resolves the text color for the current state.
func (c *CellContext) TextColor() render.Color {
	colors := c.Theme.Colors()
	switch {
	case c.TextAsForeground:
		return colors.HeaderText
	case c.State == StateSelected:
		return colors.SelectedText
	case !c.Opaque:
		return colors.TextMid
	default:
		return colors.Text
	}
}
