package cell

import (
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/theme"
)

// Header paints a column title and, when the column is sorted, a sort arrow in the
// trailing unit.
type Header struct {
	title string
	sort  func() theme.SortType
}

var _ Paintable = (*Header)(nil)
var _ Measurable = (*Header)(nil)

// NewHeader returns a header cell. sort reports the column's current direction and may
// be nil for unsortable columns.
func NewHeader(title string, sort func() theme.SortType) *Header {
	return &Header{title: title, sort: sort}
}

// Title returns the header text.
func (h *Header) Title() string { return h.title }

// Measure implements Measurable.
func (h *Header) Measure(ctx *CellContext) render.Size {
	return render.Size{Width: ctx.Layout.Width(h.title) + 3, Height: ctx.Layout.LineHeight()}
}

// Render implements Paintable.
func (h *Header) Render(ctx *CellContext, width, height int) {
	sort := theme.SortNone
	if h.sort != nil {
		sort = h.sort()
	}

	textWidth := width
	if sort != theme.SortNone {
		textWidth--
	}
	drawText(ctx, h.title, AlignStart, 1, textWidth, height, render.TextStyle{Bold: true})

	if sort == theme.SortNone || width < 2 {
		return
	}
	arrowX := width - 2
	if ctx.IsRtl {
		arrowX = 1
	}
	ctx.Theme.DrawArrow(ctx.Surface, render.Rect{X: arrowX, Y: 0, Width: 1, Height: height}, theme.ArrowRotation(sort))
}
