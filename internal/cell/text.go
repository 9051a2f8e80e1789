package cell

import (
	"fmt"

	"github.com/rshade/gridview/internal/render"
)

// Align is horizontal text alignment inside a cell.
type Align uint8

// Alignments.
const (
	AlignStart Align = iota
	AlignEnd
	AlignCenter
)

// Text renders one string per row, produced by an accessor from the bound item.
type Text struct {
	accessor func(item any) string
	align    Align
	padding  int

	text string
	bold bool
}

var _ TextCell = (*Text)(nil)
var _ Measurable = (*Text)(nil)

// NewText returns a text cell. A nil accessor formats the item with %v.
func NewText(accessor func(item any) string, align Align) *Text {
	if accessor == nil {
		accessor = func(item any) string { return fmt.Sprint(item) }
	}
	return &Text{accessor: accessor, align: align, padding: 1}
}

// Bind implements Cell.
func (c *Text) Bind(item any) {
	if item == nil {
		c.text = ""
		return
	}
	c.text = c.accessor(item)
}

// SetBold implements TextCell.
func (c *Text) SetBold(bold bool) { c.bold = bold }

// Bold reports the weight set for the current row.
func (c *Text) Bold() bool { return c.bold }

// Value returns the text bound for the current row.
func (c *Text) Value() string { return c.text }

// Measure implements Measurable.
func (c *Text) Measure(ctx *CellContext) render.Size {
	return render.Size{Width: ctx.Layout.Width(c.text) + 2*c.padding, Height: ctx.Layout.LineHeight()}
}

// Render implements Paintable.
func (c *Text) Render(ctx *CellContext, width, height int) {
	drawText(ctx, c.text, c.align, c.padding, width, height, render.TextStyle{Bold: c.bold, Dim: !ctx.Opaque})
}

// drawText fits, aligns and draws a single line. Start/end alignment follows the
// context's reading direction.
func drawText(ctx *CellContext, text string, align Align, padding, width, height int, style render.TextStyle) {
	inner := width - 2*padding
	if inner <= 0 || height <= 0 || ctx.Layout == nil {
		return
	}

	fitted := ctx.Layout.Fit(text, inner)
	w := ctx.Layout.Width(fitted)

	if ctx.IsRtl {
		switch align {
		case AlignStart:
			align = AlignEnd
		case AlignEnd:
			align = AlignStart
		case AlignCenter:
		}
	}

	x := padding
	switch align {
	case AlignEnd:
		x = padding + inner - w
	case AlignCenter:
		x = padding + (inner-w)/2
	case AlignStart:
	}

	ctx.Surface.SetColor(ctx.TextColor())
	ctx.Surface.Text(x, (height-ctx.Layout.LineHeight())/2, fitted, style)
}
