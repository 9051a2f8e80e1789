package cell

import "github.com/mattn/go-runewidth"

// TextLayout measures and fits text for cell-based surfaces. It stands in for a font
// handle: the view recreates it on style changes and disposes the old one.
type TextLayout struct {
	cond     *runewidth.Condition
	disposed bool
}

// NewTextLayout returns a layout. eastAsian treats ambiguous-width runes as wide.
func NewTextLayout(eastAsian bool) *TextLayout {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = eastAsian
	return &TextLayout{cond: cond}
}

// Width returns the display width of s in cells.
func (l *TextLayout) Width(s string) int {
	return l.cond.StringWidth(s)
}

// Fit truncates s to width cells, marking truncation with an ellipsis.
func (l *TextLayout) Fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if l.cond.StringWidth(s) <= width {
		return s
	}
	return l.cond.Truncate(s, width, "…")
}

// LineHeight is the height of one line of text.
func (l *TextLayout) LineHeight() int { return 1 }

// Dispose marks the layout unusable.
func (l *TextLayout) Dispose() { l.disposed = true }

// Disposed reports whether Dispose was called.
func (l *TextLayout) Disposed() bool { return l.disposed }
