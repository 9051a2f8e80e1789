package viewport

// Adjustment is one scroll axis: the current value, the content extent and the page
// (visible) size. Value always lies in [0, max(0, Upper-Page)].
type Adjustment struct {
	Value int
	Upper int
	Page  int
}

// MaxValue returns the largest valid scroll value.
func (a Adjustment) MaxValue() int { return max(0, a.Upper-a.Page) }

// Configure sets the content extent and page size and clamps the value. It reports
// whether the value moved.
func (a *Adjustment) Configure(upper, page int) bool {
	a.Upper = max(upper, 0)
	a.Page = max(page, 0)
	return a.Set(a.Value)
}

// Set moves the scroll value, clamped, and reports whether it changed.
func (a *Adjustment) Set(v int) bool {
	v = max(0, min(a.MaxValue(), v))
	if v == a.Value {
		return false
	}
	a.Value = v
	return true
}

// ScrollBy moves the value by delta.
func (a *Adjustment) ScrollBy(delta int) bool { return a.Set(a.Value + delta) }

// State is the scroll state of a list: both adjustments plus the uniform row height.
// It is mutated by resize and scroll events, never by painting.
type State struct {
	Vertical   Adjustment
	Horizontal Adjustment

	// RowHeight is the uniform row height; zero until measured.
	RowHeight int
}

// Update recomputes both adjustments for a list of rowCount rows and contentWidth
// units shown through a listHeight x pageWidth window.
func (s *State) Update(rowCount, contentWidth, listHeight, pageWidth int) {
	s.Vertical.Configure(rowCount*max(s.RowHeight, 0), listHeight)
	s.Horizontal.Configure(contentWidth, pageWidth)
}

// Visible returns the rows to paint for a list of rowCount rows.
func (s *State) Visible(rowCount int) Range {
	return VisibleRange(s.Vertical.Value, s.RowHeight, s.Vertical.Page, rowCount)
}

// ScrollToRow adjusts the vertical offset by the least amount that brings row fully
// into view, and reports whether the offset changed.
func (s *State) ScrollToRow(row int) bool {
	if s.RowHeight <= 0 || row < 0 {
		return false
	}
	top := row * s.RowHeight
	bottom := top + s.RowHeight

	switch {
	case top < s.Vertical.Value:
		return s.Vertical.Set(top)
	case bottom > s.Vertical.Value+s.Vertical.Page:
		return s.Vertical.Set(bottom - s.Vertical.Page)
	default:
		return false
	}
}
