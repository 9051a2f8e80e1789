// Package viewport translates scroll offsets and viewport geometry into the range of
// rows that must be painted, and keeps the scroll adjustments consistent with the
// content size.
package viewport

// Range is a half-open span of row indices [First, Last).
type Range struct {
	First int
	Last  int
}

// Len returns the number of rows in the range.
func (r Range) Len() int { return r.Last - r.First }

// Empty reports whether the range contains no rows.
func (r Range) Empty() bool { return r.Last <= r.First }

// Contains reports whether row lies inside the range.
func (r Range) Contains(row int) bool { return row >= r.First && row < r.Last }

// VisibleRange returns the rows intersecting a viewport of height viewportHeight
// scrolled to scrollY, for rows of uniform height rowHeight.
//
// One row beyond the rows needed to cover the viewport is always included so a
// partially scrolled trailing row never leaves a gap. A non-positive rowHeight means
// the rows have not been measured yet and yields an empty range.
func VisibleRange(scrollY, rowHeight, viewportHeight, rowCount int) Range {
	if rowHeight <= 0 || rowCount <= 0 {
		return Range{}
	}

	first := max(0, min(rowCount-1, scrollY/rowHeight))
	last := min(rowCount, first+ceilDiv(max(viewportHeight, 0), rowHeight)+1)
	return Range{First: first, Last: last}
}

// RowsInView returns the number of rows a viewport of viewportHeight can show at once,
// counting the extra partially visible row. It is the figure reported to models that
// track the visible row count.
func RowsInView(viewportHeight, rowHeight int) int {
	if rowHeight <= 0 || viewportHeight <= 0 {
		return 0
	}
	return ceilDiv(viewportHeight, rowHeight) + 1
}

// RowAt maps a content-space y coordinate to a row index, or -1.
func RowAt(y, rowHeight, rowCount int) int {
	if rowHeight <= 0 || y < 0 {
		return -1
	}
	row := y / rowHeight
	if row >= rowCount {
		return -1
	}
	return row
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
