// Package selection holds the set of selected row indices and the focused row.
//
// Indices are stored as sorted, disjoint, half-open runs so that selecting every row of
// a very large model costs one run instead of one entry per row.
package selection

import (
	"math"
	"sort"
)

// NoFocus is the focused index when no row has focus.
const NoFocus = -1

type span struct {
	lo, hi int // [lo, hi)
}

// Selection is a set of unique row indices plus one focused index, which may or may
// not be a member of the set. The zero value is an empty selection with no focus.
type Selection struct {
	spans    []span
	focused  int
	focusSet bool
}

// New returns an empty selection with no focused row.
func New() *Selection {
	return &Selection{}
}

// Count returns the number of selected rows.
func (s *Selection) Count() int {
	n := 0
	for _, sp := range s.spans {
		n += sp.hi - sp.lo
	}
	return n
}

// Contains reports whether row is selected.
func (s *Selection) Contains(row int) bool {
	i := s.search(row)
	return i < len(s.spans) && s.spans[i].lo <= row
}

// search returns the index of the first span whose end lies beyond row.
func (s *Selection) search(row int) int {
	return sort.Search(len(s.spans), func(i int) bool { return s.spans[i].hi > row })
}

// Select adds row to the set.
func (s *Selection) Select(row int) { s.SelectRange(row, row) }

// SelectRange adds every row in the inclusive range [from, to]. The bounds may be given
// in either order; negative rows are ignored.
func (s *Selection) SelectRange(from, to int) {
	if from > to {
		from, to = to, from
	}
	from = max(from, 0)
	if to < from {
		return
	}
	lo, hi := from, to+1

	// Spans touching or overlapping [lo, hi) merge into one.
	i := sort.Search(len(s.spans), func(i int) bool { return s.spans[i].hi >= lo })
	j := i
	for j < len(s.spans) && s.spans[j].lo <= hi {
		lo = min(lo, s.spans[j].lo)
		hi = max(hi, s.spans[j].hi)
		j++
	}

	merged := make([]span, 0, len(s.spans)-(j-i)+1)
	merged = append(merged, s.spans[:i]...)
	merged = append(merged, span{lo, hi})
	merged = append(merged, s.spans[j:]...)
	s.spans = merged
}

// Unselect removes row from the set.
func (s *Selection) Unselect(row int) { s.UnselectRange(row, row) }

// UnselectRange removes every row in the inclusive range [from, to].
func (s *Selection) UnselectRange(from, to int) {
	if from > to {
		from, to = to, from
	}
	lo, hi := from, to+1

	out := make([]span, 0, len(s.spans)+1)
	for _, sp := range s.spans {
		if sp.hi <= lo || sp.lo >= hi {
			out = append(out, sp)
			continue
		}
		if sp.lo < lo {
			out = append(out, span{sp.lo, lo})
		}
		if sp.hi > hi {
			out = append(out, span{hi, sp.hi})
		}
	}
	s.spans = out
}

// Toggle flips the membership of row and reports whether it is now selected.
func (s *Selection) Toggle(row int) bool {
	if s.Contains(row) {
		s.Unselect(row)
		return false
	}
	s.Select(row)
	return true
}

// SelectAll selects rows [0, count).
func (s *Selection) SelectAll(count int) {
	s.spans = nil
	if count > 0 {
		s.spans = []span{{0, count}}
	}
}

// Clear empties the set. Focus is kept.
func (s *Selection) Clear() { s.spans = nil }

// FocusedIndex returns the focused row or NoFocus.
func (s *Selection) FocusedIndex() int {
	if !s.focusSet {
		return NoFocus
	}
	return s.focused
}

// SetFocused moves focus to row; a negative row clears focus.
func (s *Selection) SetFocused(row int) {
	if row < 0 {
		s.focused, s.focusSet = NoFocus, false
		return
	}
	s.focused, s.focusSet = row, true
}

// Clamp drops selected rows at or beyond count and pulls focus back inside
// [0, count), clearing it when the model is empty.
func (s *Selection) Clamp(count int) {
	if count <= 0 {
		s.spans = nil
		s.SetFocused(NoFocus)
		return
	}
	s.UnselectRange(count, math.MaxInt-1)
	if s.focusSet && s.focused >= count {
		s.focused = count - 1
	}
}

// Indices returns the selected rows in ascending order.
func (s *Selection) Indices() []int {
	out := make([]int, 0, s.Count())
	for _, sp := range s.spans {
		for r := sp.lo; r < sp.hi; r++ {
			out = append(out, r)
		}
	}
	return out
}

// Runs returns the selected rows as inclusive [first, last] pairs.
func (s *Selection) Runs() [][2]int {
	out := make([][2]int, len(s.spans))
	for i, sp := range s.spans {
		out[i] = [2]int{sp.lo, sp.hi - 1}
	}
	return out
}
