// Package tui hosts a ListView in a terminal. Session owns the view, its selection and
// the keyboard and pointer semantics; Model drives a Session from Bubble Tea and
// RunScreen drives one from a raw tcell screen.
package tui

import (
	"github.com/rs/zerolog"

	"github.com/rshade/gridview/internal/drag"
	"github.com/rshade/gridview/internal/logging"
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/selection"
	"github.com/rshade/gridview/internal/theme"
	"github.com/rshade/gridview/internal/view"
)

// statusHeight is the number of lines below the view reserved for the status line.
const statusHeight = 1

// wheelRows is how many rows one wheel notch scrolls.
const wheelRows = 3

// Session is the host side of one terminal list: it realizes the view, turns keys and
// pointer events into selection and focus changes, and paints frames.
type Session[T any] struct {
	view   *view.ListView[T]
	sel    *selection.Selection
	style  theme.Style
	logger zerolog.Logger

	// anchor is the fixed end of a shift-extended range, -1 when unset.
	anchor int

	width  int
	height int
}

// NewSession binds sel to v and gives the view keyboard focus. The view must already
// have a theme; it is realized with style on the first Resize.
func NewSession[T any](
	v *view.ListView[T],
	sel *selection.Selection,
	style theme.Style,
	logger zerolog.Logger,
) *Session[T] {
	v.SetSelection(sel)
	v.SetHasFocus(true)
	return &Session[T]{
		view:   v,
		sel:    sel,
		style:  style,
		logger: logging.ComponentLogger(logger, "tui"),
		anchor: -1,
	}
}

// View returns the hosted view.
func (s *Session[T]) View() *view.ListView[T] { return s.view }

// Selection returns the selection the session edits.
func (s *Session[T]) Selection() *selection.Selection { return s.sel }

// Size returns the terminal size last passed to Resize.
func (s *Session[T]) Size() (int, int) { return s.width, s.height }

// Resize hands the view the terminal area above the status line, realizing it first
// if needed.
func (s *Session[T]) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	if !s.view.Realized() {
		s.view.Realize(s.style)
	}
	s.view.MoveResize(render.NewRect(0, 0, s.width, max(s.height-statusHeight, 0)))
	s.logger.Debug().Int("width", s.width).Int("height", s.height).Msg("terminal resized")
}

// SetStyle replaces the palette.
func (s *Session[T]) SetStyle(style theme.Style) {
	s.style = style
	if s.view.Realized() {
		s.view.StyleChanged(style)
		s.view.MoveResize(s.view.Allocation())
	}
}

// Paint draws the view onto surf.
func (s *Session[T]) Paint(surf render.Surface) {
	s.view.Paint(surf, s.view.Allocation())
}

func (s *Session[T]) count() int {
	m := s.view.Model()
	if m == nil {
		return 0
	}
	return m.Count()
}

// Move shifts the focused row by delta. With extend the selection grows from the
// anchor to the new row; otherwise the new row becomes the only selected row.
func (s *Session[T]) Move(delta int, extend bool) {
	n := s.count()
	if n == 0 {
		return
	}
	cur := s.sel.FocusedIndex()
	next := 0
	switch {
	case cur < 0 && delta < 0:
		next = n - 1
	case cur >= 0:
		next = min(max(cur+delta, 0), n-1)
	}
	s.FocusRow(next, extend)
}

// Page moves the focus by one screen of rows in direction dir (+1 or -1).
func (s *Session[T]) Page(dir int, extend bool) {
	rows := max(s.view.RowsInView()-1, 1)
	s.Move(dir*rows, extend)
}

// Home focuses the first row.
func (s *Session[T]) Home(extend bool) { s.FocusRow(0, extend) }

// End focuses the last row.
func (s *Session[T]) End(extend bool) { s.FocusRow(s.count()-1, extend) }

// FocusRow focuses row and scrolls it into view.
func (s *Session[T]) FocusRow(row int, extend bool) {
	n := s.count()
	if row < 0 || row >= n {
		return
	}

	prev := s.sel.FocusedIndex()
	if extend {
		if s.anchor < 0 {
			s.anchor = max(prev, 0)
		}
		s.sel.Clear()
		s.sel.SelectRange(s.anchor, row)
	} else {
		s.sel.Clear()
		s.sel.Select(row)
		s.anchor = row
	}
	s.sel.SetFocused(row)

	s.view.SetHeaderFocused(false)
	s.view.ScrollToRow(row)
	s.view.InvalidateList()
}

// ToggleFocused flips the selection state of the focused row.
func (s *Session[T]) ToggleFocused() {
	row := s.sel.FocusedIndex()
	if row < 0 || row >= s.count() {
		return
	}
	s.sel.Toggle(row)
	s.anchor = row
	s.view.InvalidateList()
}

// SelectAll selects every row.
func (s *Session[T]) SelectAll() {
	s.sel.SelectAll(s.count())
	s.view.InvalidateList()
}

// ClearSelection unselects every row and keeps the focus.
func (s *Session[T]) ClearSelection() {
	s.sel.Clear()
	s.anchor = -1
	s.view.InvalidateList()
}

// ToggleHeaderFocus moves keyboard focus between the rows and the header. Entering the
// header puts the focus ring on the first column when none is active.
func (s *Session[T]) ToggleHeaderFocus() {
	focused := !s.view.HeaderFocused()
	if focused && !s.view.Options().HeaderVisible {
		return
	}
	s.view.SetHeaderFocused(focused)
	if focused && s.view.ActiveColumn() < 0 {
		s.view.SetActiveColumn(0)
	}
}

// MoveActiveColumn moves the header focus ring by delta columns.
func (s *Session[T]) MoveActiveColumn(delta int) {
	n := s.view.Columns().Len()
	if n == 0 {
		return
	}
	next := min(max(s.view.ActiveColumn()+delta, 0), n-1)
	s.view.SetActiveColumn(next)
}

// MoveColumn swaps the active column with its neighbor in direction delta.
func (s *Session[T]) MoveColumn(delta int) {
	if !s.view.Options().Reorderable {
		return
	}
	from := s.view.ActiveColumn()
	to := from + delta
	if from < 0 || to < 0 || to >= s.view.Columns().Len() {
		return
	}
	if s.view.Columns().Move(from, to) {
		s.view.SetActiveColumn(to)
		s.view.RequestRelayout()
	}
}

// SortActive toggles the sort of the active column.
func (s *Session[T]) SortActive() {
	if ci := s.view.ActiveColumn(); ci >= 0 {
		s.view.ToggleSort(ci)
	}
}

// ScrollColumns scrolls the grid horizontally by dx units.
func (s *Session[T]) ScrollColumns(dx int) {
	s.view.ScrollHorizontallyBy(dx)
}

// Wheel scrolls by notches; positive scrolls down.
func (s *Session[T]) Wheel(notches int) {
	s.view.ScrollBy(notches * wheelRows * max(s.view.RowHeight(), 1))
}

// Press handles a primary button press at terminal cell (x, y). A press on a row
// focuses it; extend grows the selection instead.
func (s *Session[T]) Press(x, y int, extend bool) {
	hit := s.view.PointerPress(x, y)
	if hit.Region == view.RegionList && hit.Row >= 0 {
		s.FocusRow(hit.Row, extend)
	}
}

// Motion forwards pointer motion with the button held.
func (s *Session[T]) Motion(x, y int) {
	s.view.PointerMotion(x, y)
}

// Release ends a pointer gesture and returns its outcome.
func (s *Session[T]) Release(x, y int) drag.Event {
	return s.view.PointerRelease(x, y)
}

// Find focuses the next row after the focused one for which match is true, wrapping
// past the end. It reports whether a row matched.
func (s *Session[T]) Find(match func(T) bool) bool {
	n := s.count()
	if n == 0 || match == nil {
		return false
	}
	m := s.view.Model()
	start := s.sel.FocusedIndex() + 1
	for i := range n {
		row := (start + i) % n
		if match(m.ItemAt(row)) {
			s.FocusRow(row, false)
			return true
		}
	}
	s.logger.Debug().Msg("find: no match")
	return false
}
