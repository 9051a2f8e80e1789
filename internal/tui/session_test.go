package tui

import (
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/gridview/internal/cell"
	"github.com/rshade/gridview/internal/column"
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/selection"
	"github.com/rshade/gridview/internal/theme"
	"github.com/rshade/gridview/internal/view"
)

type song struct {
	title string
	plays int
}

func songs(n int) view.SliceModel[song] {
	out := make(view.SliceModel[song], n)
	for i := range out {
		out[i] = song{title: fmt.Sprintf("song %03d", i), plays: i}
	}
	return out
}

func songColumns() *column.Set {
	return column.NewSet(
		column.New("title", "Title", cell.NewText(func(it any) string { return it.(song).title }, cell.AlignStart)),
		column.New("plays", "Plays", cell.NewText(func(it any) string { return fmt.Sprint(it.(song).plays) }, cell.AlignEnd),
			column.Fixed(6), column.Sortable()),
	)
}

// newSession builds a session on a 40x15 terminal: the view takes (0,0,40,14), its
// header is (1,1,38,1) and its rows are (1,2,38,11), one row per line.
func newSession(t *testing.T, rows int) *Session[song] {
	t.Helper()

	v := view.New[song](songColumns(), view.WithLogger(zerolog.Nop()))
	v.SetTheme(theme.NewFlat(1))
	v.SetModel(songs(rows))

	s := NewSession(v, selection.New(), theme.DefaultStyle(), zerolog.Nop())
	s.Resize(40, 15)

	require.Equal(t, render.NewRect(0, 0, 40, 14), v.Allocation())
	require.Equal(t, render.NewRect(1, 2, 38, 11), v.ListArea())
	require.Equal(t, 1, v.RowHeight())
	return s
}

func TestSession_Move(t *testing.T) {
	s := newSession(t, 100)
	sel := s.Selection()

	s.Move(1, false)
	assert.Equal(t, 0, sel.FocusedIndex(), "first move focuses the first row")
	assert.Equal(t, []int{0}, sel.Indices())

	s.Move(1, false)
	assert.Equal(t, 1, sel.FocusedIndex())
	assert.Equal(t, []int{1}, sel.Indices())

	s.Move(-5, false)
	assert.Equal(t, 0, sel.FocusedIndex())

	s.End(false)
	assert.Equal(t, 99, sel.FocusedIndex())
	assert.Equal(t, 89, s.View().Scroll().Vertical.Value, "last row scrolled into view")

	s.Page(-1, false)
	assert.Equal(t, 88, sel.FocusedIndex())

	s.Home(false)
	assert.Equal(t, 0, sel.FocusedIndex())
	assert.Equal(t, 0, s.View().Scroll().Vertical.Value)
}

func TestSession_MoveFromNoFocusUpwards(t *testing.T) {
	s := newSession(t, 10)
	s.Move(-1, false)
	assert.Equal(t, 9, s.Selection().FocusedIndex())
}

func TestSession_ExtendSelection(t *testing.T) {
	s := newSession(t, 100)
	sel := s.Selection()

	s.FocusRow(2, false)
	s.Move(1, true)
	s.Move(1, true)
	assert.Equal(t, []int{2, 3, 4}, sel.Indices())
	assert.Equal(t, 4, sel.FocusedIndex())

	s.Move(-3, true)
	assert.Equal(t, []int{1, 2}, sel.Indices(), "range is re-anchored at the first row")
	assert.Equal(t, 1, sel.FocusedIndex())
}

func TestSession_ToggleAndSelectAll(t *testing.T) {
	s := newSession(t, 20)
	sel := s.Selection()

	s.FocusRow(5, false)
	s.ToggleFocused()
	assert.Zero(t, sel.Count())
	s.ToggleFocused()
	assert.Equal(t, 1, sel.Count())

	s.SelectAll()
	assert.Equal(t, 20, sel.Count())

	s.ClearSelection()
	assert.Zero(t, sel.Count())
	assert.Equal(t, 5, sel.FocusedIndex(), "clearing keeps the focus")
}

func TestSession_EmptyModel(t *testing.T) {
	s := newSession(t, 0)

	s.Move(1, false)
	s.End(false)
	s.ToggleFocused()
	assert.Equal(t, selection.NoFocus, s.Selection().FocusedIndex())

	s.Paint(render.NewRecorder())
	assert.Equal(t, "no rows", s.StatusText())
}

func TestSession_HeaderFocusAndSort(t *testing.T) {
	s := newSession(t, 30)
	v := s.View()

	s.ToggleHeaderFocus()
	require.True(t, v.HeaderFocused())
	assert.Equal(t, 0, v.ActiveColumn())

	s.MoveActiveColumn(1)
	assert.Equal(t, 1, v.ActiveColumn())
	s.MoveActiveColumn(5)
	assert.Equal(t, 1, v.ActiveColumn(), "clamped to the last column")

	s.SortActive()
	require.NotNil(t, v.SortColumn())
	assert.Equal(t, "plays", v.SortColumn().ID)
	assert.Equal(t, theme.SortAscending, v.SortColumn().Sort)

	s.Paint(render.NewRecorder())
	assert.Contains(t, s.StatusText(), "sort: Plays ▲")

	s.SortActive()
	assert.Contains(t, s.StatusText(), "sort: Plays ▼")

	s.Move(1, false)
	assert.False(t, v.HeaderFocused(), "moving the row focus leaves the header")
}

func TestSession_SortIgnoresUnsortableColumn(t *testing.T) {
	s := newSession(t, 30)
	s.ToggleHeaderFocus()
	s.SortActive()
	assert.Nil(t, s.View().SortColumn())
}

func TestSession_MoveColumn(t *testing.T) {
	s := newSession(t, 10)
	v := s.View()

	s.ToggleHeaderFocus()
	s.MoveColumn(-1)
	assert.Equal(t, "title", v.Columns().At(0).ID, "no column left of the first")

	s.MoveColumn(1)
	assert.Equal(t, "plays", v.Columns().At(0).ID)
	assert.Equal(t, "title", v.Columns().At(1).ID)
	assert.Equal(t, 1, v.ActiveColumn())
}

func TestSession_PressFocusesRow(t *testing.T) {
	s := newSession(t, 50)

	s.Press(5, 4, false)
	assert.Equal(t, 2, s.Selection().FocusedIndex())
	s.Release(5, 4)

	s.Press(5, 7, true)
	assert.Equal(t, []int{2, 3, 4, 5}, s.Selection().Indices())
	s.Release(5, 7)

	s.Press(5, 1, false)
	assert.True(t, s.View().HeaderFocused())
	s.Release(5, 1)
}

func TestSession_Wheel(t *testing.T) {
	s := newSession(t, 100)
	s.Wheel(1)
	assert.Equal(t, 3, s.View().Scroll().Vertical.Value)
	s.Wheel(-5)
	assert.Equal(t, 0, s.View().Scroll().Vertical.Value)
}

func TestSession_StatusText(t *testing.T) {
	s := newSession(t, 1234)
	s.Selection().SelectRange(0, 1099)

	s.Paint(render.NewRecorder())
	assert.Equal(t, "rows 1-12 of 1,234 │ 1,100 selected", s.StatusText())
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, formatCount(tt.in))
		})
	}
}

func TestSession_FindWraps(t *testing.T) {
	s := newSession(t, 20)
	isTen := func(x song) bool { return x.plays%10 == 0 }

	require.True(t, s.Find(isTen))
	assert.Equal(t, 0, s.Selection().FocusedIndex())
	require.True(t, s.Find(isTen))
	assert.Equal(t, 10, s.Selection().FocusedIndex())
	require.True(t, s.Find(isTen))
	assert.Equal(t, 0, s.Selection().FocusedIndex())

	assert.False(t, s.Find(func(song) bool { return false }))
	assert.Equal(t, 0, s.Selection().FocusedIndex())
}
