package column

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/gridview/internal/cell"
	"github.com/rshade/gridview/internal/theme"
)

func ids(s *Set) []string {
	out := make([]string, 0, s.Len())
	for _, c := range s.Columns() {
		out = append(out, c.ID)
	}
	return out
}

func TestSet_Move(t *testing.T) {
	tests := []struct {
		name     string
		from, to int
		want     []string
		moved    bool
	}{
		{name: "forward", from: 0, to: 2, want: []string{"b", "c", "a", "d"}, moved: true},
		{name: "backward", from: 3, to: 1, want: []string{"a", "d", "b", "c"}, moved: true},
		{name: "same slot", from: 1, to: 1, want: []string{"a", "b", "c", "d"}},
		{name: "target clamped", from: 0, to: 99, want: []string{"b", "c", "d", "a"}, moved: true},
		{name: "source out of range", from: 7, to: 0, want: []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet(&Column{ID: "a"}, &Column{ID: "b"}, &Column{ID: "c"}, &Column{ID: "d"})
			before := s.Version()

			assert.Equal(t, tt.moved, s.Move(tt.from, tt.to))
			assert.Equal(t, tt.want, ids(s))
			assert.Equal(t, tt.moved, s.Version() != before)
		})
	}
}

func TestSet_AddRemoveSetWidth(t *testing.T) {
	s := NewSet()
	s.Add(New("title", "Title", cell.NewText(nil, cell.AlignStart), WithBounds(4, 40)))
	s.Add(New("len", "Length", cell.NewText(nil, cell.AlignEnd), Fixed(6)))

	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 1, s.IndexOf("len"))
	assert.Nil(t, s.At(5))

	v := s.Version()
	assert.True(t, s.SetWidth(0, 100))
	assert.Equal(t, 40, s.At(0).Width, "requested width clamps to max")
	assert.Greater(t, s.Version(), v)
	assert.False(t, s.SetWidth(0, 40), "unchanged width is not a mutation")

	assert.True(t, s.Remove("title"))
	assert.False(t, s.Remove("title"))
	assert.Equal(t, []string{"len"}, ids(s))
}

func TestColumn_HeaderFollowsSort(t *testing.T) {
	c := New("t", "Title", nil, Sortable())
	assert.True(t, c.Sortable)
	assert.Equal(t, theme.SortNone, c.SortType())

	c.Sort = theme.SortAscending
	h, ok := c.HeaderCell.(*cell.Header)
	assert.True(t, ok)
	assert.Equal(t, "Title", h.Title())
	assert.Equal(t, theme.SortAscending, c.SortType())
	assert.False(t, New("f", "F", nil, Fixed(3)).Resizable())
	assert.True(t, c.Resizable())
}
