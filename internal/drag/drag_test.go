package drag

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeColumns lays out fixed widths left to right and records every mutation.
type fakeColumns struct {
	ids       []string
	widths    []int
	resizable []bool
	moves     [][2]int
}

func newFakeColumns(widths ...int) *fakeColumns {
	f := &fakeColumns{widths: widths, resizable: make([]bool, len(widths))}
	for i := range widths {
		f.ids = append(f.ids, string(rune('a'+i)))
	}
	return f
}

func (f *fakeColumns) Count() int { return len(f.widths) }

func (f *fakeColumns) Span(i int) (int, int) {
	x := 0
	for k := 0; k < i; k++ {
		x += f.widths[k]
	}
	return x, f.widths[i]
}

func (f *fakeColumns) Resizable(i int) bool { return f.resizable[i] }

func (f *fakeColumns) Move(from, to int) {
	f.moves = append(f.moves, [2]int{from, to})
	id, w, r := f.ids[from], f.widths[from], f.resizable[from]
	f.ids = append(f.ids[:from], f.ids[from+1:]...)
	f.widths = append(f.widths[:from], f.widths[from+1:]...)
	f.resizable = append(f.resizable[:from], f.resizable[from+1:]...)
	f.ids = append(f.ids[:to], append([]string{id}, f.ids[to:]...)...)
	f.widths = append(f.widths[:to], append([]int{w}, f.widths[to:]...)...)
	f.resizable = append(f.resizable[:to], append([]bool{r}, f.resizable[to:]...)...)
}

func (f *fakeColumns) Resize(i, width int) { f.widths[i] = max(1, width) }

func TestController_ClickBelowThreshold(t *testing.T) {
	cols := newFakeColumns(10, 10, 10, 10)
	c := NewController(3, zerolog.Nop())

	c.Press(cols, 2, 25, true)
	require.Equal(t, Pressed, c.Phase())

	c.Motion(cols, 27)
	c.Motion(cols, 22)
	assert.Equal(t, Pressed, c.Phase(), "movement within the threshold stays a press")

	ev := c.Release(cols)
	assert.Equal(t, Event{Kind: EventClick, Column: 2, From: 2}, ev)
	assert.Equal(t, Idle, c.Phase())
	assert.Empty(t, cols.moves)
}

func TestController_DragReordersOnce(t *testing.T) {
	cols := newFakeColumns(10, 10, 10, 10)
	c := NewController(3, zerolog.Nop())

	c.Press(cols, 2, 25, true)
	c.Motion(cols, 20)
	require.Equal(t, Dragging, c.Phase())
	assert.Equal(t, 15, c.State().X)
	assert.Equal(t, 2, c.State().Column, "not yet past the neighbor's midpoint")

	c.Motion(cols, 14)
	assert.Equal(t, 1, c.State().Column)
	assert.Equal(t, []string{"a", "c", "b", "d"}, cols.ids)

	c.Motion(cols, 2)
	assert.Equal(t, 0, c.State().Column)
	assert.Equal(t, []string{"c", "a", "b", "d"}, cols.ids)

	ev := c.Release(cols)
	assert.Equal(t, Event{Kind: EventReorder, Column: 0, From: 2}, ev)
	assert.Equal(t, Idle, c.Phase())

	assert.Equal(t, Event{}, c.Release(cols), "a second release reports nothing")
}

func TestController_DragRightAndClamp(t *testing.T) {
	cols := newFakeColumns(10, 10, 10)
	c := NewController(1, zerolog.Nop())

	c.Press(cols, 0, 5, true)
	c.Motion(cols, 500)

	st := c.State()
	assert.Equal(t, Dragging, st.Phase)
	assert.Equal(t, 2, st.Column)
	assert.Equal(t, 20, st.X, "drag position is clamped to the content width")
	assert.Equal(t, []string{"b", "c", "a"}, cols.ids)
}

func TestController_NoReorderWhenDisabled(t *testing.T) {
	cols := newFakeColumns(10, 10)
	c := NewController(1, zerolog.Nop())

	c.Press(cols, 1, 15, false)
	c.Motion(cols, 0)
	assert.Equal(t, Pressed, c.Phase())
	assert.Equal(t, EventClick, c.Release(cols).Kind)
}

func TestController_Resize(t *testing.T) {
	cols := newFakeColumns(10, 10)
	cols.resizable[0] = true
	c := NewController(2, zerolog.Nop())

	c.Press(cols, 0, 9, true)
	require.Equal(t, Resizing, c.Phase())

	c.Motion(cols, 14)
	assert.Equal(t, 15, cols.widths[0])

	ev := c.Release(cols)
	assert.Equal(t, Event{Kind: EventResize, Column: 0, From: 0, Width: 15}, ev)
}

func TestController_StaleColumn(t *testing.T) {
	cols := newFakeColumns(10, 10, 10)
	c := NewController(1, zerolog.Nop())

	c.Press(cols, 2, 25, true)
	cols.widths = cols.widths[:1]
	cols.ids = cols.ids[:1]

	assert.NotPanics(t, func() { c.Motion(cols, 0) })
	assert.Equal(t, Idle, c.Phase())
	assert.Equal(t, Event{}, c.Release(cols))

	c.Press(cols, 7, 0, true)
	assert.Equal(t, Idle, c.Phase(), "pressing outside the set is ignored")
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "dragging", Dragging.String())
	assert.Equal(t, "phase(9)", Phase(9).String())
	assert.Equal(t, DefaultThreshold, NewController(0, zerolog.Nop()).Threshold())
}
