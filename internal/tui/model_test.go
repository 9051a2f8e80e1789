package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(t *testing.T, rows int) *Model[song] {
	t.Helper()
	s := newSession(t, rows)
	m := NewModel(s, DefaultKeyMap())
	_, cmd := m.Update(tea.WindowSizeMsg{Width: 40, Height: 15})
	require.Nil(t, cmd)
	return m
}

func TestModel_ViewBeforeSize(t *testing.T) {
	s := newSession(t, 3)
	m := NewModel(s, DefaultKeyMap())
	assert.Empty(t, m.View())
}

func TestModel_View(t *testing.T) {
	m := newTestModel(t, 100)

	out := m.View()
	assert.Contains(t, out, "of 100")

	plain := m.Plain()
	lines := strings.Split(plain, "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Contains(t, lines[1], "Title")
	assert.Contains(t, lines[1], "Pla…", "the fixed six-unit column truncates its title")
	assert.Contains(t, lines[2], "song 000")
}

func TestModel_Keys(t *testing.T) {
	tests := []struct {
		name    string
		keys    []tea.KeyMsg
		focused int
		count   int
	}{
		{
			name:    "down twice",
			keys:    []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}},
			focused: 1,
			count:   1,
		},
		{
			name:    "vim keys",
			keys:    []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'j'}}, {Type: tea.KeyRunes, Runes: []rune{'j'}}, {Type: tea.KeyRunes, Runes: []rune{'k'}}},
			focused: 0,
			count:   1,
		},
		{
			name:    "end",
			keys:    []tea.KeyMsg{{Type: tea.KeyEnd}},
			focused: 99,
			count:   1,
		},
		{
			name:    "extend",
			keys:    []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyShiftDown}, {Type: tea.KeyShiftDown}},
			focused: 2,
			count:   3,
		},
		{
			name:    "toggle off",
			keys:    []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeySpace}},
			focused: 0,
			count:   0,
		},
		{
			name:    "select all",
			keys:    []tea.KeyMsg{{Type: tea.KeyCtrlA}},
			focused: -1,
			count:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestModel(t, 100)
			for _, k := range tt.keys {
				_, cmd := m.Update(k)
				assert.Nil(t, cmd)
			}
			sel := m.Session().Selection()
			assert.Equal(t, tt.focused, sel.FocusedIndex())
			assert.Equal(t, tt.count, sel.Count())
		})
	}
}

func TestModel_HeaderKeys(t *testing.T) {
	m := newTestModel(t, 10)
	v := m.Session().View()

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.True(t, v.HeaderFocused())

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, v.ActiveColumn())

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, v.SortColumn())
	assert.Equal(t, "plays", v.SortColumn().ID)

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'<'}})
	assert.Equal(t, "plays", v.Columns().At(0).ID)

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, v.HeaderFocused())
}

func TestModel_Quit(t *testing.T) {
	m := newTestModel(t, 1)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_MouseSelectsRow(t *testing.T) {
	m := newTestModel(t, 50)

	m.Update(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	assert.Equal(t, 4, m.Session().Selection().FocusedIndex())

	m.Update(tea.MouseMsg{X: 5, Y: 6, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 3, m.Session().View().Scroll().Vertical.Value)
}

func TestModel_MouseDragReordersColumns(t *testing.T) {
	m := newTestModel(t, 5)
	v := m.Session().View()

	m.Update(tea.MouseMsg{X: 3, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 36, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: 36, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	assert.Equal(t, "plays", v.Columns().At(0).ID)
	assert.Equal(t, "title", v.Columns().At(1).ID)
}

func TestModel_MotionWithoutPressIgnored(t *testing.T) {
	m := newTestModel(t, 5)
	m.Update(tea.MouseMsg{X: 36, Y: 1, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})
	assert.Equal(t, "title", m.Session().View().Columns().At(0).ID)
}

func TestModel_Find(t *testing.T) {
	m := newTestModel(t, 100)
	m.SetMatcher(func(s song, q string) bool { return strings.Contains(s.title, q) })

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.True(t, m.Finding())

	for _, r := range "042" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	assert.Contains(t, m.View(), "042")

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.False(t, m.Finding())
	assert.Equal(t, 42, m.Session().Selection().FocusedIndex())
	assert.Equal(t, 1, m.Session().Selection().Count())
}

func TestModel_FindEscape(t *testing.T) {
	m := newTestModel(t, 10)
	m.SetMatcher(func(s song, q string) bool { return strings.Contains(s.title, q) })

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	assert.False(t, m.Finding())
	assert.Equal(t, -1, m.Session().Selection().FocusedIndex())
}

func TestModel_FindDisabledWithoutMatcher(t *testing.T) {
	m := newTestModel(t, 10)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	assert.Nil(t, cmd)
	assert.False(t, m.Finding())
}
