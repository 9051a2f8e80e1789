package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/gridview/internal/surface"
)

// Model is the Bubble Tea model for a terminal list. It paints the session's view into
// a cell grid and renders the grid followed by a status line.
type Model[T any] struct {
	session *Session[T]
	keys    KeyMap
	grid    *surface.Grid

	// find is the prompt opened by the Find binding; matcher decides which rows a
	// query hits. Find is disabled while matcher is nil.
	find    textinput.Model
	finding bool
	matcher func(item T, query string) bool

	// pressed is true while the primary button is held.
	pressed bool
	// ready is set by the first WindowSizeMsg.
	ready bool
}

// NewModel wraps session in a Bubble Tea model.
func NewModel[T any](session *Session[T], keys KeyMap) *Model[T] {
	style := session.style
	return &Model[T]{
		session: session,
		keys:    keys,
		grid:    surface.NewGrid(0, 0, style.EntryForeground, style.EntryBackground),
		find:    newFindInput(),
	}
}

const findCharLimit = 64

func newFindInput() textinput.Model {
	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "find"
	ti.CharLimit = findCharLimit
	return ti
}

// SetMatcher enables the find prompt. match reports whether item satisfies query.
func (m *Model[T]) SetMatcher(match func(item T, query string) bool) {
	m.matcher = match
}

// Finding reports whether the find prompt is open.
func (m *Model[T]) Finding() bool { return m.finding }

// Session returns the hosted session.
func (m *Model[T]) Session() *Session[T] { return m.session }

// Init initializes the model (required for tea.Model interface).
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update handles keyboard, mouse and resize messages.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.finding {
			return m.handleFindInput(msg)
		}
		return m.handleKeyMsg(msg)
	case tea.MouseMsg:
		m.handleMouseMsg(msg)
		return m, nil
	case tea.WindowSizeMsg:
		m.session.Resize(msg.Width, msg.Height)
		w, h := m.session.view.Allocation().Width, m.session.view.Allocation().Height
		m.grid.Resize(w, h)
		m.ready = true
		return m, nil
	}

	return m, nil
}

// handleKeyMsg processes keyboard input. Up/down and friends act on the rows; left and
// right move the header focus ring when the header has focus and scroll otherwise.
//
//nolint:gocognit,cyclop // Key handling inherently requires multiple branches for different navigation keys.
func (m *Model[T]) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.session
	header := s.view.HeaderFocused()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		s.Move(-1, false)
	case key.Matches(msg, m.keys.Down):
		s.Move(1, false)
	case key.Matches(msg, m.keys.ExtendUp):
		s.Move(-1, true)
	case key.Matches(msg, m.keys.ExtendDown):
		s.Move(1, true)
	case key.Matches(msg, m.keys.PageUp):
		s.Page(-1, false)
	case key.Matches(msg, m.keys.PageDown):
		s.Page(1, false)
	case key.Matches(msg, m.keys.Home):
		s.Home(false)
	case key.Matches(msg, m.keys.End):
		s.End(false)
	case key.Matches(msg, m.keys.Toggle):
		s.ToggleFocused()
	case key.Matches(msg, m.keys.SelectAll):
		s.SelectAll()
	case key.Matches(msg, m.keys.Clear):
		s.ClearSelection()
	case key.Matches(msg, m.keys.Header):
		s.ToggleHeaderFocus()
	case key.Matches(msg, m.keys.Left):
		if header {
			s.MoveActiveColumn(-1)
		} else {
			s.ScrollColumns(-1)
		}
	case key.Matches(msg, m.keys.Right):
		if header {
			s.MoveActiveColumn(1)
		} else {
			s.ScrollColumns(1)
		}
	case key.Matches(msg, m.keys.MoveLeft):
		s.MoveColumn(-1)
	case key.Matches(msg, m.keys.MoveRight):
		s.MoveColumn(1)
	case key.Matches(msg, m.keys.ScrollLeft):
		s.ScrollColumns(-s.width / 2)
	case key.Matches(msg, m.keys.ScrollRight):
		s.ScrollColumns(s.width / 2)
	case key.Matches(msg, m.keys.Sort):
		if header {
			s.SortActive()
		}
	case key.Matches(msg, m.keys.Find):
		if m.matcher != nil {
			m.finding = true
			m.find.SetValue("")
			return m, m.find.Focus()
		}
	}

	return m, nil
}

// handleFindInput feeds keys to the find prompt. Enter jumps to the next match and
// closes the prompt; esc closes it without moving.
func (m *Model[T]) handleFindInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		if q := m.find.Value(); q != "" {
			m.session.Find(func(item T) bool { return m.matcher(item, q) })
		}
		m.closeFind()
		return m, nil
	case tea.KeyEsc, tea.KeyCtrlC:
		m.closeFind()
		return m, nil
	}

	var cmd tea.Cmd
	m.find, cmd = m.find.Update(msg)
	return m, cmd
}

func (m *Model[T]) closeFind() {
	m.finding = false
	m.find.Blur()
}

// handleMouseMsg routes the primary button to the view's pointer handlers and the
// wheel to vertical scrolling.
//
//nolint:exhaustive // Only the primary button and the wheel are handled.
func (m *Model[T]) handleMouseMsg(msg tea.MouseMsg) {
	s := m.session

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		s.Wheel(-1)
		return
	case tea.MouseButtonWheelDown:
		s.Wheel(1)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.pressed = true
		s.Press(msg.X, msg.Y, msg.Shift)
	case tea.MouseActionMotion:
		if m.pressed {
			s.Motion(msg.X, msg.Y)
		}
	case tea.MouseActionRelease:
		if m.pressed {
			m.pressed = false
			s.Release(msg.X, msg.Y)
		}
	}
}

// View paints the list and appends the status line.
func (m *Model[T]) View() string {
	if !m.ready {
		return ""
	}

	m.grid.Clear()
	m.session.Paint(m.grid)
	status := m.session.StatusLine()
	if m.finding {
		status = m.find.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, m.grid.String(), status)
}

// Plain paints the list and returns it as unstyled text without the status line.
func (m *Model[T]) Plain() string {
	m.grid.Clear()
	m.session.Paint(m.grid)
	return m.grid.Plain()
}
