package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the key bindings of a terminal list.
type KeyMap struct {
	Up          key.Binding
	Down        key.Binding
	ExtendUp    key.Binding
	ExtendDown  key.Binding
	PageUp      key.Binding
	PageDown    key.Binding
	Home        key.Binding
	End         key.Binding
	Toggle      key.Binding
	SelectAll   key.Binding
	Clear       key.Binding
	Header      key.Binding
	Left        key.Binding
	Right       key.Binding
	MoveLeft    key.Binding
	MoveRight   key.Binding
	ScrollLeft  key.Binding
	ScrollRight key.Binding
	Sort        key.Binding
	Find        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:          key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:        key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		ExtendUp:    key.NewBinding(key.WithKeys("shift+up", "K"), key.WithHelp("⇧↑", "extend up")),
		ExtendDown:  key.NewBinding(key.WithKeys("shift+down", "J"), key.WithHelp("⇧↓", "extend down")),
		PageUp:      key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
		PageDown:    key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
		Home:        key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "first row")),
		End:         key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "last row")),
		Toggle:      key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "toggle row")),
		SelectAll:   key.NewBinding(key.WithKeys("ctrl+a"), key.WithHelp("ctrl+a", "select all")),
		Clear:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),
		Header:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "header/rows")),
		Left:        key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "prev column")),
		Right:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "next column")),
		MoveLeft:    key.NewBinding(key.WithKeys("<"), key.WithHelp("<", "move column left")),
		MoveRight:   key.NewBinding(key.WithKeys(">"), key.WithHelp(">", "move column right")),
		ScrollLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("⇧←", "scroll left")),
		ScrollRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("⇧→", "scroll right")),
		Sort:        key.NewBinding(key.WithKeys("enter", "s"), key.WithHelp("enter", "sort column")),
		Find:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "find")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp lists the bindings shown in compact help.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Header, k.Sort, k.Find, k.Quit}
}
