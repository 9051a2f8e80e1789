package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/rshade/gridview/internal/drag"
	"github.com/rshade/gridview/internal/theme"
)

// Status line colors.
//
//nolint:gochecknoglobals // Lipgloss color constants are not compile-time constants.
var (
	ColorStatusBg = lipgloss.Color("236")
	ColorValue    = lipgloss.Color("252")
	ColorAccent   = lipgloss.Color("75")
)

const statusSeparator = " │ "

//nolint:gochecknoglobals // Shared number printer for status counts.
var countPrinter = message.NewPrinter(language.English)

// formatCount renders n with thousands separators.
func formatCount(n int) string {
	return countPrinter.Sprintf("%d", n)
}

// StatusText describes the last painted frame: visible rows, selection size, sort and
// any header gesture.
func (s *Session[T]) StatusText() string {
	n := s.count()
	frame := s.view.Frame()

	parts := make([]string, 0, 4)
	switch {
	case n == 0:
		parts = append(parts, "no rows")
	case frame.Range.Empty():
		parts = append(parts, formatCount(n)+" rows")
	default:
		parts = append(parts, "rows "+formatCount(frame.Range.First+1)+"-"+
			formatCount(frame.Range.Last)+" of "+formatCount(n))
	}

	if c := s.sel.Count(); c > 0 {
		parts = append(parts, formatCount(c)+" selected")
	}

	if c := s.view.SortColumn(); c != nil && c.Sort != theme.SortNone {
		arrow := "▲"
		if c.Sort == theme.SortDescending {
			arrow = "▼"
		}
		parts = append(parts, "sort: "+c.Title()+" "+arrow)
	}

	if g := s.view.Gesture(); g.Phase == drag.Dragging || g.Phase == drag.Resizing {
		parts = append(parts, g.Phase.String())
	}

	return strings.Join(parts, statusSeparator)
}

// StatusLine renders StatusText as a full-width styled line.
func (s *Session[T]) StatusLine() string {
	style := lipgloss.NewStyle().
		Background(ColorStatusBg).
		Foreground(ColorValue).
		Width(max(s.width, 0))
	if s.view.HeaderFocused() {
		style = style.Foreground(ColorAccent)
	}
	return style.Render(s.StatusText())
}
