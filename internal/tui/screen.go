package tui

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/surface"
)

// RunScreen drives session on an initialized tcell screen until the quit key is pressed
// or ctx is done. The caller owns the screen and finalizes it afterwards.
func RunScreen[T any](ctx context.Context, scr tcell.Screen, session *Session[T]) error {
	style := session.style
	out := surface.NewScreen(scr, style.EntryForeground, style.EntryBackground)
	scr.EnableMouse()

	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := scr.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	w, h := scr.Size()
	session.Resize(w, h)
	drawScreen(out, session)

	handler := screenHandler[T]{session: session}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if quit := handler.handle(ev); quit {
				return nil
			}
			drawScreen(out, session)
		}
	}
}

func drawScreen[T any](out *surface.Screen, session *Session[T]) {
	g := out.Begin()
	session.Paint(g)

	_, h := g.Size()
	g.Save()
	g.ResetClip()
	g.SetColor(session.style.HeaderBackground)
	g.FillRect(render.NewRect(0, h-statusHeight, session.width, statusHeight), 0, render.CornersNone)
	g.SetColor(session.style.HeaderForeground)
	g.Text(0, h-statusHeight, session.StatusText(), render.TextStyle{})
	g.Restore()

	out.Show()
}

// screenHandler maps tcell events onto a session. tcell reports button state rather
// than press and release, so transitions are derived from the previous state.
type screenHandler[T any] struct {
	session *Session[T]
	buttons tcell.ButtonMask
}

//nolint:exhaustive // Only navigation keys are bound.
func (h *screenHandler[T]) handle(ev tcell.Event) bool {
	s := h.session

	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, ht := ev.Size()
		s.Resize(w, ht)
	case *tcell.EventKey:
		extend := ev.Modifiers()&tcell.ModShift != 0
		switch ev.Key() {
		case tcell.KeyCtrlC, tcell.KeyEscape:
			return true
		case tcell.KeyUp:
			s.Move(-1, extend)
		case tcell.KeyDown:
			s.Move(1, extend)
		case tcell.KeyPgUp:
			s.Page(-1, extend)
		case tcell.KeyPgDn:
			s.Page(1, extend)
		case tcell.KeyHome:
			s.Home(extend)
		case tcell.KeyEnd:
			s.End(extend)
		case tcell.KeyTab:
			s.ToggleHeaderFocus()
		case tcell.KeyEnter:
			s.SortActive()
		case tcell.KeyLeft:
			if s.view.HeaderFocused() {
				s.MoveActiveColumn(-1)
			} else {
				s.ScrollColumns(-1)
			}
		case tcell.KeyRight:
			if s.view.HeaderFocused() {
				s.MoveActiveColumn(1)
			} else {
				s.ScrollColumns(1)
			}
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return true
			case ' ':
				s.ToggleFocused()
			case 'j':
				s.Move(1, false)
			case 'k':
				s.Move(-1, false)
			case '<':
				s.MoveColumn(-1)
			case '>':
				s.MoveColumn(1)
			}
		}
	case *tcell.EventMouse:
		x, y := ev.Position()
		buttons := ev.Buttons()
		switch {
		case buttons&tcell.WheelUp != 0:
			s.Wheel(-1)
		case buttons&tcell.WheelDown != 0:
			s.Wheel(1)
		case buttons&tcell.Button1 != 0 && h.buttons&tcell.Button1 == 0:
			s.Press(x, y, ev.Modifiers()&tcell.ModShift != 0)
		case buttons&tcell.Button1 != 0:
			s.Motion(x, y)
		case h.buttons&tcell.Button1 != 0:
			s.Release(x, y)
		}
		h.buttons = buttons &^ (tcell.WheelUp | tcell.WheelDown)
	}
	return false
}
