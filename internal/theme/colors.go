package theme

import "github.com/rshade/gridview/internal/render"

// Colors is the derived palette cached by a theme. Paint code reads colors only from
// here, never from the host style directly.
type Colors struct {
	SelectionFill       render.Color
	SelectionStroke     render.Color
	ViewFill            render.Color
	ViewFillTransparent render.Color
	TextMid             render.Color

	Background   render.Color
	Text         render.Color
	SelectedText render.Color
	HeaderFill   render.Color
	HeaderText   render.Color
	Border       render.Color

	// SelectionFocused fills selection bands while the view owns keyboard focus.
	SelectionFocused render.Color
	// SelectionUnfocused fills bands when focus is elsewhere or on the header.
	SelectionUnfocused render.Color
	// CursorOutside outlines a focused row that is not selected.
	CursorOutside render.Color
	// CursorInside outlines the focused row inside a multi-row selection.
	CursorInside render.Color

	DragHighlight   render.Color
	DragStroke      render.Color
	DragCellFill    render.Color
	DragOverlayFill render.Color

	ReorderLine  render.Color
	SortedColumn render.Color
	RowRule      render.Color
}

// deriveColors computes the cached palette from a host style.
func deriveColors(s Style) Colors {
	viewFill := s.EntryBackground
	return Colors{
		SelectionFill:       s.ActiveBackground.Shade(0.8),
		SelectionStroke:     s.SelectedBackground,
		ViewFill:            viewFill,
		ViewFillTransparent: viewFill.WithAlpha(0),
		TextMid:             viewFill.Blend(s.EntryForeground, 0.5),

		Background:   s.Background,
		Text:         s.EntryForeground,
		SelectedText: s.SelectedForeground,
		HeaderFill:   s.HeaderBackground,
		HeaderText:   s.HeaderForeground,
		Border:       s.Border,

		SelectionFocused:   s.SelectedBackground,
		SelectionUnfocused: s.SelectedBackground.Shade(1.1),
		CursorOutside:      s.SelectedBackground.Shade(0.85),
		CursorInside:       s.SelectedForeground,

		DragHighlight:   s.Background.Shade(0.7),
		DragStroke:      viewFill.Shade(0).WithAlpha(0.3),
		DragCellFill:    viewFill.WithAlpha(0.5),
		DragOverlayFill: viewFill.WithAlpha(0.45),

		ReorderLine:  s.EntryForeground,
		SortedColumn: viewFill.Blend(s.Background.Shade(0.7), 0.5),
		RowRule:      viewFill.Blend(s.EntryForeground, 0.06),
	}
}
