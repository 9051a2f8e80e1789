package view

import (
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/viewport"
)

// Band is one painted selection highlight covering the rows [First, Last].
type Band struct {
	First   int
	Last    int
	Rect    render.Rect
	Corners render.Corners
}

// Frame summarizes the last paint pass.
type Frame struct {
	// Painted is false when the pass was skipped entirely.
	Painted bool
	Range   viewport.Range
	Bands   []Band
	// CursorRow is the row that received a focus cursor, or -1.
	CursorRow int
	// CursorInside is true when the cursor was drawn as the overlay inside a band.
	CursorInside bool
}
