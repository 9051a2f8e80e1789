package render

// TextStyle carries per-run text attributes. The current surface color is the
// foreground.
type TextStyle struct {
	Bold      bool
	Dim       bool
	Underline bool
}

// Surface is the immediate-mode drawing context a host hands to the view for one paint
// pass. Coordinates passed to drawing calls are relative to the current translation and
// are clipped to the current clip rectangle.
type Surface interface {
	// Save pushes clip, translation, color and line width.
	Save()
	// Restore pops the state pushed by the matching Save.
	Restore()
	// Clip intersects the current clip with r.
	Clip(r Rect)
	// ResetClip removes all clipping.
	ResetClip()
	Translate(dx, dy int)
	SetColor(c Color)
	SetLineWidth(w float64)
	FillRect(r Rect, radius float64, corners Corners)
	StrokeRect(r Rect, radius float64, corners Corners)
	// Line strokes from (x1,y1) to (x2,y2) inclusive.
	Line(x1, y1, x2, y2 int)
	// Text draws a single line of text with its first cell at (x, y).
	Text(x, y int, text string, style TextStyle)
}
