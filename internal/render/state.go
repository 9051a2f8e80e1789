package render

// GState is the portion of surface state covered by Save/Restore.
type GState struct {
	Clip      Rect
	Clipped   bool
	DX        int
	DY        int
	Color     Color
	LineWidth float64
}

// StateStack implements the bookkeeping half of Surface (save/restore, clip and
// translation) so backends only implement pixel output. Embed it by value.
type StateStack struct {
	cur   GState
	saved []GState
}

// NewStateStack returns a stack with an unclipped, untranslated state.
func NewStateStack() StateStack {
	return StateStack{cur: GState{LineWidth: 1, Color: Color{A: 1}}}
}

// State returns the current state.
func (s *StateStack) State() GState { return s.cur }

// Depth returns the number of outstanding Save calls.
func (s *StateStack) Depth() int { return len(s.saved) }

// Save implements Surface.
func (s *StateStack) Save() {
	s.saved = append(s.saved, s.cur)
}

// Restore implements Surface. An unmatched Restore is ignored.
func (s *StateStack) Restore() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

// Clip implements Surface. r is in user space.
func (s *StateStack) Clip(r Rect) {
	dev := r.Offset(s.cur.DX, s.cur.DY)
	if s.cur.Clipped {
		dev = s.cur.Clip.Intersect(dev)
	}
	s.cur.Clip = dev
	s.cur.Clipped = true
}

// ResetClip implements Surface.
func (s *StateStack) ResetClip() {
	s.cur.Clip = Rect{}
	s.cur.Clipped = false
}

// Translate implements Surface.
func (s *StateStack) Translate(dx, dy int) {
	s.cur.DX += dx
	s.cur.DY += dy
}

// SetColor implements Surface.
func (s *StateStack) SetColor(c Color) { s.cur.Color = c }

// SetLineWidth implements Surface.
func (s *StateStack) SetLineWidth(w float64) { s.cur.LineWidth = w }

// ToDevice maps a user-space rectangle to device space and clips it. The boolean is
// false when nothing remains visible.
func (s *StateStack) ToDevice(r Rect) (Rect, bool) {
	dev := r.Offset(s.cur.DX, s.cur.DY)
	if s.cur.Clipped {
		dev = s.cur.Clip.Intersect(dev)
	}
	return dev, !dev.IsEmpty()
}

// PointVisible maps a user-space point to device space and reports whether it lies
// inside the clip.
func (s *StateStack) PointVisible(x, y int) (int, int, bool) {
	dx, dy := x+s.cur.DX, y+s.cur.DY
	if s.cur.Clipped && !s.cur.Clip.Contains(dx, dy) {
		return dx, dy, false
	}
	return dx, dy, true
}
