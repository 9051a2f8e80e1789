package column

// Set is the ordered collection of columns a view displays. Every mutation bumps
// Version so the owner can tell when its cache is stale.
type Set struct {
	columns []*Column
	version uint64
}

// NewSet returns a set holding cols in order.
func NewSet(cols ...*Column) *Set {
	return &Set{columns: append([]*Column(nil), cols...)}
}

// Len returns the number of columns.
func (s *Set) Len() int { return len(s.columns) }

// At returns the column at i, or nil when i is out of range.
func (s *Set) At(i int) *Column {
	if i < 0 || i >= len(s.columns) {
		return nil
	}
	return s.columns[i]
}

// Columns returns the columns in display order. The slice must not be modified.
func (s *Set) Columns() []*Column { return s.columns }

// Version increments on every mutation.
func (s *Set) Version() uint64 { return s.version }

// IndexOf returns the position of the column with the given id, or -1.
func (s *Set) IndexOf(id string) int {
	for i, c := range s.columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}

// Add appends a column.
func (s *Set) Add(c *Column) {
	s.columns = append(s.columns, c)
	s.version++
}

// Remove deletes the column with the given id and reports whether it existed.
func (s *Set) Remove(id string) bool {
	i := s.IndexOf(id)
	if i < 0 {
		return false
	}
	s.columns = append(s.columns[:i], s.columns[i+1:]...)
	s.version++
	return true
}

// Move relocates the column at from to position to, shifting the columns between.
// Out-of-range indices are clamped; moving onto itself is a no-op.
func (s *Set) Move(from, to int) bool {
	n := len(s.columns)
	if n == 0 || from < 0 || from >= n {
		return false
	}
	to = max(0, min(n-1, to))
	if from == to {
		return false
	}
	c := s.columns[from]
	if from < to {
		copy(s.columns[from:to], s.columns[from+1:to+1])
	} else {
		copy(s.columns[to+1:from+1], s.columns[to:from])
	}
	s.columns[to] = c
	s.version++
	return true
}

// SetWidth changes the requested width of the column at i, clamped to its bounds.
func (s *Set) SetWidth(i, w int) bool {
	c := s.At(i)
	if c == nil {
		return false
	}
	w = c.Clamp(w)
	if c.Width == w {
		return false
	}
	c.Width = w
	s.version++
	return true
}

// Touch marks the set changed without a structural edit, e.g. after a column's sort
// direction was flipped.
func (s *Set) Touch() { s.version++ }
