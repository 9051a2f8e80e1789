package column

import (
	"math"

	"github.com/rshade/gridview/internal/cell"
	"github.com/rshade/gridview/internal/theme"
)

// Column is one column definition. MaxWidth <= 0 means unbounded.
type Column struct {
	ID       string
	MinWidth int
	MaxWidth int
	// Width is the requested width; zero requests the minimum.
	Width int

	HeaderCell cell.Paintable
	Cell       cell.Cell

	Sortable bool
	Sort     theme.SortType
}

// Option configures a Column built by New.
type Option func(*Column)

// WithWidth sets the requested width.
func WithWidth(w int) Option {
	return func(c *Column) { c.Width = w }
}

// WithBounds sets minimum and maximum widths.
func WithBounds(minWidth, maxWidth int) Option {
	return func(c *Column) {
		c.MinWidth = minWidth
		c.MaxWidth = maxWidth
	}
}

// Fixed pins the column to exactly w units.
func Fixed(w int) Option {
	return func(c *Column) {
		c.MinWidth, c.MaxWidth, c.Width = w, w, w
	}
}

// Sortable marks the column as toggling its sort direction when its header is clicked.
func Sortable() Option {
	return func(c *Column) { c.Sortable = true }
}

// New builds a column with a standard header cell showing title.
func New(id, title string, body cell.Cell, opts ...Option) *Column {
	c := &Column{ID: id, MinWidth: 1, Cell: body}
	for _, opt := range opts {
		opt(c)
	}
	c.HeaderCell = cell.NewHeader(title, c.SortType)
	return c
}

// SortType reports the column's current sort direction.
func (c *Column) SortType() theme.SortType { return c.Sort }

// Bounds returns sanitized [min, max] widths: negative minimums become zero, an
// unbounded or inverted maximum is normalized.
func (c *Column) Bounds() (int, int) {
	lo := max(c.MinWidth, 0)
	hi := c.MaxWidth
	if hi <= 0 {
		hi = math.MaxInt
	}
	if hi < lo {
		hi = lo
	}
	return lo, hi
}

// Resizable reports whether the column's width can vary.
func (c *Column) Resizable() bool {
	lo, hi := c.Bounds()
	return lo != hi
}

// Clamp limits w to the column's bounds.
func (c *Column) Clamp(w int) int {
	lo, hi := c.Bounds()
	return max(lo, min(hi, w))
}

// Title returns the header title, or the ID when the header cell has none.
func (c *Column) Title() string {
	if t, ok := c.HeaderCell.(interface{ Title() string }); ok {
		return t.Title()
	}
	return c.ID
}
