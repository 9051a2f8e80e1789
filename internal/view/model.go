// Package view implements ListView, a virtualized list and grid renderer. Given a
// model, a column set, a selection and a scroll position it paints only the visible rows
// through a theme onto any render.Surface, merging contiguous selected rows into single
// highlight bands and handling column header drag, reorder, resize and sort clicks.
package view

// Model is the indexable data a view displays.
type Model[T any] interface {
	Count() int
	ItemAt(index int) T
}

// ViewportObserver is implemented by models that want to know how many rows the view
// can show at once.
type ViewportObserver interface {
	SetRowsInView(rows int)
}

// Selection is the read side of a selection model. The view never mutates it.
type Selection interface {
	Count() int
	Contains(row int) bool
	FocusedIndex() int
}

// SliceModel adapts a slice to Model.
type SliceModel[T any] []T

// Count implements Model.
func (m SliceModel[T]) Count() int { return len(m) }

// ItemAt implements Model.
func (m SliceModel[T]) ItemAt(index int) T { return m[index] }
