package view

import (
	"github.com/rs/zerolog"

	"github.com/rshade/gridview/internal/column"
	"github.com/rshade/gridview/internal/drag"
)

// Options are the behavior switches a view is created with.
type Options struct {
	// DragThreshold is how far a header press must travel to become a column drag.
	DragThreshold int
	// RulesHint stripes odd unselected rows.
	RulesHint bool
	// HeaderVisible shows the column header row.
	HeaderVisible bool
	// RenderNullModel paints background, header and frame when no model is set.
	RenderNullModel bool
	// Reorderable enables column dragging and the row reorder affordance.
	Reorderable bool
	// RowPadding is added to the measured row height.
	RowPadding int
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		DragThreshold: drag.DefaultThreshold,
		HeaderVisible: true,
		Reorderable:   true,
	}
}

// Handlers receive the outcomes of header gestures. Any field may be nil.
type Handlers struct {
	// ColumnReordered fires once per completed column drag that left the column at a
	// different index. A drag that ends where it started is not reported.
	ColumnReordered func(from, to int)
	// SortChanged fires when a header click changed a column's sort direction.
	SortChanged func(c *column.Column)
	// ColumnResized fires when a header resize gesture ends.
	ColumnResized func(index, width int)
}

// Option configures a ListView.
type Option func(*config)

type config struct {
	opts     Options
	logger   zerolog.Logger
	handlers Handlers
}

// WithOptions replaces the default options.
func WithOptions(o Options) Option {
	return func(c *config) { c.opts = o }
}

// WithLogger sets the logger the view derives its component logger from.
func WithLogger(l zerolog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithHandlers registers gesture handlers.
func WithHandlers(h Handlers) Option {
	return func(c *config) { c.handlers = h }
}
