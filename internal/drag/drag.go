// Package drag implements the column header press/drag/resize gesture as an explicit
// state machine.
//
//	Idle -> Pressed -> Dragging -> Idle   (reorder)
//	Idle -> Pressed -> Idle               (click)
//	Idle -> Resizing -> Idle              (resize)
package drag

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Phase is the gesture state.
type Phase uint8

// Phases.
const (
	Idle Phase = iota
	Pressed
	Dragging
	Resizing
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Pressed:
		return "pressed"
	case Dragging:
		return "dragging"
	case Resizing:
		return "resizing"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// DefaultThreshold is the pointer travel, in units, a press must exceed to become a drag.
const DefaultThreshold = 2

// Columns is the column geometry a gesture operates on. Coordinates are content space
// (before horizontal scroll). Move and Resize must leave Span current for the next call.
type Columns interface {
	Count() int
	Span(i int) (x1, width int)
	Resizable(i int) bool
	Move(from, to int)
	Resize(i, width int)
}

// EventKind classifies what a finished gesture means.
type EventKind uint8

// Event kinds.
const (
	EventNone EventKind = iota
	EventClick
	EventReorder
	EventResize
)

// Event is reported once when a gesture ends.
type Event struct {
	Kind EventKind
	// Column is the clicked or resized column, or the dragged column's final index.
	Column int
	// From is the dragged column's index at press time.
	From  int
	Width int
}

// State is a snapshot of the gesture.
type State struct {
	Phase  Phase
	Column int
	// X is the dragged column's live left edge, valid while Dragging.
	X int
}

// Controller tracks one header gesture at a time. It is the only view state that
// survives between input events.
type Controller struct {
	threshold int
	logger    zerolog.Logger

	phase   Phase
	column  int
	origin  int
	reorder bool

	pressX     int
	grabOffset int
	dragX      int
	startWidth int
}

// NewController returns an idle controller. A threshold <= 0 uses DefaultThreshold.
func NewController(threshold int, logger zerolog.Logger) *Controller {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Controller{threshold: threshold, logger: logger, column: -1}
}

// State returns the current gesture state.
func (c *Controller) State() State {
	return State{Phase: c.phase, Column: c.column, X: c.dragX}
}

// Phase returns the current phase.
func (c *Controller) Phase() Phase { return c.phase }

// IsDragging reports whether a column is being dragged.
func (c *Controller) IsDragging() bool { return c.phase == Dragging }

// Threshold returns the drag threshold.
func (c *Controller) Threshold() int { return c.threshold }

// Press starts a gesture on column at content x. Pressing the trailing unit of a
// resizable column starts a resize, and allowReorder false keeps the press from
// ever becoming a drag.
func (c *Controller) Press(cols Columns, column, x int, allowReorder bool) {
	if column < 0 || column >= cols.Count() {
		c.reset()
		return
	}
	x1, width := cols.Span(column)

	c.column = column
	c.origin = column
	c.pressX = x
	c.grabOffset = x - x1
	c.dragX = x1
	c.startWidth = width

	c.reorder = allowReorder

	if cols.Resizable(column) && x >= x1+width-1 {
		c.transition(Resizing)
		return
	}
	c.transition(Pressed)
}

// Motion feeds pointer movement at content x. While dragging, the dragged column is
// moved live whenever its leading or trailing edge crosses the midpoint of a neighbor.
func (c *Controller) Motion(cols Columns, x int) {
	if c.phase != Idle && (c.column < 0 || c.column >= cols.Count()) {
		// The column set changed under the gesture.
		c.reset()
		return
	}

	switch c.phase {
	case Idle:
		return
	case Pressed:
		if !c.reorder || abs(x-c.pressX) <= c.threshold {
			return
		}
		c.transition(Dragging)
		c.drag(cols, x)
	case Dragging:
		c.drag(cols, x)
	case Resizing:
		cols.Resize(c.column, c.startWidth+x-c.pressX)
	}
}

func (c *Controller) drag(cols Columns, x int) {
	_, width := cols.Span(c.column)
	lastX1, lastWidth := cols.Span(cols.Count() - 1)
	total := lastX1 + lastWidth

	c.dragX = max(0, min(total-width, x-c.grabOffset))

	for {
		target := c.swapTarget(cols, width)
		if target < 0 {
			return
		}
		cols.Move(c.column, target)
		c.logger.Debug().Int("from", c.column).Int("to", target).Msg("column moved during drag")
		c.column = target
	}
}

// swapTarget returns the neighbor the dragged column should trade places with, or -1.
func (c *Controller) swapTarget(cols Columns, width int) int {
	if c.column > 0 {
		x1, w := cols.Span(c.column - 1)
		if c.dragX < x1+w/2 {
			return c.column - 1
		}
	}
	if c.column < cols.Count()-1 {
		x1, w := cols.Span(c.column + 1)
		if c.dragX+width > x1+w/2 {
			return c.column + 1
		}
	}
	return -1
}

// Release ends the gesture and reports what it meant.
func (c *Controller) Release(cols Columns) Event {
	defer c.reset()

	if c.phase != Idle && (c.column < 0 || c.column >= cols.Count()) {
		return Event{}
	}

	switch c.phase {
	case Idle:
		return Event{}
	case Pressed:
		return Event{Kind: EventClick, Column: c.column, From: c.origin}
	case Dragging:
		return Event{Kind: EventReorder, Column: c.column, From: c.origin}
	case Resizing:
		_, width := cols.Span(c.column)
		return Event{Kind: EventResize, Column: c.column, From: c.origin, Width: width}
	default:
		return Event{}
	}
}

// Cancel abandons the gesture without reporting an event.
func (c *Controller) Cancel() { c.reset() }

func (c *Controller) reset() {
	if c.phase != Idle {
		c.transition(Idle)
	}
	c.column = -1
	c.origin = -1
	c.dragX = 0
}

func (c *Controller) transition(to Phase) {
	c.logger.Debug().
		Stringer("from", c.phase).
		Stringer("to", to).
		Int("column", c.column).
		Msg("header gesture")
	c.phase = to
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
