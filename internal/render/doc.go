// Package render defines the drawing vocabulary shared by every layer of the list view:
// integer geometry, colors, rounded-corner masks and the Surface contract a host drawing
// backend must satisfy.
//
// Nothing in this package paints on its own. Concrete backends live in internal/surface;
// the Recorder in this package logs drawing operations so paint passes can be asserted
// and snapshotted without a terminal.
package render
