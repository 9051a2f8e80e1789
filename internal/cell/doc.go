// Package cell defines the per-frame render state threaded through every cell paint
// call and the small capability interfaces cells implement.
//
// A cell implements only what it needs: Paintable to draw itself into an area,
// Measurable to report an intrinsic size to the view's measurer, Cell to be bound to a
// row's data item. The list view depends on these interfaces and nothing else.
package cell
