package cell

import "github.com/rshade/gridview/internal/render"

// Paintable draws into the area described by the context. The surface is translated so
// that (0,0) is the top-left of the area.
type Paintable interface {
	Render(ctx *CellContext, width, height int)
}

// Measurable reports an intrinsic size.
type Measurable interface {
	Measure(ctx *CellContext) render.Size
}

// Cell is a body cell: a flyweight bound to one row's item before each render.
type Cell interface {
	Paintable
	Bind(item any)
}

// TextCell is a Cell whose text weight the view controls per row.
type TextCell interface {
	Cell
	SetBold(bold bool)
}
