package render

// Corners is a mask selecting which corners of a rectangle render rounded.
type Corners uint8

// Corner flags.
const (
	CornerTopLeft Corners = 1 << iota
	CornerTopRight
	CornerBottomLeft
	CornerBottomRight

	CornersNone   Corners = 0
	CornersTop            = CornerTopLeft | CornerTopRight
	CornersBottom         = CornerBottomLeft | CornerBottomRight
	CornersAll            = CornersTop | CornersBottom
)

// Has reports whether every corner in mask is set.
func (c Corners) Has(mask Corners) bool { return c&mask == mask }

// Without clears the corners in mask.
func (c Corners) Without(mask Corners) Corners { return c &^ mask }

// String renders the mask as four characters (tl, tr, bl, br), "r" for rounded and
// "-" for square. Handy in test failure output.
func (c Corners) String() string {
	b := []byte("----")
	for i, m := range []Corners{CornerTopLeft, CornerTopRight, CornerBottomLeft, CornerBottomRight} {
		if c.Has(m) {
			b[i] = 'r'
		}
	}
	return string(b)
}
