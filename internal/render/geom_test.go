package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRect_Intersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"overlap", Rect{0, 0, 10, 10}, Rect{5, 5, 10, 10}, Rect{5, 5, 5, 5}},
		{"contained", Rect{0, 0, 10, 10}, Rect{2, 3, 4, 4}, Rect{2, 3, 4, 4}},
		{"disjoint", Rect{0, 0, 2, 2}, Rect{5, 5, 2, 2}, Rect{5, 5, 0, 0}},
		{"touching edges", Rect{0, 0, 5, 5}, Rect{5, 0, 5, 5}, Rect{5, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Intersect(tt.b)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, !tt.want.IsEmpty(), tt.a.IntersectsWith(tt.b))
		})
	}
}

func TestRect_MirrorX(t *testing.T) {
	within := Rect{X: 5, Y: 0, Width: 10, Height: 1}

	got := Rect{X: 7, Y: 0, Width: 3, Height: 1}.MirrorX(within)
	assert.Equal(t, 10, got.X)
	assert.Equal(t, 3, got.Width)

	full := within.MirrorX(within)
	assert.Equal(t, within, full, "a full-width rect mirrors onto itself")
}

func TestRect_Union(t *testing.T) {
	a := Rect{0, 0, 2, 2}
	b := Rect{4, 1, 2, 5}

	assert.Equal(t, Rect{0, 0, 6, 6}, a.Union(b))
	assert.Equal(t, b, Rect{}.Union(b))
}

func TestNewRect_ClampsNegativeSize(t *testing.T) {
	r := NewRect(1, 2, -3, 4)
	assert.Equal(t, 0, r.Width)
	assert.True(t, r.IsEmpty())
}

func TestCorners(t *testing.T) {
	c := CornersAll.Without(CornersTop)

	assert.False(t, c.Has(CornerTopLeft))
	assert.True(t, c.Has(CornersBottom))
	assert.Equal(t, "--rr", c.String())
	assert.Equal(t, "rrrr", CornersAll.String())
}
