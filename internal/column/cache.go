package column

import (
	"math"
	"sort"
)

// Cached is a column's resolved placement. X1 is relative to the content origin (before
// horizontal scroll and borders are applied).
type Cached struct {
	Column   *Column
	Index    int
	X1       int
	X2       int
	Width    int
	MinWidth int
	MaxWidth int
}

// Resizable reports whether the cached bounds differ.
func (c Cached) Resizable() bool { return c.MinWidth != c.MaxWidth }

// Rebuild lays out columns across available units.
//
// Each column starts at its requested width clamped to [min, max]. Any leftover or
// deficit is then spread evenly over the resizable columns; a column that hits a bound
// keeps the clamped width and leaves the pool, and the remainder is spread again over
// the rest until nothing is left or no column can move.
//
// When the minimums alone exceed available, every column sits at its minimum and the
// result overflows; the caller scrolls horizontally.
func Rebuild(columns []*Column, available int) []Cached {
	n := len(columns)
	if n == 0 {
		return nil
	}
	available = max(available, 0)

	widths := make([]int, n)
	flexible := make([]int, 0, n)
	for i, c := range columns {
		// A request wider than the whole area can never be honored.
		widths[i] = c.Clamp(min(c.Width, available))
		if c.Resizable() {
			flexible = append(flexible, i)
		}
	}

	for len(flexible) > 0 {
		leftover := available - sum(widths)
		if leftover == 0 {
			break
		}

		share := leftover / len(flexible)
		rem := leftover % len(flexible)
		step := 1
		if rem < 0 {
			rem, step = -rem, -1
		}

		still := flexible[:0:0]
		for k, i := range flexible {
			target := widths[i] + share
			if k < rem {
				target += step
			}
			got := columns[i].Clamp(target)
			widths[i] = got
			if got == target {
				still = append(still, i)
			}
		}

		if len(still) == len(flexible) {
			// Every share landed; the leftover is exhausted.
			break
		}
		flexible = still
	}

	out := make([]Cached, n)
	x := 0
	for i, c := range columns {
		lo, hi := c.Bounds()
		out[i] = Cached{
			Column:   c,
			Index:    i,
			X1:       x,
			X2:       x + widths[i],
			Width:    widths[i],
			MinWidth: lo,
			MaxWidth: hi,
		}
		x = addSat(x, widths[i])
	}
	return out
}

// TotalWidth returns the width spanned by the cache.
func TotalWidth(cache []Cached) int {
	if len(cache) == 0 {
		return 0
	}
	return cache[len(cache)-1].X2
}

// IndexAt returns the index of the cached column containing content x, or -1.
func IndexAt(cache []Cached, x int) int {
	i := sort.Search(len(cache), func(i int) bool { return cache[i].X2 > x })
	if i >= len(cache) || x < cache[i].X1 {
		return -1
	}
	return i
}

// sum adds ws, saturating at math.MaxInt.
func sum(ws []int) int {
	total := 0
	for _, w := range ws {
		total = addSat(total, w)
	}
	return total
}

func addSat(a, b int) int {
	if b > 0 && a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}
