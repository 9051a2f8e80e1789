package view

import (
	"github.com/rshade/gridview/internal/cell"
	"github.com/rshade/gridview/internal/render"
	"github.com/rshade/gridview/internal/theme"
)

// SetTheme installs the theme the view paints through. The theme is not usable until
// Realize or StyleChanged hands it a style.
func (v *ListView[T]) SetTheme(th theme.Theme) {
	v.th = th
	if v.cellCtx != nil {
		v.cellCtx.Theme = th
	}
	v.InvalidateMeasure()
}

// Theme returns the installed theme, possibly nil.
func (v *ListView[T]) Theme() theme.Theme { return v.th }

// Realize is the host's first-paintable notification.
func (v *ListView[T]) Realize(style theme.Style) {
	v.realized = true
	v.StyleChanged(style)
	v.MoveResize(v.alloc)
}

// Realized reports whether Realize has been called.
func (v *ListView[T]) Realized() bool { return v.realized }

// StyleChanged refreshes the theme's derived colors and replaces the cell context,
// disposing the old one first.
func (v *ListView[T]) StyleChanged(style theme.Style) {
	if v.th == nil {
		v.logger.Debug().Msg("style changed before a theme was set")
		return
	}
	v.th.Refresh(style)

	if v.cellCtx != nil {
		v.cellCtx.Dispose()
	}
	v.cellCtx = cell.NewCellContext(v.th, cell.NewTextLayout(false))
	v.cellCtx.IsRtl = v.rtl

	v.logger.Debug().Bool("realized", v.realized).Msg("style changed")
	v.InvalidateMeasure()
}

// CellContext returns the current render frame context. It is replaced on every style
// change.
func (v *ListView[T]) CellContext() *cell.CellContext { return v.cellCtx }

func (v *ListView[T]) themeReady() bool {
	return v.th != nil && v.th.Ready() && v.cellCtx != nil
}

// Invalidate queues r for repaint without forcing a relayout.
func (v *ListView[T]) Invalidate(r render.Rect) {
	if !v.realized || r.IsEmpty() {
		return
	}
	for i, d := range v.damage {
		if d.IntersectsWith(r) {
			v.damage[i] = d.Union(r)
			return
		}
	}
	v.damage = append(v.damage, r)
}

// InvalidateList queues the row area for repaint.
func (v *ListView[T]) InvalidateList() { v.Invalidate(v.listAlloc) }

// InvalidateHeader queues the header area for repaint.
func (v *ListView[T]) InvalidateHeader() { v.Invalidate(v.headerAlloc) }

// InvalidateAll queues the whole allocation for repaint.
func (v *ListView[T]) InvalidateAll() { v.Invalidate(v.alloc) }

// InvalidateMeasure schedules row and header measurement before the next paint.
func (v *ListView[T]) InvalidateMeasure() {
	v.measurePending = true
	v.RequestRelayout()
}

// RequestRelayout marks geometry dirty. The next paint, hit test or input event rebuilds
// the column cache and scroll state before doing anything else; repeated requests
// coalesce into one relayout.
func (v *ListView[T]) RequestRelayout() {
	v.layoutDirty = true
	v.InvalidateAll()
}

// Damage returns and clears the queued repaint regions.
func (v *ListView[T]) Damage() []render.Rect {
	d := v.damage
	v.damage = nil
	return d
}

// NeedsPaint reports whether any region is queued for repaint.
func (v *ListView[T]) NeedsPaint() bool { return len(v.damage) > 0 }
