package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_TranslationAndRestore(t *testing.T) {
	r := NewRecorder()

	r.SetColor(RGB(255, 0, 0))
	r.Save()
	r.Translate(3, 4)
	r.SetColor(RGB(0, 255, 0))
	r.FillRect(Rect{1, 1, 2, 2}, 0, CornersAll)
	r.Restore()
	r.Line(0, 0, 5, 0)

	ops := r.Ops()
	require.Len(t, ops, 2)
	assert.Equal(t, Rect{4, 5, 2, 2}, ops[0].Rect)
	assert.Equal(t, "#00ff00", ops[0].Color.Hex())
	assert.Equal(t, 0, ops[1].X1, "translation restored")
	assert.Equal(t, "#ff0000", ops[1].Color.Hex(), "color restored")
	assert.Equal(t, 0, r.Depth())
}

func TestStateStack_ClipIntersects(t *testing.T) {
	s := NewStateStack()

	s.Clip(Rect{0, 0, 10, 10})
	s.Clip(Rect{5, 5, 10, 10})

	dev, ok := s.ToDevice(Rect{0, 0, 20, 20})
	require.True(t, ok)
	assert.Equal(t, Rect{5, 5, 5, 5}, dev)

	_, _, visible := s.PointVisible(1, 1)
	assert.False(t, visible)

	s.ResetClip()
	_, ok = s.ToDevice(Rect{0, 0, 1, 1})
	assert.True(t, ok)
}

func TestStateStack_UnmatchedRestoreIgnored(t *testing.T) {
	s := NewStateStack()
	s.Translate(2, 2)
	s.Restore()
	assert.Equal(t, 2, s.State().DX)
}

func TestRecorder_Dump(t *testing.T) {
	r := NewRecorder()
	r.FillRect(Rect{0, 1, 4, 2}, 0, CornersBottom)
	r.Text(1, 1, "hi", TextStyle{})

	assert.Equal(t, "fill 0,1 4x2 --rr #000000\ntext 1,1 \"hi\"\n", r.Dump())
}
