package render

import (
	"fmt"
	"strings"
)

// OpKind identifies a recorded drawing operation.
type OpKind uint8

// Recorded operation kinds.
const (
	OpFill OpKind = iota + 1
	OpStroke
	OpLine
	OpText
)

func (k OpKind) String() string {
	switch k {
	case OpFill:
		return "fill"
	case OpStroke:
		return "stroke"
	case OpLine:
		return "line"
	case OpText:
		return "text"
	default:
		return "unknown"
	}
}

// Op is one drawing call, captured in device space before clipping.
type Op struct {
	Kind      OpKind
	Rect      Rect
	X1, Y1    int
	X2, Y2    int
	Color     Color
	LineWidth float64
	Radius    float64
	Corners   Corners
	Text      string
	Style     TextStyle
	Clip      Rect
	Clipped   bool
}

// Recorder is a Surface that logs every drawing call. It draws nothing.
type Recorder struct {
	StateStack

	ops []Op
}

var _ Surface = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{StateStack: NewStateStack()}
}

// Ops returns every recorded operation in call order.
func (r *Recorder) Ops() []Op { return r.ops }

// OpsOf filters the log by kind.
func (r *Recorder) OpsOf(kind OpKind) []Op {
	var out []Op
	for _, op := range r.ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Reset clears the log and the state stack.
func (r *Recorder) Reset() {
	r.ops = r.ops[:0]
	r.StateStack = NewStateStack()
}

func (r *Recorder) record(op Op) {
	st := r.State()
	op.Color = st.Color
	op.LineWidth = st.LineWidth
	op.Clip = st.Clip
	op.Clipped = st.Clipped
	r.ops = append(r.ops, op)
}

// FillRect implements Surface.
func (r *Recorder) FillRect(rect Rect, radius float64, corners Corners) {
	st := r.State()
	r.record(Op{Kind: OpFill, Rect: rect.Offset(st.DX, st.DY), Radius: radius, Corners: corners})
}

// StrokeRect implements Surface.
func (r *Recorder) StrokeRect(rect Rect, radius float64, corners Corners) {
	st := r.State()
	r.record(Op{Kind: OpStroke, Rect: rect.Offset(st.DX, st.DY), Radius: radius, Corners: corners})
}

// Line implements Surface.
func (r *Recorder) Line(x1, y1, x2, y2 int) {
	st := r.State()
	r.record(Op{Kind: OpLine, X1: x1 + st.DX, Y1: y1 + st.DY, X2: x2 + st.DX, Y2: y2 + st.DY})
}

// Text implements Surface.
func (r *Recorder) Text(x, y int, text string, style TextStyle) {
	st := r.State()
	r.record(Op{Kind: OpText, X1: x + st.DX, Y1: y + st.DY, Text: text, Style: style})
}

// Dump renders the log one operation per line. Used for golden comparisons.
func (r *Recorder) Dump() string {
	var b strings.Builder
	for _, op := range r.ops {
		switch op.Kind {
		case OpFill, OpStroke:
			fmt.Fprintf(&b, "%s %d,%d %dx%d %s %s\n",
				op.Kind, op.Rect.X, op.Rect.Y, op.Rect.Width, op.Rect.Height, op.Corners, op.Color.Hex())
		case OpLine:
			fmt.Fprintf(&b, "line %d,%d-%d,%d %s\n", op.X1, op.Y1, op.X2, op.Y2, op.Color.Hex())
		case OpText:
			fmt.Fprintf(&b, "text %d,%d %q\n", op.X1, op.Y1, op.Text)
		}
	}
	return b.String()
}
