package sim

import "image/color"

type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

type TextBaseline uint8

const (
	BaselineTop TextBaseline = iota
	BaselineMiddle
	BaselineBottom
)

// TextStyle controls how FillText places and colours a string.
type TextStyle struct {
	Color    color.Color
	Align    TextAlign
	Baseline TextBaseline
	Size     float64
}

// Surface is the drawing target a frame is rendered onto.
type Surface interface {
	Clear(x, y, w, h float64)
	StrokeCircle(cx, cy, r, lineWidth float64, c color.Color)
	FillText(text string, x, y float64, style TextStyle)
}

type OpKind uint8

const (
	OpClear OpKind = iota
	OpStrokeCircle
	OpFillText
)

// Op is one recorded drawing call.
type Op struct {
	Kind OpKind

	X, Y, W, H float64 // Clear
	R, Line    float64 // StrokeCircle uses X, Y as centre
	Color      color.Color

	Text  string
	Style TextStyle
}

// Frame records drawing calls so they can be replayed later, e.g. when the
// host separates update from draw.
type Frame struct {
	Ops []Op
}

func (f *Frame) Clear(x, y, w, h float64) {
	// Anything recorded before a clear is invisible.
	f.Ops = append(f.Ops[:0], Op{Kind: OpClear, X: x, Y: y, W: w, H: h})
}

func (f *Frame) StrokeCircle(cx, cy, r, lineWidth float64, c color.Color) {
	f.Ops = append(f.Ops, Op{Kind: OpStrokeCircle, X: cx, Y: cy, R: r, Line: lineWidth, Color: c})
}

func (f *Frame) FillText(text string, x, y float64, style TextStyle) {
	f.Ops = append(f.Ops, Op{Kind: OpFillText, X: x, Y: y, Text: text, Style: style})
}

// Reset drops all recorded ops, keeping capacity.
func (f *Frame) Reset() {
	f.Ops = f.Ops[:0]
}

// Replay issues the recorded ops on dst in order.
func (f *Frame) Replay(dst Surface) {
	for _, op := range f.Ops {
		switch op.Kind {
		case OpClear:
			dst.Clear(op.X, op.Y, op.W, op.H)
		case OpStrokeCircle:
			dst.StrokeCircle(op.X, op.Y, op.R, op.Line, op.Color)
		case OpFillText:
			dst.FillText(op.Text, op.X, op.Y, op.Style)
		}
	}
}
