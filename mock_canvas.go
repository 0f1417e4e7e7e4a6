package bridge

import (
	"fmt"
	"image/color"
	"strings"
)

// CanvasCall is one recorded Canvas method call.
type CanvasCall struct {
	Method string
	Args   []float32
	Color  color.NRGBA
}

func (c CanvasCall) String() string {
	var sb strings.Builder
	sb.WriteString(c.Method)
	sb.WriteByte('(')
	switch c.Method {
	case "SetFillColor", "SetStrokeColor":
		fmt.Fprintf(&sb, "#%02x%02x%02x%02x", c.Color.R, c.Color.G, c.Color.B, c.Color.A)
	default:
		for i, a := range c.Args {
			if i > 0 {
				sb.WriteByte(',')
			}
			fmt.Fprintf(&sb, "%g", a)
		}
	}
	sb.WriteByte(')')
	return sb.String()
}

// MockCanvas is a Canvas that records every call for verification.
type MockCanvas struct {
	calls []CanvasCall
	depth int

	backingWidth, backingHeight int
}

var (
	_ Canvas       = (*MockCanvas)(nil)
	_ BackingStore = (*MockCanvas)(nil)
)

// NewMockCanvas returns an empty recording canvas.
func NewMockCanvas() *MockCanvas {
	return &MockCanvas{}
}

// Calls returns the recorded calls in order.
func (m *MockCanvas) Calls() []CanvasCall {
	return m.calls
}

// Trace returns the recorded calls formatted one per line.
func (m *MockCanvas) Trace() string {
	lines := make([]string, len(m.calls))
	for i, c := range m.calls {
		lines[i] = c.String()
	}
	return strings.Join(lines, "\n")
}

// Count returns how many times method was called.
func (m *MockCanvas) Count(method string) int {
	n := 0
	for _, c := range m.calls {
		if c.Method == method {
			n++
		}
	}
	return n
}

// Find returns the recorded calls to method.
func (m *MockCanvas) Find(method string) []CanvasCall {
	var out []CanvasCall
	for _, c := range m.calls {
		if c.Method == method {
			out = append(out, c)
		}
	}
	return out
}

// Depth returns the current Save nesting depth.
func (m *MockCanvas) Depth() int {
	return m.depth
}

// BackingSize returns the last size passed to SetBackingSize.
func (m *MockCanvas) BackingSize() (width, height int) {
	return m.backingWidth, m.backingHeight
}

// Reset discards the recorded calls.
func (m *MockCanvas) Reset() {
	m.calls = nil
}

func (m *MockCanvas) record(method string, args ...float32) {
	m.calls = append(m.calls, CanvasCall{Method: method, Args: args})
}

func (m *MockCanvas) SetFillColor(c color.NRGBA) {
	m.calls = append(m.calls, CanvasCall{Method: "SetFillColor", Color: c})
}

func (m *MockCanvas) SetStrokeColor(c color.NRGBA) {
	m.calls = append(m.calls, CanvasCall{Method: "SetStrokeColor", Color: c})
}

func (m *MockCanvas) SetLineWidth(w float32) { m.record("SetLineWidth", w) }
func (m *MockCanvas) FillRect(x, y, w, h float32) { m.record("FillRect", x, y, w, h) }
func (m *MockCanvas) StrokeRect(x, y, w, h float32) { m.record("StrokeRect", x, y, w, h) }
func (m *MockCanvas) ClearRect(x, y, w, h float32) { m.record("ClearRect", x, y, w, h) }
func (m *MockCanvas) BeginPath() { m.record("BeginPath") }
func (m *MockCanvas) MoveTo(x, y float32) { m.record("MoveTo", x, y) }
func (m *MockCanvas) LineTo(x, y float32) { m.record("LineTo", x, y) }
func (m *MockCanvas) Rect(x, y, w, h float32) { m.record("Rect", x, y, w, h) }
func (m *MockCanvas) Ellipse(cx, cy, rx, ry float32) { m.record("Ellipse", cx, cy, rx, ry) }
func (m *MockCanvas) ClosePath() { m.record("ClosePath") }
func (m *MockCanvas) Fill() { m.record("Fill") }
func (m *MockCanvas) Stroke() { m.record("Stroke") }
func (m *MockCanvas) Clip() { m.record("Clip") }
func (m *MockCanvas) Translate(x, y float32) { m.record("Translate", x, y) }
func (m *MockCanvas) Scale(x, y float32) { m.record("Scale", x, y) }
func (m *MockCanvas) SetBackingSize(width, height int) { m.backingWidth, m.backingHeight = width, height }

func (m *MockCanvas) Save() {
	m.depth++
	m.record("Save")
}

// Restore panics on an unbalanced call.
func (m *MockCanvas) Restore() {
	if m.depth == 0 {
		panic("bridge: MockCanvas.Restore without Save")
	}
	m.depth--
	m.record("Restore")
}
