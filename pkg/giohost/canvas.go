package giohost

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	bridge "github.com/perigean/bridge-sub001"
)

type canvasState struct {
	fill      color.NRGBA
	stroke    color.NRGBA
	lineWidth float32
	// pops undoes the transform and clip ops pushed at this level, in push
	// order.
	pops []func()
}

type subpath struct {
	pts    []f32.Point
	closed bool
}

// Canvas records bridge drawing calls as Gio operations. A draw pass is the
// span from the outermost Save to its Restore; each pass replaces the
// previous recording.
type Canvas struct {
	ops             op.Ops
	call            op.CallOp
	recording       op.MacroOp
	ellipseSegments int

	cur   canvasState
	stack []canvasState
	path  []subpath

	// onPass runs after each completed draw pass.
	onPass func()
}

var _ bridge.Canvas = (*Canvas)(nil)

func newCanvas() *Canvas {
	return &Canvas{
		ellipseSegments: 48,
		cur:             defaultCanvasState(),
	}
}

func defaultCanvasState() canvasState {
	return canvasState{
		fill:      color.NRGBA{A: 0xff},
		stroke:    color.NRGBA{A: 0xff},
		lineWidth: 1,
	}
}

// Add replays the last completed draw pass into o.
func (c *Canvas) Add(o *op.Ops) {
	c.call.Add(o)
}

func (c *Canvas) SetFillColor(col color.NRGBA)   { c.cur.fill = col }
func (c *Canvas) SetStrokeColor(col color.NRGBA) { c.cur.stroke = col }
func (c *Canvas) SetLineWidth(w float32)         { c.cur.lineWidth = w }

func (c *Canvas) Save() {
	if len(c.stack) == 0 {
		c.ops.Reset()
		c.recording = op.Record(&c.ops)
	}
	c.stack = append(c.stack, c.cur)
	c.cur.pops = nil
}

func (c *Canvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	for i := len(c.cur.pops) - 1; i >= 0; i-- {
		c.cur.pops[i]()
	}
	c.cur = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	if len(c.stack) == 0 {
		c.call = c.recording.Stop()
		if c.onPass != nil {
			c.onPass()
		}
	}
}

func (c *Canvas) Translate(x, y float32) {
	c.push(op.Offset(f32.Pt(x, y)).Push(&c.ops).Pop)
}

func (c *Canvas) Scale(x, y float32) {
	a := f32.Affine2D{}.Scale(f32.Point{}, f32.Pt(x, y))
	c.push(op.Affine(a).Push(&c.ops).Pop)
}

func (c *Canvas) push(pop func()) {
	c.cur.pops = append(c.cur.pops, pop)
}

func (c *Canvas) BeginPath() {
	c.path = c.path[:0]
}

func (c *Canvas) MoveTo(x, y float32) {
	c.path = append(c.path, subpath{pts: []f32.Point{f32.Pt(x, y)}})
}

func (c *Canvas) LineTo(x, y float32) {
	if len(c.path) == 0 || c.path[len(c.path)-1].closed {
		c.MoveTo(x, y)
		return
	}
	sp := &c.path[len(c.path)-1]
	sp.pts = append(sp.pts, f32.Pt(x, y))
}

func (c *Canvas) ClosePath() {
	if len(c.path) > 0 {
		c.path[len(c.path)-1].closed = true
	}
}

func (c *Canvas) Rect(x, y, w, h float32) {
	c.path = append(c.path, rectPath(x, y, w, h))
}

func (c *Canvas) Ellipse(cx, cy, rx, ry float32) {
	n := c.ellipseSegments
	pts := make([]f32.Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = f32.Pt(cx+rx*float32(math.Cos(a)), cy+ry*float32(math.Sin(a)))
	}
	c.path = append(c.path, subpath{pts: pts, closed: true})
}

func (c *Canvas) Fill() {
	c.fill(c.path, c.cur.fill)
}

func (c *Canvas) Stroke() {
	c.stroke(c.path, c.cur.stroke)
}

// Clip restricts drawing to the current path until the enclosing Restore.
func (c *Canvas) Clip() {
	if c.recordingDepth() == 0 {
		return
	}
	spec := c.pathSpec(c.path, true)
	c.push(clip.Outline{Path: spec}.Op().Push(&c.ops).Pop)
}

func (c *Canvas) FillRect(x, y, w, h float32) {
	c.fill([]subpath{rectPath(x, y, w, h)}, c.cur.fill)
}

func (c *Canvas) StrokeRect(x, y, w, h float32) {
	c.stroke([]subpath{rectPath(x, y, w, h)}, c.cur.stroke)
}

// ClearRect is a no-op: every draw pass starts from an empty recording, and
// Gio paints over the window background rather than erasing.
func (c *Canvas) ClearRect(x, y, w, h float32) {}

func (c *Canvas) recordingDepth() int {
	return len(c.stack)
}

func (c *Canvas) fill(path []subpath, col color.NRGBA) {
	if c.recordingDepth() == 0 || len(path) == 0 {
		return
	}
	spec := c.pathSpec(path, true)
	defer clip.Outline{Path: spec}.Op().Push(&c.ops).Pop()
	paint.ColorOp{Color: col}.Add(&c.ops)
	paint.PaintOp{}.Add(&c.ops)
}

func (c *Canvas) stroke(path []subpath, col color.NRGBA) {
	if c.recordingDepth() == 0 || len(path) == 0 || c.cur.lineWidth <= 0 {
		return
	}
	spec := c.pathSpec(path, false)
	defer clip.Stroke{Path: spec, Width: c.cur.lineWidth}.Op().Push(&c.ops).Pop()
	paint.ColorOp{Color: col}.Add(&c.ops)
	paint.PaintOp{}.Add(&c.ops)
}

// pathSpec builds path into the recording. Filled paths close every subpath.
func (c *Canvas) pathSpec(path []subpath, closeAll bool) clip.PathSpec {
	var p clip.Path
	p.Begin(&c.ops)
	for _, sp := range path {
		if len(sp.pts) == 0 {
			continue
		}
		p.MoveTo(sp.pts[0])
		for _, q := range sp.pts[1:] {
			p.LineTo(q)
		}
		if sp.closed || closeAll {
			p.Close()
		}
	}
	return p.End()
}

func rectPath(x, y, w, h float32) subpath {
	return subpath{
		pts:    []f32.Point{f32.Pt(x, y), f32.Pt(x+w, y), f32.Pt(x+w, y+h), f32.Pt(x, y+h)},
		closed: true,
	}
}
