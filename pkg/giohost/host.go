package giohost

import (
	"fmt"
	"image"
	"image/color"
	"sort"
	"strings"
	"time"

	"gioui.org/app"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"

	bridge "github.com/perigean/bridge-sub001"
	"github.com/perigean/bridge-sub001/internal/debug"
)

// Invalidator requests a new FrameEvent. *app.Window implements it.
type Invalidator interface {
	Invalidate()
}

// Host drives a bridge.RootLayout from a Gio window. All methods must be
// called from the goroutine reading the window's events.
type Host struct {
	win        Invalidator
	root       *bridge.RootLayout
	canvas     *Canvas
	tracker    *touchTracker
	background color.NRGBA
	clock      func() time.Time

	now      time.Time
	nextID   int
	deferred map[int]func()
	frames   map[int]func(time.Time)

	ops     op.Ops
	inFrame bool
	size    image.Point
	pxPerDp float32
}

var _ bridge.Scheduler = (*Host)(nil)

// New returns a host for child drawing into win.
func New(win Invalidator, child bridge.WPHPLayout, opts ...Option) (*Host, error) {
	if win == nil {
		return nil, fmt.Errorf("window must not be nil")
	}
	h := &Host{
		win:        win,
		canvas:     newCanvas(),
		tracker:    newTouchTracker(),
		background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		clock:      time.Now,
		deferred:   make(map[int]func()),
		frames:     make(map[int]func(time.Time)),
	}
	for _, opt := range opts {
		if err := opt(h); err != nil {
			return nil, err
		}
	}
	h.now = h.clock()
	h.canvas.onPass = h.invalidate
	root, err := bridge.NewRootLayout(h.canvas, child,
		bridge.WithScheduler(h),
		bridge.WithClearColor(h.background),
	)
	if err != nil {
		return nil, fmt.Errorf("creating root layout: %w", err)
	}
	h.root = root
	return h, nil
}

// Root returns the layout root.
func (h *Host) Root() *bridge.RootLayout {
	return h.root
}

func (h *Host) Defer(fn func()) func() {
	id := h.nextID
	h.nextID++
	h.deferred[id] = fn
	return func() { delete(h.deferred, id) }
}

func (h *Host) RequestFrame(fn func(time.Time)) func() {
	id := h.nextID
	h.nextID++
	h.frames[id] = fn
	h.invalidate()
	return func() { delete(h.frames, id) }
}

// Now returns the time of the most recent frame.
func (h *Host) Now() time.Time {
	return h.now
}

// Run processes window events until the window is destroyed.
func (h *Host) Run(w *app.Window) error {
	defer h.root.Disconnect()
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			debug.Log("giohost: window destroyed: %v", e.Err)
			return e.Err
		case system.FrameEvent:
			h.Frame(e)
		}
		h.flush()
	}
	return nil
}

// Frame handles one FrameEvent: it tracks the window size, dispatches pointer
// input, runs frame callbacks and deferred work, then submits the last
// recorded draw pass.
func (h *Host) Frame(e system.FrameEvent) {
	h.inFrame = true
	defer func() { h.inFrame = false }()

	gtx := layout.NewContext(&h.ops, e)
	h.now = e.Now
	h.resize(gtx.Constraints.Max, e.Metric.PxPerDp)

	for _, ev := range gtx.Events(h) {
		if pe, ok := ev.(pointer.Event); ok {
			h.Pointer(pe)
		}
	}

	frames := h.frames
	h.frames = make(map[int]func(time.Time))
	ids := make([]int, 0, len(frames))
	for id := range frames {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		frames[id](e.Now)
	}
	h.flush()

	area := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	pointer.InputOp{
		Tag:   h,
		Types: pointer.Press | pointer.Drag | pointer.Release,
	}.Add(gtx.Ops)
	area.Pop()
	h.canvas.Add(gtx.Ops)
	if len(h.frames) > 0 {
		op.InvalidateOp{}.Add(gtx.Ops)
	}
	e.Frame(gtx.Ops)
}

// Pointer dispatches a pointer event as a touch event. Positions are
// converted from device pixels with the last frame's metric.
func (h *Host) Pointer(e pointer.Event) {
	phase, evt := h.tracker.apply(e, h.pxPerDp)
	switch phase {
	case phaseStart:
		h.root.TouchStart(evt)
	case phaseMove:
		h.root.TouchMove(evt)
	case phaseEnd:
		h.root.TouchEnd(evt)
	case phaseCancel:
		h.root.TouchCancel(evt)
	default:
		return
	}
	if debug.Enabled() {
		debug.Log("giohost: touch %s %d, active %s", phase, e.PointerID, formatTouches(evt.Touches))
	}
	h.flush()
}

func formatTouches(ts []bridge.Touch) string {
	parts := make([]string, len(ts))
	for i, t := range ts {
		parts[i] = fmt.Sprintf("%d@(%g,%g)", t.ID, t.X, t.Y)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func (h *Host) resize(size image.Point, pxPerDp float32) {
	if pxPerDp <= 0 {
		pxPerDp = 1
	}
	if size == h.size && pxPerDp == h.pxPerDp {
		return
	}
	h.size, h.pxPerDp = size, pxPerDp
	h.root.Resize(float32(size.X)/pxPerDp, float32(size.Y)/pxPerDp, pxPerDp)
}

// flush runs deferred callbacks in registration order until none remain.
func (h *Host) flush() {
	for len(h.deferred) > 0 {
		low := -1
		for id := range h.deferred {
			if low < 0 || id < low {
				low = id
			}
		}
		fn := h.deferred[low]
		delete(h.deferred, low)
		fn()
	}
}

func (h *Host) invalidate() {
	if !h.inFrame {
		h.win.Invalidate()
	}
}
