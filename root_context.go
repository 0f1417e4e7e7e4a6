package bridge

import (
	"fmt"
	"image/color"
	"sort"
	"time"

	"github.com/perigean/bridge-sub001/internal/debug"
)

type timer struct {
	handler  TimerHandler
	start    time.Time
	duration time.Duration
}

// RootElementContext coordinates layout, drawing and timers for one tree.
// Layout and draw requests are coalesced into a single deferred pass; a
// layout always implies a following draw.
type RootElementContext struct {
	child     WPHPLayout
	canvas    Canvas
	scheduler Scheduler
	viewport  LayoutBox
	dpr       float32
	clear     *color.NRGBA

	layoutRequested  bool
	layoutEvaluating bool
	drawRequested    bool
	drawEvaluating   bool
	cancelEvaluate   func()

	timers      map[TimerID]*timer
	nextTimerID TimerID
	cancelFrame func()

	disconnected bool
}

var _ ElementContext = (*RootElementContext)(nil)

// RequestLayout schedules a layout pass and the draw that follows it.
// Panics if called while a layout pass is running.
func (c *RootElementContext) RequestLayout() {
	if c.layoutEvaluating {
		panic(fmt.Errorf("bridge: %w", ErrReentrantLayout))
	}
	if c.layoutRequested {
		return
	}
	c.layoutRequested = true
	c.schedule()
}

// RequestDraw schedules a draw pass.
// Panics if called while a layout or draw pass is running.
func (c *RootElementContext) RequestDraw() {
	if c.layoutEvaluating || c.drawEvaluating {
		panic(fmt.Errorf("bridge: %w", ErrReentrantDraw))
	}
	if c.drawRequested {
		return
	}
	c.drawRequested = true
	c.schedule()
}

func (c *RootElementContext) schedule() {
	if c.cancelEvaluate != nil || c.disconnected {
		return
	}
	c.cancelEvaluate = c.scheduler.Defer(c.evaluate)
}

// evaluate runs the pending layout and draw passes.
func (c *RootElementContext) evaluate() {
	c.cancelEvaluate = nil
	if c.layoutRequested {
		c.layoutRequested = false
		c.evaluateLayout()
		c.drawRequested = true
	}
	if c.drawRequested {
		c.drawRequested = false
		c.evaluateDraw()
	}
}

func (c *RootElementContext) evaluateLayout() {
	c.layoutEvaluating = true
	defer func() { c.layoutEvaluating = false }()
	vp := c.viewport
	debug.Log("root: layout %vx%v", vp.Width, vp.Height)
	c.child.Layout(vp.Left, vp.Top, vp.Width, vp.Height)
}

func (c *RootElementContext) evaluateDraw() {
	c.drawEvaluating = true
	defer func() { c.drawEvaluating = false }()
	vp := c.viewport
	ctx := c.canvas
	ctx.Save()
	ctx.Scale(c.dpr, c.dpr)
	if c.clear != nil {
		ctx.SetFillColor(*c.clear)
		ctx.FillRect(vp.Left, vp.Top, vp.Width, vp.Height)
	} else {
		ctx.ClearRect(vp.Left, vp.Top, vp.Width, vp.Height)
	}
	drawElementTree(ctx, c.child, c, vp)
	ctx.Restore()
}

// Timer calls handler every animation frame with the time elapsed since
// registration. With a non-negative duration the last call receives exactly
// duration and the timer is removed.
func (c *RootElementContext) Timer(handler TimerHandler, duration time.Duration) TimerID {
	id := c.nextTimerID
	c.nextTimerID++
	c.timers[id] = &timer{
		handler:  handler,
		start:    c.scheduler.Now(),
		duration: duration,
	}
	debug.Log("root: timer %d started, duration %v", id, duration)
	if c.cancelFrame == nil && !c.disconnected {
		c.cancelFrame = c.scheduler.RequestFrame(c.tick)
	}
	return id
}

// ClearTimer removes a timer. The frame loop stops with the last timer.
func (c *RootElementContext) ClearTimer(id TimerID) {
	delete(c.timers, id)
	if len(c.timers) == 0 && c.cancelFrame != nil {
		c.cancelFrame()
		c.cancelFrame = nil
	}
}

func (c *RootElementContext) tick(now time.Time) {
	c.cancelFrame = nil
	ids := make([]TimerID, 0, len(c.timers))
	for id := range c.timers {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	for _, id := range ids {
		t, ok := c.timers[id]
		if !ok {
			// Cleared by an earlier handler this frame.
			continue
		}
		if now.Before(t.start) {
			t.start = now
		}
		elapsed := now.Sub(t.start)
		if t.duration >= 0 && elapsed >= t.duration {
			delete(c.timers, id)
			debug.Log("root: timer %d finished", id)
			t.handler(t.duration, c)
		} else {
			t.handler(elapsed, c)
		}
	}
	if len(c.timers) > 0 && c.cancelFrame == nil && !c.disconnected {
		c.cancelFrame = c.scheduler.RequestFrame(c.tick)
	}
}

// SetViewport sets the box the root child is laid out in and requests a
// layout.
func (c *RootElementContext) SetViewport(vp LayoutBox) {
	c.viewport = vp
	c.RequestLayout()
}

// Viewport returns the box the root child is laid out in.
func (c *RootElementContext) Viewport() LayoutBox {
	return c.viewport
}

// DevicePixelRatio returns the device pixels per logical pixel.
func (c *RootElementContext) DevicePixelRatio() float32 {
	return c.dpr
}

// disconnect cancels pending passes and the frame loop.
func (c *RootElementContext) disconnect() {
	c.disconnected = true
	if c.cancelEvaluate != nil {
		c.cancelEvaluate()
		c.cancelEvaluate = nil
	}
	if c.cancelFrame != nil {
		c.cancelFrame()
		c.cancelFrame = nil
	}
}
