package bridge

import (
	"fmt"
	"math"
	"sort"

	"github.com/perigean/bridge-sub001/internal/debug"
)

// RootLayout connects a WPHP tree to a Canvas, a Scheduler and the platform
// touch event source. The host calls TouchStart, TouchMove, TouchEnd and
// TouchCancel with the full set of touches active after each event, and
// Resize when the drawing surface changes size.
type RootLayout struct {
	ctx *RootElementContext

	touchTargets map[TouchID]touchTarget
	detached     *DetachListener
}

// NewRootLayout returns a root for child drawing into canvas. A layout pass
// is requested immediately.
func NewRootLayout(canvas Canvas, child WPHPLayout, opts ...RootOption) (*RootLayout, error) {
	if canvas == nil {
		return nil, fmt.Errorf("canvas must not be nil")
	}
	if child == nil {
		return nil, fmt.Errorf("root child must not be nil")
	}
	r := &RootLayout{
		ctx: &RootElementContext{
			child:  child,
			canvas: canvas,
			dpr:    1,
			timers: make(map[TimerID]*timer),
		},
		touchTargets: make(map[TouchID]touchTarget),
	}
	r.detached = NewDetachListener(r.targetDetached)
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	if r.ctx.scheduler == nil {
		return nil, fmt.Errorf("a scheduler is required; use WithScheduler")
	}
	r.ctx.RequestLayout()
	return r, nil
}

// Context returns the element context handlers in this tree receive.
func (r *RootLayout) Context() *RootElementContext {
	return r.ctx
}

// Child returns the root of the element tree.
func (r *RootLayout) Child() WPHPLayout {
	return r.ctx.child
}

// Resize updates the backing store for a drawing surface of width x height
// logical pixels at dpr device pixels per logical pixel, then sets the
// viewport to match.
func (r *RootLayout) Resize(width, height, dpr float32) {
	if dpr <= 0 {
		dpr = 1
	}
	r.ctx.dpr = dpr
	if bs, ok := r.ctx.canvas.(BackingStore); ok {
		bs.SetBackingSize(int(math.Ceil(float64(width*dpr))), int(math.Ceil(float64(height*dpr))))
	}
	debug.Log("root: resize %vx%v @%v", width, height, dpr)
	r.ctx.SetViewport(LayoutBox{Width: width, Height: height})
}

// Disconnect stops scheduling and ignores further touch events.
func (r *RootLayout) Disconnect() {
	r.ctx.disconnect()
}

// TouchStart claims every touch in evt that is not yet tracked. Touches that
// hit no interactive node are left to the platform. PreventDefault is called
// on evt if any touch in it is claimed by a node.
func (r *RootLayout) TouchStart(evt *TouchEvent) {
	if r.ctx.disconnected {
		return
	}
	prevent := false
	for _, t := range evt.Touches {
		if target, ok := r.touchTargets[t.ID]; ok {
			if target.kind != targetRoot {
				prevent = true
			}
			continue
		}
		p := t.Point()
		el := findTouchTarget(r.ctx.child, p)
		if el == nil {
			r.touchTargets[t.ID] = touchTarget{kind: targetRoot}
			continue
		}
		prevent = true
		r.touchTargets[t.ID] = touchTarget{kind: targetNode, el: el}
		el.AddDetachListener(r.detached)
		debug.Log("root: touch %d claimed at %v", t.ID, p)
		el.touch.begin(t.ID, p, r.ctx, el.State)
	}
	if prevent {
		evt.PreventDefault()
	}
}

// TouchMove forwards the touches of evt to their targets, one call per target.
// Panics if a touch was never started.
func (r *RootLayout) TouchMove(evt *TouchEvent) {
	if r.ctx.disconnected {
		return
	}
	prevent := false
	var batches []touchBatch
	for _, t := range evt.Touches {
		target, ok := r.touchTargets[t.ID]
		if !ok {
			panic(fmt.Errorf("bridge: touch move %d: %w", t.ID, ErrUnknownTouch))
		}
		switch target.kind {
		case targetRoot:
		case targetNone:
			prevent = true
		case targetNode:
			prevent = true
			batches = appendToBatch(batches, target.el, TouchMove{ID: t.ID, P: t.Point()})
		}
	}
	for _, b := range batches {
		b.el.touch.move(b.ts, r.ctx, b.el.State)
	}
	if prevent {
		evt.PreventDefault()
	}
}

// TouchEnd ends every tracked touch missing from evt, which holds the touches
// still active. Panics if evt holds a touch that was never started.
func (r *RootLayout) TouchEnd(evt *TouchEvent) {
	if r.ctx.disconnected {
		return
	}
	remaining := make(map[TouchID]bool, len(evt.Touches))
	for _, t := range evt.Touches {
		if _, ok := r.touchTargets[t.ID]; !ok {
			panic(fmt.Errorf("bridge: touch end %d: %w", t.ID, ErrUnknownTouch))
		}
		remaining[t.ID] = true
	}
	var ended []TouchID
	for id := range r.touchTargets {
		if !remaining[id] {
			ended = append(ended, id)
		}
	}
	sort.Slice(ended, func(i, j int) bool { return ended[i] < ended[j] })

	prevent := false
	for _, id := range ended {
		target := r.touchTargets[id]
		delete(r.touchTargets, id)
		switch target.kind {
		case targetRoot:
		case targetNone:
			prevent = true
		case targetNode:
			prevent = true
			if !r.targets(target.el) {
				target.el.RemoveDetachListener(r.detached)
			}
			target.el.touch.end(id, r.ctx, target.el.State)
		}
	}
	if prevent {
		evt.PreventDefault()
	}
}

// TouchCancel is handled exactly like TouchEnd.
func (r *RootLayout) TouchCancel(evt *TouchEvent) {
	r.TouchEnd(evt)
}

// targets reports whether any live touch is routed to el.
func (r *RootLayout) targets(el *Element) bool {
	for _, t := range r.touchTargets {
		if t.kind == targetNode && t.el == el {
			return true
		}
	}
	return false
}

// targetDetached degrades the touches routed to e so their remaining events
// are dropped.
func (r *RootLayout) targetDetached(e *Element, _ any) {
	found := false
	for id, t := range r.touchTargets {
		if t.kind == targetNode && t.el == e {
			r.touchTargets[id] = touchTarget{kind: targetNone}
			debug.Log("root: touch %d target detached", id)
			found = true
		}
	}
	if !found {
		panic(fmt.Errorf("bridge: root detach: %w", ErrDetachBookkeeping))
	}
	e.RemoveDetachListener(r.detached)
}
