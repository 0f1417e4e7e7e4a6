package bridge

import (
	"fmt"

	"github.com/perigean/bridge-sub001/internal/debug"
)

// DefaultZoomMax is the zoom cap of a ScrollLayout built without WithZoomMax.
const DefaultZoomMax = 10

// ScrollOption configures a ScrollLayout.
type ScrollOption func(*ScrollLayout)

// WithScroll sets the initial top-left of the visible window in content space.
func WithScroll(p Point) ScrollOption {
	return func(s *ScrollLayout) {
		s.scroll = p
	}
}

// WithZoom sets the initial zoom.
func WithZoom(zoom float32) ScrollOption {
	return func(s *ScrollLayout) {
		s.zoom = zoom
	}
}

// WithZoomMax sets the largest allowed zoom.
func WithZoomMax(zoomMax float32) ScrollOption {
	return func(s *ScrollLayout) {
		s.zoomMax = zoomMax
	}
}

type scrollTouch struct {
	prev Point
	curr Point
}

// ScrollLayout shows a self-sized scroller through a pannable, pinch-zoomable
// window. The scroller lives in its own coordinate space and is hidden from
// the generic tree walkers: ScrollLayout draws it and routes touches into it
// itself.
type ScrollLayout struct {
	Element
	scroller WSHSLayout
	scroll   Point
	zoom     float32
	zoomMax  float32

	touchTargets map[TouchID]touchTarget
	// touchScroll holds touches that drive scrolling, in parent space.
	touchScroll map[TouchID]*scrollTouch
	scrollOrder []TouchID
	detached    *DetachListener
}

var _ WPHPLayout = (*ScrollLayout)(nil)

// Scroll returns a WPHP viewport over child.
func Scroll(child WSHSLayout, opts ...ScrollOption) *ScrollLayout {
	s := &ScrollLayout{
		Element:      newElement(ContractWPHP, NoChild()),
		scroller:     child,
		zoom:         1,
		zoomMax:      DefaultZoomMax,
		touchTargets: make(map[TouchID]touchTarget),
		touchScroll:  make(map[TouchID]*scrollTouch),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.zoomMax <= 0 || s.zoom <= 0 {
		panic(fmt.Errorf("bridge: Scroll zoom %v, zoomMax %v must be positive: %w", s.zoom, s.zoomMax, ErrInvalidChild))
	}
	s.detached = NewDetachListener(s.targetDetached)
	s.OnDraw(s.draw)
	s.onTouch(s.touchBegin, s.touchMove, s.touchEnd)
	// The scroller is not a walked child, so forward our own detach into it.
	s.OnDetach(func(*Element, any) {
		callDetachListeners(s.scroller)
		s.resetTouches()
	})
	return s
}

// resetTouches forgets every live touch. The parent sends no end for touches
// that were in flight when this node left the tree.
func (s *ScrollLayout) resetTouches() {
	for _, t := range s.touchTargets {
		if t.kind == targetNode {
			t.el.RemoveDetachListener(s.detached)
		}
	}
	if len(s.touchTargets) > 0 {
		debug.Log("scroll: detached with %d live touches", len(s.touchTargets))
	}
	s.touchTargets = make(map[TouchID]touchTarget)
	s.touchScroll = make(map[TouchID]*scrollTouch)
	s.scrollOrder = nil
}

// Scroller returns the content node.
func (s *ScrollLayout) Scroller() WSHSLayout {
	return s.scroller
}

// ScrollOffset returns the top-left of the visible window in content space.
func (s *ScrollLayout) ScrollOffset() Point {
	return s.scroll
}

// Zoom returns the current zoom.
func (s *ScrollLayout) Zoom() float32 {
	return s.zoom
}

// SetScroll moves the visible window and requests a draw. The offset is
// clamped to the content.
func (s *ScrollLayout) SetScroll(p Point, ec ElementContext) {
	s.scroll = p
	s.clampScroll()
	ec.RequestDraw()
}

func (s *ScrollLayout) Layout(left, top, width, height float32) {
	s.Left = left
	s.Top = top
	s.Width = width
	s.Height = height
	s.scroller.Layout(0, 0)
	s.clampZoom()
	s.clampScroll()
}

// clampZoom grows zoom until the content covers the viewport, then caps it
// at zoomMax.
func (s *ScrollLayout) clampZoom() {
	sb := s.scroller.Base()
	before := s.zoom
	if sb.Width > 0 && sb.Width < s.Width/s.zoom {
		s.zoom = s.Width / sb.Width
	}
	if sb.Height > 0 && sb.Height < s.Height/s.zoom {
		s.zoom = s.Height / sb.Height
	}
	if s.zoom > s.zoomMax {
		s.zoom = s.zoomMax
	}
	if s.zoom != before {
		debug.Log("scroll: zoom clamped %v -> %v", before, s.zoom)
	}
}

func (s *ScrollLayout) clampScroll() {
	sb := s.scroller.Base()
	s.scroll.X = clamp(s.scroll.X, 0, max(0, sb.Width-s.Width/s.zoom))
	s.scroll.Y = clamp(s.scroll.Y, 0, max(0, sb.Height-s.Height/s.zoom))
}

// p2c maps a point in this node's parent space to scroller content space.
func (s *ScrollLayout) p2c(p Point) Point {
	return parentToContent(s.Origin(), s.scroll, s.zoom).Transform(p)
}

func (s *ScrollLayout) draw(ctx Canvas, box LayoutBox, ec ElementContext, _ LayoutBox, _ any) {
	ctx.Save()
	ctx.Translate(box.Left, box.Top)
	ctx.BeginPath()
	ctx.Rect(0, 0, box.Width, box.Height)
	ctx.Clip()
	ctx.Scale(s.zoom, s.zoom)
	ctx.Translate(-s.scroll.X, -s.scroll.Y)
	vp := LayoutBox{
		Left:   s.scroll.X,
		Top:    s.scroll.Y,
		Width:  box.Width / s.zoom,
		Height: box.Height / s.zoom,
	}
	drawElementTree(ctx, s.scroller, ec, vp)
	ctx.Restore()
}

func (s *ScrollLayout) touchBegin(id TouchID, p Point, ec ElementContext, _ any) {
	if _, ok := s.touchTargets[id]; ok {
		panic(fmt.Errorf("bridge: scroll begin %d: %w", id, ErrDuplicateTouch))
	}
	cp := s.p2c(p)
	target := findTouchTarget(s.scroller, cp)
	if target == nil {
		s.touchTargets[id] = touchTarget{kind: targetRoot}
		s.touchScroll[id] = &scrollTouch{prev: p, curr: p}
		s.scrollOrder = append(s.scrollOrder, id)
		return
	}
	s.touchTargets[id] = touchTarget{kind: targetNode, el: target}
	target.AddDetachListener(s.detached)
	target.touch.begin(id, cp, ec, target.State)
}

func (s *ScrollLayout) touchMove(ts []TouchMove, ec ElementContext, _ any) {
	var forward []touchBatch
	for _, t := range ts {
		target, ok := s.touchTargets[t.ID]
		if !ok {
			panic(fmt.Errorf("bridge: scroll move %d: %w", t.ID, ErrUnknownTouch))
		}
		switch target.kind {
		case targetRoot:
			st, ok := s.touchScroll[t.ID]
			if !ok {
				panic(fmt.Errorf("bridge: scroll move %d has no scroll state: %w", t.ID, ErrUnknownTouch))
			}
			st.curr = t.P
		case targetNone:
		case targetNode:
			forward = appendToBatch(forward, target.el, t)
		}
	}

	s.updateScroll()

	// Forwarded points are mapped with the scroll and zoom just computed.
	for _, b := range forward {
		for i := range b.ts {
			b.ts[i].P = s.p2c(b.ts[i].P)
		}
		b.el.touch.move(b.ts, ec, b.el.State)
	}
	ec.RequestDraw()
}

// updateScroll applies the scroll-driving touches. One touch pans; two
// touches pan and pinch so the content under the previous midpoint stays
// under the current midpoint.
func (s *ScrollLayout) updateScroll() {
	switch len(s.scrollOrder) {
	case 1:
		t := s.touchScroll[s.scrollOrder[0]]
		s.scroll = s.scroll.Add(s.p2c(t.prev).Sub(s.p2c(t.curr)))
		s.clampScroll()
	case 2:
		t0 := s.touchScroll[s.scrollOrder[0]]
		t1 := s.touchScroll[s.scrollOrder[1]]
		anchor := s.p2c(Midpoint(t0.prev, t1.prev))
		if pd := Distance(t0.prev, t1.prev); pd > 0 {
			s.zoom *= Distance(t0.curr, t1.curr) / pd
			s.clampZoom()
		}
		cm := Midpoint(t0.curr, t1.curr)
		s.scroll = anchor.Sub(cm.Sub(s.Origin()).Div(s.zoom))
		s.clampScroll()
	}
	for _, st := range s.touchScroll {
		st.prev = st.curr
	}
}

func (s *ScrollLayout) touchEnd(id TouchID, ec ElementContext, _ any) {
	target, ok := s.touchTargets[id]
	if !ok {
		panic(fmt.Errorf("bridge: scroll end %d: %w", id, ErrUnknownTouch))
	}
	delete(s.touchTargets, id)
	switch target.kind {
	case targetRoot:
		delete(s.touchScroll, id)
		for i, sid := range s.scrollOrder {
			if sid == id {
				s.scrollOrder = append(s.scrollOrder[:i:i], s.scrollOrder[i+1:]...)
				break
			}
		}
	case targetNone:
	case targetNode:
		if !s.targets(target.el) {
			target.el.RemoveDetachListener(s.detached)
		}
		target.el.touch.end(id, ec, target.el.State)
	}
}

// targets reports whether any live touch is routed to el.
func (s *ScrollLayout) targets(el *Element) bool {
	for _, t := range s.touchTargets {
		if t.kind == targetNode && t.el == el {
			return true
		}
	}
	return false
}

func (s *ScrollLayout) targetDetached(e *Element, _ any) {
	found := false
	for id, t := range s.touchTargets {
		if t.kind == targetNode && t.el == e {
			s.touchTargets[id] = touchTarget{kind: targetNone}
			found = true
		}
	}
	if !found {
		panic(fmt.Errorf("bridge: scroll detach: %w", ErrDetachBookkeeping))
	}
	e.RemoveDetachListener(s.detached)
}
