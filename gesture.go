package bridge

import "fmt"

// PanThreshold is the distance in device independent pixels a touch must
// move from its start before it is classified as a pan.
const PanThreshold = 16

type panEntry struct {
	id TouchID
	PanPoint
}

// TouchGesture turns a node's raw touch stream into tap and pan callbacks.
// A touch is a tap candidate until it moves PanThreshold from its start, after
// which it is a pan until it ends.
type TouchGesture struct {
	active map[TouchID]Point
	// pans is kept in the order touches became pans.
	pans []panEntry

	onTap      OnTapHandler
	onPan      OnPanHandler
	onPanBegin OnPanBeginHandler
	onPanEnd   OnPanEndHandler
}

func newTouchGesture() *TouchGesture {
	return &TouchGesture{active: make(map[TouchID]Point)}
}

func (g *TouchGesture) panIndex(id TouchID) int {
	for i := range g.pans {
		if g.pans[i].id == id {
			return i
		}
	}
	return -1
}

func (g *TouchGesture) begin(id TouchID, p Point, ec ElementContext, state any) {
	if _, ok := g.active[id]; ok || g.panIndex(id) >= 0 {
		panic(fmt.Errorf("bridge: gesture begin %d: %w", id, ErrDuplicateTouch))
	}
	g.active[id] = p
}

func (g *TouchGesture) move(ts []TouchMove, ec ElementContext, state any) {
	for _, t := range ts {
		if start, ok := g.active[t.ID]; ok {
			if Distance(start, t.P) < PanThreshold {
				continue
			}
			delete(g.active, t.ID)
			if len(g.pans) == 0 && g.onPanBegin != nil {
				g.onPanBegin(ec, state)
			}
			g.pans = append(g.pans, panEntry{id: t.ID, PanPoint: PanPoint{Prev: start, Curr: start}})
		}
		i := g.panIndex(t.ID)
		if i < 0 {
			panic(fmt.Errorf("bridge: gesture move %d: %w", t.ID, ErrUnknownTouch))
		}
		g.pans[i].Prev = g.pans[i].Curr
		g.pans[i].Curr = t.P
	}
	if len(g.pans) > 0 && g.onPan != nil {
		ps := make([]PanPoint, len(g.pans))
		for i := range g.pans {
			ps[i] = g.pans[i].PanPoint
		}
		g.onPan(ps, ec, state)
	}
}

func (g *TouchGesture) end(id TouchID, ec ElementContext, state any) {
	if start, ok := g.active[id]; ok {
		delete(g.active, id)
		if g.onTap != nil {
			g.onTap(start, ec, state)
		}
		return
	}
	i := g.panIndex(id)
	if i < 0 {
		panic(fmt.Errorf("bridge: gesture end %d: %w", id, ErrUnknownTouch))
	}
	g.pans = append(g.pans[:i:i], g.pans[i+1:]...)
	if len(g.pans) == 0 && g.onPanEnd != nil {
		g.onPanEnd(ec, state)
	}
}

// detached drops touches that were in flight when the node left the tree.
// Their ends are never delivered, so the next gesture starts from scratch.
func (g *TouchGesture) detached(*Element, any) {
	clear(g.active)
	g.pans = nil
}

// touchGesture returns the node's gesture recognizer, installing it on first
// use.
func (e *Element) touchGesture() *TouchGesture {
	if e.gesture == nil {
		g := newTouchGesture()
		e.onTouch(g.begin, g.move, g.end)
		e.OnDetach(g.detached)
		e.gesture = g
	}
	return e.gesture
}

// OnTap registers h to receive the start point of every touch that lifts
// before moving PanThreshold.
func (e *Element) OnTap(h OnTapHandler) {
	g := e.touchGesture()
	if g.onTap != nil {
		panic(fmt.Errorf("bridge: onTap: %w", ErrDoubleRegistration))
	}
	g.onTap = h
}

// OnPan registers h to receive every panning touch, oldest first, once per
// move batch.
func (e *Element) OnPan(h OnPanHandler) {
	g := e.touchGesture()
	if g.onPan != nil {
		panic(fmt.Errorf("bridge: onPan: %w", ErrDoubleRegistration))
	}
	g.onPan = h
}

// OnPanBegin registers h to run when the first touch of a gesture becomes a
// pan.
func (e *Element) OnPanBegin(h OnPanBeginHandler) {
	g := e.touchGesture()
	if g.onPanBegin != nil {
		panic(fmt.Errorf("bridge: onPanBegin: %w", ErrDoubleRegistration))
	}
	g.onPanBegin = h
}

// OnPanEnd registers h to run when the last panning touch lifts.
func (e *Element) OnPanEnd(h OnPanEndHandler) {
	g := e.touchGesture()
	if g.onPanEnd != nil {
		panic(fmt.Errorf("bridge: onPanEnd: %w", ErrDoubleRegistration))
	}
	g.onPanEnd = h
}
