package bridge

import "time"

// TouchID identifies a touch for its lifetime. Identifiers are reused only
// after the touch has ended.
type TouchID int

// Touch is one active touch as reported by the platform, in logical pixels.
type Touch struct {
	ID TouchID
	X  float32
	Y  float32
}

// Point returns the touch position.
func (t Touch) Point() Point {
	return Pt(t.X, t.Y)
}

// TouchEvent carries the full set of touches active after a platform event.
type TouchEvent struct {
	Touches []Touch

	prevented bool
}

// PreventDefault suppresses the platform's default handling of the event.
func (e *TouchEvent) PreventDefault() {
	e.prevented = true
}

// DefaultPrevented reports whether PreventDefault was called.
func (e *TouchEvent) DefaultPrevented() bool {
	return e.prevented
}

// TouchMove is a touch position delivered to a target's move handler.
type TouchMove struct {
	ID TouchID
	P  Point
}

// PanPoint is the previous and current position of one panning touch.
type PanPoint struct {
	Prev Point
	Curr Point
}

// Delta returns Curr - Prev.
func (p PanPoint) Delta() Point {
	return p.Curr.Sub(p.Prev)
}

// TimerID identifies a timer registered with ElementContext.Timer.
type TimerID int

// Forever is the duration of a timer that runs until cleared.
const Forever time.Duration = -1

// TimerHandler receives the time elapsed since the timer started.
type TimerHandler func(elapsed time.Duration, ec ElementContext)

// ElementContext is the callback surface handlers use to ask the tree for
// work.
type ElementContext interface {
	// RequestLayout schedules a layout pass followed by a draw.
	RequestLayout()
	// RequestDraw schedules a draw pass.
	RequestDraw()
	// Timer calls handler every frame until duration has elapsed. The last
	// call receives exactly duration. Pass Forever to run until cleared.
	Timer(handler TimerHandler, duration time.Duration) TimerID
	// ClearTimer stops a timer. Unknown ids are ignored.
	ClearTimer(id TimerID)
}

type targetKind uint8

const (
	// targetNode routes the touch to el.
	targetNode targetKind = iota
	// targetRoot means no node claimed the touch.
	targetRoot
	// targetNone means the claiming node was detached mid-touch.
	targetNone
)

// touchTarget is an entry in a touch routing table.
type touchTarget struct {
	kind targetKind
	el   *Element
}

// touchBatch groups the touches of one move event by target, in order of
// first appearance.
type touchBatch struct {
	el *Element
	ts []TouchMove
}

func appendToBatch(batches []touchBatch, el *Element, t TouchMove) []touchBatch {
	for i := range batches {
		if batches[i].el == el {
			batches[i].ts = append(batches[i].ts, t)
			return batches
		}
	}
	return append(batches, touchBatch{el: el, ts: []TouchMove{t}})
}
