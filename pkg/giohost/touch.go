package giohost

import (
	"sort"

	"gioui.org/io/pointer"

	bridge "github.com/perigean/bridge-sub001"
)

type touchPhase uint8

const (
	phaseNone touchPhase = iota
	phaseStart
	phaseMove
	phaseEnd
	phaseCancel
)

func (p touchPhase) String() string {
	switch p {
	case phaseStart:
		return "start"
	case phaseMove:
		return "move"
	case phaseEnd:
		return "end"
	case phaseCancel:
		return "cancel"
	}
	return "none"
}

// touchTracker converts Gio pointer events into the full active touch set a
// bridge.RootLayout expects.
type touchTracker struct {
	active map[pointer.ID]bridge.Touch
}

func newTouchTracker() *touchTracker {
	return &touchTracker{active: make(map[pointer.ID]bridge.Touch)}
}

// apply updates the active set from e, whose position is in device pixels,
// and returns the phase to dispatch with the touches active afterwards.
func (t *touchTracker) apply(e pointer.Event, pxPerDp float32) (touchPhase, *bridge.TouchEvent) {
	if pxPerDp <= 0 {
		pxPerDp = 1
	}
	touch := bridge.Touch{
		ID: bridge.TouchID(e.PointerID),
		X:  e.Position.X / pxPerDp,
		Y:  e.Position.Y / pxPerDp,
	}
	var phase touchPhase
	switch e.Type {
	case pointer.Press:
		_, seen := t.active[e.PointerID]
		t.active[e.PointerID] = touch
		phase = phaseStart
		if seen {
			phase = phaseMove
		}
	case pointer.Drag:
		if _, ok := t.active[e.PointerID]; !ok {
			return phaseNone, nil
		}
		t.active[e.PointerID] = touch
		phase = phaseMove
	case pointer.Release:
		if _, ok := t.active[e.PointerID]; !ok {
			return phaseNone, nil
		}
		delete(t.active, e.PointerID)
		phase = phaseEnd
	case pointer.Cancel:
		if len(t.active) == 0 {
			return phaseNone, nil
		}
		// Gio cancels every pointer of the gesture at once.
		for id := range t.active {
			delete(t.active, id)
		}
		phase = phaseCancel
	default:
		return phaseNone, nil
	}
	return phase, &bridge.TouchEvent{Touches: t.touches()}
}

// touches returns the active set ordered by id.
func (t *touchTracker) touches() []bridge.Touch {
	ts := make([]bridge.Touch, 0, len(t.active))
	for _, touch := range t.active {
		ts = append(ts, touch)
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].ID < ts[j].ID })
	return ts
}
