package bridge

import (
	"errors"
	"image/color"
	"testing"
	"time"
)

// fakeContext is an ElementContext that counts requests.
type fakeContext struct {
	layouts int
	draws   int
	timers  map[TimerID]time.Duration
	nextID  TimerID
}

func newFakeContext() *fakeContext {
	return &fakeContext{timers: make(map[TimerID]time.Duration)}
}

func (f *fakeContext) RequestLayout() { f.layouts++ }
func (f *fakeContext) RequestDraw() { f.draws++ }

func (f *fakeContext) Timer(_ TimerHandler, d time.Duration) TimerID {
	id := f.nextID
	f.nextID++
	f.timers[id] = d
	return id
}

func (f *fakeContext) ClearTimer(id TimerID) { delete(f.timers, id) }

// expectPanic fails the test unless fn panics with an error wrapping target.
func expectPanic(t *testing.T, target error, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("expected error panic, got %T: %v", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %v does not wrap %v", err, target)
		}
	}()
	fn()
}

var testRed = color.NRGBA{R: 255, A: 255}

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// newTestRoot returns a root over child with a 100x100 viewport, laid out and
// drawn once.
func newTestRoot(t *testing.T, child WPHPLayout, opts ...RootOption) (*RootLayout, *MockCanvas, *ManualScheduler) {
	t.Helper()
	canvas := NewMockCanvas()
	sched := NewManualScheduler(testEpoch)
	opts = append([]RootOption{
		WithScheduler(sched),
		WithViewport(LayoutBox{Width: 100, Height: 100}),
	}, opts...)
	root, err := NewRootLayout(canvas, child, opts...)
	if err != nil {
		t.Fatalf("NewRootLayout: %v", err)
	}
	sched.Flush()
	canvas.Reset()
	return root, canvas, sched
}

func touches(ts ...Touch) *TouchEvent {
	return &TouchEvent{Touches: ts}
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-4 && d > -1e-4
}

func approxPt(a, b Point) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

// countListener returns how many times l is registered on e.
func countListener(e *Element, l *DetachListener) int {
	n := 0
	for _, d := range e.detach {
		if d == l {
			n++
		}
	}
	return n
}
