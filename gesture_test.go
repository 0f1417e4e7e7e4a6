package bridge

import "testing"

type gestureLog struct {
	taps      []Point
	pans      [][]PanPoint
	panBegins int
	panEnds   int
}

func newGestureBox() (*BoxLayout, *gestureLog) {
	b := Box(100, 100)
	log := &gestureLog{}
	b.OnTap(func(p Point, _ ElementContext, _ any) { log.taps = append(log.taps, p) })
	b.OnPan(func(ps []PanPoint, _ ElementContext, _ any) {
		cp := make([]PanPoint, len(ps))
		copy(cp, ps)
		log.pans = append(log.pans, cp)
	})
	b.OnPanBegin(func(ElementContext, any) { log.panBegins++ })
	b.OnPanEnd(func(ElementContext, any) { log.panEnds++ })
	return b, log
}

func TestGesture_Tap(t *testing.T) {
	type tc struct {
		moves    []Point
		expected int
	}

	tests := map[string]tc{
		"no movement":              {expected: 1},
		"small wobble":             {moves: []Point{Pt(12, 10), Pt(20, 15)}, expected: 1},
		"just under the threshold": {moves: []Point{Pt(25.9, 10)}, expected: 1},
		"threshold reached":        {moves: []Point{Pt(26, 10)}, expected: 0},
		"returns after crossing":   {moves: []Point{Pt(30, 10), Pt(10, 10)}, expected: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b, log := newGestureBox()
			ec := newFakeContext()
			b.touch.begin(1, Pt(10, 10), ec, nil)
			for _, p := range tt.moves {
				b.touch.move([]TouchMove{{ID: 1, P: p}}, ec, nil)
			}
			b.touch.end(1, ec, nil)

			if len(log.taps) != tt.expected {
				t.Fatalf("taps = %v, want %d", log.taps, tt.expected)
			}
			if tt.expected == 1 && log.taps[0] != Pt(10, 10) {
				t.Errorf("tap at %v, want the start point (10,10)", log.taps[0])
			}
		})
	}
}

func TestGesture_PanSequence(t *testing.T) {
	b, log := newGestureBox()
	ec := newFakeContext()

	b.touch.begin(1, Pt(0, 0), ec, nil)
	b.touch.move([]TouchMove{{ID: 1, P: Pt(5, 0)}}, ec, nil)
	if len(log.pans) != 0 || log.panBegins != 0 {
		t.Fatal("touch under threshold should not pan")
	}

	b.touch.move([]TouchMove{{ID: 1, P: Pt(20, 0)}}, ec, nil)
	if log.panBegins != 1 {
		t.Fatalf("panBegins = %d, want 1", log.panBegins)
	}
	if len(log.pans) != 1 || log.pans[0][0] != (PanPoint{Prev: Pt(0, 0), Curr: Pt(20, 0)}) {
		t.Fatalf("first pan = %v, want start to current", log.pans)
	}

	b.touch.move([]TouchMove{{ID: 1, P: Pt(30, 5)}}, ec, nil)
	if got := log.pans[1][0]; got != (PanPoint{Prev: Pt(20, 0), Curr: Pt(30, 5)}) {
		t.Fatalf("second pan = %v", got)
	}
	if d := log.pans[1][0].Delta(); d != Pt(10, 5) {
		t.Errorf("Delta() = %v, want (10,5)", d)
	}

	b.touch.end(1, ec, nil)
	if log.panEnds != 1 {
		t.Errorf("panEnds = %d, want 1", log.panEnds)
	}
	if len(log.taps) != 0 {
		t.Errorf("a pan must not also tap, got %v", log.taps)
	}
}

func TestGesture_MultiTouchPanOrdering(t *testing.T) {
	b, log := newGestureBox()
	ec := newFakeContext()

	b.touch.begin(7, Pt(0, 0), ec, nil)
	b.touch.begin(3, Pt(50, 50), ec, nil)
	b.touch.move([]TouchMove{{ID: 7, P: Pt(20, 0)}}, ec, nil)
	b.touch.move([]TouchMove{{ID: 3, P: Pt(50, 70)}, {ID: 7, P: Pt(25, 0)}}, ec, nil)

	if log.panBegins != 1 {
		t.Fatalf("panBegins = %d, want 1 for the whole gesture", log.panBegins)
	}
	last := log.pans[len(log.pans)-1]
	if len(last) != 2 {
		t.Fatalf("last pan has %d touches, want 2", len(last))
	}
	if last[0].Curr != Pt(25, 0) || last[1].Curr != Pt(50, 70) {
		t.Errorf("pans should be ordered by when they crossed the threshold, got %v", last)
	}

	b.touch.end(7, ec, nil)
	if log.panEnds != 0 {
		t.Fatal("panEnd fired while a pan touch remains")
	}
	b.touch.end(3, ec, nil)
	if log.panEnds != 1 {
		t.Errorf("panEnds = %d, want 1", log.panEnds)
	}
}

func TestGesture_TapDuringPan(t *testing.T) {
	b, log := newGestureBox()
	ec := newFakeContext()

	b.touch.begin(1, Pt(0, 0), ec, nil)
	b.touch.move([]TouchMove{{ID: 1, P: Pt(40, 0)}}, ec, nil)
	b.touch.begin(2, Pt(60, 60), ec, nil)
	b.touch.end(2, ec, nil)

	if len(log.taps) != 1 || log.taps[0] != Pt(60, 60) {
		t.Errorf("taps = %v, want [(60,60)]", log.taps)
	}
	if log.panEnds != 0 {
		t.Error("tap must not end the pan")
	}
}

func TestGesture_ResetWhenDetachedMidTouch(t *testing.T) {
	pad := Fill()
	var begins int
	var pans [][]PanPoint
	pad.OnPanBegin(func(ElementContext, any) { begins++ })
	pad.OnPan(func(ps []PanPoint, _ ElementContext, _ any) { pans = append(pans, ps) })
	sw := Switch(0, pad, Fill())
	root, _, sched := newTestRoot(t, sw)

	root.TouchStart(touches(Touch{ID: 0, X: 10, Y: 10}))
	root.TouchMove(touches(Touch{ID: 0, X: 40, Y: 10}))
	sw.Set(1, root.Context())
	sched.Flush()
	root.TouchEnd(touches())
	sw.Set(0, root.Context())
	sched.Flush()

	// The id is reused once the platform has reported its end.
	root.TouchStart(touches(Touch{ID: 0, X: 10, Y: 50}))
	root.TouchMove(touches(Touch{ID: 0, X: 10, Y: 80}))

	if begins != 2 {
		t.Errorf("panBegins = %d, want 2", begins)
	}
	last := pans[len(pans)-1]
	if len(last) != 1 || last[0] != (PanPoint{Prev: Pt(10, 50), Curr: Pt(10, 80)}) {
		t.Errorf("last pan = %v, want only the new touch", last)
	}
}

func TestGesture_ProtocolViolations(t *testing.T) {
	type tc struct {
		run    func(b *BoxLayout, ec ElementContext)
		target error
	}

	tests := map[string]tc{
		"duplicate begin": {
			run: func(b *BoxLayout, ec ElementContext) {
				b.touch.begin(1, Pt(0, 0), ec, nil)
				b.touch.begin(1, Pt(0, 0), ec, nil)
			},
			target: ErrDuplicateTouch,
		},
		"move of unknown touch": {
			run: func(b *BoxLayout, ec ElementContext) {
				b.touch.move([]TouchMove{{ID: 9, P: Pt(1, 1)}}, ec, nil)
			},
			target: ErrUnknownTouch,
		},
		"end of unknown touch": {
			run: func(b *BoxLayout, ec ElementContext) {
				b.touch.end(9, ec, nil)
			},
			target: ErrUnknownTouch,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			b, _ := newGestureBox()
			expectPanic(t, tt.target, func() { tt.run(b, newFakeContext()) })
		})
	}
}
