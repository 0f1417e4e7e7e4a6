package bridge

import (
	"strings"
	"testing"
	"time"
)

func TestManualScheduler_Flush(t *testing.T) {
	s := NewManualScheduler(testEpoch)
	var order []string
	s.Defer(func() {
		order = append(order, "a")
		s.Defer(func() { order = append(order, "c") })
	})
	cancel := s.Defer(func() { order = append(order, "x") })
	s.Defer(func() { order = append(order, "b") })
	cancel()

	s.Flush()
	if got := strings.Join(order, ""); got != "abc" {
		t.Errorf("order = %s, want abc", got)
	}
	if s.PendingDeferred() != 0 {
		t.Error("deferred callbacks left after Flush")
	}
}

func TestManualScheduler_Frame(t *testing.T) {
	s := NewManualScheduler(testEpoch)
	var seen []time.Time
	var again func(time.Time)
	again = func(now time.Time) {
		seen = append(seen, now)
		s.RequestFrame(again)
	}
	s.RequestFrame(again)
	deferredRan := false
	s.RequestFrame(func(time.Time) {
		s.Defer(func() { deferredRan = true })
	})

	s.Frame(10 * time.Millisecond)
	if len(seen) != 1 || !seen[0].Equal(testEpoch.Add(10*time.Millisecond)) {
		t.Fatalf("seen = %v", seen)
	}
	if !deferredRan {
		t.Error("work deferred by a frame callback should run in the same frame")
	}
	if s.PendingFrames() != 1 {
		t.Errorf("PendingFrames() = %d, want the re-request only", s.PendingFrames())
	}

	s.Advance(time.Second)
	if !s.Now().Equal(testEpoch.Add(time.Second + 10*time.Millisecond)) {
		t.Errorf("Now() = %v", s.Now())
	}
}
