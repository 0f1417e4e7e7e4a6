package bridge

import (
	"sort"
	"time"
)

// Scheduler is the host's callback scheduling facility. All callbacks run on
// the host's single event goroutine, never concurrently with each other or
// with touch dispatch.
type Scheduler interface {
	// Defer runs fn once, after the current callback returns.
	Defer(fn func()) (cancel func())
	// RequestFrame runs fn once, at the next animation frame.
	RequestFrame(fn func(now time.Time)) (cancel func())
	// Now returns the scheduler's clock.
	Now() time.Time
}

// ManualScheduler is a Scheduler driven explicitly by the caller. It is
// intended for tests and headless hosts.
type ManualScheduler struct {
	now      time.Time
	nextID   int
	deferred map[int]func()
	frames   map[int]func(time.Time)
}

var _ Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler returns a scheduler whose clock starts at start.
func NewManualScheduler(start time.Time) *ManualScheduler {
	return &ManualScheduler{
		now:      start,
		deferred: make(map[int]func()),
		frames:   make(map[int]func(time.Time)),
	}
}

func (m *ManualScheduler) Defer(fn func()) func() {
	id := m.nextID
	m.nextID++
	m.deferred[id] = fn
	return func() { delete(m.deferred, id) }
}

func (m *ManualScheduler) RequestFrame(fn func(time.Time)) func() {
	id := m.nextID
	m.nextID++
	m.frames[id] = fn
	return func() { delete(m.frames, id) }
}

func (m *ManualScheduler) Now() time.Time {
	return m.now
}

// Advance moves the clock forward by d.
func (m *ManualScheduler) Advance(d time.Duration) {
	m.now = m.now.Add(d)
}

// PendingDeferred returns the number of deferred callbacks waiting to run.
func (m *ManualScheduler) PendingDeferred() int {
	return len(m.deferred)
}

// PendingFrames returns the number of frame callbacks waiting to run.
func (m *ManualScheduler) PendingFrames() int {
	return len(m.frames)
}

// Flush runs deferred callbacks in registration order until none remain.
func (m *ManualScheduler) Flush() {
	for len(m.deferred) > 0 {
		id := lowestKey(m.deferred)
		fn := m.deferred[id]
		delete(m.deferred, id)
		fn()
	}
}

// Frame advances the clock by d, runs the frame callbacks registered before
// the call, then flushes deferred callbacks.
func (m *ManualScheduler) Frame(d time.Duration) {
	m.now = m.now.Add(d)
	pending := m.frames
	m.frames = make(map[int]func(time.Time))
	ids := make([]int, 0, len(pending))
	for id := range pending {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		pending[id](m.now)
	}
	m.Flush()
}

func lowestKey[V any](m map[int]V) int {
	first := true
	low := 0
	for k := range m {
		if first || k < low {
			low = k
			first = false
		}
	}
	return low
}
