package bridge

import (
	"context"
	"sync"
	"time"

	"github.com/perigean/bridge-sub001/internal/debug"
)

// Loop is a Scheduler that owns a goroutine-confined event loop. Work from
// other goroutines enters through QueueUpdate or Watch; Defer and
// RequestFrame must only be called from callbacks already running on the
// loop.
type Loop struct {
	frameDuration time.Duration
	queueSize     int
	clock         func() time.Time

	queue    chan func()
	stopCh   chan struct{}
	stopOnce sync.Once

	nextID   int
	deferred map[int]func()
	frames   map[int]func(time.Time)
}

var _ Scheduler = (*Loop)(nil)

// NewLoop returns a loop ready to Run.
func NewLoop(opts ...LoopOption) (*Loop, error) {
	l := &Loop{
		frameDuration: 16 * time.Millisecond,
		queueSize:     256,
		clock:         time.Now,
		stopCh:        make(chan struct{}),
		deferred:      make(map[int]func()),
		frames:        make(map[int]func(time.Time)),
	}
	for _, opt := range opts {
		if err := opt(l); err != nil {
			return nil, err
		}
	}
	l.queue = make(chan func(), l.queueSize)
	return l, nil
}

func (l *Loop) Defer(fn func()) func() {
	id := l.nextID
	l.nextID++
	l.deferred[id] = fn
	return func() { delete(l.deferred, id) }
}

func (l *Loop) RequestFrame(fn func(time.Time)) func() {
	id := l.nextID
	l.nextID++
	l.frames[id] = fn
	return func() { delete(l.frames, id) }
}

func (l *Loop) Now() time.Time {
	return l.clock()
}

// Run processes queued updates, deferred callbacks and animation frames until
// Stop is called or ctx is done. It returns ctx.Err() in the latter case.
func (l *Loop) Run(ctx context.Context) error {
	ticker := time.NewTicker(l.frameDuration)
	defer ticker.Stop()

	l.flush()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stopCh:
			return nil
		case fn := <-l.queue:
			fn()
			l.flush()
		case <-ticker.C:
			if len(l.frames) == 0 {
				continue
			}
			l.frame(l.clock())
		}
	}
}

// Stop makes Run return. Stop is idempotent and safe to call from any
// goroutine.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopCh) })
}

// QueueUpdate enqueues fn to run on the loop. Safe to call from any
// goroutine. Updates queued after Stop, or while the queue is full, are
// dropped.
func (l *Loop) QueueUpdate(fn func()) {
	select {
	case l.queue <- fn:
	case <-l.stopCh:
	default:
		debug.Log("loop: queue full, update dropped")
	}
}

// Watch calls fn on the loop for every value received on ch, until ch is
// closed or the loop stops.
func Watch[T any](l *Loop, ch <-chan T, fn func(T)) {
	go func() {
		for {
			select {
			case <-l.stopCh:
				return
			case v, ok := <-ch:
				if !ok {
					return
				}
				select {
				case l.queue <- func() { fn(v) }:
				case <-l.stopCh:
					return
				}
			}
		}
	}()
}

// frame runs the frame callbacks registered before now, then the work they
// deferred.
func (l *Loop) frame(now time.Time) {
	frames := l.frames
	l.frames = make(map[int]func(time.Time))
	for len(frames) > 0 {
		id := lowestKey(frames)
		fn := frames[id]
		delete(frames, id)
		fn(now)
	}
	l.flush()
}

// flush runs deferred callbacks, including ones they defer, in registration
// order.
func (l *Loop) flush() {
	for len(l.deferred) > 0 {
		id := lowestKey(l.deferred)
		fn := l.deferred[id]
		delete(l.deferred, id)
		fn()
	}
}
