// Package loop runs scheduled tasks and marshalled calls on one goroutine,
// the timeline every sequencer call must happen on.
package loop

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/workout-coach-cli/internal/ports"
)

var ErrStopped = errors.New("loop stopped")

// Loop runs calls in the order they were queued. The call queue is
// unbounded so Do never blocks and never reorders.
type Loop struct {
	wake  chan struct{}
	done  chan struct{}
	start time.Time

	mu     sync.Mutex
	calls  []func()
	nextID uint64
	timers map[uint64]*timerTask
	closed bool
}

var _ ports.Scheduler = (*Loop)(nil)

type timerTask struct {
	id        uint64
	loop      *Loop
	timer     *time.Timer
	cancelled atomic.Bool
}

func New() *Loop {
	return &Loop{
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
		start:  time.Now(),
		timers: map[uint64]*timerTask{},
	}
}

// Run executes queued calls until ctx is cancelled or Close is called.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			l.Close()
			return ctx.Err()
		case <-l.done:
			return nil
		case <-l.wake:
		}

		for {
			call, ok := l.next()
			if !ok {
				break
			}
			call()
		}
	}
}

// Do queues fn to run on the loop goroutine. It is safe to call from any
// goroutine, including the loop itself.
func (l *Loop) Do(fn func()) {
	l.enqueue(fn)
}

// Call runs fn on the loop and waits for it to finish.
func (l *Loop) Call(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	finished := make(chan struct{})
	if !l.enqueue(func() {
		defer close(finished)
		fn()
	}) {
		return ErrStopped
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (l *Loop) enqueue(fn func()) bool {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return false
	}
	l.calls = append(l.calls, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
	return true
}

func (l *Loop) next() (func(), bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.closed || len(l.calls) == 0 {
		return nil, false
	}
	call := l.calls[0]
	l.calls[0] = nil
	l.calls = l.calls[1:]
	return call, true
}

func (l *Loop) Schedule(delay time.Duration, task func()) ports.TaskHandle {
	if delay < 0 {
		delay = 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.nextID++
	t := &timerTask{id: l.nextID, loop: l}
	if l.closed {
		t.cancelled.Store(true)
		return t
	}

	l.timers[t.id] = t
	t.timer = time.AfterFunc(delay, func() {
		l.Do(func() {
			if t.cancelled.Swap(true) {
				return
			}
			l.forget(t.id)
			task()
		})
	})

	return t
}

func (l *Loop) CancelAll() {
	l.mu.Lock()
	timers := l.timers
	l.timers = map[uint64]*timerTask{}
	l.mu.Unlock()

	for _, t := range timers {
		t.cancelled.Store(true)
		t.timer.Stop()
	}
}

// Elapsed is the wall time since the loop was created.
func (l *Loop) Elapsed() time.Duration {
	return time.Since(l.start)
}

func (l *Loop) Close() {
	l.mu.Lock()
	if l.closed {
		l.mu.Unlock()
		return
	}
	l.closed = true
	l.calls = nil
	close(l.done)
	l.mu.Unlock()

	l.CancelAll()
}

func (l *Loop) forget(id uint64) {
	l.mu.Lock()
	delete(l.timers, id)
	l.mu.Unlock()
}

func (t *timerTask) Cancel() bool {
	if t.cancelled.Swap(true) {
		return false
	}
	if t.timer != nil {
		t.timer.Stop()
	}
	t.loop.forget(t.id)
	return true
}
