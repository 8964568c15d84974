// Package manual is a virtual-time scheduler. Tasks only run when the
// caller advances the clock, which makes whole sessions replayable in
// microseconds for previews and tests.
package manual

import (
	"container/heap"
	"errors"
	"time"

	"github.com/bnema/workout-coach-cli/internal/ports"
)

var ErrStepLimit = errors.New("manual scheduler step limit reached")

const defaultStepLimit = 100_000

type task struct {
	due       time.Duration
	seq       uint64
	run       func()
	index     int
	cancelled bool
}

type taskHeap []*task

func (h taskHeap) Len() int { return len(h) }

func (h taskHeap) Less(i, j int) bool {
	if h[i].due == h[j].due {
		return h[i].seq < h[j].seq
	}
	return h[i].due < h[j].due
}

func (h taskHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *taskHeap) Push(x any) {
	t := x.(*task)
	t.index = len(*h)
	*h = append(*h, t)
}

func (h *taskHeap) Pop() any {
	old := *h
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*h = old[:n-1]
	return t
}

type Scheduler struct {
	now       time.Duration
	seq       uint64
	tasks     taskHeap
	stepLimit int
}

var _ ports.Scheduler = (*Scheduler)(nil)

func New() *Scheduler {
	return &Scheduler{stepLimit: defaultStepLimit}
}

type handle struct {
	scheduler *Scheduler
	task      *task
}

func (h handle) Cancel() bool {
	if h.task.cancelled || h.task.index < 0 {
		return false
	}
	h.task.cancelled = true
	heap.Remove(&h.scheduler.tasks, h.task.index)
	return true
}

func (s *Scheduler) Schedule(delay time.Duration, run func()) ports.TaskHandle {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	t := &task{due: s.now + delay, seq: s.seq, run: run}
	heap.Push(&s.tasks, t)
	return handle{scheduler: s, task: t}
}

func (s *Scheduler) CancelAll() {
	for _, t := range s.tasks {
		t.cancelled = true
		t.index = -1
	}
	s.tasks = nil
}

// Now is the virtual time elapsed since the scheduler was created.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

func (s *Scheduler) Pending() int {
	return len(s.tasks)
}

// Advance moves the clock forward by d, running every task that falls due
// in order, including tasks scheduled by the tasks it runs.
func (s *Scheduler) Advance(d time.Duration) error {
	target := s.now + d
	for steps := 0; len(s.tasks) > 0 && s.tasks[0].due <= target; steps++ {
		if steps >= s.stepLimit {
			return ErrStepLimit
		}
		s.runNext()
	}
	s.now = target
	return nil
}

// RunUntilIdle runs tasks until none are left.
func (s *Scheduler) RunUntilIdle() error {
	for steps := 0; len(s.tasks) > 0; steps++ {
		if steps >= s.stepLimit {
			return ErrStepLimit
		}
		s.runNext()
	}
	return nil
}

// RunUntil runs tasks until done reports true or no task is left.
func (s *Scheduler) RunUntil(done func() bool) error {
	for steps := 0; len(s.tasks) > 0 && !done(); steps++ {
		if steps >= s.stepLimit {
			return ErrStepLimit
		}
		s.runNext()
	}
	return nil
}

func (s *Scheduler) runNext() {
	t := heap.Pop(&s.tasks).(*task)
	if t.due > s.now {
		s.now = t.due
	}
	t.run()
}
