package loop

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLoop(t *testing.T) (*Loop, context.CancelFunc) {
	t.Helper()

	l := New()
	ctx, cancel := context.WithCancel(context.Background())
	go func() { _ = l.Run(ctx) }()
	t.Cleanup(cancel)
	return l, cancel
}

func TestLoopRunsScheduledTasksInDelayOrder(t *testing.T) {
	t.Parallel()

	l, _ := runLoop(t)
	got := make(chan string, 2)

	require.NoError(t, l.Call(context.Background(), func() {
		l.Schedule(40*time.Millisecond, func() { got <- "second" })
		l.Schedule(5*time.Millisecond, func() { got <- "first" })
	}))

	assert.Equal(t, "first", <-got)
	assert.Equal(t, "second", <-got)
}

func TestLoopCancelledTaskNeverRuns(t *testing.T) {
	t.Parallel()

	l, _ := runLoop(t)
	ran := make(chan struct{}, 1)

	var cancelled bool
	require.NoError(t, l.Call(context.Background(), func() {
		handle := l.Schedule(10*time.Millisecond, func() { ran <- struct{}{} })
		cancelled = handle.Cancel()
	}))
	assert.True(t, cancelled)

	select {
	case <-ran:
		t.Fatal("cancelled task ran")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestLoopCancelAllDropsPendingTasks(t *testing.T) {
	t.Parallel()

	l, _ := runLoop(t)
	ran := make(chan struct{}, 2)

	require.NoError(t, l.Call(context.Background(), func() {
		l.Schedule(10*time.Millisecond, func() { ran <- struct{}{} })
		l.Schedule(20*time.Millisecond, func() { ran <- struct{}{} })
		l.CancelAll()
	}))

	select {
	case <-ran:
		t.Fatal("task ran after CancelAll")
	case <-time.After(60 * time.Millisecond):
	}
}

func TestLoopCancelAfterRunReportsFalse(t *testing.T) {
	t.Parallel()

	l, _ := runLoop(t)
	ran := make(chan struct{})

	var handle interface{ Cancel() bool }
	require.NoError(t, l.Call(context.Background(), func() {
		handle = l.Schedule(0, func() { close(ran) })
	}))
	<-ran

	assert.False(t, handle.Cancel())
}

func TestLoopDoKeepsSubmissionOrder(t *testing.T) {
	t.Parallel()

	l, _ := runLoop(t)
	release := make(chan struct{})
	l.Do(func() { <-release })

	const calls = 500
	var got []int
	for i := 0; i < calls; i++ {
		l.Do(func() { got = append(got, i) })
	}
	close(release)

	require.NoError(t, l.Call(context.Background(), func() {}))
	require.Len(t, got, calls)
	assert.IsIncreasing(t, got)
}

func TestLoopCallAfterCloseFails(t *testing.T) {
	t.Parallel()

	l := New()
	l.Close()
	l.Close()

	err := l.Call(context.Background(), func() {})
	require.ErrorIs(t, err, ErrStopped)
}
