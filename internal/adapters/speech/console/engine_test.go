package console

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/bnema/workout-coach-cli/internal/adapters/scheduler/manual"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type doneRecorder struct {
	done []string
}

func (r *doneRecorder) OnUtteranceStart(string) {}

func (r *doneRecorder) OnUtteranceDone(id string) {
	r.done = append(r.done, id)
}

func (r *doneRecorder) OnUtteranceError(string, error) {}

func TestEngineWritesLineAndCompletesAfterSpeakingTime(t *testing.T) {
	scheduler := manual.New()
	var out bytes.Buffer
	engine := NewEngine(&out, scheduler, WithElapsed(scheduler.Now))
	listener := &doneRecorder{}
	engine.SetListener(listener)

	var ready bool
	engine.Init(context.Background(), func(err error) {
		require.NoError(t, err)
		ready = true
	})
	require.NoError(t, scheduler.Advance(0))
	require.True(t, ready)

	require.NoError(t, scheduler.Advance(61*time.Second+200*time.Millisecond))
	engine.Speak("Get ready", "u-1")

	assert.Contains(t, out.String(), "[01:01.2]")
	assert.Contains(t, out.String(), "Get ready")

	speaking := SpeakingTime("Get ready", 1)
	require.NoError(t, scheduler.Advance(speaking-time.Millisecond))
	assert.Empty(t, listener.done)
	require.NoError(t, scheduler.Advance(time.Millisecond))
	assert.Equal(t, []string{"u-1"}, listener.done)

	lines := engine.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 61*time.Second+200*time.Millisecond, lines[0].At)
}

func TestEngineStopCancelsCompletion(t *testing.T) {
	scheduler := manual.New()
	engine := NewEngine(nil, scheduler)
	listener := &doneRecorder{}
	engine.SetListener(listener)

	engine.Speak("Resting", "u-1")
	engine.Stop()
	require.NoError(t, scheduler.RunUntilIdle())

	assert.Empty(t, listener.done)
	assert.Len(t, engine.Lines(), 1)
}

func TestEngineSchedulesCompletionWithoutListener(t *testing.T) {
	scheduler := manual.New()
	engine := NewEngine(nil, scheduler)

	engine.Speak("Get ready", "u-1")
	require.Equal(t, 1, scheduler.Pending())

	listener := &doneRecorder{}
	engine.SetListener(listener)
	require.NoError(t, scheduler.RunUntilIdle())

	assert.Equal(t, []string{"u-1"}, listener.done)
}

func TestSpeakingTimeScalesWithRate(t *testing.T) {
	assert.Equal(t, 360*time.Millisecond, SpeakingTime("1", 1))
	assert.Equal(t, 400*time.Millisecond, SpeakingTime("1", 0.9))
	assert.Greater(t, SpeakingTime("Cool down and stretch. Rest well today.", 1), SpeakingTime("Go", 1))
}
