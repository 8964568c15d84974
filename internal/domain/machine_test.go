package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustAdvance(t *testing.T, m *Machine, event Event) Transition {
	t.Helper()
	transition, err := m.Advance(event)
	require.NoError(t, err)
	return transition
}

func noticeKinds(transition Transition) []NoticeKind {
	kinds := make([]NoticeKind, 0, len(transition.Notices))
	for _, notice := range transition.Notices {
		kinds = append(kinds, notice.Kind)
	}
	return kinds
}

func TestMachineWalksRepBasedSession(t *testing.T) {
	m := NewMachine()
	params := SessionParams{ExerciseName: "Boast", Sets: 2, Mode: RepBased{Reps: 3}, RestSeconds: 10}

	start := mustAdvance(t, m, StartEvent(params))
	assert.Equal(t, StateIdle, start.From)
	assert.Equal(t, StateIntro, start.To)
	require.NotNil(t, start.Entered)
	assert.Equal(t, PhaseIntro, start.Entered.Phase)
	assert.Equal(t, []NoticeKind{NoticeExerciseStarted}, noticeKinds(start))
	assert.Equal(t, "Boast", start.Notices[0].ExerciseName)

	set1 := mustAdvance(t, m, Event{Kind: EventPhaseElapsed})
	assert.Equal(t, StateSetActive, set1.To)
	assert.Equal(t, 1, set1.Entered.Set)
	assert.Empty(t, set1.Notices)

	rest := mustAdvance(t, m, Event{Kind: EventPhaseElapsed})
	assert.Equal(t, StateResting, rest.To)
	assert.Equal(t, PhaseRest, rest.Entered.Phase)
	assert.Equal(t, []NoticeKind{NoticeSetCompleted, NoticeRestStarted}, noticeKinds(rest))
	assert.Equal(t, 1, rest.Notices[0].Set)
	assert.Equal(t, 2, rest.Notices[0].TotalSets)
	assert.Equal(t, 10, rest.Notices[1].RestSeconds)

	set2 := mustAdvance(t, m, Event{Kind: EventPhaseElapsed})
	assert.Equal(t, StateSetActive, set2.To)
	assert.Equal(t, []NoticeKind{NoticeRestCompleted}, noticeKinds(set2))
	assert.Equal(t, 2, set2.Entered.Set)

	complete := mustAdvance(t, m, Event{Kind: EventPhaseElapsed})
	assert.Equal(t, StateComplete, complete.To)
	assert.Equal(t, PhaseCompletion, complete.Entered.Phase)
	assert.Equal(t, []NoticeKind{NoticeSetCompleted}, noticeKinds(complete))

	session, ok := m.Session()
	require.True(t, ok)
	assert.True(t, session.Active)

	done := mustAdvance(t, m, Event{Kind: EventPhaseElapsed})
	assert.Equal(t, StateIdle, done.To)
	assert.Nil(t, done.Entered)
	assert.Equal(t, []NoticeKind{NoticeExerciseCompleted, NoticeWorkoutCompleted}, noticeKinds(done))

	_, ok = m.Session()
	assert.False(t, ok)
}

func TestMachineZeroSetsSkipsToCompletion(t *testing.T) {
	m := NewMachine()
	mustAdvance(t, m, StartEvent(SessionParams{ExerciseName: "X", Sets: 0, Mode: RepBased{Reps: 5}, RestSeconds: 10}))

	next := mustAdvance(t, m, Event{Kind: EventPhaseElapsed})
	assert.Equal(t, StateComplete, next.To)
	assert.Empty(t, next.Notices)
}

func TestMachineRejectsInvalidParamsWithoutMutation(t *testing.T) {
	m := NewMachine()
	mustAdvance(t, m, StartEvent(SessionParams{ExerciseName: "X", Sets: 1, Mode: RepBased{Reps: 1}}))

	_, err := m.Advance(StartEvent(SessionParams{ExerciseName: "Y", Sets: 1, Mode: TimeBased{Seconds: 0}}))
	require.ErrorIs(t, err, ErrInvalidParams)

	session, ok := m.Session()
	require.True(t, ok)
	assert.Equal(t, "X", session.ExerciseName)
	assert.Equal(t, StateIntro, m.State())
}

func TestMachineStartReplacesActiveSession(t *testing.T) {
	m := NewMachine()
	mustAdvance(t, m, StartEvent(SessionParams{ExerciseName: "X", Sets: 1, Mode: RepBased{Reps: 1}}))
	mustAdvance(t, m, Event{Kind: EventPhaseElapsed})

	replaced := mustAdvance(t, m, StartEvent(SessionParams{ExerciseName: "Y", Sets: 2, Mode: RepBased{Reps: 2}}))
	assert.True(t, replaced.Replaced)
	assert.Equal(t, StateSetActive, replaced.From)
	assert.Equal(t, StateIntro, replaced.To)

	session, _ := m.Session()
	assert.Equal(t, "Y", session.ExerciseName)
	assert.Zero(t, session.CurrentSet)
}

func TestMachinePauseResume(t *testing.T) {
	m := NewMachine()
	_, err := m.Advance(Event{Kind: EventPause})
	require.ErrorIs(t, err, ErrNoActiveSession)

	mustAdvance(t, m, StartEvent(SessionParams{ExerciseName: "X", Sets: 1, Mode: RepBased{Reps: 1}}))

	paused := mustAdvance(t, m, Event{Kind: EventPause})
	assert.False(t, paused.Noop)
	session, _ := m.Session()
	assert.True(t, session.Paused)
	assert.True(t, session.Active)

	again := mustAdvance(t, m, Event{Kind: EventPause})
	assert.True(t, again.Noop)

	_, err = m.Advance(Event{Kind: EventPhaseElapsed})
	require.ErrorIs(t, err, ErrInvalidTransition)

	resumed := mustAdvance(t, m, Event{Kind: EventResume})
	assert.False(t, resumed.Noop)
	session, _ = m.Session()
	assert.False(t, session.Paused)

	mustAdvance(t, m, Event{Kind: EventPhaseElapsed})
	assert.Equal(t, StateSetActive, m.State())
}

func TestMachineStopIsIdempotent(t *testing.T) {
	m := NewMachine()
	idle := mustAdvance(t, m, Event{Kind: EventStop})
	assert.True(t, idle.Noop)

	mustAdvance(t, m, StartEvent(SessionParams{ExerciseName: "X", Sets: 1, Mode: RepBased{Reps: 1}}))
	stopped := mustAdvance(t, m, Event{Kind: EventStop})
	assert.False(t, stopped.Noop)
	assert.Equal(t, StateIntro, stopped.From)
	assert.Equal(t, StateIdle, stopped.To)

	again := mustAdvance(t, m, Event{Kind: EventStop})
	assert.True(t, again.Noop)

	_, ok := m.Session()
	assert.False(t, ok)
}
