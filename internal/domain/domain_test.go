package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionParamsValidate(t *testing.T) {
	tests := []struct {
		name    string
		params  SessionParams
		wantErr string
	}{
		{name: "reps", params: SessionParams{ExerciseName: "Squats", Sets: 3, Mode: RepBased{Reps: 10}, RestSeconds: 30}},
		{name: "zero sets", params: SessionParams{ExerciseName: "Squats", Sets: 0, Mode: RepBased{Reps: 10}}},
		{name: "zero reps", params: SessionParams{ExerciseName: "Squats", Sets: 1, Mode: RepBased{}}},
		{name: "timed", params: SessionParams{ExerciseName: "Plank", Sets: 1, Mode: TimeBased{Seconds: 1}}},
		{name: "empty exercise", params: SessionParams{Sets: 1, Mode: RepBased{Reps: 1}}, wantErr: "exercise name is required"},
		{name: "blank exercise", params: SessionParams{ExerciseName: "  ", Sets: 1, Mode: RepBased{Reps: 1}}, wantErr: "exercise name is required"},
		{name: "negative sets", params: SessionParams{ExerciseName: "X", Sets: -1, Mode: RepBased{Reps: 1}}, wantErr: "sets must not be negative"},
		{name: "negative rest", params: SessionParams{ExerciseName: "X", Sets: 1, Mode: RepBased{Reps: 1}, RestSeconds: -5}, wantErr: "rest must not be negative"},
		{name: "negative reps", params: SessionParams{ExerciseName: "X", Sets: 1, Mode: RepBased{Reps: -1}}, wantErr: "reps must not be negative"},
		{name: "zero duration", params: SessionParams{ExerciseName: "X", Sets: 1, Mode: TimeBased{}}, wantErr: "at least 1 second"},
		{name: "missing mode", params: SessionParams{ExerciseName: "X", Sets: 1}, wantErr: "mode is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.params.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, ErrInvalidParams)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestNewSessionStartsBeforeFirstSet(t *testing.T) {
	session, err := NewSession(SessionParams{ExerciseName: "Plank", Sets: 2, Mode: TimeBased{Seconds: 30}, RestSeconds: 15})
	require.NoError(t, err)

	assert.Equal(t, 0, session.CurrentSet)
	assert.Equal(t, 2, session.TotalSets)
	assert.True(t, session.Active)
	assert.False(t, session.Paused)
}

func TestWorkoutValidateRequiresName(t *testing.T) {
	workout := Workout{ExerciseName: "Lunges", Sets: 3, Mode: RepBased{Reps: 12}}

	err := workout.Validate()
	require.ErrorIs(t, err, ErrInvalidParams)
	assert.ErrorContains(t, err, "workout name is required")

	workout.Name = "legs"
	require.NoError(t, workout.Validate())
	assert.Equal(t, SessionParams{ExerciseName: "Lunges", Sets: 3, Mode: RepBased{Reps: 12}}, workout.Params())
}

func TestCueTextRoundTrip(t *testing.T) {
	data, err := json.Marshal([]Cue{CueBeep, CueCountdown, CueNone})
	require.NoError(t, err)
	assert.JSONEq(t, `["beep","countdown","none"]`, string(data))

	var cues []Cue
	require.NoError(t, json.Unmarshal([]byte(`["success"," REST ",""]`), &cues))
	assert.Equal(t, []Cue{CueSuccess, CueRest, CueNone}, cues)

	_, err = ParseCue("gong")
	require.Error(t, err)
}
