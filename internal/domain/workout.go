package domain

import (
	"fmt"
	"strings"
	"time"
)

type WorkoutName string

// Workout is a saved session preset from the workout catalog.
type Workout struct {
	Name         WorkoutName
	ExerciseName string
	Sets         int
	Mode         Mode
	RestSeconds  int
	CreatedAt    time.Time
}

func (w Workout) Params() SessionParams {
	return SessionParams{
		ExerciseName: w.ExerciseName,
		Sets:         w.Sets,
		Mode:         w.Mode,
		RestSeconds:  w.RestSeconds,
	}
}

func (w Workout) Validate() error {
	if strings.TrimSpace(string(w.Name)) == "" {
		return fmt.Errorf("%w: workout name is required", ErrInvalidParams)
	}

	return w.Params().Validate()
}
