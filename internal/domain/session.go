package domain

import (
	"fmt"
	"strings"
)

// Mode is the counting mode of a set. It is either RepBased or TimeBased.
type Mode interface {
	isMode()
	Describe() string
}

type RepBased struct {
	Reps int
}

type TimeBased struct {
	Seconds int
}

func (RepBased) isMode()  {}
func (TimeBased) isMode() {}

func (m RepBased) Describe() string {
	return fmt.Sprintf("%d reps", m.Reps)
}

func (m TimeBased) Describe() string {
	return fmt.Sprintf("%d seconds", m.Seconds)
}

type SessionParams struct {
	ExerciseName string
	Sets         int
	Mode         Mode
	RestSeconds  int
}

func (p SessionParams) Validate() error {
	if strings.TrimSpace(p.ExerciseName) == "" {
		return fmt.Errorf("%w: exercise name is required", ErrInvalidParams)
	}
	if p.Sets < 0 {
		return fmt.Errorf("%w: sets must not be negative, got %d", ErrInvalidParams, p.Sets)
	}
	if p.RestSeconds < 0 {
		return fmt.Errorf("%w: rest must not be negative, got %d", ErrInvalidParams, p.RestSeconds)
	}

	switch mode := p.Mode.(type) {
	case RepBased:
		if mode.Reps < 0 {
			return fmt.Errorf("%w: reps must not be negative, got %d", ErrInvalidParams, mode.Reps)
		}
	case TimeBased:
		if mode.Seconds < 1 {
			return fmt.Errorf("%w: duration must be at least 1 second, got %d", ErrInvalidParams, mode.Seconds)
		}
	case nil:
		return fmt.Errorf("%w: mode is required", ErrInvalidParams)
	default:
		return fmt.Errorf("%w: unsupported mode %T", ErrInvalidParams, mode)
	}

	return nil
}

// Session is the progress of the single active workout.
// CurrentSet is 1-based; 0 means the first set has not started yet.
type Session struct {
	ExerciseName string
	Mode         Mode
	TotalSets    int
	CurrentSet   int
	RestSeconds  int
	Active       bool
	Paused       bool
}

func NewSession(params SessionParams) (Session, error) {
	if err := params.Validate(); err != nil {
		return Session{}, err
	}

	return Session{
		ExerciseName: strings.TrimSpace(params.ExerciseName),
		Mode:         params.Mode,
		TotalSets:    params.Sets,
		RestSeconds:  params.RestSeconds,
		Active:       true,
	}, nil
}

func (s Session) IsLastSet() bool {
	return s.CurrentSet >= s.TotalSets
}
