package application

import (
	"fmt"
	"strings"

	"github.com/bnema/workout-coach-cli/internal/domain"
)

type ModeKind string

const (
	ModeReps  ModeKind = "reps"
	ModeTimed ModeKind = "timed"
)

func (k ModeKind) Valid() bool {
	switch k {
	case ModeReps, ModeTimed:
		return true
	default:
		return false
	}
}

// ParseModeKind accepts the names used on the command line and in the
// workout catalog.
func ParseModeKind(raw string) (ModeKind, error) {
	kind := ModeKind(strings.ToLower(strings.TrimSpace(raw)))
	switch kind {
	case "rep", "rep_based":
		kind = ModeReps
	case "time", "time_based", "duration":
		kind = ModeTimed
	}
	if !kind.Valid() {
		return "", fmt.Errorf("%w: unsupported mode %q", domain.ErrInvalidParams, raw)
	}
	return kind, nil
}

// BuildMode turns a mode kind and its amount (reps or seconds) into a Mode.
func BuildMode(kind ModeKind, amount int) (domain.Mode, error) {
	switch kind {
	case ModeReps:
		return domain.RepBased{Reps: amount}, nil
	case ModeTimed:
		return domain.TimeBased{Seconds: amount}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported mode %q", domain.ErrInvalidParams, kind)
	}
}

type AddWorkoutCommand struct {
	Name         domain.WorkoutName
	ExerciseName string
	Sets         int
	Mode         ModeKind
	Amount       int
	RestSeconds  int
	Replace      bool
}

type RemoveWorkoutCommand struct {
	Name domain.WorkoutName
}
