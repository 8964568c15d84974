package toml

import "fmt"

const currentSchemaVersion = 1

const (
	modeReps  = "reps"
	modeTimed = "timed"
)

type fileSchema struct {
	Version  int             `toml:"version"`
	Workouts []workoutSchema `toml:"workouts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported workouts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type workoutSchema struct {
	Name        string `toml:"name"`
	Exercise    string `toml:"exercise"`
	Sets        int    `toml:"sets"`
	Mode        string `toml:"mode"`
	Reps        int    `toml:"reps,omitempty"`
	Seconds     int    `toml:"seconds,omitempty"`
	RestSeconds int    `toml:"rest_seconds"`
	CreatedAt   string `toml:"created_at,omitempty"`
}
