package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/spf13/cobra"
)

const (
	defaultSets = 3
	defaultReps = 10
	defaultRest = 30
)

type sessionFlags struct {
	sets     int
	reps     int
	duration int
	rest     int
	preset   string
}

func (f *sessionFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.sets, "sets", defaultSets, "number of sets")
	cmd.Flags().IntVar(&f.reps, "reps", defaultReps, "reps per set")
	cmd.Flags().IntVar(&f.duration, "duration", 0, "seconds per set, for timed sets")
	cmd.Flags().IntVar(&f.rest, "rest", defaultRest, "rest seconds between sets")
	cmd.Flags().StringVar(&f.preset, "preset", "", "use a saved workout instead of flags")
	cmd.MarkFlagsMutuallyExclusive("reps", "duration")
}

func (f *sessionFlags) params(cmd *cobra.Command, app *app, args []string) (domain.SessionParams, error) {
	if f.preset != "" {
		if len(args) > 0 {
			return domain.SessionParams{}, errors.New("exercise name and --preset cannot be combined")
		}
		workout, err := app.workouts.Get(cmd.Context(), domain.WorkoutName(f.preset))
		if err != nil {
			return domain.SessionParams{}, fmt.Errorf("load preset %q: %w", f.preset, err)
		}
		return workout.Params(), nil
	}

	exercise := strings.TrimSpace(strings.Join(args, " "))
	if exercise == "" {
		return domain.SessionParams{}, errors.New("exercise name is required (or use --preset)")
	}

	var mode domain.Mode = domain.RepBased{Reps: f.reps}
	if cmd.Flags().Changed("duration") {
		mode = domain.TimeBased{Seconds: f.duration}
	}

	params := domain.SessionParams{
		ExerciseName: exercise,
		Sets:         f.sets,
		Mode:         mode,
		RestSeconds:  f.rest,
	}
	if err := params.Validate(); err != nil {
		return domain.SessionParams{}, err
	}
	return params, nil
}
