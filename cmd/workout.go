package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/bnema/workout-coach-cli/internal/application"
	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newWorkoutCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "workout",
		Aliases: []string{"workouts", "preset"},
		Short:   "Manage saved workout presets",
	}

	cmd.AddCommand(
		newWorkoutListCmd(app),
		newWorkoutAddCmd(app),
		newWorkoutRemoveCmd(app),
	)

	return cmd
}

type workoutView struct {
	Name        string `json:"name"`
	Exercise    string `json:"exercise"`
	Sets        int    `json:"sets"`
	Mode        string `json:"mode"`
	RestSeconds int    `json:"rest_seconds"`
	CreatedAt   string `json:"created_at,omitempty"`
}

func newWorkoutView(workout domain.Workout) workoutView {
	view := workoutView{
		Name:        string(workout.Name),
		Exercise:    workout.ExerciseName,
		Sets:        workout.Sets,
		RestSeconds: workout.RestSeconds,
	}
	if workout.Mode != nil {
		view.Mode = workout.Mode.Describe()
	}
	if !workout.CreatedAt.IsZero() {
		view.CreatedAt = workout.CreatedAt.Format(time.RFC3339)
	}
	return view
}

func newWorkoutListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved workouts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			workouts, err := app.workouts.List(cmd.Context())
			if err != nil {
				return err
			}

			views := make([]workoutView, 0, len(workouts))
			for _, workout := range workouts {
				views = append(views, newWorkoutView(workout))
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(views)
			}

			if len(views) == 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "No saved workouts. Add one with: coach workout add <name> --exercise <exercise>")
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			_, _ = fmt.Fprintln(w, "NAME\tEXERCISE\tSETS\tMODE\tREST")
			for _, view := range views {
				_, _ = fmt.Fprintf(w, "%s\t%s\t%d\t%s\t%ds\n", view.Name, view.Exercise, view.Sets, view.Mode, view.RestSeconds)
			}
			return w.Flush()
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")

	return cmd
}

func newWorkoutAddCmd(app *app) *cobra.Command {
	var (
		exercise string
		sets     int
		mode     string
		amount   int
		rest     int
		replace  bool
	)

	cmd := &cobra.Command{
		Use:     "add <name>",
		Short:   "Save a workout preset",
		Example: "  coach workout add legs --exercise squats --sets 4 --amount 15 --rest 60\n  coach workout add core --exercise plank --mode timed --amount 45",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := application.ParseModeKind(mode)
			if err != nil {
				return err
			}

			workout, err := app.workouts.Add(cmd.Context(), application.AddWorkoutCommand{
				Name:         domain.WorkoutName(args[0]),
				ExerciseName: exercise,
				Sets:         sets,
				Mode:         kind,
				Amount:       amount,
				RestSeconds:  rest,
				Replace:      replace,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "saved %s: %s, %d sets of %s, rest %ds\n",
				workout.Name, workout.ExerciseName, workout.Sets, workout.Mode.Describe(), workout.RestSeconds)
			return err
		},
	}

	cmd.Flags().StringVar(&exercise, "exercise", "", "exercise name spoken during the session")
	cmd.Flags().IntVar(&sets, "sets", defaultSets, "number of sets")
	cmd.Flags().StringVar(&mode, "mode", string(application.ModeReps), "reps or timed")
	cmd.Flags().IntVar(&amount, "amount", defaultReps, "reps per set, or seconds per set when timed")
	cmd.Flags().IntVar(&rest, "rest", defaultRest, "rest seconds between sets")
	cmd.Flags().BoolVar(&replace, "replace", false, "overwrite an existing workout with the same name")
	_ = cmd.MarkFlagRequired("exercise")

	return cmd
}

func newWorkoutRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <name>",
		Aliases: []string{"rm"},
		Short:   "Delete a workout preset",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.workouts.Remove(cmd.Context(), application.RemoveWorkoutCommand{Name: domain.WorkoutName(args[0])}); err != nil {
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return err
		},
	}
}
