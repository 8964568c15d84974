package cmd

import (
	"github.com/spf13/cobra"
)

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
	)

	app := &app{}
	rootCmd := &cobra.Command{
		Use:           "coach",
		Short:         "Workout voice coach: spoken sets, reps, countdowns and rests",
		Long:          "coach narrates a workout session out loud: it counts reps, calls out timed-set checkpoints and rest countdowns, and keeps a catalog of workout presets.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "version" {
				return nil
			}

			wired, err := wireApp(configPath, verbose, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/.coach/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug details to stderr")

	rootCmd.AddCommand(
		newVersionCmd(),
		newStartCmd(app),
		newPreviewCmd(app),
		newWorkoutCmd(app),
		newMotivateCmd(app),
		newTipCmd(app),
	)

	return rootCmd
}
