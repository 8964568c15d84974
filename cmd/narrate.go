package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bnema/workout-coach-cli/internal/application"
	"github.com/bnema/workout-coach-cli/internal/config"
	"github.com/spf13/cobra"
)

func newMotivateCmd(app *app) *cobra.Command {
	var engine string

	cmd := &cobra.Command{
		Use:   "motivate",
		Short: "Speak a motivational phrase",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runNarration(cmd, app, engine, func(s *application.Sequencer) error {
				return s.ProvideMotivation()
			})
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "", "voice engine: auto, console or exec (overrides config)")

	return cmd
}

func newTipCmd(app *app) *cobra.Command {
	var engine string

	cmd := &cobra.Command{
		Use:     "tip [exercise]",
		Short:   "Speak a technique tip for an exercise",
		Example: "  coach tip backhand\n  coach tip \"forehand drive\"",
		RunE: func(cmd *cobra.Command, args []string) error {
			hint := strings.Join(args, " ")
			return runNarration(cmd, app, engine, func(s *application.Sequencer) error {
				return s.ProvideTechniqueTip(hint)
			})
		},
	}
	cmd.Flags().StringVar(&engine, "engine", "", "voice engine: auto, console or exec (overrides config)")

	return cmd
}

func runNarration(cmd *cobra.Command, app *app, engine string, speak func(*application.Sequencer) error) error {
	voice, err := resolveVoiceEngine(app, engine)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return narrateOnce(ctx, cmd.OutOrStdout(), app, voice, speak)
}

func narrateOnce(ctx context.Context, out io.Writer, app *app, voice config.VoiceEngine, speak func(*application.Sequencer) error) error {
	session, err := newLiveSession(ctx, app, out, voice, func(line string) {
		_, _ = fmt.Fprintln(out, progressStyle.Render("» "+line))
	})
	if err != nil {
		return err
	}
	defer session.close()

	return session.narrate(ctx, speak)
}
