package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bnema/workout-coach-cli/internal/config"
	"github.com/bnema/workout-coach-cli/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var progressStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

func newStartCmd(app *app) *cobra.Command {
	var (
		flags       sessionFlags
		interactive bool
		engine      string
	)

	cmd := &cobra.Command{
		Use:   "start [exercise]",
		Short: "Run a narrated workout session",
		Example: "  coach start push-ups --sets 3 --reps 12 --rest 45\n" +
			"  coach start plank --sets 2 --duration 60\n" +
			"  coach start --preset legs --interactive",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.params(cmd, app, args)
			if err != nil {
				return err
			}

			voice, err := resolveVoiceEngine(app, engine)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if interactive {
				return runInteractiveSession(ctx, cmd, app, params, voice)
			}
			return runSession(ctx, cmd.OutOrStdout(), app, params, voice)
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "keyboard controls: p pause, r resume, s stop, m motivate, t tip")
	cmd.Flags().StringVar(&engine, "engine", "", "voice engine: auto, console or exec (overrides config)")

	return cmd
}

func resolveVoiceEngine(app *app, raw string) (config.VoiceEngine, error) {
	if raw == "" {
		return app.settings.Voice.Engine, nil
	}

	engine := config.VoiceEngine(strings.ToLower(strings.TrimSpace(raw)))
	if !engine.Valid() {
		return "", fmt.Errorf("unsupported --engine %q (want auto, console or exec)", raw)
	}
	return engine, nil
}

func runSession(ctx context.Context, out io.Writer, app *app, params domain.SessionParams, voice config.VoiceEngine) error {
	session, err := newLiveSession(ctx, app, out, voice, func(line string) {
		_, _ = fmt.Fprintln(out, progressStyle.Render("» "+line))
	})
	if err != nil {
		return err
	}
	defer session.close()

	if err := session.begin(ctx, params); err != nil {
		return err
	}
	return session.wait(ctx)
}

func runInteractiveSession(ctx context.Context, cmd *cobra.Command, app *app, params domain.SessionParams, voice config.VoiceEngine) error {
	var program *tea.Program
	send := func(msg tea.Msg) {
		if program != nil {
			program.Send(msg)
		}
	}

	session, err := newLiveSession(ctx, app, programWriter{send: send}, voice, func(line string) {
		send(progressMsg(line))
	})
	if err != nil {
		return err
	}
	defer session.close()

	program = tea.NewProgram(
		newSessionModel(params, session.do),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.OutOrStdout()),
		tea.WithContext(ctx),
	)

	if err := session.begin(ctx, params); err != nil {
		return err
	}
	quit := make(chan struct{})
	defer close(quit)
	go forwardSessionDone(session.done, quit, send)

	finalModel, err := program.Run()
	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	result, ok := finalModel.(sessionModel)
	if !ok || result.stopped || errors.Is(err, tea.ErrProgramKilled) {
		session.stop()
		return nil
	}
	return result.err
}

// forwardSessionDone hands the session result to the program. It returns
// without sending once quit is closed.
func forwardSessionDone(done <-chan error, quit <-chan struct{}, send func(tea.Msg)) {
	select {
	case err := <-done:
		send(sessionDoneMsg{err: err})
	case <-quit:
	}
}
