package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	planrender "github.com/bnema/workout-coach-cli/internal/adapters/render/plan"
	tomlrepo "github.com/bnema/workout-coach-cli/internal/adapters/repo/toml"
	soundconsole "github.com/bnema/workout-coach-cli/internal/adapters/sound/console"
	"github.com/bnema/workout-coach-cli/internal/adapters/sound/player"
	"github.com/bnema/workout-coach-cli/internal/adapters/speech/chain"
	speechconsole "github.com/bnema/workout-coach-cli/internal/adapters/speech/console"
	"github.com/bnema/workout-coach-cli/internal/adapters/speech/tts"
	"github.com/bnema/workout-coach-cli/internal/application"
	"github.com/bnema/workout-coach-cli/internal/config"
	"github.com/bnema/workout-coach-cli/internal/ports"
	"github.com/spf13/viper"
)

type app struct {
	settings     config.Settings
	log          *slog.Logger
	workouts     *application.WorkoutService
	planRenderer func(application.SessionPlan, planrender.RenderOptions) (string, error)
}

// voiceTarget is where a live session narrates and how its speech engine
// gets back onto the scheduler timeline.
type voiceTarget struct {
	out       io.Writer
	scheduler ports.Scheduler
	dispatch  func(func())
	elapsed   func() time.Duration
}

func wireApp(configPath string, verbose bool, logOut io.Writer) (*app, error) {
	cfg, err := config.New(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	settings, err := config.Load(cfg)
	if err != nil {
		return nil, err
	}

	repo, err := tomlrepo.NewRepository(repoConfig(settings))
	if err != nil {
		return nil, fmt.Errorf("wire workout repository: %w", err)
	}

	return &app{
		settings:     settings,
		log:          newLogger(logOut, verbose),
		workouts:     application.NewWorkoutService(repo, ports.SystemClock{}),
		planRenderer: planrender.Render,
	}, nil
}

func repoConfig(settings config.Settings) *viper.Viper {
	v := viper.New()
	v.Set(tomlrepo.WorkoutsPathKey, settings.WorkoutsPath)
	return v
}

func newLogger(out io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level}))
}

func (a *app) newSpeech(target voiceTarget, engine config.VoiceEngine) (ports.SpeechEngine, error) {
	console := speechconsole.NewEngine(target.out, target.scheduler, speechconsole.WithElapsed(target.elapsed))
	if engine == config.VoiceEngineConsole {
		return console, nil
	}

	backend, found := tts.Detect(nil)
	if a.settings.Voice.Command != "" {
		parsed, err := tts.ParseBackend(a.settings.Voice.Command)
		if err != nil {
			return nil, err
		}
		backend, found = parsed, true
	}
	external := tts.NewEngine(backend, target.dispatch, a.log)
	a.log.Debug("speech command selected", "command", external.Name(), "installed", found)

	if engine == config.VoiceEngineExec {
		return external, nil
	}
	if !found {
		a.log.Debug("no speech command installed, narrating to the terminal")
		return console, nil
	}
	return chain.NewEngine(external, console), nil
}

func (a *app) newSounds(ctx context.Context, out io.Writer) ports.SoundCuePlayer {
	if a.settings.Sounds.Dir == "" {
		return soundconsole.NewPlayer(out, a.settings.Sounds.Bell)
	}

	cues, err := player.New(ctx, a.settings.Sounds.Dir, a.settings.Sounds.Player, a.log)
	if err != nil {
		a.log.Warn("sound cues disabled", "error", err)
		return soundconsole.NewPlayer(out, a.settings.Sounds.Bell)
	}
	return cues
}

func (a *app) sequencerOptions() []application.Option {
	return []application.Option{
		application.WithLocale(a.settings.Voice.Locale),
		application.WithRate(a.settings.Voice.Rate),
		application.WithPitch(a.settings.Voice.Pitch),
	}
}
