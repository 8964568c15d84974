package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	planrender "github.com/bnema/workout-coach-cli/internal/adapters/render/plan"
	"github.com/bnema/workout-coach-cli/internal/adapters/scheduler/manual"
	soundconsole "github.com/bnema/workout-coach-cli/internal/adapters/sound/console"
	speechconsole "github.com/bnema/workout-coach-cli/internal/adapters/speech/console"
	"github.com/bnema/workout-coach-cli/internal/application"
	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

type previewDocument struct {
	Exercise        string         `json:"exercise" yaml:"exercise"`
	Sets            int            `json:"sets" yaml:"sets"`
	Mode            string         `json:"mode" yaml:"mode"`
	RestSeconds     int            `json:"rest_seconds" yaml:"rest_seconds"`
	ScriptedSeconds float64        `json:"scripted_seconds" yaml:"scripted_seconds"`
	Phases          []previewPhase `json:"phases" yaml:"phases"`
	Narration       []narratedLine `json:"narration,omitempty" yaml:"narration,omitempty"`
	Cues            []domain.Cue   `json:"cues,omitempty" yaml:"cues,omitempty"`
}

type previewPhase struct {
	Phase        string         `json:"phase" yaml:"phase"`
	Set          int            `json:"set,omitempty" yaml:"set,omitempty"`
	StartSeconds float64        `json:"start_seconds" yaml:"start_seconds"`
	EndSeconds   float64        `json:"end_seconds" yaml:"end_seconds"`
	Events       []previewEvent `json:"events" yaml:"events"`
}

type previewEvent struct {
	AtSeconds float64 `json:"at_seconds" yaml:"at_seconds"`
	Text      string  `json:"text" yaml:"text"`
	Cue       string  `json:"cue,omitempty" yaml:"cue,omitempty"`
	Terminal  bool    `json:"terminal,omitempty" yaml:"terminal,omitempty"`
}

type narratedLine struct {
	AtSeconds float64 `json:"at_seconds" yaml:"at_seconds"`
	Text      string  `json:"text" yaml:"text"`
}

// simulation is a full session replayed on virtual time.
type simulation struct {
	lines []speechconsole.Line
	cues  []domain.Cue
}

func newPreviewCmd(app *app) *cobra.Command {
	var (
		flags   sessionFlags
		format  string
		narrate bool
		compact bool
	)

	cmd := &cobra.Command{
		Use:   "preview [exercise]",
		Short: "Show what a session will announce, without waiting for it",
		RunE: func(cmd *cobra.Command, args []string) error {
			params, err := flags.params(cmd, app, args)
			if err != nil {
				return err
			}

			plan, err := application.PlanSession(params)
			if err != nil {
				return err
			}

			var sim simulation
			if narrate {
				sim, err = simulate(app, params)
				if err != nil {
					return err
				}
			}

			return writePreview(cmd.OutOrStdout(), app, plan, sim, strings.ToLower(format), compact)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or yaml")
	cmd.Flags().BoolVar(&narrate, "narrate", false, "replay the session on a virtual clock and include what is spoken, with speaking time")
	cmd.Flags().BoolVar(&compact, "compact", false, "text output: phase headers only")

	return cmd
}

// simulate runs a whole session through the sequencer on a manual
// scheduler, so the transcript includes real queueing and speaking delays.
func simulate(app *app, params domain.SessionParams) (simulation, error) {
	scheduler := manual.New()
	speech := speechconsole.NewEngine(io.Discard, scheduler, speechconsole.WithElapsed(scheduler.Now))
	cues := soundconsole.NewPlayer(io.Discard, false)

	listener := &sessionListener{report: func(string) {}}
	var failure error
	completed := false
	listener.finish = func(err error) {
		failure = err
		completed = true
	}

	sequencer := application.NewSequencer(application.SequencerDeps{
		Speech:    speech,
		Sounds:    cues,
		Scheduler: scheduler,
		Logger:    app.log,
	}, append(app.sequencerOptions(), application.WithListener(listener))...)
	defer sequencer.Close()

	sequencer.Init(context.Background())
	if err := sequencer.StartSession(params); err != nil {
		return simulation{}, err
	}
	if err := scheduler.RunUntil(func() bool { return completed }); err != nil {
		return simulation{}, fmt.Errorf("simulate session: %w", err)
	}
	if failure != nil {
		return simulation{}, failure
	}

	return simulation{lines: speech.Lines(), cues: cues.Played()}, nil
}

func writePreview(out io.Writer, app *app, plan application.SessionPlan, sim simulation, format string, compact bool) error {
	switch format {
	case formatText:
		opts := planrender.RenderOptions{HideEvents: compact}
		for _, line := range sim.lines {
			opts.Transcript = append(opts.Transcript, planrender.TranscriptLine{At: line.At, Text: line.Text})
		}
		rendered, err := app.planRenderer(plan, opts)
		if err != nil {
			return fmt.Errorf("render preview: %w", err)
		}
		_, err = fmt.Fprintln(out, rendered)
		return err
	case formatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(newPreviewDocument(plan, sim))
	case formatYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(newPreviewDocument(plan, sim)); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported --format %q (want text, json or yaml)", format)
	}
}

func newPreviewDocument(plan application.SessionPlan, sim simulation) previewDocument {
	doc := previewDocument{
		Exercise:        plan.Params.ExerciseName,
		Sets:            plan.Params.Sets,
		RestSeconds:     plan.Params.RestSeconds,
		ScriptedSeconds: plan.Duration().Seconds(),
		Cues:            sim.cues,
	}
	if plan.Params.Mode != nil {
		doc.Mode = plan.Params.Mode.Describe()
	}

	var start time.Duration
	for _, timeline := range plan.Timelines {
		phase := previewPhase{
			Phase:        timeline.Phase.String(),
			Set:          timeline.Set,
			StartSeconds: start.Seconds(),
			EndSeconds:   (start + timeline.End).Seconds(),
			Events:       make([]previewEvent, 0, len(timeline.Events)),
		}
		for _, event := range timeline.Events {
			entry := previewEvent{
				AtSeconds: (start + event.Offset).Seconds(),
				Text:      event.Text,
				Terminal:  event.Terminal,
			}
			if event.HasCue() {
				entry.Cue = event.Cue.String()
			}
			phase.Events = append(phase.Events, entry)
		}
		doc.Phases = append(doc.Phases, phase)
		start += timeline.End
	}

	for _, line := range sim.lines {
		doc.Narration = append(doc.Narration, narratedLine{AtSeconds: line.At.Seconds(), Text: line.Text})
	}

	return doc
}
