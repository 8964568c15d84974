package plan

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/bnema/workout-coach-cli/internal/application"
	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const barWidth = 24

// TranscriptLine is one utterance heard during a simulated run.
type TranscriptLine struct {
	At   time.Duration
	Text string
}

type RenderOptions struct {
	// Transcript, when set, is rendered after the scripted phases.
	Transcript []TranscriptLine
	HideEvents bool
}

func renderView(plan application.SessionPlan, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Workout preview"),
		s.header.Render(summaryLine(plan.Params)),
		s.header.Render(fmt.Sprintf("phases: %d  announcements: %d  scripted: %s",
			len(plan.Timelines), plan.EventCount(), formatDuration(plan.Duration()))),
	}

	if len(plan.Timelines) == 0 {
		lines = append(lines, s.empty.Render("Nothing to announce."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	var start time.Duration
	total := plan.Duration()
	for _, timeline := range plan.Timelines {
		lines = append(lines, s.section.Render(renderPhase(timeline, start, total, opts, s)))
		start += timeline.End
	}

	if len(opts.Transcript) > 0 {
		lines = append(lines, s.section.Render(renderTranscript(opts.Transcript, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func summaryLine(params domain.SessionParams) string {
	mode := "no mode"
	if params.Mode != nil {
		mode = params.Mode.Describe()
	}
	return fmt.Sprintf("exercise: %s · %d sets of %s · rest %ds", params.ExerciseName, params.Sets, mode, params.RestSeconds)
}

func renderPhase(timeline domain.Timeline, start, total time.Duration, opts RenderOptions, s styles) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.phase.Render(phaseTitle(timeline)),
		" ",
		renderProgressBar(timeline.End, total, barWidth, s),
		" ",
		s.phaseMeta.Render(fmt.Sprintf("%s at %s", formatDuration(timeline.End), formatOffset(start))),
	)
	if opts.HideEvents {
		return header
	}

	parts := []string{header}
	for _, event := range timeline.Events {
		parts = append(parts, eventLine(event, start, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func phaseTitle(timeline domain.Timeline) string {
	switch timeline.Phase {
	case domain.PhaseSet:
		return fmt.Sprintf("set %d", timeline.Set)
	case domain.PhaseRest:
		return fmt.Sprintf("rest after set %d", timeline.Set)
	default:
		return timeline.Phase.String()
	}
}

func eventLine(event domain.AnnouncementEvent, start time.Duration, s styles) string {
	text := s.text.Render(event.Text)
	if event.Terminal {
		text = s.terminal.Render(event.Text)
	}

	parts := []string{"  ", s.offset.Render(formatOffset(start + event.Offset)), " ", text}
	if event.HasCue() {
		parts = append(parts, " ", s.cue.Render("["+event.Cue.String()+"]"))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func renderTranscript(transcript []TranscriptLine, s styles) string {
	parts := []string{s.title.Render("Narration")}
	for _, line := range transcript {
		parts = append(parts, lipgloss.JoinHorizontal(
			lipgloss.Top,
			"  ",
			s.offset.Render(formatOffset(line.At)),
			" ",
			s.text.Render(line.Text),
		))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderProgressBar(part, total time.Duration, width int, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := 0
	if total > 0 {
		filled = int(math.Round(float64(width) * float64(part) / float64(total)))
	}
	filled = max(0, min(width, filled))

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		s.barFill.Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", width-filled)),
		s.barBracket.Render("]"),
	)
}

func formatOffset(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("+%d:%04.1f", minutes, seconds)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.String()
	}
	return d.Round(time.Second).String()
}
