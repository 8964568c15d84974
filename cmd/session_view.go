package cmd

import (
	"fmt"
	"strings"

	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const narrationHistory = 6

type progressMsg string

type narrationMsg string

type sessionDoneMsg struct {
	err error
}

// programWriter forwards narration written by the console adapters to the
// running program, one message per line.
type programWriter struct {
	send func(tea.Msg)
}

func (w programWriter) Write(p []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(p), "\n"), "\n") {
		if line != "" {
			w.send(narrationMsg(line))
		}
	}
	return len(p), nil
}

type sessionModel struct {
	spinner  spinner.Model
	title    string
	hint     string
	status   string
	paused   bool
	lines    []string
	control  func(sessionAction, string)
	err      error
	done     bool
	stopped  bool
	keyStyle lipgloss.Style
}

func newSessionModel(params domain.SessionParams, control func(sessionAction, string)) sessionModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
	)

	mode := ""
	if params.Mode != nil {
		mode = " of " + params.Mode.Describe()
	}

	return sessionModel{
		spinner:  s,
		title:    fmt.Sprintf("%s, %d sets%s", params.ExerciseName, params.Sets, mode),
		hint:     params.ExerciseName,
		status:   "warming up the voice guide",
		control:  control,
		keyStyle: lipgloss.NewStyle().Faint(true),
	}
}

func (m sessionModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	case progressMsg:
		m.status = string(msg)
		return m, nil
	case narrationMsg:
		m.lines = append(m.lines, string(msg))
		if len(m.lines) > narrationHistory {
			m.lines = m.lines[len(m.lines)-narrationHistory:]
		}
		return m, nil
	case sessionDoneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m sessionModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "p":
		m.paused = true
		m.control(actionPause, "")
	case "r":
		m.paused = false
		m.control(actionResume, "")
	case "m":
		m.control(actionMotivate, "")
	case "t":
		m.control(actionTip, m.hint)
	case "s", "q", "ctrl+c":
		m.stopped = true
		m.done = true
		return m, tea.Quit
	}
	return m, nil
}

func (m sessionModel) View() string {
	if m.done {
		return ""
	}

	indicator := m.spinner.View()
	if m.paused {
		indicator = "⏸"
	}

	lines := []string{fmt.Sprintf("%s %s · %s", indicator, m.title, m.status)}
	for _, line := range m.lines {
		lines = append(lines, "  "+line)
	}
	lines = append(lines, m.keyStyle.Render("p pause · r resume · m motivate · t tip · s stop"))

	return strings.Join(lines, "\n") + "\n"
}
