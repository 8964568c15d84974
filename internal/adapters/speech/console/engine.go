// Package console narrates to a terminal instead of an audio device.
package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/bnema/workout-coach-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
)

const (
	baseSpeakTime = 300 * time.Millisecond
	perWordTime   = 60 * time.Millisecond
)

// Line is one narrated utterance.
type Line struct {
	At          time.Duration `json:"at" yaml:"at"`
	Text        string        `json:"text" yaml:"text"`
	UtteranceID string        `json:"utterance_id" yaml:"utterance_id"`
}

type Option func(*Engine)

// WithElapsed sets the clock used for line timestamps.
func WithElapsed(elapsed func() time.Duration) Option {
	return func(e *Engine) {
		e.elapsed = elapsed
	}
}

// WithLocales overrides the locales the engine claims to support.
func WithLocales(locales ...language.Tag) Option {
	return func(e *Engine) {
		e.supported = locales
	}
}

// Engine prints each utterance and reports it done after an estimated
// speaking time, measured on the scheduler. Completion goes to whichever
// listener is set when the time is up.
type Engine struct {
	out       io.Writer
	scheduler ports.Scheduler
	elapsed   func() time.Duration
	styles    styles

	mu        sync.Mutex
	lines     []Line
	listener  ports.UtteranceListener
	pending   ports.TaskHandle
	supported []language.Tag
	locale    language.Tag
	rate      float64
}

var _ ports.SpeechEngine = (*Engine)(nil)

func NewEngine(out io.Writer, scheduler ports.Scheduler, opts ...Option) *Engine {
	if out == nil {
		out = io.Discard
	}

	start := time.Now()
	e := &Engine{
		out:       out,
		scheduler: scheduler,
		elapsed:   func() time.Duration { return time.Since(start) },
		styles:    newStyles(),
		supported: []language.Tag{language.AmericanEnglish, language.BritishEnglish},
		locale:    language.AmericanEnglish,
		rate:      1,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

func (e *Engine) Init(_ context.Context, done func(error)) {
	e.scheduler.Schedule(0, func() { done(nil) })
}

func (e *Engine) Speak(text string, utteranceID string) {
	e.cancelPending()

	at := e.elapsed()
	e.mu.Lock()
	e.lines = append(e.lines, Line{At: at, Text: text, UtteranceID: utteranceID})
	listener := e.listener
	e.mu.Unlock()

	fmt.Fprintf(e.out, "%s %s\n", e.styles.stamp.Render(formatElapsed(at)), e.styles.text.Render(text))

	if listener != nil {
		listener.OnUtteranceStart(utteranceID)
	}

	handle := e.scheduler.Schedule(SpeakingTime(text, e.rate), func() {
		e.mu.Lock()
		e.pending = nil
		listener := e.listener
		e.mu.Unlock()
		if listener != nil {
			listener.OnUtteranceDone(utteranceID)
		}
	})

	e.mu.Lock()
	e.pending = handle
	e.mu.Unlock()
}

func (e *Engine) Stop() {
	e.cancelPending()
}

func (e *Engine) SetListener(listener ports.UtteranceListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listener = listener
}

func (e *Engine) SupportedLocales() []language.Tag {
	return append([]language.Tag(nil), e.supported...)
}

func (e *Engine) SetLocale(locale language.Tag) error {
	e.locale = locale
	return nil
}

func (e *Engine) Locale() language.Tag {
	return e.locale
}

func (e *Engine) SetRate(rate float64) {
	if rate > 0 {
		e.rate = rate
	}
}

func (e *Engine) SetPitch(float64) {}

func (e *Engine) Shutdown() {
	e.cancelPending()
	e.mu.Lock()
	e.listener = nil
	e.mu.Unlock()
}

// Lines returns everything narrated so far.
func (e *Engine) Lines() []Line {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Line(nil), e.lines...)
}

func (e *Engine) cancelPending() {
	e.mu.Lock()
	pending := e.pending
	e.pending = nil
	e.mu.Unlock()

	if pending != nil {
		pending.Cancel()
	}
}

// SpeakingTime estimates how long text takes to say at the given rate.
func SpeakingTime(text string, rate float64) time.Duration {
	if rate <= 0 {
		rate = 1
	}
	words := len(strings.Fields(text))
	return time.Duration(float64(baseSpeakTime+time.Duration(words)*perWordTime) / rate)
}

func formatElapsed(d time.Duration) string {
	d = d.Round(100 * time.Millisecond)
	minutes := int(d / time.Minute)
	seconds := (d % time.Minute).Seconds()
	return fmt.Sprintf("[%02d:%04.1f]", minutes, seconds)
}

type styles struct {
	stamp lipgloss.Style
	text  lipgloss.Style
}

func newStyles() styles {
	return styles{
		stamp: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		text:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
	}
}
