// Package tts drives an external text-to-speech program (espeak-ng, say or
// spd-say), one process per utterance.
package tts

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os/exec"
	"strconv"
	"strings"

	"github.com/bnema/workout-coach-cli/internal/ports"
	"golang.org/x/text/language"
)

var ErrUnavailable = errors.New("speech command unavailable")

type Backend string

const (
	BackendEspeak Backend = "espeak-ng"
	BackendSay    Backend = "say"
	BackendSpdSay Backend = "spd-say"

	baseWordsPerMinute = 175
)

// Backends lists the supported programs in the order auto-detection tries
// them.
func Backends() []Backend {
	return []Backend{BackendEspeak, BackendSpdSay, BackendSay}
}

func ParseBackend(raw string) (Backend, error) {
	backend := Backend(strings.TrimSpace(raw))
	for _, candidate := range Backends() {
		if backend == candidate {
			return backend, nil
		}
	}
	return "", fmt.Errorf("unsupported speech command %q", raw)
}

// Detect returns the first backend installed on PATH. It reports false
// when none is.
func Detect(lookPath func(file string) (string, error)) (Backend, bool) {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	for _, backend := range Backends() {
		if _, err := lookPath(string(backend)); err == nil {
			return backend, true
		}
	}
	return BackendEspeak, false
}

type runFunc func(ctx context.Context, path string, args ...string) (stdout string, stderr string, err error)

// Engine speaks through an external program. Completion callbacks are
// handed to dispatch, which must run them on the scheduler timeline.
type Engine struct {
	backend  Backend
	run      runFunc
	lookPath func(file string) (string, error)
	dispatch func(func())
	log      *slog.Logger

	path      string
	ctx       context.Context
	listener  ports.UtteranceListener
	supported []language.Tag
	locale    language.Tag
	rate      float64
	pitch     float64

	generation uint64
	cancel     context.CancelFunc
}

var _ ports.SpeechEngine = (*Engine)(nil)

func NewEngine(backend Backend, dispatch func(func()), log *slog.Logger) *Engine {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &Engine{
		backend:  backend,
		run:      runCommand,
		lookPath: exec.LookPath,
		dispatch: dispatch,
		log:      log,
		locale:   language.AmericanEnglish,
		rate:     1,
		pitch:    1,
	}
}

func (e *Engine) Name() string {
	return string(e.backend)
}

func (e *Engine) Init(ctx context.Context, done func(error)) {
	go func() {
		path, err := e.lookPath(string(e.backend))
		if err != nil {
			if errors.Is(err, exec.ErrNotFound) {
				err = fmt.Errorf("%w: %s", ErrUnavailable, e.backend)
			} else {
				err = fmt.Errorf("locate %s command: %w", e.backend, err)
			}
			e.dispatch(func() { done(err) })
			return
		}

		supported := []language.Tag{language.AmericanEnglish}
		if e.backend == BackendEspeak {
			stdout, stderr, listErr := e.run(ctx, path, "--voices")
			if listErr != nil {
				e.dispatch(func() { done(formatError("list voices", e.backend, listErr, stderr)) })
				return
			}
			if voices := parseEspeakVoices(stdout); len(voices) > 0 {
				supported = voices
			}
		}

		e.dispatch(func() {
			e.path = path
			e.ctx = ctx
			e.supported = supported
			e.log.Debug("speech command ready", "command", path, "locales", len(supported))
			done(nil)
		})
	}()
}

func (e *Engine) Speak(text string, utteranceID string) {
	e.Stop()

	ctx := e.ctx
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	generation := e.generation
	args := e.args(text)
	path := e.path
	if path == "" {
		path = string(e.backend)
	}

	if e.listener != nil {
		e.listener.OnUtteranceStart(utteranceID)
	}

	go func() {
		_, stderr, err := e.run(ctx, path, args...)
		cancel()
		e.dispatch(func() {
			if generation != e.generation || e.listener == nil {
				return
			}
			e.cancel = nil
			if err != nil {
				e.listener.OnUtteranceError(utteranceID, formatError("speak", e.backend, err, stderr))
				return
			}
			e.listener.OnUtteranceDone(utteranceID)
		})
	}()
}

// Stop kills the running utterance. Its completion is never reported.
func (e *Engine) Stop() {
	e.generation++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
}

func (e *Engine) SetListener(listener ports.UtteranceListener) {
	e.listener = listener
}

func (e *Engine) SupportedLocales() []language.Tag {
	return append([]language.Tag(nil), e.supported...)
}

func (e *Engine) SetLocale(locale language.Tag) error {
	if len(e.supported) > 0 {
		_, _, confidence := language.NewMatcher(e.supported).Match(locale)
		if confidence == language.No {
			return fmt.Errorf("%s has no voice for %s", e.backend, locale)
		}
	}
	e.locale = locale
	return nil
}

func (e *Engine) SetRate(rate float64) {
	e.rate = rate
}

func (e *Engine) SetPitch(pitch float64) {
	e.pitch = pitch
}

func (e *Engine) Shutdown() {
	e.Stop()
	e.listener = nil
}

func (e *Engine) args(text string) []string {
	wpm := strconv.Itoa(int(math.Round(baseWordsPerMinute * e.rate)))

	switch e.backend {
	case BackendSay:
		return []string{"-r", wpm, text}
	case BackendSpdSay:
		return []string{
			"-w",
			"-l", e.locale.String(),
			"-r", strconv.Itoa(scaleSigned(e.rate)),
			"-p", strconv.Itoa(scaleSigned(e.pitch)),
			text,
		}
	default:
		return []string{
			"-v", strings.ToLower(e.locale.String()),
			"-s", wpm,
			"-p", strconv.Itoa(clamp(int(math.Round(e.pitch*50)), 0, 99)),
			text,
		}
	}
}

// scaleSigned maps a multiplier around 1.0 onto spd-say's -100..100 range.
func scaleSigned(value float64) int {
	return clamp(int(math.Round((value-1)*100)), -100, 100)
}

func clamp(value, low, high int) int {
	return max(low, min(high, value))
}

// parseEspeakVoices reads the language column of `espeak-ng --voices`.
func parseEspeakVoices(output string) []language.Tag {
	var tags []language.Tag
	seen := map[language.Tag]struct{}{}

	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || fields[0] == "Pty" {
			continue
		}
		tag, err := language.Parse(fields[1])
		if err != nil {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}

	return tags
}

func runCommand(ctx context.Context, path string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, backend Backend, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("%s %s: %w", backend, op, err)
	}

	return fmt.Errorf("%s %s: %w: %s", backend, op, err, stderr)
}
