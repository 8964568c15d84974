package chain

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/workout-coach-cli/internal/ports"
	"golang.org/x/text/language"
)

// Engine speaks through primary, switching to fallback when primary fails
// to initialize.
type Engine struct {
	primary  ports.SpeechEngine
	fallback ports.SpeechEngine
	active   ports.SpeechEngine
}

var _ ports.SpeechEngine = (*Engine)(nil)

var (
	errNilPrimaryEngine  = errors.New("primary speech engine is nil")
	errNilFallbackEngine = errors.New("fallback speech engine is nil")
)

func NewEngine(primary ports.SpeechEngine, fallback ports.SpeechEngine) *Engine {
	engine, err := NewEngineChecked(primary, fallback)
	if err != nil {
		panic(err)
	}

	return engine
}

func NewEngineChecked(primary ports.SpeechEngine, fallback ports.SpeechEngine) (*Engine, error) {
	if primary == nil {
		return nil, errNilPrimaryEngine
	}
	if fallback == nil {
		return nil, errNilFallbackEngine
	}

	return &Engine{primary: primary, fallback: fallback, active: primary}, nil
}

// UsingFallback reports whether primary failed and fallback took over.
func (e *Engine) UsingFallback() bool {
	return e.active == e.fallback
}

func (e *Engine) Init(ctx context.Context, done func(error)) {
	e.active = e.primary
	e.primary.Init(ctx, func(err error) {
		if err == nil {
			done(nil)
			return
		}
		if shouldSkipFallback(err) {
			done(err)
			return
		}

		e.fallback.Init(ctx, func(fallbackErr error) {
			if fallbackErr != nil {
				done(fmt.Errorf("primary speech engine failed: %w; fallback speech engine failed: %w", err, fallbackErr))
				return
			}
			e.active = e.fallback
			done(nil)
		})
	})
}

func (e *Engine) Speak(text string, utteranceID string) {
	e.active.Speak(text, utteranceID)
}

func (e *Engine) Stop() {
	e.active.Stop()
}

func (e *Engine) SetListener(listener ports.UtteranceListener) {
	e.primary.SetListener(listener)
	e.fallback.SetListener(listener)
}

func (e *Engine) SupportedLocales() []language.Tag {
	return e.active.SupportedLocales()
}

func (e *Engine) SetLocale(locale language.Tag) error {
	return e.active.SetLocale(locale)
}

func (e *Engine) SetRate(rate float64) {
	e.active.SetRate(rate)
}

func (e *Engine) SetPitch(pitch float64) {
	e.active.SetPitch(pitch)
}

func (e *Engine) Shutdown() {
	e.primary.Shutdown()
	e.fallback.Shutdown()
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
