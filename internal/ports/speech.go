package ports

import (
	"context"

	"golang.org/x/text/language"
)

type UtteranceListener interface {
	OnUtteranceStart(utteranceID string)
	OnUtteranceDone(utteranceID string)
	OnUtteranceError(utteranceID string, err error)
}

// SpeechEngine is a text-to-speech backend. Init is asynchronous: done is
// called once, on the scheduler timeline, when the engine is ready or has
// failed. Listener callbacks are delivered on the same timeline.
type SpeechEngine interface {
	Init(ctx context.Context, done func(err error))
	Speak(text string, utteranceID string)
	Stop()
	SetListener(listener UtteranceListener)
	SupportedLocales() []language.Tag
	SetLocale(locale language.Tag) error
	SetRate(rate float64)
	SetPitch(pitch float64)
	Shutdown()
}
