package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/workout-coach-cli/internal/adapters/scheduler/manual"
	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/bnema/workout-coach-cli/internal/ports"
	"golang.org/x/text/language"
)

const fakeSpeakTime = 100 * time.Millisecond

var errFakeUtterance = errors.New("speech engine busy")

type spoken struct {
	at   time.Duration
	text string
	id   string
}

// fakeSpeech completes every utterance after fakeSpeakTime of virtual time.
type fakeSpeech struct {
	scheduler *manual.Scheduler
	listener  ports.UtteranceListener

	initErr    error
	failAll    bool
	supported  []language.Tag
	rejectTags map[string]bool

	spoken   []spoken
	pending  ports.TaskHandle
	stops    int
	shutdown bool
	locale   language.Tag
	rate     float64
	pitch    float64
}

func newFakeSpeech(scheduler *manual.Scheduler) *fakeSpeech {
	return &fakeSpeech{
		scheduler: scheduler,
		supported: []language.Tag{language.AmericanEnglish, language.BritishEnglish, language.Korean},
	}
}

func (f *fakeSpeech) Init(_ context.Context, done func(error)) {
	f.scheduler.Schedule(0, func() { done(f.initErr) })
}

func (f *fakeSpeech) Speak(text string, utteranceID string) {
	f.spoken = append(f.spoken, spoken{at: f.scheduler.Now(), text: text, id: utteranceID})
	f.listener.OnUtteranceStart(utteranceID)
	f.pending = f.scheduler.Schedule(fakeSpeakTime, func() {
		f.pending = nil
		if f.failAll {
			f.listener.OnUtteranceError(utteranceID, errFakeUtterance)
			return
		}
		f.listener.OnUtteranceDone(utteranceID)
	})
}

func (f *fakeSpeech) Stop() {
	f.stops++
	if f.pending != nil {
		f.pending.Cancel()
		f.pending = nil
	}
}

func (f *fakeSpeech) SetListener(listener ports.UtteranceListener) {
	f.listener = listener
}

func (f *fakeSpeech) SupportedLocales() []language.Tag {
	return f.supported
}

func (f *fakeSpeech) SetRate(rate float64) {
	f.rate = rate
}

func (f *fakeSpeech) SetPitch(pitch float64) {
	f.pitch = pitch
}

func (f *fakeSpeech) Shutdown() {
	f.shutdown = true
}

func (f *fakeSpeech) SetLocale(locale language.Tag) error {
	if f.rejectTags[locale.String()] {
		return fmt.Errorf("locale %s not installed", locale)
	}
	f.locale = locale
	return nil
}

func (f *fakeSpeech) texts() []string {
	out := make([]string, 0, len(f.spoken))
	for _, s := range f.spoken {
		out = append(out, s.text)
	}
	return out
}

type cueRecorder struct {
	cues []domain.Cue
}

func (c *cueRecorder) Play(cue domain.Cue) {
	c.cues = append(c.cues, cue)
}

// recordingListener records callbacks as strings, in order.
type recordingListener struct {
	calls    []string
	errors   []string
	warnings []string
}

func (r *recordingListener) OnExerciseStarted(name string) {
	r.calls = append(r.calls, "started:"+name)
}

func (r *recordingListener) OnExerciseCompleted(name string) {
	r.calls = append(r.calls, "exercise_completed:"+name)
}

func (r *recordingListener) OnSetCompleted(set, total int) {
	r.calls = append(r.calls, fmt.Sprintf("set_completed:%d/%d", set, total))
}

func (r *recordingListener) OnRestStarted(seconds int) {
	r.calls = append(r.calls, fmt.Sprintf("rest_started:%d", seconds))
}

func (r *recordingListener) OnRestCompleted() {
	r.calls = append(r.calls, "rest_completed")
}

func (r *recordingListener) OnWorkoutCompleted() {
	r.calls = append(r.calls, "workout_completed")
}

func (r *recordingListener) OnVoiceGuideError(message string) {
	r.errors = append(r.errors, message)
}

func (r *recordingListener) OnVoiceGuideWarning(message string) {
	r.warnings = append(r.warnings, message)
}

func (r *recordingListener) count(call string) int {
	n := 0
	for _, c := range r.calls {
		if c == call {
			n++
		}
	}
	return n
}

func (r *recordingListener) completed() bool {
	return r.count("workout_completed") > 0
}
