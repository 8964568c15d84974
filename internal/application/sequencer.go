package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/bnema/workout-coach-cli/internal/ports"
	"golang.org/x/text/language"
)

const (
	ackPaused  = "Workout paused"
	ackResumed = "Resuming workout"
	ackStopped = "Workout stopped"

	DefaultRate  = 0.9
	DefaultPitch = 1.0
)

// FallbackLocale is used when the requested locale is not supported by the
// speech engine.
var FallbackLocale = language.AmericanEnglish

type engineStatus int

const (
	engineUninitialized engineStatus = iota
	engineInitializing
	engineReady
	engineFailed
)

type SequencerDeps struct {
	Speech    ports.SpeechEngine
	Sounds    ports.SoundCuePlayer
	Scheduler ports.Scheduler
	Logger    *slog.Logger
	// Random returns a value in [0, n). Defaults to math/rand/v2.IntN.
	Random func(n int) int
}

type Option func(*Sequencer)

func WithLocale(locale language.Tag) Option {
	return func(s *Sequencer) {
		s.locale = locale
	}
}

func WithRate(rate float64) Option {
	return func(s *Sequencer) {
		s.rate = rate
	}
}

func WithPitch(pitch float64) Option {
	return func(s *Sequencer) {
		s.pitch = pitch
	}
}

func WithListener(listener ports.SequencerListener) Option {
	return func(s *Sequencer) {
		s.SetListener(listener)
	}
}

// WithReadyHook registers fn to run when Init finishes, with its error.
func WithReadyHook(fn func(error)) Option {
	return func(s *Sequencer) {
		s.readyHook = fn
	}
}

// WithDrainedHook registers fn to run each time the last queued
// announcement finishes while no session is active.
func WithDrainedHook(fn func()) Option {
	return func(s *Sequencer) {
		s.drainedHook = fn
	}
}

// Sequencer narrates a workout session. It is not safe for concurrent use:
// every method and every scheduled task must run on the scheduler timeline.
type Sequencer struct {
	speech    ports.SpeechEngine
	scheduler ports.Scheduler
	log       *slog.Logger
	random    func(n int) int

	machine  *domain.Machine
	queue    *AnnouncementQueue
	listener ports.SequencerListener

	status      engineStatus
	initAttempt uint64
	deferred    *domain.SessionParams

	epoch      uint64
	timeline   *domain.Timeline
	phaseTasks phaseTasks
	resumeTail bool

	locale      language.Tag
	activeTag   language.Tag
	rate, pitch float64

	readyHook   func(error)
	drainedHook func()
}

func NewSequencer(deps SequencerDeps, opts ...Option) *Sequencer {
	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	random := deps.Random
	if random == nil {
		random = rand.IntN
	}

	s := &Sequencer{
		speech:    deps.Speech,
		scheduler: deps.Scheduler,
		log:       log,
		random:    random,
		machine:   domain.NewMachine(),
		listener:  noopListener{},
		locale:    FallbackLocale,
		rate:      DefaultRate,
		pitch:     DefaultPitch,
	}
	s.queue = NewAnnouncementQueue(deps.Scheduler, deps.Speech, deps.Sounds, log)
	s.queue.onConsume = s.onConsumed
	deps.Speech.SetListener(s.queue)

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Init prepares the speech engine. It returns immediately; sessions started
// before the engine is ready begin once it is.
func (s *Sequencer) Init(ctx context.Context) {
	if s.status == engineInitializing || s.status == engineReady {
		return
	}

	s.status = engineInitializing
	s.initAttempt++
	attempt := s.initAttempt

	s.speech.Init(ctx, func(err error) {
		if attempt != s.initAttempt {
			return
		}
		s.onInitialized(err)
	})
}

func (s *Sequencer) onInitialized(err error) {
	if err != nil {
		s.status = engineFailed
		dropped := s.deferred != nil
		s.deferred = nil
		s.log.Error("voice guide initialization failed", "error", err, "dropped_start", dropped)
		s.listener.OnVoiceGuideError(fmt.Sprintf("voice guide unavailable: %v", err))
		if s.readyHook != nil {
			s.readyHook(err)
		}
		return
	}

	s.status = engineReady
	s.applyVoiceSettings()
	s.log.Debug("voice guide ready", "locale", s.activeTag.String())
	if s.readyHook != nil {
		s.readyHook(nil)
	}

	if s.deferred == nil {
		return
	}
	params := *s.deferred
	s.deferred = nil
	if err := s.begin(params); err != nil {
		s.log.Error("deferred start failed", "error", err)
		s.listener.OnVoiceGuideError(err.Error())
	}
}

func (s *Sequencer) Start(exerciseName string, sets, reps, restSeconds int) error {
	return s.StartSession(domain.SessionParams{
		ExerciseName: exerciseName,
		Sets:         sets,
		Mode:         domain.RepBased{Reps: reps},
		RestSeconds:  restSeconds,
	})
}

func (s *Sequencer) StartTimed(exerciseName string, sets, durationSeconds, restSeconds int) error {
	return s.StartSession(domain.SessionParams{
		ExerciseName: exerciseName,
		Sets:         sets,
		Mode:         domain.TimeBased{Seconds: durationSeconds},
		RestSeconds:  restSeconds,
	})
}

func (s *Sequencer) StartWorkout(workout domain.Workout) error {
	return s.StartSession(workout.Params())
}

// StartSession begins a session, replacing any active one.
func (s *Sequencer) StartSession(params domain.SessionParams) error {
	if err := params.Validate(); err != nil {
		return err
	}

	switch s.status {
	case engineFailed:
		return domain.ErrVoiceGuideUnavailable
	case engineUninitialized, engineInitializing:
		s.log.Debug("deferring start until the voice guide is ready", "exercise", params.ExerciseName)
		s.deferred = &params
		return nil
	}

	return s.begin(params)
}

func (s *Sequencer) begin(params domain.SessionParams) error {
	transition, err := s.machine.Advance(domain.StartEvent(params))
	if err != nil {
		return err
	}

	if transition.Replaced {
		s.log.Info("replacing active session", "previous_state", transition.From.String())
	}
	s.queue.Stop()
	s.clearPhase()
	s.apply(transition)

	return nil
}

func (s *Sequencer) Pause() error {
	transition, err := s.machine.Advance(domain.Event{Kind: domain.EventPause})
	if err != nil {
		return err
	}
	if transition.Noop {
		return nil
	}

	s.resumeTail = s.phaseTasks.cancelAll() > 0
	s.queue.Hold()
	s.queue.Interject(ackPaused)
	return nil
}

// Resume continues a paused session. The interrupted announcement is
// repeated and a pending phase tail restarts from its full length.
func (s *Sequencer) Resume() error {
	transition, err := s.machine.Advance(domain.Event{Kind: domain.EventResume})
	if err != nil {
		return err
	}
	if transition.Noop {
		return nil
	}

	s.queue.Interject(ackResumed)
	s.queue.Release()
	if s.resumeTail {
		s.resumeTail = false
		s.armTail()
	}
	return nil
}

// Stop ends the session. Calling it with no active session does nothing.
func (s *Sequencer) Stop() {
	s.deferred = nil
	transition, err := s.machine.Advance(domain.Event{Kind: domain.EventStop})
	if err != nil {
		s.log.Error("stop failed", "error", err)
		return
	}

	s.queue.Stop()
	s.clearPhase()
	if !transition.Noop && s.status == engineReady {
		s.queue.Interject(ackStopped)
	}
}

func (s *Sequencer) ProvideMotivation() error {
	return s.narrate(motivationPhrases[s.random(len(motivationPhrases))])
}

func (s *Sequencer) ProvideTechniqueTip(exerciseHint string) error {
	return s.narrate(TechniqueTip(exerciseHint))
}

func (s *Sequencer) narrate(text string) error {
	if s.status != engineReady {
		return domain.ErrVoiceGuideUnavailable
	}
	s.queue.Enqueue(adHocEpoch, domain.AnnouncementEvent{Text: text})
	return nil
}

func (s *Sequencer) SetListener(listener ports.SequencerListener) {
	if listener == nil {
		listener = noopListener{}
	}
	s.listener = listener
}

// SetLocale selects the closest locale the engine supports, falling back
// to en-US.
func (s *Sequencer) SetLocale(locale language.Tag) {
	s.locale = locale
	if s.status == engineReady {
		s.applyLocale()
	}
}

// Locale is the locale in use by the engine, once it is ready.
func (s *Sequencer) Locale() language.Tag {
	return s.activeTag
}

func (s *Sequencer) SetRate(rate float64) {
	s.rate = rate
	if s.status == engineReady {
		s.speech.SetRate(rate)
	}
}

func (s *Sequencer) SetPitch(pitch float64) {
	s.pitch = pitch
	if s.status == engineReady {
		s.speech.SetPitch(pitch)
	}
}

func (s *Sequencer) Ready() bool {
	return s.status == engineReady
}

func (s *Sequencer) Snapshot() (domain.Session, domain.State, bool) {
	session, ok := s.machine.Session()
	return session, s.machine.State(), ok
}

// Close stops the session and releases the speech engine.
func (s *Sequencer) Close() {
	s.deferred = nil
	_, _ = s.machine.Advance(domain.Event{Kind: domain.EventStop})
	s.queue.Stop()
	s.clearPhase()
	s.scheduler.CancelAll()

	s.initAttempt++
	s.status = engineUninitialized
	s.speech.Stop()
	s.speech.Shutdown()
}

func (s *Sequencer) advance(event domain.Event) error {
	transition, err := s.machine.Advance(event)
	if err != nil {
		return err
	}
	s.apply(transition)
	return nil
}

func (s *Sequencer) apply(transition domain.Transition) {
	s.log.Debug("transition", "event", transition.Event.String(), "from", transition.From.String(), "to", transition.To.String())

	for _, notice := range transition.Notices {
		s.notify(notice)
	}

	s.clearPhase()
	if transition.Entered == nil {
		return
	}

	s.epoch++
	timeline := *transition.Entered
	s.timeline = &timeline
	s.queue.Enqueue(s.epoch, timeline.Events...)
}

func (s *Sequencer) notify(notice domain.Notice) {
	switch notice.Kind {
	case domain.NoticeExerciseStarted:
		s.listener.OnExerciseStarted(notice.ExerciseName)
	case domain.NoticeSetCompleted:
		s.listener.OnSetCompleted(notice.Set, notice.TotalSets)
	case domain.NoticeRestStarted:
		s.listener.OnRestStarted(notice.RestSeconds)
	case domain.NoticeRestCompleted:
		s.listener.OnRestCompleted()
	case domain.NoticeExerciseCompleted:
		s.listener.OnExerciseCompleted(notice.ExerciseName)
	case domain.NoticeWorkoutCompleted:
		s.listener.OnWorkoutCompleted()
	}
}

func (s *Sequencer) onConsumed(item queueItem, err error) {
	if err != nil {
		s.warn(fmt.Sprintf("announcement %q failed: %v", item.event.Text, err))
	}
	if s.drainedHook != nil && s.queue.Len() == 0 && s.queue.idle() {
		if _, active := s.machine.Session(); !active {
			s.drainedHook()
		}
	}

	if item.epoch == adHocEpoch || item.epoch != s.epoch || !item.event.Terminal {
		return
	}
	if session, ok := s.machine.Session(); ok && session.Paused {
		s.resumeTail = true
		return
	}
	s.armTail()
}

func (s *Sequencer) armTail() {
	if s.timeline == nil {
		return
	}

	epoch := s.epoch
	s.phaseTasks.add(s.scheduler.Schedule(s.timeline.Tail(), func() {
		s.phaseTasks.release()
		if epoch != s.epoch {
			return
		}
		if err := s.advance(domain.Event{Kind: domain.EventPhaseElapsed}); err != nil && !errors.Is(err, domain.ErrNoActiveSession) {
			s.log.Error("phase advance failed", "error", err)
		}
	}))
}

func (s *Sequencer) clearPhase() {
	s.phaseTasks.cancelAll()
	s.resumeTail = false
	s.timeline = nil
}

func (s *Sequencer) warn(message string) {
	s.log.Warn("voice guide warning", "message", message)
	if listener, ok := s.listener.(ports.WarningListener); ok {
		listener.OnVoiceGuideWarning(message)
	}
}

func (s *Sequencer) applyVoiceSettings() {
	s.applyLocale()
	s.speech.SetRate(s.rate)
	s.speech.SetPitch(s.pitch)
}

func (s *Sequencer) applyLocale() {
	chosen := MatchLocale(s.locale, s.speech.SupportedLocales())
	if err := s.speech.SetLocale(chosen); err != nil {
		s.log.Warn("locale rejected, falling back", "locale", chosen.String(), "error", err)
		chosen = FallbackLocale
		if err := s.speech.SetLocale(chosen); err != nil {
			s.log.Warn("fallback locale rejected", "locale", chosen.String(), "error", err)
		}
	}
	s.activeTag = chosen
}

// MatchLocale returns the supported tag closest to want, or FallbackLocale
// when nothing matches.
func MatchLocale(want language.Tag, supported []language.Tag) language.Tag {
	if len(supported) == 0 {
		return FallbackLocale
	}

	_, index, confidence := language.NewMatcher(supported).Match(want)
	if confidence == language.No {
		return FallbackLocale
	}
	return supported[index]
}

// phaseTasks owns the scheduled handles of the current phase.
type phaseTasks struct {
	handles []ports.TaskHandle
}

func (p *phaseTasks) add(handle ports.TaskHandle) {
	p.handles = append(p.handles, handle)
}

// cancelAll cancels every owned handle and reports how many were pending.
func (p *phaseTasks) cancelAll() int {
	handles := p.handles
	p.handles = nil

	pending := 0
	for _, handle := range handles {
		if handle.Cancel() {
			pending++
		}
	}
	return pending
}

func (p *phaseTasks) release() {
	p.handles = nil
}

type noopListener struct{}

func (noopListener) OnExerciseStarted(string)   {}
func (noopListener) OnExerciseCompleted(string) {}
func (noopListener) OnSetCompleted(int, int)    {}
func (noopListener) OnRestStarted(int)          {}
func (noopListener) OnRestCompleted()           {}
func (noopListener) OnWorkoutCompleted()        {}
func (noopListener) OnVoiceGuideError(string)   {}
