package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bnema/workout-coach-cli/internal/adapters/scheduler/loop"
	"github.com/bnema/workout-coach-cli/internal/application"
	"github.com/bnema/workout-coach-cli/internal/config"
	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/bnema/workout-coach-cli/internal/ports"
)

const stopGrace = 3 * time.Second

type sessionAction int

const (
	actionPause sessionAction = iota
	actionResume
	actionStop
	actionMotivate
	actionTip
)

// sessionListener turns sequencer callbacks into progress lines and a
// single completion result.
type sessionListener struct {
	report func(string)
	finish func(error)
}

var (
	_ ports.SequencerListener = (*sessionListener)(nil)
	_ ports.WarningListener   = (*sessionListener)(nil)
)

func (l *sessionListener) OnExerciseStarted(exerciseName string) {
	l.report("started " + exerciseName)
}

func (l *sessionListener) OnExerciseCompleted(exerciseName string) {
	l.report(exerciseName + " complete")
}

func (l *sessionListener) OnSetCompleted(setNumber int, totalSets int) {
	l.report(fmt.Sprintf("set %d/%d complete", setNumber, totalSets))
}

func (l *sessionListener) OnRestStarted(restSeconds int) {
	l.report(fmt.Sprintf("resting for %ds", restSeconds))
}

func (l *sessionListener) OnRestCompleted() {
	l.report("rest over")
}

func (l *sessionListener) OnWorkoutCompleted() {
	l.finish(nil)
}

func (l *sessionListener) OnVoiceGuideError(message string) {
	l.finish(errors.New(message))
}

func (l *sessionListener) OnVoiceGuideWarning(message string) {
	l.report("warning: " + message)
}

// liveSession runs a sequencer on a real-time loop.
type liveSession struct {
	loop      *loop.Loop
	sequencer *application.Sequencer
	report    func(string)
	done      chan error
	ready     chan error
	drained   chan struct{}
	loopDone  chan error
	started   bool
	closeOnce sync.Once
}

func newLiveSession(ctx context.Context, app *app, out io.Writer, voice config.VoiceEngine, report func(string)) (*liveSession, error) {
	lp := loop.New()
	speech, err := app.newSpeech(voiceTarget{
		out:       out,
		scheduler: lp,
		dispatch:  lp.Do,
		elapsed:   lp.Elapsed,
	}, voice)
	if err != nil {
		lp.Close()
		return nil, err
	}

	s := &liveSession{
		loop:     lp,
		report:   report,
		done:     make(chan error, 1),
		ready:    make(chan error, 1),
		drained:  make(chan struct{}, 1),
		loopDone: make(chan error, 1),
	}
	listener := &sessionListener{
		report: report,
		finish: func(err error) {
			select {
			case s.done <- err:
			default:
			}
		},
	}

	opts := append(app.sequencerOptions(),
		application.WithListener(listener),
		application.WithReadyHook(func(err error) {
			select {
			case s.ready <- err:
			default:
			}
		}),
		application.WithDrainedHook(func() {
			select {
			case s.drained <- struct{}{}:
			default:
			}
		}),
	)
	s.sequencer = application.NewSequencer(application.SequencerDeps{
		Speech:    speech,
		Sounds:    app.newSounds(ctx, out),
		Scheduler: lp,
		Logger:    app.log,
	}, opts...)

	return s, nil
}

// begin starts the loop and the session. The voice guide initializes in
// the background; the session starts once it is ready.
func (s *liveSession) begin(ctx context.Context, params domain.SessionParams) error {
	engineCtx := s.startLoop(ctx)

	var startErr error
	if err := s.loop.Call(ctx, func() {
		s.sequencer.Init(engineCtx)
		startErr = s.sequencer.StartSession(params)
	}); err != nil {
		return err
	}
	return startErr
}

// narrate waits for the voice guide, runs speak and returns once everything
// it queued has been spoken.
func (s *liveSession) narrate(ctx context.Context, speak func(*application.Sequencer) error) error {
	engineCtx := s.startLoop(ctx)
	if err := s.loop.Call(ctx, func() { s.sequencer.Init(engineCtx) }); err != nil {
		return err
	}

	select {
	case err := <-s.ready:
		if err != nil {
			return fmt.Errorf("voice guide unavailable: %w", err)
		}
	case <-ctx.Done():
		return nil
	}

	var speakErr error
	if err := s.loop.Call(ctx, func() { speakErr = speak(s.sequencer) }); err != nil {
		return err
	}
	if speakErr != nil {
		return speakErr
	}

	select {
	case <-s.drained:
	case <-ctx.Done():
	}
	return nil
}

func (s *liveSession) startLoop(ctx context.Context) context.Context {
	engineCtx := context.WithoutCancel(ctx)
	s.started = true
	go func() {
		s.loopDone <- s.loop.Run(engineCtx)
	}()
	return engineCtx
}

// wait blocks until the workout completes, the voice guide fails or ctx is
// cancelled. Cancellation stops the session and is not an error.
func (s *liveSession) wait(ctx context.Context) error {
	select {
	case err := <-s.done:
		return err
	case <-ctx.Done():
		s.stop()
		return nil
	}
}

func (s *liveSession) do(action sessionAction, hint string) {
	s.loop.Do(func() {
		var err error
		switch action {
		case actionPause:
			err = s.sequencer.Pause()
		case actionResume:
			err = s.sequencer.Resume()
		case actionStop:
			s.sequencer.Stop()
		case actionMotivate:
			err = s.sequencer.ProvideMotivation()
		case actionTip:
			err = s.sequencer.ProvideTechniqueTip(hint)
		}
		if err != nil {
			s.report(err.Error())
		}
	})
}

// stop ends the session and gives the spoken acknowledgement a moment to
// finish.
func (s *liveSession) stop() {
	if err := s.loop.Call(context.Background(), s.sequencer.Stop); err != nil {
		return
	}

	select {
	case <-s.drained:
	case <-time.After(stopGrace):
	}
}

func (s *liveSession) close() {
	s.closeOnce.Do(func() {
		if !s.started {
			s.loop.Close()
			return
		}
		_ = s.loop.Call(context.Background(), s.sequencer.Close)
		s.loop.Close()
		<-s.loopDone
	})
}
