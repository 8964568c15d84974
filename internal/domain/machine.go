package domain

import "fmt"

type State int

const (
	StateIdle State = iota
	StateIntro
	StateSetActive
	StateResting
	StateComplete
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateIntro:
		return "intro"
	case StateSetActive:
		return "set_active"
	case StateResting:
		return "resting"
	case StateComplete:
		return "complete"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type EventKind int

const (
	EventStart EventKind = iota
	EventPhaseElapsed
	EventPause
	EventResume
	EventStop
)

func (k EventKind) String() string {
	switch k {
	case EventStart:
		return "start"
	case EventPhaseElapsed:
		return "phase_elapsed"
	case EventPause:
		return "pause"
	case EventResume:
		return "resume"
	case EventStop:
		return "stop"
	default:
		return fmt.Sprintf("event(%d)", int(k))
	}
}

type Event struct {
	Kind   EventKind
	Params SessionParams
}

func StartEvent(params SessionParams) Event {
	return Event{Kind: EventStart, Params: params}
}

type NoticeKind int

const (
	NoticeExerciseStarted NoticeKind = iota
	NoticeSetCompleted
	NoticeRestStarted
	NoticeRestCompleted
	NoticeExerciseCompleted
	NoticeWorkoutCompleted
)

// Notice is a lifecycle callback the host listener must receive, in order.
type Notice struct {
	Kind         NoticeKind
	ExerciseName string
	Set          int
	TotalSets    int
	RestSeconds  int
}

// Transition describes what one Advance call changed. Entered is the
// timeline of the phase that just began, if any.
type Transition struct {
	Event    EventKind
	From     State
	To       State
	Entered  *Timeline
	Notices  []Notice
	Replaced bool
	Noop     bool
}

// Machine is the session state machine. Paused is orthogonal to State and
// lives on the session.
type Machine struct {
	state   State
	session *Session
}

func NewMachine() *Machine {
	return &Machine{state: StateIdle}
}

func (m *Machine) State() State {
	return m.state
}

func (m *Machine) Session() (Session, bool) {
	if m.session == nil {
		return Session{}, false
	}
	return *m.session, true
}

func (m *Machine) Advance(event Event) (Transition, error) {
	switch event.Kind {
	case EventStart:
		return m.start(event.Params)
	case EventPhaseElapsed:
		return m.phaseElapsed()
	case EventPause:
		return m.setPaused(EventPause, true)
	case EventResume:
		return m.setPaused(EventResume, false)
	case EventStop:
		return m.stop(), nil
	default:
		return Transition{}, fmt.Errorf("%w: unknown event %s", ErrInvalidTransition, event.Kind)
	}
}

func (m *Machine) start(params SessionParams) (Transition, error) {
	session, err := NewSession(params)
	if err != nil {
		return Transition{}, err
	}

	transition := Transition{Event: EventStart, From: m.state, Replaced: m.session != nil}
	m.session = &session
	m.state = StateIntro

	intro := BuildPhaseTimeline(PhaseRef{Phase: PhaseIntro}, session)
	transition.To = m.state
	transition.Entered = &intro
	transition.Notices = []Notice{{Kind: NoticeExerciseStarted, ExerciseName: session.ExerciseName}}

	return transition, nil
}

func (m *Machine) phaseElapsed() (Transition, error) {
	if m.session == nil {
		return Transition{}, ErrNoActiveSession
	}
	if m.session.Paused {
		return Transition{}, fmt.Errorf("%w: phase elapsed while paused", ErrInvalidTransition)
	}

	transition := Transition{Event: EventPhaseElapsed, From: m.state}
	session := m.session

	switch m.state {
	case StateIntro:
		if session.TotalSets == 0 {
			m.enterCompletion(&transition)
		} else {
			m.enterSet(&transition, 1)
		}
	case StateSetActive:
		transition.Notices = append(transition.Notices, Notice{
			Kind:      NoticeSetCompleted,
			Set:       session.CurrentSet,
			TotalSets: session.TotalSets,
		})
		if session.IsLastSet() {
			m.enterCompletion(&transition)
			break
		}
		m.state = StateResting
		rest := BuildPhaseTimeline(PhaseRef{Phase: PhaseRest, Set: session.CurrentSet}, *session)
		transition.Entered = &rest
		transition.Notices = append(transition.Notices, Notice{Kind: NoticeRestStarted, RestSeconds: session.RestSeconds})
	case StateResting:
		transition.Notices = append(transition.Notices, Notice{Kind: NoticeRestCompleted})
		m.enterSet(&transition, session.CurrentSet+1)
	case StateComplete:
		transition.Notices = append(transition.Notices,
			Notice{Kind: NoticeExerciseCompleted, ExerciseName: session.ExerciseName},
			Notice{Kind: NoticeWorkoutCompleted},
		)
		m.session = nil
		m.state = StateIdle
	default:
		return Transition{}, fmt.Errorf("%w: phase elapsed in state %s", ErrInvalidTransition, m.state)
	}

	transition.To = m.state
	return transition, nil
}

func (m *Machine) enterSet(transition *Transition, set int) {
	m.session.CurrentSet = set
	m.state = StateSetActive
	timeline := BuildPhaseTimeline(PhaseRef{Phase: PhaseSet, Set: set}, *m.session)
	transition.Entered = &timeline
}

func (m *Machine) enterCompletion(transition *Transition) {
	m.state = StateComplete
	timeline := BuildPhaseTimeline(PhaseRef{Phase: PhaseCompletion}, *m.session)
	transition.Entered = &timeline
}

func (m *Machine) setPaused(kind EventKind, paused bool) (Transition, error) {
	if m.session == nil {
		return Transition{}, ErrNoActiveSession
	}

	transition := Transition{Event: kind, From: m.state, To: m.state}
	if m.session.Paused == paused {
		transition.Noop = true
		return transition, nil
	}

	m.session.Paused = paused
	return transition, nil
}

func (m *Machine) stop() Transition {
	transition := Transition{Event: EventStop, From: m.state, To: StateIdle}
	if m.session == nil {
		transition.Noop = true
		return transition
	}

	m.session = nil
	m.state = StateIdle
	return transition
}
