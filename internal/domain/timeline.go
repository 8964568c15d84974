package domain

import (
	"fmt"
	"strconv"
	"time"
)

type Phase int

const (
	PhaseIntro Phase = iota
	PhaseSet
	PhaseRest
	PhaseCompletion
)

func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseSet:
		return "set"
	case PhaseRest:
		return "rest"
	case PhaseCompletion:
		return "completion"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// PhaseRef names one phase of a session. Set is the 1-based set number for
// PhaseSet and the set that just finished for PhaseRest.
type PhaseRef struct {
	Phase Phase
	Set   int
}

// Timeline is the ordered announcements of one phase. End is the offset at
// which the phase is over; it is never before the last event.
type Timeline struct {
	Phase  Phase               `json:"phase" yaml:"phase"`
	Set    int                 `json:"set,omitempty" yaml:"set,omitempty"`
	Events []AnnouncementEvent `json:"events" yaml:"events"`
	End    time.Duration       `json:"end" yaml:"end"`
}

func (t Timeline) Terminal() (AnnouncementEvent, bool) {
	if len(t.Events) == 0 {
		return AnnouncementEvent{}, false
	}
	return t.Events[len(t.Events)-1], true
}

// Tail is how long the phase lasts after its terminal event.
func (t Timeline) Tail() time.Duration {
	terminal, ok := t.Terminal()
	if !ok {
		return t.End
	}
	if t.End <= terminal.Offset {
		return 0
	}
	return t.End - terminal.Offset
}

const (
	introLeadIn        = 5 * time.Second
	repInterval        = 2 * time.Second
	cooldownOffset     = 2 * time.Second
	restLeadText       = "Resting — %d seconds"
	restNextSetText    = "5 seconds — next set!"
	completionText     = "Great job, all sets complete!"
	cooldownText       = "Cool down and stretch. Rest well today."
	setCompleteText    = "Set complete!"
	getReadyText       = "Get ready"
	startingWorkoutTxt = "Starting workout"
)

var (
	setCheckpoints  = []int{30, 20, 10, 5, 3, 2, 1}
	restCheckpoints = []int{30, 20, 10, 5}
)

func BuildPhaseTimeline(ref PhaseRef, session Session) Timeline {
	var timeline Timeline
	switch ref.Phase {
	case PhaseIntro:
		timeline = introTimeline(session)
	case PhaseSet:
		timeline = setTimeline(ref.Set, session)
	case PhaseRest:
		timeline = restTimeline(session.RestSeconds)
	case PhaseCompletion:
		timeline = completionTimeline()
	default:
		return Timeline{Phase: ref.Phase, Set: ref.Set}
	}

	timeline.Phase = ref.Phase
	timeline.Set = ref.Set
	if n := len(timeline.Events); n > 0 {
		timeline.Events[n-1].Terminal = true
	}

	return timeline
}

func introTimeline(session Session) Timeline {
	summary := fmt.Sprintf("%s, %d sets", session.ExerciseName, session.TotalSets)
	if session.Mode != nil {
		summary += " of " + session.Mode.Describe()
	}

	return Timeline{
		Events: []AnnouncementEvent{
			{Text: startingWorkoutTxt, Offset: 0},
			{Text: summary, Offset: time.Second},
			{Text: getReadyText, Offset: 3 * time.Second, Cue: CueBeep},
		},
		End: introLeadIn,
	}
}

func setTimeline(set int, session Session) Timeline {
	events := []AnnouncementEvent{
		{Text: fmt.Sprintf("Set %d starting!", set), Offset: 0, Cue: CueBeep},
	}

	switch mode := session.Mode.(type) {
	case RepBased:
		for i := 1; i <= mode.Reps; i++ {
			event := AnnouncementEvent{Text: strconv.Itoa(i), Offset: time.Duration(i) * repInterval}
			if i == mode.Reps {
				event.Cue = CueSuccess
			}
			events = append(events, event)
		}
		return Timeline{Events: events, End: time.Duration(mode.Reps) * repInterval}
	case TimeBased:
		duration := time.Duration(mode.Seconds) * time.Second
		for _, checkpoint := range setCheckpoints {
			if checkpoint > mode.Seconds {
				continue
			}
			event := AnnouncementEvent{Offset: time.Duration(mode.Seconds-checkpoint) * time.Second}
			if checkpoint <= 5 {
				event.Text = fmt.Sprintf("%d seconds!", checkpoint)
				event.Cue = CueCountdown
			} else {
				event.Text = fmt.Sprintf("%d seconds remaining", checkpoint)
			}
			events = append(events, event)
		}
		events = append(events, AnnouncementEvent{Text: setCompleteText, Offset: duration, Cue: CueSuccess})
		return Timeline{Events: events, End: duration}
	default:
		return Timeline{Events: events}
	}
}

func restTimeline(restSeconds int) Timeline {
	events := []AnnouncementEvent{
		{Text: fmt.Sprintf(restLeadText, restSeconds), Offset: 0, Cue: CueRest},
	}

	for _, checkpoint := range restCheckpoints {
		if checkpoint > restSeconds {
			continue
		}
		event := AnnouncementEvent{Offset: time.Duration(restSeconds-checkpoint) * time.Second}
		if checkpoint == 5 {
			event.Text = restNextSetText
		} else {
			event.Text = fmt.Sprintf("%d seconds", checkpoint)
		}
		events = append(events, event)
	}

	return Timeline{Events: events, End: time.Duration(restSeconds) * time.Second}
}

func completionTimeline() Timeline {
	return Timeline{
		Events: []AnnouncementEvent{
			{Text: completionText, Offset: 0, Cue: CueSuccess},
			{Text: cooldownText, Offset: cooldownOffset},
		},
		End: cooldownOffset,
	}
}
