package application

import (
	"fmt"
	"time"

	"github.com/bnema/workout-coach-cli/internal/domain"
)

// SessionPlan is every phase timeline a session goes through, in order.
type SessionPlan struct {
	Params    domain.SessionParams
	Timelines []domain.Timeline
}

// Duration is the scripted length of the session, not counting speaking
// time.
func (p SessionPlan) Duration() time.Duration {
	var total time.Duration
	for _, timeline := range p.Timelines {
		total += timeline.End
	}
	return total
}

func (p SessionPlan) EventCount() int {
	n := 0
	for _, timeline := range p.Timelines {
		n += len(timeline.Events)
	}
	return n
}

// PlanSession walks the state machine through a whole session without a
// scheduler or speech engine.
func PlanSession(params domain.SessionParams) (SessionPlan, error) {
	machine := domain.NewMachine()
	transition, err := machine.Advance(domain.StartEvent(params))
	if err != nil {
		return SessionPlan{}, err
	}

	plan := SessionPlan{Params: params}
	for transition.Entered != nil {
		plan.Timelines = append(plan.Timelines, *transition.Entered)
		transition, err = machine.Advance(domain.Event{Kind: domain.EventPhaseElapsed})
		if err != nil {
			return SessionPlan{}, fmt.Errorf("advance plan: %w", err)
		}
	}

	return plan, nil
}
