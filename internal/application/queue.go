package application

import (
	"errors"
	"log/slog"
	"time"

	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/bnema/workout-coach-cli/internal/ports"
	"github.com/google/uuid"
)

var errUtteranceFailed = errors.New("utterance failed")

// adHocEpoch marks announcements that belong to no phase.
const adHocEpoch uint64 = 0

type queueItem struct {
	event domain.AnnouncementEvent
	delay time.Duration
	epoch uint64
	// interjected items acknowledge a state change and are dropped by Hold.
	interjected bool
}

type consumeFunc func(item queueItem, err error)

// AnnouncementQueue serializes announcements so the speech engine never has
// two utterances in flight. It is not safe for concurrent use; every call
// happens on the scheduler timeline.
type AnnouncementQueue struct {
	scheduler ports.Scheduler
	speech    ports.SpeechEngine
	sounds    ports.SoundCuePlayer
	log       *slog.Logger
	newID     func() string

	items     []queueItem
	pending   ports.TaskHandle
	inFlight  *queueItem
	held      bool
	onConsume consumeFunc
}

var _ ports.UtteranceListener = (*AnnouncementQueue)(nil)

func NewAnnouncementQueue(scheduler ports.Scheduler, speech ports.SpeechEngine, sounds ports.SoundCuePlayer, log *slog.Logger) *AnnouncementQueue {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	return &AnnouncementQueue{
		scheduler: scheduler,
		speech:    speech,
		sounds:    sounds,
		log:       log,
		newID:     uuid.NewString,
	}
}

// Enqueue appends a batch of events. Each event waits for the gap between
// its offset and the previous event's offset, counted from the moment it is
// dispatched.
func (q *AnnouncementQueue) Enqueue(epoch uint64, events ...domain.AnnouncementEvent) {
	wasIdle := q.idle()

	var previous time.Duration
	for i, event := range events {
		delay := event.Offset
		if i > 0 {
			delay = event.Offset - previous
		}
		if delay < 0 {
			delay = 0
		}
		previous = event.Offset
		q.items = append(q.items, queueItem{event: event, delay: delay, epoch: epoch})
	}

	if wasIdle {
		q.dispatchNext()
	}
}

// Interject puts an ad-hoc announcement at the head of the queue and speaks
// it right away when nothing is in flight, even while the queue is held.
func (q *AnnouncementQueue) Interject(text string) {
	item := queueItem{event: domain.AnnouncementEvent{Text: text}, epoch: adHocEpoch, interjected: true}
	q.items = append([]queueItem{item}, q.items...)

	if q.inFlight != nil {
		return
	}
	q.cancelPending()
	q.fire()
}

// Hold freezes the queue. A pending dispatch is cancelled and an utterance
// in flight is cut off and put back at the head. Interjections, in flight or
// queued, are dropped.
func (q *AnnouncementQueue) Hold() {
	q.held = true
	q.cancelPending()
	q.dropInterjections()

	if q.inFlight == nil {
		return
	}

	interrupted := *q.inFlight
	q.inFlight = nil
	q.speech.Stop()
	if interrupted.interjected {
		return
	}
	interrupted.delay = 0
	interrupted.event.UtteranceID = ""
	q.items = append([]queueItem{interrupted}, q.items...)
}

func (q *AnnouncementQueue) Release() {
	q.held = false
	q.dispatchNext()
}

// Stop drops every queued announcement. It is safe to call repeatedly.
func (q *AnnouncementQueue) Stop() {
	q.cancelPending()
	q.items = nil
	q.held = false
	if q.inFlight != nil {
		q.inFlight = nil
		q.speech.Stop()
	}
}

func (q *AnnouncementQueue) Len() int {
	n := len(q.items)
	if q.inFlight != nil {
		n++
	}
	return n
}

func (q *AnnouncementQueue) OnUtteranceStart(utteranceID string) {
	q.log.Debug("utterance started", "utterance_id", utteranceID)
}

func (q *AnnouncementQueue) OnUtteranceDone(utteranceID string) {
	q.complete(utteranceID, nil)
}

func (q *AnnouncementQueue) OnUtteranceError(utteranceID string, err error) {
	if err == nil {
		err = errUtteranceFailed
	}
	q.complete(utteranceID, err)
}

func (q *AnnouncementQueue) idle() bool {
	return q.inFlight == nil && q.pending == nil
}

func (q *AnnouncementQueue) dispatchNext() {
	if q.held || !q.idle() || len(q.items) == 0 {
		return
	}

	q.pending = q.scheduler.Schedule(q.items[0].delay, func() {
		q.pending = nil
		if q.held || q.inFlight != nil {
			return
		}
		q.fire()
	})
}

func (q *AnnouncementQueue) fire() {
	if len(q.items) == 0 {
		return
	}

	item := q.items[0]
	q.items = q.items[1:]
	item.event.UtteranceID = q.newID()
	q.inFlight = &item

	if item.event.HasCue() && q.sounds != nil {
		q.sounds.Play(item.event.Cue)
	}
	q.log.Debug("speaking", "utterance_id", item.event.UtteranceID, "text", item.event.Text)
	q.speech.Speak(item.event.Text, item.event.UtteranceID)
}

func (q *AnnouncementQueue) complete(utteranceID string, err error) {
	if q.inFlight == nil || q.inFlight.event.UtteranceID != utteranceID {
		q.log.Debug("ignoring stale utterance callback", "utterance_id", utteranceID)
		return
	}

	item := *q.inFlight
	q.inFlight = nil
	if err != nil {
		q.log.Warn("utterance failed, advancing", "utterance_id", utteranceID, "text", item.event.Text, "error", err)
	}

	q.dispatchNext()
	if q.onConsume != nil {
		q.onConsume(item, err)
	}
}

func (q *AnnouncementQueue) dropInterjections() {
	kept := q.items[:0]
	for _, item := range q.items {
		if !item.interjected {
			kept = append(kept, item)
		}
	}
	q.items = kept
}

func (q *AnnouncementQueue) cancelPending() {
	if q.pending == nil {
		return
	}
	q.pending.Cancel()
	q.pending = nil
}
