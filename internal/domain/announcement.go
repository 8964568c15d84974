package domain

import (
	"fmt"
	"strings"
	"time"
)

type Cue int

const (
	CueNone Cue = iota
	CueBeep
	CueSuccess
	CueCountdown
	CueRest
)

func (c Cue) String() string {
	switch c {
	case CueBeep:
		return "beep"
	case CueSuccess:
		return "success"
	case CueCountdown:
		return "countdown"
	case CueRest:
		return "rest"
	default:
		return "none"
	}
}

func ParseCue(raw string) (Cue, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", "none":
		return CueNone, nil
	case "beep":
		return CueBeep, nil
	case "success":
		return CueSuccess, nil
	case "countdown":
		return CueCountdown, nil
	case "rest":
		return CueRest, nil
	default:
		return CueNone, fmt.Errorf("unknown cue %q", raw)
	}
}

func (c Cue) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cue) UnmarshalText(text []byte) error {
	parsed, err := ParseCue(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// AnnouncementEvent is one spoken (or cued) step of a phase timeline.
// Offset is relative to the start of the phase.
type AnnouncementEvent struct {
	Text        string        `json:"text" yaml:"text"`
	Offset      time.Duration `json:"offset" yaml:"offset"`
	Cue         Cue           `json:"cue" yaml:"cue"`
	UtteranceID string        `json:"utterance_id,omitempty" yaml:"utterance_id,omitempty"`
	Terminal    bool          `json:"terminal,omitempty" yaml:"terminal,omitempty"`
}

func (e AnnouncementEvent) HasCue() bool {
	return e.Cue != CueNone
}
