// Package console renders sound cues as glyphs on a terminal.
package console

import (
	"fmt"
	"io"
	"sync"

	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/bnema/workout-coach-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

const bell = "\a"

var glyphs = map[domain.Cue]string{
	domain.CueBeep:      "♪",
	domain.CueSuccess:   "✔",
	domain.CueCountdown: "⏱",
	domain.CueRest:      "☾",
}

type Player struct {
	out   io.Writer
	bell  bool
	style lipgloss.Style

	mu     sync.Mutex
	played []domain.Cue
}

var _ ports.SoundCuePlayer = (*Player)(nil)

// NewPlayer writes one line per cue. With ringBell set, the terminal bell
// is rung too.
func NewPlayer(out io.Writer, ringBell bool) *Player {
	if out == nil {
		out = io.Discard
	}

	return &Player{
		out:   out,
		bell:  ringBell,
		style: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

func (p *Player) Play(cue domain.Cue) {
	glyph, ok := glyphs[cue]
	if !ok {
		return
	}

	p.mu.Lock()
	p.played = append(p.played, cue)
	p.mu.Unlock()

	line := p.style.Render(fmt.Sprintf("%s %s", glyph, cue))
	if p.bell {
		line = bell + line
	}
	fmt.Fprintln(p.out, line)
}

// Played returns the cues played so far.
func (p *Player) Played() []domain.Cue {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.Cue(nil), p.played...)
}
