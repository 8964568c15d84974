// Package player plays cue samples from a directory with an external audio
// player such as paplay, aplay or afplay.
package player

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/bnema/workout-coach-cli/internal/ports"
)

var ErrUnavailable = errors.New("audio player unavailable")

// Candidates lists the players tried when none is configured.
var Candidates = []string{"paplay", "aplay", "afplay"}

type runFunc func(ctx context.Context, path string, args ...string) (stderr string, err error)

type Player struct {
	dir     string
	command string
	run     runFunc
	stat    func(name string) (os.FileInfo, error)
	spawn   func(func())
	log     *slog.Logger
	ctx     context.Context
}

var _ ports.SoundCuePlayer = (*Player)(nil)

// New resolves command on PATH, or the first available candidate when
// command is empty.
func New(ctx context.Context, dir string, command string, log *slog.Logger) (*Player, error) {
	return newPlayer(ctx, dir, command, exec.LookPath, log)
}

func newPlayer(ctx context.Context, dir string, command string, lookPath func(string) (string, error), log *slog.Logger) (*Player, error) {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("sounds directory is required")
	}

	path, err := resolve(command, lookPath)
	if err != nil {
		return nil, err
	}

	return &Player{
		dir:     dir,
		command: path,
		run:     runCommand,
		stat:    os.Stat,
		spawn:   func(fn func()) { go fn() },
		log:     log,
		ctx:     ctx,
	}, nil
}

func resolve(command string, lookPath func(string) (string, error)) (string, error) {
	candidates := Candidates
	if command = strings.TrimSpace(command); command != "" {
		candidates = []string{command}
	}

	for _, candidate := range candidates {
		path, err := lookPath(candidate)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, exec.ErrNotFound) {
			return "", fmt.Errorf("locate %s: %w", candidate, err)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrUnavailable, strings.Join(candidates, ", "))
}

// SamplePath is where the sample for cue is expected.
func (p *Player) SamplePath(cue domain.Cue) string {
	return filepath.Join(p.dir, cue.String()+".wav")
}

func (p *Player) Play(cue domain.Cue) {
	if cue == domain.CueNone {
		return
	}

	sample := p.SamplePath(cue)
	if _, err := p.stat(sample); err != nil {
		p.log.Debug("cue sample missing", "cue", cue.String(), "path", sample, "error", err)
		return
	}

	p.spawn(func() {
		if stderr, err := p.run(p.ctx, p.command, sample); err != nil {
			p.log.Warn("cue playback failed", "cue", cue.String(), "error", err, "stderr", stderr)
		}
	})
}

func runCommand(ctx context.Context, path string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	err := cmd.Run()
	return strings.TrimSpace(stderr.String()), err
}
