package ports

import "github.com/bnema/workout-coach-cli/internal/domain"

// SoundCuePlayer plays short cues. It is best effort and never fails.
type SoundCuePlayer interface {
	Play(cue domain.Cue)
}
