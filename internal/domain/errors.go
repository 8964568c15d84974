package domain

import "errors"

var (
	ErrInvalidParams         = errors.New("invalid session parameters")
	ErrNoActiveSession       = errors.New("no active session")
	ErrVoiceGuideUnavailable = errors.New("voice guide unavailable")
	ErrWorkoutNotFound       = errors.New("workout not found")
	ErrWorkoutExists         = errors.New("workout already exists")
	ErrInvalidTransition     = errors.New("invalid session transition")
)
