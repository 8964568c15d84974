package ports

type SequencerListener interface {
	OnExerciseStarted(exerciseName string)
	OnExerciseCompleted(exerciseName string)
	OnSetCompleted(setNumber int, totalSets int)
	OnRestStarted(restSeconds int)
	OnRestCompleted()
	OnWorkoutCompleted()
	OnVoiceGuideError(message string)
}

// WarningListener is an optional extension of SequencerListener that
// receives non-fatal voice guide warnings, such as a failed utterance.
type WarningListener interface {
	OnVoiceGuideWarning(message string)
}
