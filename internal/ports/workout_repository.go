package ports

import (
	"context"

	"github.com/bnema/workout-coach-cli/internal/domain"
)

type WorkoutRepository interface {
	GetByName(ctx context.Context, name domain.WorkoutName) (domain.Workout, error)
	List(ctx context.Context) ([]domain.Workout, error)
	Save(ctx context.Context, workout domain.Workout) error
	Delete(ctx context.Context, name domain.WorkoutName) error
}
