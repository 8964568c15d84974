package application

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/bnema/workout-coach-cli/internal/ports"
)

// WorkoutService manages the workout preset catalog.
type WorkoutService struct {
	repo  ports.WorkoutRepository
	clock ports.Clock
}

func NewWorkoutService(repo ports.WorkoutRepository, clock ports.Clock) *WorkoutService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &WorkoutService{
		repo:  repo,
		clock: clock,
	}
}

func (s *WorkoutService) Add(ctx context.Context, cmd AddWorkoutCommand) (domain.Workout, error) {
	mode, err := BuildMode(cmd.Mode, cmd.Amount)
	if err != nil {
		return domain.Workout{}, err
	}

	workout := domain.Workout{
		Name:         domain.WorkoutName(strings.TrimSpace(string(cmd.Name))),
		ExerciseName: strings.TrimSpace(cmd.ExerciseName),
		Sets:         cmd.Sets,
		Mode:         mode,
		RestSeconds:  cmd.RestSeconds,
		CreatedAt:    s.clock.Now().UTC(),
	}
	if err := workout.Validate(); err != nil {
		return domain.Workout{}, err
	}

	existing, err := s.repo.GetByName(ctx, workout.Name)
	switch {
	case err == nil:
		if !cmd.Replace {
			return domain.Workout{}, fmt.Errorf("%w: %s", domain.ErrWorkoutExists, workout.Name)
		}
		workout.CreatedAt = existing.CreatedAt
	case !errors.Is(err, domain.ErrWorkoutNotFound):
		return domain.Workout{}, fmt.Errorf("get workout by name: %w", err)
	}

	if err := s.repo.Save(ctx, workout); err != nil {
		return domain.Workout{}, fmt.Errorf("save workout: %w", err)
	}

	return workout, nil
}

func (s *WorkoutService) Remove(ctx context.Context, cmd RemoveWorkoutCommand) error {
	if _, err := s.repo.GetByName(ctx, cmd.Name); err != nil {
		return fmt.Errorf("get workout by name: %w", err)
	}

	if err := s.repo.Delete(ctx, cmd.Name); err != nil {
		return fmt.Errorf("delete workout: %w", err)
	}

	return nil
}

func (s *WorkoutService) Get(ctx context.Context, name domain.WorkoutName) (domain.Workout, error) {
	workout, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return domain.Workout{}, fmt.Errorf("get workout by name: %w", err)
	}

	return workout, nil
}

func (s *WorkoutService) List(ctx context.Context) ([]domain.Workout, error) {
	workouts, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list workouts: %w", err)
	}

	sort.Slice(workouts, func(i, j int) bool {
		return workouts[i].Name < workouts[j].Name
	})

	return workouts, nil
}
