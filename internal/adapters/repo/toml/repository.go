package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/bnema/workout-coach-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	WorkoutsPathKey    = "workouts.path"
	workoutsFileMode   = 0o600
	workoutsDirMode    = 0o700
	workoutsConfigDir  = ".coach"
	workoutsConfigFile = "workouts.toml"
	tempFilePattern    = ".workouts-*.toml.tmp"
)

type Repository struct {
	workoutsPath string
	mu           *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.WorkoutRepository = (*Repository)(nil)

// DefaultPath is ~/.coach/workouts.toml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}

	return filepath.Join(homeDir, workoutsConfigDir, workoutsConfigFile), nil
}

func NewRepository(cfg *viper.Viper) (*Repository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	workoutsPath := cfg.GetString(WorkoutsPathKey)
	if workoutsPath == "" {
		defaultPath, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		workoutsPath = defaultPath
	}

	workoutsPath, err := normalizeWorkoutsPath(workoutsPath)
	if err != nil {
		return nil, err
	}

	return &Repository{workoutsPath: workoutsPath, mu: lockForPath(workoutsPath)}, nil
}

func (r *Repository) Path() string {
	return r.workoutsPath
}

func (r *Repository) Save(ctx context.Context, workout domain.Workout) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded, err := toSchema(workout)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	updated := false
	for i := range file.Workouts {
		if file.Workouts[i].Name == encoded.Name {
			file.Workouts[i] = encoded
			updated = true
			break
		}
	}

	if !updated {
		file.Workouts = append(file.Workouts, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *Repository) GetByName(ctx context.Context, name domain.WorkoutName) (domain.Workout, error) {
	if err := ctx.Err(); err != nil {
		return domain.Workout{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.Workout{}, err
	}

	for _, entry := range file.Workouts {
		if entry.Name == string(name) {
			return fromSchema(entry)
		}
	}

	return domain.Workout{}, fmt.Errorf("%w: %s", domain.ErrWorkoutNotFound, name)
}

func (r *Repository) List(ctx context.Context) ([]domain.Workout, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return nil, err
	}

	workouts := make([]domain.Workout, 0, len(file.Workouts))
	for _, entry := range file.Workouts {
		workout, err := fromSchema(entry)
		if err != nil {
			return nil, err
		}
		workouts = append(workouts, workout)
	}

	return workouts, nil
}

func (r *Repository) Delete(ctx context.Context, name domain.WorkoutName) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Workouts[:0]
	found := false
	for _, entry := range file.Workouts {
		if entry.Name == string(name) {
			found = true
			continue
		}
		kept = append(kept, entry)
	}
	if !found {
		return fmt.Errorf("%w: %s", domain.ErrWorkoutNotFound, name)
	}
	file.Workouts = kept

	return r.writeSchema(file)
}

func (r *Repository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.workoutsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			file := fileSchema{}
			file.applyDefaults()
			return file, nil
		}
		return fileSchema{}, fmt.Errorf("read workouts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode workouts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeWorkoutsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve workouts path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *Repository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	if err := os.MkdirAll(filepath.Dir(r.workoutsPath), workoutsDirMode); err != nil {
		return fmt.Errorf("create workouts directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode workouts file: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(r.workoutsPath), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp workouts file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp workouts file: %w", err)
	}

	if err := tempFile.Chmod(workoutsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp workouts file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp workouts file: %w", err)
	}

	if err := os.Rename(tempName, r.workoutsPath); err != nil {
		return fmt.Errorf("replace workouts file: %w", err)
	}

	cleanup = false

	if err := os.Chmod(r.workoutsPath, workoutsFileMode); err != nil {
		return fmt.Errorf("chmod workouts file: %w", err)
	}

	return nil
}

func toSchema(workout domain.Workout) (workoutSchema, error) {
	entry := workoutSchema{
		Name:        string(workout.Name),
		Exercise:    workout.ExerciseName,
		Sets:        workout.Sets,
		RestSeconds: workout.RestSeconds,
		CreatedAt:   formatTime(workout.CreatedAt),
	}

	switch mode := workout.Mode.(type) {
	case domain.RepBased:
		entry.Mode = modeReps
		entry.Reps = mode.Reps
	case domain.TimeBased:
		entry.Mode = modeTimed
		entry.Seconds = mode.Seconds
	default:
		return workoutSchema{}, fmt.Errorf("encode workout %q: %w: unsupported mode %T", workout.Name, domain.ErrInvalidParams, workout.Mode)
	}

	return entry, nil
}

func fromSchema(entry workoutSchema) (domain.Workout, error) {
	workout := domain.Workout{
		Name:         domain.WorkoutName(entry.Name),
		ExerciseName: entry.Exercise,
		Sets:         entry.Sets,
		RestSeconds:  entry.RestSeconds,
		CreatedAt:    parseTime(entry.CreatedAt),
	}

	switch entry.Mode {
	case modeReps, "":
		workout.Mode = domain.RepBased{Reps: entry.Reps}
	case modeTimed:
		workout.Mode = domain.TimeBased{Seconds: entry.Seconds}
	default:
		return domain.Workout{}, fmt.Errorf("decode workout %q: unsupported mode %q", entry.Name, entry.Mode)
	}

	return workout, nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
