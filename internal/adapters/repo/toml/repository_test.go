package toml

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/workout-coach-cli/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T, workoutsPath string) *Repository {
	t.Helper()
	config := viper.New()
	config.Set(WorkoutsPathKey, workoutsPath)

	repo, err := NewRepository(config)
	require.NoError(t, err)
	return repo
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "workouts.toml"))

	created := time.Date(2026, 2, 14, 11, 0, 0, 0, time.UTC)
	first := domain.Workout{
		Name:         "drives",
		ExerciseName: "Forehand drive",
		Sets:         3,
		Mode:         domain.RepBased{Reps: 12},
		RestSeconds:  45,
		CreatedAt:    created,
	}
	second := domain.Workout{
		Name:         "ghosting",
		ExerciseName: "Court ghosting",
		Sets:         5,
		Mode:         domain.TimeBased{Seconds: 40},
		RestSeconds:  20,
		CreatedAt:    created,
	}

	require.NoError(t, repo.Save(context.Background(), first))
	require.NoError(t, repo.Save(context.Background(), second))

	got, err := repo.GetByName(context.Background(), first.Name)
	require.NoError(t, err)
	assert.Equal(t, first, got)

	workouts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.ElementsMatch(t, []domain.Workout{first, second}, workouts)
}

func TestRepositorySaveReplacesByName(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "workouts.toml"))

	require.NoError(t, repo.Save(context.Background(), domain.Workout{Name: "plank", ExerciseName: "Plank", Sets: 1, Mode: domain.TimeBased{Seconds: 30}}))
	require.NoError(t, repo.Save(context.Background(), domain.Workout{Name: "plank", ExerciseName: "Plank", Sets: 3, Mode: domain.TimeBased{Seconds: 60}}))

	workouts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, 3, workouts[0].Sets)
	assert.Equal(t, domain.TimeBased{Seconds: 60}, workouts[0].Mode)
}

func TestRepositoryDelete(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "workouts.toml"))
	require.NoError(t, repo.Save(context.Background(), domain.Workout{Name: "a", ExerciseName: "A", Sets: 1, Mode: domain.RepBased{Reps: 1}}))
	require.NoError(t, repo.Save(context.Background(), domain.Workout{Name: "b", ExerciseName: "B", Sets: 1, Mode: domain.RepBased{Reps: 1}}))

	require.NoError(t, repo.Delete(context.Background(), "a"))

	_, err := repo.GetByName(context.Background(), "a")
	require.ErrorIs(t, err, domain.ErrWorkoutNotFound)

	err = repo.Delete(context.Background(), "a")
	require.ErrorIs(t, err, domain.ErrWorkoutNotFound)

	workouts, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, workouts, 1)
	assert.Equal(t, domain.WorkoutName("b"), workouts[0].Name)
}

func TestRepositoryReadsHandWrittenCatalog(t *testing.T) {
	t.Parallel()

	workoutsPath := filepath.Join(t.TempDir(), "workouts.toml")
	require.NoError(t, os.WriteFile(workoutsPath, []byte(strings.Join([]string{
		"version = 1",
		"",
		"[[workouts]]",
		"name = \"lunges\"",
		"exercise = \"Lunges\"",
		"sets = 3",
		"reps = 15",
		"rest_seconds = 30",
		"",
		"[[workouts]]",
		"name = \"wall-sit\"",
		"exercise = \"Wall sit\"",
		"sets = 2",
		"mode = \"timed\"",
		"seconds = 45",
		"rest_seconds = 60",
		"",
	}, "\n")), 0o600))

	repo := newTestRepository(t, workoutsPath)

	lunges, err := repo.GetByName(context.Background(), "lunges")
	require.NoError(t, err)
	assert.Equal(t, domain.RepBased{Reps: 15}, lunges.Mode)
	assert.True(t, lunges.CreatedAt.IsZero())

	wallSit, err := repo.GetByName(context.Background(), "wall-sit")
	require.NoError(t, err)
	assert.Equal(t, domain.TimeBased{Seconds: 45}, wallSit.Mode)
	assert.Equal(t, 60, wallSit.RestSeconds)
}

func TestRepositoryUnknownModeReturnsError(t *testing.T) {
	t.Parallel()

	workoutsPath := filepath.Join(t.TempDir(), "workouts.toml")
	require.NoError(t, os.WriteFile(workoutsPath, []byte("[[workouts]]\nname = \"x\"\nmode = \"laps\"\n"), 0o600))

	repo := newTestRepository(t, workoutsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported mode")
}

func TestRepositorySaveCreatesDefaultPathAndEnforcesPermissions(t *testing.T) {
	homeDir := t.TempDir()
	t.Setenv("HOME", homeDir)

	repo, err := NewRepository(viper.New())
	require.NoError(t, err)

	err = repo.Save(context.Background(), domain.Workout{Name: "x", ExerciseName: "X", Sets: 1, Mode: domain.RepBased{Reps: 1}})
	require.NoError(t, err)

	workoutsPath := filepath.Join(homeDir, ".coach", "workouts.toml")
	assert.Equal(t, workoutsPath, repo.Path())
	info, err := os.Stat(workoutsPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestRepositoryMissingFileBehaviors(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "missing", "workouts.toml"))

	workouts, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, workouts)

	_, err = repo.GetByName(context.Background(), "x")
	require.ErrorIs(t, err, domain.ErrWorkoutNotFound)
}

func TestRepositoryListMalformedTOMLReturnsError(t *testing.T) {
	t.Parallel()

	workoutsPath := filepath.Join(t.TempDir(), "workouts.toml")
	require.NoError(t, os.WriteFile(workoutsPath, []byte("workouts = ["), 0o600))

	repo := newTestRepository(t, workoutsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "decode workouts file")
}

func TestRepositorySaveCanceledContextReturnsContextError(t *testing.T) {
	t.Parallel()

	repo := newTestRepository(t, filepath.Join(t.TempDir(), "workouts.toml"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := repo.Save(ctx, domain.Workout{Name: "x", ExerciseName: "X", Sets: 1, Mode: domain.RepBased{Reps: 1}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRepositoryConcurrentSavesAcrossInstancesPreserveBothWorkouts(t *testing.T) {
	t.Parallel()

	workoutsPath := filepath.Join(t.TempDir(), "workouts.toml")
	repoA := newTestRepository(t, workoutsPath)
	repoB := newTestRepository(t, workoutsPath)

	const perRepoWrites = 50
	start := make(chan struct{})
	errCh := make(chan error, perRepoWrites*2)
	var wg sync.WaitGroup
	wg.Add(2)

	save := func(repo *Repository, prefix string) {
		defer wg.Done()
		<-start
		for i := 0; i < perRepoWrites; i++ {
			errCh <- repo.Save(context.Background(), domain.Workout{
				Name:         domain.WorkoutName(prefix + strconv.Itoa(i)),
				ExerciseName: prefix,
				Sets:         1,
				Mode:         domain.RepBased{Reps: i},
			})
		}
	}

	go save(repoA, "a-")
	go save(repoB, "b-")

	close(start)
	wg.Wait()
	close(errCh)

	for err := range errCh {
		require.NoError(t, err)
	}

	workouts, err := repoA.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, workouts, perRepoWrites*2)
}

func TestRepositorySaveSerializedTOMLIncludesVersion(t *testing.T) {
	t.Parallel()

	workoutsPath := filepath.Join(t.TempDir(), "workouts.toml")
	repo := newTestRepository(t, workoutsPath)

	require.NoError(t, repo.Save(context.Background(), domain.Workout{Name: "x", ExerciseName: "X", Sets: 1, Mode: domain.TimeBased{Seconds: 20}}))

	data, err := os.ReadFile(workoutsPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version = 1")
	assert.Contains(t, string(data), "timed")
}

func TestRepositoryFutureSchemaVersionReturnsError(t *testing.T) {
	t.Parallel()

	workoutsPath := filepath.Join(t.TempDir(), "workouts.toml")
	require.NoError(t, os.WriteFile(workoutsPath, []byte("version = 999\n\nworkouts = []\n"), 0o600))

	repo := newTestRepository(t, workoutsPath)

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "unsupported workouts schema version")
}
