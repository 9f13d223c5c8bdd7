package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/model"
	"timetable-tracker/internal/tracker"
	"timetable-tracker/internal/tracker/repository/memory"
	"timetable-tracker/internal/tracker/usecase"
	"timetable-tracker/pkg/datemath"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Info(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *mockLogger) Warnf(ctx context.Context, format string, args ...any)   {}
func (m *mockLogger) Error(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Errorf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *mockLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *mockLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *mockLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

// failingRepo loads fine and refuses every save.
type failingRepo struct {
	seed engine.Snapshot
}

var errDiskFull = errors.New("disk full")

func (r *failingRepo) Load(ctx context.Context) (engine.Snapshot, error) { return r.seed, nil }
func (r *failingRepo) Save(ctx context.Context, s engine.Snapshot) error { return errDiskFull }

var _ tracker.UseCase = usecase.New(&mockLogger{}, memory.New(engine.Snapshot{}), nil)

func d(s string) datemath.Date { return datemath.MustParse(s) }

// 2024-02-01 10:00 in UTC.
var fixedNow = time.Date(2024, time.February, 1, 10, 0, 0, 0, time.UTC)

func newUseCase(t *testing.T, seed engine.Snapshot) tracker.UseCase {
	t.Helper()
	n := 0
	uc := usecase.New(&mockLogger{}, memory.New(seed), nil,
		usecase.WithClock(func() time.Time { return fixedNow }),
		usecase.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("task-%d", n)
		}),
		usecase.WithLocation(time.UTC),
	)
	require.NoError(t, uc.Load(context.Background()))
	return uc
}

func TestCreateTask(t *testing.T) {
	end := d("2024-01-31")
	before := d("2023-12-31")

	tcs := map[string]struct {
		input   tracker.CreateTaskInput
		wantErr error
		check   func(t *testing.T, task model.Task)
	}{
		"valid task defaults priority to medium": {
			input: tracker.CreateTaskInput{Name: "  Read  ", StartDate: d("2024-01-01")},
			check: func(t *testing.T, task model.Task) {
				assert.Equal(t, "task-1", task.ID)
				assert.Equal(t, "Read", task.Name)
				assert.Equal(t, model.PriorityMedium, task.Priority)
				assert.Equal(t, fixedNow, task.CreatedAt)
				assert.Nil(t, task.EndDate)
			},
		},
		"bounded task keeps end date": {
			input: tracker.CreateTaskInput{Name: "Run", StartDate: d("2024-01-01"), EndDate: &end, Priority: model.PriorityHigh},
			check: func(t *testing.T, task model.Task) {
				require.NotNil(t, task.EndDate)
				assert.Equal(t, end, *task.EndDate)
				assert.Equal(t, model.PriorityHigh, task.Priority)
			},
		},
		"empty name": {
			input:   tracker.CreateTaskInput{Name: "   ", StartDate: d("2024-01-01")},
			wantErr: tracker.ErrInvalidTask,
		},
		"missing start date": {
			input:   tracker.CreateTaskInput{Name: "Read"},
			wantErr: tracker.ErrInvalidTask,
		},
		"end before start": {
			input:   tracker.CreateTaskInput{Name: "Read", StartDate: d("2024-01-01"), EndDate: &before},
			wantErr: tracker.ErrInvalidTask,
		},
		"unknown priority": {
			input:   tracker.CreateTaskInput{Name: "Read", StartDate: d("2024-01-01"), Priority: "urgent"},
			wantErr: tracker.ErrInvalidTask,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			uc := newUseCase(t, engine.Snapshot{})
			task, err := uc.CreateTask(context.Background(), tc.input)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				tasks, _ := uc.ListTasks(context.Background())
				assert.Empty(t, tasks)
				return
			}
			require.NoError(t, err)
			tc.check(t, task)

			got, err := uc.DetailTask(context.Background(), task.ID)
			require.NoError(t, err)
			assert.Equal(t, task, got)
		})
	}
}

func TestTaskNotFoundPolicy(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, engine.Snapshot{})

	_, err := uc.DetailTask(ctx, "missing")
	assert.ErrorIs(t, err, tracker.ErrTaskNotFound)

	_, err = uc.Streak(ctx, tracker.StreakInput{TaskID: "missing"})
	assert.ErrorIs(t, err, tracker.ErrTaskNotFound)

	_, err = uc.ToggleCompletion(ctx, tracker.ToggleInput{TaskID: "missing"})
	assert.ErrorIs(t, err, tracker.ErrTaskNotFound)

	_, err = uc.ListProgress(ctx, tracker.ListProgressInput{TaskID: "missing"})
	assert.ErrorIs(t, err, tracker.ErrTaskNotFound)

	assert.NoError(t, uc.DeleteTask(ctx, "missing"))
}

func TestToggleAndDelete(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, engine.Snapshot{})

	task, err := uc.CreateTask(ctx, tracker.CreateTaskInput{Name: "Read", StartDate: d("2024-01-01")})
	require.NoError(t, err)

	// zero date resolves to today (2024-02-01)
	rec, err := uc.ToggleCompletion(ctx, tracker.ToggleInput{TaskID: task.ID})
	require.NoError(t, err)
	assert.Equal(t, d("2024-02-01"), rec.Date)
	assert.True(t, rec.Completed)

	rec, err = uc.ToggleCompletion(ctx, tracker.ToggleInput{TaskID: task.ID, Date: d("2024-02-01")})
	require.NoError(t, err)
	assert.False(t, rec.Completed)

	progress, err := uc.ListProgress(ctx, tracker.ListProgressInput{TaskID: task.ID})
	require.NoError(t, err)
	assert.Len(t, progress, 1)

	require.NoError(t, uc.DeleteTask(ctx, task.ID))

	all, err := uc.ListProgress(ctx, tracker.ListProgressInput{})
	require.NoError(t, err)
	assert.Empty(t, all)

	_, err = uc.DetailTask(ctx, task.ID)
	assert.ErrorIs(t, err, tracker.ErrTaskNotFound)
}

func TestMutationPersistsThroughRepository(t *testing.T) {
	ctx := context.Background()
	repo := memory.New(engine.Snapshot{})
	uc := usecase.New(&mockLogger{}, repo, nil)
	require.NoError(t, uc.Load(ctx))

	task, err := uc.CreateTask(ctx, tracker.CreateTaskInput{Name: "Read", StartDate: d("2024-01-01")})
	require.NoError(t, err)
	_, err = uc.ToggleCompletion(ctx, tracker.ToggleInput{TaskID: task.ID, Date: d("2024-01-02")})
	require.NoError(t, err)

	stored, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Len(t, stored.Tasks, 1)
	assert.Equal(t, task.ID, stored.Tasks[0].ID)
	require.Len(t, stored.Progress, 1)
	assert.Equal(t, d("2024-01-02"), stored.Progress[0].Date)
}

func TestDeleteUnknownTaskDoesNotWrite(t *testing.T) {
	ctx := context.Background()
	uc := usecase.New(&mockLogger{}, &failingRepo{}, nil)
	require.NoError(t, uc.Load(ctx))

	// any Save would fail with errDiskFull
	assert.NoError(t, uc.DeleteTask(ctx, "missing"))
}

func TestFailedSaveKeepsState(t *testing.T) {
	ctx := context.Background()
	seed := engine.Snapshot{
		Tasks: []model.Task{{ID: "t1", Name: "Read", StartDate: d("2024-01-01"), Priority: model.PriorityLow}},
	}
	uc := usecase.New(&mockLogger{}, &failingRepo{seed: seed}, nil)
	require.NoError(t, uc.Load(ctx))

	_, err := uc.CreateTask(ctx, tracker.CreateTaskInput{Name: "Run", StartDate: d("2024-01-01")})
	assert.ErrorIs(t, err, errDiskFull)

	_, err = uc.ToggleCompletion(ctx, tracker.ToggleInput{TaskID: "t1", Date: d("2024-01-01")})
	assert.ErrorIs(t, err, errDiskFull)

	assert.ErrorIs(t, uc.DeleteTask(ctx, "t1"), errDiskFull)

	tasks, err := uc.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "t1", tasks[0].ID)

	progress, err := uc.ListProgress(ctx, tracker.ListProgressInput{})
	require.NoError(t, err)
	assert.Empty(t, progress)
}

func statsSeed() engine.Snapshot {
	return engine.Snapshot{
		Tasks: []model.Task{
			{ID: "a", Name: "A", StartDate: d("2024-01-01"), Priority: model.PriorityMedium},
			{ID: "b", Name: "B", StartDate: d("2024-01-15"), Priority: model.PriorityMedium},
		},
		Progress: []model.DailyProgress{
			{TaskID: "a", Date: d("2024-01-30"), Completed: true},
			{TaskID: "a", Date: d("2024-01-31"), Completed: true},
			{TaskID: "b", Date: d("2024-01-31"), Completed: true},
			{TaskID: "a", Date: d("2024-02-01"), Completed: true},
		},
	}
}

func TestStatistics(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, statsSeed())

	daily, err := uc.DailyStats(ctx, datemath.Date{})
	require.NoError(t, err)
	assert.Equal(t, engine.Stats{Completed: 1, Total: 2, Rate: 50}, daily)

	streak, err := uc.Streak(ctx, tracker.StreakInput{TaskID: "a"})
	require.NoError(t, err)
	assert.Equal(t, 3, streak)

	overall, err := uc.OverallStreak(ctx, d("2024-01-31"))
	require.NoError(t, err)
	assert.Equal(t, 1, overall)

	rng, err := uc.RangeStats(ctx, tracker.RangeInput{Start: d("2024-01-30"), Days: 3})
	require.NoError(t, err)
	assert.Equal(t, 4, rng.Completed)
	assert.Equal(t, 6, rng.Total)

	monthly, err := uc.MonthlyStats(ctx, tracker.MonthInput{Year: 2024, Month: time.January})
	require.NoError(t, err)
	assert.Equal(t, 3, monthly.Completed)
	assert.Equal(t, 31+17, monthly.Total)

	heat, err := uc.Heatmap(ctx, datemath.Date{})
	require.NoError(t, err)
	require.Len(t, heat, engine.HeatmapDays)
	assert.Equal(t, d("2024-02-01"), heat[len(heat)-1].Date)

	today, err := uc.TasksWithProgress(ctx, datemath.Date{})
	require.NoError(t, err)
	require.Len(t, today, 2)

	totals, err := uc.Totals(ctx)
	require.NoError(t, err)
	assert.Equal(t, engine.Totals{CompletedRecords: 4, DaysWithRecords: 3}, totals)

	dash, err := uc.Dashboard(ctx, datemath.Date{})
	require.NoError(t, err)
	assert.Equal(t, d("2024-02-01"), dash.Date)
	assert.Equal(t, d("2024-01-29"), dash.WeekStart)
	assert.Equal(t, daily, dash.Daily)
	assert.Equal(t, 0, dash.OverallStreak)
}

func TestRangeValidation(t *testing.T) {
	ctx := context.Background()
	uc := newUseCase(t, statsSeed())

	_, err := uc.RangeStats(ctx, tracker.RangeInput{Start: d("2024-01-01"), Days: 0})
	assert.ErrorIs(t, err, tracker.ErrInvalidRange)

	_, err = uc.RangeStats(ctx, tracker.RangeInput{Start: d("2024-01-01"), Days: tracker.MaxRangeDays + 1})
	assert.ErrorIs(t, err, tracker.ErrInvalidRange)

	_, err = uc.MonthlyStats(ctx, tracker.MonthInput{Year: 2024, Month: 13})
	assert.ErrorIs(t, err, tracker.ErrInvalidRange)

	_, err = uc.DailySeries(ctx, tracker.SeriesInput{Count: -1})
	assert.ErrorIs(t, err, tracker.ErrInvalidRange)

	_, err = uc.MonthlySeries(ctx, tracker.SeriesInput{Count: tracker.MaxSeriesMonths + 1})
	assert.ErrorIs(t, err, tracker.ErrInvalidRange)

	series, err := uc.MonthlySeries(ctx, tracker.SeriesInput{Count: 2})
	require.NoError(t, err)
	require.Len(t, series, 2)
	assert.Equal(t, time.January, series[0].Month)
	assert.Equal(t, time.February, series[1].Month)
}
