package tracker

import (
	"context"

	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/model"
	"timetable-tracker/pkg/datemath"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Load replaces the in-memory state with the repository's contents.
	Load(ctx context.Context) error

	// Tasks and completion records
	CreateTask(ctx context.Context, input CreateTaskInput) (model.Task, error)
	ListTasks(ctx context.Context) ([]model.Task, error)
	DetailTask(ctx context.Context, id string) (model.Task, error)
	DeleteTask(ctx context.Context, id string) error
	ToggleCompletion(ctx context.Context, input ToggleInput) (model.DailyProgress, error)
	ListProgress(ctx context.Context, input ListProgressInput) ([]model.DailyProgress, error)

	// Statistics
	TasksWithProgress(ctx context.Context, date datemath.Date) ([]engine.TaskProgress, error)
	DailyStats(ctx context.Context, date datemath.Date) (engine.Stats, error)
	WeeklyStats(ctx context.Context, start datemath.Date) (engine.Stats, error)
	RangeStats(ctx context.Context, input RangeInput) (engine.Stats, error)
	MonthlyStats(ctx context.Context, input MonthInput) (engine.Stats, error)
	Streak(ctx context.Context, input StreakInput) (int, error)
	OverallStreak(ctx context.Context, date datemath.Date) (int, error)
	Heatmap(ctx context.Context, date datemath.Date) ([]engine.HeatmapEntry, error)
	DailySeries(ctx context.Context, input SeriesInput) ([]engine.DayStats, error)
	MonthlySeries(ctx context.Context, input SeriesInput) ([]engine.MonthStats, error)
	StatusBreakdown(ctx context.Context, date datemath.Date) (engine.Breakdown, error)
	Totals(ctx context.Context) (engine.Totals, error)
	Dashboard(ctx context.Context, date datemath.Date) (DashboardOutput, error)
}
