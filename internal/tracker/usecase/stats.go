package usecase

import (
	"context"
	"time"

	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/tracker"
	"timetable-tracker/pkg/datemath"
)

// TasksWithProgress returns the tasks active on date with their derived progress.
func (uc *implUseCase) TasksWithProgress(ctx context.Context, date datemath.Date) ([]engine.TaskProgress, error) {
	defer uc.observe("tasks_with_progress", time.Now())
	return uc.snapshot().TasksWithProgress(uc.orToday(date)), nil
}

func (uc *implUseCase) DailyStats(ctx context.Context, date datemath.Date) (engine.Stats, error) {
	defer uc.observe("daily", time.Now())
	return uc.snapshot().DailyStats(uc.orToday(date)), nil
}

// WeeklyStats covers the seven days starting at start. A zero start means
// the Monday of the current week.
func (uc *implUseCase) WeeklyStats(ctx context.Context, start datemath.Date) (engine.Stats, error) {
	defer uc.observe("weekly", time.Now())
	if start.IsZero() {
		start = uc.today().StartOfWeek()
	}
	return uc.snapshot().WeeklyStats(start), nil
}

func (uc *implUseCase) RangeStats(ctx context.Context, input tracker.RangeInput) (engine.Stats, error) {
	defer uc.observe("range", time.Now())
	if input.Days <= 0 || input.Days > tracker.MaxRangeDays {
		return engine.Stats{}, tracker.ErrInvalidRange
	}
	return uc.snapshot().RangeStats(uc.orToday(input.Start), input.Days), nil
}

func (uc *implUseCase) MonthlyStats(ctx context.Context, input tracker.MonthInput) (engine.Stats, error) {
	defer uc.observe("monthly", time.Now())
	if input.Month < time.January || input.Month > time.December || input.Year < 1 {
		return engine.Stats{}, tracker.ErrInvalidRange
	}
	return uc.snapshot().MonthlyStats(input.Year, input.Month), nil
}

// Streak returns the task's streak as of the input date. Returns
// ErrTaskNotFound when the task does not exist.
func (uc *implUseCase) Streak(ctx context.Context, input tracker.StreakInput) (int, error) {
	defer uc.observe("streak", time.Now())
	snap := uc.snapshot()
	task, ok := snap.FindTask(input.TaskID)
	if !ok {
		return 0, tracker.ErrTaskNotFound
	}
	return snap.Streak(task, uc.orToday(input.Date)), nil
}

func (uc *implUseCase) OverallStreak(ctx context.Context, date datemath.Date) (int, error) {
	defer uc.observe("overall_streak", time.Now())
	return uc.snapshot().OverallStreak(uc.orToday(date)), nil
}

func (uc *implUseCase) Heatmap(ctx context.Context, date datemath.Date) ([]engine.HeatmapEntry, error) {
	defer uc.observe("heatmap", time.Now())
	return uc.snapshot().Heatmap(uc.orToday(date)), nil
}

// DailySeries returns per-day stats for the trailing Count days.
func (uc *implUseCase) DailySeries(ctx context.Context, input tracker.SeriesInput) ([]engine.DayStats, error) {
	defer uc.observe("daily_series", time.Now())
	if input.Count <= 0 || input.Count > tracker.MaxRangeDays {
		return nil, tracker.ErrInvalidRange
	}
	return uc.snapshot().DailySeries(uc.orToday(input.End), input.Count), nil
}

// MonthlySeries returns monthly stats for the trailing Count months.
func (uc *implUseCase) MonthlySeries(ctx context.Context, input tracker.SeriesInput) ([]engine.MonthStats, error) {
	defer uc.observe("monthly_series", time.Now())
	if input.Count <= 0 || input.Count > tracker.MaxSeriesMonths {
		return nil, tracker.ErrInvalidRange
	}
	return uc.snapshot().MonthlySeries(uc.orToday(input.End), input.Count), nil
}

func (uc *implUseCase) StatusBreakdown(ctx context.Context, date datemath.Date) (engine.Breakdown, error) {
	defer uc.observe("breakdown", time.Now())
	return uc.snapshot().StatusBreakdown(uc.orToday(date)), nil
}

func (uc *implUseCase) Totals(ctx context.Context) (engine.Totals, error) {
	defer uc.observe("totals", time.Now())
	return uc.snapshot().Totals(), nil
}

// Dashboard summarizes the day, its Monday-based week and its month, all
// computed from the same snapshot.
func (uc *implUseCase) Dashboard(ctx context.Context, date datemath.Date) (tracker.DashboardOutput, error) {
	defer uc.observe("dashboard", time.Now())
	date = uc.orToday(date)
	weekStart := date.StartOfWeek()
	snap := uc.snapshot()

	return tracker.DashboardOutput{
		Date:          date,
		WeekStart:     weekStart,
		Daily:         snap.DailyStats(date),
		Weekly:        snap.WeeklyStats(weekStart),
		Monthly:       snap.MonthlyStats(date.Year(), date.Month()),
		OverallStreak: snap.OverallStreak(date),
	}, nil
}
