package tracker

import (
	"time"

	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/model"
	"timetable-tracker/pkg/datemath"
)

// Upper bounds for range and series queries.
const (
	MaxRangeDays     = 3660
	MaxSeriesMonths  = 120
	DefaultTrendDays = 30
	DefaultMonths    = 6
)

// --- UseCase Inputs ---

type CreateTaskInput struct {
	Name        string
	Description string
	Category    string
	StartDate   datemath.Date
	EndDate     *datemath.Date
	Priority    model.Priority
}

type ToggleInput struct {
	TaskID string
	Date   datemath.Date
}

type ListProgressInput struct {
	TaskID string // empty means every task
}

type StreakInput struct {
	TaskID string
	Date   datemath.Date
}

type RangeInput struct {
	Start datemath.Date
	Days  int
}

type MonthInput struct {
	Year  int
	Month time.Month
}

// SeriesInput selects Count days or months ending at End.
type SeriesInput struct {
	End   datemath.Date
	Count int
}

// --- UseCase Outputs ---

// DashboardOutput is the day/week/month summary shown on the dashboard.
type DashboardOutput struct {
	Date          datemath.Date
	WeekStart     datemath.Date
	Daily         engine.Stats
	Weekly        engine.Stats
	Monthly       engine.Stats
	OverallStreak int
}
