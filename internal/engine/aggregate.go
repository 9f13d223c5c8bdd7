package engine

import (
	"time"

	"timetable-tracker/internal/model"
	"timetable-tracker/pkg/datemath"
)

// Stats is a completed/total count with its percentage rate.
type Stats struct {
	Completed int
	Total     int
	Rate      float64
}

// NewStats computes Rate from the counts; Rate is 0 when total is 0.
func NewStats(completed, total int) Stats {
	st := Stats{Completed: completed, Total: total}
	if total > 0 {
		st.Rate = float64(completed) / float64(total) * 100
	}
	return st
}

// Plus sums two Stats and recomputes the rate from the summed counts.
func (st Stats) Plus(o Stats) Stats {
	return NewStats(st.Completed+o.Completed, st.Total+o.Total)
}

// DailyStats counts tasks active on d and how many of them are completed.
func (s Snapshot) DailyStats(d datemath.Date) Stats {
	return s.dailyStats(d, s.index())
}

func (s Snapshot) dailyStats(d datemath.Date, idx completionIndex) Stats {
	completed, total := 0, 0
	for _, t := range s.Tasks {
		if !IsActive(t, d) {
			continue
		}
		total++
		if idx.done(t.ID, d) {
			completed++
		}
	}
	return NewStats(completed, total)
}

// RangeStats sums DailyStats over days consecutive days starting at start.
// Days with more active tasks weigh proportionally more in the rate.
func (s Snapshot) RangeStats(start datemath.Date, days int) Stats {
	return s.rangeStats(start, days, s.index())
}

func (s Snapshot) rangeStats(start datemath.Date, days int, idx completionIndex) Stats {
	var sum Stats
	for i := 0; i < days; i++ {
		sum = sum.Plus(s.dailyStats(start.AddDays(i), idx))
	}
	return sum
}

// WeeklyStats is RangeStats over the seven days starting at start.
func (s Snapshot) WeeklyStats(start datemath.Date) Stats {
	return s.RangeStats(start, 7)
}

// MonthlyStats is RangeStats over every calendar day of the month.
func (s Snapshot) MonthlyStats(year int, month time.Month) Stats {
	return s.rangeStats(datemath.New(year, month, 1), datemath.DaysIn(year, month), s.index())
}

// TaskProgress is a task active on a given day together with its history.
type TaskProgress struct {
	model.Task
	TodayCompleted bool
	TotalDays      int
	CompletedDays  int
	Streak         int
	CompletionRate float64
}

// TasksWithProgress returns every task active on d with its progress as of d.
// TotalDays spans StartDate to min(EndDate, d), at least 1. CompletedDays
// counts every completed record of the task regardless of date.
func (s Snapshot) TasksWithProgress(d datemath.Date) []TaskProgress {
	idx := s.index()

	out := make([]TaskProgress, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		if !IsActive(t, d) {
			continue
		}

		last := d
		if t.EndDate != nil {
			last = datemath.Min(*t.EndDate, d)
		}
		totalDays := max(1, last.DaysSince(t.StartDate)+1)
		completedDays := idx.doneCount[t.ID]

		out = append(out, TaskProgress{
			Task:           t,
			TodayCompleted: idx.done(t.ID, d),
			TotalDays:      totalDays,
			CompletedDays:  completedDays,
			Streak:         streak(t, d, idx),
			CompletionRate: float64(completedDays) / float64(totalDays) * 100,
		})
	}
	return out
}

// DayStats is the DailyStats of one date.
type DayStats struct {
	Date datemath.Date
	Stats
}

// DailySeries returns DailyStats for the days days ending at end, oldest first.
func (s Snapshot) DailySeries(end datemath.Date, days int) []DayStats {
	if days <= 0 {
		return []DayStats{}
	}
	idx := s.index()

	out := make([]DayStats, 0, days)
	for i := days - 1; i >= 0; i-- {
		d := end.AddDays(-i)
		out = append(out, DayStats{Date: d, Stats: s.dailyStats(d, idx)})
	}
	return out
}

// MonthStats is the MonthlyStats of one calendar month.
type MonthStats struct {
	Year  int
	Month time.Month
	Stats
}

// MonthlySeries returns MonthlyStats for the months calendar months ending
// with end's month, oldest first.
func (s Snapshot) MonthlySeries(end datemath.Date, months int) []MonthStats {
	if months <= 0 {
		return []MonthStats{}
	}
	idx := s.index()

	out := make([]MonthStats, 0, months)
	for i := months - 1; i >= 0; i-- {
		first := end.AddMonths(-i)
		y, m := first.Year(), first.Month()
		out = append(out, MonthStats{
			Year:  y,
			Month: m,
			Stats: s.rangeStats(first, datemath.DaysIn(y, m), idx),
		})
	}
	return out
}
