package engine

import "timetable-tracker/pkg/datemath"

// Breakdown summarises task status as of a day.
type Breakdown struct {
	Completed  int // completed records across all tasks and dates
	InProgress int // active today, not done today, done at least once before
	Pending    int // active today and not done today
	Missed     int // past active days without a completed record
}

// StatusBreakdown computes the Breakdown as of today.
func (s Snapshot) StatusBreakdown(today datemath.Date) Breakdown {
	idx := s.index()

	var b Breakdown
	for _, t := range s.Tasks {
		completedDays := idx.doneCount[t.ID]
		b.Completed += completedDays

		for d := t.StartDate; d.Before(today) && IsActive(t, d); d = d.AddDays(1) {
			if !idx.done(t.ID, d) {
				b.Missed++
			}
		}

		if IsActive(t, today) && !idx.done(t.ID, today) {
			b.Pending++
			if completedDays > 0 {
				b.InProgress++
			}
		}
	}
	return b
}

// Totals are history-wide counters over the progress store.
type Totals struct {
	CompletedRecords int
	DaysWithRecords  int
}

// Totals counts completed records and distinct recorded dates.
func (s Snapshot) Totals() Totals {
	days := make(map[datemath.Date]struct{})
	var t Totals
	for _, p := range s.Progress {
		days[p.Date] = struct{}{}
		if p.Completed {
			t.CompletedRecords++
		}
	}
	t.DaysWithRecords = len(days)
	return t
}
