package engine

import (
	"timetable-tracker/internal/model"
	"timetable-tracker/pkg/datemath"
)

// Streak counts consecutive completed active days of task ending at ref,
// walking backward. The walk stops at the first day that is inactive or not
// completed, so an inactive ref yields 0.
func (s Snapshot) Streak(task model.Task, ref datemath.Date) int {
	return streak(task, ref, s.index())
}

func streak(task model.Task, ref datemath.Date, idx completionIndex) int {
	n := 0
	for d := ref; IsActive(task, d) && idx.done(task.ID, d); d = d.AddDays(-1) {
		n++
	}
	return n
}

// OverallStreak counts consecutive days ending at ref on which every active
// task was completed. A day with no active task ends the streak.
func (s Snapshot) OverallStreak(ref datemath.Date) int {
	idx := s.index()

	n := 0
	for d := ref; ; d = d.AddDays(-1) {
		active := s.activeOn(d)
		if len(active) == 0 {
			return n
		}
		for _, t := range active {
			if !idx.done(t.ID, d) {
				return n
			}
		}
		n++
	}
}
