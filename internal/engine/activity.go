package engine

import (
	"timetable-tracker/internal/model"
	"timetable-tracker/pkg/datemath"
)

// IsActive reports whether task is scheduled on d: on or after StartDate and,
// when EndDate is set, on or before it. A range whose end precedes its start
// is never active.
func IsActive(task model.Task, d datemath.Date) bool {
	if d.Before(task.StartDate) {
		return false
	}
	if task.EndDate != nil && d.After(*task.EndDate) {
		return false
	}
	return true
}

func (s Snapshot) activeOn(d datemath.Date) []model.Task {
	var active []model.Task
	for _, t := range s.Tasks {
		if IsActive(t, d) {
			active = append(active, t)
		}
	}
	return active
}
