package model

import "timetable-tracker/pkg/datemath"

// DailyProgress records whether a task was completed on a given day.
// There is at most one record per (TaskID, Date).
type DailyProgress struct {
	TaskID    string        `json:"taskId"`
	Date      datemath.Date `json:"date"`
	Completed bool          `json:"completed"`
}
