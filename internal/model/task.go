package model

import (
	"time"

	"timetable-tracker/pkg/datemath"
)

// Priority ranks a task for display ordering.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Valid reports whether p is one of the known priorities.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// SuggestedCategories is the category list offered by task forms.
// Category is free text; this list is a suggestion only.
var SuggestedCategories = []string{
	"Work",
	"Study",
	"Health",
	"Fitness",
	"Personal",
	"Habits",
	"Reading",
	"Other",
}

// Task is a recurring task, active every calendar day from StartDate
// through EndDate inclusive. A nil EndDate means open-ended.
type Task struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Category    string         `json:"category,omitempty"`
	StartDate   datemath.Date  `json:"startDate"`
	EndDate     *datemath.Date `json:"endDate,omitempty"`
	Priority    Priority       `json:"priority"`
	CreatedAt   time.Time      `json:"createdAt"`
}
