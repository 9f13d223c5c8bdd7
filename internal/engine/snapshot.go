// Package engine derives streaks, completion rates and heatmap levels from
// tasks and their daily completion records.
//
// A Snapshot is an immutable pair of collections. Every read is a pure
// method over a Snapshot and every mutation returns a new Snapshot, leaving
// the receiver's slices untouched. Nothing is cached between calls.
package engine

import (
	"timetable-tracker/internal/model"
	"timetable-tracker/pkg/datemath"
)

// Snapshot is the task store and progress store at one point in time.
type Snapshot struct {
	Tasks    []model.Task
	Progress []model.DailyProgress
}

// FindTask returns the task with the given id.
func (s Snapshot) FindTask(id string) (model.Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.Task{}, false
}

// Completion reads the completion record for (taskID, d).
// recorded is false when no record exists; completed is then false too.
func (s Snapshot) Completion(taskID string, d datemath.Date) (completed, recorded bool) {
	for _, p := range s.Progress {
		if p.TaskID == taskID && p.Date == d {
			return p.Completed, true
		}
	}
	return false, false
}

// ProgressFor returns the records that reference taskID, in store order.
func (s Snapshot) ProgressFor(taskID string) []model.DailyProgress {
	var out []model.DailyProgress
	for _, p := range s.Progress {
		if p.TaskID == taskID {
			out = append(out, p)
		}
	}
	return out
}

type progressKey struct {
	taskID string
	date   datemath.Date
}

// completionIndex is built once per read call and dropped afterwards.
type completionIndex struct {
	records   map[progressKey]bool
	doneCount map[string]int
}

func (s Snapshot) index() completionIndex {
	idx := completionIndex{
		records:   make(map[progressKey]bool, len(s.Progress)),
		doneCount: make(map[string]int),
	}
	for _, p := range s.Progress {
		idx.records[progressKey{p.TaskID, p.Date}] = p.Completed
		if p.Completed {
			idx.doneCount[p.TaskID]++
		}
	}
	return idx
}

func (idx completionIndex) lookup(taskID string, d datemath.Date) (completed, recorded bool) {
	completed, recorded = idx.records[progressKey{taskID, d}]
	return completed, recorded
}

func (idx completionIndex) done(taskID string, d datemath.Date) bool {
	completed, _ := idx.lookup(taskID, d)
	return completed
}
