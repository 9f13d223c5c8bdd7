package engine

import (
	"slices"

	"timetable-tracker/internal/model"
	"timetable-tracker/pkg/datemath"
)

// AddTask returns a snapshot with task appended. The caller assigns ID and
// CreatedAt.
func (s Snapshot) AddTask(task model.Task) Snapshot {
	tasks := make([]model.Task, 0, len(s.Tasks)+1)
	tasks = append(tasks, s.Tasks...)
	tasks = append(tasks, task)
	return Snapshot{Tasks: tasks, Progress: s.Progress}
}

// DeleteTask returns a snapshot without the task and without any progress
// record referencing it. Unknown ids leave the contents unchanged.
func (s Snapshot) DeleteTask(id string) Snapshot {
	tasks := slices.DeleteFunc(slices.Clone(s.Tasks), func(t model.Task) bool {
		return t.ID == id
	})
	progress := slices.DeleteFunc(slices.Clone(s.Progress), func(p model.DailyProgress) bool {
		return p.TaskID == id
	})
	return Snapshot{Tasks: tasks, Progress: progress}
}

// ToggleCompletion flips the record for (taskID, d), or inserts a completed
// one when none exists. It does not check that the task is active on d.
func (s Snapshot) ToggleCompletion(taskID string, d datemath.Date) (Snapshot, model.DailyProgress) {
	progress := slices.Clone(s.Progress)

	for i, p := range progress {
		if p.TaskID == taskID && p.Date == d {
			progress[i].Completed = !p.Completed
			return Snapshot{Tasks: s.Tasks, Progress: progress}, progress[i]
		}
	}

	rec := model.DailyProgress{TaskID: taskID, Date: d, Completed: true}
	progress = append(progress, rec)
	return Snapshot{Tasks: s.Tasks, Progress: progress}, rec
}
