package usecase

import (
	"context"
	"slices"
	"strings"

	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/model"
	"timetable-tracker/internal/tracker"
	"timetable-tracker/pkg/datemath"
)

// Load replaces the in-memory state with the repository contents.
func (uc *implUseCase) Load(ctx context.Context) error {
	snap, err := uc.repo.Load(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Load Load: %v", err)
		return err
	}

	uc.mu.Lock()
	uc.state = snap
	uc.mu.Unlock()

	uc.metrics.SetSize(len(snap.Tasks), len(snap.Progress))
	uc.l.Infof(ctx, "uc.Load: %d tasks, %d progress records", len(snap.Tasks), len(snap.Progress))
	return nil
}

// CreateTask validates input, assigns an id and creation time, and persists the task.
func (uc *implUseCase) CreateTask(ctx context.Context, input tracker.CreateTaskInput) (model.Task, error) {
	task, err := uc.buildTask(input)
	if err != nil {
		return model.Task{}, err
	}

	err = uc.mutate(ctx, "CreateTask", func(cur engine.Snapshot) (engine.Snapshot, error) {
		return cur.AddTask(task), nil
	})
	if err != nil {
		return model.Task{}, err
	}
	return task, nil
}

func (uc *implUseCase) buildTask(input tracker.CreateTaskInput) (model.Task, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Task{}, tracker.ErrInvalidTask
	}
	if input.StartDate.IsZero() {
		return model.Task{}, tracker.ErrInvalidTask
	}
	if input.EndDate != nil && input.EndDate.Before(input.StartDate) {
		return model.Task{}, tracker.ErrInvalidTask
	}

	priority := input.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !priority.Valid() {
		return model.Task{}, tracker.ErrInvalidTask
	}

	var end *datemath.Date
	if input.EndDate != nil {
		e := *input.EndDate
		end = &e
	}

	return model.Task{
		ID:          uc.newID(),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Category:    strings.TrimSpace(input.Category),
		StartDate:   input.StartDate,
		EndDate:     end,
		Priority:    priority,
		CreatedAt:   uc.now(),
	}, nil
}

// ListTasks returns every task in creation order.
func (uc *implUseCase) ListTasks(ctx context.Context) ([]model.Task, error) {
	return slices.Clone(uc.snapshot().Tasks), nil
}

// DetailTask returns one task. Returns ErrTaskNotFound when not found.
func (uc *implUseCase) DetailTask(ctx context.Context, id string) (model.Task, error) {
	task, ok := uc.snapshot().FindTask(id)
	if !ok {
		return model.Task{}, tracker.ErrTaskNotFound
	}
	return task, nil
}

// DeleteTask removes a task and its progress records. Unknown ids are a no-op
// and nothing is written.
func (uc *implUseCase) DeleteTask(ctx context.Context, id string) error {
	if _, ok := uc.snapshot().FindTask(id); !ok {
		return nil
	}

	return uc.mutate(ctx, "DeleteTask", func(cur engine.Snapshot) (engine.Snapshot, error) {
		if _, ok := cur.FindTask(id); !ok {
			return cur, nil
		}
		return cur.DeleteTask(id), nil
	})
}

// ToggleCompletion flips the completion flag of a task on a day (today when
// the date is zero). Returns ErrTaskNotFound for unknown tasks.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, input tracker.ToggleInput) (model.DailyProgress, error) {
	date := uc.orToday(input.Date)

	var rec model.DailyProgress
	err := uc.mutate(ctx, "ToggleCompletion", func(cur engine.Snapshot) (engine.Snapshot, error) {
		if _, ok := cur.FindTask(input.TaskID); !ok {
			return cur, tracker.ErrTaskNotFound
		}
		next, r := cur.ToggleCompletion(input.TaskID, date)
		rec = r
		return next, nil
	})
	if err != nil {
		return model.DailyProgress{}, err
	}
	return rec, nil
}

// ListProgress returns progress records, optionally for a single task.
func (uc *implUseCase) ListProgress(ctx context.Context, input tracker.ListProgressInput) ([]model.DailyProgress, error) {
	snap := uc.snapshot()
	if input.TaskID == "" {
		return slices.Clone(snap.Progress), nil
	}
	if _, ok := snap.FindTask(input.TaskID); !ok {
		return nil, tracker.ErrTaskNotFound
	}
	return snap.ProgressFor(input.TaskID), nil
}
