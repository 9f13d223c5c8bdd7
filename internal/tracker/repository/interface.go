package repository

import (
	"context"

	"timetable-tracker/internal/engine"
)

// Repository persists the task and progress collections.
// Save writes both collections together and is called after every mutation.
type Repository interface {
	Load(ctx context.Context) (engine.Snapshot, error)
	Save(ctx context.Context, snapshot engine.Snapshot) error
}
