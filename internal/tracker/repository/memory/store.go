package memory

import (
	"context"
	"slices"
	"sync"

	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/tracker/repository"
)

type implRepository struct {
	mu    sync.RWMutex
	state engine.Snapshot
}

// New creates an in-process Repository, optionally seeded with initial state.
func New(seed engine.Snapshot) repository.Repository {
	return &implRepository{state: clone(seed)}
}

func (r *implRepository) Load(ctx context.Context) (engine.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return clone(r.state), nil
}

func (r *implRepository) Save(ctx context.Context, snapshot engine.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.state = clone(snapshot)
	return nil
}

func clone(s engine.Snapshot) engine.Snapshot {
	return engine.Snapshot{
		Tasks:    slices.Clone(s.Tasks),
		Progress: slices.Clone(s.Progress),
	}
}
