package usecase

import (
	"context"
	"fmt"
	"time"

	"timetable-tracker/internal/engine"
	"timetable-tracker/pkg/datemath"
)

// snapshot returns the current state. Snapshots are never mutated in place,
// so the copy stays consistent after the lock is released.
func (uc *implUseCase) snapshot() engine.Snapshot {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.state
}

// mutate computes the next state from the current one, persists it and swaps
// it in. On any error the current state is kept.
func (uc *implUseCase) mutate(ctx context.Context, op string, fn func(cur engine.Snapshot) (engine.Snapshot, error)) (err error) {
	defer func() { uc.metrics.RecordMutation(op, err) }()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	next, err := fn(uc.state)
	if err != nil {
		return err
	}

	if err = uc.repo.Save(ctx, next); err != nil {
		uc.l.Errorf(ctx, "uc.%s Save: %v", op, err)
		return fmt.Errorf("%s: %w", op, err)
	}

	uc.state = next
	uc.metrics.SetSize(len(next.Tasks), len(next.Progress))
	return nil
}

// observe records a statistics query. Use as: defer uc.observe("daily", time.Now()).
func (uc *implUseCase) observe(query string, start time.Time) {
	uc.metrics.ObserveQuery(query, time.Since(start).Seconds())
}

func (uc *implUseCase) today() datemath.Date {
	return datemath.FromTime(uc.now().In(uc.location))
}

// orToday resolves a zero date to today.
func (uc *implUseCase) orToday(d datemath.Date) datemath.Date {
	if d.IsZero() {
		return uc.today()
	}
	return d
}
