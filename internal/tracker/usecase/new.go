package usecase

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"timetable-tracker/internal/engine"
	"timetable-tracker/internal/tracker/repository"
	"timetable-tracker/pkg/log"
	"timetable-tracker/pkg/metrics"
)

// implUseCase is the private implementation of tracker.UseCase.
// It owns the current snapshot; the engine only ever sees copies of it.
type implUseCase struct {
	l       log.Logger
	repo    repository.Repository
	metrics *metrics.Metrics

	now      func() time.Time
	newID    func() string
	location *time.Location

	mu    sync.RWMutex
	state engine.Snapshot
}

// Option customizes the use case.
type Option func(*implUseCase)

// WithClock overrides the wall clock used for "today" and CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(uc *implUseCase) {
		uc.now = now
	}
}

// WithIDGenerator overrides task id generation.
func WithIDGenerator(newID func() string) Option {
	return func(uc *implUseCase) {
		uc.newID = newID
	}
}

// WithLocation sets the timezone that decides which calendar day is today.
func WithLocation(loc *time.Location) Option {
	return func(uc *implUseCase) {
		if loc != nil {
			uc.location = loc
		}
	}
}

// New creates a new tracker UseCase. Call Load before serving requests.
// metrics may be nil.
func New(l log.Logger, repo repository.Repository, m *metrics.Metrics, opts ...Option) *implUseCase {
	uc := &implUseCase{
		l:        l,
		repo:     repo,
		metrics:  m,
		now:      time.Now,
		newID:    uuid.NewString,
		location: time.Local,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
