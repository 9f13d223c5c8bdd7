package http

import (
	"time"

	"timetable-tracker/internal/tracker"
	"timetable-tracker/pkg/datemath"
	"timetable-tracker/pkg/log"
)

type handler struct {
	l      log.Logger
	uc     tracker.UseCase
	parser *datemath.Parser
	now    func() time.Time
}

// New creates a new HTTP handler for the tracker domain. Date parameters are
// resolved with parser, so relative expressions follow its timezone.
func New(l log.Logger, uc tracker.UseCase, parser *datemath.Parser) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		parser: parser,
		now:    time.Now,
	}
}
