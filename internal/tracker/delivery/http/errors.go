package http

import (
	"errors"
	"net/http"

	"timetable-tracker/internal/tracker"
	"timetable-tracker/pkg/datemath"
	pkgErrors "timetable-tracker/pkg/errors"
)

var (
	errTaskNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "task not found")
	errInvalidTask  = pkgErrors.NewHTTPError(http.StatusBadRequest, "invalid task")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, tracker.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, tracker.ErrInvalidTask):
		return errInvalidTask
	case errors.Is(err, tracker.ErrInvalidRange), errors.Is(err, datemath.ErrInvalidDate):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// badRequest wraps a binding or parsing failure.
func badRequest(err error) error {
	return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
}
