package errors

import "net/http"

// HTTPError carries the status code a transport should answer with.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates an HTTPError. Codes outside 4xx/5xx become 500.
func NewHTTPError(statusCode int, message string) *HTTPError {
	if statusCode < 400 || statusCode > 599 {
		statusCode = http.StatusInternalServerError
	}
	return &HTTPError{StatusCode: statusCode, Message: message}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)
