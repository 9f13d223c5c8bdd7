package tracker

import "errors"

var (
	ErrTaskNotFound = errors.New("task not found")
	ErrInvalidTask  = errors.New("invalid task")
	ErrInvalidRange = errors.New("invalid range")
)
