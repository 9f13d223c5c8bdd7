package repository

import "errors"

var (
	ErrFailedToLoad = errors.New("failed to load records")
	ErrFailedToSave = errors.New("failed to save records")
	ErrCorruptStore = errors.New("corrupt store document")
)
