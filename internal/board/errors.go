package board

import "errors"

var (
	// ErrTaskNotFound indicates no task with the given ID exists where it was looked for
	ErrTaskNotFound = errors.New("task not found")
)
