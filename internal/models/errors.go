package models

import "errors"

var (
	// ErrInvalidStage indicates a value outside todo, inProgress and done
	ErrInvalidStage = errors.New("invalid stage: must be one of todo, inProgress, done")
)
