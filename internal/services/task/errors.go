package task

import (
	"errors"

	"github.com/thenoetrevino/tres/internal/board"
	"github.com/thenoetrevino/tres/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrInvalidStage  = models.ErrInvalidStage

	// Business logic errors
	ErrTaskNotFound = board.ErrTaskNotFound
)
