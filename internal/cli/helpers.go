package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/tres/internal/models"
	taskservice "github.com/thenoetrevino/tres/internal/services/task"
	"github.com/thenoetrevino/tres/internal/types"
)

const stageChoices = "todo, inProgress, done"

// ParseStage maps a --stage value to a Stage
func ParseStage(value string) (models.Stage, error) {
	stage, err := models.ParseStage(value)
	if err != nil {
		return 0, fmt.Errorf("invalid stage '%s' (must be: %s)", value, stageChoices)
	}
	return stage, nil
}

// ParseTaskID validates an --id value
func ParseTaskID(id int) (types.TaskID, error) {
	if id <= 0 {
		return 0, fmt.Errorf("invalid task id %d (must be positive)", id)
	}
	return types.TaskIDFromInt(id), nil
}

// HandleServiceError reports a task service error and maps it to an exit code
func HandleServiceError(f *OutputFormatter, err error) error {
	switch {
	case errors.Is(err, taskservice.ErrTaskNotFound):
		return f.Fail(ExitNotFound, "TASK_NOT_FOUND", err,
			"Use 'tres task list' to see task IDs")
	case errors.Is(err, taskservice.ErrInvalidStage):
		return f.Fail(ExitValidation, "INVALID_STAGE", err,
			"Valid stages are: "+stageChoices)
	case errors.Is(err, taskservice.ErrInvalidTaskID):
		return f.Fail(ExitValidation, "INVALID_TASK_ID", err, "")
	default:
		return f.Fail(ExitError, "STORAGE_ERROR", err, "")
	}
}

// UsageError reports a bad flag value
func UsageError(f *OutputFormatter, code string, err error) error {
	return f.Fail(ExitValidation, code, err, "")
}
