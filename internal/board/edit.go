package board

import (
	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/types"
)

// EditSession captures one in-progress edit. It is handed out by BeginEdit and
// passed back to SaveEdit; nothing about it is kept inside the Store.
type EditSession struct {
	TaskID types.TaskID
	From   models.Stage

	// Editable fields, preloaded from the task
	Title string
	Stage models.Stage

	originalTitle string
}

// Changed reports whether the editable fields differ from the task as loaded
func (e EditSession) Changed() bool {
	return e.Title != e.originalTitle || e.Stage != e.From
}

// CycleStage moves the edit target stage by delta positions, wrapping
func (e *EditSession) CycleStage(delta int) {
	e.Stage = e.Stage.Cycle(delta)
}
