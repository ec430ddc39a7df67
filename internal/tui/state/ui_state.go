package state

import "github.com/thenoetrevino/tres/internal/models"

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode   Mode = iota // Default navigation mode
	AddTaskMode              // Typing a new task title under the selected column
	EditTaskMode             // Inline edit of the selected task
	HelpMode                 // Displaying help screen
)

// String returns the mode name for logs and test failures
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case AddTaskMode:
		return "add"
	case EditTaskMode:
		return "edit"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// UIState manages the user interface state.
// This includes navigation (column/task selection), task scrolling,
// terminal dimensions, and the current interaction mode.
type UIState struct {
	// selectedColumn is the index of the currently selected stage
	selectedColumn int

	// selectedTask is the index of the currently selected task within the selected column
	selectedTask int

	// width and height are the current terminal size in characters
	width  int
	height int

	mode Mode

	// taskScrollOffsets tracks the index of the first visible task per stage
	taskScrollOffsets map[models.Stage]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		taskScrollOffsets: make(map[models.Stage]int),
	}
}

// SelectedColumn returns the index of the currently selected column.
func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

// SelectedStage returns the stage shown in the selected column.
func (s *UIState) SelectedStage() models.Stage {
	stage, _ := models.StageAt(s.selectedColumn)
	return stage
}

// SetSelectedColumn updates the selected column index, clamped to the board.
func (s *UIState) SetSelectedColumn(index int) {
	last := len(models.Stages()) - 1
	s.selectedColumn = max(0, min(index, last))
}

// SelectedTask returns the index of the currently selected task.
func (s *UIState) SelectedTask() int {
	return s.selectedTask
}

// SetSelectedTask updates the selected task index.
func (s *UIState) SetSelectedTask(index int) {
	s.selectedTask = max(0, index)
}

// ClampSelectedTask keeps the task selection inside a column of n tasks.
func (s *UIState) ClampSelectedTask(n int) {
	if s.selectedTask >= n {
		s.selectedTask = max(0, n-1)
	}
}

// Width returns the terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the height left for columns after the status line
// and the add-task input.
func (s *UIState) ContentHeight() int {
	const reserved = 4
	return max(s.height-reserved, 0)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode changes the interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

// TaskScrollOffset returns the index of the first visible task in stage
func (s *UIState) TaskScrollOffset(stage models.Stage) int {
	return s.taskScrollOffsets[stage]
}

// EnsureTaskVisible scrolls stage so the selected task is within the
// visibleCount tasks shown.
func (s *UIState) EnsureTaskVisible(stage models.Stage, selectedTaskIdx int, visibleCount int) {
	offset := s.TaskScrollOffset(stage)

	// If selection is above visible area, scroll up
	if selectedTaskIdx < offset {
		s.taskScrollOffsets[stage] = selectedTaskIdx
	}

	// If selection is below visible area, scroll down
	if selectedTaskIdx >= offset+visibleCount {
		s.taskScrollOffsets[stage] = selectedTaskIdx - visibleCount + 1
	}
}
