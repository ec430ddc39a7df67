package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// updateNormal dispatches key events in NormalMode to specific handlers.
func (m *Model) updateNormal(msg tea.KeyPressMsg) tea.Cmd {
	m.NotificationState.Clear()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.UIState.SetMode(state.HelpMode)
	case key.Matches(msg, m.keys.Add):
		return m.handleAddTask()
	case key.Matches(msg, m.keys.Edit):
		return m.handleEditTask()
	case key.Matches(msg, m.keys.Delete):
		m.handleDeleteTask()
	case key.Matches(msg, m.keys.MoveLeft):
		m.handleMoveTask(-1)
	case key.Matches(msg, m.keys.MoveRight):
		m.handleMoveTask(1)
	case key.Matches(msg, m.keys.PrevCol):
		m.handleNavigateColumn(-1)
	case key.Matches(msg, m.keys.NextCol):
		m.handleNavigateColumn(1)
	case key.Matches(msg, m.keys.PrevTask):
		m.handleNavigateTask(-1)
	case key.Matches(msg, m.keys.NextTask):
		m.handleNavigateTask(1)
	}

	return nil
}

// updateHelp closes the help screen on any key but quit.
func (m *Model) updateHelp(msg tea.KeyPressMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return tea.Quit
	}
	m.UIState.SetMode(state.NormalMode)
	return nil
}

// handleAddTask opens the input row under the selected column.
func (m *Model) handleAddTask() tea.Cmd {
	stage := m.UIState.SelectedStage()
	m.InputState.Stage = stage
	m.UIState.SetMode(state.AddTaskMode)
	return m.InputState.Start("New task in "+stage.DisplayName(), "")
}

// handleEditTask opens the inline editor on the selected task.
func (m *Model) handleEditTask() tea.Cmd {
	task, ok := m.currentTask()
	if !ok {
		m.info("No task selected")
		return nil
	}

	sess, err := m.Service.BeginEdit(m.ctx, task.ID)
	if err != nil {
		m.reportError("edit task", err)
		m.refresh()
		return nil
	}

	m.EditState.Begin(sess)
	m.UIState.SetMode(state.EditTaskMode)
	return m.InputState.Start("Task title", sess.Title)
}

// handleDeleteTask removes the selected task.
func (m *Model) handleDeleteTask() {
	task, ok := m.currentTask()
	if !ok {
		m.info("No task selected")
		return
	}

	_, err := m.Service.DeleteTask(m.ctx, task.ID)
	m.refresh()
	if err != nil {
		m.reportError("delete task", err)
		return
	}
	m.info("Deleted #%d", task.ID)
}

// handleMoveTask moves the selected task one stage left or right.
// The selection follows the task.
func (m *Model) handleMoveTask(delta int) {
	task, ok := m.currentTask()
	if !ok {
		m.info("No task selected")
		return
	}

	target, ok := models.StageAt(task.Status.Index() + delta)
	if !ok {
		m.info("Already in %s", task.Status.DisplayName())
		return
	}

	moved, err := m.Service.MoveTask(m.ctx, task.ID, target)
	m.refresh()
	if err != nil {
		m.reportError("move task", err)
		return
	}
	m.selectTask(moved.ID)
}

// handleNavigateColumn moves selection to the previous or next column.
func (m *Model) handleNavigateColumn(delta int) {
	col := m.UIState.SelectedColumn() + delta
	switch {
	case col < 0:
		m.info("Already at the first column")
	case col >= len(models.Stages()):
		m.info("Already at the last column")
	default:
		m.UIState.SetSelectedColumn(col)
		m.UIState.SetSelectedTask(0)
		m.ensureSelectionVisible()
	}
}

// handleNavigateTask moves selection up or down within the column.
func (m *Model) handleNavigateTask(delta int) {
	i := m.UIState.SelectedTask() + delta
	if i < 0 || i >= len(m.currentTasks()) {
		return
	}
	m.UIState.SetSelectedTask(i)
	m.ensureSelectionVisible()
}
