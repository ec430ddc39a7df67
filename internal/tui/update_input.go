package tui

import (
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	taskservice "github.com/thenoetrevino/tres/internal/services/task"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

// ============================================================================
// ADD AND EDIT ROWS
// ============================================================================

// updateAddTask handles keys while typing a new task title.
func (m *Model) updateAddTask(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return nil

	case key.Matches(msg, m.keys.Submit):
		title := m.InputState.Value()
		stage := m.InputState.Stage
		m.closeInput()

		task, err := m.Service.AddTask(m.ctx, taskservice.AddTaskRequest{Title: title, Stage: stage})
		m.refresh()
		if err != nil {
			m.reportError("add task", err)
			return nil
		}
		if task == nil {
			// Blank titles are ignored
			return nil
		}
		m.selectTask(task.ID)
		m.info("Added #%d to %s", task.ID, task.Status.DisplayName())
		return nil
	}

	return m.InputState.Update(msg)
}

// updateEditTask handles keys while the inline editor is open.
func (m *Model) updateEditTask(msg tea.KeyPressMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.closeInput()
		return nil

	case key.Matches(msg, m.keys.NextStage):
		m.EditState.CycleStage(1)
		return nil

	case key.Matches(msg, m.keys.PrevStage):
		m.EditState.CycleStage(-1)
		return nil

	case key.Matches(msg, m.keys.Submit):
		sess := *m.EditState.Session()
		sess.Title = m.InputState.Value()
		m.closeInput()

		task, err := m.Service.SaveEdit(m.ctx, sess)
		m.refresh()
		if err != nil {
			m.reportError("save task", err)
			return nil
		}
		m.selectTask(task.ID)
		if sess.Changed() {
			m.info("Saved #%d in %s", task.ID, task.Status.DisplayName())
		} else {
			m.info("Saved #%d unchanged", task.ID)
		}
		return nil
	}

	return m.InputState.Update(msg)
}

// closeInput leaves the add or edit row without saving.
func (m *Model) closeInput() {
	m.InputState.Stop()
	m.EditState.End()
	m.UIState.SetMode(state.NormalMode)
}
