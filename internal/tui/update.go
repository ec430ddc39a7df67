package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

// Update handles all messages and updates the model accordingly
// This implements the "Update" part of the Model-View-Update pattern
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UIState.SetWidth(msg.Width)
		m.UIState.SetHeight(msg.Height)
		m.ensureSelectionVisible()
		return m, nil

	case tea.KeyPressMsg:
		switch m.UIState.Mode() {
		case state.AddTaskMode:
			return m, m.updateAddTask(msg)
		case state.EditTaskMode:
			return m, m.updateEditTask(msg)
		case state.HelpMode:
			return m, m.updateHelp(msg)
		default:
			return m, m.updateNormal(msg)
		}
	}

	// Cursor blinks and paste events belong to the active input
	if m.inputActive() {
		return m, m.InputState.Update(msg)
	}
	return m, nil
}

func (m Model) inputActive() bool {
	mode := m.UIState.Mode()
	return mode == state.AddTaskMode || mode == state.EditTaskMode
}
