package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/tui/components"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

// View renders the board
// This implements the "View" part of the Model-View-Update pattern
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UIState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	if m.UIState.Mode() == state.HelpMode {
		view.Content = m.viewHelp()
		return view
	}

	view.Content = m.viewBoard()
	return view
}

// columnHeight is the height every column is drawn with
func (m Model) columnHeight() int {
	return m.UIState.ContentHeight()
}

func (m Model) viewBoard() string {
	columns := make([]string, 0, len(models.Stages()))
	for col, stage := range models.Stages() {
		props := components.ColumnProps{
			Stage:        stage,
			Tasks:        m.Board.Tasks(stage),
			Selected:     col == m.UIState.SelectedColumn(),
			SelectedTask: m.UIState.SelectedTask(),
			Height:       m.columnHeight(),
			ScrollOffset: m.UIState.TaskScrollOffset(stage),
		}

		if sess := m.EditState.Session(); sess != nil && m.UIState.Mode() == state.EditTaskMode {
			props.EditingID = sess.TaskID
			props.EditRow = components.RenderEditRow(m.InputState.View(), sess.Stage)
		}

		columns = append(columns, components.RenderColumn(props))
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	b.WriteString("\n")

	if m.UIState.Mode() == state.AddTaskMode {
		b.WriteString(components.CreateInputBoxStyle.Render(m.InputState.View()))
		b.WriteString("\n")
	}

	props := components.StatusBarProps{
		Width:     m.UIState.Width(),
		TaskCount: m.Board.Len(),
	}
	if n, ok := m.NotificationState.Current(); ok {
		props.Notification = &n
	}
	b.WriteString(components.RenderStatusBar(props))

	return b.String()
}

func (m Model) viewHelp() string {
	title := lipgloss.NewStyle().Bold(true).Render("Keyboard shortcuts")
	box := components.HelpBoxStyle.Render(title + "\n\n" + m.help.View(m.keys))

	return lipgloss.Place(
		m.UIState.Width(), m.UIState.Height(),
		lipgloss.Center, lipgloss.Center,
		box,
	)
}
