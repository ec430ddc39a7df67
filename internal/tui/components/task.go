package components

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/thenoetrevino/tres/internal/models"
)

// taskTitleWidth is the room a title gets inside a column
const taskTitleWidth = ColumnWidth - 4

// RenderTask renders a single task as one row
//
//	#12 Write release notes
func RenderTask(task models.Task, selected bool) string {
	line := fmt.Sprintf("#%d %s", task.ID, task.Title)
	line = ansi.Truncate(line, taskTitleWidth, "…")

	if selected {
		return SelectedTaskStyle.Width(taskTitleWidth).Render(line)
	}
	return TaskStyle.Render(line)
}

// RenderEditRow renders the inline editor that replaces a task row
//
//	│ > new title_
//	│ stage: ‹ In Progress ›
func RenderEditRow(input string, target models.Stage) string {
	stage := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(stageColor(target))).
		Render("‹ " + target.DisplayName() + " ›")

	return EditRowStyle.Render(input + "\n" + SubtleStyle.Render("stage: ") + stage)
}
