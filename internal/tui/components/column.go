package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/tui/theme"
	"github.com/thenoetrevino/tres/internal/types"
)

// TaskRowHeight is the height of one task row
const TaskRowHeight = 1

// editRowHeight is the height of the inline editor
const editRowHeight = 2

// columnOverhead counts the border, header and both scroll indicator lines
const columnOverhead = 5

// ColumnProps describes one column to render
type ColumnProps struct {
	Stage    models.Stage
	Tasks    []models.Task
	Selected bool

	// SelectedTask is the index of the selected task, ignored unless Selected
	SelectedTask int

	// Height is the total box height, 0 for auto
	Height       int
	ScrollOffset int

	// EditingID and EditRow replace that task's row with the inline editor
	EditingID types.TaskID
	EditRow   string
}

// VisibleTasks returns how many task rows fit in a column of the given height
func VisibleTasks(height int) int {
	if height <= 0 {
		return 1 << 16
	}
	return max((height-columnOverhead-editRowHeight)/TaskRowHeight, 1)
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Stage} ({count})
//	▲ more above
//	{Task 1}
//	{Task 2}
//	▼ more below
func RenderColumn(props ColumnProps) string {
	header := fmt.Sprintf("%s (%d)", props.Stage.DisplayName(), len(props.Tasks))
	headerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(stageColor(props.Stage)))

	var b strings.Builder
	b.WriteString(headerStyle.Render(header))
	b.WriteString("\n")

	if len(props.Tasks) == 0 {
		b.WriteString("\n")
		b.WriteString(SubtleStyle.Render("No tasks"))
	} else {
		visible := VisibleTasks(props.Height)
		offset := max(0, min(props.ScrollOffset, len(props.Tasks)-1))
		end := min(offset+visible, len(props.Tasks))

		indicatorStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Subtle))
		if offset > 0 {
			b.WriteString(indicatorStyle.Render("▲ more above"))
		}
		b.WriteString("\n")

		for i, task := range props.Tasks[offset:end] {
			if props.EditRow != "" && task.ID == props.EditingID {
				b.WriteString(props.EditRow)
			} else {
				b.WriteString(RenderTask(task, props.Selected && offset+i == props.SelectedTask))
			}
			b.WriteString("\n")
		}

		if end < len(props.Tasks) {
			b.WriteString(indicatorStyle.Render("▼ more below"))
		}
	}

	// Apply column styling with selection highlight and fixed height
	style := ColumnStyle
	if props.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if props.Height > 0 {
		// Subtract 2 for top and bottom borders since .Height() sets content area height
		style = style.Height(props.Height - 2)
	}

	return style.Render(b.String())
}

func stageColor(stage models.Stage) string {
	return theme.Stage(stage)
}
