package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

// StatusBarProps describes the bottom line of the board
type StatusBarProps struct {
	Width        int
	TaskCount    int
	Notification *state.Notification
}

// RenderStatusBar renders a status bar with left and right aligned text.
// The left side shows the latest message, or the board size when there is none.
func RenderStatusBar(props StatusBarProps) string {
	var left string
	switch {
	case props.Notification == nil:
		left = SubtleStyle.Render(taskCountText(props.TaskCount))
	case props.Notification.Level == state.LevelError:
		left = ErrorStyle.Render("✗ " + props.Notification.Message)
	default:
		left = InfoStyle.Render(props.Notification.Message)
	}
	right := SubtleStyle.Render("press ? for help")

	// Calculate space between left and right text
	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	gap := strings.Repeat(" ", gapWidth)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}

func taskCountText(n int) string {
	if n == 1 {
		return "Tres · 1 task"
	}
	return fmt.Sprintf("Tres · %d tasks", n)
}
