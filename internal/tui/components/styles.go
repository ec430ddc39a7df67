// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/tres/internal/config/colors"
	"github.com/thenoetrevino/tres/internal/tui/theme"
)

// ColumnWidth is the outer width of one board column
const ColumnWidth = 36

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of kanban board columns
	ColumnStyle lipgloss.Style

	// TaskStyle defines the appearance of one task row
	TaskStyle lipgloss.Style

	// SelectedTaskStyle highlights the task under the cursor
	SelectedTaskStyle lipgloss.Style

	// EditRowStyle frames the inline edit row
	EditRowStyle lipgloss.Style

	// CreateInputBoxStyle frames the add-task input (green border)
	CreateInputBoxStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen (blue border)
	HelpBoxStyle lipgloss.Style

	// InfoStyle and ErrorStyle color status line messages
	InfoStyle  lipgloss.Style
	ErrorStyle lipgloss.Style

	// SubtleStyle is used for hints, counts and empty states
	SubtleStyle lipgloss.Style
)

// InitStyles initializes all styles with the given color scheme
func InitStyles(scheme colors.ColorScheme) {
	// Initialize theme colors
	theme.Init(scheme)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(ColumnWidth)

	TaskStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Normal)).
		PaddingLeft(1)

	SelectedTaskStyle = TaskStyle.
		Bold(true).
		Foreground(lipgloss.Color(theme.SelectedBorder)).
		Background(lipgloss.Color(theme.SelectedBg))

	EditRowStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(theme.Edit)).
		PaddingLeft(1)

	CreateInputBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Create)).
		Padding(0, 1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(theme.Edit)).
		Padding(1, 2)

	InfoStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.InfoFg)).
		Bold(true)

	ErrorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.ErrorFg)).
		Bold(true)

	SubtleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Italic(true)
}
