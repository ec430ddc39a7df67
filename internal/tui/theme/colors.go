package theme

import (
	"github.com/thenoetrevino/tres/internal/config/colors"
	"github.com/thenoetrevino/tres/internal/models"
)

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Subtle         string
	Normal         string
	Create         string
	Edit           string
	ColumnBorder   string
	SelectedBorder string
	SelectedBg     string
	Title          string
	InfoFg         string
	ErrorFg        string

	stageColors = map[models.Stage]string{}
)

// Init initializes the theme colors from the given color scheme
func Init(scheme colors.ColorScheme) {
	Highlight = scheme.Accent
	Subtle = scheme.Subtle
	Normal = scheme.Normal
	Create = scheme.Create
	Edit = scheme.Edit
	ColumnBorder = scheme.ColumnBorder
	SelectedBorder = scheme.SelectedBorder
	SelectedBg = scheme.SelectedBg
	Title = scheme.Title
	InfoFg = scheme.InfoFg
	ErrorFg = scheme.ErrorFg

	stageColors = map[models.Stage]string{
		models.StageTodo:       scheme.Todo,
		models.StageInProgress: scheme.InProgress,
		models.StageDone:       scheme.Done,
	}
}

// Stage returns the heading color for a stage
func Stage(stage models.Stage) string {
	if c, ok := stageColors[stage]; ok && c != "" {
		return c
	}
	return Title
}
