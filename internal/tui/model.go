package tui

import (
	"context"
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/help"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tres/internal/board"
	"github.com/thenoetrevino/tres/internal/config"
	"github.com/thenoetrevino/tres/internal/models"
	taskservice "github.com/thenoetrevino/tres/internal/services/task"
	"github.com/thenoetrevino/tres/internal/tui/components"
	"github.com/thenoetrevino/tres/internal/tui/state"
	"github.com/thenoetrevino/tres/internal/types"
)

// Model represents the application state for the TUI.
// The service is only touched from Update, so the store never sees
// concurrent calls.
type Model struct {
	ctx     context.Context
	Service taskservice.Service
	Config  *config.Config

	keys keyMap
	help help.Model

	// Board is the copy of the store that the view draws from
	Board board.Snapshot

	UIState           *state.UIState
	InputState        *state.InputState
	EditState         *state.EditState
	NotificationState *state.NotificationState
}

// New creates the TUI model over an already loaded board
func New(ctx context.Context, svc taskservice.Service, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.Default()
	}
	components.InitStyles(cfg.ColorScheme)

	h := help.New()
	h.ShowAll = true

	m := Model{
		ctx:               ctx,
		Service:           svc,
		Config:            cfg,
		keys:              newKeyMap(cfg.KeyMappings),
		help:              h,
		UIState:           state.NewUIState(),
		InputState:        state.NewInputState(),
		EditState:         state.NewEditState(),
		NotificationState: state.NewNotificationState(),
	}
	m.refresh()
	return m
}

// Init initializes the Bubble Tea application
// Required by tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// refresh copies the board out of the service and keeps the selection valid
func (m *Model) refresh() {
	m.Board = m.Service.List(m.ctx)
	m.UIState.ClampSelectedTask(len(m.currentTasks()))
}

// currentTasks returns the tasks in the selected column
func (m Model) currentTasks() []models.Task {
	return m.Board.Tasks(m.UIState.SelectedStage())
}

// currentTask returns the selected task, if the column has any
func (m Model) currentTask() (models.Task, bool) {
	tasks := m.currentTasks()
	i := m.UIState.SelectedTask()
	if i < 0 || i >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[i], true
}

// selectTask moves the cursor onto the task with id, wherever it is now
func (m *Model) selectTask(id types.TaskID) {
	for col, stage := range models.Stages() {
		for i, task := range m.Board.Tasks(stage) {
			if task.ID == id {
				m.UIState.SetSelectedColumn(col)
				m.UIState.SetSelectedTask(i)
				m.ensureSelectionVisible()
				return
			}
		}
	}
}

// ensureSelectionVisible scrolls the selected column to its selected task
func (m *Model) ensureSelectionVisible() {
	visible := components.VisibleTasks(m.columnHeight())
	m.UIState.EnsureTaskVisible(m.UIState.SelectedStage(), m.UIState.SelectedTask(), visible)
}

// reportError logs err and shows it on the status line
func (m *Model) reportError(action string, err error) {
	slog.Error("board operation failed", "action", action, "error", err)
	m.NotificationState.Add(state.LevelError, fmt.Sprintf("failed to %s: %v", action, err))
}

func (m *Model) info(format string, args ...any) {
	m.NotificationState.Add(state.LevelInfo, fmt.Sprintf(format, args...))
}
