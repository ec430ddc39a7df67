package tui

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tres/internal/app"
	"github.com/thenoetrevino/tres/internal/config"
	"github.com/thenoetrevino/tres/internal/database"
	"github.com/thenoetrevino/tres/internal/models"
	taskservice "github.com/thenoetrevino/tres/internal/services/task"
)

// SetupTestModel creates a sized model over an in-memory board
func SetupTestModel(t *testing.T) Model {
	t.Helper()

	a, err := app.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to open test app: %v", err)
	}
	t.Cleanup(func() {
		_ = a.Close()
	})

	return newSizedModel(a.TaskService)
}

func newSizedModel(svc taskservice.Service) Model {
	m := New(context.Background(), svc, config.Default())
	return UpdateModelWithMessage(m, tea.WindowSizeMsg{Width: 120, Height: 40})
}

// SeedTask adds a task through the service and refreshes the model's copy
func SeedTask(t *testing.T, m *Model, stage models.Stage, title string) models.Task {
	t.Helper()

	task, err := m.Service.AddTask(context.Background(), taskservice.AddTaskRequest{Title: title, Stage: stage})
	if err != nil || task == nil {
		t.Fatalf("Failed to seed task %q: %v", title, err)
	}
	m.refresh()
	return *task
}

// UpdateModelWithMessage updates the model with a message and returns the updated model
func UpdateModelWithMessage(m Model, msg tea.Msg) Model {
	updatedModel, _ := m.Update(msg)
	return updatedModel.(Model)
}

// SendKeysToModel sends multiple key presses to a model sequentially
func SendKeysToModel(m *Model, keys ...tea.Msg) *Model {
	for _, key := range keys {
		*m = UpdateModelWithMessage(*m, key)
	}
	return m
}

// TypeStringToModel types a string into a model character by character
func TypeStringToModel(m *Model, s string) *Model {
	for _, r := range s {
		*m = UpdateModelWithMessage(*m, tea.KeyPressMsg(tea.Key{Text: string(r), Code: r}))
	}
	return m
}

func keyRune(r rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Text: string(r), Code: r})
}

func keyCode(code rune) tea.Msg {
	return tea.KeyPressMsg(tea.Key{Code: code})
}

var (
	keyEnter    = keyCode(tea.KeyEnter)
	keyEsc      = keyCode(tea.KeyEscape)
	keyTab      = keyCode(tea.KeyTab)
	keyShiftTab = tea.KeyPressMsg(tea.Key{Code: tea.KeyTab, Mod: tea.ModShift})
)

// titles lists the titles in a stage of the model's board copy
func titles(m Model, stage models.Stage) []string {
	out := []string{}
	for _, task := range m.Board.Tasks(stage) {
		out = append(out, task.Title)
	}
	return out
}

// storedTitles lists the titles the service holds for a stage
func storedTitles(t *testing.T, m Model, stage models.Stage) []string {
	t.Helper()
	tasks, err := m.Service.Tasks(context.Background(), stage)
	if err != nil {
		t.Fatalf("Tasks(%v) failed: %v", stage, err)
	}
	out := []string{}
	for _, task := range tasks {
		out = append(out, task.Title)
	}
	return out
}
