package cli

import (
	"context"
	"testing"

	"github.com/thenoetrevino/tres/internal/app"
	"github.com/thenoetrevino/tres/internal/database"
	"github.com/thenoetrevino/tres/internal/models"
	taskservice "github.com/thenoetrevino/tres/internal/services/task"
)

// SetupCLITest opens an App over an in-memory database.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) *app.App {
	t.Helper()

	appInstance, err := app.Open(context.Background(), database.MemoryPath)
	if err != nil {
		t.Fatalf("Failed to open test app: %v", err)
	}
	t.Cleanup(func() {
		_ = appInstance.Close()
	})

	return appInstance
}

// CreateTestTask adds a task through the service and returns it
func CreateTestTask(t *testing.T, a *app.App, stage models.Stage, title string) models.Task {
	t.Helper()

	task, err := a.TaskService.AddTask(context.Background(), taskservice.AddTaskRequest{
		Title: title,
		Stage: stage,
	})
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	if task == nil {
		t.Fatalf("Test task %q was not created", title)
	}
	return *task
}

// StageTitles lists the titles in one stage, in board order
func StageTitles(t *testing.T, a *app.App, stage models.Stage) []string {
	t.Helper()

	tasks, err := a.TaskService.Tasks(context.Background(), stage)
	if err != nil {
		t.Fatalf("Failed to list %s: %v", stage, err)
	}
	titles := make([]string, 0, len(tasks))
	for _, task := range tasks {
		titles = append(titles, task.Title)
	}
	return titles
}
