package tui

import (
	"context"
	"errors"
	"slices"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tres/internal/board"
	"github.com/thenoetrevino/tres/internal/models"
	taskservice "github.com/thenoetrevino/tres/internal/services/task"
	"github.com/thenoetrevino/tres/internal/tui/state"
)

// ============================================================================
// ADD
// ============================================================================

func TestAddTask_TypeAndSubmit(t *testing.T) {
	m := SetupTestModel(t)

	SendKeysToModel(&m, keyRune('a'))
	if m.UIState.Mode() != state.AddTaskMode {
		t.Fatalf("mode after 'a' = %v, want add", m.UIState.Mode())
	}

	TypeStringToModel(&m, "Milk")
	SendKeysToModel(&m, keyEnter)

	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("mode after enter = %v, want normal", m.UIState.Mode())
	}
	if got := storedTitles(t, m, models.StageTodo); !slices.Equal(got, []string{"Milk"}) {
		t.Errorf("todo = %v, want [Milk]", got)
	}
	if got := titles(m, models.StageTodo); !slices.Equal(got, []string{"Milk"}) {
		t.Errorf("board copy = %v, want [Milk]", got)
	}
}

// TestAddTask_QuitKeyIsText ensures keys typed into the input are not commands.
func TestAddTask_QuitKeyIsText(t *testing.T) {
	m := SetupTestModel(t)

	SendKeysToModel(&m, keyRune('a'))
	SendKeysToModel(&m, keyRune('q'))

	if m.UIState.Mode() != state.AddTaskMode {
		t.Fatalf("'q' left add mode")
	}
	if m.InputState.Value() != "q" {
		t.Errorf("input = %q, want %q", m.InputState.Value(), "q")
	}
}

func TestAddTask_BlankIgnored(t *testing.T) {
	m := SetupTestModel(t)

	// Empty submission
	SendKeysToModel(&m, keyRune('a'), keyEnter)

	// Whitespace-only submission
	SendKeysToModel(&m, keyRune('a'))
	_ = m.InputState.Start("", "   ")
	SendKeysToModel(&m, keyEnter)

	if m.Board.Len() != 0 {
		t.Errorf("board has %d tasks, want 0", m.Board.Len())
	}
	if m.NotificationState.HasError() {
		t.Error("blank add should not report an error")
	}
}

func TestAddTask_EscCancels(t *testing.T) {
	m := SetupTestModel(t)

	SendKeysToModel(&m, keyRune('a'))
	TypeStringToModel(&m, "Nope")
	SendKeysToModel(&m, keyEsc)

	if m.UIState.Mode() != state.NormalMode || m.Board.Len() != 0 {
		t.Errorf("esc should discard the input, mode=%v tasks=%d", m.UIState.Mode(), m.Board.Len())
	}
}

func TestAddTask_IntoSelectedColumn(t *testing.T) {
	m := SetupTestModel(t)

	SendKeysToModel(&m, keyRune('l'), keyRune('a'))
	TypeStringToModel(&m, "Wip")
	SendKeysToModel(&m, keyEnter)

	if got := storedTitles(t, m, models.StageInProgress); !slices.Equal(got, []string{"Wip"}) {
		t.Errorf("inProgress = %v, want [Wip]", got)
	}
	if m.UIState.SelectedStage() != models.StageInProgress || m.UIState.SelectedTask() != 0 {
		t.Errorf("selection should land on the new task")
	}
}

// ============================================================================
// EDIT
// ============================================================================

func TestEditTask_PreloadsAndSaves(t *testing.T) {
	m := SetupTestModel(t)
	task := SeedTask(t, &m, models.StageTodo, "Draft")

	SendKeysToModel(&m, keyRune('e'))
	if m.UIState.Mode() != state.EditTaskMode {
		t.Fatalf("mode after 'e' = %v, want edit", m.UIState.Mode())
	}
	if m.InputState.Value() != "Draft" {
		t.Errorf("input preloaded with %q, want Draft", m.InputState.Value())
	}
	if !m.EditState.IsEditing(task.ID) {
		t.Error("edit session should target the selected task")
	}

	TypeStringToModel(&m, "2")
	SendKeysToModel(&m, keyTab, keyEnter)

	if got := storedTitles(t, m, models.StageInProgress); !slices.Equal(got, []string{"Draft2"}) {
		t.Errorf("inProgress = %v, want [Draft2]", got)
	}
	if got := storedTitles(t, m, models.StageTodo); len(got) != 0 {
		t.Errorf("todo = %v, want empty", got)
	}
	if m.EditState.Active() {
		t.Error("saving should close the edit session")
	}
	if m.UIState.SelectedStage() != models.StageInProgress {
		t.Error("selection should follow the edited task")
	}
	if n, _ := m.NotificationState.Current(); n.Message != "Saved #1 in In Progress" {
		t.Errorf("status = %q, want Saved #1 in In Progress", n.Message)
	}
}

func TestEditTask_ShiftTabWraps(t *testing.T) {
	m := SetupTestModel(t)
	SeedTask(t, &m, models.StageTodo, "Wrap")

	SendKeysToModel(&m, keyRune('e'), keyShiftTab)
	if got := m.EditState.Session().Stage; got != models.StageDone {
		t.Errorf("shift+tab from todo = %v, want done", got)
	}
	SendKeysToModel(&m, keyEnter)

	if got := storedTitles(t, m, models.StageDone); !slices.Equal(got, []string{"Wrap"}) {
		t.Errorf("done = %v, want [Wrap]", got)
	}
}

func TestEditTask_IdentitySaveMovesToEnd(t *testing.T) {
	m := SetupTestModel(t)
	SeedTask(t, &m, models.StageTodo, "First")
	SeedTask(t, &m, models.StageTodo, "Second")

	SendKeysToModel(&m, keyRune('e'), keyEnter)

	if got := storedTitles(t, m, models.StageTodo); !slices.Equal(got, []string{"Second", "First"}) {
		t.Errorf("todo = %v, want [Second First]", got)
	}
	if n, _ := m.NotificationState.Current(); n.Message != "Saved #1 unchanged" {
		t.Errorf("status = %q, want Saved #1 unchanged", n.Message)
	}
}

func TestEditTask_EscCancels(t *testing.T) {
	m := SetupTestModel(t)
	SeedTask(t, &m, models.StageTodo, "Keep")

	SendKeysToModel(&m, keyRune('e'))
	TypeStringToModel(&m, "xyz")
	SendKeysToModel(&m, keyTab, keyEsc)

	if got := storedTitles(t, m, models.StageTodo); !slices.Equal(got, []string{"Keep"}) {
		t.Errorf("todo = %v, want [Keep]", got)
	}
	if m.EditState.Active() {
		t.Error("esc should close the edit session")
	}
}

func TestEditTask_EmptyColumn(t *testing.T) {
	m := SetupTestModel(t)

	SendKeysToModel(&m, keyRune('e'))

	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("edit with no task should stay in normal mode")
	}
	if _, ok := m.NotificationState.Current(); !ok {
		t.Error("expected a 'No task selected' message")
	}
}

// ============================================================================
// DELETE AND MOVE
// ============================================================================

func TestDeleteTask_SelectedOnly(t *testing.T) {
	m := SetupTestModel(t)
	SeedTask(t, &m, models.StageTodo, "One")
	SeedTask(t, &m, models.StageTodo, "Two")
	SeedTask(t, &m, models.StageDone, "Other")

	SendKeysToModel(&m, keyRune('j'), keyRune('d'))

	if got := storedTitles(t, m, models.StageTodo); !slices.Equal(got, []string{"One"}) {
		t.Errorf("todo = %v, want [One]", got)
	}
	if got := storedTitles(t, m, models.StageDone); !slices.Equal(got, []string{"Other"}) {
		t.Errorf("done = %v, want [Other]", got)
	}
	if m.UIState.SelectedTask() != 0 {
		t.Errorf("selection = %d, want clamped to 0", m.UIState.SelectedTask())
	}
}

func TestMoveTask_RightAndLeft(t *testing.T) {
	m := SetupTestModel(t)
	SeedTask(t, &m, models.StageTodo, "Ship")

	SendKeysToModel(&m, keyRune('L'))
	if got := storedTitles(t, m, models.StageInProgress); !slices.Equal(got, []string{"Ship"}) {
		t.Fatalf("inProgress = %v, want [Ship]", got)
	}
	if m.UIState.SelectedStage() != models.StageInProgress {
		t.Error("selection should follow the moved task")
	}

	SendKeysToModel(&m, keyRune('L'), keyRune('L'))
	if got := storedTitles(t, m, models.StageDone); !slices.Equal(got, []string{"Ship"}) {
		t.Errorf("done = %v, want [Ship]; moving past the last stage is a no-op", got)
	}

	SendKeysToModel(&m, keyRune('H'))
	if got := storedTitles(t, m, models.StageInProgress); !slices.Equal(got, []string{"Ship"}) {
		t.Errorf("inProgress = %v, want [Ship]", got)
	}
}

// ============================================================================
// NAVIGATION
// ============================================================================

func TestNavigation_Columns(t *testing.T) {
	m := SetupTestModel(t)

	SendKeysToModel(&m, keyRune('h'))
	if m.UIState.SelectedColumn() != 0 {
		t.Errorf("column = %d, want 0", m.UIState.SelectedColumn())
	}

	SendKeysToModel(&m, keyRune('l'), keyCode(tea.KeyRight), keyRune('l'))
	if m.UIState.SelectedColumn() != 2 {
		t.Errorf("column = %d, want 2", m.UIState.SelectedColumn())
	}

	SendKeysToModel(&m, keyCode(tea.KeyLeft))
	if m.UIState.SelectedColumn() != 1 {
		t.Errorf("column = %d, want 1", m.UIState.SelectedColumn())
	}
}

func TestNavigation_Tasks(t *testing.T) {
	m := SetupTestModel(t)
	SeedTask(t, &m, models.StageTodo, "A")
	SeedTask(t, &m, models.StageTodo, "B")

	SendKeysToModel(&m, keyRune('j'), keyRune('j'))
	if m.UIState.SelectedTask() != 1 {
		t.Errorf("task = %d, want 1 (stops at the last task)", m.UIState.SelectedTask())
	}

	SendKeysToModel(&m, keyCode(tea.KeyUp), keyRune('k'))
	if m.UIState.SelectedTask() != 0 {
		t.Errorf("task = %d, want 0", m.UIState.SelectedTask())
	}
}

func TestQuit(t *testing.T) {
	m := SetupTestModel(t)

	_, cmd := m.Update(keyRune('q'))
	if cmd == nil {
		t.Fatal("'q' should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("'q' should quit")
	}
}

func TestHelp_Toggle(t *testing.T) {
	m := SetupTestModel(t)

	SendKeysToModel(&m, keyRune('?'))
	if m.UIState.Mode() != state.HelpMode {
		t.Fatalf("mode = %v, want help", m.UIState.Mode())
	}

	SendKeysToModel(&m, keyRune('x'))
	if m.UIState.Mode() != state.NormalMode {
		t.Errorf("any key should close help, mode = %v", m.UIState.Mode())
	}
}

// ============================================================================
// ERRORS
// ============================================================================

// TestStorageFailure_ShownOnStatusLine checks the in-memory change stands and
// the failure is reported.
func TestStorageFailure_ShownOnStatusLine(t *testing.T) {
	store := board.New(nil)
	store.OnChange(func(ctx context.Context, snap board.Snapshot) error {
		return errors.New("disk full")
	})
	m := newSizedModel(taskservice.NewService(store))

	SendKeysToModel(&m, keyRune('a'))
	TypeStringToModel(&m, "Unsaved")
	SendKeysToModel(&m, keyEnter)

	if !m.NotificationState.HasError() {
		t.Fatal("expected an error on the status line")
	}
	if got := titles(m, models.StageTodo); !slices.Equal(got, []string{"Unsaved"}) {
		t.Errorf("todo = %v, want [Unsaved]", got)
	}

	// The next key clears the message
	SendKeysToModel(&m, keyRune('j'))
	if m.NotificationState.HasError() {
		t.Error("status line should clear on the next key")
	}
}
