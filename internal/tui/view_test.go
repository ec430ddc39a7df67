package tui

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/tres/internal/models"
)

func TestView_LoadingBeforeSize(t *testing.T) {
	m := SetupTestModel(t)
	m.UIState.SetWidth(0)

	if got := m.View().Content; got != "Loading..." {
		t.Errorf("View() = %q, want Loading...", got)
	}
}

func TestView_ThreeColumns(t *testing.T) {
	m := SetupTestModel(t)
	SeedTask(t, &m, models.StageTodo, "Write tests")

	view := m.View()
	if !view.AltScreen {
		t.Error("board should use the alternate screen")
	}

	for _, want := range []string{"Todo (1)", "In Progress (0)", "Done (0)", "#1 Write tests", "No tasks"} {
		if !strings.Contains(view.Content, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestView_EditRowShowsTargetStage(t *testing.T) {
	m := SetupTestModel(t)
	SeedTask(t, &m, models.StageTodo, "Edit me")

	SendKeysToModel(&m, keyRune('e'), keyTab)

	content := m.View().Content
	if !strings.Contains(content, "‹ In Progress ›") {
		t.Error("edit row should show the target stage")
	}
}

func TestView_Help(t *testing.T) {
	m := SetupTestModel(t)
	SendKeysToModel(&m, keyRune('?'))

	content := m.View().Content
	for _, want := range []string{"Keyboard shortcuts", "add task", "next stage while editing"} {
		if !strings.Contains(content, want) {
			t.Errorf("help missing %q", want)
		}
	}
}
