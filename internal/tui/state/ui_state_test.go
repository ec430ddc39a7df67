package state

import (
	"testing"

	"github.com/thenoetrevino/tres/internal/models"
)

// TestSetSelectedColumn_Clamps keeps the selection on one of the three stages.
func TestSetSelectedColumn_Clamps(t *testing.T) {
	s := NewUIState()

	s.SetSelectedColumn(-1)
	if s.SelectedColumn() != 0 {
		t.Errorf("SelectedColumn() = %d, want 0", s.SelectedColumn())
	}

	s.SetSelectedColumn(10)
	if s.SelectedColumn() != 2 {
		t.Errorf("SelectedColumn() = %d, want 2", s.SelectedColumn())
	}
	if s.SelectedStage() != models.StageDone {
		t.Errorf("SelectedStage() = %v, want done", s.SelectedStage())
	}
}

func TestClampSelectedTask(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		n        int
		want     int
	}{
		{"inside", 1, 3, 1},
		{"past the end", 5, 3, 2},
		{"empty column", 2, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewUIState()
			s.SetSelectedTask(tt.selected)
			s.ClampSelectedTask(tt.n)
			if s.SelectedTask() != tt.want {
				t.Errorf("SelectedTask() = %d, want %d", s.SelectedTask(), tt.want)
			}
		})
	}
}

func TestEnsureTaskVisible(t *testing.T) {
	s := NewUIState()

	s.EnsureTaskVisible(models.StageTodo, 5, 3)
	if got := s.TaskScrollOffset(models.StageTodo); got != 3 {
		t.Errorf("offset after scrolling down = %d, want 3", got)
	}

	s.EnsureTaskVisible(models.StageTodo, 1, 3)
	if got := s.TaskScrollOffset(models.StageTodo); got != 1 {
		t.Errorf("offset after scrolling up = %d, want 1", got)
	}

	if got := s.TaskScrollOffset(models.StageDone); got != 0 {
		t.Errorf("other stages keep their offset, got %d", got)
	}
}

func TestContentHeight_NeverNegative(t *testing.T) {
	s := NewUIState()
	s.SetHeight(2)
	if s.ContentHeight() != 0 {
		t.Errorf("ContentHeight() = %d, want 0", s.ContentHeight())
	}
}
