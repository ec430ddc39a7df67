package models

import "github.com/thenoetrevino/tres/internal/types"

// Task represents a single card on the kanban board
type Task struct {
	ID     types.TaskID `json:"id"`
	Title  string       `json:"title"`
	Status Stage        `json:"status"`
}

// GetID returns the task ID as an int (used by quiet CLI output)
func (t Task) GetID() int {
	return t.ID.ToInt()
}
