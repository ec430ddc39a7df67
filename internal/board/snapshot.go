package board

import "github.com/thenoetrevino/tres/internal/models"

// Snapshot is a detached copy of the three stage collections, keyed by stage.
// A missing key is an empty collection.
type Snapshot map[models.Stage][]models.Task

// Tasks returns the collection for a stage (nil if absent)
func (s Snapshot) Tasks(stage models.Stage) []models.Task {
	return s[stage]
}

// Len returns the number of tasks across all stages
func (s Snapshot) Len() int {
	n := 0
	for _, tasks := range s {
		n += len(tasks)
	}
	return n
}

// Clone returns a deep copy of the snapshot
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for stage, tasks := range s {
		out[stage] = append([]models.Task(nil), tasks...)
	}
	return out
}
