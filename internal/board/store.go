// Package board holds the in-memory kanban state: three ordered task
// collections, one per stage, and the commands that mutate them.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/types"
)

// ChangeFunc is invoked synchronously after every successful mutation
// with a copy of the new state.
type ChangeFunc func(ctx context.Context, snap Snapshot) error

// Store owns the three stage collections and assigns task identity.
// It is not safe for concurrent use; callers run commands one at a time.
type Store struct {
	columns  map[models.Stage][]models.Task
	nextID   types.TaskID
	onChange ChangeFunc
}

// New creates a Store initialized from a previously persisted snapshot.
// Stages missing from snap start empty. Tasks are re-tagged with the stage of
// the collection they were loaded into. A task whose ID is not positive, or
// repeats an ID already seen in board order, is kept under a fresh ID.
func New(snap Snapshot) *Store {
	s := &Store{
		columns: make(map[models.Stage][]models.Task, 3),
		nextID:  1,
	}

	for _, stage := range models.Stages() {
		for _, t := range snap[stage] {
			if t.ID >= s.nextID {
				s.nextID = t.ID + 1
			}
		}
	}

	seen := make(map[types.TaskID]models.Stage)
	for _, stage := range models.Stages() {
		tasks := make([]models.Task, 0, len(snap[stage]))
		for _, t := range snap[stage] {
			if _, dup := seen[t.ID]; dup || t.ID <= 0 {
				id := s.nextID
				s.nextID++
				slog.Warn("reassigning task id on load",
					"task_id", t.ID, "new_id", id, "stage", stage, "duplicate", dup)
				t.ID = id
			}
			seen[t.ID] = stage

			if t.Status != stage {
				slog.Debug("re-tagging task with its collection stage",
					"task_id", t.ID, "status", t.Status, "stage", stage)
				t.Status = stage
			}
			tasks = append(tasks, t)
		}
		s.columns[stage] = tasks
	}

	return s
}

// OnChange registers the hook run after each mutation, replacing any previous one
func (s *Store) OnChange(fn ChangeFunc) {
	s.onChange = fn
}

// Tasks returns a copy of the collection for stage, in display order
func (s *Store) Tasks(stage models.Stage) []models.Task {
	return append([]models.Task(nil), s.columns[stage]...)
}

// Snapshot returns a deep copy of all three collections
func (s *Store) Snapshot() Snapshot {
	return Snapshot(s.columns).Clone()
}

// Len returns the total number of tasks on the board
func (s *Store) Len() int {
	return Snapshot(s.columns).Len()
}

// Find looks up a task by ID in any stage
func (s *Store) Find(id types.TaskID) (models.Task, bool) {
	stage, i := s.locate(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.columns[stage][i], true
}

// Add appends a new task to the end of stage's collection.
// A title that is blank after trimming is ignored: ok is false and nothing changes.
func (s *Store) Add(ctx context.Context, title string, stage models.Stage) (task models.Task, ok bool, err error) {
	if !stage.Valid() {
		return models.Task{}, false, models.ErrInvalidStage
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, false, nil
	}

	task = models.Task{
		ID:     s.nextID,
		Title:  title,
		Status: stage,
	}
	s.nextID++
	s.columns[stage] = append(s.columns[stage], task)

	return task, true, s.notify(ctx)
}

// BeginEdit opens an edit session for the task with the given ID.
// The store itself is not modified.
func (s *Store) BeginEdit(id types.TaskID) (EditSession, error) {
	task, ok := s.Find(id)
	if !ok {
		return EditSession{}, fmt.Errorf("%w: %d", ErrTaskNotFound, id)
	}

	return EditSession{
		TaskID:        task.ID,
		From:          task.Status,
		Title:         task.Title,
		Stage:         task.Status,
		originalTitle: task.Title,
	}, nil
}

// SaveEdit applies an edit session: the task is removed from whichever stage
// holds it and appended to the end of sess.Stage with sess.Title.
// The title is stored as given.
func (s *Store) SaveEdit(ctx context.Context, sess EditSession) (models.Task, error) {
	if !sess.Stage.Valid() {
		return models.Task{}, models.ErrInvalidStage
	}

	from, i := s.locate(sess.TaskID)
	if i < 0 {
		return models.Task{}, fmt.Errorf("%w: %d", ErrTaskNotFound, sess.TaskID)
	}

	updated := models.Task{
		ID:     sess.TaskID,
		Title:  sess.Title,
		Status: sess.Stage,
	}

	s.columns[from] = removeAt(s.columns[from], i)
	s.columns[sess.Stage] = append(s.columns[sess.Stage], updated)

	return updated, s.notify(ctx)
}

// Delete removes task from the collection for task.Status.
// Other collections are never touched.
func (s *Store) Delete(ctx context.Context, task models.Task) error {
	tasks := s.columns[task.Status]
	for i := range tasks {
		if tasks[i].ID == task.ID {
			s.columns[task.Status] = removeAt(tasks, i)
			return s.notify(ctx)
		}
	}
	return fmt.Errorf("%w: %d in %s", ErrTaskNotFound, task.ID, task.Status)
}

// Clear removes every task in one stage and returns how many were removed
func (s *Store) Clear(ctx context.Context, stage models.Stage) (int, error) {
	if !stage.Valid() {
		return 0, models.ErrInvalidStage
	}

	n := len(s.columns[stage])
	if n == 0 {
		return 0, nil
	}
	s.columns[stage] = []models.Task{}

	return n, s.notify(ctx)
}

// locate returns the stage and index of the task, or index -1
func (s *Store) locate(id types.TaskID) (models.Stage, int) {
	for _, stage := range models.Stages() {
		for i, t := range s.columns[stage] {
			if t.ID == id {
				return stage, i
			}
		}
	}
	return 0, -1
}

// notify runs the change hook. The in-memory mutation stands even if it fails.
func (s *Store) notify(ctx context.Context) error {
	if s.onChange == nil {
		return nil
	}
	return s.onChange(ctx, s.Snapshot())
}

func removeAt(tasks []models.Task, i int) []models.Task {
	out := make([]models.Task, 0, len(tasks)-1)
	out = append(out, tasks[:i]...)
	return append(out, tasks[i+1:]...)
}
