package task

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tres/internal/board"
	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/types"
)

// Service defines all task-related board operations.
// Every write operation has been persisted by the time it returns.
type Service interface {
	// Read operations
	List(ctx context.Context) board.Snapshot
	Tasks(ctx context.Context, stage models.Stage) ([]models.Task, error)
	GetTask(ctx context.Context, taskID types.TaskID) (models.Task, error)

	// Write operations
	AddTask(ctx context.Context, req AddTaskRequest) (*models.Task, error)
	BeginEdit(ctx context.Context, taskID types.TaskID) (board.EditSession, error)
	SaveEdit(ctx context.Context, sess board.EditSession) (models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (models.Task, error)
	MoveTask(ctx context.Context, taskID types.TaskID, stage models.Stage) (models.Task, error)
	RenameTask(ctx context.Context, taskID types.TaskID, title string) (models.Task, error)
	DeleteTask(ctx context.Context, taskID types.TaskID) (models.Task, error)
	ClearStage(ctx context.Context, stage models.Stage) (int, error)
}

// AddTaskRequest encapsulates all data needed to create a task
type AddTaskRequest struct {
	Title string
	Stage models.Stage
}

// UpdateTaskRequest encapsulates a one-shot edit.
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	TaskID types.TaskID
	Title  *string
	Stage  *models.Stage
}

// service implements Service interface
type service struct {
	store *board.Store
}

// NewService creates a new task service over a store whose persistence hook
// has already been attached.
func NewService(store *board.Store) Service {
	return &service{store: store}
}

// List returns a copy of the whole board
func (s *service) List(ctx context.Context) board.Snapshot {
	return s.store.Snapshot()
}

// Tasks returns one stage's tasks in display order
func (s *service) Tasks(ctx context.Context, stage models.Stage) ([]models.Task, error) {
	if !stage.Valid() {
		return nil, ErrInvalidStage
	}
	return s.store.Tasks(stage), nil
}

// GetTask looks a task up by ID
func (s *service) GetTask(ctx context.Context, taskID types.TaskID) (models.Task, error) {
	if taskID <= 0 {
		return models.Task{}, ErrInvalidTaskID
	}
	task, ok := s.store.Find(taskID)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %d", ErrTaskNotFound, taskID)
	}
	return task, nil
}

// AddTask appends a task to the requested stage.
// A blank title is not an error: it returns a nil task and nil error.
func (s *service) AddTask(ctx context.Context, req AddTaskRequest) (*models.Task, error) {
	task, ok, err := s.store.Add(ctx, req.Title, req.Stage)
	if err != nil {
		if !ok {
			return nil, err
		}
		// The task exists in memory but did not reach storage
		return &task, fmt.Errorf("failed to save new task: %w", err)
	}
	if !ok {
		slog.Debug("ignoring blank task title", "stage", req.Stage)
		return nil, nil
	}

	slog.Debug("task added", "task_id", task.ID, "stage", task.Status)
	return &task, nil
}

// BeginEdit opens an edit session for a task
func (s *service) BeginEdit(ctx context.Context, taskID types.TaskID) (board.EditSession, error) {
	if taskID <= 0 {
		return board.EditSession{}, ErrInvalidTaskID
	}
	return s.store.BeginEdit(taskID)
}

// SaveEdit commits an edit session
func (s *service) SaveEdit(ctx context.Context, sess board.EditSession) (models.Task, error) {
	task, err := s.store.SaveEdit(ctx, sess)
	if err != nil {
		return task, fmt.Errorf("failed to save task %d: %w", sess.TaskID, err)
	}

	slog.Debug("task saved", "task_id", task.ID, "from", sess.From, "to", task.Status)
	return task, nil
}

// UpdateTask opens, modifies and saves an edit session in one call
func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (models.Task, error) {
	sess, err := s.BeginEdit(ctx, req.TaskID)
	if err != nil {
		return models.Task{}, err
	}

	if req.Title != nil {
		sess.Title = *req.Title
	}
	if req.Stage != nil {
		if !req.Stage.Valid() {
			return models.Task{}, ErrInvalidStage
		}
		sess.Stage = *req.Stage
	}

	return s.SaveEdit(ctx, sess)
}

// MoveTask changes only the stage of a task
func (s *service) MoveTask(ctx context.Context, taskID types.TaskID, stage models.Stage) (models.Task, error) {
	return s.UpdateTask(ctx, UpdateTaskRequest{TaskID: taskID, Stage: &stage})
}

// RenameTask changes only the title of a task
func (s *service) RenameTask(ctx context.Context, taskID types.TaskID, title string) (models.Task, error) {
	return s.UpdateTask(ctx, UpdateTaskRequest{TaskID: taskID, Title: &title})
}

// DeleteTask removes a task and returns what was removed
func (s *service) DeleteTask(ctx context.Context, taskID types.TaskID) (models.Task, error) {
	task, err := s.GetTask(ctx, taskID)
	if err != nil {
		return models.Task{}, err
	}

	if err := s.store.Delete(ctx, task); err != nil {
		return task, fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}

	slog.Debug("task deleted", "task_id", task.ID, "stage", task.Status)
	return task, nil
}

// ClearStage deletes every task in a stage
func (s *service) ClearStage(ctx context.Context, stage models.Stage) (int, error) {
	n, err := s.store.Clear(ctx, stage)
	if err != nil {
		return n, fmt.Errorf("failed to clear %s: %w", stage, err)
	}
	return n, nil
}
