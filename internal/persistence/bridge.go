// Package persistence keeps durable key-value storage in step with the board.
// Each stage collection lives under its own key as a JSON array.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tres/internal/board"
	"github.com/thenoetrevino/tres/internal/database"
	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/types"
)

// Storage keys, one per stage
const (
	KeyTodo       = "todoTasks"
	KeyInProgress = "inProgressTasks"
	KeyDone       = "doneTasks"
)

// KeyFor returns the storage key for a stage
func KeyFor(stage models.Stage) string {
	switch stage {
	case models.StageTodo:
		return KeyTodo
	case models.StageInProgress:
		return KeyInProgress
	case models.StageDone:
		return KeyDone
	default:
		return ""
	}
}

// record is the stored shape of a task. Status stays a plain string so one
// unrecognized value does not make the whole collection undecodable.
type record struct {
	ID     int    `json:"id"`
	Title  string `json:"title"`
	Status string `json:"status"`
}

// Bridge serializes board snapshots to a KVStore and restores them
type Bridge struct {
	kv database.KVStore
}

// NewBridge creates a Bridge over the given storage
func NewBridge(kv database.KVStore) *Bridge {
	return &Bridge{kv: kv}
}

// Attach makes every mutation of s save the full board before the command returns
func (b *Bridge) Attach(s *board.Store) {
	s.OnChange(b.Save)
}

// Save writes all three collections, overwriting whatever was stored
func (b *Bridge) Save(ctx context.Context, snap board.Snapshot) error {
	entries := make(map[string]string, 3)
	for _, stage := range models.Stages() {
		tasks := snap.Tasks(stage)
		records := make([]record, 0, len(tasks))
		for _, t := range tasks {
			records = append(records, record{
				ID:     t.ID.ToInt(),
				Title:  t.Title,
				Status: stage.String(),
			})
		}

		data, err := json.Marshal(records)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", stage, err)
		}
		entries[KeyFor(stage)] = string(data)
	}

	if err := b.kv.SetMany(ctx, entries); err != nil {
		return fmt.Errorf("failed to save board: %w", err)
	}

	slog.Debug("board saved", "tasks", snap.Len())
	return nil
}

// Load reads the three collections. An absent or undecodable key yields an
// empty collection; only storage errors are returned.
func (b *Bridge) Load(ctx context.Context) (board.Snapshot, error) {
	snap := make(board.Snapshot, 3)

	for _, stage := range models.Stages() {
		key := KeyFor(stage)

		raw, ok, err := b.kv.Get(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s: %w", key, err)
		}
		if !ok {
			snap[stage] = []models.Task{}
			continue
		}

		snap[stage] = decode(key, stage, raw)
	}

	return snap, nil
}

// decode parses one stored collection, treating malformed data as absent
func decode(key string, stage models.Stage, raw string) []models.Task {
	var records []record
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		slog.Warn("ignoring undecodable stored collection", "key", key, "error", err)
		return []models.Task{}
	}

	tasks := make([]models.Task, 0, len(records))
	for _, r := range records {
		status, err := models.ParseStage(r.Status)
		if err != nil || status != stage {
			slog.Warn("stored task status does not match its collection",
				"key", key, "task_id", r.ID, "status", r.Status)
			status = stage
		}
		tasks = append(tasks, models.Task{
			ID:     types.TaskIDFromInt(r.ID),
			Title:  r.Title,
			Status: status,
		})
	}
	return tasks
}
