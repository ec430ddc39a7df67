package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/thenoetrevino/tres/internal/board"
	"github.com/thenoetrevino/tres/internal/database"
	"github.com/thenoetrevino/tres/internal/persistence"
	taskservice "github.com/thenoetrevino/tres/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	db     *sql.DB
	ownsDB bool

	// Service layer (business logic)
	TaskService taskservice.Service
}

// Open opens the database at path and builds an App that owns it
func Open(ctx context.Context, path string, opts ...Option) (*App, error) {
	db, err := database.InitDB(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	a, err := New(ctx, db, opts...)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	a.ownsDB = true
	return a, nil
}

// New restores the board from storage and wires the services.
// This is the single entry point for creating the application container.
func New(ctx context.Context, db *sql.DB, opts ...Option) (*App, error) {
	cfg := &appConfig{logger: slog.Default()}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.kv == nil {
		cfg.kv = database.NewRepository(db)
	}

	bridge := persistence.NewBridge(cfg.kv)
	snap, err := bridge.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load board: %w", err)
	}

	store := board.New(snap)
	bridge.Attach(store)

	cfg.logger.Info("board loaded", "tasks", store.Len())

	return &App{
		db:          db,
		TaskService: taskservice.NewService(store),
	}, nil
}

// Close releases the database if the App opened it
func (a *App) Close() error {
	if a.ownsDB && a.db != nil {
		return a.db.Close()
	}
	return nil
}
