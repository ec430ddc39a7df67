package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tres/internal/app"
	"github.com/thenoetrevino/tres/internal/config"
	"github.com/thenoetrevino/tres/internal/tui"
)

// Launch opens the board described by cfg and runs the TUI until the user
// quits or the process is interrupted.
func Launch(parent context.Context, cfg *config.Config) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application, err := app.Open(ctx, cfg.Storage.Path, app.WithLogger(slog.Default().With("surface", "tui")))
	if err != nil {
		return fmt.Errorf("failed to open board: %w", err)
	}

	// database cleanup
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	model := tui.New(ctx, application.TaskService, cfg)
	p := tea.NewProgram(model, tea.WithContext(ctx))

	// Every change was saved as it happened, so an interrupted program has
	// nothing left to flush.
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("error running program: %w", err)
	}
	if ctx.Err() != nil {
		slog.Info("shutdown signal received")
	}

	return nil
}
