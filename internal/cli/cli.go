package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tres/internal/app"
	"github.com/thenoetrevino/tres/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App   *app.App // Application container with services
	owned bool
}

// NewCLI opens the board stored at dbPath
func NewCLI(ctx context.Context, dbPath string) (*CLI, error) {
	application, err := app.Open(ctx, dbPath, app.WithLogger(slog.Default().With("surface", "cli")))
	if err != nil {
		return nil, fmt.Errorf("failed to open board: %w", err)
	}

	return &CLI{App: application, owned: true}, nil
}

// GetCLIFromContext returns a CLI around the App carried by ctx, or opens the
// board at the path given by --db, the environment, or the config file.
func GetCLIFromContext(cmd *cobra.Command) (*CLI, error) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if a := AppFromContext(ctx); a != nil {
		return &CLI{App: a}, nil
	}

	path, err := ResolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return NewCLI(ctx, path)
}

// ResolveDBPath picks the database path: --db flag first, then configuration
func ResolveDBPath(cmd *cobra.Command) (string, error) {
	if f := cmd.Flags().Lookup("db"); f != nil && f.Value.String() != "" {
		return f.Value.String(), nil
	}

	if cfg := ConfigFromContext(cmd.Context()); cfg != nil {
		return cfg.Storage.Path, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	return cfg.Storage.Path, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if c.owned {
		return c.App.Close()
	}
	return nil
}
