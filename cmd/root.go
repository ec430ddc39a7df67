package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tres/internal/cli"
	"github.com/thenoetrevino/tres/internal/cli/board"
	"github.com/thenoetrevino/tres/internal/cli/task"
	"github.com/thenoetrevino/tres/internal/config"
	"github.com/thenoetrevino/tres/internal/launcher"
	"github.com/thenoetrevino/tres/internal/logging"
)

var logFile io.Closer

var rootCmd = &cobra.Command{
	Use:   "tres",
	Short: "Tres - a three-column terminal kanban board",
	Long: `Tres keeps a Todo / In Progress / Done board on disk.

Run without a subcommand to open the interactive board, or use the
subcommands to script it.`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
	RunE:               runTUI,
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to the board database (overrides config)")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\nRun '%s --help' for usage.\n", err, cmd.CommandPath())
		return cli.WithExitCode(cli.ExitUsage, err)
	})

	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(board.BoardCmd())
}

// setup loads configuration and opens the log file before any command runs
func setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if path, _ := cmd.Flags().GetString("db"); path != "" {
		cfg.Storage.Path = path
	}

	closer, err := logging.Init(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		// Logging is best effort; keep going with the default logger
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
	} else {
		logFile = closer
	}

	cmd.SetContext(cli.WithConfig(cmd.Context(), cfg))
	slog.Debug("command started", "command", cmd.CommandPath(), "db", cfg.Storage.Path)
	return nil
}

func teardown(cmd *cobra.Command, args []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

// runTUI opens the interactive board
func runTUI(cmd *cobra.Command, args []string) error {
	cfg := cli.ConfigFromContext(cmd.Context())
	if cfg == nil {
		cfg = config.Default()
	}
	return launcher.Launch(cmd.Context(), cfg)
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
