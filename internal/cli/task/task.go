package task

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tres/internal/cli"
)

// TaskCmd returns the task parent command
func TaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(ClearCmd())

	return cmd
}

// openCLI opens the board for a subcommand, reporting failures through formatter
func openCLI(cmd *cobra.Command, formatter *cli.OutputFormatter) (*cli.CLI, func(), error) {
	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return nil, nil, formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}

	closeFn := func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}
	return cliInstance, closeFn, nil
}

// requireFlags reports the first listed flag that was not given
func requireFlags(cmd *cobra.Command, formatter *cli.OutputFormatter, names ...string) error {
	for _, name := range names {
		if !cmd.Flags().Changed(name) {
			return formatter.Fail(cli.ExitUsage, "MISSING_FLAG",
				fmt.Errorf("required flag --%s not set", name),
				fmt.Sprintf("Run '%s --help' for usage", cmd.CommandPath()))
		}
	}
	return nil
}
