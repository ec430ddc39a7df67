package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tres/internal/cli"
)

// DeleteCmd returns the task delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete a task",
		Long: `Delete a task from the board.

Examples:
  tres task delete --id=3
  tres task delete --id=3 --json
`,
		RunE: runDelete,
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	if err := requireFlags(cmd, formatter, "id"); err != nil {
		return err
	}

	idFlag, _ := cmd.Flags().GetInt("id")
	taskID, err := cli.ParseTaskID(idFlag)
	if err != nil {
		return cli.UsageError(formatter, "INVALID_TASK_ID", err)
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	task, err := cliInstance.App.TaskService.DeleteTask(ctx, taskID)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(task)
	}

	formatter.Printf("✓ Task %d deleted successfully: %s\n", task.ID, task.Title)
	return nil
}
