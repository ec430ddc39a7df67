package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tres/internal/cli"
	"github.com/thenoetrevino/tres/internal/models"
	taskservice "github.com/thenoetrevino/tres/internal/services/task"
)

// EditCmd returns the task edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a task's title or stage",
		Long: `Edit a task. The saved task moves to the end of its target stage,
even when the stage is unchanged.

Examples:
  # Rename
  tres task edit --id=3 --title="Write better release notes"

  # Rename and finish in one step
  tres task edit --id=3 --title="Shipped" --stage=done
`,
		RunE: runEdit,
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("stage", "", "New stage: todo, inProgress, done")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
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

	req := taskservice.UpdateTaskRequest{TaskID: taskID}
	if cmd.Flags().Changed("title") {
		title, _ := cmd.Flags().GetString("title")
		req.Title = &title
	}
	if cmd.Flags().Changed("stage") {
		stageFlag, _ := cmd.Flags().GetString("stage")
		stage, err := cli.ParseStage(stageFlag)
		if err != nil {
			return cli.UsageError(formatter, "INVALID_STAGE", err)
		}
		req.Stage = &stage
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	task, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	return reportSaved(formatter, task, "updated")
}

// reportSaved prints a task that was just written
func reportSaved(formatter *cli.OutputFormatter, task models.Task, verb string) error {
	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	formatter.Printf("✓ Task %d %s\n", task.ID, verb)
	formatter.Printf("  Title: %s\n", task.Title)
	formatter.Printf("  Stage: %s\n", task.Status.DisplayName())
	return nil
}
