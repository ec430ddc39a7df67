package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tres/internal/cli"
	taskservice "github.com/thenoetrevino/tres/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a stage",
		Long: `Add a new task to the end of a stage.

Examples:
  # Add to Todo
  tres task add --title="Write release notes"

  # Add straight to In Progress
  tres task add --title="Fix login" --stage=inProgress

  # Quiet mode for bash capture
  TASK_ID=$(tres task add --title="Fix bug" --quiet)
`,
		RunE: runAdd,
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().String("stage", "todo", "Stage: todo, inProgress, done")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	if err := requireFlags(cmd, formatter, "title"); err != nil {
		return err
	}

	title, _ := cmd.Flags().GetString("title")
	stageFlag, _ := cmd.Flags().GetString("stage")

	stage, err := cli.ParseStage(stageFlag)
	if err != nil {
		return cli.UsageError(formatter, "INVALID_STAGE", err)
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	task, err := cliInstance.App.TaskService.AddTask(ctx, taskservice.AddTaskRequest{
		Title: title,
		Stage: stage,
	})
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	if task == nil {
		formatter.Printf("Nothing added: title is blank\n")
		if formatter.JSON {
			return formatter.Success(nil)
		}
		return nil
	}

	if formatter.JSON || formatter.Quiet {
		return formatter.Success(task)
	}

	formatter.Printf("✓ Task %d added to %s: %s\n", task.ID, task.Status.DisplayName(), task.Title)
	return nil
}
