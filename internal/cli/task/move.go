package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tres/internal/cli"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move",
		Short: "Move a task to another stage",
		Long: `Move a task to the end of another stage, keeping its title.

Examples:
  tres task move --id=3 --stage=inProgress
  tres task move --id=3 --stage=done --json
`,
		RunE: runMove,
	}

	cmd.Flags().Int("id", 0, "Task ID (required)")
	cmd.Flags().String("stage", "", "Target stage: todo, inProgress, done (required)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runMove(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	if err := requireFlags(cmd, formatter, "id", "stage"); err != nil {
		return err
	}

	idFlag, _ := cmd.Flags().GetInt("id")
	taskID, err := cli.ParseTaskID(idFlag)
	if err != nil {
		return cli.UsageError(formatter, "INVALID_TASK_ID", err)
	}

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

	task, err := cliInstance.App.TaskService.MoveTask(ctx, taskID, stage)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	return reportSaved(formatter, task, "moved to "+stage.DisplayName())
}
