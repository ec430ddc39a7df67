package task

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tres/internal/cli"
)

// ClearCmd returns the task clear subcommand
func ClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every task in a stage",
		Long: `Delete every task in one stage. The other stages are untouched.

Examples:
  tres task clear --stage=done
`,
		RunE: runClear,
	}

	cmd.Flags().String("stage", "", "Stage to clear: todo, inProgress, done (required)")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runClear(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	if err := requireFlags(cmd, formatter, "stage"); err != nil {
		return err
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

	removed, err := cliInstance.App.TaskService.ClearStage(ctx, stage)
	if err != nil {
		return cli.HandleServiceError(formatter, err)
	}

	if formatter.Quiet {
		return nil
	}
	if formatter.JSON {
		return formatter.Success(map[string]interface{}{
			"stage":   stage,
			"removed": removed,
		})
	}

	formatter.Printf("✓ Cleared %d task(s) from %s\n", removed, stage.DisplayName())
	return nil
}
