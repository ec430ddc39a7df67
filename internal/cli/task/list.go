package task

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tres/internal/cli"
	"github.com/thenoetrevino/tres/internal/models"
)

// stageListing is the JSON shape of one stage
type stageListing struct {
	Stage models.Stage  `json:"stage"`
	Tasks []models.Task `json:"tasks"`
}

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List tasks stage by stage in board order.

Examples:
  # Whole board
  tres task list

  # One stage, JSON for agents
  tres task list --stage=done --json
`,
		RunE: runList,
	}

	cmd.Flags().String("stage", "", "Only list this stage: todo, inProgress, done")

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	stageFlag, _ := cmd.Flags().GetString("stage")
	stages := models.Stages()
	if stageFlag != "" {
		stage, err := cli.ParseStage(stageFlag)
		if err != nil {
			return cli.UsageError(formatter, "INVALID_STAGE", err)
		}
		stages = []models.Stage{stage}
	}

	cliInstance, closeFn, err := openCLI(cmd, formatter)
	if err != nil {
		return err
	}
	defer closeFn()

	listings := make([]stageListing, 0, len(stages))
	for _, stage := range stages {
		tasks, err := cliInstance.App.TaskService.Tasks(ctx, stage)
		if err != nil {
			return cli.HandleServiceError(formatter, err)
		}
		if tasks == nil {
			tasks = []models.Task{}
		}
		listings = append(listings, stageListing{Stage: stage, Tasks: tasks})
	}

	if formatter.Quiet {
		// Just print IDs
		for _, l := range listings {
			for _, t := range l.Tasks {
				fmt.Printf("%d\n", t.ID)
			}
		}
		return nil
	}

	if formatter.JSON {
		return formatter.Success(listings)
	}

	for i, l := range listings {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("%s (%d)\n", l.Stage.DisplayName(), len(l.Tasks))
		if len(l.Tasks) == 0 {
			fmt.Println("  No tasks")
			continue
		}
		for _, t := range l.Tasks {
			fmt.Printf("  [%d] %s\n", t.ID, t.Title)
		}
	}

	return nil
}
