package board

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/tres/internal/cli"
)

const defaultWidth = 80

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Print the whole board",
		Long: `Print the board as Markdown, one section per stage.

Examples:
  # Styled for the terminal
  tres board

  # Raw Markdown, e.g. for a README or an issue
  tres board --plain > BOARD.md
`,
		RunE: runBoard,
	}

	cmd.Flags().Bool("plain", false, "Print raw Markdown without terminal styling")
	cmd.Flags().Int("width", defaultWidth, "Word wrap width for styled output")
	cmd.Flags().Bool("json", false, "Output in JSON format")

	return cmd
}

func runBoard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.NewFormatter(cmd)

	plain, _ := cmd.Flags().GetBool("plain")
	width, _ := cmd.Flags().GetInt("width")

	cliInstance, err := cli.GetCLIFromContext(cmd)
	if err != nil {
		return formatter.Fail(cli.ExitError, "INITIALIZATION_ERROR", err, "")
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			slog.Error("Error closing CLI", "error", err)
		}
	}()

	snap := cliInstance.App.TaskService.List(ctx)
	if formatter.JSON {
		return formatter.Success(snap)
	}

	md := Markdown(snap)
	if plain {
		fmt.Print(md)
		return nil
	}

	out, err := Render(md, width)
	if err != nil {
		// Unstyled output beats no output
		slog.Warn("falling back to plain board", "error", err)
		out = md
	}
	fmt.Print(out)
	return nil
}
