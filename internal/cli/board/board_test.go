package board

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	store "github.com/thenoetrevino/tres/internal/board"
	"github.com/thenoetrevino/tres/internal/models"
	"github.com/thenoetrevino/tres/internal/testutil"
	clitest "github.com/thenoetrevino/tres/internal/testutil/cli"
)

func TestMarkdown(t *testing.T) {
	snap := store.Snapshot{
		models.StageTodo: {
			{ID: 1, Title: "Write *docs*", Status: models.StageTodo},
			{ID: 2, Title: "Review", Status: models.StageTodo},
		},
		models.StageDone: {
			{ID: 3, Title: "Kickoff", Status: models.StageDone},
		},
	}

	md := Markdown(snap)

	assert.True(t, strings.HasPrefix(md, "# Board\n"))
	assert.Contains(t, md, "## Todo (2)")
	assert.Contains(t, md, "## In Progress (0)\n\n_No tasks_")
	assert.Contains(t, md, "## Done (1)")
	assert.Contains(t, md, "- `#1` Write \\*docs\\*")

	// Stages appear in board order, tasks in column order
	assert.Less(t, strings.Index(md, "## Todo"), strings.Index(md, "## In Progress"))
	assert.Less(t, strings.Index(md, "## In Progress"), strings.Index(md, "## Done"))
	assert.Less(t, strings.Index(md, "`#1`"), strings.Index(md, "`#2`"))
}

func TestMarkdown_EmptyBoard(t *testing.T) {
	md := Markdown(store.Snapshot{})
	assert.Equal(t, 3, strings.Count(md, "_No tasks_"))
}

func TestBoardCmd(t *testing.T) {
	app := clitest.SetupCLITest(t)
	clitest.CreateTestTask(t, app, models.StageInProgress, "Refactor")

	t.Run("Plain prints Markdown", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"--plain"})

		require.NoError(t, err)
		assert.Equal(t, Markdown(app.TaskService.List(t.Context())), output)
	})

	t.Run("Styled output keeps the content", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"--width", "60"})

		require.NoError(t, err)
		assert.Contains(t, output, "Refactor")
	})

	t.Run("JSON keys are stage names", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, app, BoardCmd(), []string{"--json"})

		require.NoError(t, err)
		data := testutil.ParseJSON(t, output)["data"].(map[string]interface{})
		inProgress := data["inProgress"].([]interface{})
		require.Len(t, inProgress, 1)
		assert.Equal(t, "Refactor", inProgress[0].(map[string]interface{})["title"])
	})
}
