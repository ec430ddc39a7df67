package board

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/glamour"
	store "github.com/thenoetrevino/tres/internal/board"
	"github.com/thenoetrevino/tres/internal/models"
)

// Cache Glamour renderers by width to avoid expensive re-creation
var rendererCache sync.Map // map[int]*glamour.TermRenderer

// Markdown renders the board as one section per stage in board order
func Markdown(snap store.Snapshot) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Board\n\n")

	for _, stage := range models.Stages() {
		column := snap.Tasks(stage)
		fmt.Fprintf(&b, "## %s (%d)\n\n", stage.DisplayName(), len(column))
		if len(column) == 0 {
			b.WriteString("_No tasks_\n\n")
			continue
		}
		for _, task := range column {
			fmt.Fprintf(&b, "- `#%d` %s\n", task.ID, escape(task.Title))
		}
		b.WriteString("\n")
	}

	return b.String()
}

// escape keeps titles from being read as Markdown markup
func escape(s string) string {
	return markdownEscaper.Replace(s)
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
)

// getRenderer returns a cached renderer for the given width
func getRenderer(width int) (*glamour.TermRenderer, error) {
	if cached, ok := rendererCache.Load(width); ok {
		return cached.(*glamour.TermRenderer), nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}

	rendererCache.Store(width, renderer)
	return renderer, nil
}

// Render styles Markdown for the terminal
func Render(md string, width int) (string, error) {
	renderer, err := getRenderer(width)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	out, err := renderer.Render(md)
	if err != nil {
		return "", fmt.Errorf("failed to render board: %w", err)
	}
	return out, nil
}
