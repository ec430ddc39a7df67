package state

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/tres/internal/models"
)

// maxTitleLength caps what the inputs accept
const maxTitleLength = 200

// InputState manages the single-line title input shared by the add row and
// the inline edit row. Only one of them is active at a time.
type InputState struct {
	input textinput.Model

	// Stage is the column a new task will be added to
	Stage models.Stage
}

// NewInputState creates a new InputState with an empty, unfocused input.
func NewInputState() *InputState {
	ti := textinput.New()
	ti.CharLimit = maxTitleLength
	return &InputState{input: ti}
}

// Start clears the input, preloads value and focuses it.
func (s *InputState) Start(placeholder, value string) tea.Cmd {
	s.input.Reset()
	s.input.Placeholder = placeholder
	s.input.SetValue(value)
	s.input.CursorEnd()
	return s.input.Focus()
}

// Stop blurs and clears the input.
func (s *InputState) Stop() {
	s.input.Blur()
	s.input.Reset()
	s.Stage = 0
}

// Update forwards a message to the text input.
func (s *InputState) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return cmd
}

// Value returns the raw text typed so far.
func (s *InputState) Value() string {
	return s.input.Value()
}

// IsEmpty returns true if the input is empty or contains only whitespace.
func (s *InputState) IsEmpty() bool {
	return strings.TrimSpace(s.input.Value()) == ""
}

// View renders the input line.
func (s *InputState) View() string {
	return s.input.View()
}
