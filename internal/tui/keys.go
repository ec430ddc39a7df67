package tui

import (
	"charm.land/bubbles/v2/key"
	"github.com/thenoetrevino/tres/internal/config"
)

// keyMap binds the configured keys to board actions
type keyMap struct {
	Add       key.Binding
	Edit      key.Binding
	Delete    key.Binding
	MoveLeft  key.Binding
	MoveRight key.Binding
	PrevCol   key.Binding
	NextCol   key.Binding
	PrevTask  key.Binding
	NextTask  key.Binding
	Help      key.Binding
	Quit      key.Binding

	// Input rows
	Submit    key.Binding
	Cancel    key.Binding
	NextStage key.Binding
	PrevStage key.Binding
}

func newKeyMap(km config.KeyMappings) keyMap {
	return keyMap{
		Add:       key.NewBinding(key.WithKeys(km.AddTask), key.WithHelp(km.AddTask, "add task")),
		Edit:      key.NewBinding(key.WithKeys(km.EditTask), key.WithHelp(km.EditTask, "edit task")),
		Delete:    key.NewBinding(key.WithKeys(km.DeleteTask), key.WithHelp(km.DeleteTask, "delete task")),
		MoveLeft:  key.NewBinding(key.WithKeys(km.MoveTaskLeft), key.WithHelp(km.MoveTaskLeft, "move to previous stage")),
		MoveRight: key.NewBinding(key.WithKeys(km.MoveTaskRight), key.WithHelp(km.MoveTaskRight, "move to next stage")),
		PrevCol:   key.NewBinding(key.WithKeys(km.PrevColumn, "left"), key.WithHelp(km.PrevColumn+"/←", "previous column")),
		NextCol:   key.NewBinding(key.WithKeys(km.NextColumn, "right"), key.WithHelp(km.NextColumn+"/→", "next column")),
		PrevTask:  key.NewBinding(key.WithKeys(km.PrevTask, "up"), key.WithHelp(km.PrevTask+"/↑", "previous task")),
		NextTask:  key.NewBinding(key.WithKeys(km.NextTask, "down"), key.WithHelp(km.NextTask+"/↓", "next task")),
		Help:      key.NewBinding(key.WithKeys(km.ShowHelp), key.WithHelp(km.ShowHelp, "toggle help")),
		Quit:      key.NewBinding(key.WithKeys(km.Quit, "ctrl+c"), key.WithHelp(km.Quit, "quit")),

		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextStage: key.NewBinding(key.WithKeys(km.NextStage), key.WithHelp(km.NextStage, "next stage while editing")),
		PrevStage: key.NewBinding(key.WithKeys(km.PrevStage), key.WithHelp(km.PrevStage, "previous stage while editing")),
	}
}

// ShortHelp implements help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Edit, k.Delete, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevCol, k.NextCol, k.PrevTask, k.NextTask},
		{k.Add, k.Edit, k.Delete, k.MoveLeft, k.MoveRight},
		{k.Submit, k.Cancel, k.NextStage, k.PrevStage},
		{k.Help, k.Quit},
	}
}
