package state

import (
	"github.com/thenoetrevino/tres/internal/board"
	"github.com/thenoetrevino/tres/internal/types"
)

// EditState holds the one edit session the TUI may have open.
// The title lives in InputState while typing and is copied in on save.
type EditState struct {
	session *board.EditSession
}

// NewEditState creates an EditState with no open session.
func NewEditState() *EditState {
	return &EditState{}
}

// Begin replaces any open session with sess.
func (s *EditState) Begin(sess board.EditSession) {
	s.session = &sess
}

// Active reports whether a session is open.
func (s *EditState) Active() bool {
	return s.session != nil
}

// Session returns the open session, or nil.
func (s *EditState) Session() *board.EditSession {
	return s.session
}

// IsEditing reports whether id is the task being edited.
func (s *EditState) IsEditing(id types.TaskID) bool {
	return s.session != nil && s.session.TaskID == id
}

// CycleStage moves the edit target stage by delta.
func (s *EditState) CycleStage(delta int) {
	if s.session != nil {
		s.session.CycleStage(delta)
	}
}

// End closes the session.
func (s *EditState) End() {
	s.session = nil
}
