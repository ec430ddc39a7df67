package models

import (
	"fmt"
	"strings"
)

// Stage is one of the three fixed lifecycle columns of the board.
// The zero value is not a valid stage.
type Stage int

const (
	StageTodo Stage = iota + 1
	StageInProgress
	StageDone
)

// stages lists every valid stage in board order
var stages = [...]Stage{StageTodo, StageInProgress, StageDone}

// Stages returns all valid stages in board order (left to right)
func Stages() []Stage {
	out := make([]Stage, len(stages))
	copy(out, stages[:])
	return out
}

// StageAt returns the stage at the given board position
func StageAt(i int) (Stage, bool) {
	if i < 0 || i >= len(stages) {
		return 0, false
	}
	return stages[i], true
}

// Valid reports whether s is one of the three board stages
func (s Stage) Valid() bool {
	return s >= StageTodo && s <= StageDone
}

// Index returns the board position of the stage, or -1 if invalid
func (s Stage) Index() int {
	if !s.Valid() {
		return -1
	}
	return int(s - StageTodo)
}

// Cycle returns the stage delta positions away, wrapping around the board.
func (s Stage) Cycle(delta int) Stage {
	if !s.Valid() {
		return StageTodo
	}
	n := len(stages)
	i := ((s.Index()+delta)%n + n) % n
	return stages[i]
}

// String returns the storage form of the stage: todo, inProgress or done
func (s Stage) String() string {
	switch s {
	case StageTodo:
		return "todo"
	case StageInProgress:
		return "inProgress"
	case StageDone:
		return "done"
	default:
		return fmt.Sprintf("Stage(%d)", int(s))
	}
}

// DisplayName returns the column heading for the stage
func (s Stage) DisplayName() string {
	switch s {
	case StageTodo:
		return "Todo"
	case StageInProgress:
		return "In Progress"
	case StageDone:
		return "Done"
	default:
		return "Unknown"
	}
}

// ParseStage converts user or storage text into a Stage.
// Accepts the storage names and the human column names, case-insensitively.
func ParseStage(s string) (Stage, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(normalized)

	switch normalized {
	case "todo":
		return StageTodo, nil
	case "inprogress":
		return StageInProgress, nil
	case "done":
		return StageDone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidStage, s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (s Stage) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStage, int(s))
	}
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *Stage) UnmarshalText(text []byte) error {
	parsed, err := ParseStage(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
