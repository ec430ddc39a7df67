package types

// ID type aliases provide semantic meaning and reduce repetitive int conversions.

// TaskID identifies a unique task on the board
type TaskID int

// ToInt converts the ID back to a plain int
func (id TaskID) ToInt() int {
	return int(id)
}

// TaskIDFromInt creates a TaskID from an int value
func TaskIDFromInt(i int) TaskID {
	return TaskID(i)
}
