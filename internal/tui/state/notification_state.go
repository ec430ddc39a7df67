package state

// NotificationLevel represents the severity of a status line message.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications
	LevelInfo NotificationLevel = iota
	// LevelError represents failures the user should see
	LevelError
)

// Notification represents a single status line message.
type Notification struct {
	Level   NotificationLevel
	Message string
}

// NotificationState holds the message shown on the status line.
// A new message replaces the previous one.
type NotificationState struct {
	current *Notification
}

// NewNotificationState creates a new NotificationState with no message.
func NewNotificationState() *NotificationState {
	return &NotificationState{}
}

// Add shows message at level.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.current = &Notification{Level: level, Message: message}
}

// Clear removes the current message.
func (s *NotificationState) Clear() {
	s.current = nil
}

// Current returns the message on the status line, if any.
func (s *NotificationState) Current() (Notification, bool) {
	if s.current == nil {
		return Notification{}, false
	}
	return *s.current, true
}

// HasError reports whether the status line shows an error.
func (s *NotificationState) HasError() bool {
	return s.current != nil && s.current.Level == LevelError
}
