package state

import "charm.land/lipgloss/v2"

// NotificationLevel represents the severity/type of a notification.
type NotificationLevel int

const (
	// LevelInfo represents informational notifications (bell icon)
	LevelInfo NotificationLevel = iota
	// LevelWarning represents warning notifications
	LevelWarning
	// LevelError represents error notifications
	LevelError
)

// Notification represents a single notification message with a severity
// level. Key is optional; keyed notifications can be replaced or removed
// in place, which is how the create-project toast moves through its
// loading/success lifecycle without stacking.
type Notification struct {
	Key     string
	Level   NotificationLevel
	Message string
}

// NotificationState manages notification display state.
type NotificationState struct {
	notifications []Notification
	windowWidth   int
	windowHeight  int
}

// NewNotificationState creates a new NotificationState with no notifications.
func NewNotificationState() *NotificationState {
	return &NotificationState{
		notifications: []Notification{},
	}
}

// Add appends an unkeyed notification.
func (s *NotificationState) Add(level NotificationLevel, message string) {
	s.notifications = append(s.notifications, Notification{
		Level:   level,
		Message: message,
	})
}

// Upsert replaces the notification with the given key in place, or appends
// it when absent. Position is preserved on replace so a success toast shows
// up exactly where its loading toast was.
func (s *NotificationState) Upsert(key string, level NotificationLevel, message string) {
	for i, n := range s.notifications {
		if n.Key == key && key != "" {
			s.notifications[i].Level = level
			s.notifications[i].Message = message
			return
		}
	}
	s.notifications = append(s.notifications, Notification{
		Key:     key,
		Level:   level,
		Message: message,
	})
}

// Remove deletes the notification with the given key, if present.
func (s *NotificationState) Remove(key string) {
	if key == "" {
		return
	}
	filtered := s.notifications[:0]
	for _, n := range s.notifications {
		if n.Key != key {
			filtered = append(filtered, n)
		}
	}
	s.notifications = filtered
}

// Get returns the notification with the given key.
func (s *NotificationState) Get(key string) (Notification, bool) {
	for _, n := range s.notifications {
		if n.Key == key && key != "" {
			return n, true
		}
	}
	return Notification{}, false
}

// Clear removes all notifications.
func (s *NotificationState) Clear() {
	s.notifications = []Notification{}
}

// All returns all current notifications.
func (s *NotificationState) All() []Notification {
	return s.notifications
}

// HasAny returns true if there are any notifications.
func (s *NotificationState) HasAny() bool {
	return len(s.notifications) > 0
}

// SetWindowSize updates the window dimensions for positioning calculations.
func (s *NotificationState) SetWindowSize(width, height int) {
	s.windowWidth = width
	s.windowHeight = height
}

// GetLayers creates floating layers for all active notifications, stacked
// vertically in the top-right corner of the screen.
func (s *NotificationState) GetLayers(renderFunc func(Notification) string) []*lipgloss.Layer {
	layers := []*lipgloss.Layer{}

	if s.windowWidth == 0 {
		return layers
	}

	row := 0
	for _, notification := range s.notifications {
		notificationView := renderFunc(notification)
		notifWidth := lipgloss.Width(notificationView)
		notifHeight := lipgloss.Height(notificationView)

		col := s.windowWidth - notifWidth - 1
		if col < 0 {
			col = 0
		}
		if row+notifHeight >= s.windowHeight {
			break
		}

		layers = append(layers,
			lipgloss.NewLayer(notificationView).X(col).Y(row))

		row += notifHeight + 1
	}

	return layers
}
