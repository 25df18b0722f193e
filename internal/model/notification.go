package model

import "time"

// NotificationType classifies a notification for presentation.
type NotificationType string

const (
	NotificationReminder NotificationType = "reminder"
	NotificationInfo     NotificationType = "info"
	NotificationSuccess  NotificationType = "success"
	NotificationError    NotificationType = "error"
)

// ParseNotificationType validates user-supplied notification types.
func ParseNotificationType(raw string) (NotificationType, bool) {
	switch NotificationType(raw) {
	case NotificationReminder, NotificationInfo, NotificationSuccess, NotificationError:
		return NotificationType(raw), true
	default:
		return "", false
	}
}

// Notification is a transient, dismissible event surfaced to the user.
// SourceTaskID and CreatedAt together let the reminder scanner suppress
// duplicate alerts without parsing identifiers.
type Notification struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Message      string           `json:"message"`
	Type         NotificationType `json:"type"`
	Visible      bool             `json:"visible"`
	SourceTaskID *uint            `json:"sourceTaskId,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
}
