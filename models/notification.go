package models

import "time"

// NotificationType classifies a toast notification and selects its visual
// treatment in the client.
type NotificationType string

const (
	NotificationSuccess NotificationType = "success"
	NotificationInfo    NotificationType = "info"
	NotificationWarning NotificationType = "warning"
	NotificationError   NotificationType = "error"
)

// Notification is a single ephemeral toast message. Notifications are
// exclusively owned by the notification queue: callers hand in a partially
// filled value and receive back the assigned ID.
type Notification struct {
	// ID is the queue-assigned unique identifier.
	ID string `json:"id"`

	// Type classifies the notification (success/info/warning/error).
	Type NotificationType `json:"type"`

	// Title is the short headline shown in the toast.
	Title string `json:"title"`

	// Message is an optional longer body text.
	Message string `json:"message,omitempty"`

	// Duration is how long the notification stays in the queue before it
	// removes itself. Zero (or negative) means the notification persists
	// until explicitly removed.
	Duration time.Duration `json:"duration"`
}
