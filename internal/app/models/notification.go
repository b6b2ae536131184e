package models

import "time"

// NotificationType is the severity/category of a notification
type NotificationType string

const (
	// NotificationTypeInfo is used for informational alerts
	NotificationTypeInfo NotificationType = "info"
	// NotificationTypeSuccess is used for positive outcomes
	NotificationTypeSuccess NotificationType = "success"
	// NotificationTypeWarning is used for negative outcomes
	NotificationTypeWarning NotificationType = "warning"
)

// Metadata keys used by the notification subsystem.
// SubtypeNewApplications participates in the coalescing key: at most one
// unread notification exists per (recipient, gig) pair for that subtype.
const (
	MetaKeyGigID   = "gig_id"
	MetaKeySubtype = "notification_type"
	MetaKeyCount   = "count"

	SubtypeNewApplications     = "new_applications"
	SubtypeApplicationAccepted = "application_accepted"
	SubtypeApplicationRejected = "application_rejected"
)

// Notification represents a pending alert to a single user
type Notification struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	UserType  UserRole               `json:"user_type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	Type      NotificationType       `json:"type"`
	Read      bool                   `json:"read"`
	Link      *string                `json:"link,omitempty"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"created_at"`
}
