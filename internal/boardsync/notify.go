package boardsync

import (
	"time"

	"github.com/google/uuid"
)

// NotificationKind classifies a Notification.
type NotificationKind string

const (
	NotifyTransitionFailed NotificationKind = "transition_failed"
	NotifyBadgeFailed      NotificationKind = "badge_failed"
	NotifyReloadFailed     NotificationKind = "reload_failed"
)

// Notification is a transient, dismissible failure notice for the operator.
type Notification struct {
	Kind    NotificationKind
	PlanID  uuid.UUID
	Message string
	Err     error
	At      time.Time
}
