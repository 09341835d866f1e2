package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

// Severity drives how a notification is rendered and whether it is pushed.
type Severity string

const (
	SeverityAlert   Severity = "alert"
	SeverityWarning Severity = "warning"
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
)

// Pushable reports whether notifications of this severity are sent to devices.
func (s Severity) Pushable() bool {
	return s == SeverityAlert || s == SeverityWarning
}

// Notification is the unified, display-ready alert record.
type Notification struct {
	ID       uuid.UUID `json:"id"`
	Category string    `json:"category,omitempty"` // Empty for location level notifications.
	Severity Severity  `json:"severity"`
	Title    string    `json:"title"`
	Message  string    `json:"message"`
	Time     time.Time `json:"time"`
	Read     bool      `json:"read"`
	Location string    `json:"location,omitempty"` // Place name the alert was resolved for.
}

// SortNotifications orders notifications by Time, newest first. Equal times keep their input order.
func SortNotifications(notifications []*Notification) {
	slices.SortStableFunc(notifications, func(a, b *Notification) int {
		return b.Time.Compare(a.Time)
	})
}

// StoredNotification is a notification persisted for a subscription.
type StoredNotification struct {
	Notification
	SubscriptionID uuid.UUID `json:"subscription_id"`
	Pushed         bool      `json:"pushed"`
	CreatedAt      time.Time `json:"created_at"`
}
