package repository

import (
	"context"

	"agroalert/internal/domain/entity"
	"agroalert/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found for the subscription.
	ErrNotificationNotFound = errors.New("notification not found")
)

// NotificationRepository defines the interface for notification history operations.
type NotificationRepository interface {
	// BatchCreateNotifications persists notifications produced for a subscription.
	BatchCreateNotifications(ctx context.Context, notifications []*entity.StoredNotification) error

	// FindNotificationsBySubscription retrieves notifications newest first with pagination.
	FindNotificationsBySubscription(ctx context.Context, subscriptionID uuid.UUID, limit, offset int) ([]*entity.StoredNotification, error)

	// MarkNotificationRead flags a notification of the subscription as read.
	MarkNotificationRead(ctx context.Context, subscriptionID, notificationID uuid.UUID) error
}
