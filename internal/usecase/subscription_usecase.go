package usecase

import (
	"context"

	"agroalert/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscribeInput represents a device registering for scheduled alert scans
type SubscribeInput struct {
	FCMToken   string
	Platform   string
	Latitude   float64
	Longitude  float64
	Categories []string
}

// SubscriptionUsecase defines the interface for alert subscription use cases
type SubscriptionUsecase interface {
	// Subscribe creates a subscription or updates the one registered for the same device token
	Subscribe(ctx context.Context, input *SubscribeInput) (*entity.AlertSubscription, error)

	// Unsubscribe deactivates a subscription (soft delete)
	Unsubscribe(ctx context.Context, subscriptionID uuid.UUID) error

	// ListNotifications retrieves the stored notifications of a subscription with pagination
	ListNotifications(ctx context.Context, subscriptionID uuid.UUID, limit, offset int) ([]*entity.StoredNotification, error)

	// MarkNotificationRead flags a stored notification as read
	MarkNotificationRead(ctx context.Context, subscriptionID, notificationID uuid.UUID) error
}
