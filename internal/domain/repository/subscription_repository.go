// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"agroalert/internal/domain/entity"
	"agroalert/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for subscription persistence.
var (
	// ErrSubscriptionNotFound is returned when a subscription is not found.
	ErrSubscriptionNotFound = errors.New("subscription not found")
)

// SubscriptionRepository defines the interface for alert subscription database operations.
type SubscriptionRepository interface {
	// UpsertSubscription creates a subscription or, when the FCM token is already
	// registered, updates its location and categories and reactivates it.
	UpsertSubscription(ctx context.Context, subscription *entity.AlertSubscription) error

	// FindSubscriptionByID retrieves a subscription by its unique ID.
	FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.AlertSubscription, error)

	// FindActiveSubscriptions retrieves active subscriptions ordered by creation time with pagination.
	FindActiveSubscriptions(ctx context.Context, limit, offset int) ([]*entity.AlertSubscription, error)

	// DeactivateSubscription marks a subscription inactive.
	DeactivateSubscription(ctx context.Context, id uuid.UUID) error

	// MarkScanned records the time of the last completed scan.
	MarkScanned(ctx context.Context, id uuid.UUID, scannedAt time.Time) error
}
