package service

import (
	"context"

	"agroalert/internal/errors"
)

// ErrInvalidDeviceToken is returned when the push provider rejects the device token permanently.
var ErrInvalidDeviceToken = errors.New("invalid or unregistered device token")

// NotificationService defines the interface for push notification services
type NotificationService interface {
	// SendSingleNotification sends a push notification to a single device token.
	// A rejected token is reported with an error wrapping ErrInvalidDeviceToken.
	SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error
}
