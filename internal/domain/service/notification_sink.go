package service

import (
	"context"

	"agroalert/internal/domain/entity"
)

// NotificationSink receives the merged notifications of an aggregation run.
type NotificationSink interface {
	Deliver(ctx context.Context, notifications []*entity.Notification) error
}
