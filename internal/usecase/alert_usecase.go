package usecase

import (
	"context"

	"agroalert/internal/domain/entity"
	"agroalert/internal/domain/service"
)

// AggregateOutcome tells how an aggregation run ended.
type AggregateOutcome string

const (
	// OutcomeLocationDenied means no position was available; no lookups were made.
	OutcomeLocationDenied AggregateOutcome = "location_denied"
	// OutcomeLocationUnresolved means the position could not be turned into place names.
	OutcomeLocationUnresolved AggregateOutcome = "location_unresolved"
	// OutcomeMerged means every category was queried and the results merged.
	OutcomeMerged AggregateOutcome = "merged"
)

// AggregateRequest holds the inputs of one aggregation run.
type AggregateRequest struct {
	// Locator supplies the device position.
	Locator service.Locator

	// Categories restricts the run to these category names. Empty means all configured categories.
	Categories []string

	// Sink receives the merged list. Optional.
	Sink service.NotificationSink
}

// AlertFeed is the result of an aggregation run.
type AlertFeed struct {
	Outcome       AggregateOutcome       `json:"outcome"`
	Place         *entity.Place          `json:"place,omitempty"`
	Notifications []*entity.Notification `json:"notifications"`
}

// AlertUsecase defines the alert aggregation use cases
type AlertUsecase interface {
	// Aggregate runs locate, geocode and the concurrent category fetches, and returns
	// a non-empty notification list ordered newest first. It never fails.
	Aggregate(ctx context.Context, req *AggregateRequest) *AlertFeed

	// FetchCategory walks the place candidates in order and returns the first report found.
	FetchCategory(ctx context.Context, category entity.AlertCategory, candidates entity.PlaceCandidates) (*entity.AlertReport, error)

	// ResolvePlace reverse geocodes coordinates.
	ResolvePlace(ctx context.Context, coords entity.Coordinates) (*entity.Place, error)

	// Categories returns the configured alert categories.
	Categories() []entity.AlertCategory
}
