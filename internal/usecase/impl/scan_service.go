package impl

import (
	"context"
	"log/slog"
	"time"

	"agroalert/config"
	deliverycontext "agroalert/internal/delivery/context"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/repository"
	"agroalert/internal/domain/service"
	"agroalert/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultScanBatchSize = 100

type scanService struct {
	subscriptionRepo repository.SubscriptionRepository
	txManager        repository.TransactionManager
	publisher        service.EventPublisher
	notifier         service.NotificationService
	alerts           usecase.AlertUsecase
	batchSize        int
	logger           *slog.Logger
	now              func() time.Time
}

// ScanServiceParams holds dependencies for ScanService, injected by Fx.
type ScanServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	TxManager        repository.TransactionManager
	Publisher        service.EventPublisher      `optional:"true"`
	Notifier         service.NotificationService `optional:"true"`
	Alerts           usecase.AlertUsecase
	Config           *config.Config
	Logger           *slog.Logger
}

// NewScanService creates a new scan service instance
func NewScanService(params ScanServiceParams) usecase.ScanUsecase {
	batchSize := defaultScanBatchSize
	if params.Config != nil && params.Config.Scan != nil && params.Config.Scan.BatchSize > 0 {
		batchSize = params.Config.Scan.BatchSize
	}

	return &scanService{
		subscriptionRepo: params.SubscriptionRepo,
		txManager:        params.TxManager,
		publisher:        params.Publisher,
		notifier:         params.Notifier,
		alerts:           params.Alerts,
		batchSize:        batchSize,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *scanService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ScanSubscriptions pages through active subscriptions and publishes one scan event for each.
// A failed publish is counted and the scan carries on.
func (s *scanService) ScanSubscriptions(ctx context.Context) (*usecase.ScanResult, error) {
	if s.publisher == nil {
		return nil, domainerrors.ErrInternalError.WrapMessage("event publisher not configured")
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}

	result := &usecase.ScanResult{}
	for offset := 0; ; offset += s.batchSize {
		subscriptions, err := s.subscriptionRepo.FindActiveSubscriptions(ctx, s.batchSize, offset)
		if err != nil {
			return result, errors.Wrap(err, "failed to load active subscriptions")
		}

		for _, sub := range subscriptions {
			event := &service.ScanEvent{
				RequestID:      requestID,
				SubscriptionID: sub.ID.String(),
				Latitude:       sub.Latitude,
				Longitude:      sub.Longitude,
				Categories:     sub.Categories,
			}
			if err := s.publisher.PublishScanEvent(ctx, event); err != nil {
				result.Failed++
				s.log(ctx).Error("Failed to publish scan event",
					slog.Any("error", err),
					slog.String("subscription_id", event.SubscriptionID),
				)

				continue
			}
			result.Published++
		}

		if len(subscriptions) < s.batchSize {
			break
		}
	}

	s.log(ctx).Info("Scan events published",
		slog.Int("published", result.Published),
		slog.Int("failed", result.Failed),
	)

	return result, nil
}

// ProcessScanEvent aggregates alerts for one subscription, pushes the actionable ones
// to the device and stores the full list.
func (s *scanService) ProcessScanEvent(ctx context.Context, event *service.ScanEvent) (*usecase.DispatchResult, error) {
	if event == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("scan event is required")
	}

	subscriptionID, err := uuid.Parse(event.SubscriptionID)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid subscription_id")
	}

	log := s.log(ctx).With(slog.String("subscription_id", subscriptionID.String()))

	sub, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			log.Info("Subscription no longer exists, skipping scan")

			return &usecase.DispatchResult{Skipped: true}, nil
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}
	if !sub.IsActive {
		log.Info("Subscription inactive, skipping scan")

		return &usecase.DispatchResult{Skipped: true}, nil
	}

	categories := event.Categories
	if len(categories) == 0 {
		categories = sub.Categories
	}

	var sink *deviceSink
	req := &usecase.AggregateRequest{
		Locator:    subscriptionLocator{subscription: sub},
		Categories: categories,
	}
	if s.notifier != nil {
		sink = newDeviceSink(sub, s.notifier)
		req.Sink = sink
	}

	feed := s.alerts.Aggregate(ctx, req)

	stored := make([]*entity.StoredNotification, 0, len(feed.Notifications))
	for _, n := range feed.Notifications {
		stored = append(stored, &entity.StoredNotification{
			Notification:   *n,
			SubscriptionID: sub.ID,
			Pushed:         sink.wasPushed(n.ID),
		})
	}

	result := &usecase.DispatchResult{
		Stored:       len(stored),
		Pushed:       sink.pushedCount(),
		TokenInvalid: sink.isTokenInvalid(),
	}
	scannedAt := s.now()

	if err := s.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewNotificationRepository().BatchCreateNotifications(ctx, stored); err != nil {
			return errors.Wrap(err, "failed to store notifications")
		}

		subscriptionRepo := repoFactory.NewSubscriptionRepository()
		if err := subscriptionRepo.MarkScanned(ctx, sub.ID, scannedAt); err != nil {
			return errors.Wrap(err, "failed to mark subscription scanned")
		}
		if result.TokenInvalid {
			if err := subscriptionRepo.DeactivateSubscription(ctx, sub.ID); err != nil {
				return errors.Wrap(err, "failed to deactivate subscription")
			}
		}

		return nil
	}); err != nil {
		return nil, err
	}

	log.Info("Scan processed",
		slog.String("outcome", string(feed.Outcome)),
		slog.Int("stored", result.Stored),
		slog.Int("pushed", result.Pushed),
		slog.Bool("token_invalid", result.TokenInvalid),
	)

	return result, nil
}

// subscriptionLocator locates a subscription at its registered coordinates.
type subscriptionLocator struct {
	subscription *entity.AlertSubscription
}

func (l subscriptionLocator) Locate(ctx context.Context) (entity.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return entity.Coordinates{}, err
	}

	coords := l.subscription.Coordinates()
	if err := coords.Validate(); err != nil {
		return entity.Coordinates{}, domainerrors.ErrLocationPermissionDenied.WrapMessage(err.Error())
	}

	return coords, nil
}

// deviceSink pushes alert and warning notifications to one device.
// Aggregate calls Deliver once and synchronously, so no locking is needed.
type deviceSink struct {
	subscription *entity.AlertSubscription
	notifier     service.NotificationService
	pushed       map[uuid.UUID]struct{}
	tokenInvalid bool
}

func newDeviceSink(sub *entity.AlertSubscription, notifier service.NotificationService) *deviceSink {
	return &deviceSink{
		subscription: sub,
		notifier:     notifier,
		pushed:       make(map[uuid.UUID]struct{}),
	}
}

// Deliver stops at the first rejected token; other send failures are collected.
func (d *deviceSink) Deliver(ctx context.Context, notifications []*entity.Notification) error {
	var errs []error
	for _, n := range notifications {
		if !n.Severity.Pushable() {
			continue
		}

		data := map[string]string{
			"notification_id": n.ID.String(),
			"subscription_id": d.subscription.ID.String(),
			"category":        n.Category,
			"severity":        string(n.Severity),
			"location":        n.Location,
		}
		if err := d.notifier.SendSingleNotification(ctx, d.subscription.FCMToken, n.Title, n.Message, data); err != nil {
			if errors.Is(err, service.ErrInvalidDeviceToken) {
				d.tokenInvalid = true

				return err
			}
			errs = append(errs, err)

			continue
		}
		d.pushed[n.ID] = struct{}{}
	}

	if len(errs) > 0 {
		return errors.Wrapf(errs[0], "%d of the pushes failed", len(errs))
	}

	return nil
}

func (d *deviceSink) wasPushed(id uuid.UUID) bool {
	if d == nil {
		return false
	}
	_, ok := d.pushed[id]

	return ok
}

func (d *deviceSink) pushedCount() int {
	if d == nil {
		return 0
	}

	return len(d.pushed)
}

func (d *deviceSink) isTokenInvalid() bool {
	return d != nil && d.tokenInvalid
}
