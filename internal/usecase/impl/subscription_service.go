package impl

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"agroalert/config"
	deliverycontext "agroalert/internal/delivery/context"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/repository"
	"agroalert/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	defaultNotificationPageLimit = 20
	maxNotificationPageLimit     = 100
)

var supportedPlatforms = []string{"ios", "android"}

type subscriptionService struct {
	subscriptionRepo repository.SubscriptionRepository
	notificationRepo repository.NotificationRepository
	alerts           usecase.AlertUsecase
	defaultLimit     int
	maxLimit         int
	logger           *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubscriptionRepo repository.SubscriptionRepository
	NotificationRepo repository.NotificationRepository
	Alerts           usecase.AlertUsecase
	Config           *config.Config
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service instance
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	svc := &subscriptionService{
		subscriptionRepo: params.SubscriptionRepo,
		notificationRepo: params.NotificationRepo,
		alerts:           params.Alerts,
		defaultLimit:     defaultNotificationPageLimit,
		maxLimit:         maxNotificationPageLimit,
		logger:           params.Logger,
	}
	if params.Config != nil && params.Config.Alerts != nil {
		if params.Config.Alerts.DefaultPageLimit > 0 {
			svc.defaultLimit = params.Config.Alerts.DefaultPageLimit
		}
		if params.Config.Alerts.MaxPageLimit > 0 {
			svc.maxLimit = params.Config.Alerts.MaxPageLimit
		}
	}

	return svc
}

func (s *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Subscribe registers a device for scheduled scans, or refreshes the registration of the same token
func (s *subscriptionService) Subscribe(ctx context.Context, input *usecase.SubscribeInput) (*entity.AlertSubscription, error) {
	if input == nil || strings.TrimSpace(input.FCMToken) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("fcm token is required")
	}

	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	if !isSupportedPlatform(platform) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("platform must be ios or android")
	}

	coords, err := entity.NewCoordinates(input.Latitude, input.Longitude)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	categories, err := s.normalizeCategories(input.Categories)
	if err != nil {
		return nil, err
	}

	subscription := &entity.AlertSubscription{
		FCMToken:   strings.TrimSpace(input.FCMToken),
		Platform:   platform,
		Latitude:   coords.Latitude,
		Longitude:  coords.Longitude,
		Categories: categories,
		IsActive:   true,
	}

	if err := s.subscriptionRepo.UpsertSubscription(ctx, subscription); err != nil {
		return nil, errors.Wrap(err, "failed to upsert subscription")
	}

	s.log(ctx).Info("Alert subscription saved",
		slog.String("subscription_id", subscription.ID.String()),
		slog.String("platform", subscription.Platform),
		slog.Any("categories", subscription.Categories),
	)

	return subscription, nil
}

// Unsubscribe deactivates a subscription
func (s *subscriptionService) Unsubscribe(ctx context.Context, subscriptionID uuid.UUID) error {
	if err := s.subscriptionRepo.DeactivateSubscription(ctx, subscriptionID); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return domainerrors.ErrSubscriptionNotFound
		}

		return errors.Wrap(err, "failed to deactivate subscription")
	}

	s.log(ctx).Info("Alert subscription deactivated", slog.String("subscription_id", subscriptionID.String()))

	return nil
}

// ListNotifications returns the stored notifications of a subscription, newest first
func (s *subscriptionService) ListNotifications(ctx context.Context, subscriptionID uuid.UUID, limit, offset int) ([]*entity.StoredNotification, error) {
	if _, err := s.subscriptionRepo.FindSubscriptionByID(ctx, subscriptionID); err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return nil, domainerrors.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription")
	}

	if limit <= 0 {
		limit = s.defaultLimit
	}
	limit = min(limit, s.maxLimit)
	offset = max(offset, 0)

	notifications, err := s.notificationRepo.FindNotificationsBySubscription(ctx, subscriptionID, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find notifications")
	}

	return notifications, nil
}

// MarkNotificationRead flags a notification of the subscription as read
func (s *subscriptionService) MarkNotificationRead(ctx context.Context, subscriptionID, notificationID uuid.UUID) error {
	if err := s.notificationRepo.MarkNotificationRead(ctx, subscriptionID, notificationID); err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return domainerrors.ErrNotificationNotFound
		}

		return errors.Wrap(err, "failed to mark notification read")
	}

	return nil
}

// normalizeCategories lower-cases, de-duplicates and checks names against the configured categories.
func (s *subscriptionService) normalizeCategories(names []string) ([]string, error) {
	known := make(map[string]struct{})
	for _, category := range s.alerts.Categories() {
		known[strings.ToLower(category.Name)] = struct{}{}
	}

	categories := make([]string, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if name == "" {
			continue
		}
		if _, ok := known[name]; !ok {
			return nil, domainerrors.ErrUnknownCategory.WrapMessage(name)
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		categories = append(categories, name)
	}

	return categories, nil
}

func isSupportedPlatform(platform string) bool {
	return slices.Contains(supportedPlatforms, platform)
}
