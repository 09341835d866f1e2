package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"agroalert/config"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/repository"
	mockRepo "agroalert/internal/mocks/repository"
	mockUC "agroalert/internal/mocks/usecase"
	"agroalert/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionTestFixture struct {
	service  usecase.SubscriptionUsecase
	subRepo  *mockRepo.MockSubscriptionRepository
	noteRepo *mockRepo.MockNotificationRepository
	alerts   *mockUC.MockAlertUsecase
}

func createTestSubscriptionService(t *testing.T) *subscriptionTestFixture {
	t.Helper()

	subRepo := mockRepo.NewMockSubscriptionRepository(t)
	noteRepo := mockRepo.NewMockNotificationRepository(t)
	alerts := mockUC.NewMockAlertUsecase(t)
	alerts.EXPECT().Categories().Return([]entity.AlertCategory{pestCategory, diseaseCategory}).Maybe()

	svc := NewSubscriptionService(SubscriptionServiceParams{
		SubscriptionRepo: subRepo,
		NotificationRepo: noteRepo,
		Alerts:           alerts,
		Config:           &config.Config{Alerts: &config.AlertsConfig{DefaultPageLimit: 20, MaxPageLimit: 50}},
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return &subscriptionTestFixture{service: svc, subRepo: subRepo, noteRepo: noteRepo, alerts: alerts}
}

func TestSubscriptionService_Subscribe_Success(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	id := uuid.New()

	fx.subRepo.EXPECT().
		UpsertSubscription(ctx, mock.AnythingOfType("*entity.AlertSubscription")).
		RunAndReturn(func(_ context.Context, sub *entity.AlertSubscription) error {
			sub.ID = id
			return nil
		})

	sub, err := fx.service.Subscribe(ctx, &usecase.SubscribeInput{
		FCMToken:   " device-token ",
		Platform:   "Android",
		Latitude:   colombo.Latitude,
		Longitude:  colombo.Longitude,
		Categories: []string{"Pest", "pest", " disease"},
	})

	require.NoError(t, err)
	assert.Equal(t, id, sub.ID)
	assert.Equal(t, "device-token", sub.FCMToken)
	assert.Equal(t, "android", sub.Platform)
	assert.Equal(t, []string{"pest", "disease"}, sub.Categories)
	assert.True(t, sub.IsActive)
}

func TestSubscriptionService_Subscribe_Validation(t *testing.T) {
	tests := []struct {
		name    string
		input   *usecase.SubscribeInput
		wantErr error
	}{
		{
			name:    "missing token",
			input:   &usecase.SubscribeInput{Platform: "ios"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unsupported platform",
			input:   &usecase.SubscribeInput{FCMToken: "tok", Platform: "web"},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "latitude out of range",
			input:   &usecase.SubscribeInput{FCMToken: "tok", Platform: "ios", Latitude: 95},
			wantErr: domainerrors.ErrValidationFailed,
		},
		{
			name:    "unknown category",
			input:   &usecase.SubscribeInput{FCMToken: "tok", Platform: "ios", Categories: []string{"weather"}},
			wantErr: domainerrors.ErrUnknownCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSubscriptionService(t)

			sub, err := fx.service.Subscribe(context.Background(), tt.input)

			assert.Nil(t, sub)
			assert.ErrorIs(t, err, tt.wantErr)
			fx.subRepo.AssertNotCalled(t, "UpsertSubscription", mock.Anything, mock.Anything)
		})
	}
}

func TestSubscriptionService_Subscribe_RepositoryError(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	fx.subRepo.EXPECT().UpsertSubscription(ctx, mock.Anything).Return(errors.New("db error"))

	sub, err := fx.service.Subscribe(ctx, &usecase.SubscribeInput{FCMToken: "tok", Platform: "ios"})

	assert.Error(t, err)
	assert.Nil(t, sub)
}

func TestSubscriptionService_Unsubscribe(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		id := uuid.New()
		fx.subRepo.EXPECT().DeactivateSubscription(mock.Anything, id).Return(nil)

		assert.NoError(t, fx.service.Unsubscribe(context.Background(), id))
	})

	t.Run("not found", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		id := uuid.New()
		fx.subRepo.EXPECT().DeactivateSubscription(mock.Anything, id).Return(repository.ErrSubscriptionNotFound)

		err := fx.service.Unsubscribe(context.Background(), id)

		assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
	})
}

func TestSubscriptionService_ListNotifications(t *testing.T) {
	tests := []struct {
		name       string
		limit      int
		offset     int
		wantLimit  int
		wantOffset int
	}{
		{name: "defaults", limit: 0, offset: -5, wantLimit: 20, wantOffset: 0},
		{name: "clamped to max", limit: 500, offset: 10, wantLimit: 50, wantOffset: 10},
		{name: "as requested", limit: 5, offset: 5, wantLimit: 5, wantOffset: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSubscriptionService(t)
			id := uuid.New()
			stored := []*entity.StoredNotification{{SubscriptionID: id}}

			fx.subRepo.EXPECT().FindSubscriptionByID(mock.Anything, id).Return(&entity.AlertSubscription{ID: id}, nil)
			fx.noteRepo.EXPECT().FindNotificationsBySubscription(mock.Anything, id, tt.wantLimit, tt.wantOffset).Return(stored, nil)

			got, err := fx.service.ListNotifications(context.Background(), id, tt.limit, tt.offset)

			require.NoError(t, err)
			assert.Equal(t, stored, got)
		})
	}

	t.Run("unknown subscription", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		id := uuid.New()
		fx.subRepo.EXPECT().FindSubscriptionByID(mock.Anything, id).Return(nil, repository.ErrSubscriptionNotFound)

		_, err := fx.service.ListNotifications(context.Background(), id, 10, 0)

		assert.ErrorIs(t, err, domainerrors.ErrSubscriptionNotFound)
	})
}

func TestSubscriptionService_MarkNotificationRead(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		subID, noteID := uuid.New(), uuid.New()
		fx.noteRepo.EXPECT().MarkNotificationRead(mock.Anything, subID, noteID).Return(nil)

		assert.NoError(t, fx.service.MarkNotificationRead(context.Background(), subID, noteID))
	})

	t.Run("belongs to another subscription", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		subID, noteID := uuid.New(), uuid.New()
		fx.noteRepo.EXPECT().MarkNotificationRead(mock.Anything, subID, noteID).Return(repository.ErrNotificationNotFound)

		err := fx.service.MarkNotificationRead(context.Background(), subID, noteID)

		assert.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
	})
}
