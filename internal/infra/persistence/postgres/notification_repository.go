package postgres

import (
	"context"

	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/repository"
	"agroalert/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const notificationBatchSize = 100

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

// BatchCreateNotifications persists the notifications of one scan in batches.
func (repo *notificationRepository) BatchCreateNotifications(ctx context.Context, notifications []*entity.StoredNotification) error {
	if len(notifications) == 0 {
		return nil
	}

	notificationModels := make([]*model.AlertNotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		if notification.ID == uuid.Nil {
			id, err := uuid.NewV7()
			if err != nil {
				return errors.Wrap(err, "failed to generate notification ID")
			}
			notification.ID = id
		}
		notificationModels = append(notificationModels, fromNotificationDomain(notification))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(notificationModels, notificationBatchSize).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrSubscriptionNotFound.WrapMessage("notifications reference an unknown subscription")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to batch create notifications")
	}

	for i, notificationM := range notificationModels {
		notifications[i].CreatedAt = notificationM.CreatedAt
	}

	return nil
}

// FindNotificationsBySubscription retrieves the notification history of a subscription, newest first.
func (repo *notificationRepository) FindNotificationsBySubscription(ctx context.Context, subscriptionID uuid.UUID, limit, offset int) ([]*entity.StoredNotification, error) {
	var notificationModels []*model.AlertNotificationModel

	if err := repo.db.WithContext(ctx).
		Where("subscription_id = ?", subscriptionID).
		Order("occurred_at DESC").
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&notificationModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find notifications by subscription")
	}

	notifications := make([]*entity.StoredNotification, 0, len(notificationModels))
	for _, notificationM := range notificationModels {
		notifications = append(notifications, toNotificationDomain(notificationM))
	}

	return notifications, nil
}

// MarkNotificationRead flags a notification of the subscription as read.
func (repo *notificationRepository) MarkNotificationRead(ctx context.Context, subscriptionID, notificationID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertNotificationModel{}).
		Where("id = ? AND subscription_id = ?", notificationID, subscriptionID).
		Update("is_read", true)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark notification read")
	}

	if result.RowsAffected == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toNotificationDomain converts a GORM AlertNotificationModel to a domain StoredNotification entity.
func toNotificationDomain(data *model.AlertNotificationModel) *entity.StoredNotification {
	if data == nil {
		return nil
	}

	return &entity.StoredNotification{
		Notification: entity.Notification{
			ID:       data.ID,
			Category: data.Category,
			Severity: entity.Severity(data.Severity),
			Title:    data.Title,
			Message:  data.Message,
			Time:     data.OccurredAt,
			Read:     data.IsRead,
			Location: data.Location,
		},
		SubscriptionID: data.SubscriptionID,
		Pushed:         data.Pushed,
		CreatedAt:      data.CreatedAt,
	}
}

// fromNotificationDomain converts a domain StoredNotification entity to a GORM AlertNotificationModel.
func fromNotificationDomain(data *entity.StoredNotification) *model.AlertNotificationModel {
	if data == nil {
		return nil
	}

	return &model.AlertNotificationModel{
		ID:             data.ID,
		SubscriptionID: data.SubscriptionID,
		Category:       data.Category,
		Severity:       string(data.Severity),
		Title:          data.Title,
		Message:        data.Message,
		Location:       data.Location,
		OccurredAt:     data.Time,
		IsRead:         data.Read,
		Pushed:         data.Pushed,
		CreatedAt:      data.CreatedAt,
	}
}
