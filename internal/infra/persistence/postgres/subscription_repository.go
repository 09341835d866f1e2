// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"time"

	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/repository"
	"agroalert/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// UpsertSubscription inserts the subscription or refreshes the row registered for the same FCM token.
func (repo *subscriptionRepository) UpsertSubscription(ctx context.Context, subscription *entity.AlertSubscription) error {
	subscriptionM := fromSubscriptionDomain(subscription)
	subscriptionM.IsActive = true
	if subscriptionM.ID == uuid.Nil {
		id, err := uuid.NewV7()
		if err != nil {
			return errors.Wrap(err, "failed to generate subscription ID")
		}
		subscriptionM.ID = id
	}

	if err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "fcm_token"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"platform", "latitude", "longitude", "categories", "is_active", "updated_at",
			}),
		}).
		Create(subscriptionM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required subscription information")
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("subscription violates a table constraint")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert subscription")
	}

	// Reload so the caller sees the persisted identity and timestamps of an existing row.
	// The read is pinned to the primary; a replica may not have the row yet.
	var stored model.AlertSubscriptionModel
	if err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Where("fcm_token = ?", subscriptionM.FCMToken).
		First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload subscription")
	}

	*subscription = *toSubscriptionDomain(&stored)

	return nil
}

// FindSubscriptionByID retrieves a subscription by its unique ID.
func (repo *subscriptionRepository) FindSubscriptionByID(ctx context.Context, id uuid.UUID) (*entity.AlertSubscription, error) {
	var subscriptionM model.AlertSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find subscription by ID")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// FindActiveSubscriptions retrieves a page of active subscriptions, oldest first.
func (repo *subscriptionRepository) FindActiveSubscriptions(ctx context.Context, limit, offset int) ([]*entity.AlertSubscription, error) {
	var subscriptionModels []*model.AlertSubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at ASC").
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&subscriptionModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find active subscriptions")
	}

	subscriptions := make([]*entity.AlertSubscription, 0, len(subscriptionModels))
	for _, subscriptionM := range subscriptionModels {
		subscriptions = append(subscriptions, toSubscriptionDomain(subscriptionM))
	}

	return subscriptions, nil
}

// DeactivateSubscription marks a subscription inactive.
func (repo *subscriptionRepository) DeactivateSubscription(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertSubscriptionModel{}).
		Where("id = ?", id).
		Update("is_active", false)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to deactivate subscription")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// MarkScanned records when the subscription was last scanned.
func (repo *subscriptionRepository) MarkScanned(ctx context.Context, id uuid.UUID, scannedAt time.Time) error {
	result := repo.db.WithContext(ctx).
		Model(&model.AlertSubscriptionModel{}).
		Where("id = ?", id).
		Update("last_scanned_at", scannedAt)

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to mark subscription scanned")
	}

	if result.RowsAffected == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM AlertSubscriptionModel to a domain AlertSubscription entity.
func toSubscriptionDomain(data *model.AlertSubscriptionModel) *entity.AlertSubscription {
	if data == nil {
		return nil
	}

	categories := data.Categories
	if categories == nil {
		categories = []string{}
	}

	return &entity.AlertSubscription{
		ID:            data.ID,
		FCMToken:      data.FCMToken,
		Platform:      data.Platform,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Categories:    categories,
		IsActive:      data.IsActive,
		LastScannedAt: data.LastScannedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain AlertSubscription entity to a GORM AlertSubscriptionModel.
func fromSubscriptionDomain(data *entity.AlertSubscription) *model.AlertSubscriptionModel {
	if data == nil {
		return nil
	}

	categories := data.Categories
	if categories == nil {
		categories = []string{}
	}

	return &model.AlertSubscriptionModel{
		ID:            data.ID,
		FCMToken:      data.FCMToken,
		Platform:      data.Platform,
		Latitude:      data.Latitude,
		Longitude:     data.Longitude,
		Categories:    categories,
		IsActive:      data.IsActive,
		LastScannedAt: data.LastScannedAt,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}
