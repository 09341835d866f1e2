package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertSubscriptionModel is the GORM-specific struct for the 'alert_subscriptions' table.
// One row per device token; re-subscribing updates the row in place.
type AlertSubscriptionModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	FCMToken      string    `gorm:"column:fcm_token;type:text;not null;uniqueIndex"`
	Platform      string    `gorm:"type:text;not null"`
	Latitude      float64   `gorm:"type:decimal(10,8);not null"`
	Longitude     float64   `gorm:"type:decimal(11,8);not null"`
	Categories    []string  `gorm:"type:jsonb;serializer:json;not null;default:'[]'"`
	IsActive      bool      `gorm:"not null;default:true;index"`
	LastScannedAt *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AlertSubscriptionModel) TableName() string {
	return "alert_subscriptions"
}
