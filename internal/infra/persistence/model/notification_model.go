package model

import (
	"time"

	"github.com/google/uuid"
)

// AlertNotificationModel is the GORM-specific struct for the 'alert_notifications' table.
// It keeps the notification history produced by scans of a subscription.
type AlertNotificationModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	SubscriptionID uuid.UUID `gorm:"type:uuid;not null;index:idx_alert_notifications_subscription_time,priority:1"`
	Category       string    `gorm:"type:text"`
	Severity       string    `gorm:"type:text;not null"`
	Title          string    `gorm:"type:text;not null"`
	Message        string    `gorm:"type:text;not null"`
	Location       string    `gorm:"type:text"`
	OccurredAt     time.Time `gorm:"not null;index:idx_alert_notifications_subscription_time,priority:2,sort:desc"`
	IsRead         bool      `gorm:"not null;default:false"`
	Pushed         bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time

	Subscription *AlertSubscriptionModel `gorm:"foreignKey:SubscriptionID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AlertNotificationModel) TableName() string {
	return "alert_notifications"
}
