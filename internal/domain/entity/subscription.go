package entity

import (
	"time"

	"github.com/google/uuid"
)

// AlertSubscription represents a device that receives alerts for a fixed location.
type AlertSubscription struct {
	ID            uuid.UUID  `json:"id"`              // The Global Unique Identifier (GUID) for the subscription.
	FCMToken      string     `json:"-"`               // Firebase Cloud Messaging token of the device.
	Platform      string     `json:"platform"`        // Device platform (ios, android).
	Latitude      float64    `json:"latitude"`        // Latitude of the watched location.
	Longitude     float64    `json:"longitude"`       // Longitude of the watched location.
	Categories    []string   `json:"categories"`      // Alert category names; empty means all configured.
	IsActive      bool       `json:"is_active"`       // Inactive subscriptions are skipped by scans.
	LastScannedAt *time.Time `json:"last_scanned_at"` // Timestamp of the last completed scan.
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Coordinates returns the watched location.
func (s *AlertSubscription) Coordinates() Coordinates {
	return Coordinates{Latitude: s.Latitude, Longitude: s.Longitude}
}
