package entity

import (
	"strings"
	"time"
)

// AlertCategory is a class of farm threat served by its own remote endpoint.
type AlertCategory struct {
	Name      string `json:"name"`       // Machine name, e.g. "pest".
	Label     string `json:"label"`      // Display name, e.g. "Pest".
	Path      string `json:"path"`       // Resource prefix, e.g. "/api/pest-alerts".
	ThreatKey string `json:"threat_key"` // Wire key holding threat names, e.g. "pestName".
	Emoji     string `json:"emoji,omitempty"`
	Color     string `json:"color,omitempty"`
}

// AlertLevel is the severity reported by an alert endpoint.
type AlertLevel string

const (
	AlertLevelLow     AlertLevel = "LOW"
	AlertLevelMedium  AlertLevel = "MEDIUM"
	AlertLevelHigh    AlertLevel = "HIGH"
	AlertLevelUnknown AlertLevel = "UNKNOWN"
)

// ParseAlertLevel parses a level case-insensitively. Unrecognized values map to AlertLevelUnknown.
func ParseAlertLevel(s string) AlertLevel {
	switch AlertLevel(strings.ToUpper(strings.TrimSpace(s))) {
	case AlertLevelLow:
		return AlertLevelLow
	case AlertLevelMedium:
		return AlertLevelMedium
	case AlertLevelHigh:
		return AlertLevelHigh
	default:
		return AlertLevelUnknown
	}
}

// Threat is one entry of the top threats ranking.
type Threat struct {
	Name        string  `json:"name"`
	Percentage  float64 `json:"percentage"`
	Occurrences int     `json:"occurrences,omitempty"`
}

// Infestation is a recent detection reported for an area.
type Infestation struct {
	Name       string    `json:"name"`
	DetectedAt time.Time `json:"detected_at"`
	Location   string    `json:"location,omitempty"`
}

// AlertReport is the normalized result of one successful category lookup.
// It is projected into notifications and then discarded.
type AlertReport struct {
	Category           AlertCategory `json:"category"`
	Place              string        `json:"place"` // The candidate that produced this report.
	AlertLevel         AlertLevel    `json:"alert_level"`
	AffectedFarmers    int           `json:"affected_farmers"`
	TotalFarmers       int           `json:"total_farmers"` // Farmers registered in the area.
	TotalInfestations  int           `json:"total_infestations"`
	TopThreats         []Threat      `json:"top_threats"`
	RecentInfestations []Infestation `json:"recent_infestations"`
	Timestamp          time.Time     `json:"timestamp"`
}
