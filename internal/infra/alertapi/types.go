package alertapi

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"agroalert/internal/domain/entity"
)

// fallbackNameKeys are tried when the category's threat key is absent from an entry.
var fallbackNameKeys = []string{"name", "pestName", "diseaseName"}

// localLayouts are the zone-less formats produced by LocalDateTime serializers.
var localLayouts = []string{
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
}

type alertResponse struct {
	Location           string          `json:"location"`
	AlertLevel         string          `json:"alertLevel"`
	AffectedFarmers    int             `json:"affectedFarmers"`
	TotalFarmersInArea int             `json:"totalFarmersInArea"`
	TotalInfestations  *int            `json:"totalInfestations"`
	TopThreats         []wireEntry     `json:"topThreats"`
	RecentInfestations []wireEntry     `json:"recentInfestations"`
	Timestamp          json.RawMessage `json:"timestamp"`
}

// wireEntry is one loosely typed object of a threat or detection list.
type wireEntry map[string]json.RawMessage

func (e wireEntry) str(keys ...string) string {
	for _, key := range keys {
		raw, ok := e[key]
		if !ok {
			continue
		}
		var value string
		if err := json.Unmarshal(raw, &value); err == nil && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
	}

	return ""
}

func (e wireEntry) number(key string) float64 {
	var value float64
	if raw, ok := e[key]; ok {
		_ = json.Unmarshal(raw, &value)
	}

	return value
}

// toReport normalizes the wire response. Threat names are read from the
// category's threat key so downstream code only sees Name.
func (r *alertResponse) toReport(category entity.AlertCategory, place string, loc *time.Location, now time.Time) *entity.AlertReport {
	nameKeys := append([]string{category.ThreatKey}, fallbackNameKeys...)

	threats := make([]entity.Threat, 0, len(r.TopThreats))
	for _, entry := range r.TopThreats {
		threats = append(threats, entity.Threat{
			Name:        entry.str(nameKeys...),
			Percentage:  entry.number("percentage"),
			Occurrences: int(entry.number("occurrences")),
		})
	}

	recent := make([]entity.Infestation, 0, len(r.RecentInfestations))
	for _, entry := range r.RecentInfestations {
		recent = append(recent, entity.Infestation{
			Name:       entry.str(nameKeys...),
			DetectedAt: parseTimestamp(entry["detectionDateTime"], loc, now),
			Location:   entry.str("detectedLocation", "location"),
		})
	}

	total := len(r.RecentInfestations)
	if r.TotalInfestations != nil {
		total = *r.TotalInfestations
	}

	return &entity.AlertReport{
		Category:           category,
		Place:              place,
		AlertLevel:         entity.ParseAlertLevel(r.AlertLevel),
		AffectedFarmers:    r.AffectedFarmers,
		TotalFarmers:       r.TotalFarmersInArea,
		TotalInfestations:  total,
		TopThreats:         threats,
		RecentInfestations: recent,
		Timestamp:          parseTimestamp(r.Timestamp, loc, now),
	}
}

// parseTimestamp accepts RFC 3339, a zone-less local date-time interpreted in
// loc, the array form [y, m, d, h, min, s, nanos] or epoch milliseconds.
// Anything else yields now.
func parseTimestamp(raw json.RawMessage, loc *time.Location, now time.Time) time.Time {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return now
	}

	switch raw[0] {
	case '"':
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			return now
		}
		if t, ok := parseTimeString(value, loc); ok {
			return t
		}
	case '[':
		var parts []int
		if err := json.Unmarshal(raw, &parts); err != nil || len(parts) < 3 {
			return now
		}
		for len(parts) < 7 {
			parts = append(parts, 0)
		}

		return time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], parts[6], loc)
	default:
		var millis int64
		if err := json.Unmarshal(raw, &millis); err == nil && millis > 0 {
			return time.UnixMilli(millis)
		}
	}

	return now
}

func parseTimeString(value string, loc *time.Location) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, true
	}
	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}
