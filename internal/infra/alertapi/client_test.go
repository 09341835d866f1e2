package alertapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	pestCategory = entity.AlertCategory{
		Name: "pest", Label: "Pest", Path: "/api/pest-alerts", ThreatKey: "pestName",
	}
	diseaseCategory = entity.AlertCategory{
		Name: "disease", Label: "Disease", Path: "/api/disease-alerts", ThreatKey: "diseaseName",
	}
	fixedNow = time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	colombo, err := time.LoadLocation("Asia/Colombo")
	require.NoError(t, err)

	c := newClient(server.URL+"/", server.Client(), colombo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.now = func() time.Time { return fixedNow }

	return c
}

func TestClient_FetchArea_PestReport(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"location": "Colombo 07",
			"alertLevel": "HIGH",
			"affectedFarmers": 4,
			"totalFarmersInArea": 10,
			"topThreats": [
				{"pestName": "Brown Planthopper", "occurrences": 3, "percentage": 60},
				{"pestName": "Aphids", "occurrences": 2, "percentage": 40}
			],
			"recentInfestations": [
				{"id": "a1", "pestName": "Brown Planthopper", "detectedLocation": "Colombo 07", "detectionDateTime": "2024-01-10T09:00:00"},
				{"id": "a2", "pestName": "Aphids", "detectedLocation": "Colombo 07", "detectionDateTime": [2024, 1, 9, 18, 30, 0, 0]}
			],
			"timestamp": "2024-01-10T11:59:30.123456"
		}`))
	})

	report, err := c.FetchArea(context.Background(), pestCategory, "Colombo 07")
	require.NoError(t, err)

	assert.Equal(t, "/api/pest-alerts/area/Colombo%2007", gotPath)
	assert.Equal(t, "Colombo 07", report.Place)
	assert.Equal(t, entity.AlertLevelHigh, report.AlertLevel)
	assert.Equal(t, 4, report.AffectedFarmers)
	assert.Equal(t, 10, report.TotalFarmers)
	assert.Equal(t, 2, report.TotalInfestations)
	require.Len(t, report.TopThreats, 2)
	assert.Equal(t, entity.Threat{Name: "Brown Planthopper", Percentage: 60, Occurrences: 3}, report.TopThreats[0])
	require.Len(t, report.RecentInfestations, 2)
	assert.Equal(t, "Brown Planthopper", report.RecentInfestations[0].Name)
	assert.Equal(t, "Colombo 07", report.RecentInfestations[0].Location)
	// 09:00 in Colombo (UTC+05:30).
	assert.True(t, report.RecentInfestations[0].DetectedAt.Equal(time.Date(2024, 1, 10, 3, 30, 0, 0, time.UTC)))
	assert.True(t, report.RecentInfestations[1].DetectedAt.Equal(time.Date(2024, 1, 9, 13, 0, 0, 0, time.UTC)))
}

func TestClient_FetchArea_DiseaseNamesNormalized(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/disease-alerts/area/Kandy", r.URL.Path)
		_, _ = w.Write([]byte(`{
			"alertLevel": "medium",
			"topThreats": [{"diseaseName": "Leaf Blast", "occurrences": 2, "percentage": 100}],
			"recentInfestations": [{"diseaseName": "Leaf Blast"}, {"diseaseName": "Leaf Blast"}]
		}`))
	})

	report, err := c.FetchArea(context.Background(), diseaseCategory, "Kandy")
	require.NoError(t, err)

	assert.Equal(t, entity.AlertLevelMedium, report.AlertLevel)
	assert.Equal(t, "Leaf Blast", report.TopThreats[0].Name)
	assert.Equal(t, "Leaf Blast", report.RecentInfestations[1].Name)
	assert.Equal(t, fixedNow, report.RecentInfestations[0].DetectedAt)
	assert.Equal(t, fixedNow, report.Timestamp)
}

func TestClient_FetchArea_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "undecodable body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, tt.handler)

			report, err := c.FetchArea(context.Background(), pestCategory, "Colombo")
			require.Error(t, err)
			assert.Nil(t, report)
			assert.True(t, errors.Is(err, domainerrors.ErrCandidateRequestFailed))
		})
	}
}
