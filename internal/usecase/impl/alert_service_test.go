package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"agroalert/config"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/errors"
	mockSvc "agroalert/internal/mocks/service"
	"agroalert/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pestCategory = entity.AlertCategory{
		Name: "pest", Label: "Pest", Path: "/api/pest-alerts", ThreatKey: "pestName", Emoji: "🐛", Color: "#4CAF50",
	}
	diseaseCategory = entity.AlertCategory{
		Name: "disease", Label: "Disease", Path: "/api/disease-alerts", ThreatKey: "diseaseName", Emoji: "🦠", Color: "#9C27B0",
	}
	colombo  = entity.Coordinates{Latitude: 6.9271, Longitude: 79.8612}
	fixedNow = time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)
)

type alertServiceFixture struct {
	service  *alertService
	geocoder *mockSvc.MockReverseGeocoder
	source   *mockSvc.MockAlertSource
	metrics  *mockSvc.MockAlertMetrics
}

func newAlertServiceFixture(t *testing.T) *alertServiceFixture {
	t.Helper()

	cfg := &config.Config{
		Categories: config.DefaultCategories(),
		Alerts:     &config.AlertsConfig{RecentLimit: 3},
	}
	geocoder := mockSvc.NewMockReverseGeocoder(t)
	source := mockSvc.NewMockAlertSource(t)
	metrics := mockSvc.NewMockAlertMetrics(t)
	metrics.EXPECT().CandidateRequest(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().CategoryResult(mock.Anything, mock.Anything).Maybe()
	metrics.EXPECT().Aggregation(mock.Anything).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc, ok := NewAlertService(cfg, geocoder, source, metrics, logger).(*alertService)
	require.True(t, ok)
	svc.now = func() time.Time { return fixedNow }

	return &alertServiceFixture{service: svc, geocoder: geocoder, source: source, metrics: metrics}
}

func staticLocator(t *testing.T, coords entity.Coordinates) *mockSvc.MockLocator {
	t.Helper()

	locator := mockSvc.NewMockLocator(t)
	locator.EXPECT().Locate(mock.Anything).Return(coords, nil)

	return locator
}

func pestReport(place string, level entity.AlertLevel, recent int) *entity.AlertReport {
	report := &entity.AlertReport{
		Category:        pestCategory,
		Place:           place,
		AlertLevel:      level,
		AffectedFarmers: 12,
		TopThreats: []entity.Threat{
			{Name: "Brown Planthopper", Percentage: 45.5, Occurrences: 5},
			{Name: "Leaf Folder", Percentage: 20, Occurrences: 2},
		},
		Timestamp: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	}
	for i := range recent {
		report.RecentInfestations = append(report.RecentInfestations, entity.Infestation{
			Name:       "Brown Planthopper",
			DetectedAt: report.Timestamp.Add(-time.Duration(i+1) * 30 * time.Minute),
			Location:   place,
		})
	}

	return report
}

func TestAlertService_FetchCategory(t *testing.T) {
	t.Run("stops at the first candidate with a report", func(t *testing.T) {
		f := newAlertServiceFixture(t)
		report := pestReport("", entity.AlertLevelLow, 0)

		f.source.EXPECT().FetchArea(mock.Anything, pestCategory, "A").
			Return(nil, errors.Wrap(domainerrors.ErrCandidateRequestFailed, "status 404")).Once()
		f.source.EXPECT().FetchArea(mock.Anything, pestCategory, "B").Return(report, nil).Once()

		got, err := f.service.FetchCategory(context.Background(), pestCategory, entity.PlaceCandidates{"A", "B", "C"})

		require.NoError(t, err)
		assert.Same(t, report, got)
		assert.Equal(t, "B", got.Place)
		f.source.AssertNotCalled(t, "FetchArea", mock.Anything, pestCategory, "C")
	})

	t.Run("empty candidates make no requests", func(t *testing.T) {
		f := newAlertServiceFixture(t)

		got, err := f.service.FetchCategory(context.Background(), pestCategory, nil)

		require.Error(t, err)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
		f.source.AssertNotCalled(t, "FetchArea", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("all candidates exhausted", func(t *testing.T) {
		f := newAlertServiceFixture(t)
		f.source.EXPECT().FetchArea(mock.Anything, diseaseCategory, mock.Anything).
			Return(nil, domainerrors.ErrCandidateRequestFailed).Times(3)

		_, err := f.service.FetchCategory(context.Background(), diseaseCategory, entity.PlaceCandidates{"Kolonnawa", "Colombo", "Western Province"})

		assert.ErrorIs(t, err, domainerrors.ErrAlertNotFound)
	})

	t.Run("cancelled context stops the walk", func(t *testing.T) {
		f := newAlertServiceFixture(t)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := f.service.FetchCategory(ctx, pestCategory, entity.PlaceCandidates{"A", "B"})

		assert.ErrorIs(t, err, domainerrors.ErrCategoryFetchFailed)
		assert.ErrorContains(t, err, context.Canceled.Error())
	})

	t.Run("counts hits and misses", func(t *testing.T) {
		geocoder := mockSvc.NewMockReverseGeocoder(t)
		source := mockSvc.NewMockAlertSource(t)
		metrics := mockSvc.NewMockAlertMetrics(t)
		svc := NewAlertService(&config.Config{Categories: config.DefaultCategories()}, geocoder, source, metrics, slog.New(slog.NewTextHandler(io.Discard, nil)))

		source.EXPECT().FetchArea(mock.Anything, pestCategory, "A").Return(nil, domainerrors.ErrCandidateRequestFailed)
		source.EXPECT().FetchArea(mock.Anything, pestCategory, "B").Return(pestReport("B", entity.AlertLevelLow, 0), nil)
		metrics.EXPECT().CandidateRequest("pest", "miss").Once()
		metrics.EXPECT().CandidateRequest("pest", "hit").Once()

		_, err := svc.FetchCategory(context.Background(), pestCategory, entity.PlaceCandidates{"A", "B"})

		require.NoError(t, err)
	})
}

func TestAlertService_Aggregate_LocationDenied(t *testing.T) {
	f := newAlertServiceFixture(t)
	locator := mockSvc.NewMockLocator(t)
	locator.EXPECT().Locate(mock.Anything).Return(entity.Coordinates{}, domainerrors.ErrLocationPermissionDenied)

	feed := f.service.Aggregate(context.Background(), &usecase.AggregateRequest{Locator: locator})

	assert.Equal(t, usecase.OutcomeLocationDenied, feed.Outcome)
	require.Len(t, feed.Notifications, 1)
	assert.Equal(t, "Location Access Required", feed.Notifications[0].Title)
	assert.Equal(t, entity.SeverityInfo, feed.Notifications[0].Severity)
	assert.Equal(t, fixedNow, feed.Notifications[0].Time)
	f.geocoder.AssertNotCalled(t, "ReverseGeocode", mock.Anything, mock.Anything)
	f.source.AssertNotCalled(t, "FetchArea", mock.Anything, mock.Anything, mock.Anything)
}

func TestAlertService_Aggregate_MissingLocator(t *testing.T) {
	f := newAlertServiceFixture(t)

	feed := f.service.Aggregate(context.Background(), nil)

	assert.Equal(t, usecase.OutcomeLocationDenied, feed.Outcome)
	require.Len(t, feed.Notifications, 1)
}

func TestAlertService_Aggregate_LocationUnresolved(t *testing.T) {
	tests := []struct {
		name  string
		place *entity.Place
		err   error
	}{
		{name: "geocoder failure", err: errors.Wrap(domainerrors.ErrGeoLookupFailed, "status 503")},
		{name: "no place names", place: &entity.Place{DisplayName: "Indian Ocean"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAlertServiceFixture(t)
			f.geocoder.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(tt.place, tt.err)

			feed := f.service.Aggregate(context.Background(), &usecase.AggregateRequest{Locator: staticLocator(t, colombo)})

			assert.Equal(t, usecase.OutcomeLocationUnresolved, feed.Outcome)
			require.Len(t, feed.Notifications, 1)
			assert.Equal(t, "Location Error", feed.Notifications[0].Title)
			assert.Equal(t, entity.SeverityWarning, feed.Notifications[0].Severity)
			assert.Equal(t, "6.9271, 79.8612", feed.Notifications[0].Location)
			f.source.AssertNotCalled(t, "FetchArea", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAlertService_Aggregate_ColomboScenario(t *testing.T) {
	f := newAlertServiceFixture(t)
	candidates := entity.PlaceCandidates{"Kolonnawa", "Colombo", "Western Province"}
	report := pestReport("Colombo", entity.AlertLevelHigh, 2)

	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(&entity.Place{Candidates: candidates}, nil)
	f.source.EXPECT().FetchArea(mock.Anything, pestCategory, "Kolonnawa").
		Return(nil, errors.Wrap(domainerrors.ErrCandidateRequestFailed, "status 404"))
	f.source.EXPECT().FetchArea(mock.Anything, pestCategory, "Colombo").Return(report, nil)
	f.source.EXPECT().FetchArea(mock.Anything, diseaseCategory, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrCandidateRequestFailed, "status 404")).Times(3)

	feed := f.service.Aggregate(context.Background(), &usecase.AggregateRequest{Locator: staticLocator(t, colombo)})

	assert.Equal(t, usecase.OutcomeMerged, feed.Outcome)
	require.NotNil(t, feed.Place)
	assert.Equal(t, candidates, feed.Place.Candidates)
	require.Len(t, feed.Notifications, 4)

	disease := feed.Notifications[0]
	assert.Equal(t, "disease", disease.Category)
	assert.Equal(t, entity.SeverityInfo, disease.Severity)
	assert.Equal(t, "No Disease Alerts", disease.Title)
	assert.Equal(t, fixedNow, disease.Time)

	summary := feed.Notifications[1]
	assert.Equal(t, entity.SeverityAlert, summary.Severity)
	assert.Equal(t, "Pest Alert - Colombo", summary.Title)
	assert.Equal(t, "Alert Level: HIGH\nAffected Farmers: 12\n\nActive Pest Threats:\n"+
		"• BROWN PLANTHOPPER\n  Severity: 45.5% of cases\n"+
		"• LEAF FOLDER\n  Severity: 20% of cases", summary.Message)
	assert.Equal(t, report.Timestamp, summary.Time)

	for _, recent := range feed.Notifications[2:] {
		assert.Equal(t, "pest", recent.Category)
		assert.Equal(t, entity.SeverityWarning, recent.Severity)
		assert.Equal(t, "⚠️ BROWN PLANTHOPPER", recent.Title)
		assert.Equal(t, "New pest detection alert!\nPest Type: Brown Planthopper\nLocation: Colombo", recent.Message)
	}
	for _, n := range feed.Notifications[1:] {
		assert.Equal(t, "Colombo", n.Location)
		assert.False(t, n.Read)
	}
	assert.True(t, feed.Notifications[2].Time.After(feed.Notifications[3].Time))
}

func TestAlertService_Aggregate_CategoryIsolation(t *testing.T) {
	f := newAlertServiceFixture(t)
	diseaseReport := &entity.AlertReport{
		Category:   diseaseCategory,
		Place:      "Colombo",
		AlertLevel: entity.AlertLevelMedium,
		Timestamp:  time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}

	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(&entity.Place{Candidates: entity.PlaceCandidates{"Colombo"}}, nil)
	f.source.EXPECT().FetchArea(mock.Anything, pestCategory, "Colombo").
		RunAndReturn(func(context.Context, entity.AlertCategory, string) (*entity.AlertReport, error) {
			panic("decoder exploded")
		})
	f.source.EXPECT().FetchArea(mock.Anything, diseaseCategory, "Colombo").Return(diseaseReport, nil)

	feed := f.service.Aggregate(context.Background(), &usecase.AggregateRequest{Locator: staticLocator(t, colombo)})

	require.Len(t, feed.Notifications, 2)
	byCategory := map[string]*entity.Notification{}
	for _, n := range feed.Notifications {
		byCategory[n.Category] = n
	}
	require.Contains(t, byCategory, "pest")
	require.Contains(t, byCategory, "disease")
	assert.Equal(t, "Pest Alerts Unavailable", byCategory["pest"].Title)
	assert.Equal(t, entity.SeverityWarning, byCategory["pest"].Severity)
	assert.Equal(t, "Disease Alert - Colombo", byCategory["disease"].Title)
	assert.Equal(t, entity.SeverityWarning, byCategory["disease"].Severity)
}

func TestAlertService_Aggregate_TruncatesRecent(t *testing.T) {
	f := newAlertServiceFixture(t)

	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(&entity.Place{Candidates: entity.PlaceCandidates{"Colombo"}}, nil)
	f.source.EXPECT().FetchArea(mock.Anything, pestCategory, "Colombo").Return(pestReport("Colombo", entity.AlertLevelMedium, 5), nil)

	feed := f.service.Aggregate(context.Background(), &usecase.AggregateRequest{
		Locator:    staticLocator(t, colombo),
		Categories: []string{"pest"},
	})

	require.Len(t, feed.Notifications, 4)
	assert.Equal(t, entity.SeverityWarning, feed.Notifications[0].Severity)
	assert.Equal(t, "Pest Alert - Colombo", feed.Notifications[0].Title)
}

func TestAlertService_Aggregate_OrdersByTime(t *testing.T) {
	f := newAlertServiceFixture(t)
	older := pestReport("Colombo", entity.AlertLevelLow, 0)
	older.Timestamp = time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	newer := &entity.AlertReport{
		Category:   diseaseCategory,
		Place:      "Colombo",
		AlertLevel: entity.AlertLevelHigh,
		Timestamp:  time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC),
	}

	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(&entity.Place{Candidates: entity.PlaceCandidates{"Colombo"}}, nil)
	f.source.EXPECT().FetchArea(mock.Anything, pestCategory, "Colombo").
		RunAndReturn(func(context.Context, entity.AlertCategory, string) (*entity.AlertReport, error) {
			return older, nil
		})
	f.source.EXPECT().FetchArea(mock.Anything, diseaseCategory, "Colombo").
		RunAndReturn(func(context.Context, entity.AlertCategory, string) (*entity.AlertReport, error) {
			time.Sleep(20 * time.Millisecond)
			return newer, nil
		})

	feed := f.service.Aggregate(context.Background(), &usecase.AggregateRequest{Locator: staticLocator(t, colombo)})

	require.Len(t, feed.Notifications, 2)
	assert.Equal(t, "disease", feed.Notifications[0].Category)
	assert.Equal(t, entity.SeverityAlert, feed.Notifications[0].Severity)
	assert.Equal(t, "pest", feed.Notifications[1].Category)
}

func TestAlertService_Aggregate_FetchesCategoriesConcurrently(t *testing.T) {
	f := newAlertServiceFixture(t)
	pestStarted := make(chan struct{})
	diseaseStarted := make(chan struct{})
	diseaseReport := &entity.AlertReport{
		Category:   diseaseCategory,
		Place:      "Colombo",
		AlertLevel: entity.AlertLevelMedium,
		Timestamp:  time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC),
	}

	// Each fetch waits for the other to start, so a sequential fan-out times out.
	waitFor := func(ch <-chan struct{}) error {
		select {
		case <-ch:
			return nil
		case <-time.After(2 * time.Second):
			return errors.New("other category never started")
		}
	}

	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(&entity.Place{Candidates: entity.PlaceCandidates{"Colombo"}}, nil)
	f.source.EXPECT().FetchArea(mock.Anything, pestCategory, "Colombo").
		RunAndReturn(func(context.Context, entity.AlertCategory, string) (*entity.AlertReport, error) {
			close(pestStarted)
			if err := waitFor(diseaseStarted); err != nil {
				return nil, err
			}

			return pestReport("Colombo", entity.AlertLevelLow, 0), nil
		})
	f.source.EXPECT().FetchArea(mock.Anything, diseaseCategory, "Colombo").
		RunAndReturn(func(context.Context, entity.AlertCategory, string) (*entity.AlertReport, error) {
			close(diseaseStarted)
			if err := waitFor(pestStarted); err != nil {
				return nil, err
			}

			return diseaseReport, nil
		})

	done := make(chan *usecase.AlertFeed, 1)
	go func() {
		done <- f.service.Aggregate(context.Background(), &usecase.AggregateRequest{Locator: staticLocator(t, colombo)})
	}()

	var feed *usecase.AlertFeed
	require.Eventually(t, func() bool {
		select {
		case feed = <-done:
			return true
		default:
			return false
		}
	}, time.Second, 5*time.Millisecond)

	require.Len(t, feed.Notifications, 2)
	titles := []string{feed.Notifications[0].Title, feed.Notifications[1].Title}
	assert.ElementsMatch(t, []string{"Pest Alert - Colombo", "Disease Alert - Colombo"}, titles)
}

func TestAlertService_Aggregate_CategorySelection(t *testing.T) {
	t.Run("unknown names are ignored", func(t *testing.T) {
		f := newAlertServiceFixture(t)
		f.geocoder.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(&entity.Place{Candidates: entity.PlaceCandidates{"Colombo"}}, nil)
		f.source.EXPECT().FetchArea(mock.Anything, diseaseCategory, "Colombo").Return(nil, domainerrors.ErrCandidateRequestFailed)

		feed := f.service.Aggregate(context.Background(), &usecase.AggregateRequest{
			Locator:    staticLocator(t, colombo),
			Categories: []string{"weather", " Disease ", "disease"},
		})

		require.Len(t, feed.Notifications, 1)
		assert.Equal(t, "No Disease Alerts", feed.Notifications[0].Title)
	})

	t.Run("only unknown names falls back to all", func(t *testing.T) {
		f := newAlertServiceFixture(t)
		f.geocoder.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(&entity.Place{Candidates: entity.PlaceCandidates{"Colombo"}}, nil)
		f.source.EXPECT().FetchArea(mock.Anything, mock.Anything, "Colombo").Return(nil, domainerrors.ErrCandidateRequestFailed).Times(2)

		feed := f.service.Aggregate(context.Background(), &usecase.AggregateRequest{
			Locator:    staticLocator(t, colombo),
			Categories: []string{"weather"},
		})

		assert.Len(t, feed.Notifications, 2)
	})
}

func TestAlertService_Aggregate_Sink(t *testing.T) {
	f := newAlertServiceFixture(t)
	sink := mockSvc.NewMockNotificationSink(t)

	f.geocoder.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(&entity.Place{Candidates: entity.PlaceCandidates{"Colombo"}}, nil)
	f.source.EXPECT().FetchArea(mock.Anything, pestCategory, "Colombo").Return(pestReport("Colombo", entity.AlertLevelHigh, 1), nil)

	var delivered []*entity.Notification
	sink.EXPECT().Deliver(mock.Anything, mock.Anything).
		Run(func(_ context.Context, notifications []*entity.Notification) {
			delivered = notifications
		}).
		Return(errors.New("push backend down"))

	feed := f.service.Aggregate(context.Background(), &usecase.AggregateRequest{
		Locator:    staticLocator(t, colombo),
		Categories: []string{"pest"},
		Sink:       sink,
	})

	assert.Equal(t, usecase.OutcomeMerged, feed.Outcome)
	assert.Equal(t, feed.Notifications, delivered)
	assert.Len(t, feed.Notifications, 2)
}

func TestAlertService_Aggregate_SinkSkippedOnTerminal(t *testing.T) {
	f := newAlertServiceFixture(t)
	sink := mockSvc.NewMockNotificationSink(t)
	locator := mockSvc.NewMockLocator(t)
	locator.EXPECT().Locate(mock.Anything).Return(entity.Coordinates{}, domainerrors.ErrLocationPermissionDenied)

	feed := f.service.Aggregate(context.Background(), &usecase.AggregateRequest{Locator: locator, Sink: sink})

	assert.Len(t, feed.Notifications, 1)
	sink.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)
}

func TestAlertService_ResolvePlace(t *testing.T) {
	t.Run("invalid coordinates", func(t *testing.T) {
		f := newAlertServiceFixture(t)

		_, err := f.service.ResolvePlace(context.Background(), entity.Coordinates{Latitude: 91})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("geocoder error is kept", func(t *testing.T) {
		f := newAlertServiceFixture(t)
		f.geocoder.EXPECT().ReverseGeocode(mock.Anything, colombo).Return(nil, domainerrors.ErrGeoLookupFailed)

		_, err := f.service.ResolvePlace(context.Background(), colombo)

		assert.ErrorIs(t, err, domainerrors.ErrGeoLookupFailed)
	})
}

func TestAlertService_Categories(t *testing.T) {
	f := newAlertServiceFixture(t)

	categories := f.service.Categories()
	require.Len(t, categories, 2)
	categories[0].Label = "changed"

	assert.Equal(t, "Pest", f.service.Categories()[0].Label)
}
