// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"
	"time"

	"agroalert/config"
	deliverycontext "agroalert/internal/delivery/context"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/service"
	"agroalert/internal/errors"
	"agroalert/internal/usecase"

	"github.com/google/uuid"
)

const (
	defaultRecentLimit = 3

	candidateHit  = "hit"
	candidateMiss = "miss"

	categoryFound    = "found"
	categoryNotFound = "not_found"
	categoryFailed   = "failed"
)

// alertService implements the AlertUsecase interface.
type alertService struct {
	categories  []entity.AlertCategory
	recentLimit int
	geocoder    service.ReverseGeocoder
	source      service.AlertSource
	metrics     service.AlertMetrics
	logger      *slog.Logger
	now         func() time.Time
}

// categoryOutcome is the result of fetching one category.
type categoryOutcome struct {
	category entity.AlertCategory
	report   *entity.AlertReport
	err      error
}

// NewAlertService is the constructor for alertService.
func NewAlertService(
	cfg *config.Config,
	geocoder service.ReverseGeocoder,
	source service.AlertSource,
	metrics service.AlertMetrics,
	logger *slog.Logger,
) usecase.AlertUsecase {
	categoryConfigs := cfg.Categories
	if len(categoryConfigs) == 0 {
		categoryConfigs = config.DefaultCategories()
	}

	categories := make([]entity.AlertCategory, 0, len(categoryConfigs))
	for _, c := range categoryConfigs {
		categories = append(categories, entity.AlertCategory{
			Name:      c.Name,
			Label:     c.Label,
			Path:      c.Path,
			ThreatKey: c.ThreatKey,
			Emoji:     c.Emoji,
			Color:     c.Color,
		})
	}

	recentLimit := defaultRecentLimit
	if cfg.Alerts != nil && cfg.Alerts.RecentLimit > 0 {
		recentLimit = cfg.Alerts.RecentLimit
	}

	return &alertService{
		categories:  categories,
		recentLimit: recentLimit,
		geocoder:    geocoder,
		source:      source,
		metrics:     metrics,
		logger:      logger,
		now:         time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *alertService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Categories returns a copy of the configured categories.
func (srv *alertService) Categories() []entity.AlertCategory {
	categories := make([]entity.AlertCategory, len(srv.categories))
	copy(categories, srv.categories)

	return categories
}

// ResolvePlace reverse geocodes the coordinates.
func (srv *alertService) ResolvePlace(ctx context.Context, coords entity.Coordinates) (*entity.Place, error) {
	if err := coords.Validate(); err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage(err.Error())
	}

	place, err := srv.geocoder.ReverseGeocode(ctx, coords)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return place, nil
}

// Aggregate runs one aggregation: locate, geocode, then fetch every category concurrently.
func (srv *alertService) Aggregate(ctx context.Context, req *usecase.AggregateRequest) *usecase.AlertFeed {
	if req == nil {
		req = &usecase.AggregateRequest{}
	}
	log := srv.log(ctx)

	if req.Locator == nil {
		return srv.terminal(ctx, usecase.OutcomeLocationDenied, srv.locationRequiredNotification())
	}

	coords, err := req.Locator.Locate(ctx)
	if err != nil {
		log.Info("Location unavailable, skipping alert lookup", slog.Any("error", err))

		return srv.terminal(ctx, usecase.OutcomeLocationDenied, srv.locationRequiredNotification())
	}

	place, err := srv.geocoder.ReverseGeocode(ctx, coords)
	if err != nil {
		log.Warn("Reverse geocoding failed", slog.Any("error", err), slog.String("coordinates", coords.String()))

		return srv.terminal(ctx, usecase.OutcomeLocationUnresolved, srv.locationErrorNotification(coords))
	}
	if place.IsEmpty() {
		log.Warn("Reverse geocoding returned no place names", slog.String("coordinates", coords.String()))

		return srv.terminal(ctx, usecase.OutcomeLocationUnresolved, srv.locationErrorNotification(coords))
	}

	categories := srv.selectCategories(ctx, req.Categories)
	outcomes := srv.fetchAll(ctx, categories, place.Candidates)

	notifications := make([]*entity.Notification, 0, len(outcomes)*(srv.recentLimit+1))
	for _, outcome := range outcomes {
		notifications = append(notifications, srv.project(ctx, place, outcome)...)
	}
	entity.SortNotifications(notifications)

	if req.Sink != nil {
		if err := req.Sink.Deliver(ctx, notifications); err != nil {
			log.Error("Failed to deliver notifications", slog.Any("error", err), slog.Int("count", len(notifications)))
		}
	}

	srv.metrics.Aggregation(string(usecase.OutcomeMerged))
	log.Debug("Alert aggregation finished",
		slog.String("place", place.Label()),
		slog.Int("categories", len(categories)),
		slog.Int("notifications", len(notifications)),
	)

	return &usecase.AlertFeed{
		Outcome:       usecase.OutcomeMerged,
		Place:         place,
		Notifications: notifications,
	}
}

// FetchCategory walks the candidates in order and stops at the first place the category has a report for.
func (srv *alertService) FetchCategory(ctx context.Context, category entity.AlertCategory, candidates entity.PlaceCandidates) (*entity.AlertReport, error) {
	if len(candidates) == 0 {
		return nil, errors.Wrapf(domainerrors.ErrAlertNotFound, "category %s: no place candidates", category.Name)
	}

	log := srv.log(ctx)

	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(domainerrors.ErrCategoryFetchFailed, "category %s: %v", category.Name, err)
		}

		report, err := srv.source.FetchArea(ctx, category, candidate)
		if err != nil || report == nil {
			srv.metrics.CandidateRequest(category.Name, candidateMiss)
			log.Warn("Alert lookup failed for place, trying next",
				slog.String("category", category.Name),
				slog.String("place", candidate),
				slog.Any("error", err),
			)

			continue
		}

		srv.metrics.CandidateRequest(category.Name, candidateHit)
		if report.Place == "" {
			report.Place = candidate
		}

		return report, nil
	}

	if err := ctx.Err(); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrCategoryFetchFailed, "category %s: %v", category.Name, err)
	}

	return nil, errors.Wrapf(domainerrors.ErrAlertNotFound, "category %s: no alerts for %d place candidates", category.Name, len(candidates))
}

// fetchAll runs one goroutine per category and collects the outcomes in category order.
func (srv *alertService) fetchAll(ctx context.Context, categories []entity.AlertCategory, candidates entity.PlaceCandidates) []categoryOutcome {
	outcomes := make([]categoryOutcome, len(categories))

	var wg sync.WaitGroup
	for idx, category := range categories {
		wg.Add(1)
		go func() {
			defer wg.Done()
			outcomes[idx] = srv.fetchIsolated(ctx, category, candidates)
		}()
	}
	wg.Wait()

	return outcomes
}

// fetchIsolated converts a panic inside one category into that category's failure.
func (srv *alertService) fetchIsolated(ctx context.Context, category entity.AlertCategory, candidates entity.PlaceCandidates) (outcome categoryOutcome) {
	outcome.category = category

	defer func() {
		if r := recover(); r != nil {
			srv.log(ctx).Error("Recovered from panic while fetching alerts",
				slog.String("category", category.Name),
				slog.Any("panic", r),
				slog.String("stack", string(debug.Stack())),
			)
			outcome.report = nil
			outcome.err = errors.Wrapf(domainerrors.ErrCategoryFetchFailed, "category %s: panic: %v", category.Name, r)
		}
	}()

	outcome.report, outcome.err = srv.FetchCategory(ctx, category, candidates)

	return outcome
}

// selectCategories resolves requested names against the configured categories.
// Unknown names are dropped; when nothing usable is requested all categories are used.
func (srv *alertService) selectCategories(ctx context.Context, names []string) []entity.AlertCategory {
	if len(names) == 0 {
		return srv.categories
	}

	selected := make([]entity.AlertCategory, 0, len(names))
	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := seen[name]; ok || name == "" {
			continue
		}
		seen[name] = struct{}{}

		category, ok := srv.findCategory(name)
		if !ok {
			srv.log(ctx).Warn("Ignoring unknown alert category", slog.String("category", name))

			continue
		}
		selected = append(selected, category)
	}

	if len(selected) == 0 {
		return srv.categories
	}

	return selected
}

func (srv *alertService) findCategory(name string) (entity.AlertCategory, bool) {
	for _, category := range srv.categories {
		if strings.EqualFold(category.Name, name) {
			return category, true
		}
	}

	return entity.AlertCategory{}, false
}

func (srv *alertService) terminal(ctx context.Context, outcome usecase.AggregateOutcome, notification *entity.Notification) *usecase.AlertFeed {
	srv.metrics.Aggregation(string(outcome))
	srv.log(ctx).Debug("Alert aggregation stopped early", slog.String("outcome", string(outcome)))

	return &usecase.AlertFeed{
		Outcome:       outcome,
		Notifications: []*entity.Notification{notification},
	}
}

// project turns one category outcome into its notifications.
func (srv *alertService) project(ctx context.Context, place *entity.Place, outcome categoryOutcome) []*entity.Notification {
	category := outcome.category

	switch {
	case outcome.report != nil:
		srv.metrics.CategoryResult(category.Name, categoryFound)

		return srv.reportNotifications(outcome.report)
	case errors.Is(outcome.err, domainerrors.ErrAlertNotFound):
		srv.metrics.CategoryResult(category.Name, categoryNotFound)

		return []*entity.Notification{srv.noAlertsNotification(category, place)}
	default:
		srv.metrics.CategoryResult(category.Name, categoryFailed)
		srv.log(ctx).Warn("Alert category unavailable",
			slog.String("category", category.Name),
			slog.Any("error", outcome.err),
		)

		return []*entity.Notification{srv.unavailableNotification(category)}
	}
}

// reportNotifications builds the summary followed by at most recentLimit recent detections.
func (srv *alertService) reportNotifications(report *entity.AlertReport) []*entity.Notification {
	category := report.Category
	reportTime := report.Timestamp
	if reportTime.IsZero() {
		reportTime = srv.now()
	}

	severity := entity.SeverityWarning
	if report.AlertLevel == entity.AlertLevelHigh {
		severity = entity.SeverityAlert
	}

	recentCount := min(srv.recentLimit, len(report.RecentInfestations))
	notifications := make([]*entity.Notification, 0, recentCount+1)
	notifications = append(notifications, &entity.Notification{
		ID:       uuid.New(),
		Category: category.Name,
		Severity: severity,
		Title:    fmt.Sprintf("%s Alert - %s", category.Label, report.Place),
		Message:  summaryMessage(report),
		Time:     reportTime,
		Location: report.Place,
	})

	for _, infestation := range report.RecentInfestations[:recentCount] {
		detectedAt := infestation.DetectedAt
		if detectedAt.IsZero() {
			detectedAt = reportTime
		}
		location := infestation.Location
		if location == "" {
			location = report.Place
		}

		notifications = append(notifications, &entity.Notification{
			ID:       uuid.New(),
			Category: category.Name,
			Severity: entity.SeverityWarning,
			Title:    "⚠️ " + strings.ToUpper(infestation.Name),
			Message: fmt.Sprintf("New %s detection alert!\n%s Type: %s\nLocation: %s",
				strings.ToLower(category.Label), category.Label, infestation.Name, location),
			Time:     detectedAt,
			Location: report.Place,
		})
	}

	return notifications
}

func summaryMessage(report *entity.AlertReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Alert Level: %s\nAffected Farmers: %d", report.AlertLevel, report.AffectedFarmers)

	if len(report.TopThreats) > 0 {
		fmt.Fprintf(&b, "\n\nActive %s Threats:", report.Category.Label)
		for _, threat := range report.TopThreats {
			fmt.Fprintf(&b, "\n• %s\n  Severity: %s%% of cases",
				strings.ToUpper(threat.Name), strconv.FormatFloat(threat.Percentage, 'f', -1, 64))
		}
	}

	return b.String()
}

func (srv *alertService) noAlertsNotification(category entity.AlertCategory, place *entity.Place) *entity.Notification {
	return &entity.Notification{
		ID:       uuid.New(),
		Category: category.Name,
		Severity: entity.SeverityInfo,
		Title:    fmt.Sprintf("No %s Alerts", category.Label),
		Message:  fmt.Sprintf("No active %s alerts reported near %s.", strings.ToLower(category.Label), place.Label()),
		Time:     srv.now(),
		Location: place.Label(),
	}
}

func (srv *alertService) unavailableNotification(category entity.AlertCategory) *entity.Notification {
	return &entity.Notification{
		ID:       uuid.New(),
		Category: category.Name,
		Severity: entity.SeverityWarning,
		Title:    fmt.Sprintf("%s Alerts Unavailable", category.Label),
		Message:  fmt.Sprintf("Unable to fetch %s alerts", strings.ToLower(category.Label)),
		Time:     srv.now(),
	}
}

func (srv *alertService) locationRequiredNotification() *entity.Notification {
	return &entity.Notification{
		ID:       uuid.New(),
		Severity: entity.SeverityInfo,
		Title:    "Location Access Required",
		Message:  "Allow location access to receive farm alerts for your area.",
		Time:     srv.now(),
	}
}

func (srv *alertService) locationErrorNotification(coords entity.Coordinates) *entity.Notification {
	return &entity.Notification{
		ID:       uuid.New(),
		Severity: entity.SeverityWarning,
		Title:    "Location Error",
		Message:  "Unable to determine your area, alerts could not be fetched.",
		Time:     srv.now(),
		Location: coords.String(),
	}
}
