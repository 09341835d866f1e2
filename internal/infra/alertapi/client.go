// Package alertapi is the HTTP client for the remote per-category alert service.
package alertapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"agroalert/config"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/service"
	"agroalert/internal/errors"
)

const maxResponseBytes = 4 << 20

type client struct {
	baseURL    string
	httpClient *http.Client
	location   *time.Location
	now        func() time.Time
	logger     *slog.Logger
}

// NewClient creates the alert service client from configuration.
func NewClient(cfg *config.Config, logger *slog.Logger) (service.AlertSource, error) {
	loc, err := time.LoadLocation(cfg.AlertAPI.Timezone)
	if err != nil {
		return nil, errors.Wrapf(err, "load alert api timezone %q", cfg.AlertAPI.Timezone)
	}

	return newClient(cfg.AlertAPI.BaseURL, &http.Client{Timeout: cfg.AlertAPI.Timeout}, loc, logger), nil
}

func newClient(baseURL string, httpClient *http.Client, loc *time.Location, logger *slog.Logger) *client {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		location:   loc,
		now:        time.Now,
		logger:     logger,
	}
}

// FetchArea requests GET {base}{category.Path}/area/{place}.
func (c *client) FetchArea(ctx context.Context, category entity.AlertCategory, place string) (*entity.AlertReport, error) {
	endpoint := c.baseURL + category.Path + "/area/" + url.PathEscape(place)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrCandidateRequestFailed, "build request: %v", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrCandidateRequestFailed, "%s %q: %v", category.Name, place, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxResponseBytes))

		return nil, errors.Wrapf(domainerrors.ErrCandidateRequestFailed, "%s %q: status %d", category.Name, place, resp.StatusCode)
	}

	var body alertResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&body); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrCandidateRequestFailed, "%s %q: decode response: %v", category.Name, place, err)
	}

	report := body.toReport(category, place, c.location, c.now())

	c.logger.DebugContext(ctx, "Fetched area alerts",
		slog.String("category", category.Name),
		slog.String("place", place),
		slog.String("alert_level", string(report.AlertLevel)),
		slog.Int("recent", len(report.RecentInfestations)),
	)

	return report, nil
}
