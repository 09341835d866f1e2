// Package geocode resolves coordinates into place name candidates.
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"agroalert/config"
	"agroalert/internal/domain/entity"
	domainerrors "agroalert/internal/domain/errors"
	"agroalert/internal/domain/service"
	"agroalert/internal/errors"
)

const maxResponseBytes = 2 << 20

type nominatimResponse struct {
	DisplayName string            `json:"display_name"`
	Address     map[string]string `json:"address"`
	Error       string            `json:"error,omitempty"`
}

type nominatimClient struct {
	baseURL        string
	userAgent      string
	acceptLanguage string
	addressKeys    []string
	httpClient     *http.Client
	logger         *slog.Logger
}

// NewReverseGeocoder builds the Nominatim client, wrapped in a proximity cache when one is configured.
func NewReverseGeocoder(cfg *config.Config, logger *slog.Logger) service.ReverseGeocoder {
	client := NewNominatimClient(cfg.Geocoder, &http.Client{Timeout: cfg.Geocoder.Timeout}, logger)
	if cfg.Geocoder.CacheRadiusMeters <= 0 {
		return client
	}

	return NewCachedGeocoder(client, cfg.Geocoder.CacheRadiusMeters, cfg.Geocoder.CacheTTL, cfg.Geocoder.CacheSize)
}

// NewNominatimClient creates a reverse geocoder for a Nominatim compatible service.
func NewNominatimClient(cfg *config.GeocoderConfig, httpClient *http.Client, logger *slog.Logger) service.ReverseGeocoder {
	keys := cfg.AddressKeys
	if len(keys) == 0 {
		keys = config.DefaultAddressKeys
	}

	return &nominatimClient{
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		userAgent:      cfg.UserAgent,
		acceptLanguage: cfg.AcceptLanguage,
		addressKeys:    keys,
		httpClient:     httpClient,
		logger:         logger,
	}
}

// ReverseGeocode issues a single reverse lookup.
func (c *nominatimClient) ReverseGeocode(ctx context.Context, coords entity.Coordinates) (*entity.Place, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(coords.Latitude, 'f', -1, 64))
	query.Set("lon", strconv.FormatFloat(coords.Longitude, 'f', -1, 64))
	query.Set("format", "json")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/reverse?"+query.Encode(), nil)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrGeoLookupFailed, "reverse geocode: %v", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.acceptLanguage != "" {
		req.Header.Set("Accept-Language", c.acceptLanguage)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrapf(domainerrors.ErrGeoLookupFailed, "reverse geocode: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Wrapf(domainerrors.ErrGeoLookupFailed, "reverse geocode status %d", resp.StatusCode)
	}

	var result nominatimResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&result); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrGeoLookupFailed, "decode reverse geocode response: %v", err)
	}

	place := &entity.Place{
		Candidates:  c.candidates(result.Address),
		DisplayName: strings.TrimSpace(result.DisplayName),
	}

	c.logger.DebugContext(ctx, "Reverse geocoded coordinates",
		slog.String("coordinates", coords.String()),
		slog.Any("candidates", []string(place.Candidates)),
	)

	return place, nil
}

// candidates keeps the configured address components that are present, in key order.
func (c *nominatimClient) candidates(address map[string]string) entity.PlaceCandidates {
	candidates := make(entity.PlaceCandidates, 0, len(c.addressKeys))
	for _, key := range c.addressKeys {
		if value := strings.TrimSpace(address[key]); value != "" {
			candidates = append(candidates, value)
		}
	}

	return candidates
}
