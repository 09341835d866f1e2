package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"agroalert/internal/delivery/api/response"
	"agroalert/internal/domain/entity"
	"agroalert/internal/domain/service"
	"agroalert/internal/infra/geolocation"
	"agroalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AlertHandlerParams holds dependencies for AlertHandler, injected by Fx.
type AlertHandlerParams struct {
	fx.In

	AlertUC usecase.AlertUsecase
	Logger  *slog.Logger
}

// AlertHandler serves the location-scoped alert lookups
type AlertHandler struct {
	alertUC usecase.AlertUsecase
	logger  *slog.Logger
}

// NewAlertHandler is the constructor for AlertHandler
func NewAlertHandler(params AlertHandlerParams) *AlertHandler {
	return &AlertHandler{
		alertUC: params.AlertUC,
		logger:  params.Logger,
	}
}

// PlaceResponse is a reverse geocoded place with its display label
type PlaceResponse struct {
	*entity.Place
	Label string `json:"label"`
}

// GetAlerts aggregates alerts around the caller's position.
// A request without lat and lon is treated as a caller that denied location access.
func (h *AlertHandler) GetAlerts(c echo.Context) error {
	locator, err := locatorFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	feed := h.alertUC.Aggregate(c.Request().Context(), &usecase.AggregateRequest{
		Locator:    locator,
		Categories: splitList(c.QueryParam("categories")),
	})

	return response.Success(c, http.StatusOK, feed)
}

// GetPlace reverse geocodes the given coordinates
func (h *AlertHandler) GetPlace(c echo.Context) error {
	coords, present, err := coordinatesFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}
	if !present {
		return response.BadRequest(c, "VALIDATION_ERROR", "lat and lon are required")
	}

	place, err := h.alertUC.ResolvePlace(c.Request().Context(), coords)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	label := place.Label()
	if label == "" {
		label = fmt.Sprintf("%.4f, %.4f", coords.Latitude, coords.Longitude)
	}
	if place == nil {
		place = &entity.Place{Candidates: entity.PlaceCandidates{}}
	}

	return response.Success(c, http.StatusOK, PlaceResponse{Place: place, Label: label})
}

// GetCategories lists the configured alert categories
func (h *AlertHandler) GetCategories(c echo.Context) error {
	return response.Success(c, http.StatusOK, h.alertUC.Categories())
}

func locatorFromQuery(c echo.Context) (service.Locator, error) {
	coords, present, err := coordinatesFromQuery(c)
	if err != nil {
		return nil, err
	}
	if !present {
		return geolocation.NewDeniedLocator(), nil
	}

	return geolocation.NewStaticLocator(coords), nil
}

// coordinatesFromQuery reads lat and lon. Both absent is not an error; present reports false.
func coordinatesFromQuery(c echo.Context) (coords entity.Coordinates, present bool, err error) {
	latParam := strings.TrimSpace(c.QueryParam("lat"))
	lonParam := strings.TrimSpace(c.QueryParam("lon"))
	if latParam == "" && lonParam == "" {
		return entity.Coordinates{}, false, nil
	}
	if latParam == "" || lonParam == "" {
		return entity.Coordinates{}, true, errors.New("lat and lon must be provided together")
	}

	lat, err := strconv.ParseFloat(latParam, 64)
	if err != nil {
		return entity.Coordinates{}, true, errors.New("lat must be a number")
	}
	lon, err := strconv.ParseFloat(lonParam, 64)
	if err != nil {
		return entity.Coordinates{}, true, errors.New("lon must be a number")
	}

	coords, err = entity.NewCoordinates(lat, lon)
	if err != nil {
		return entity.Coordinates{}, true, err
	}

	return coords, true, nil
}

func splitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	var items []string
	for item := range strings.SplitSeq(raw, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}

	return items
}
