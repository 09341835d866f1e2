package handler

import (
	"log/slog"
	"net/http"

	"agroalert/internal/delivery/api/response"
	"agroalert/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// SubscribeRequest represents the request body for registering a device for alert scans
type SubscribeRequest struct {
	FCMToken   string   `json:"fcm_token" validate:"required"`
	Platform   string   `json:"platform" validate:"required,oneof=ios android"`
	Latitude   *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude  *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
	Categories []string `json:"categories" validate:"omitempty,max=16"`
}

// ListNotificationsQuery holds the pagination of a notification history request
type ListNotificationsQuery struct {
	Limit  int `query:"limit" validate:"gte=0"`
	Offset int `query:"offset" validate:"gte=0"`
}

// Subscribe creates or refreshes the subscription of a device
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	var req SubscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid subscription input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	subscription, err := h.subscriptionUC.Subscribe(c.Request().Context(), &usecase.SubscribeInput{
		FCMToken:   req.FCMToken,
		Platform:   req.Platform,
		Latitude:   *req.Latitude,
		Longitude:  *req.Longitude,
		Categories: req.Categories,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, subscription)
}

// Unsubscribe deactivates a subscription
func (h *SubscriptionHandler) Unsubscribe(c echo.Context) error {
	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	if err := h.subscriptionUC.Unsubscribe(c.Request().Context(), subscriptionID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListNotifications returns the stored notifications of a subscription, newest first
func (h *SubscriptionHandler) ListNotifications(c echo.Context) error {
	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}

	var query ListNotificationsQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "limit and offset must be integers")
	}
	if err := c.Validate(&query); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	notifications, err := h.subscriptionUC.ListNotifications(c.Request().Context(), subscriptionID, query.Limit, query.Offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, notifications)
}

// MarkNotificationRead flags a stored notification of the subscription as read
func (h *SubscriptionHandler) MarkNotificationRead(c echo.Context) error {
	subscriptionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid subscription ID")
	}
	notificationID, err := uuid.Parse(c.Param("notificationId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid notification ID")
	}

	if err := h.subscriptionUC.MarkNotificationRead(c.Request().Context(), subscriptionID, notificationID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Notification marked as read"})
}
