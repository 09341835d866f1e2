// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"agroalert/internal/delivery/api/middleware"
	"agroalert/internal/delivery/api/router/handler"
	"agroalert/internal/domain/constants"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AlertHandler        *handler.AlertHandler
	SubscriptionHandler *handler.SubscriptionHandler
	ScanHandler         *handler.ScanHandler
	AuthMiddleware      *middleware.AuthMiddleware
	Registry            *prometheus.Registry `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	alertHandler        *handler.AlertHandler
	subscriptionHandler *handler.SubscriptionHandler
	scanHandler         *handler.ScanHandler
	authMiddleware      *middleware.AuthMiddleware
	registry            *prometheus.Registry
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		alertHandler:        params.AlertHandler,
		subscriptionHandler: params.SubscriptionHandler,
		scanHandler:         params.ScanHandler,
		authMiddleware:      params.AuthMiddleware,
		registry:            params.Registry,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.registry != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})))
	}

	apiV1 := e.Group("/api/v1")

	// Alert lookups are public; the caller shares its position per request.
	apiV1.GET("/alerts", r.alertHandler.GetAlerts)
	apiV1.GET("/places", r.alertHandler.GetPlace)
	apiV1.GET("/categories", r.alertHandler.GetCategories)

	subscriptionsGroup := apiV1.Group("/subscriptions")
	{
		subscriptionsGroup.POST("", r.subscriptionHandler.Subscribe)
		subscriptionsGroup.DELETE("/:id", r.subscriptionHandler.Unsubscribe)
		subscriptionsGroup.GET("/:id/notifications", r.subscriptionHandler.ListNotifications)
		subscriptionsGroup.PUT("/:id/notifications/:notificationId/read", r.subscriptionHandler.MarkNotificationRead)
	}

	// Scans fan out to every subscription, so only operators may trigger them.
	scansGroup := apiV1.Group("/scans")
	scansGroup.Use(r.authMiddleware.Authenticate)
	scansGroup.Use(r.authMiddleware.RequireRole(constants.RoleOperator))
	{
		scansGroup.POST("", r.scanHandler.TriggerScan)
	}
}
