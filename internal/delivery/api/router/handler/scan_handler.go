package handler

import (
	"log/slog"
	"net/http"

	"agroalert/internal/delivery/api/middleware"
	"agroalert/internal/delivery/api/response"
	deliverycontext "agroalert/internal/delivery/context"
	"agroalert/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScanHandlerParams holds dependencies for ScanHandler, injected by Fx.
type ScanHandlerParams struct {
	fx.In

	ScanUC usecase.ScanUsecase
	Logger *slog.Logger
}

// ScanHandler lets operators trigger a subscription scan
type ScanHandler struct {
	scanUC usecase.ScanUsecase
	logger *slog.Logger
}

// NewScanHandler is the constructor for ScanHandler
func NewScanHandler(params ScanHandlerParams) *ScanHandler {
	return &ScanHandler{
		scanUC: params.ScanUC,
		logger: params.Logger,
	}
}

// TriggerScan publishes one scan event per active subscription
func (h *ScanHandler) TriggerScan(c echo.Context) error {
	ctx := c.Request().Context()
	operator, _ := middleware.GetSubject(c)
	deliverycontext.GetLoggerOrDefault(ctx, h.logger).Info("Scan triggered", slog.String("operator", operator))

	result, err := h.scanUC.ScanSubscriptions(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
