package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"agroalert/config"
	deliverycontext "agroalert/internal/delivery/context"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

// UseCommon installs the middleware shared by the API and the worker: panic recovery,
// request ids and the access log. The order matters, the access log needs the request id.
func UseCommon(e *echo.Echo, logger *slog.Logger, cfg *config.Config, observer RequestObserver) {
	e.Use(echomiddleware.Recover())
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg, observer).Handle)
}

// RequestObserver receives the outcome of every served request.
type RequestObserver interface {
	ObserveRequest(method, route string, status int, elapsed time.Duration)
}

// LoggerMiddleware records request metrics and, in debug mode, an access log line
type LoggerMiddleware struct {
	logger   *slog.Logger
	observer RequestObserver
	debug    bool
	now      func() time.Time
}

// NewLoggerMiddleware creates a new logger middleware. observer may be nil.
func NewLoggerMiddleware(logger *slog.Logger, cfg *config.Config, observer RequestObserver) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger:   logger,
		observer: observer,
		debug:    cfg.Env.Debug,
		now:      time.Now,
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := m.now()
		err := next(c)
		if err != nil {
			// Let the error handler write the response so the recorded status is final.
			c.Error(err)
		}

		elapsed := m.now().Sub(start)
		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		status := c.Response().Status

		if m.observer != nil {
			m.observer.ObserveRequest(c.Request().Method, route, status, elapsed)
		}
		if m.debug || status >= http.StatusInternalServerError {
			m.logRequest(c, route, elapsed, err)
		}

		return nil
	}
}

// logRequest logs request details
func (m *LoggerMiddleware) logRequest(c echo.Context, route string, elapsed time.Duration, err error) {
	req := c.Request()
	status := c.Response().Status

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("route", route),
		slog.String("uri", req.URL.Path),
		slog.Int("status", status),
		slog.Duration("latency", elapsed),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}
	if req.URL.RawQuery != "" {
		fields = append(fields, slog.String("query", req.URL.RawQuery))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	switch {
	case status >= http.StatusInternalServerError:
		logLevel = slog.LevelError
	case status >= http.StatusBadRequest:
		logLevel = slog.LevelWarn
	}

	// The request-scoped logger already carries request_id.
	deliverycontext.GetLoggerOrDefault(req.Context(), m.logger).
		LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
