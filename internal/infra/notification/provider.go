package notification

import (
	"context"
	"log/slog"

	"agroalert/config"
	"agroalert/internal/domain/constants"
	"agroalert/internal/domain/service"
	"agroalert/internal/errors"
)

// NewNotificationService selects Firebase when credentials are configured. Outside
// develop a missing Firebase section is a configuration error.
func NewNotificationService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (service.NotificationService, error) {
	if cfg.Firebase == nil || cfg.Firebase.CredentialsPath == "" {
		if cfg.Env.Env != "" && cfg.Env.Env != constants.EnvDevelop {
			return nil, errors.Errorf("firebase credentials are required in %s", cfg.Env.Env)
		}
		logger.Warn("Firebase not configured, push notifications are only logged")

		return NewLogService(logger), nil
	}

	return NewFirebaseService(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsPath, logger)
}
