package notification

import (
	"context"
	"log/slog"

	"agroalert/internal/domain/service"
)

// logService writes notifications to the log instead of a push provider.
// It backs local development when no Firebase credentials are configured.
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a NotificationService that only logs.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

func (s *logService) SendSingleNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "[LogPush] Notification",
		slog.String("token_prefix", token[:min(10, len(token))]),
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
