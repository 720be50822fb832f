package notification

import (
	"context"
	"log/slog"

	"dosetrack/internal/domain/service"
)

// logService is the stand-in sender used when no push provider is
// configured. It records the reminder instead of delivering it, which
// keeps local development and tests working against the full dispatch
// path including receipts.
type logService struct {
	logger *slog.Logger
}

// NewLogService creates a notification service that only logs.
func NewLogService(logger *slog.Logger) service.NotificationService {
	return &logService{logger: logger}
}

// SendReminder logs the reminder and reports success.
func (s *logService) SendReminder(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.LogAttrs(ctx, slog.LevelInfo, "reminder dispatched (log only)",
		slog.String("title", title),
		slog.String("body", body),
		slog.Any("data", data),
	)

	return nil
}
