// Package notify contains outbound notification adapters. The log-backed
// implementations stand in for a real messaging channel and keep the
// notification path observable in environments without one.
package notify

import (
	"context"
	"log/slog"

	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/pkg/errs"
)

// LogNotificationSink writes outgoing notifications to the structured log.
type LogNotificationSink struct {
	logger *slog.Logger
}

// NewLogNotificationSink creates a notification sink backed by the given logger.
func NewLogNotificationSink(logger *slog.Logger) (*LogNotificationSink, error) {
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}
	return &LogNotificationSink{
		logger: logger.With("component", "notification_sink"),
	}, nil
}

func (s *LogNotificationSink) Send(ctx context.Context, recipient string, text string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	if text == "" {
		return errs.NewValueIsRequiredError("text")
	}

	s.logger.InfoContext(ctx, "notification sent", "recipient", recipient, "text", text)
	return nil
}

var _ ports.NotificationSink = (*LogNotificationSink)(nil)
