package notify

import (
	"context"

	"bookmystay-backend/internal/logger"
)

// LogNotifier writes notifications to the process log. It is the default when
// no mail provider is configured.
type LogNotifier struct{}

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Publish(_ context.Context, message string) error {
	logger.Log.Infow("📨 Feedback notification", "message", message)
	return nil
}
