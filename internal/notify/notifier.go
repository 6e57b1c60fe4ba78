package notify

import (
	"context"
	"fmt"
	"strings"

	"bookmystay-backend/internal/models"
)

// Notifier publishes a short text to whoever watches incoming feedback.
type Notifier interface {
	Publish(ctx context.Context, message string) error
}

// FormatFeedback renders the message published for one stored submission.
func FormatFeedback(feedback *models.Feedback) string {
	var b strings.Builder
	b.WriteString("📝 *New Feedback Received*\n")
	fmt.Fprintf(&b, "From: %s <%s>\n", feedback.Name, feedback.Email)
	fmt.Fprintf(&b, "Mobile: %s\n", feedback.Mobile)
	if !feedback.CreatedAt.IsZero() {
		fmt.Fprintf(&b, "At: %s\n", feedback.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	}
	b.WriteString("Message: " + feedback.Message)
	return b.String()
}
