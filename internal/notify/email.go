package notify

import (
	"context"
	"fmt"
	"html"
	"strings"

	"bookmystay-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/resend/resend-go/v2"
)

const emailSubject = "New BookMyStay feedback"

// EmailNotifier mails every notification through Resend.
type EmailNotifier struct {
	client *resend.Client
	from   string
	to     []string
}

func NewEmailNotifier(client *resend.Client, from, to string) *EmailNotifier {
	return &EmailNotifier{
		client: client,
		from:   from,
		to:     []string{to},
	}
}

func (n *EmailNotifier) Publish(ctx context.Context, message string) error {
	params := &resend.SendEmailRequest{
		From:    n.from,
		To:      n.to,
		Subject: emailSubject,
		Text:    message,
		Html:    renderHTML(message),
		// Unique per mail so clients do not collapse them into one thread.
		Headers: map[string]string{"X-Entity-Ref-ID": uuid.NewString()},
	}

	sent, err := n.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to send feedback email: %w", err)
	}
	logger.Log.Infow("📧 Feedback email sent", "id", sent.Id)
	return nil
}

func renderHTML(message string) string {
	lines := strings.Split(html.EscapeString(message), "\n")
	return `<div style="font-family: sans-serif; max-width: 480px; margin: 0 auto; padding: 24px;">` +
		strings.Join(lines, "<br>") +
		`</div>`
}
