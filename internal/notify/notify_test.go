package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"bookmystay-backend/internal/models"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFeedback(t *testing.T) {
	msg := FormatFeedback(&models.Feedback{
		Name:      "A",
		Email:     "a@x.com",
		Mobile:    "123",
		Message:   "hi",
		CreatedAt: time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC),
	})

	assert.Contains(t, msg, "From: A <a@x.com>")
	assert.Contains(t, msg, "Mobile: 123")
	assert.Contains(t, msg, "At: 2026-10-16 08:00:00 UTC")
	assert.Contains(t, msg, "Message: hi")
}

func TestLogNotifierNeverFails(t *testing.T) {
	assert.NoError(t, NewLogNotifier().Publish(context.Background(), "hello"))
}

func newResendServer(t *testing.T, status int, got *map[string]any) *resend.Client {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test", r.Header.Get("Authorization"))
		if got != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(got))
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status == http.StatusOK {
			_, _ = w.Write([]byte(`{"id":"email_123"}`))
			return
		}
		_, _ = w.Write([]byte(`{"statusCode":422,"name":"validation_error","message":"bad from"}`))
	}))
	t.Cleanup(srv.Close)

	client := resend.NewClient("re_test")
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base
	return client
}

func TestEmailNotifierSends(t *testing.T) {
	var body map[string]any
	client := newResendServer(t, http.StatusOK, &body)

	n := NewEmailNotifier(client, "noreply@example.com", "owner@example.com")
	require.NoError(t, n.Publish(context.Background(), "line one\n<b>line two</b>"))

	assert.Equal(t, "noreply@example.com", body["from"])
	assert.Equal(t, []any{"owner@example.com"}, body["to"])
	assert.Equal(t, emailSubject, body["subject"])
	assert.Equal(t, "line one\n<b>line two</b>", body["text"])
	assert.Contains(t, body["html"], "line one<br>&lt;b&gt;line two&lt;/b&gt;")

	headers, ok := body["headers"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, headers["X-Entity-Ref-ID"], 36)
}

func TestEmailNotifierReportsProviderError(t *testing.T) {
	client := newResendServer(t, http.StatusUnprocessableEntity, nil)

	n := NewEmailNotifier(client, "noreply@example.com", "owner@example.com")
	err := n.Publish(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send feedback email")
}
