package handlers

import (
	"context"
	"errors"
	"net/http"
	"reflect"
	"strings"
	"time"

	"bookmystay-backend/internal/apperrors"
	"bookmystay-backend/internal/logger"
	"bookmystay-backend/internal/metrics"
	"bookmystay-backend/internal/models"
	"bookmystay-backend/internal/notify"
	"bookmystay-backend/internal/repository"

	validator "github.com/go-playground/validator/v10"
)

const notifyTimeout = 30 * time.Second

type FeedbackHandler struct {
	store    repository.FeedbackStore
	notifier notify.Notifier
	metrics  *metrics.Metrics
	validate *validator.Validate
}

func NewFeedbackHandler(store repository.FeedbackStore, notifier notify.Notifier, m *metrics.Metrics) *FeedbackHandler {
	if notifier == nil {
		notifier = notify.NewLogNotifier()
	}
	if m == nil {
		m = metrics.New()
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	})

	return &FeedbackHandler{
		store:    store,
		notifier: notifier,
		metrics:  m,
		validate: validate,
	}
}

// --- POST /api/feedback ---

func (h *FeedbackHandler) SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		h.metrics.FeedbackSubmitted(h.store.Backend(), metrics.ResultRejected)
		writeError(w, err)
		return
	}

	feedback, err := h.feedbackFromBody(body)
	if err != nil {
		h.metrics.FeedbackSubmitted(h.store.Backend(), metrics.ResultRejected)
		writeError(w, err)
		return
	}

	if err := h.store.Append(r.Context(), feedback); err != nil {
		logger.Log.Errorw("❌ Error saving feedback", "backend", h.store.Backend(), "error", err)
		h.metrics.FeedbackSubmitted(h.store.Backend(), metrics.ResultFailed)
		writeError(w, apperrors.Persistence(err))
		return
	}

	h.metrics.FeedbackSubmitted(h.store.Backend(), metrics.ResultStored)
	logger.Log.Infow("✅ Feedback saved", "name", feedback.Name, "email", feedback.Email, "mobile", feedback.Mobile)

	// Notify in the background; the submission already succeeded.
	go func(message string) {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()
		if err := h.notifier.Publish(ctx, message); err != nil {
			logger.Log.Warnw("failed to publish feedback notification", "error", err)
		}
	}(notify.FormatFeedback(feedback))

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"success": true,
		"message": "✅ Feedback submitted successfully!",
		"data":    feedback,
	})
}

func (h *FeedbackHandler) feedbackFromBody(body map[string]interface{}) (*models.Feedback, error) {
	feedback := &models.Feedback{}
	feedback.Name, _ = fieldText(body, "name")
	feedback.Email, _ = fieldText(body, "email")
	feedback.Mobile, _ = fieldText(body, "mobile")
	feedback.Message, _ = fieldText(body, "message")

	if err := h.validate.Struct(feedback); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return nil, err
		}
		missing := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			missing = append(missing, fe.Field())
		}
		return nil, apperrors.Validation("All fields are required", missing...)
	}
	return feedback, nil
}

// --- GET /api/feedback ---

func (h *FeedbackHandler) ListFeedback(w http.ResponseWriter, r *http.Request) {
	listing, err := h.store.List(r.Context())
	if err != nil {
		logger.Log.Errorw("❌ Error reading feedback", "backend", h.store.Backend(), "error", err)
		writeError(w, apperrors.Persistence(err))
		return
	}

	switch {
	case listing.Records != nil:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Feedbacks retrieved",
			"count":   len(listing.Records),
			"data":    listing.Records,
		})
	case listing.Missing:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "No feedbacks yet",
		})
	default:
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"message": "Feedbacks retrieved",
			"file":    listing.Location,
			"content": listing.Content,
		})
	}
}
