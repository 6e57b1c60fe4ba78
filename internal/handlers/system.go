package handlers

import (
	"net/http"

	"bookmystay-backend/internal/repository"
)

type SystemHandler struct {
	store repository.FeedbackStore
}

func NewSystemHandler(store repository.FeedbackStore) *SystemHandler {
	return &SystemHandler{store: store}
}

// --- GET / ---

func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"message":  "BookMyStay API is running! ✅",
		"database": h.store.Backend(),
	})
}

// --- GET /api/health ---

// Health always reports the service as healthy; the store ping only feeds the
// database field.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	database := "connected"
	if err := h.store.Ping(r.Context()); err != nil {
		database = "disconnected"
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"status":   "healthy",
		"backend":  h.store.Backend(),
		"database": database,
	})
}
