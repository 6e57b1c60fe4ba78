package handlers

import (
	"net/http"
	"strconv"
	"time"

	"bookmystay-backend/internal/models"
)

// TokenPrefix starts every stub token. The rest is the wall clock in
// milliseconds, so two calls in the same millisecond get the same token.
const TokenPrefix = "demo-token-"

const demoUserName = "Demo User"

// AuthHandler is a stub: it checks no credential, stores nothing and issues
// tokens no route ever verifies. Feedback stays anonymous either way.
type AuthHandler struct {
	now func() time.Time
}

func NewAuthHandler(now func() time.Time) *AuthHandler {
	if now == nil {
		now = time.Now
	}
	return &AuthHandler{now: now}
}

func (h *AuthHandler) newToken() string {
	return TokenPrefix + strconv.FormatInt(h.now().UnixMilli(), 10)
}

// --- POST /api/auth/register ---

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	name, _ := fieldText(body, "name")
	email, _ := fieldText(body, "email")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "User registered successfully",
		"user":    models.UserSession{Name: name, Email: email},
		"token":   h.newToken(),
	})
}

// --- POST /api/auth/login ---

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		writeError(w, err)
		return
	}

	email, _ := fieldText(body, "email")

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Login successful",
		"user":    models.UserSession{Name: demoUserName, Email: email},
		"token":   h.newToken(),
	})
}
