package router

import (
	"net/http"

	"bookmystay-backend/internal/handlers"
	"bookmystay-backend/internal/logger"
	"bookmystay-backend/internal/metrics"
	"bookmystay-backend/internal/notify"
	"bookmystay-backend/internal/repository"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Deps struct {
	Store    repository.FeedbackStore
	Notifier notify.Notifier
	Metrics  *metrics.Metrics
	Auth     *handlers.AuthHandler
}

// New mounts every route on a chi router. Routes match method and path
// exactly; anything else gets a JSON 404 or 405.
func New(deps Deps) http.Handler {
	if deps.Notifier == nil {
		deps.Notifier = notify.NewLogNotifier()
	}
	if deps.Metrics == nil {
		deps.Metrics = metrics.New()
	}
	if deps.Auth == nil {
		deps.Auth = handlers.NewAuthHandler(nil)
	}

	systemHandler := handlers.NewSystemHandler(deps.Store)
	feedbackHandler := handlers.NewFeedbackHandler(deps.Store, deps.Notifier, deps.Metrics)

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logger.WithLoggingHTTPMiddleware)
	r.Use(middleware.Recoverer)
	r.Use(deps.Metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "HEAD", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		MaxAge:         300,
	}))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/", systemHandler.Root)
	r.Get("/api/health", systemHandler.Health)
	r.Method(http.MethodGet, "/metrics", deps.Metrics.Handler())

	r.Post("/api/feedback", feedbackHandler.SubmitFeedback)
	r.Get("/api/feedback", feedbackHandler.ListFeedback)

	// Stub auth: no credential is checked and no route requires the token.
	r.Post("/api/auth/register", deps.Auth.Register)
	r.Post("/api/auth/login", deps.Auth.Login)

	return r
}
