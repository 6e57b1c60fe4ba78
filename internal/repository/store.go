package repository

import (
	"context"

	"bookmystay-backend/internal/models"
)

// FeedbackStore is the persistence backend behind the feedback endpoints.
// Exactly one implementation is active per process. Every error returned is
// an apperrors PersistenceError.
type FeedbackStore interface {
	// Append stores feedback and fills in whatever the backend assigns
	// (timestamp, id).
	Append(ctx context.Context, feedback *models.Feedback) error
	List(ctx context.Context) (*models.FeedbackListing, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
	// Backend names the strategy, e.g. for health output.
	Backend() string
}
