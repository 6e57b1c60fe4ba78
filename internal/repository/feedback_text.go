package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bookmystay-backend/internal/apperrors"
	"bookmystay-backend/internal/models"
)

const (
	TextBackendName = "text"

	logSeparator = "================================================================================"
	// timestampLayout renders like a US locale string: 10/16/2026, 8:45:03 PM
	timestampLayout = "1/2/2006, 3:04:05 PM"
)

var logBanner = logSeparator + "\n" +
	"                    BOOKMYSTAY FEEDBACK STORAGE\n" +
	logSeparator + "\n\n"

// TextFeedbackRepo appends human-readable blocks to a single log file. Reads
// return the file verbatim. Appends are single write calls in append mode;
// concurrent writers are not coordinated.
type TextFeedbackRepo struct {
	path string
	now  func() time.Time
}

type TextOption func(*TextFeedbackRepo)

func WithTextClock(now func() time.Time) TextOption {
	return func(r *TextFeedbackRepo) {
		r.now = now
	}
}

// NewTextFeedbackRepo makes sure the log exists, writing the banner only when
// the file is created. An existing log is never truncated.
func NewTextFeedbackRepo(path string, opts ...TextOption) (*TextFeedbackRepo, error) {
	r := &TextFeedbackRepo{
		path: path,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.ensureFile(); err != nil {
		return nil, apperrors.Persistence(err)
	}
	return r, nil
}

func (r *TextFeedbackRepo) ensureFile() error {
	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	f, err := os.OpenFile(r.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if errors.Is(err, fs.ErrExist) {
		return nil
	}
	if err != nil {
		return err
	}

	if _, err := f.WriteString(logBanner); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Path is where the log lives.
func (r *TextFeedbackRepo) Path() string {
	return r.path
}

func (r *TextFeedbackRepo) Backend() string {
	return TextBackendName
}

func (r *TextFeedbackRepo) Append(_ context.Context, feedback *models.Feedback) error {
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = r.now()
	}

	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0o644)
	if err != nil {
		return apperrors.Persistence(err)
	}

	if _, err := f.WriteString(formatEntry(feedback)); err != nil {
		_ = f.Close()
		return apperrors.Persistence(err)
	}
	return apperrors.Persistence(f.Close())
}

func (r *TextFeedbackRepo) List(_ context.Context) (*models.FeedbackListing, error) {
	content, err := os.ReadFile(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		return &models.FeedbackListing{Location: r.path, Missing: true}, nil
	}
	if err != nil {
		return nil, apperrors.Persistence(err)
	}

	return &models.FeedbackListing{
		Content:  string(content),
		Location: r.path,
	}, nil
}

func (r *TextFeedbackRepo) Ping(_ context.Context) error {
	if _, err := os.Stat(r.path); err != nil {
		return apperrors.Persistence(err)
	}
	return nil
}

func (r *TextFeedbackRepo) Close(_ context.Context) error {
	return nil
}

func formatEntry(feedback *models.Feedback) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(logSeparator + "\n")
	fmt.Fprintf(&b, "Date & Time: %s\n", feedback.CreatedAt.Format(timestampLayout))
	fmt.Fprintf(&b, "Name: %s\n", feedback.Name)
	fmt.Fprintf(&b, "Email: %s\n", feedback.Email)
	fmt.Fprintf(&b, "Mobile: %s\n", feedback.Mobile)
	fmt.Fprintf(&b, "Message: %s\n", feedback.Message)
	b.WriteString(logSeparator + "\n\n")
	return b.String()
}
