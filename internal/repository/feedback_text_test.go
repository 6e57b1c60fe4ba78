package repository

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"bookmystay-backend/internal/apperrors"
	"bookmystay-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedTime = time.Date(2026, time.October, 16, 20, 45, 3, 0, time.UTC)

func fixedClock() time.Time { return fixedTime }

func newTestTextRepo(t *testing.T) (*TextFeedbackRepo, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "feedbacks.txt")
	repo, err := NewTextFeedbackRepo(path, WithTextClock(fixedClock))
	require.NoError(t, err)
	return repo, path
}

func TestNewTextFeedbackRepoWritesBanner(t *testing.T) {
	_, path := newTestTextRepo(t)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, logBanner, string(content))
	assert.True(t, strings.HasPrefix(string(content), strings.Repeat("=", 80)+"\n"))
}

func TestNewTextFeedbackRepoKeepsExistingLog(t *testing.T) {
	repo, path := newTestTextRepo(t)
	require.NoError(t, repo.Append(context.Background(), &models.Feedback{
		Name: "A", Email: "a@x.com", Mobile: "123", Message: "hi",
	}))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	_, err = NewTextFeedbackRepo(path)
	require.NoError(t, err)

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(before), string(after))
}

func TestNewTextFeedbackRepoCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "nested", "feedbacks.txt")
	repo, err := NewTextFeedbackRepo(path)
	require.NoError(t, err)
	assert.Equal(t, path, repo.Path())
	assert.FileExists(t, path)
}

func TestAppendWritesBlock(t *testing.T) {
	repo, path := newTestTextRepo(t)

	fb := &models.Feedback{Name: "A", Email: "a@x.com", Mobile: "123", Message: "hi"}
	require.NoError(t, repo.Append(context.Background(), fb))
	assert.Equal(t, fixedTime, fb.CreatedAt)
	assert.Nil(t, fb.ID)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	sep := strings.Repeat("=", 80)
	expected := logBanner +
		"\n" + sep + "\n" +
		"Date & Time: 10/16/2026, 8:45:03 PM\n" +
		"Name: A\n" +
		"Email: a@x.com\n" +
		"Mobile: 123\n" +
		"Message: hi\n" +
		sep + "\n\n"
	assert.Equal(t, expected, string(content))
}

func TestAppendKeepsProvidedTimestamp(t *testing.T) {
	repo, _ := newTestTextRepo(t)
	at := time.Date(2025, time.January, 2, 9, 5, 0, 0, time.UTC)

	fb := &models.Feedback{Name: "A", Email: "e", Mobile: "m", Message: "x", CreatedAt: at}
	require.NoError(t, repo.Append(context.Background(), fb))

	listing, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Contains(t, listing.Content, "Date & Time: 1/2/2025, 9:05:00 AM\n")
}

func TestListReturnsContentVerbatim(t *testing.T) {
	repo, path := newTestTextRepo(t)
	ctx := context.Background()

	for _, name := range []string{"first", "second"} {
		require.NoError(t, repo.Append(ctx, &models.Feedback{
			Name: name, Email: "e", Mobile: "m", Message: "msg",
		}))
	}

	listing, err := repo.List(ctx)
	require.NoError(t, err)
	assert.False(t, listing.Missing)
	assert.Equal(t, path, listing.Location)
	assert.Nil(t, listing.Records)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, string(raw), listing.Content)
	assert.Less(t, strings.Index(listing.Content, "Name: first"), strings.Index(listing.Content, "Name: second"))

	again, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, listing, again)
}

func TestListMissingFile(t *testing.T) {
	repo, path := newTestTextRepo(t)
	require.NoError(t, os.Remove(path))

	listing, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.True(t, listing.Missing)
	assert.Empty(t, listing.Content)

	assert.True(t, apperrors.Is(repo.Ping(context.Background()), apperrors.PersistenceError))
}

func TestAppendFailureIsPersistenceError(t *testing.T) {
	dir := t.TempDir()
	repo, err := NewTextFeedbackRepo(filepath.Join(dir, "feedbacks.txt"))
	require.NoError(t, err)

	// A directory where the file should be makes the append fail.
	require.NoError(t, os.Remove(repo.Path()))
	require.NoError(t, os.Mkdir(repo.Path(), 0o755))

	err = repo.Append(context.Background(), &models.Feedback{Name: "A", Email: "e", Mobile: "m", Message: "x"})
	require.Error(t, err)

	appErr, ok := apperrors.As(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.PersistenceError, appErr.Type)
	assert.True(t, strings.HasPrefix(appErr.Message, "Error: "))

	_, err = repo.List(context.Background())
	assert.True(t, apperrors.Is(err, apperrors.PersistenceError))
}

func TestTextRepoPingAndClose(t *testing.T) {
	repo, _ := newTestTextRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
	assert.NoError(t, repo.Close(context.Background()))
	assert.Equal(t, TextBackendName, repo.Backend())
}
