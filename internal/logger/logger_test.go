package logger

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestInitRejectsUnknownLevel(t *testing.T) {
	prev := Log
	t.Cleanup(func() { Log = prev })

	assert.Error(t, Init("loud"))
	require.NoError(t, Init("debug"))
	assert.NotNil(t, Log)
}

func TestLoggingMiddlewareRecordsStatusAndSize(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := Log
	Log = zap.New(core).Sugar()
	t.Cleanup(func() { Log = prev })

	h := WithLoggingHTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte("hello"))
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/feedback", nil))

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/api/feedback", fields["uri"])
	assert.Equal(t, http.MethodPost, fields["method"])
	assert.EqualValues(t, http.StatusCreated, fields["status"])
	assert.EqualValues(t, 5, fields["size"])
}

func TestLoggingMiddlewareDefaultsToOK(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	prev := Log
	Log = zap.New(core).Sugar()
	t.Cleanup(func() { Log = prev })

	h := WithLoggingHTTPMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, 1, logs.Len())
	assert.EqualValues(t, http.StatusOK, logs.All()[0].ContextMap()["status"])
}
