// Package logger holds the process-wide zap logger and the request logging
// middleware mounted on the router.
package logger

import (
	"errors"
	"net/http"
	"os"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Log is usable before Init; it discards everything until then.
var Log = zap.NewNop().Sugar()

// Init replaces Log with a development-style logger at the given level.
func Init(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return err
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = lvl
	zl, err := cfg.Build()
	if err != nil {
		return err
	}
	Log = zl.Sugar()

	return nil
}

// Sync flushes buffered entries. Syncing a terminal fails on some platforms;
// that is not reported.
func Sync() error {
	if err := Log.Sync(); err != nil && !errors.Is(err, os.ErrInvalid) && !errors.Is(err, syscall.ENOTTY) {
		return err
	}

	return nil
}

// WithLoggingHTTPMiddleware logs one line per request once the handler returns.
func WithLoggingHTTPMiddleware(h http.Handler) http.Handler {
	logFn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		h.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		Log.Infow("request",
			"request_id", middleware.GetReqID(r.Context()),
			"uri", r.RequestURI,
			"method", r.Method,
			"status", status,
			"duration", time.Since(start),
			"size", ww.BytesWritten(),
		)
	}

	return http.HandlerFunc(logFn)
}
