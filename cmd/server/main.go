package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookmystay-backend/internal/config"
	"bookmystay-backend/internal/database"
	"bookmystay-backend/internal/logger"
	"bookmystay-backend/internal/metrics"
	"bookmystay-backend/internal/notify"
	"bookmystay-backend/internal/repository"
	"bookmystay-backend/internal/router"

	"github.com/resend/resend-go/v2"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg); err != nil {
		logger.Log.Errorw("❌ Server stopped", "error", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			logger.Log.Warnw("failed to close feedback store", "error", err)
		}
	}()

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.New(router.Deps{
			Store:    store,
			Notifier: newNotifier(cfg),
			Metrics:  metrics.New(),
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Log.Infow("🚀 BookMyStay backend starting",
			"server", fmt.Sprintf("http://localhost:%d", cfg.Port),
			"health", fmt.Sprintf("http://localhost:%d/api/health", cfg.Port),
			"backend", store.Backend(),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Log.Info("Received interrupt signal, shutting down...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore builds the configured backend. Failing to open it is fatal.
func openStore(ctx context.Context, cfg *config.Config) (repository.FeedbackStore, error) {
	switch cfg.StorageBackend {
	case config.BackendMongoDB:
		db, err := database.Connect(ctx, cfg.MongoURI, cfg.DBName, cfg.DBConnectionTimeout)
		if err != nil {
			return nil, err
		}
		repo := repository.NewMongoFeedbackRepo(db)

		indexCtx, cancel := context.WithTimeout(ctx, cfg.DBConnectionTimeout)
		defer cancel()
		if err := repo.EnsureIndexes(indexCtx); err != nil {
			logger.Log.Warnw("⚠️  failed to create feedback indexes", "error", err)
		}
		return repo, nil

	default:
		repo, err := repository.NewTextFeedbackRepo(cfg.FeedbackFile)
		if err != nil {
			return nil, err
		}
		logger.Log.Infow("📝 Feedbacks saved to file", "path", repo.Path())
		return repo, nil
	}
}

func newNotifier(cfg *config.Config) notify.Notifier {
	if !cfg.EmailNotificationsEnabled() {
		return notify.NewLogNotifier()
	}
	logger.Log.Infow("Feedback notifications go out by email", "to", cfg.NotifyTo)
	return notify.NewEmailNotifier(resend.NewClient(cfg.ResendAPIKey), cfg.NotifyFrom, cfg.NotifyTo)
}
