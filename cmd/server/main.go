package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/iudanet/umkmhub/internal/config"
	"github.com/iudanet/umkmhub/internal/server/cache"
	"github.com/iudanet/umkmhub/internal/server/events"
	"github.com/iudanet/umkmhub/internal/server/handlers"
	"github.com/iudanet/umkmhub/internal/server/jwt"
	"github.com/iudanet/umkmhub/internal/server/mail"
	"github.com/iudanet/umkmhub/internal/server/middleware"
	"github.com/iudanet/umkmhub/internal/server/objects"
	"github.com/iudanet/umkmhub/internal/server/router"
	"github.com/iudanet/umkmhub/internal/server/storage"
	"github.com/iudanet/umkmhub/internal/server/storage/postgres"
	"github.com/iudanet/umkmhub/internal/server/storage/sqlite"
	"github.com/iudanet/umkmhub/internal/server/sweep"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// gatewayStore объединяет все хранилища шлюза; реализуется sqlite и postgres
type gatewayStore interface {
	storage.UserStorage
	storage.TokenStorage
	storage.ResetStorage
	storage.RecordStorage
	handlers.Pinger
	Close() error
}

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.LoadServer(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// Show version and exit if requested
	if cfg.ShowVersion {
		printVersion()
		return 0
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := serve(ctx, cfg, logger); err != nil {
		logger.Error("Server failed", "error", err)
		return 1
	}

	return 0
}

func serve(ctx context.Context, cfg *config.Server, logger *slog.Logger) error {
	logger.Info("UMKM Hub gateway starting",
		"version", Version,
		"addr", cfg.Addr,
		"db_driver", cfg.DB.Driver,
		"objects", cfg.Objects.Backend,
	)

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("Failed to close storage", "error", err)
		}
	}()

	var records storage.RecordStorage = store

	if cfg.Redis.Addr != "" {
		client, err := cache.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			return err
		}
		defer client.Close()

		records = cache.NewRecords(records, client, cfg.Redis.TTL, logger)
		logger.Info("Record list cache enabled", "redis", cfg.Redis.Addr, "ttl", cfg.Redis.TTL)
	}

	publisher, err := openPublisher(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Warn("Failed to close event publisher", "error", err)
		}
	}()
	records = events.NewRecords(records, publisher, logger)

	objectStore, err := openObjects(ctx, cfg)
	if err != nil {
		return err
	}

	tokens := jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTTL)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, 5*time.Minute, logger)
	defer limiter.Stop()

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		metrics = middleware.NewMetrics(reg)
	}

	handler := router.New(router.Deps{
		Logger: logger,
		JWT:    tokens,
		Auth: handlers.NewAuthHandler(logger, store, store, store, tokens, mail.NewLogMailer(logger), handlers.AuthConfig{
			RefreshTTL: cfg.JWT.RefreshTTL,
			ResetTTL:   cfg.JWT.ResetTTL,
		}),
		Records:     handlers.NewRecordsHandler(logger, records),
		Objects:     handlers.NewObjectsHandler(logger, objectStore, cfg.Objects.MaxUploadSize, cfg.Objects.PublicBaseURL),
		Health:      handlers.NewHealthHandler(logger, store, Version),
		Metrics:     metrics,
		RateLimiter: limiter,
	})

	go sweep.New(store, store, cfg.SweepInterval, logger).Run(ctx)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errC := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", "addr", cfg.Addr)
		errC <- srv.ListenAndServe()
	}()

	select {
	case err := <-errC:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down", "timeout", cfg.ShutdownTimeout)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("Server stopped")
	return nil
}

func openStore(ctx context.Context, cfg *config.Server) (gatewayStore, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		s, err := postgres.New(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres: %w", err)
		}
		return s, nil
	default:
		s, err := sqlite.New(ctx, cfg.DB.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite: %w", err)
		}
		return s, nil
	}
}

func openObjects(ctx context.Context, cfg *config.Server) (objects.Store, error) {
	if cfg.Objects.Backend == config.ObjectsS3 {
		s, err := objects.NewS3Store(ctx, objects.S3Config{
			Region:    cfg.Objects.S3.Region,
			Bucket:    cfg.Objects.S3.Bucket,
			Endpoint:  cfg.Objects.S3.Endpoint,
			AccessKey: cfg.Objects.S3.AccessKey,
			SecretKey: cfg.Objects.S3.SecretKey,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to init s3 objects: %w", err)
		}
		return s, nil
	}

	s, err := objects.NewFSStore(cfg.Objects.Root)
	if err != nil {
		return nil, fmt.Errorf("failed to init fs objects: %w", err)
	}
	return s, nil
}

func openPublisher(cfg *config.Server) (events.Publisher, error) {
	if cfg.AMQP.URL == "" {
		return events.Noop{}, nil
	}

	p, err := events.NewAMQPPublisher(cfg.AMQP.URL, cfg.AMQP.Queue)
	if err != nil {
		return nil, fmt.Errorf("failed to connect amqp: %w", err)
	}
	return p, nil
}

func printVersion() {
	fmt.Printf("UMKM Hub Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
