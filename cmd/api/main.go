// Package main is the entry point for the travel tracker API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"

	"github.com/pkordes/travel-tracker/internal/config"
	"github.com/pkordes/travel-tracker/internal/geocode"
	"github.com/pkordes/travel-tracker/internal/handler"
	"github.com/pkordes/travel-tracker/internal/metrics"
	"github.com/pkordes/travel-tracker/internal/middleware"
	"github.com/pkordes/travel-tracker/internal/repo"
	"github.com/pkordes/travel-tracker/internal/service"
	"github.com/pkordes/travel-tracker/migrations"
	"github.com/pkordes/travel-tracker/spec"
)

func main() {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	store, closeStore, err := openStore(context.Background(), cfg)
	if err != nil {
		slog.Error("failed to open storage", "backend", cfg.StorageBackend, "error", err)
		os.Exit(1)
	}
	defer closeStore()

	// --- Service ----------------------------------------------------------
	m := metrics.New()
	travel := service.NewTravelService(store, service.Options{
		AutosaveDelay: cfg.AutosaveDelay,
		Logger:        logger,
		Metrics:       m,
	})
	report, err := travel.Load(context.Background())
	if err != nil {
		slog.Error("failed to load travel data", "error", err)
		os.Exit(1)
	}
	slog.Info("travel data loaded",
		"outcome", report.Outcome,
		"fresh", report.Fresh,
		"dropped", report.Dropped,
	)

	// --- Router -----------------------------------------------------------
	// RequestID before the logger so every line carries the ID; Recoverer
	// inside the logger so panics are logged as 500s.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger, m))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Handle("/metrics", m.Handler())
	r.Mount("/", handler.NewServer(travel, geocode.Default(), spec.OpenAPI, logger).Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr, "backend", cfg.StorageBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	// Flush the pending autosave after the last request has finished.
	if err := travel.Close(ctx); err != nil {
		slog.Error("final save failed", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// openStore builds the configured DocumentRepo and returns a func releasing
// its resources.
func openStore(ctx context.Context, cfg config.Config) (repo.DocumentRepo, func(), error) {
	if cfg.StorageBackend == config.BackendFile {
		slog.Info("using file storage", "path", cfg.DataFile)
		return repo.NewFileDocumentRepo(cfg.DataFile), func() {}, nil
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("ping: %w", err)
	}
	slog.Info("database connection established")

	if err := migrate(ctx, pool); err != nil {
		pool.Close()
		return nil, nil, err
	}
	n, err := repo.CountSnapshots(ctx, pool)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}
	slog.Info("snapshot store ready", "snapshots", n, "retention", cfg.SnapshotRetention)
	return repo.NewSnapshotRepo(pool, cfg.SnapshotRetention), pool.Close, nil
}

// migrate applies pending goose migrations through a database/sql view of the pool.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	// The sql.DB keeps no idle connections of its own; the pool owns them.
	db := stdlib.OpenDBFromPool(pool)

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}
	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	for _, res := range results {
		slog.Info("migration applied", "version", res.Source.Version, "duration", res.Duration)
	}
	return nil
}
