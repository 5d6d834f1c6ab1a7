package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"programboard/internal/auth"
	"programboard/internal/config"
	"programboard/internal/database"
	"programboard/internal/database/migration"
	handlers "programboard/internal/http/handler"
	"programboard/internal/http/middleware"
	"programboard/internal/otel"
	"programboard/internal/repository/postgres"
	"programboard/internal/service"
	"programboard/internal/storage"
)

func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := time.UTC

	ctx := context.Background()

	// Tracing first so the DB driver and HTTP layer pick up the provider.
	shutdownTracing, err := otel.Init(ctx, loc)
	if err != nil {
		log.Fatalf("failed to initialize tracing: %v", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			log.Printf("tracing shutdown: %v", err)
		}
	}()

	// PostgreSQL connection (pooled via database/sql, instrumented driver)
	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer db.Close()

	// Schema and default admin seeding are idempotent on startup.
	if err := migration.EnsureMigrated(ctx, db, loc, cfg.Database.Host); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// File storage backend: local disk by default, S3-compatible when configured.
	var store storage.Storage
	switch cfg.Storage.Backend {
	case "s3":
		store, err = storage.NewMinIO(cfg.Storage)
	default:
		store, err = storage.NewLocal(cfg.Storage.Dir, cfg.BaseURL)
	}
	if err != nil {
		log.Fatalf("failed to initialize storage: %v", err)
	}

	tokens, err := auth.NewTokenManager(cfg.Auth.TokenSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)
	if err != nil {
		log.Fatalf("failed to initialize session tokens: %v", err)
	}

	// Repositories and services
	programRepo := postgres.NewProgramPostgres(db)
	userRepo := postgres.NewUserPostgres(db)
	programSvc := service.NewProgramService(store, programRepo, cfg.Storage.Dir)
	authSvc := service.NewAuthService(userRepo, tokens)

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    int(cfg.Upload.MaxSizeBytes) + 1024*1024, // form overhead headroom
	})

	// Metrics registry with the standard process/runtime collectors.
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	promMw, err := middleware.NewPrometheusMiddleware(registry)
	if err != nil {
		log.Fatalf("failed to initialize metrics: %v", err)
	}

	// Global middleware
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(loc))
	app.Use(promMw.Handler())
	app.Use(otelfiber.Middleware())
	app.Use(cors.New())

	handlers.RegisterRoutes(app, db, programSvc, authSvc, tokens, promMw.ObserveUpload, cfg)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))

	// Local backend serves the uploaded files directly.
	if cfg.Storage.Backend != "s3" {
		app.Static("/uploads", cfg.Storage.Dir)
	}

	// Graceful shutdown on SIGINT/SIGTERM so in-flight uploads finish.
	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
