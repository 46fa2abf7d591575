package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/nexuslabs/summary-engine/internal/adapter/handler"
	"github.com/nexuslabs/summary-engine/internal/adapter/repository"
	"github.com/nexuslabs/summary-engine/internal/infrastructure/cache"
	"github.com/nexuslabs/summary-engine/internal/infrastructure/database"
	"github.com/nexuslabs/summary-engine/internal/infrastructure/events"
	summaryuse "github.com/nexuslabs/summary-engine/internal/usecase/summary"
	"github.com/nexuslabs/summary-engine/pkg/config"
	"github.com/nexuslabs/summary-engine/pkg/llm"
	"github.com/nexuslabs/summary-engine/pkg/logger"
	pkgvalidator "github.com/nexuslabs/summary-engine/pkg/validator"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zlog, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zlog.Sync() //nolint:errcheck

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize Database
	zlog.Info("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer database.CloseDB(db)

	// Production deployments manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			zlog.Fatal("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		zlog.Info("🔄 Running schema migrations (development only)...")
		if err := database.AutoMigrate(db); err != nil {
			zlog.Fatal("Failed to run migrations", zap.Error(err))
		}
	}

	// Initialize cache, falling back to an in-process store so the pipeline
	// still runs when Redis is down
	zlog.Info("📦 Connecting to Redis...")
	var cacheStore summaryuse.CacheStore
	redisStore, err := cache.NewRedisStore(cfg)
	if err != nil {
		zlog.Warn("⚠️ Redis unavailable, using in-memory cache", zap.Error(err))
		memStore := cache.NewMemoryStore()
		defer memStore.Close() //nolint:errcheck
		cacheStore = memStore
	} else {
		defer redisStore.Close() //nolint:errcheck
		cacheStore = redisStore
	}

	// Initialize event publisher
	zlog.Info("📡 Connecting to NATS...")
	var publisher summaryuse.EventPublisher
	natsPublisher, err := events.NewPublisher(cfg, zlog)
	if err != nil {
		zlog.Warn("⚠️ NATS unavailable, summary events disabled", zap.Error(err))
		publisher = &events.NoopPublisher{Logger: zlog}
	} else {
		defer natsPublisher.Close()
		publisher = natsPublisher
	}

	// Initialize summarizer chain: OpenAI first, local model second,
	// placeholder text as the floor
	zlog.Info("🤖 Initializing summarizers...")
	summarizer := llm.NewFallbackChain(zlog,
		llm.NewOpenAIClient(&cfg.OpenAI, cfg.Summary.MaxInputLength),
		llm.NewLocalClient(&cfg.Local),
	)

	// Initialize repositories and service
	meetingRepo := repository.NewMeetingRepository(db)
	summaryRepo := repository.NewSummaryRepository(db)
	summaryService := summaryuse.NewService(meetingRepo, summaryRepo, cacheStore, publisher, summarizer, cfg, zlog)

	components := map[string]bool{
		"openai":      cfg.OpenAI.APIKey != "",
		"local_model": cfg.Local.URL != "",
		"events":      natsPublisher != nil,
	}
	summaryController := handler.NewSummaryController(summaryService, zlog, components)
	handler.RegisterRoutes(e, summaryController)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		zlog.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zlog.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zlog.Fatal("❌ Server forced to shutdown", zap.Error(err))
	}

	zlog.Info("✅ Server stopped gracefully")
}
