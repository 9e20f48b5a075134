package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/stellarinsights/stellarinsights/api/internal/config"
	"github.com/stellarinsights/stellarinsights/api/internal/middleware"
	"github.com/stellarinsights/stellarinsights/api/internal/pkg/database"
	"github.com/stellarinsights/stellarinsights/api/internal/pkg/logger"
)

const appVersion = "0.1.0"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Init(logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format}); err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := logger.Log
	defer log.Sync()

	// Initialize Sentry if enabled
	sentryEnabled := cfg.Sentry.Enabled && cfg.Sentry.DSN != ""
	if sentryEnabled {
		sentryConfig := middleware.SentryConfig{
			DSN:              cfg.Sentry.DSN,
			Environment:      cfg.Sentry.Environment,
			Release:          cfg.Sentry.Release,
			Debug:            cfg.Sentry.Debug,
			SampleRate:       cfg.Sentry.SampleRate,
			TracesSampleRate: cfg.Sentry.TracesSampleRate,
			FlushTimeout:     5 * time.Second,
		}
		if sentryConfig.Release == "" {
			sentryConfig.Release = "stellar-insights@" + appVersion
		}
		if sentryConfig.Environment == "" {
			sentryConfig.Environment = cfg.Server.Env
		}

		if err := middleware.InitSentry(sentryConfig); err != nil {
			log.Error("failed to initialize Sentry", zap.Error(err))
			sentryEnabled = false
		} else {
			log.Info("Sentry initialized",
				zap.String("environment", sentryConfig.Environment),
				zap.String("release", sentryConfig.Release),
			)
			defer middleware.FlushSentry(5 * time.Second)
		}
	}

	// Apply schema migrations before serving traffic
	if err := database.Migrate(context.Background(), cfg.Postgres); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Initialize dependencies
	deps, err := initDependencies(cfg, log)
	if err != nil {
		log.Fatal("failed to initialize dependencies", zap.Error(err))
	}
	defer deps.Close()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:               "Stellar Insights API",
		ReadTimeout:           30 * time.Second,
		WriteTimeout:          30 * time.Second,
		IdleTimeout:           120 * time.Second,
		DisableStartupMessage: cfg.IsProduction(),
		ErrorHandler:          errorHandler(log, sentryEnabled),
	})

	// Apply global middleware
	app.Use(middleware.RequestID())

	loggerMiddleware := middleware.NewLoggerMiddleware(middleware.LoggerConfig{
		Logger: log,
		Skip:   middleware.HealthSkipper,
	})
	app.Use(loggerMiddleware.Handler())

	app.Use(middleware.RecoverWithSentry(log, sentryEnabled))

	corsConfig := middleware.DefaultCORSConfig()
	if len(cfg.CORS.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
	}
	app.Use(middleware.NewCORSMiddleware(corsConfig).Handler())

	metricsMiddleware := middleware.NewMetricsMiddleware(middleware.DefaultMetricsConfig())
	app.Use(metricsMiddleware.Handler())

	// Register routes
	registerRoutes(app, deps)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
		log.Info("starting server", zap.String("addr", addr))
		if err := app.Listen(addr); err != nil {
			log.Fatal("server failed", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	}

	log.Info("server stopped")
}

// errorHandler creates a custom error handler
func errorHandler(log *zap.Logger, sentryEnabled bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Default to 500 Internal Server Error
		code := fiber.StatusInternalServerError
		message := "Internal Server Error"

		// Check if it's a Fiber error
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			message = e.Message
		}

		log.Error("request error",
			zap.Int("status", code),
			zap.String("error", err.Error()),
			zap.String("path", c.Path()),
			zap.String("method", c.Method()),
		)

		// Report to Sentry for 5xx errors
		if sentryEnabled && code >= 500 {
			middleware.CaptureError(c, err)
		}

		return c.Status(code).JSON(fiber.Map{
			"error":   message,
			"message": message,
		})
	}
}
