package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LoggerConfig configures the logger middleware
type LoggerConfig struct {
	// Logger instance
	Logger *zap.Logger
	// Skip function
	Skip func(*fiber.Ctx) bool
}

// DefaultLoggerConfig returns default logger config
func DefaultLoggerConfig(logger *zap.Logger) LoggerConfig {
	return LoggerConfig{
		Logger: logger,
		Skip:   nil,
	}
}

// LoggerMiddleware creates a request logging middleware
type LoggerMiddleware struct {
	config LoggerConfig
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(config LoggerConfig) *LoggerMiddleware {
	return &LoggerMiddleware{
		config: config,
	}
}

// Handler returns the logger handler
func (m *LoggerMiddleware) Handler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.config.Skip != nil && m.config.Skip(c) {
			return c.Next()
		}

		start := time.Now()

		err := c.Next()

		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("request_id", GetRequestID(c)),
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", latency),
			zap.String("ip", c.IP()),
			zap.String("user_agent", c.Get("User-Agent")),
		}

		if err != nil {
			fields = append(fields, zap.Error(err))
		}

		// Log based on status code
		status := c.Response().StatusCode()
		switch {
		case status >= 500:
			m.config.Logger.Error("request completed", fields...)
		case status >= 400:
			m.config.Logger.Warn("request completed", fields...)
		default:
			m.config.Logger.Info("request completed", fields...)
		}

		return err
	}
}

// HealthSkipper skips logging for health check and probe endpoints
func HealthSkipper(c *fiber.Ctx) bool {
	path := c.Path()
	return path == "/health" || path == "/livez" || path == "/readyz" ||
		path == "/version" || path == "/metrics"
}
