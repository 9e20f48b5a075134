package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	postgres  *pgxpool.Pool
	version   string
	startTime time.Time
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(postgres *pgxpool.Pool, version string) *HealthHandler {
	return &HealthHandler{
		postgres:  postgres,
		version:   version,
		startTime: time.Now(),
	}
}

// HealthStatus represents health check status
type HealthStatus struct {
	Status    string `json:"status"`
	Version   string `json:"version"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
}

// Health handles GET /health. It always reports healthy while the
// process is serving; dependency checks belong to Readiness.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(HealthStatus{
		Status:    "healthy",
		Version:   h.version,
		Uptime:    time.Since(h.startTime).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// Liveness handles GET /livez for orchestration liveness probes
func (h *HealthHandler) Liveness(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusOK)
}

// Readiness handles GET /readyz. Reports unready when the database
// cannot be reached.
func (h *HealthHandler) Readiness(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 5*time.Second)
	defer cancel()

	if err := h.postgres.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status": "unready",
			"checks": fiber.Map{"postgres": "unhealthy: " + err.Error()},
		})
	}

	return c.JSON(fiber.Map{
		"status": "ready",
		"checks": fiber.Map{"postgres": "healthy"},
	})
}

// Version handles GET /version
func (h *HealthHandler) Version(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"version": h.version})
}
