package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// registerRoutes registers all HTTP routes
func registerRoutes(app *fiber.App, deps *Dependencies) {
	// Health and probe routes
	app.Get("/health", deps.HealthHandler.Health)
	app.Get("/livez", deps.HealthHandler.Liveness)
	app.Get("/readyz", deps.HealthHandler.Readiness)
	app.Get("/version", deps.HealthHandler.Version)

	// Prometheus scrape endpoint
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	api := app.Group("/api")
	{
		// Anchors
		api.Get("/anchors", deps.AnchorsHandler.ListAnchors)
		api.Post("/anchors", deps.AnchorsHandler.CreateAnchor)
		api.Get("/anchors/account/:account", deps.AnchorsHandler.GetAnchorByAccount)
		api.Get("/anchors/:id", deps.AnchorsHandler.GetAnchor)
		api.Put("/anchors/:id/metrics", deps.AnchorsHandler.UpdateAnchorMetrics)

		// Anchor assets
		api.Get("/anchors/:id/assets", deps.AssetsHandler.ListAnchorAssets)
		api.Post("/anchors/:id/assets", deps.AssetsHandler.CreateAnchorAsset)
	}
}
