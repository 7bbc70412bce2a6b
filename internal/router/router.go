package router

import (
	"github.com/gofiber/fiber/v3"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/SsandrockK/youtube-transcript-extractor/internal/handler"
	"github.com/SsandrockK/youtube-transcript-extractor/internal/middleware"
)

// Handlers holds all handler instances needed by the router.
type Handlers struct {
	Extract *handler.ExtractHandler
	Health  *handler.HealthHandler
}

// Setup configures the middleware stack and all API routes on the given Fiber app.
func Setup(app *fiber.App, h *Handlers, corsOrigins string) {
	// Middleware stack (order matters)
	app.Use(recoverer.New())
	app.Use(middleware.NewRequestLogger())
	app.Use(middleware.NewCORS(corsOrigins))
	app.Use(handler.MetricsMiddleware())

	// Health checks (before API group)
	healthLimiter := middleware.NewHealthRateLimiter()
	app.Get("/health/live", h.Health.Live, healthLimiter.Handler())
	app.Get("/health/ready", h.Health.Ready, healthLimiter.Handler())

	// Prometheus metrics
	app.Get("/metrics", handler.MetricsHandler())

	// API routes
	api := app.Group("/api")

	extractLimiter := middleware.NewExtractRateLimiter()
	api.Post("/extract", h.Extract.Extract, extractLimiter.Handler())
}
