package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v3"
)

type HealthHandler struct {
	probeURL string
	client   *http.Client
	startAt  time.Time
}

// NewHealthHandler creates the health endpoints. probeURL is the upstream
// origin checked by the readiness probe (the platform this service wraps).
func NewHealthHandler(probeURL string) *HealthHandler {
	return &HealthHandler{
		probeURL: probeURL,
		client:   &http.Client{Timeout: 3 * time.Second},
		startAt:  time.Now(),
	}
}

// Live handles GET /health/live — liveness probe.
func (h *HealthHandler) Live(c fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Ready handles GET /health/ready — readiness probe with an upstream
// reachability check. The service has no storage; YouTube itself is the
// only dependency worth probing.
func (h *HealthHandler) Ready(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	checks := fiber.Map{
		"youtube": h.checkUpstream(ctx),
	}

	overallStatus := "healthy"
	if up, ok := checks["youtube"].(fiber.Map); ok && up["status"] != "up" {
		overallStatus = "degraded"
	}

	resp := fiber.Map{
		"status":         overallStatus,
		"checks":         checks,
		"uptime_seconds": int(time.Since(h.startAt).Seconds()),
	}

	status := fiber.StatusOK
	if overallStatus != "healthy" {
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(resp)
}

func (h *HealthHandler) checkUpstream(ctx context.Context) fiber.Map {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, h.probeURL, nil)
	if err != nil {
		return fiber.Map{"status": "down", "error": "bad probe url"}
	}

	start := time.Now()
	resp, err := h.client.Do(req)
	latency := time.Since(start).Milliseconds()

	if err != nil {
		return fiber.Map{
			"status":     "down",
			"latency_ms": latency,
			"error":      "connection failed",
		}
	}
	resp.Body.Close()

	return fiber.Map{
		"status":     "up",
		"latency_ms": latency,
	}
}
