package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/productbot/pkg/health"
)

// HealthHandler serves the root banner plus liveness and readiness probes.
type HealthHandler struct {
	svc     health.ReadinessUseCase
	service string
	version string
}

func NewHealthHandler(svc health.ReadinessUseCase, service, version string) *HealthHandler {
	return &HealthHandler{svc: svc, service: service, version: version}
}

// Root: API banner.
// @Summary API banner
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  / [get]
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Product Chatbot API is running",
		"version": h.version,
		"docs":    "/swagger/index.html",
	})
}

// Health: basic liveness check.
// @Summary Liveness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Router  /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status":  "healthy",
		"service": h.service,
	})
}

// Ready: readiness check against the product catalog.
// @Summary Readiness probe
// @Tags    health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router  /ready [get]
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 3*time.Second)
	defer cancel()
	if err := h.svc.Ready(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"status":  "not_ready",
			"details": err.Error(),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ready"})
}
