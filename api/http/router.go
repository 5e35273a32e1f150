package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/productbot/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, products *handlers.ProductsHandler, chat *handlers.ChatHandler) {
	// Banner, liveness and readiness endpoints for probes/monitoring
	app.Get("/", health.Root)
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")
	api.Get("/products", products.List)
	api.Get("/products/:id", products.Get)
	api.Post("/chat", chat.Chat)
}
