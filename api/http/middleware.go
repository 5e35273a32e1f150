package http

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/artem13815/productbot/pkg/logger"
)

const requestIDLocal = "requestid"

// UseMiddleware installs panic recovery, request ids, access logging and CORS.
func UseMiddleware(app *fiber.App, log *zap.Logger, allowedOrigins []string) {
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDLocal,
	}))
	app.Use(requestContext())
	app.Use(accessLog(log))
	app.Use(cors.New(corsConfig(allowedOrigins)))
}

// requestContext copies the request id into the user context so services
// can tag their logs with it.
func requestContext() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if id, ok := c.Locals(requestIDLocal).(string); ok && id != "" {
			c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
		}
		return c.Next()
	}
}

func accessLog(log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		logger.FromContext(c.UserContext(), log).Info("http request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", status),
			zap.Duration("elapsed", time.Since(start)),
		)
		return err
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization,X-Request-ID",
	}
	if len(origins) == 0 {
		return cfg
	}
	cfg.AllowOrigins = strings.Join(origins, ",")
	// Fiber rejects credentials combined with a wildcard origin.
	cfg.AllowCredentials = !strings.Contains(cfg.AllowOrigins, "*")
	return cfg
}
