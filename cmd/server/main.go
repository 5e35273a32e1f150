// @title         Product Chatbot API
// @version       1.0.0
// @description   AI-powered chatbot for product inquiries, grounded on a product catalog.
// @BasePath      /
// @schemes       http
// @host          localhost:8000
package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	swagger "github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/artem13815/productbot/docs"

	// internal imports
	apihttp "github.com/artem13815/productbot/api/http"
	"github.com/artem13815/productbot/api/http/handlers"
	"github.com/artem13815/productbot/pkg/catalog"
	"github.com/artem13815/productbot/pkg/chatbot"
	"github.com/artem13815/productbot/pkg/config"
	"github.com/artem13815/productbot/pkg/health"
	"github.com/artem13815/productbot/pkg/health/checkers"
	"github.com/artem13815/productbot/pkg/llm/groq"
	"github.com/artem13815/productbot/pkg/logger"
)

func main() {
	// Load configuration from env/.env; a missing API key stops startup.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	docs.SwaggerInfo.Title = cfg.ProjectName
	docs.SwaggerInfo.Version = cfg.Version

	// Outbound clients, built once and shared by all requests.
	catalogClient := catalog.New(cfg.CatalogBaseURL, cfg.CatalogTimeout)
	llmClient := groq.New(cfg.GroqAPIKey, groq.Options{
		BaseURL:     cfg.GroqBaseURL,
		Model:       cfg.GroqModel,
		Temperature: float32(cfg.GroqTemperature),
		MaxTokens:   cfg.GroqMaxTokens,
		Timeout:     cfg.LLMTimeout,
	})

	chatUC := chatbot.NewService(catalogClient, llmClient, zl.Named("chatbot"), chatbot.Options{
		CatalogTimeout: cfg.CatalogTimeout,
		LLMTimeout:     cfg.LLMTimeout,
	})

	readiness := health.NewService(checkers.NewCatalogChecker(catalogClient))

	app := fiber.New(fiber.Config{AppName: cfg.ProjectName})
	apihttp.UseMiddleware(app, zl.Named("http"), cfg.AllowedOrigins)
	apihttp.Register(app,
		handlers.NewHealthHandler(readiness, cfg.ProjectName, cfg.Version),
		handlers.NewProductsHandler(catalogClient),
		handlers.NewChatHandler(chatUC),
	)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	zl.Info("HTTP server listening",
		zap.String("port", cfg.Port),
		zap.String("catalog", cfg.CatalogBaseURL),
		zap.String("model", llmClient.Model))
	if err := app.Listen(":" + cfg.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
