package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-dashboard/internal/api"
	"weather-dashboard/internal/cache"
	"weather-dashboard/internal/config"
	"weather-dashboard/internal/geocode"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services"
	"weather-dashboard/pkg/client"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	// Initialize logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	zap.ReplaceGlobals(logger)
	logger.Info("Starting Weather Dashboard Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("Failed to load configuration", zap.Error(err))
	}

	clientConfig := client.ClientConfig{
		Timeout:        cfg.Providers.HTTPTimeout,
		BreakerTimeout: 30 * time.Second,
	}

	// Initialize location resolver
	resolver := geocode.NewResolver(
		client.NewBaseClient("mapbox", clientConfig, logger),
		cache.New[models.ResolvedLocation](),
		cfg,
		logger,
	)

	// Initialize forecast provider
	provider, err := buildProvider(cfg, clientConfig, logger)
	if err != nil {
		logger.Fatal("Failed to initialize forecast provider", zap.Error(err))
	}

	// Initialize weather pipeline
	weatherService := services.NewWeatherService(
		resolver,
		provider,
		cache.New[models.WeatherView](),
		cfg,
		logger,
	)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
		ErrorHandler: errorHandler,
	})

	// Setup handlers and routes
	handler := api.NewHandler(weatherService, logger)
	api.SetupRoutes(app, handler, logger)

	// Start server in goroutine
	go func() {
		addr := ":" + cfg.Server.Port
		logger.Info("Starting server", zap.String("address", addr))

		if err := app.Listen(addr); err != nil {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown Fiber app
	if err := app.ShutdownWithContext(ctx); err != nil {
		logger.Error("Server shutdown failed", zap.Error(err))
	}

	logger.Info("Server stopped")
}

func buildProvider(cfg *config.Config, clientConfig client.ClientConfig, logger *zap.Logger) (services.ForecastProvider, error) {
	switch cfg.Providers.ForecastProvider {
	case "openmeteo":
		return client.NewOpenMeteoClient(clientConfig, logger)
	default:
		if cfg.Providers.TomorrowAPIKey == "" {
			logger.Warn("No forecast API key configured, live weather is disabled")
			return nil, nil
		}
		return client.NewTomorrowClient(cfg.Providers.TomorrowAPIKey, clientConfig, logger), nil
	}
}

func errorHandler(c *fiber.Ctx, err error) error {
	zap.L().Error("HTTP error",
		zap.String("method", c.Method()),
		zap.String("path", c.Path()),
		zap.Error(err))

	// Default to 500 status code
	code := fiber.StatusInternalServerError

	// Check if it's a Fiber error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   err.Error(),
		"success": false,
	})
}
