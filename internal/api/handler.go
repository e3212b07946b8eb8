package api

import (
	"strconv"
	"time"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var validate = validator.New()

type Handler struct {
	service *services.WeatherService
	logger  *zap.Logger
}

func NewHandler(service *services.WeatherService, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

type coordinateQuery struct {
	Lat float64 `validate:"gte=-90,lte=90"`
	Lon float64 `validate:"gte=-180,lte=180"`
}

// GetWeather handles GET /api/v1/weather. The location is either a
// free-text query or an explicit lat/lon pair from a map click.
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	unitsToken := c.Query("units")

	if c.Query("lat") != "" || c.Query("lon") != "" {
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
		if latErr != nil || lonErr != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "lat and lon must be valid numbers",
			})
		}
		if err := validate.Struct(coordinateQuery{Lat: lat, Lon: lon}); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "lat and lon are out of range",
			})
		}

		h.logger.Info("Fetching weather for coordinates",
			zap.Float64("lat", lat),
			zap.Float64("lon", lon))

		view := h.service.GetWeatherAt(c.Context(), lat, lon, unitsToken)
		return c.JSON(h.weatherResponse(view))
	}

	location := c.Query("location")
	h.logger.Info("Fetching weather", zap.String("location", location))

	view := h.service.GetWeather(c.Context(), location, unitsToken)
	return c.JSON(h.weatherResponse(view))
}

func (h *Handler) weatherResponse(view models.WeatherView) fiber.Map {
	return fiber.Map{
		"weather": view,
		"map_url": h.service.MapImageURL(view.Location.Coordinate),
	}
}

// GetHealth handles GET /api/v1/health
func (h *Handler) GetHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now(),
		"uptime":    time.Since(startTime).String(),
	})
}

var startTime = time.Now()
