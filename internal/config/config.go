package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

type Config struct {
	Server struct {
		Port         string `validate:"required"`
		ReadTimeout  time.Duration
		WriteTimeout time.Duration
	}

	Providers struct {
		// MapboxToken is used for geocoding and for static map URLs.
		MapboxToken string
		// TomorrowAPIKey enables the timelines forecast provider. When it
		// is empty and the timelines provider is selected, the service
		// serves sample data.
		TomorrowAPIKey   string
		ForecastProvider string        `validate:"oneof=tomorrowio openmeteo"`
		HTTPTimeout      time.Duration `validate:"gt=0"`
	}

	Defaults struct {
		LocationName string  `validate:"required"`
		Latitude     float64 `validate:"gte=-90,lte=90"`
		Longitude    float64 `validate:"gte=-180,lte=180"`
		Units        string  `validate:"oneof=imperial metric"`
	}

	Cache struct {
		WeatherTTL time.Duration `validate:"gt=0"`
		GeocodeTTL time.Duration `validate:"gt=0"`
	}

	Map struct {
		Zoom int `validate:"gte=1,lte=18"`
	}

	// SampleMode forces synthetic data regardless of configured
	// credentials.
	SampleMode bool
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		zap.L().Info("No .env file found, using environment variables")
	}

	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("PORT", "8080")
	cfg.Server.ReadTimeout = parseDuration(getEnv("FIBER_READ_TIMEOUT", "10s"))
	cfg.Server.WriteTimeout = parseDuration(getEnv("FIBER_WRITE_TIMEOUT", "10s"))

	// Provider configuration
	cfg.Providers.MapboxToken = getEnv("MAPBOX_TOKEN", "")
	cfg.Providers.TomorrowAPIKey = getEnv("TOMORROW_API_KEY", "")
	cfg.Providers.ForecastProvider = getEnv("FORECAST_PROVIDER", "tomorrowio")
	cfg.Providers.HTTPTimeout = parseDuration(getEnv("HTTP_TIMEOUT", "8s"))

	// Default location and units
	cfg.Defaults.LocationName = getEnv("DEFAULT_LOCATION", "New York, New York, United States")
	cfg.Defaults.Latitude = parseFloat(getEnv("DEFAULT_LAT", "40.7128"))
	cfg.Defaults.Longitude = parseFloat(getEnv("DEFAULT_LON", "-74.0060"))
	cfg.Defaults.Units = getEnv("DEFAULT_UNITS", "imperial")

	// Cache configuration
	cfg.Cache.WeatherTTL = parseDuration(getEnv("WEATHER_CACHE_TTL", "10m"))
	cfg.Cache.GeocodeTTL = parseDuration(getEnv("GEOCODE_CACHE_TTL", "24h"))

	// Map configuration
	cfg.Map.Zoom = parseInt(getEnv("MAP_ZOOM", "8"))

	cfg.SampleMode = parseBool(getEnv("SAMPLE_MODE", "false"))

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(value string) time.Duration {
	duration, err := time.ParseDuration(value)
	if err != nil {
		zap.L().Warn("Failed to parse duration", zap.String("value", value), zap.Error(err))
		return 0
	}
	return duration
}

func parseInt(value string) int {
	intValue, err := strconv.Atoi(value)
	if err != nil {
		zap.L().Warn("Failed to parse int", zap.String("value", value), zap.Error(err))
		return 0
	}
	return intValue
}

func parseFloat(value string) float64 {
	floatValue, err := strconv.ParseFloat(value, 64)
	if err != nil {
		zap.L().Warn("Failed to parse float", zap.String("value", value), zap.Error(err))
		return 0
	}
	return floatValue
}

func parseBool(value string) bool {
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		zap.L().Warn("Failed to parse bool", zap.String("value", value), zap.Error(err))
		return false
	}
	return boolValue
}
