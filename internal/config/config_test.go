package config

import (
	"testing"
	"time"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.Providers.ForecastProvider != "tomorrowio" {
		t.Errorf("forecast provider = %q, want tomorrowio", cfg.Providers.ForecastProvider)
	}
	if cfg.Defaults.Units != "imperial" {
		t.Errorf("units = %q, want imperial", cfg.Defaults.Units)
	}
	if cfg.Defaults.Latitude != 40.7128 || cfg.Defaults.Longitude != -74.0060 {
		t.Errorf("default coordinate = %f,%f", cfg.Defaults.Latitude, cfg.Defaults.Longitude)
	}
	if cfg.Cache.WeatherTTL != 10*time.Minute {
		t.Errorf("weather TTL = %v, want 10m", cfg.Cache.WeatherTTL)
	}
	if cfg.Cache.GeocodeTTL != 24*time.Hour {
		t.Errorf("geocode TTL = %v, want 24h", cfg.Cache.GeocodeTTL)
	}
	if cfg.SampleMode {
		t.Error("sample mode should default to off")
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FORECAST_PROVIDER", "openmeteo")
	t.Setenv("DEFAULT_UNITS", "metric")
	t.Setenv("WEATHER_CACHE_TTL", "5m")
	t.Setenv("SAMPLE_MODE", "true")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Providers.ForecastProvider != "openmeteo" {
		t.Errorf("forecast provider = %q, want openmeteo", cfg.Providers.ForecastProvider)
	}
	if cfg.Defaults.Units != "metric" {
		t.Errorf("units = %q, want metric", cfg.Defaults.Units)
	}
	if cfg.Cache.WeatherTTL != 5*time.Minute {
		t.Errorf("weather TTL = %v, want 5m", cfg.Cache.WeatherTTL)
	}
	if !cfg.SampleMode {
		t.Error("sample mode should be on")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"FORECAST_PROVIDER", "noaa"},
		{"DEFAULT_UNITS", "kelvin"},
		{"DEFAULT_LAT", "123.45"},
		{"MAP_ZOOM", "25"},
		{"WEATHER_CACHE_TTL", "not-a-duration"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			if _, err := LoadConfig(); err == nil {
				t.Errorf("%s=%s should fail validation", tt.key, tt.value)
			}
		})
	}
}
