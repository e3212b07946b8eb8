package services

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"weather-dashboard/internal/cache"
	"weather-dashboard/internal/config"
	"weather-dashboard/internal/models"
	"go.uber.org/zap"
)

// ForecastProvider is implemented by each upstream forecast client.
type ForecastProvider interface {
	Name() string
	Fetch(ctx context.Context, coord models.Coordinate, units models.UnitSystem) (*models.RawForecast, error)
}

// LocationResolver is implemented by the geocode resolver.
type LocationResolver interface {
	Resolve(ctx context.Context, query string) models.ResolvedLocation
	ResolveCoordinate(lat, lon float64) models.ResolvedLocation
}

// WeatherService runs the request pipeline: resolve the location, consult
// the view cache, fetch and normalize on a miss, and degrade to sample
// data on any failure. It never returns an error to the handler; the
// dashboard always has something to render.
type WeatherService struct {
	resolver LocationResolver
	provider ForecastProvider
	cache    *cache.Cache[models.WeatherView]
	logger   *zap.Logger

	weatherTTL   time.Duration
	defaultUnits models.UnitSystem
	sampleMode   bool
	mapboxToken  string
	mapZoom      int
}

// NewWeatherService wires the pipeline. A nil provider means no forecast
// credential was configured; every request then serves sample data.
func NewWeatherService(resolver LocationResolver, provider ForecastProvider, viewCache *cache.Cache[models.WeatherView], cfg *config.Config, logger *zap.Logger) *WeatherService {
	return &WeatherService{
		resolver:     resolver,
		provider:     provider,
		cache:        viewCache,
		logger:       logger,
		weatherTTL:   cfg.Cache.WeatherTTL,
		defaultUnits: models.ParseUnitSystem(cfg.Defaults.Units, models.UnitsImperial),
		sampleMode:   cfg.SampleMode,
		mapboxToken:  cfg.Providers.MapboxToken,
		mapZoom:      cfg.Map.Zoom,
	}
}

// GetWeather serves a view for a free-text location query.
func (s *WeatherService) GetWeather(ctx context.Context, query, unitsToken string) models.WeatherView {
	unitSystem := models.ParseUnitSystem(unitsToken, s.defaultUnits)
	loc := s.resolver.Resolve(ctx, query)
	return s.viewFor(ctx, loc, unitSystem)
}

// GetWeatherAt serves a view for explicit coordinates, e.g. a map click.
func (s *WeatherService) GetWeatherAt(ctx context.Context, lat, lon float64, unitsToken string) models.WeatherView {
	unitSystem := models.ParseUnitSystem(unitsToken, s.defaultUnits)
	loc := s.resolver.ResolveCoordinate(lat, lon)
	return s.viewFor(ctx, loc, unitSystem)
}

func (s *WeatherService) viewFor(ctx context.Context, loc models.ResolvedLocation, unitSystem models.UnitSystem) models.WeatherView {
	key := fmt.Sprintf("%s:%s", loc.Coordinate.Key(), unitSystem)

	view, err := s.cache.GetOrCompute(key, s.weatherTTL, func() (models.WeatherView, error) {
		return s.buildView(ctx, loc, unitSystem), nil
	})
	if err != nil {
		// buildView never errors; this is unreachable but keeps the
		// request path alive regardless.
		return Sample(loc, unitSystem, StatusLiveFailed)
	}

	return view
}

func (s *WeatherService) buildView(ctx context.Context, loc models.ResolvedLocation, unitSystem models.UnitSystem) models.WeatherView {
	if s.sampleMode {
		return Sample(loc, unitSystem, StatusSampleMode)
	}
	if s.provider == nil {
		return Sample(loc, unitSystem, StatusNoAPIKey)
	}

	raw, err := s.provider.Fetch(ctx, loc.Coordinate, unitSystem)
	if err != nil {
		s.logger.Warn("Forecast fetch failed, serving sample data",
			zap.String("provider", s.provider.Name()),
			zap.Error(err))
		return Sample(loc, unitSystem, StatusLiveFailed)
	}

	view, err := Normalize(raw, loc, unitSystem)
	if err != nil {
		s.logger.Warn("Forecast normalization failed, serving sample data",
			zap.String("provider", s.provider.Name()),
			zap.Error(err))
		return Sample(loc, unitSystem, StatusLiveFailed)
	}

	return view
}

// MapImageURL builds a static map image URL for the coordinate. This is
// pure URL construction; no network call is made. An empty token yields an
// empty URL.
func (s *WeatherService) MapImageURL(coord models.Coordinate) string {
	if s.mapboxToken == "" {
		return ""
	}

	return fmt.Sprintf(
		"https://api.mapbox.com/styles/v1/mapbox/dark-v11/static/%f,%f,%d/600x400?access_token=%s",
		coord.Longitude, coord.Latitude, s.mapZoom, url.QueryEscape(s.mapboxToken))
}
