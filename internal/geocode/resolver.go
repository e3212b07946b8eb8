package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"weather-dashboard/internal/cache"
	"weather-dashboard/internal/config"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/client"
	"go.uber.org/zap"
)

const placesEndpoint = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// Resolver turns free-text location queries into coordinates and display
// names via the Mapbox places API, with caching and a configured default
// as the fallback.
type Resolver struct {
	client *client.BaseClient
	cache  *cache.Cache[models.ResolvedLocation]
	logger *zap.Logger

	endpoint   string
	token      string
	ttl        time.Duration
	sampleMode bool

	defaultName  string
	defaultCoord models.Coordinate
}

type placesResponse struct {
	Features []struct {
		PlaceName string    `json:"place_name"`
		Center    []float64 `json:"center"`
	} `json:"features"`
}

func NewResolver(httpClient *client.BaseClient, store *cache.Cache[models.ResolvedLocation], cfg *config.Config, logger *zap.Logger) *Resolver {
	return &Resolver{
		client:      httpClient,
		cache:       store,
		logger:      logger,
		endpoint:    placesEndpoint,
		token:       cfg.Providers.MapboxToken,
		ttl:         cfg.Cache.GeocodeTTL,
		sampleMode:  cfg.SampleMode,
		defaultName: cfg.Defaults.LocationName,
		defaultCoord: models.Coordinate{
			Latitude:  cfg.Defaults.Latitude,
			Longitude: cfg.Defaults.Longitude,
		},
	}
}

// Resolve turns a query into a located place. It never fails: without a
// token (or in sample mode) the configured default is returned directly,
// and any provider failure falls back to the default coordinate. Only
// successful resolutions are cached, so a transient outage self-heals on
// the next request.
func (r *Resolver) Resolve(ctx context.Context, query string) models.ResolvedLocation {
	query = strings.TrimSpace(query)
	if query == "" {
		query = r.defaultName
	}

	if r.token == "" || r.sampleMode {
		return models.ResolvedLocation{
			DisplayName: query,
			Coordinate:  r.defaultCoord,
			Provenance:  models.ProvenanceSample,
		}
	}

	key := strings.ToLower(query)
	loc, err := r.cache.GetOrCompute(key, r.ttl, func() (models.ResolvedLocation, error) {
		return r.geocode(ctx, query)
	})
	if err != nil {
		r.logger.Warn("Geocoding failed, using default location",
			zap.String("query", query),
			zap.Error(err))

		return models.ResolvedLocation{
			DisplayName: r.defaultName,
			Coordinate:  r.defaultCoord,
			Provenance:  models.ProvenanceFallback,
		}
	}

	return loc
}

// ResolveCoordinate builds a location directly from user-picked map
// coordinates without a geocoding round trip.
func (r *Resolver) ResolveCoordinate(lat, lon float64) models.ResolvedLocation {
	return models.ResolvedLocation{
		DisplayName: fmt.Sprintf("%.2f, %.2f", lat, lon),
		Coordinate:  models.Coordinate{Latitude: lat, Longitude: lon},
		Provenance:  models.ProvenanceProvider,
	}
}

func (r *Resolver) geocode(ctx context.Context, query string) (models.ResolvedLocation, error) {
	endpoint := fmt.Sprintf("%s/%s.json?access_token=%s&limit=1",
		r.endpoint, url.PathEscape(query), url.QueryEscape(r.token))

	data, err := r.client.Get(ctx, endpoint)
	if err != nil {
		return models.ResolvedLocation{}, fmt.Errorf("geocoding request failed: %w", err)
	}

	var response placesResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return models.ResolvedLocation{}, fmt.Errorf("failed to parse geocoding response: %w", err)
	}
	if len(response.Features) == 0 {
		return models.ResolvedLocation{}, fmt.Errorf("no geocoding results for %q", query)
	}

	feature := response.Features[0]
	if len(feature.Center) < 2 {
		return models.ResolvedLocation{}, fmt.Errorf("geocoding feature has no center")
	}

	// Mapbox centers are [longitude, latitude]
	return models.ResolvedLocation{
		DisplayName: feature.PlaceName,
		Coordinate: models.Coordinate{
			Latitude:  feature.Center[1],
			Longitude: feature.Center[0],
		},
		Provenance: models.ProvenanceProvider,
	}, nil
}
