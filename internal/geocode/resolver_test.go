package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-dashboard/internal/cache"
	"weather-dashboard/internal/config"
	"weather-dashboard/internal/models"
	"weather-dashboard/pkg/client"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Providers.MapboxToken = "test-token"
	cfg.Cache.GeocodeTTL = time.Hour
	cfg.Defaults.LocationName = "New York, New York, United States"
	cfg.Defaults.Latitude = 40.7128
	cfg.Defaults.Longitude = -74.0060
	return cfg
}

func newTestResolver(cfg *config.Config, endpoint string) *Resolver {
	clientConfig := client.ClientConfig{
		Timeout:        5 * time.Second,
		BreakerTimeout: time.Second,
	}
	r := NewResolver(
		client.NewBaseClient("mapbox-test", clientConfig, zap.NewNop()),
		cache.New[models.ResolvedLocation](),
		cfg,
		zap.NewNop(),
	)
	if endpoint != "" {
		r.endpoint = endpoint
	}
	return r
}

func TestResolveProviderHit(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hits++
		w.Header().Set("Content-Type", "application/json")
		// Mapbox center ordering is [longitude, latitude].
		w.Write([]byte(`{"features":[{"place_name":"Lisbon, Portugal","center":[-9.1393,38.7223]}]}`))
	}))
	defer srv.Close()

	r := newTestResolver(testConfig(), srv.URL)

	loc := r.Resolve(context.Background(), "Lisbon")
	if loc.Provenance != models.ProvenanceProvider {
		t.Fatalf("provenance = %q, want provider", loc.Provenance)
	}
	if loc.DisplayName != "Lisbon, Portugal" {
		t.Errorf("display name = %q", loc.DisplayName)
	}
	if loc.Coordinate.Latitude != 38.7223 || loc.Coordinate.Longitude != -9.1393 {
		t.Errorf("coordinate = %+v, center ordering not honored", loc.Coordinate)
	}

	// Second resolve for the same query (different casing) is served from
	// the cache.
	r.Resolve(context.Background(), "  lisbon ")
	if hits != 1 {
		t.Errorf("geocoder hit %d times, want 1", hits)
	}
}

func TestResolveEmptyQueryUsesDefault(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte(`{"features":[{"place_name":"New York, New York, United States","center":[-74.0060,40.7128]}]}`))
	}))
	defer srv.Close()

	r := newTestResolver(testConfig(), srv.URL)

	loc := r.Resolve(context.Background(), "   ")
	if loc.DisplayName != "New York, New York, United States" {
		t.Errorf("display name = %q, want configured default", loc.DisplayName)
	}
}

func TestResolveWithoutTokenSkipsNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hits++
	}))
	defer srv.Close()

	cfg := testConfig()
	cfg.Providers.MapboxToken = ""
	r := newTestResolver(cfg, srv.URL)

	loc := r.Resolve(context.Background(), "Lisbon")
	if loc.Provenance != models.ProvenanceSample {
		t.Fatalf("provenance = %q, want sample", loc.Provenance)
	}
	if loc.Coordinate != (models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}) {
		t.Errorf("coordinate = %+v, want configured default", loc.Coordinate)
	}
	if hits != 0 {
		t.Errorf("geocoder hit %d times, want 0", hits)
	}
}

func TestResolveZeroFeaturesFallsBack(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		hits++
		w.Write([]byte(`{"features":[]}`))
	}))
	defer srv.Close()

	cfg := testConfig()
	r := newTestResolver(cfg, srv.URL)

	loc := r.Resolve(context.Background(), "Nowhereville")
	if loc.Provenance != models.ProvenanceFallback {
		t.Fatalf("provenance = %q, want fallback", loc.Provenance)
	}
	if loc.Coordinate != (models.Coordinate{Latitude: 40.7128, Longitude: -74.0060}) {
		t.Errorf("coordinate = %+v, want configured default", loc.Coordinate)
	}

	// Failures are not cached: the next request tries the provider again.
	r.Resolve(context.Background(), "Nowhereville")
	if hits != 2 {
		t.Errorf("geocoder hit %d times, want 2", hits)
	}
}

func TestResolveTransportFailureFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	r := newTestResolver(testConfig(), srv.URL)

	loc := r.Resolve(context.Background(), "Lisbon")
	if loc.Provenance != models.ProvenanceFallback {
		t.Fatalf("provenance = %q, want fallback", loc.Provenance)
	}
	if loc.DisplayName != "New York, New York, United States" {
		t.Errorf("display name = %q, want configured default", loc.DisplayName)
	}
}

func TestResolveCoordinate(t *testing.T) {
	r := newTestResolver(testConfig(), "")

	loc := r.ResolveCoordinate(38.72, -9.14)
	if loc.Provenance != models.ProvenanceProvider {
		t.Errorf("provenance = %q, want provider", loc.Provenance)
	}
	if loc.DisplayName != "38.72, -9.14" {
		t.Errorf("display name = %q", loc.DisplayName)
	}
}
