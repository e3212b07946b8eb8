package models

import (
	"fmt"
	"strings"
	"time"
)

// Coordinate is a resolved latitude/longitude pair. It is never mutated
// after resolution.
type Coordinate struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Key renders the coordinate at a fixed 4-decimal precision (~11m) so that
// cache lookups stay stable against float jitter.
func (c Coordinate) Key() string {
	return fmt.Sprintf("%.4f,%.4f", c.Latitude, c.Longitude)
}

// Provenance records where a resolved location came from.
type Provenance string

const (
	ProvenanceProvider Provenance = "provider"
	ProvenanceSample   Provenance = "sample"
	ProvenanceFallback Provenance = "fallback"
)

type ResolvedLocation struct {
	DisplayName string     `json:"name"`
	Coordinate  Coordinate `json:"coordinate"`
	Provenance  Provenance `json:"provenance"`
}

type UnitSystem string

const (
	UnitsImperial UnitSystem = "imperial"
	UnitsMetric   UnitSystem = "metric"
)

// ParseUnitSystem normalizes a unit-system token. Anything outside the
// recognized set falls back to def.
func ParseUnitSystem(token string, def UnitSystem) UnitSystem {
	switch UnitSystem(strings.ToLower(strings.TrimSpace(token))) {
	case UnitsImperial:
		return UnitsImperial
	case UnitsMetric:
		return UnitsMetric
	default:
		return def
	}
}

func (u UnitSystem) TemperatureUnit() string {
	if u == UnitsMetric {
		return "°C"
	}
	return "°F"
}

func (u UnitSystem) WindSpeedUnit() string {
	if u == UnitsMetric {
		return "km/h"
	}
	return "mph"
}

type WeatherCondition struct {
	Label   string `json:"label"`
	IconTag string `json:"icon"`
}

// CurrentConditions holds display-ready values for the current timestep.
// Numeric fields are rounded to integers; missing upstream fields show up
// as 0 rather than null.
type CurrentConditions struct {
	Temperature          int              `json:"temperature"`
	FeelsLike            int              `json:"feels_like"`
	HumidityPct          int              `json:"humidity_pct"`
	WindSpeed            int              `json:"wind_speed"`
	WindDirection        string           `json:"wind_direction"`
	PrecipProbabilityPct int              `json:"precip_probability_pct"`
	Condition            WeatherCondition `json:"condition"`
	Sunrise              string           `json:"sunrise"`
	Sunset               string           `json:"sunset"`
}

type DailyForecastEntry struct {
	DayLabel             string           `json:"day"`
	DateLabel            string           `json:"date"`
	High                 int              `json:"high"`
	Low                  int              `json:"low"`
	Sunrise              string           `json:"sunrise"`
	Sunset               string           `json:"sunset"`
	Condition            WeatherCondition `json:"condition"`
	PrecipProbabilityPct int              `json:"precip_probability_pct"`
}

type DataSource string

const (
	SourceLive   DataSource = "live"
	SourceSample DataSource = "sample"
)

// WeatherView is the sole artifact handed to the presentation layer. Its
// shape is the same regardless of which provider produced it. A view is
// immutable once built; refreshes replace it wholesale.
type WeatherView struct {
	Location      ResolvedLocation     `json:"location"`
	Current       CurrentConditions    `json:"current"`
	Daily         []DailyForecastEntry `json:"daily"`
	Units         UnitSystem           `json:"units"`
	DataSource    DataSource           `json:"data_source"`
	StatusMessage string               `json:"status_message,omitempty"`
}

// Canonical field names used in RawInterval value maps. Providers that use
// different names map onto these before handing data to the normalizer.
const (
	FieldTemperature       = "temperature"
	FieldFeelsLike         = "temperatureApparent"
	FieldHumidity          = "humidity"
	FieldWindSpeed         = "windSpeed"
	FieldWindDirection     = "windDirection"
	FieldPrecipProbability = "precipitationProbability"
	FieldWeatherCode       = "weatherCode"
	FieldTemperatureMax    = "temperatureMax"
	FieldTemperatureMin    = "temperatureMin"
	FieldSunrise           = "sunriseTime"
	FieldSunset            = "sunsetTime"
	FieldCloudCover        = "cloudCover"
)

// RawInterval is one provider timestep: a timestamp plus a field-value
// mapping. Values are kept loosely typed because providers differ in which
// optional fields they populate per request.
type RawInterval struct {
	Time   time.Time
	Values map[string]any
}

// RawForecast is the provider-agnostic intermediate between a forecast
// client and the view normalizer.
type RawForecast struct {
	Current RawInterval
	Daily   []RawInterval
}
