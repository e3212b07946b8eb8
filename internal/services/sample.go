package services

import (
	"time"

	"weather-dashboard/internal/models"
	"weather-dashboard/internal/units"
	"github.com/nathan-osman/go-sunrise"
)

// Status messages shown when sample data substitutes for live data. The
// missing-key and live-failure cases stay distinct so the user can tell
// a configuration gap from an outage.
const (
	StatusNoAPIKey   = "Live weather is disabled: no forecast API key is configured. Showing sample data."
	StatusLiveFailed = "Live weather is temporarily unavailable. Showing sample data."
	StatusSampleMode = "Sample mode is enabled. Showing sample data."
)

var samplePalette = []models.WeatherCondition{
	{Label: "Sunny", IconTag: "fa-sun"},
	{Label: "Partly Cloudy", IconTag: "fa-cloud-sun"},
	{Label: "Cloudy", IconTag: "fa-cloud"},
	{Label: "Light Rain", IconTag: "fa-cloud-rain"},
	{Label: "Showers", IconTag: "fa-cloud-showers-heavy"},
	{Label: "Thunderstorm", IconTag: "fa-cloud-bolt"},
	{Label: "Clear", IconTag: "fa-moon"},
}

// Sample produces a synthetic view model with the same shape as live
// normalization, so presentation code never branches on the data source.
// Output is deterministic for a given date and unit system.
func Sample(loc models.ResolvedLocation, unitSystem models.UnitSystem, status string) models.WeatherView {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	high, low := 72.0, 55.0
	if unitSystem == models.UnitsMetric {
		high, low = 22.0, 13.0
	}

	daily := make([]models.DailyForecastEntry, 0, maxDailyEntries)
	for i := 0; i < maxDailyEntries; i++ {
		day := today.AddDate(0, 0, i)
		sunriseAt, sunsetAt := sunTimes(loc.Coordinate, day, i)

		daily = append(daily, models.DailyForecastEntry{
			DayLabel:             day.Format("Mon"),
			DateLabel:            day.Format("Jan 2"),
			High:                 units.RoundInt(high - float64(i)),
			Low:                  units.RoundInt(low - float64(i)),
			Sunrise:              units.Clock12(sunriseAt),
			Sunset:               units.Clock12(sunsetAt),
			Condition:            samplePalette[i%len(samplePalette)],
			PrecipProbabilityPct: (i * 10) % 60,
		})
	}

	if status == "" {
		status = StatusLiveFailed
	}

	first := daily[0]

	return models.WeatherView{
		Location: loc,
		Current: models.CurrentConditions{
			Temperature:          units.RoundInt(high - 2),
			FeelsLike:            units.RoundInt(high - 3),
			HumidityPct:          45,
			WindSpeed:            8,
			WindDirection:        "NW",
			PrecipProbabilityPct: first.PrecipProbabilityPct,
			Condition:            first.Condition,
			Sunrise:              first.Sunrise,
			Sunset:               first.Sunset,
		},
		Daily:         daily,
		Units:         unitSystem,
		DataSource:    models.SourceSample,
		StatusMessage: status,
	}
}

// sunTimes computes per-day sun times from the location, which drifts
// naturally across the week. Polar days and nights yield zero times; those
// fall back to a fixed schedule with a small daily offset.
func sunTimes(coord models.Coordinate, day time.Time, offset int) (time.Time, time.Time) {
	rise, set := sunrise.SunriseSunset(coord.Latitude, coord.Longitude, day.Year(), day.Month(), day.Day())
	if rise.IsZero() || set.IsZero() {
		drift := time.Duration(offset) * 2 * time.Minute
		rise = time.Date(day.Year(), day.Month(), day.Day(), 6, 45, 0, 0, time.UTC).Add(drift)
		set = time.Date(day.Year(), day.Month(), day.Day(), 20, 30, 0, 0, time.UTC).Add(drift)
	}

	return rise, set
}
