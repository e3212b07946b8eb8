package services

import (
	"fmt"
	"time"

	"weather-dashboard/internal/conditions"
	"weather-dashboard/internal/models"
	"weather-dashboard/internal/units"
)

const maxDailyEntries = 7

// Normalize transforms a raw provider payload into the display view model.
// Missing optional fields substitute zero values or text placeholders; a
// structurally unusable payload returns an error so the caller can swap in
// sample data wholesale instead of presenting a half-filled view.
func Normalize(raw *models.RawForecast, loc models.ResolvedLocation, unitSystem models.UnitSystem) (models.WeatherView, error) {
	if raw == nil || len(raw.Daily) == 0 {
		return models.WeatherView{}, fmt.Errorf("forecast payload has no daily intervals")
	}

	// An empty current timestep falls back to the clock.
	base := raw.Current.Time
	if base.IsZero() {
		base = time.Now()
	}

	daily := make([]models.DailyForecastEntry, 0, maxDailyEntries)
	for i, interval := range raw.Daily {
		if i >= maxDailyEntries {
			break
		}

		day := interval.Time
		if day.IsZero() {
			day = base.AddDate(0, 0, i)
		}
		daily = append(daily, normalizeDaily(interval, day))
	}

	current := normalizeCurrent(raw.Current)

	// The current timestep often omits sun times; borrow today's.
	if current.Sunrise == units.TextMissing {
		current.Sunrise = daily[0].Sunrise
		current.Sunset = daily[0].Sunset
	}

	return models.WeatherView{
		Location:   loc,
		Current:    current,
		Daily:      daily,
		Units:      unitSystem,
		DataSource: models.SourceLive,
	}, nil
}

func normalizeCurrent(interval models.RawInterval) models.CurrentConditions {
	values := interval.Values

	// An undefined bearing renders as an empty direction, not as north.
	compass := ""
	if units.Has(values, models.FieldWindDirection) {
		compass = units.Compass(units.Num(values, models.FieldWindDirection))
	}

	temperature := units.Num(values, models.FieldTemperature)

	return models.CurrentConditions{
		Temperature:          units.RoundInt(temperature),
		FeelsLike:            units.RoundInt(units.NumOr(values, models.FieldFeelsLike, temperature)),
		HumidityPct:          units.RoundInt(units.Num(values, models.FieldHumidity)),
		WindSpeed:            units.RoundInt(units.Num(values, models.FieldWindSpeed)),
		WindDirection:        compass,
		PrecipProbabilityPct: units.RoundInt(units.Num(values, models.FieldPrecipProbability)),
		Condition:            conditions.Classify(int(units.Num(values, models.FieldWeatherCode))),
		Sunrise:              sunTime(values, models.FieldSunrise),
		Sunset:               sunTime(values, models.FieldSunset),
	}
}

func normalizeDaily(interval models.RawInterval, day time.Time) models.DailyForecastEntry {
	values := interval.Values

	// Providers without min/max report a single temperature.
	temperature := units.Num(values, models.FieldTemperature)
	high := units.NumOr(values, models.FieldTemperatureMax, temperature)
	low := units.NumOr(values, models.FieldTemperatureMin, temperature)

	return models.DailyForecastEntry{
		DayLabel:             day.Format("Mon"),
		DateLabel:            day.Format("Jan 2"),
		High:                 units.RoundInt(high),
		Low:                  units.RoundInt(low),
		Sunrise:              sunTime(values, models.FieldSunrise),
		Sunset:               sunTime(values, models.FieldSunset),
		Condition:            conditions.Classify(int(units.Num(values, models.FieldWeatherCode))),
		PrecipProbabilityPct: units.RoundInt(units.Num(values, models.FieldPrecipProbability)),
	}
}

func sunTime(values map[string]any, key string) string {
	t, ok := units.TimeAt(values, key)
	if !ok {
		return units.TextMissing
	}
	return units.Clock12(t)
}
