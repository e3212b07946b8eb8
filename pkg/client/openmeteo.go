package client

import (
	"context"
	"fmt"
	"time"

	"weather-dashboard/internal/models"
	"github.com/hectormalot/omgo"
	"go.uber.org/zap"
)

// OpenMeteoClient is the keyless alternate forecast provider. It maps the
// Open-Meteo response onto the canonical intermediate field names.
type OpenMeteoClient struct {
	client  omgo.Client
	timeout time.Duration
	logger  *zap.Logger
}

var openMeteoDailyMetrics = []string{
	"temperature_2m_max", "temperature_2m_min", "weather_code",
	"precipitation_probability_max",
}

func NewOpenMeteoClient(config ClientConfig, logger *zap.Logger) (*OpenMeteoClient, error) {
	omClient, err := omgo.NewClient()
	if err != nil {
		return nil, fmt.Errorf("failed to create Open-Meteo client: %w", err)
	}

	return &OpenMeteoClient{
		client:  omClient,
		timeout: config.Timeout,
		logger:  logger,
	}, nil
}

func (c *OpenMeteoClient) Name() string {
	return "open-meteo"
}

func (c *OpenMeteoClient) Fetch(ctx context.Context, coord models.Coordinate, units models.UnitSystem) (*models.RawForecast, error) {
	loc, err := omgo.NewLocation(coord.Latitude, coord.Longitude)
	if err != nil {
		return nil, fmt.Errorf("invalid coordinates: %w", err)
	}

	opts := &omgo.Options{
		Timezone:     "auto",
		DailyMetrics: openMeteoDailyMetrics,
	}
	if units == models.UnitsImperial {
		opts.TemperatureUnit = "fahrenheit"
		opts.WindspeedUnit = "mph"
		opts.PrecipitationUnit = "inch"
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	forecast, err := c.client.Forecast(ctx, loc, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	raw := &models.RawForecast{
		Current: models.RawInterval{
			Time: forecast.CurrentWeather.Time.Time,
			Values: map[string]any{
				models.FieldTemperature:   forecast.CurrentWeather.Temperature,
				models.FieldWindSpeed:     forecast.CurrentWeather.WindSpeed,
				models.FieldWindDirection: forecast.CurrentWeather.WindDirection,
				models.FieldWeatherCode:   float64(wmoToCode(int(forecast.CurrentWeather.WeatherCode))),
			},
		},
	}

	for i, day := range forecast.DailyTimes {
		values := map[string]any{}
		if v, ok := dailyMetric(forecast.DailyMetrics, "temperature_2m_max", i); ok {
			values[models.FieldTemperatureMax] = v
		}
		if v, ok := dailyMetric(forecast.DailyMetrics, "temperature_2m_min", i); ok {
			values[models.FieldTemperatureMin] = v
		}
		if v, ok := dailyMetric(forecast.DailyMetrics, "precipitation_probability_max", i); ok {
			values[models.FieldPrecipProbability] = v
		}
		if v, ok := dailyMetric(forecast.DailyMetrics, "weather_code", i); ok {
			values[models.FieldWeatherCode] = float64(wmoToCode(int(v)))
		}

		raw.Daily = append(raw.Daily, models.RawInterval{
			Time:   day,
			Values: values,
		})
	}

	return raw, nil
}

func dailyMetric(metrics map[string][]float64, name string, idx int) (float64, bool) {
	series, ok := metrics[name]
	if !ok || idx >= len(series) {
		return 0, false
	}
	return series[idx], true
}

// wmoToCode translates WMO weather interpretation codes into the timelines
// code vocabulary used by the condition table. Unknown codes stay unknown.
func wmoToCode(wmo int) int {
	codes := map[int]int{
		0:  1000, // clear sky
		1:  1100, // mainly clear
		2:  1101, // partly cloudy
		3:  1001, // overcast
		45: 2000,
		48: 2000,
		51: 4000,
		53: 4000,
		55: 4000,
		56: 6000,
		57: 6000,
		61: 4200,
		63: 4001,
		65: 4201,
		66: 6200,
		67: 6201,
		71: 5100,
		73: 5000,
		75: 5101,
		77: 5001,
		80: 4200,
		81: 4001,
		82: 4201,
		85: 5100,
		86: 5101,
		95: 8000,
		96: 8000,
		99: 8000,
	}

	if code, ok := codes[wmo]; ok {
		return code
	}
	return 0
}
