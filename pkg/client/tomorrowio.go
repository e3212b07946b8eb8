package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"weather-dashboard/internal/models"
	"go.uber.org/zap"
)

// Fields requested from the timelines endpoint. These double as the
// canonical field names in the provider-agnostic intermediate.
var timelineFields = []string{
	"temperature", "temperatureApparent", "temperatureMax", "temperatureMin",
	"humidity", "windSpeed", "windDirection", "precipitationProbability",
	"weatherCode", "sunriseTime", "sunsetTime", "cloudCover",
}

type TomorrowClient struct {
	*BaseClient
	baseURL string
	apiKey  string
}

type timelinesResponse struct {
	Data struct {
		Timelines []struct {
			Timestep  string `json:"timestep"`
			Intervals []struct {
				StartTime time.Time      `json:"startTime"`
				Values    map[string]any `json:"values"`
			} `json:"intervals"`
		} `json:"timelines"`
	} `json:"data"`
}

func NewTomorrowClient(apiKey string, config ClientConfig, logger *zap.Logger) *TomorrowClient {
	baseClient := NewBaseClient("tomorrowio", config, logger)
	return &TomorrowClient{
		BaseClient: baseClient,
		baseURL:    "https://api.tomorrow.io/v4",
		apiKey:     apiKey,
	}
}

func (c *TomorrowClient) Name() string {
	return "tomorrowio"
}

// Fetch issues one timelines request for the coordinate and unit system.
// Transport failures, non-success statuses and malformed bodies are all
// returned as errors; degradation happens one layer up.
func (c *TomorrowClient) Fetch(ctx context.Context, coord models.Coordinate, units models.UnitSystem) (*models.RawForecast, error) {
	query := url.Values{}
	query.Set("location", fmt.Sprintf("%f,%f", coord.Latitude, coord.Longitude))
	query.Set("fields", strings.Join(timelineFields, ","))
	query.Set("timesteps", "current,1d")
	query.Set("units", string(units))
	query.Set("apikey", c.apiKey)

	endpoint := fmt.Sprintf("%s/timelines?%s", c.baseURL, query.Encode())

	data, err := c.Get(ctx, endpoint)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch forecast: %w", err)
	}

	var response timelinesResponse
	if err := json.Unmarshal(data, &response); err != nil {
		return nil, fmt.Errorf("failed to parse forecast response: %w", err)
	}

	raw := &models.RawForecast{}
	for _, timeline := range response.Data.Timelines {
		switch timeline.Timestep {
		case "current":
			if len(timeline.Intervals) > 0 {
				raw.Current = models.RawInterval{
					Time:   timeline.Intervals[0].StartTime,
					Values: timeline.Intervals[0].Values,
				}
			}
		case "1d":
			for _, interval := range timeline.Intervals {
				raw.Daily = append(raw.Daily, models.RawInterval{
					Time:   interval.StartTime,
					Values: interval.Values,
				})
			}
		}
	}

	return raw, nil
}
