package conditions

import (
	"weather-dashboard/internal/models"
)

// Unknown is returned for any weather code missing from the table. The
// classifier never fails on an unrecognized code.
var Unknown = models.WeatherCondition{Label: "Unknown", IconTag: "fa-cloud"}

// Timelines weather codes mapped to display labels and Font Awesome icon
// tags.
var table = map[int]models.WeatherCondition{
	1000: {Label: "Clear", IconTag: "fa-sun"},
	1100: {Label: "Mostly Clear", IconTag: "fa-sun"},
	1101: {Label: "Partly Cloudy", IconTag: "fa-cloud-sun"},
	1102: {Label: "Mostly Cloudy", IconTag: "fa-cloud"},
	1001: {Label: "Cloudy", IconTag: "fa-cloud"},
	2000: {Label: "Fog", IconTag: "fa-smog"},
	2100: {Label: "Light Fog", IconTag: "fa-smog"},
	4000: {Label: "Drizzle", IconTag: "fa-cloud-rain"},
	4001: {Label: "Rain", IconTag: "fa-cloud-rain"},
	4200: {Label: "Light Rain", IconTag: "fa-cloud-rain"},
	4201: {Label: "Heavy Rain", IconTag: "fa-cloud-showers-heavy"},
	5000: {Label: "Snow", IconTag: "fa-snowflake"},
	5001: {Label: "Flurries", IconTag: "fa-snowflake"},
	5100: {Label: "Light Snow", IconTag: "fa-snowflake"},
	5101: {Label: "Heavy Snow", IconTag: "fa-snowflake"},
	6000: {Label: "Freezing Drizzle", IconTag: "fa-icicles"},
	6001: {Label: "Freezing Rain", IconTag: "fa-icicles"},
	6200: {Label: "Light Freezing Rain", IconTag: "fa-icicles"},
	6201: {Label: "Heavy Freezing Rain", IconTag: "fa-icicles"},
	7000: {Label: "Ice Pellets", IconTag: "fa-icicles"},
	7101: {Label: "Heavy Ice Pellets", IconTag: "fa-icicles"},
	7102: {Label: "Light Ice Pellets", IconTag: "fa-icicles"},
	8000: {Label: "Thunderstorm", IconTag: "fa-cloud-bolt"},
}

// Classify maps a provider weather code to its display condition.
func Classify(code int) models.WeatherCondition {
	if c, ok := table[code]; ok {
		return c
	}
	return Unknown
}
