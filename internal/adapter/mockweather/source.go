// Package mockweather is a deterministic weather source used when no
// OpenWeather API key is configured.
package mockweather

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/couchcryptid/ballpark-weather/internal/domain"
)

const (
	hourlyEntries = 48
	windFromDeg   = 180.0
)

// conditions holds the per-park values the source repeats for every hour.
type conditions struct {
	tempF       float64
	humidityPct float64
	pressureHPa float64
	dewPointF   float64
	windMPH     float64
}

var (
	defaultConditions = conditions{tempF: 75, humidityPct: 65, pressureHPa: 1013.25, dewPointF: 58, windMPH: 8}

	// Dry, thin air typical of a summer evening in Denver.
	parkConditions = map[string]conditions{
		"Coors Field": {tempF: 87, humidityPct: 18, pressureHPa: 845, dewPointF: 39, windMPH: 7},
	}
)

// Source implements domain.WeatherSource with fixed, realistic conditions.
type Source struct {
	clock clockwork.Clock
}

// New creates a mock source. A nil clock uses wall time.
func New(clock clockwork.Clock) *Source {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Source{clock: clock}
}

// FetchSeries returns current conditions at the top of the current hour plus
// 48 identical hourly entries. It never fails.
func (s *Source) FetchSeries(_ context.Context, park domain.BallparkGeometry) (*domain.WeatherSeries, error) {
	c, ok := parkConditions[park.Name]
	if !ok {
		c = defaultConditions
	}

	hour := s.clock.Now().UTC().Truncate(time.Hour)
	current := c.sample(hour)
	series := &domain.WeatherSeries{
		Current: &current,
		Hourly:  make([]domain.WeatherSample, 0, hourlyEntries),
	}
	for i := 0; i < hourlyEntries; i++ {
		series.Hourly = append(series.Hourly, c.sample(hour.Add(time.Duration(i)*time.Hour)))
	}
	return series, nil
}

func (c conditions) sample(at time.Time) domain.WeatherSample {
	pressure := c.pressureHPa
	dew := c.dewPointF
	wind := windFromDeg
	uv := 6.0
	visibility := 10000.0
	return domain.WeatherSample{
		Timestamp:                at,
		TemperatureF:             c.tempF,
		FeelsLikeF:               c.tempF + 3,
		HumidityPct:              c.humidityPct,
		PressureHPa:              &pressure,
		WindSpeedMPH:             c.windMPH,
		WindFromDeg:              &wind,
		PrecipitationProbability: 0.2,
		DewPointF:                &dew,
		UVIndex:                  &uv,
		VisibilityM:              &visibility,
		Condition:                "Partly Cloudy",
	}
}
