package domain

import "time"

// WeatherSample is one observed or forecast point in time. Temperatures are
// Fahrenheit, wind is mph, and WindFromDeg follows the meteorological
// convention (the bearing the wind blows from).
type WeatherSample struct {
	Timestamp    time.Time `json:"timestamp"`
	TemperatureF float64   `json:"temperature_f" validate:"gte=-100,lte=150"`
	FeelsLikeF   float64   `json:"feels_like_f" validate:"gte=-100,lte=150"`
	HumidityPct  float64   `json:"humidity_pct" validate:"gte=0,lte=100"`

	// PressureHPa is the sea-level corrected pressure reported by the provider.
	PressureHPa *float64 `json:"pressure_hpa,omitempty" validate:"omitempty,gt=0,lte=1100"`

	WindSpeedMPH float64  `json:"wind_speed_mph" validate:"gte=0,lte=250"`
	WindFromDeg  *float64 `json:"wind_from_deg,omitempty" validate:"omitempty,gte=0,lte=360"`

	RainMM                   float64 `json:"rain_mm" validate:"gte=0,lte=1000"`
	SnowMM                   float64 `json:"snow_mm" validate:"gte=0,lte=1000"`
	PrecipitationProbability float64 `json:"precipitation_probability" validate:"gte=0,lte=1"`

	DewPointF   *float64 `json:"dew_point_f,omitempty" validate:"omitempty,gte=-100,lte=150"`
	UVIndex     *float64 `json:"uv_index,omitempty" validate:"omitempty,gte=0,lte=20"`
	VisibilityM *float64 `json:"visibility_m,omitempty" validate:"omitempty,gte=0"`

	Condition string `json:"condition"`
}

// WeatherSeries is a provider payload: the current observation plus hourly
// forecasts in chronological order.
type WeatherSeries struct {
	Current *WeatherSample  `json:"current,omitempty"`
	Hourly  []WeatherSample `json:"hourly,omitempty"`
}

// Nearest returns the hourly sample closest in time to t. Ties go to the
// earlier entry. Returns nil when there are no hourly samples.
func (s *WeatherSeries) Nearest(t time.Time) *WeatherSample {
	if s == nil || len(s.Hourly) == 0 {
		return nil
	}

	best := -1
	var bestDiff time.Duration
	for i := range s.Hourly {
		diff := s.Hourly[i].Timestamp.Sub(t)
		if diff < 0 {
			diff = -diff
		}
		if best == -1 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}

	sample := s.Hourly[best]
	return &sample
}

// GameStatus is the closed set of game states the selector distinguishes.
type GameStatus string

const (
	StatusScheduled  GameStatus = "Scheduled"
	StatusDelayed    GameStatus = "Delayed"
	StatusPostponed  GameStatus = "Postponed"
	StatusInProgress GameStatus = "In Progress"
	StatusLive       GameStatus = "Live"
	StatusFinal      GameStatus = "Final"
	StatusGameOver   GameStatus = "Game Over"
)

// ParseGameStatus maps a provider status string onto GameStatus.
// Anything unrecognized is treated as Scheduled.
func ParseGameStatus(s string) GameStatus {
	switch st := GameStatus(s); st {
	case StatusScheduled, StatusDelayed, StatusPostponed,
		StatusInProgress, StatusLive, StatusFinal, StatusGameOver:
		return st
	default:
		return StatusScheduled
	}
}

// InProgress reports whether the game is being played right now.
func (s GameStatus) InProgress() bool {
	return s == StatusInProgress || s == StatusLive
}

// Finished reports whether the game has ended.
func (s GameStatus) Finished() bool {
	return s == StatusFinal || s == StatusGameOver
}

// GameTimingContext carries what the selector needs to know about a game.
// Now is supplied by the caller so evaluation never reads a clock.
type GameTimingContext struct {
	Status         GameStatus
	ScheduledStart *time.Time
	Now            time.Time

	// Location is where display times are rendered. Nil means UTC.
	Location *time.Location
}
