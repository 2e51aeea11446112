package domain

import (
	"context"
	"time"
)

// BallparkSource resolves a stadium name to its geometry. Unknown names
// return nil.
type BallparkSource interface {
	Lookup(name string) *BallparkGeometry
}

// WeatherSource fetches the current observation and hourly forecast for a park.
// The park's Location must be set.
type WeatherSource interface {
	FetchSeries(ctx context.Context, park BallparkGeometry) (*WeatherSeries, error)
}

// ScheduleSource lists the games scheduled on the given calendar date.
type ScheduleSource interface {
	Games(ctx context.Context, date time.Time) ([]Game, error)
}
