package pipeline

import (
	"context"
	"log/slog"
	"time"

	"github.com/couchcryptid/ballpark-weather/internal/domain"
)

// GameEvaluator implements Evaluator by resolving a game's ballpark, fetching
// its weather and running the carry model.
type GameEvaluator struct {
	parks    domain.BallparkSource
	weather  domain.WeatherSource
	location *time.Location
	logger   *slog.Logger
}

// NewEvaluator creates a GameEvaluator. Start times in the weather window are
// rendered in loc; nil means UTC.
func NewEvaluator(parks domain.BallparkSource, weather domain.WeatherSource, loc *time.Location, logger *slog.Logger) *GameEvaluator {
	return &GameEvaluator{
		parks:    parks,
		weather:  weather,
		location: loc,
		logger:   logger,
	}
}

// Evaluate builds the report for one game at now. Missing park data or a
// failed weather fetch still yields a report, with the weather marked
// unavailable. Only a sample that fails validation is an error.
func (e *GameEvaluator) Evaluate(ctx context.Context, game domain.Game, now time.Time) (domain.GameReport, error) {
	park := e.parks.Lookup(game.Venue)
	series := e.fetchSeries(ctx, game, park)

	ev, err := domain.Evaluate(series, game.TimingContext(now, e.location), park)
	if err != nil {
		return domain.GameReport{}, err
	}
	return domain.NewGameReport(game, ev, now), nil
}

func (e *GameEvaluator) fetchSeries(ctx context.Context, game domain.Game, park *domain.BallparkGeometry) *domain.WeatherSeries {
	if park == nil {
		e.logger.Warn("unknown venue, weather unavailable", "game_id", game.ID, "venue", game.Venue)
		return nil
	}
	if park.Location == nil {
		e.logger.Warn("venue has no coordinates, weather unavailable", "game_id", game.ID, "venue", game.Venue)
		return nil
	}

	series, err := e.weather.FetchSeries(ctx, *park)
	if err != nil {
		e.logger.Warn("weather fetch failed", "game_id", game.ID, "venue", game.Venue, "error", err)
		return nil
	}
	return series
}
