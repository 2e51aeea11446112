package domain

import "time"

// ForecastHorizon is how far ahead a start time may be for an hourly forecast
// to be preferred over current conditions.
const ForecastHorizon = 48 * time.Hour

// SelectSample picks the one sample that best represents game-time conditions.
//
// Games underway or finished use current conditions. Games that have not
// started use the hourly forecast nearest their start time, provided the start
// is in the future and within ForecastHorizon; otherwise current conditions.
// Returns nil only when the series carries no current sample and no forecast
// applies.
func SelectSample(series *WeatherSeries, tc GameTimingContext) *WeatherSample {
	if series == nil {
		return nil
	}

	if tc.Status.InProgress() || tc.Status.Finished() {
		return series.current()
	}

	if tc.ScheduledStart != nil {
		until := tc.ScheduledStart.Sub(tc.Now)
		if until > 0 && until <= ForecastHorizon {
			if forecast := series.Nearest(*tc.ScheduledStart); forecast != nil {
				return forecast
			}
		}
	}

	return series.current()
}

func (s *WeatherSeries) current() *WeatherSample {
	if s.Current == nil {
		return nil
	}
	c := *s.Current
	return &c
}

// WeatherWindow describes which conditions a sample represents for the game.
func WeatherWindow(tc GameTimingContext) string {
	switch {
	case tc.Status.InProgress():
		return "current conditions"
	case tc.Status.Finished():
		return "conditions during game"
	case tc.ScheduledStart != nil:
		loc := tc.Location
		if loc == nil {
			loc = time.UTC
		}
		return "forecast for game time (" + tc.ScheduledStart.In(loc).Format("03:04 PM") + ")"
	default:
		return "forecast for game time"
	}
}
