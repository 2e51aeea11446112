package domain

import "fmt"

// Evaluation is everything derived for one game from one weather series.
type Evaluation struct {
	Sample    *WeatherSample     `json:"sample,omitempty"`
	Direction string             `json:"wind_direction"`
	Carry     *CarryFactorResult `json:"carry,omitempty"`
	Summary   string             `json:"summary"`
	Window    string             `json:"weather_window"`
}

// Evaluate selects the sample for a game, classifies its wind, estimates carry
// and renders the summary. A nil series or geometry degrades to defaults; only
// an out-of-range sample is an error.
func Evaluate(series *WeatherSeries, tc GameTimingContext, geometry *BallparkGeometry) (Evaluation, error) {
	sample := SelectSample(series, tc)
	if err := ValidateSample(sample); err != nil {
		return Evaluation{}, fmt.Errorf("evaluate: %w", err)
	}

	ev := Evaluation{
		Sample: sample,
		Window: WeatherWindow(tc),
	}
	if sample == nil {
		ev.Direction = WindZoneUnknown.String()
		ev.Summary = WeatherUnavailable
		return ev, nil
	}

	ev.Direction = DirectionLabel(sample.WindFromDeg, geometry)
	ev.Carry = ComputeCarryFactor(sample, geometry)
	ev.Summary = FormatSummary(sample, ev.Direction, ev.Carry, geometry)
	return ev, nil
}
