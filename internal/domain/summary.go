package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// WeatherUnavailable is the summary shown when no sample could be selected.
const WeatherUnavailable = "Weather data unavailable"

// Pressure band (inHg) outside which the summary calls out carry.
const (
	highPressureInHg = 30.20
	lowPressureInHg  = 29.80
)

// FormatWeather renders the baseball-relevant parts of a sample as one line,
// e.g. "75°F, Clear, 40% humidity, 3 mph winds out to center field (calm)".
func FormatWeather(sample *WeatherSample, direction string) string {
	if sample == nil {
		return WeatherUnavailable
	}

	parts := make([]string, 0, 7)

	temp := roundInt(sample.TemperatureF)
	feels := roundInt(sample.FeelsLikeF)
	if abs(temp-feels) > 3 {
		parts = append(parts, fmt.Sprintf("%d°F (feels %d°F)", temp, feels))
	} else {
		parts = append(parts, fmt.Sprintf("%d°F", temp))
	}

	parts = append(parts, sample.Condition)

	if precip := PrecipitationChancePct(sample); precip > 0 {
		parts = append(parts, fmt.Sprintf("%d%% rain", precip))
	}

	parts = append(parts, formatHumidity(sample))

	wind := roundInt(sample.WindSpeedMPH)
	parts = append(parts, fmt.Sprintf("%d mph winds %s (%s)", wind, direction, windImpact(wind)))

	if sample.PressureHPa != nil {
		parts = append(parts, formatPressure(*sample.PressureHPa*hPaToInHg))
	}

	if sample.UVIndex != nil && *sample.UVIndex >= 6 {
		parts = append(parts, fmt.Sprintf("UV index %s (%s)", formatNumber(*sample.UVIndex), uvSeverity(*sample.UVIndex)))
	}

	return strings.Join(parts, ", ")
}

// FormatSummary appends the carry estimate to FormatWeather. High-altitude
// parks also show the derived station pressure.
func FormatSummary(sample *WeatherSample, direction string, carry *CarryFactorResult, geometry *BallparkGeometry) string {
	if sample == nil {
		return WeatherUnavailable
	}

	base := FormatWeather(sample, direction)
	if carry == nil {
		return base
	}

	var hr string
	switch diff := carry.CarryDifferenceFt; {
	case diff > 0:
		hr = fmt.Sprintf("Home runs carry +%.1f ft (%s)", diff, strings.ToLower(string(carry.Description)))
	case diff < 0:
		hr = fmt.Sprintf("Home runs carry %.1f ft (%s)", diff, strings.ToLower(string(carry.Description)))
	default:
		hr = string(OutlookAverage)
	}

	if geometry != nil && carry.Model.Kind == ModelHighAltitude && carry.StationPressureInHg != 0 {
		hr += fmt.Sprintf(" (station pressure: %s inHg)", formatNumber(carry.StationPressureInHg))
	}

	return base + ", " + hr
}

// PrecipitationChancePct returns the chance of precipitation as a whole
// percentage. Providers sometimes report measured rain or snow with a zero
// probability; that case is estimated from the amount, between 20% and 100%.
func PrecipitationChancePct(sample *WeatherSample) int {
	if sample == nil {
		return 0
	}
	chance := sample.PrecipitationProbability * 100
	if chance == 0 {
		if amount := sample.RainMM + sample.SnowMM; amount > 0 {
			chance = math.Min(100, math.Max(20, amount*10))
		}
	}
	return roundInt(chance)
}

func formatHumidity(sample *WeatherSample) string {
	humidity := roundInt(sample.HumidityPct)
	if sample.DewPointF == nil {
		return fmt.Sprintf("%d%% humidity", humidity)
	}
	dew := roundInt(*sample.DewPointF)
	return fmt.Sprintf("%d%% humidity (%s, dew point %d°F)", humidity, dewPointComfort(dew), dew)
}

func dewPointComfort(dewF int) string {
	switch {
	case dewF >= 70:
		return "oppressive"
	case dewF >= 65:
		return "uncomfortable"
	case dewF >= 60:
		return "sticky"
	case dewF >= 55:
		return "comfortable"
	default:
		return "dry"
	}
}

func windImpact(mph int) string {
	switch {
	case mph >= 15:
		return "strong, affects fly balls significantly"
	case mph >= 10:
		return "moderate, noticeable effect on ball flight"
	case mph >= 5:
		return "light breeze"
	default:
		return "calm"
	}
}

func formatPressure(inHg float64) string {
	switch {
	case inHg > highPressureInHg:
		return fmt.Sprintf("%.2f inHg (high pressure, less ball carry)", inHg)
	case inHg < lowPressureInHg:
		return fmt.Sprintf("%.2f inHg (low pressure, more ball carry)", inHg)
	default:
		return fmt.Sprintf("%.2f inHg", inHg)
	}
}

func uvSeverity(uv float64) string {
	switch {
	case uv >= 11:
		return "extreme"
	case uv >= 8:
		return "very high"
	default:
		return "high"
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
