package openweather

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/couchcryptid/ballpark-weather/internal/domain"
)

// OneCall is the subset of the One Call 3.0 response the service reads.
// Requests use units=imperial, so temperatures are °F and wind is mph.
type OneCall struct {
	Lat      float64      `json:"lat"`
	Lon      float64      `json:"lon"`
	Timezone string       `json:"timezone,omitempty"`
	Current  *Conditions  `json:"current,omitempty"`
	Hourly   []Conditions `json:"hourly,omitempty"`
}

// Conditions is one "current" or "hourly" entry.
type Conditions struct {
	Dt         int64       `json:"dt"`
	Temp       float64     `json:"temp"`
	FeelsLike  float64     `json:"feels_like"`
	Pressure   *float64    `json:"pressure,omitempty"` // hPa, sea-level
	Humidity   float64     `json:"humidity"`
	DewPoint   *float64    `json:"dew_point,omitempty"`
	UVI        *float64    `json:"uvi,omitempty"`
	Visibility *float64    `json:"visibility,omitempty"` // metres
	WindSpeed  float64     `json:"wind_speed"`
	WindDeg    *float64    `json:"wind_deg,omitempty"`
	Weather    []Condition `json:"weather,omitempty"`
	Rain       *Precip     `json:"rain,omitempty"`
	Snow       *Precip     `json:"snow,omitempty"`
	Pop        float64     `json:"pop,omitempty"` // 0..1, hourly only
}

// Condition is a weather code entry; the first one describes the sample.
type Condition struct {
	Main        string `json:"main"`
	Description string `json:"description"`
}

// Precip is precipitation volume over the last hour, in mm.
type Precip struct {
	OneHour float64 `json:"1h"`
}

// Decode reads a One Call payload and converts it to a domain series.
func Decode(r io.Reader) (*domain.WeatherSeries, error) {
	var oc OneCall
	if err := json.NewDecoder(r).Decode(&oc); err != nil {
		return nil, fmt.Errorf("decode one call: %w", err)
	}
	return oc.Series(), nil
}

// Series converts the payload into a domain series.
func (oc OneCall) Series() *domain.WeatherSeries {
	series := &domain.WeatherSeries{}
	if oc.Current != nil {
		s := oc.Current.Sample()
		series.Current = &s
	}
	if len(oc.Hourly) > 0 {
		series.Hourly = make([]domain.WeatherSample, 0, len(oc.Hourly))
		for _, h := range oc.Hourly {
			series.Hourly = append(series.Hourly, h.Sample())
		}
	}
	return series
}

// Sample converts one entry into a domain sample.
func (c Conditions) Sample() domain.WeatherSample {
	s := domain.WeatherSample{
		Timestamp:                time.Unix(c.Dt, 0).UTC(),
		TemperatureF:             c.Temp,
		FeelsLikeF:               c.FeelsLike,
		HumidityPct:              c.Humidity,
		PressureHPa:              c.Pressure,
		WindSpeedMPH:             c.WindSpeed,
		WindFromDeg:              c.WindDeg,
		PrecipitationProbability: c.Pop,
		DewPointF:                c.DewPoint,
		UVIndex:                  c.UVI,
		VisibilityM:              c.Visibility,
		Condition:                conditionText(c.Weather),
	}
	if c.Rain != nil {
		s.RainMM = c.Rain.OneHour
	}
	if c.Snow != nil {
		s.SnowMM = c.Snow.OneHour
	}
	return s
}

// conditionText title-cases the description, e.g. "scattered clouds" ->
// "Scattered Clouds".
func conditionText(ws []Condition) string {
	if len(ws) == 0 {
		return "Unknown"
	}
	if d := strings.TrimSpace(ws[0].Description); d != "" {
		// Casers hold state, so each call gets its own.
		return cases.Title(language.English).String(d)
	}
	if ws[0].Main != "" {
		return ws[0].Main
	}
	return "Unknown"
}
