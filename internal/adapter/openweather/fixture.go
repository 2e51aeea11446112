package openweather

import (
	"strings"

	"github.com/couchcryptid/ballpark-weather/internal/domain"
)

// FromSeries encodes a domain series as a One Call payload for the given
// coordinates. Used to produce fixtures that Decode reads back.
func FromSeries(series *domain.WeatherSeries, loc domain.Geo) OneCall {
	oc := OneCall{Lat: loc.Lat, Lon: loc.Lon, Timezone: "UTC"}
	if series == nil {
		return oc
	}
	if series.Current != nil {
		c := fromSample(*series.Current)
		oc.Current = &c
	}
	for _, s := range series.Hourly {
		oc.Hourly = append(oc.Hourly, fromSample(s))
	}
	return oc
}

func fromSample(s domain.WeatherSample) Conditions {
	c := Conditions{
		Dt:         s.Timestamp.Unix(),
		Temp:       s.TemperatureF,
		FeelsLike:  s.FeelsLikeF,
		Pressure:   s.PressureHPa,
		Humidity:   s.HumidityPct,
		DewPoint:   s.DewPointF,
		UVI:        s.UVIndex,
		Visibility: s.VisibilityM,
		WindSpeed:  s.WindSpeedMPH,
		WindDeg:    s.WindFromDeg,
		Pop:        s.PrecipitationProbability,
	}
	if s.Condition != "" {
		c.Weather = []Condition{{Main: s.Condition, Description: strings.ToLower(s.Condition)}}
	}
	if s.RainMM > 0 {
		c.Rain = &Precip{OneHour: s.RainMM}
	}
	if s.SnowMM > 0 {
		c.Snow = &Precip{OneHour: s.SnowMM}
	}
	return c
}
