package domain

import "time"

func ptr[T any](v T) *T { return &v }

var testNow = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// standardSample is a sample at exactly standard conditions with calm air.
func standardSample() *WeatherSample {
	return &WeatherSample{
		Timestamp:    testNow,
		TemperatureF: StandardTemperatureF,
		FeelsLikeF:   StandardTemperatureF,
		HumidityPct:  StandardHumidityPct,
		Condition:    "Clear",
	}
}

// hourlySeries returns a current sample plus n hourly samples starting at
// testNow, each with a distinct temperature so tests can tell them apart.
func hourlySeries(n int) *WeatherSeries {
	current := standardSample()
	current.TemperatureF = 60
	series := &WeatherSeries{Current: current}
	for i := 0; i < n; i++ {
		s := *standardSample()
		s.Timestamp = testNow.Add(time.Duration(i) * time.Hour)
		s.TemperatureF = 70 + float64(i)
		series.Hourly = append(series.Hourly, s)
	}
	return series
}
